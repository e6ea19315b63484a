package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
)

type Config struct {
	CSVPath string
	OutPath string
	Model   string
	APIKey  string

	MinResponses      int
	MaxQuestions      int
	Concurrency       int
	RequestsPerMinute int
	QuotesMax         int

	SkipOverall bool
	Pretty      bool
}

func (c Config) Validate() error {
	if c.CSVPath == "" {
		return errors.New("missing -in")
	}
	if c.OutPath == "" {
		return errors.New("missing -out")
	}
	if c.Model == "" {
		return errors.New("missing -model")
	}
	if c.MinResponses < 0 {
		return errors.New("min-responses must be >= 0")
	}
	if c.MaxQuestions < 0 {
		return errors.New("max-questions must be >= 0")
	}
	if c.Concurrency < 0 {
		return errors.New("concurrency must be >= 0")
	}
	if c.RequestsPerMinute < 0 {
		return errors.New("rpm must be >= 0")
	}
	if c.QuotesMax < 0 {
		return errors.New("quotes-max must be >= 0")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		OutPath:           filepath.FromSlash("out/llm_summaries.json"),
		Model:             "gpt-5-mini",
		MinResponses:      10,
		Concurrency:       2,
		RequestsPerMinute: 20,
		QuotesMax:         3,
		Pretty:            true,
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.CSVPath, "in", cfg.CSVPath, "Path to the survey CSV export")
	fs.StringVar(&cfg.OutPath, "out", cfg.OutPath, "Output path for the summaries JSON")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "OpenAI model to use (e.g. gpt-5-mini)")
	fs.StringVar(&cfg.APIKey, "api-key", "", "OpenAI API key (overrides OPENAI_API_KEY env var)")
	fs.IntVar(&cfg.MinResponses, "min-responses", cfg.MinResponses, "Drop open-ended questions with fewer than N responses (0 = keep all)")
	fs.IntVar(&cfg.MaxQuestions, "max-questions", 0, "Summarize only the first N questions (0 = all)")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Max concurrent question summaries")
	fs.IntVar(&cfg.RequestsPerMinute, "rpm", cfg.RequestsPerMinute, "API requests per minute (0 = unthrottled)")
	fs.IntVar(&cfg.QuotesMax, "quotes-max", cfg.QuotesMax, "Representative quotes requested per question")
	fs.BoolVar(&cfg.SkipOverall, "skip-overall", false, "Skip the cross-question synthesis")
	fs.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "Pretty-print the output JSON")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.CSVPath = filepath.Clean(cfg.CSVPath)
	cfg.OutPath = filepath.Clean(cfg.OutPath)
	return cfg, nil
}
