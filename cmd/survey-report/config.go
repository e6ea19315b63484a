package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
)

type Config struct {
	CSVPath string
	OutDir  string
	Title   string

	MinResponses int
	Concurrency  int
	TopWords     int
	Samples      int

	Pretty  bool
	NoColor bool
	Quiet   bool
}

func (c Config) Validate() error {
	if c.CSVPath == "" {
		return errors.New("missing -in")
	}
	if c.OutDir == "" {
		return errors.New("missing -out")
	}
	if c.MinResponses < 0 {
		return errors.New("min-responses must be >= 0")
	}
	if c.Concurrency < 0 {
		return errors.New("concurrency must be >= 0")
	}
	if c.TopWords < 0 {
		return errors.New("top-words must be >= 0")
	}
	if c.Samples < 0 {
		return errors.New("samples must be >= 0")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		OutDir:       filepath.FromSlash("out"),
		Title:        "Survey Insights",
		MinResponses: 10,
		Concurrency:  4,
		TopWords:     10,
		Samples:      5,
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.CSVPath, "in", cfg.CSVPath, "Path to the survey CSV export")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Output directory for classifications/distributions/insights")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "Report title")
	fs.IntVar(&cfg.MinResponses, "min-responses", cfg.MinResponses, "Drop open-ended questions with fewer than N responses (0 = keep all)")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Max concurrent classifications (0 = sequential)")
	fs.IntVar(&cfg.TopWords, "top-words", cfg.TopWords, "Top words per question in the insights report")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "Sample responses per question in the insights report")
	fs.BoolVar(&cfg.Pretty, "pretty", false, "Pretty-print the distributions JSON")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable styled terminal output")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Skip the terminal report, only write output files")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.CSVPath = filepath.Clean(cfg.CSVPath)
	cfg.OutDir = filepath.Clean(cfg.OutDir)
	return cfg, nil
}
