package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
)

type Config struct {
	TruthPath     string
	SummariesPath string
	CSVPath       string
	ReportPath    string

	MinResponses int
	Strict       bool
}

func (c Config) Validate() error {
	if c.TruthPath == "" && c.SummariesPath == "" {
		return errors.New("nothing to validate: pass -truth and/or -summaries")
	}
	if c.SummariesPath != "" && c.CSVPath == "" {
		return errors.New("-summaries requires -in (the survey CSV the summaries were built from)")
	}
	if c.MinResponses < 0 {
		return errors.New("min-responses must be >= 0")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		MinResponses: 10,
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.TruthPath, "truth", "", "Path to a hand-labeled CSV (Question, Response, Your_Label) for accuracy validation")
	fs.StringVar(&cfg.SummariesPath, "summaries", "", "Path to an LLM summaries JSON to validate against the survey data")
	fs.StringVar(&cfg.CSVPath, "in", "", "Path to the survey CSV export (required with -summaries)")
	fs.StringVar(&cfg.ReportPath, "report", "", "Optional path to also write the validation report to")
	fs.IntVar(&cfg.MinResponses, "min-responses", cfg.MinResponses, "Question filter used when the summaries were generated")
	fs.BoolVar(&cfg.Strict, "strict", false, "Exit nonzero when summary validation finds issues")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.TruthPath != "" {
		cfg.TruthPath = filepath.Clean(cfg.TruthPath)
	}
	if cfg.SummariesPath != "" {
		cfg.SummariesPath = filepath.Clean(cfg.SummariesPath)
	}
	if cfg.CSVPath != "" {
		cfg.CSVPath = filepath.Clean(cfg.CSVPath)
	}
	if cfg.ReportPath != "" {
		cfg.ReportPath = filepath.Clean(cfg.ReportPath)
	}
	return cfg, nil
}
