package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Santhosh26/SC-Surevey-Analyzer/survey"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	ds, err := survey.LoadSurvey(cfg.CSVPath, cfg.MinResponses)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	if len(ds.OpenEnded) == 0 && len(ds.MultipleChoice) == 0 {
		fmt.Fprintln(os.Stderr, "no usable rows in survey CSV")
		os.Exit(1)
	}

	classifier := survey.NewClassifier()
	rows := classifier.ClassifyAll(ds.OpenEnded, cfg.Concurrency)
	dists := survey.Aggregate(rows)

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("mkdir -out: %w", err).Error())
		os.Exit(1)
	}

	classificationsPath := filepath.Join(cfg.OutDir, "classifications.jsonl")
	if err := survey.WriteJSONL(classificationsPath, rows); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	distributionsPath := filepath.Join(cfg.OutDir, "distributions.json")
	if err := survey.WriteJSONAtomic(distributionsPath, dists, cfg.Pretty); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	insightsPath := filepath.Join(cfg.OutDir, "insights.md")
	err = survey.WriteInsights(insightsPath, survey.InsightsReport{
		Title:         cfg.Title,
		GeneratedAt:   time.Now(),
		Dataset:       ds,
		Distributions: dists,
		TopWordsPer:   cfg.TopWords,
		SamplePer:     cfg.Samples,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if !cfg.Quiet {
		fmt.Fprint(os.Stderr, renderReport(cfg.Title, ds, dists, cfg.NoColor))
	}

	fmt.Fprintf(os.Stdout, "questions=%d responses=%d classifications=%s distributions=%s insights=%s\n",
		len(dists), len(rows), classificationsPath, distributionsPath, insightsPath)
}
