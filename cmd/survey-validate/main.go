package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Santhosh26/SC-Surevey-Analyzer/survey"
)

// checkInputs rejects missing input files up front, before any partial
// report output is produced.
func checkInputs(cfg Config) error {
	for flagName, path := range map[string]string{
		"-truth":     cfg.TruthPath,
		"-summaries": cfg.SummariesPath,
		"-in":        cfg.CSVPath,
	} {
		if path != "" && !survey.FileExists(path) {
			return fmt.Errorf("%s: no such file: %s", flagName, path)
		}
	}
	return nil
}

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
	if err := checkInputs(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	var report strings.Builder
	classifier := survey.NewClassifier()

	labeled := 0
	if cfg.TruthPath != "" {
		rows, err := survey.LoadGroundTruth(cfg.TruthPath, classifier)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		labeled = len(rows)
		report.WriteString(survey.RenderAccuracyReport(survey.ScoreAgainstTruth(rows)))
	}

	issues := 0
	if cfg.SummariesPath != "" {
		b, err := os.ReadFile(cfg.SummariesPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("read -summaries: %w", err).Error())
			os.Exit(1)
		}
		var summaries survey.SurveySummaries
		if err := json.Unmarshal(b, &summaries); err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("parse -summaries: %w", err).Error())
			os.Exit(1)
		}

		ds, err := survey.LoadSurvey(cfg.CSVPath, cfg.MinResponses)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		rows := classifier.ClassifyAll(ds.OpenEnded, 4)
		dists := survey.Aggregate(rows)

		check := survey.CheckSummaries(summaries, ds, dists)
		issues = len(check.Issues)
		if report.Len() > 0 {
			report.WriteString("\n")
		}
		report.WriteString(survey.RenderSummaryCheck(check))
	}

	fmt.Fprint(os.Stderr, report.String())
	if cfg.ReportPath != "" {
		if err := survey.WriteFileAtomic(cfg.ReportPath, []byte(report.String()), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	}

	fmt.Fprintf(os.Stdout, "labeled=%d summary_issues=%d report=%s\n", labeled, issues, cfg.ReportPath)

	if cfg.Strict && issues > 0 {
		os.Exit(1)
	}
}
