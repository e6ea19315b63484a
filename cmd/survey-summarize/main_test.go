package main

import (
	"flag"
	"strings"
	"testing"

	"github.com/Santhosh26/SC-Surevey-Analyzer/survey"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{"-in", "survey.csv", "-model", "gpt-5-mini", "-rpm", "10", "-skip-overall"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.CSVPath != "survey.csv" || cfg.Model != "gpt-5-mini" {
		t.Fatalf("cfg got=%+v", cfg)
	}
	if cfg.RequestsPerMinute != 10 || !cfg.SkipOverall {
		t.Fatalf("cfg got=%+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing in", func(c *Config) { c.CSVPath = "" }, "missing -in"},
		{"missing out", func(c *Config) { c.OutPath = "" }, "missing -out"},
		{"missing model", func(c *Config) { c.Model = "" }, "missing -model"},
		{"negative rpm", func(c *Config) { c.RequestsPerMinute = -1 }, "rpm"},
		{"negative quotes", func(c *Config) { c.QuotesMax = -1 }, "quotes-max"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			cfg.CSVPath = "survey.csv"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate err=%v want contains %q", err, tt.wantErr)
			}
		})
	}
}

func TestBuildQuestionInput(t *testing.T) {
	t.Parallel()

	got := buildQuestionInput("What should we start doing?", []string{"Trust", "More docs"}, 3)
	for _, want := range []string{
		"question: What should we start doing?",
		"response_count: 2",
		"quotes_requested: 3",
		"1. Trust",
		"2. More docs",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("input missing %q:\n%s", want, got)
		}
	}
}

func TestBuildQuestionInputTruncatesLongResponses(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", maxResponseChars+100)
	got := buildQuestionInput("q", []string{long}, 1)
	if strings.Contains(got, long) {
		t.Fatalf("long response not truncated")
	}
	if !strings.Contains(got, "…") {
		t.Fatalf("truncation marker missing")
	}
}

func TestBuildOverallInput(t *testing.T) {
	t.Parallel()

	summaries := []survey.QuestionSummary{{
		Question:         "What are your biggest challenges?",
		ResponseCount:    12,
		ExecutiveSummary: "Teams are stretched thin.",
		Sentiment:        survey.SentimentJudgment{Overall: "negative", Confidence: 0.9},
		Themes:           []survey.Theme{{Theme: "workload", Frequency: "8 of 12", Description: "too many POCs"}},
		HiddenPatterns:   "Nobody mentions tooling.",
	}}
	got := buildOverallInput(summaries)
	for _, want := range []string{
		"question_analyses: 1",
		"## What are your biggest challenges? (12 responses)",
		"sentiment: negative (0.90)",
		"theme: workload (8 of 12)",
		"hidden: Nobody mentions tooling.",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("overall input missing %q:\n%s", want, got)
		}
	}
}
