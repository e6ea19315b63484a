package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/Santhosh26/SC-Surevey-Analyzer/survey"
	"github.com/Santhosh26/SC-Surevey-Analyzer/survey/provider"
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

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "missing OPENAI_API_KEY (or pass -api-key)")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds, err := survey.LoadSurvey(cfg.CSVPath, cfg.MinResponses)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	questions := ds.Questions()
	if len(questions) == 0 {
		fmt.Fprintln(os.Stderr, "no open-ended questions to summarize")
		os.Exit(1)
	}
	if cfg.MaxQuestions > 0 && len(questions) > cfg.MaxQuestions {
		questions = questions[:cfg.MaxQuestions]
	}

	api := openai.NewClient(option.WithAPIKey(apiKey))
	summarizer := questionSummarizer{
		client:    provider.New(&api, cfg.RequestsPerMinute),
		model:     cfg.Model,
		quotesMax: cfg.QuotesMax,
	}

	concurrency := cfg.Concurrency
	if concurrency == 0 {
		concurrency = 1
	}

	summaries := make([]survey.QuestionSummary, len(questions))
	sem := make(chan struct{}, concurrency)
	errCh := make(chan error, len(questions))
	var wg sync.WaitGroup
	for i, q := range questions {
		wg.Add(1)
		go func(i int, q string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			default:
			}

			answers := ds.ResponsesFor(q)
			qs, err := summarizer.SummarizeQuestion(ctx, q, answers)
			if err != nil {
				errCh <- fmt.Errorf("summarize %q: %w", q, err)
				return
			}
			summaries[i] = qs
			fmt.Fprintf(os.Stderr, "summarized %q (%d responses)\n", survey.Truncate(q, 60), len(answers))
		}(i, q)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	}

	out := survey.SurveySummaries{
		Metadata: survey.SummaryMetadata{
			GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
			Model:          cfg.Model,
			TotalQuestions: len(questions),
			TotalResponses: len(ds.OpenEnded),
		},
		QuestionSummaries: summaries,
	}

	if !cfg.SkipOverall {
		overall, err := summarizer.SynthesizeOverall(ctx, summaries)
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("overall synthesis: %w", err).Error())
			os.Exit(1)
		}
		out.OverallSummary = &overall
	}

	if err := survey.WriteJSONAtomic(cfg.OutPath, out, cfg.Pretty); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "questions=%d responses=%d overall=%t out=%s\n",
		len(questions), len(ds.OpenEnded), out.OverallSummary != nil, cfg.OutPath)
}

// questionAnalysis is the model-facing output shape for one question.
// Question and response_count are filled locally, not asked of the model.
type questionAnalysis struct {
	ExecutiveSummary     string                   `json:"executive_summary"`
	Themes               []survey.Theme           `json:"themes"`
	Sentiment            survey.SentimentJudgment `json:"sentiment_analysis"`
	RepresentativeQuotes []string                 `json:"representative_quotes"`
	ActionableInsights   []string                 `json:"actionable_insights"`
	HiddenPatterns       string                   `json:"hidden_patterns"`
}

type questionSummarizer struct {
	client    *provider.Client
	model     string
	quotesMax int
}

var questionSchema = provider.GenerateSchema[questionAnalysis]()
var overallSchema = provider.GenerateSchema[survey.OverallSummary]()

func (s questionSummarizer) SummarizeQuestion(ctx context.Context, question string, answers []string) (survey.QuestionSummary, error) {
	if s.model == "" {
		return survey.QuestionSummary{}, errors.New("questionSummarizer: model is empty")
	}

	input := buildQuestionInput(question, answers, s.quotesMax)
	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "QuestionAnalysis",
			Schema:      questionSchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Survey question analysis JSON"),
			Type:        "json_schema",
		},
	}

	params := responses.ResponseNewParams{
		Model:           s.model,
		MaxOutputTokens: openai.Int(2000),
		Instructions:    openai.String(questionAnalysisPrompt),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(input, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	resp, err := s.client.Call(ctx, params)
	if err != nil {
		return survey.QuestionSummary{}, err
	}

	var out questionAnalysis
	if err := provider.DecodeModelJSON(resp.OutputText(), &out); err != nil {
		return survey.QuestionSummary{}, fmt.Errorf("unmarshal question analysis: %w", err)
	}

	return survey.QuestionSummary{
		Question:             question,
		ResponseCount:        len(answers),
		ExecutiveSummary:     strings.TrimSpace(out.ExecutiveSummary),
		Themes:               out.Themes,
		Sentiment:            out.Sentiment,
		RepresentativeQuotes: out.RepresentativeQuotes,
		ActionableInsights:   out.ActionableInsights,
		HiddenPatterns:       strings.TrimSpace(out.HiddenPatterns),
	}, nil
}

func (s questionSummarizer) SynthesizeOverall(ctx context.Context, summaries []survey.QuestionSummary) (survey.OverallSummary, error) {
	input := buildOverallInput(summaries)
	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "OverallAssessment",
			Schema:      overallSchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Cross-question survey assessment JSON"),
			Type:        "json_schema",
		},
	}

	params := responses.ResponseNewParams{
		Model:           s.model,
		MaxOutputTokens: openai.Int(3000),
		Instructions:    openai.String(overallSynthesisPrompt),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(input, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	resp, err := s.client.Call(ctx, params)
	if err != nil {
		return survey.OverallSummary{}, err
	}

	var out survey.OverallSummary
	if err := provider.DecodeModelJSON(resp.OutputText(), &out); err != nil {
		return survey.OverallSummary{}, fmt.Errorf("unmarshal overall assessment: %w", err)
	}
	out.ExecutiveSummary = strings.TrimSpace(out.ExecutiveSummary)
	return out, nil
}

const maxResponseChars = 500

func buildQuestionInput(question string, answers []string, quotesMax int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "question: %s\nresponse_count: %d\nquotes_requested: %d\n\nresponses:\n", question, len(answers), quotesMax)
	for i, a := range answers {
		fmt.Fprintf(&b, "%d. %s\n", i+1, survey.Truncate(a, maxResponseChars))
	}
	return b.String()
}

func buildOverallInput(summaries []survey.QuestionSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "question_analyses: %d\n\n", len(summaries))
	for _, qs := range summaries {
		fmt.Fprintf(&b, "## %s (%d responses)\n", qs.Question, qs.ResponseCount)
		fmt.Fprintf(&b, "sentiment: %s (%.2f)\n", qs.Sentiment.Overall, qs.Sentiment.Confidence)
		fmt.Fprintf(&b, "summary: %s\n", qs.ExecutiveSummary)
		for _, t := range qs.Themes {
			fmt.Fprintf(&b, "- theme: %s (%s) — %s\n", t.Theme, t.Frequency, t.Description)
		}
		for _, a := range qs.ActionableInsights {
			fmt.Fprintf(&b, "- insight: %s\n", a)
		}
		if qs.HiddenPatterns != "" {
			fmt.Fprintf(&b, "hidden: %s\n", qs.HiddenPatterns)
		}
		b.WriteString("\n")
	}
	return b.String()
}
