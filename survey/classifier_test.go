package survey

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// textblobStub mimics the lexical baselines the rule weights were
// calibrated against, so scenario arithmetic is exact regardless of
// which lexical library backs the default baseline.
func textblobStub(values map[string]float64) PolarityFunc {
	return func(text string) float64 {
		return values[strings.ToLower(text)]
	}
}

func TestClassifyScenarios(t *testing.T) {
	t.Parallel()

	c := NewClassifierWithBaseline(textblobStub(map[string]float64{
		"more collaboration": 0.5,
	}))

	tests := []struct {
		name          string
		question      string
		response      string
		want          Sentiment
		minConfidence float64
	}{
		{
			name:     "gap suppresses strength keyword",
			question: "How should our team relationship with PM be different?",
			response: "More collaboration",
			want:     Neutral,
		},
		{
			name:          "listen more forces negative",
			question:      "How does this change how we add value?",
			response:      "Listen more",
			want:          Negative,
			minConfidence: 0.9,
		},
		{
			name:     "listening override beats positive bias",
			question: "what becomes the most important, uniquely human value",
			response: "Active listening",
			want:     Negative,
		},
		{
			name:          "poc in stop-doing context",
			question:      "What should we STOP doing today?",
			response:      "POC",
			want:          Negative,
			minConfidence: 0.85,
		},
		{
			name:     "strength keyword in positive context",
			question: "uniquely human ways we add value",
			response: "Trust",
			want:     Positive,
		},
		{
			name:     "uncertainty beats negative context",
			question: "What are your biggest challenges?",
			response: "Not sure",
			want:     Neutral,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := c.Classify(SurveyResponse{Question: tt.question, Text: tt.response})
			if got.Sentiment != tt.want {
				t.Fatalf("sentiment got=%v want=%v (score=%.2f reasoning=%q)", got.Sentiment, tt.want, got.Score, got.ReasoningText())
			}
			if tt.minConfidence > 0 && got.Confidence < tt.minConfidence {
				t.Fatalf("confidence got=%.2f want>=%.2f", got.Confidence, tt.minConfidence)
			}
		})
	}
}

func TestClassifyEmptyResponse(t *testing.T) {
	t.Parallel()

	c := NewClassifier()
	for _, text := range []string{"", "   ", "\t\n", "___"} {
		got := c.Classify(SurveyResponse{Question: "any question", Text: text})
		want := SentimentResult{Sentiment: Neutral, Confidence: 0.5, Reasoning: []string{"Empty response"}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("empty response %q mismatch (-want +got):\n%s", text, diff)
		}
	}
}

func TestClassifyTotality(t *testing.T) {
	t.Parallel()

	c := NewClassifier()
	inputs := []string{
		"",
		"!!!???...",
		"normal sentence about work",
		strings.Repeat("very long response ", 5000),
		"émotions & ünïcode 🚀",
		"tabs\tand\nnewlines",
		"a_b_c_d_e",
	}
	questions := []string{"", "What should we stop doing?", "uniquely human value", "random question"}

	for _, q := range questions {
		for _, in := range inputs {
			got := c.Classify(SurveyResponse{Question: q, Text: in})
			if _, ok := sentimentNames[got.Sentiment]; !ok {
				t.Fatalf("invalid sentiment %v for input %.40q", got.Sentiment, in)
			}
			if got.Confidence < 0 || got.Confidence > 1 {
				t.Fatalf("confidence out of range: %v for input %.40q", got.Confidence, in)
			}
			if len(got.Reasoning) == 0 {
				t.Fatalf("empty reasoning for input %.40q", in)
			}
		}
	}
}

func TestClassifyLabelMatchesScore(t *testing.T) {
	t.Parallel()

	c := NewClassifier()
	inputs := []string{
		"More collaboration", "Listen more", "Trust", "Not sure", "POC",
		"better support", "no support at all", "great team, excellent quality",
		"struggling with burnout", "stop micromanaging", "knowledge base",
	}
	questions := []string{
		"What are your biggest challenges?",
		"What should we start doing?",
		"How would you rate the tools?",
	}
	for _, q := range questions {
		for _, in := range inputs {
			got := c.Classify(SurveyResponse{Question: q, Text: in})
			if want := labelForScore(got.Score); got.Sentiment != want {
				t.Fatalf("label inconsistent with score %.2f: got=%v want=%v (q=%q in=%q)", got.Score, got.Sentiment, want, q, in)
			}
		}
	}
}

func TestClassifyGapOverStrength(t *testing.T) {
	t.Parallel()

	// Neutral-context question; baseline pinned to the worst case the
	// lexical tool could plausibly report for gap phrases.
	for _, baseline := range []float64{0, 0.5} {
		c := NewClassifierWithBaseline(func(string) float64 { return baseline })
		for _, in := range []string{"more collaboration", "better support", "need more expertise"} {
			got := c.ClassifyInContext(in, ContextNeutral)
			if got.Sentiment == Positive {
				t.Fatalf("gap phrase %q classified Positive (baseline=%.1f score=%.2f)", in, baseline, got.Score)
			}
		}
	}
}

func TestClassifyUncertaintyDominance(t *testing.T) {
	t.Parallel()

	c := NewClassifier()
	inputs := []string{
		"Not sure",
		"unsure about this",
		"don't know what the biggest problem is",
		"uncertain, maybe trust issues",
	}
	for _, qctx := range []QuestionContext{ContextNeutral, ContextNegativeBias, ContextPositiveBias} {
		for _, in := range inputs {
			got := c.ClassifyInContext(in, qctx)
			if got.Sentiment != Neutral {
				t.Fatalf("uncertain response %q under %v: got=%v want=Neutral (score=%.2f)", in, qctx, got.Sentiment, got.Score)
			}
		}
	}
}

func TestClassifyContextAsymmetry(t *testing.T) {
	t.Parallel()

	// Ambiguous short response, identical baseline in both contexts.
	c := NewClassifierWithBaseline(func(string) float64 { return 0 })
	pos := c.ClassifyInContext("Processes", ContextPositiveBias)
	neg := c.ClassifyInContext("Processes", ContextNegativeBias)
	if pos.Score < neg.Score {
		t.Fatalf("positive-bias score %.2f below negative-bias score %.2f", pos.Score, neg.Score)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	t.Parallel()

	c := NewClassifier()
	resp := SurveyResponse{Question: "What should we stop doing?", Text: "stop running POCs without a clear owner"}
	first := c.Classify(resp)
	second := c.Classify(resp)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("classification not idempotent (-first +second):\n%s", diff)
	}
}

func TestClassifyNegationSuppressedForStop(t *testing.T) {
	t.Parallel()

	c := NewClassifierWithBaseline(func(string) float64 { return 0 })

	// "stop" under a positive-bias question is a constructive suggestion.
	got := c.ClassifyInContext("Stop long status meetings", ContextPositiveBias)
	for _, r := range got.Reasoning {
		if strings.Contains(r, "negation") {
			t.Fatalf("negation fired for constructive stop suggestion: %q", got.ReasoningText())
		}
	}

	// Another cue alongside "stop" still counts.
	got = c.ClassifyInContext("Stop this, it never works", ContextPositiveBias)
	var fired bool
	for _, r := range got.Reasoning {
		if strings.Contains(r, "negation") {
			fired = true
		}
	}
	if !fired {
		t.Fatalf("negation suppressed despite non-stop cue: %q", got.ReasoningText())
	}

	// Same text under negative bias keeps the negation.
	got = c.ClassifyInContext("Stop long status meetings", ContextNegativeBias)
	fired = false
	for _, r := range got.Reasoning {
		if strings.Contains(r, "negation") {
			fired = true
		}
	}
	if !fired {
		t.Fatalf("negation missing under negative bias: %q", got.ReasoningText())
	}
}

func TestClassifyAllPreservesOrder(t *testing.T) {
	t.Parallel()

	responses := []SurveyResponse{
		{Question: "What should we start doing?", Text: "Trust"},
		{Question: "What are your biggest challenges?", Text: "Not sure"},
		{Question: "How do we add value?", Text: "Listen more"},
		{Question: "What should we start doing?", Text: ""},
	}
	c := NewClassifier()
	rows := c.ClassifyAll(responses, 3)
	if len(rows) != len(responses) {
		t.Fatalf("rows got=%d want=%d", len(rows), len(responses))
	}
	for i, row := range rows {
		if row.Question != responses[i].Question || row.Response != responses[i].Text {
			t.Fatalf("row %d out of order: got=%+v want=%+v", i, row, responses[i])
		}
		single := c.Classify(responses[i])
		if row.Sentiment != single.Sentiment || row.Score != single.Score {
			t.Fatalf("row %d differs from single classification: got=%v/%v want=%v/%v",
				i, row.Sentiment, row.Score, single.Sentiment, single.Score)
		}
	}
}

func TestClassifyAllSequentialFallback(t *testing.T) {
	t.Parallel()

	c := NewClassifier()
	rows := c.ClassifyAll([]SurveyResponse{{Question: "q", Text: "fine"}}, 0)
	if len(rows) != 1 {
		t.Fatalf("rows got=%d want=1", len(rows))
	}
}

func TestClassifyDefaultBaselineGapPhrase(t *testing.T) {
	t.Parallel()

	// No injected baseline here: the override table must carry the gap
	// phrases whose surface words the lexical analyzer scores near zero,
	// so the stock classifier still lands the gap penalty on Neutral.
	res := NewClassifier().Classify(SurveyResponse{
		Question: "Any additional comments?",
		Text:     "More collaboration",
	})
	if res.Sentiment != Neutral {
		t.Fatalf("sentiment got=%v want=%v (score=%.2f reasoning=%q)",
			res.Sentiment, Neutral, res.Score, res.ReasoningText())
	}
	if res.Score != 0 {
		t.Fatalf("score got=%v want=0", res.Score)
	}
}
