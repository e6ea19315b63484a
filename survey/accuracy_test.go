package survey

import (
	"strings"
	"testing"
)

func TestScoreAgainstTruth(t *testing.T) {
	t.Parallel()

	rows := []LabeledRow{
		{Response: "a", Truth: Negative, Baseline: Neutral, Rules: Negative},  // improvement
		{Response: "b", Truth: Positive, Baseline: Positive, Rules: Positive}, // both right
		{Response: "c", Truth: Neutral, Baseline: Neutral, Rules: Negative},   // regression
		{Response: "d", Truth: Negative, Baseline: Positive, Rules: Neutral},  // both wrong
	}

	cmp := ScoreAgainstTruth(rows)
	if cmp.Baseline.Correct != 2 || cmp.Baseline.Total != 4 {
		t.Fatalf("baseline got=%d/%d want=2/4", cmp.Baseline.Correct, cmp.Baseline.Total)
	}
	if cmp.Rules.Correct != 2 || cmp.Rules.Total != 4 {
		t.Fatalf("rules got=%d/%d want=2/4", cmp.Rules.Correct, cmp.Rules.Total)
	}
	if len(cmp.Improvements) != 1 || cmp.Improvements[0].Response != "a" {
		t.Fatalf("improvements got=%+v", cmp.Improvements)
	}
	if len(cmp.Regressions) != 1 || cmp.Regressions[0].Response != "c" {
		t.Fatalf("regressions got=%+v", cmp.Regressions)
	}

	if got := cmp.Rules.Accuracy(); got != 0.5 {
		t.Fatalf("accuracy got=%v want=0.5", got)
	}
	if cs := cmp.Rules.PerClass[Negative.String()]; cs.Correct != 1 || cs.Total != 2 {
		t.Fatalf("per-class Negative got=%+v", cs)
	}

	// Confusion: truth=Neutral predicted=Negative recorded once.
	if got := cmp.Rules.Confusion[sentimentIndex(Neutral)][sentimentIndex(Negative)]; got != 1 {
		t.Fatalf("confusion cell got=%d want=1", got)
	}
}

func TestMethodAccuracyEmpty(t *testing.T) {
	t.Parallel()

	var m MethodAccuracy
	if got := m.Accuracy(); got != 0 {
		t.Fatalf("empty accuracy got=%v want=0", got)
	}
}

func TestReadGroundTruth(t *testing.T) {
	t.Parallel()

	csv := "Question,Response,Your_Label\n" +
		"What are your biggest challenges?,Too many POCs,Negative\n" +
		"What are your biggest challenges?,Not sure,Neutral\n" +
		"What should we start doing?,Trust,\n" + // unlabeled, skipped
		"What should we start doing?,Trust,Wrong\n" + // invalid label, skipped
		"What should we start doing?,Trust,Positive\n"

	rows, err := readGroundTruth(strings.NewReader(csv), NewClassifier())
	if err != nil {
		t.Fatalf("readGroundTruth: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows got=%d want=3", len(rows))
	}
	if rows[0].Truth != Negative || rows[1].Truth != Neutral || rows[2].Truth != Positive {
		t.Fatalf("truths got=%v,%v,%v", rows[0].Truth, rows[1].Truth, rows[2].Truth)
	}
	// Rules predictions come from the real pipeline.
	if rows[1].Rules != Neutral {
		t.Fatalf("'Not sure' rules prediction got=%v want=Neutral", rows[1].Rules)
	}
	if rows[2].Rules != Positive {
		t.Fatalf("'Trust' rules prediction got=%v want=Positive", rows[2].Rules)
	}
}

func TestReadGroundTruthErrors(t *testing.T) {
	t.Parallel()

	if _, err := readGroundTruth(strings.NewReader(""), NewClassifier()); err == nil {
		t.Fatalf("expected error for empty input")
	}
	if _, err := readGroundTruth(strings.NewReader("Question,Response\nq,r\n"), NewClassifier()); err == nil {
		t.Fatalf("expected error for missing label column")
	}
	if _, err := readGroundTruth(strings.NewReader("Question,Response,Label\nq,r,\n"), NewClassifier()); err == nil {
		t.Fatalf("expected error when no rows are labeled")
	}
}

func TestRenderAccuracyReport(t *testing.T) {
	t.Parallel()

	cmp := ScoreAgainstTruth([]LabeledRow{
		{Question: "q", Response: "a", Truth: Negative, Baseline: Neutral, Rules: Negative},
		{Question: "q", Response: "b", Truth: Positive, Baseline: Positive, Rules: Positive},
	})
	out := RenderAccuracyReport(cmp)

	for _, want := range []string{
		"SENTIMENT ACCURACY VALIDATION",
		"Labeled responses: 2",
		"Baseline (lexical only): 1/2 correct (50.0%)",
		"Contextual rules:        2/2 correct (100.0%)",
		"Improvements (rules correct, baseline wrong)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
