package survey

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LabeledRow is one manually labeled response with the predictions of
// the baseline-only method and the contextual pipeline.
type LabeledRow struct {
	Question string    `json:"question"`
	Response string    `json:"response"`
	Baseline Sentiment `json:"baseline_sentiment"`
	Rules    Sentiment `json:"rules_sentiment"`
	Truth    Sentiment `json:"truth"`
}

// ConfusionMatrix counts predictions against truth for the three labels.
// Rows are truth, columns are predictions.
type ConfusionMatrix [3][3]int

func sentimentIndex(s Sentiment) int {
	switch s {
	case Positive:
		return 0
	case Neutral:
		return 1
	default:
		return 2
	}
}

var confusionLabels = [3]Sentiment{Positive, Neutral, Negative}

// Add records one prediction.
func (m *ConfusionMatrix) Add(truth, predicted Sentiment) {
	m[sentimentIndex(truth)][sentimentIndex(predicted)]++
}

// String renders the matrix as an aligned text table.
func (m ConfusionMatrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s", "")
	for _, l := range confusionLabels {
		fmt.Fprintf(&b, "%10s", l)
	}
	b.WriteByte('\n')
	for i, l := range confusionLabels {
		fmt.Fprintf(&b, "%-10s", l)
		for j := range confusionLabels {
			fmt.Fprintf(&b, "%10d", m[i][j])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// MethodAccuracy is the score of one classification method against the
// labeled ground truth.
type MethodAccuracy struct {
	Correct   int                   `json:"correct"`
	Total     int                   `json:"total"`
	Confusion ConfusionMatrix       `json:"-"`
	PerClass  map[string]ClassScore `json:"per_class"`
}

// ClassScore is per-label accuracy.
type ClassScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Accuracy returns the fraction correct in [0,1].
func (a MethodAccuracy) Accuracy() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total)
}

// AccuracyComparison contrasts the baseline-only method with the
// contextual rules on the same labeled sample.
type AccuracyComparison struct {
	Baseline MethodAccuracy `json:"baseline"`
	Rules    MethodAccuracy `json:"rules"`

	// Improvements are rows the rules got right where the baseline was
	// wrong; Regressions are the reverse.
	Improvements []LabeledRow `json:"improvements,omitempty"`
	Regressions  []LabeledRow `json:"regressions,omitempty"`
}

// ScoreAgainstTruth computes accuracy for both methods over the labeled
// rows.
func ScoreAgainstTruth(rows []LabeledRow) AccuracyComparison {
	cmp := AccuracyComparison{
		Baseline: MethodAccuracy{PerClass: make(map[string]ClassScore)},
		Rules:    MethodAccuracy{PerClass: make(map[string]ClassScore)},
	}
	for _, row := range rows {
		scoreMethod(&cmp.Baseline, row.Truth, row.Baseline)
		scoreMethod(&cmp.Rules, row.Truth, row.Rules)

		rulesRight := row.Rules == row.Truth
		baselineRight := row.Baseline == row.Truth
		if rulesRight && !baselineRight {
			cmp.Improvements = append(cmp.Improvements, row)
		} else if baselineRight && !rulesRight {
			cmp.Regressions = append(cmp.Regressions, row)
		}
	}
	return cmp
}

func scoreMethod(m *MethodAccuracy, truth, predicted Sentiment) {
	m.Total++
	m.Confusion.Add(truth, predicted)
	cs := m.PerClass[truth.String()]
	cs.Total++
	if predicted == truth {
		m.Correct++
		cs.Correct++
	}
	m.PerClass[truth.String()] = cs
}

// LoadGroundTruth reads a labeled CSV with Question, Response and a
// label column ("Your_Label" or "Label"), classifies each row with both
// methods, and returns the labeled comparison rows. Unlabeled and
// invalid-label rows are skipped.
func LoadGroundTruth(path string, c *Classifier) ([]LabeledRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadGroundTruth: %w", err)
	}
	defer f.Close()
	rows, err := readGroundTruth(f, c)
	if err != nil {
		return nil, fmt.Errorf("LoadGroundTruth: %s: %w", path, err)
	}
	return rows, nil
}

func readGroundTruth(r io.Reader, c *Classifier) ([]LabeledRow, error) {
	records, header, err := readCSVWithHeader(r)
	if err != nil {
		return nil, err
	}

	questionCol, responseCol, labelCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))) {
		case "question":
			questionCol = i
		case "response", "responses":
			responseCol = i
		case "your_label", "label":
			labelCol = i
		}
	}
	if questionCol < 0 || responseCol < 0 || labelCol < 0 {
		return nil, fmt.Errorf("missing Question/Response/Label columns in header %v", header)
	}

	var rows []LabeledRow
	for _, rec := range records {
		if labelCol >= len(rec) || questionCol >= len(rec) || responseCol >= len(rec) {
			continue
		}
		truth, ok := ParseSentiment(rec[labelCol])
		if !ok {
			continue
		}
		question := strings.TrimSpace(rec[questionCol])
		response := strings.TrimSpace(rec[responseCol])
		if !validCell(response) {
			continue
		}
		rows = append(rows, LabeledRow{
			Question: question,
			Response: response,
			Baseline: BaselineLabel(response),
			Rules:    c.Classify(SurveyResponse{Question: question, Text: response}).Sentiment,
			Truth:    truth,
		})
	}
	if len(rows) == 0 {
		return nil, errors.New("no labeled rows")
	}
	return rows, nil
}

// maxAccuracyExamples caps improvement/regression listings in the report.
const maxAccuracyExamples = 10

// RenderAccuracyReport formats the comparison as a plain-text report.
func RenderAccuracyReport(cmp AccuracyComparison) string {
	var b strings.Builder
	rule := strings.Repeat("=", 72)

	b.WriteString(rule + "\n")
	b.WriteString("SENTIMENT ACCURACY VALIDATION\n")
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "Labeled responses: %d\n\n", cmp.Rules.Total)
	fmt.Fprintf(&b, "Baseline (lexical only): %d/%d correct (%.1f%%)\n",
		cmp.Baseline.Correct, cmp.Baseline.Total, cmp.Baseline.Accuracy()*100)
	fmt.Fprintf(&b, "Contextual rules:        %d/%d correct (%.1f%%)\n",
		cmp.Rules.Correct, cmp.Rules.Total, cmp.Rules.Accuracy()*100)
	fmt.Fprintf(&b, "Improvement:             %+.1f%%\n\n",
		(cmp.Rules.Accuracy()-cmp.Baseline.Accuracy())*100)

	b.WriteString("Confusion matrix — baseline (rows: truth, cols: predicted)\n")
	b.WriteString(cmp.Baseline.Confusion.String() + "\n")
	b.WriteString("Confusion matrix — contextual rules\n")
	b.WriteString(cmp.Rules.Confusion.String() + "\n")

	b.WriteString("Accuracy by class (contextual rules)\n")
	for _, label := range confusionLabels {
		cs, ok := cmp.Rules.PerClass[label.String()]
		if !ok || cs.Total == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-8s %d/%d (%.1f%%)\n",
			label, cs.Correct, cs.Total, float64(cs.Correct)/float64(cs.Total)*100)
	}
	b.WriteByte('\n')

	writeExamples := func(title string, rows []LabeledRow) {
		b.WriteString(title + "\n")
		if len(rows) == 0 {
			b.WriteString("  (none)\n\n")
			return
		}
		if len(rows) > maxAccuracyExamples {
			rows = rows[:maxAccuracyExamples]
		}
		for _, row := range rows {
			fmt.Fprintf(&b, "  %q\n    truth=%s baseline=%s rules=%s\n",
				Truncate(row.Response, 120), row.Truth, row.Baseline, row.Rules)
		}
		b.WriteByte('\n')
	}
	writeExamples("Improvements (rules correct, baseline wrong)", cmp.Improvements)
	writeExamples("Regressions (baseline correct, rules wrong)", cmp.Regressions)

	b.WriteString(rule + "\n")
	return b.String()
}
