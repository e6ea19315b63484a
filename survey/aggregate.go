package survey

import "sort"

// Distribution is the per-question sentiment rollup consumed by the
// chart layer and the exports.
type Distribution struct {
	Question string          `json:"question"`
	Context  QuestionContext `json:"context"`
	Total    int             `json:"total"`
	Positive int             `json:"positive"`
	Neutral  int             `json:"neutral"`
	Negative int             `json:"negative"`

	// MeanConfidence is an ordinal signal only, not a probability.
	MeanConfidence float64 `json:"mean_confidence"`

	// Highest-confidence examples per polarity, for report callouts.
	TopPositive []Classified `json:"top_positive,omitempty"`
	TopNegative []Classified `json:"top_negative,omitempty"`
}

// Share returns the fraction of responses carrying the given label.
func (d Distribution) Share(s Sentiment) float64 {
	if d.Total == 0 {
		return 0
	}
	var n int
	switch s {
	case Positive:
		n = d.Positive
	case Negative:
		n = d.Negative
	default:
		n = d.Neutral
	}
	return float64(n) / float64(d.Total)
}

// Dominant returns the label with the largest count. Ties resolve
// Negative > Neutral > Positive so a split never reads as praise.
func (d Distribution) Dominant() Sentiment {
	switch {
	case d.Negative >= d.Neutral && d.Negative >= d.Positive:
		return Negative
	case d.Neutral >= d.Positive:
		return Neutral
	default:
		return Positive
	}
}

// maxExamples caps the per-polarity example callouts in a Distribution.
const maxExamples = 3

// Aggregate groups classified responses by question, in first-seen
// order, and computes each question's sentiment distribution. Results
// are independently aggregable: the rollup is a pure fold over the rows.
func Aggregate(rows []Classified) []Distribution {
	index := make(map[string]int)
	var out []Distribution

	perQuestion := make(map[string][]Classified)
	for _, row := range rows {
		if _, ok := index[row.Question]; !ok {
			index[row.Question] = len(out)
			out = append(out, Distribution{
				Question: row.Question,
				Context:  DetectQuestionContext(row.Question),
			})
		}
		d := &out[index[row.Question]]
		d.Total++
		switch row.Sentiment {
		case Positive:
			d.Positive++
		case Negative:
			d.Negative++
		default:
			d.Neutral++
		}
		d.MeanConfidence += row.Confidence
		perQuestion[row.Question] = append(perQuestion[row.Question], row)
	}

	for i := range out {
		d := &out[i]
		if d.Total > 0 {
			d.MeanConfidence /= float64(d.Total)
		}
		d.TopPositive = topByConfidence(perQuestion[d.Question], Positive)
		d.TopNegative = topByConfidence(perQuestion[d.Question], Negative)
	}
	return out
}

func topByConfidence(rows []Classified, label Sentiment) []Classified {
	var matched []Classified
	for _, row := range rows {
		if row.Sentiment == label {
			matched = append(matched, row)
		}
	}
	// Stable sort keeps source order among equal confidences.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Confidence > matched[j].Confidence
	})
	if len(matched) > maxExamples {
		matched = matched[:maxExamples]
	}
	return matched
}
