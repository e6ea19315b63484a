package survey

import (
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// PolarityFunc scores raw text in [-1, 1]. The default implementation
// delegates to the VADER lexical analyzer.
type PolarityFunc func(text string) float64

// BaselinePolarity returns the lexical baseline polarity for a response.
// The domain override table is consulted first (ordered, first match
// wins); otherwise the VADER compound score is used. A failure inside
// the lexical library degrades to 0.0 — this function never panics.
func BaselinePolarity(text string) float64 {
	lower := strings.ToLower(text)
	for _, o := range polarityOverrides {
		if strings.Contains(lower, o.phrase) {
			return o.polarity
		}
	}
	return lexicalPolarity(text)
}

func lexicalPolarity(text string) (score float64) {
	defer func() {
		if recover() != nil {
			score = 0
		}
	}()
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound
}

// BaselineLabel classifies text on the lexical baseline alone, with the
// same ±0.1 thresholds as the full pipeline. This is the pre-rules
// method kept for accuracy comparisons.
func BaselineLabel(text string) Sentiment {
	cleaned := normalizeResponse(text)
	if cleaned == "" {
		return Neutral
	}
	return labelForScore(BaselinePolarity(cleaned))
}
