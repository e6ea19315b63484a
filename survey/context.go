package survey

import (
	"encoding/json"
	"fmt"
	"strings"
)

// QuestionContext is a coarse prior about whether a survey question
// inherently invites critical or affirming responses, derived from the
// question's wording alone.
type QuestionContext int

const (
	ContextNeutral QuestionContext = iota
	ContextNegativeBias
	ContextPositiveBias
)

var questionContextNames = map[QuestionContext]string{
	ContextNeutral:      "neutral",
	ContextNegativeBias: "negative_bias",
	ContextPositiveBias: "positive_bias",
}

// String returns the context name ("neutral", "negative_bias", "positive_bias").
func (c QuestionContext) String() string {
	if name, ok := questionContextNames[c]; ok {
		return name
	}
	return fmt.Sprintf("QuestionContext(%d)", int(c))
}

// MarshalJSON encodes the context as its name string.
func (c QuestionContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Questions that ask about problems or things to eliminate. Checked
// before the positive list: when both sets could match the same text,
// negative bias wins.
var negativeBiasPhrases = []string{
	// Challenges / pain points.
	"what are the biggest challenges",
	"operational challenges",
	"biggest challenges",
	"biggest_challenges",
	// Stop-doing.
	"what should we stop doing",
	"stop doing",
	"stop",
}

// Questions that ask about strengths, initiatives, or human value.
var positiveBiasPhrases = []string{
	// Start-doing.
	"what should we start doing",
	"start doing",
	"start",
	// Human value.
	"uniquely human",
	"human value",
	"humans",
	// Team culture.
	"team culture",
	"describe our team",
}

// DetectQuestionContext classifies a question's inherent bias by
// case-insensitive substring match against two fixed phrase lists.
// An empty or unmatched question yields ContextNeutral; the function
// never fails.
func DetectQuestionContext(question string) QuestionContext {
	q := strings.ToLower(question)
	if q == "" {
		return ContextNeutral
	}
	for _, phrase := range negativeBiasPhrases {
		if strings.Contains(q, phrase) {
			return ContextNegativeBias
		}
	}
	for _, phrase := range positiveBiasPhrases {
		if strings.Contains(q, phrase) {
			return ContextPositiveBias
		}
	}
	return ContextNeutral
}
