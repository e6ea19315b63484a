// Package survey analyzes a free-text survey export: it loads and
// partitions the raw CSV, classifies each response with a question-aware
// rule-based sentiment pipeline, derives word-frequency statistics, and
// aggregates per-question sentiment distributions for reporting.
//
// The classifier is a pure function over its inputs. It never fails
// outward: degraded input yields a well-defined Neutral result, and a
// failure inside the lexical-polarity library degrades the baseline to
// 0.0 instead of propagating.
package survey

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Sentiment is the classification label for one response.
type Sentiment int

const (
	Negative Sentiment = -1
	Neutral  Sentiment = 0
	Positive Sentiment = 1
)

// Label thresholds on the internal score accumulator.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

var sentimentNames = map[Sentiment]string{
	Negative: "Negative",
	Neutral:  "Neutral",
	Positive: "Positive",
}

var sentimentFromName = map[string]Sentiment{
	"Negative": Negative,
	"Neutral":  Neutral,
	"Positive": Positive,
}

// String returns the label name ("Positive", "Neutral", "Negative").
func (s Sentiment) String() string {
	if name, ok := sentimentNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Sentiment(%d)", int(s))
}

// MarshalJSON encodes the sentiment as its label string.
func (s Sentiment) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a label string into a Sentiment.
func (s *Sentiment) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, ok := sentimentFromName[str]
	if !ok {
		return fmt.Errorf("survey: unknown sentiment: %q", str)
	}
	*s = v
	return nil
}

// ParseSentiment maps a label string to a Sentiment, ignoring case so
// both hand-entered labels and model output ("positive") parse.
// Unrecognized labels (including the empty string) map to Neutral with
// ok=false.
func ParseSentiment(label string) (Sentiment, bool) {
	label = strings.TrimSpace(label)
	for name, v := range sentimentFromName {
		if strings.EqualFold(name, label) {
			return v, true
		}
	}
	return Neutral, false
}

// SurveyResponse is one row from the survey export: a free-text response
// and the question it answers.
type SurveyResponse struct {
	Question string `json:"question"`
	Text     string `json:"response"`
}

// SentimentResult is the full classifier output for one response.
//
// Score is the raw rule accumulator; its sign and magnitude against the
// ±0.1 thresholds determine Sentiment. Confidence is an ordinal signal
// ("more high-certainty rules fired"), not a calibrated probability.
// Reasoning lists every rule that altered the score or confidence, in
// application order.
type SentimentResult struct {
	Sentiment  Sentiment `json:"sentiment"`
	Score      float64   `json:"score"`
	Confidence float64   `json:"confidence"`
	Reasoning  []string  `json:"reasoning"`
}

// ReasoningText joins the reasoning trace into a single semicolon-separated
// string, the form downstream exports use.
func (r SentimentResult) ReasoningText() string {
	return strings.Join(r.Reasoning, "; ")
}

// String returns a debug representation of the result.
func (r SentimentResult) String() string {
	return fmt.Sprintf("%s(score=%.2f, confidence=%.2f)", r.Sentiment, r.Score, r.Confidence)
}

func labelForScore(score float64) Sentiment {
	switch {
	case score > positiveThreshold:
		return Positive
	case score < negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}
