package survey

import (
	"fmt"
	"math"
	"strings"
	"sync"
)

// Rule weights for the scoring pipeline. The positive context boost is
// deliberately larger than the negative one: the lexical baseline
// under-scores short affirmative phrases, and 0.5 is the calibration
// that compensates.
const (
	negativeContextPenalty = 0.4
	positiveContextBoost   = 0.5
	gapPenalty             = 0.5
	negationPenalty        = 0.4
	painPenalty            = 0.3
	strengthBoost          = 0.3
	shortResponseNudge     = 0.2
	shortResponseMaxWords  = 3
)

// Classifier is the question-aware rule-based sentiment classifier.
// It is stateless apart from its baseline function and safe for
// concurrent use.
type Classifier struct {
	baseline PolarityFunc
}

// NewClassifier returns a classifier using the default lexical baseline.
func NewClassifier() *Classifier {
	return &Classifier{baseline: BaselinePolarity}
}

// NewClassifierWithBaseline returns a classifier with a custom baseline
// polarity function. A nil fn falls back to the default.
func NewClassifierWithBaseline(fn PolarityFunc) *Classifier {
	if fn == nil {
		fn = BaselinePolarity
	}
	return &Classifier{baseline: fn}
}

// Classify runs the full scoring pipeline for one response. It is a
// deterministic, side-effect-free total function: any input, including
// the empty string, yields a result and never an error.
func (c *Classifier) Classify(resp SurveyResponse) SentimentResult {
	return c.classify(resp.Text, DetectQuestionContext(resp.Question))
}

// ClassifyInContext is Classify with a pre-detected question context,
// for callers that classify many responses under one question.
func (c *Classifier) ClassifyInContext(text string, qctx QuestionContext) SentimentResult {
	return c.classify(text, qctx)
}

func (c *Classifier) classify(text string, qctx QuestionContext) SentimentResult {
	cleaned := normalizeResponse(text)
	if cleaned == "" {
		return SentimentResult{
			Sentiment:  Neutral,
			Confidence: 0.5,
			Reasoning:  []string{"Empty response"},
		}
	}

	base := c.baseline(cleaned)
	score := base
	confidence := 0.5
	var reasoning []string

	// Rule 1: question context bias.
	switch qctx {
	case ContextNegativeBias:
		score -= negativeContextPenalty
		confidence = math.Max(confidence, 0.8)
		reasoning = append(reasoning, "Question has negative context")
	case ContextPositiveBias:
		score += positiveContextBoost
		confidence = math.Max(confidence, 0.7)
		reasoning = append(reasoning, "Question has positive context")
	}

	lower := strings.ToLower(cleaned)

	// Rule 2: gap/need indicators.
	gap := hasGapIndicator(lower)
	if gap {
		score -= gapPenalty
		confidence = math.Max(confidence, 0.9)
		reasoning = append(reasoning, "Contains gap/need indicator (more/better/need/should)")
	}

	// Rules 2.5 and 3: uncertainty dominates negation. An uncertain
	// response is pinned to 0 and skips every remaining scoring rule so
	// nothing below can drag it out of Neutral; only the forcing
	// overrides at the end may still claim it.
	uncertain := hasUncertainty(lower)
	switch {
	case uncertain:
		score = 0
		confidence = math.Max(confidence, 0.85)
		reasoning = append(reasoning, "Expresses uncertainty")
	case hasNegation(lower, qctx, uncertain):
		score -= negationPenalty
		confidence = math.Max(confidence, 0.85)
		reasoning = append(reasoning, "Contains negation pattern (no/not/stop/can't)")
	}

	if !uncertain {
		// Rule 4: pain-point keywords.
		if containsAnyKeyword(lower, painKeywords) {
			score -= painPenalty
			confidence = math.Max(confidence, 0.8)
			reasoning = append(reasoning, "Contains pain point keywords")
		}

		// Rule 5: strength keywords, unless a gap indicator is present —
		// the gap always wins ("more collaboration" is not praise).
		if containsAnyKeyword(lower, strengthKeywords) && !gap {
			score += strengthBoost
			confidence = math.Max(confidence, 0.8)
			reasoning = append(reasoning, "Contains strength keywords")
		}

		// Rule 6: short responses inherit more of the question context.
		if len(strings.Fields(cleaned)) <= shortResponseMaxWords {
			switch qctx {
			case ContextNegativeBias:
				score -= shortResponseNudge
				reasoning = append(reasoning, "Short response in negative context")
			case ContextPositiveBias:
				score += shortResponseNudge
				reasoning = append(reasoning, "Short response in positive context")
			}
		}
	}

	// Rule 7: domain-specific forcing overrides, evaluated last.
	if strings.Contains(lower, "listen") && (strings.Contains(lower, "more") || strings.Contains(lower, "active")) {
		score = -0.6
		confidence = 0.95
		reasoning = append(reasoning, "Listening gap indicator (listen more/active listening)")
	}
	if strings.Contains(lower, "poc") && qctx == ContextNegativeBias {
		score = -0.5
		confidence = 0.9
		reasoning = append(reasoning, "POC in negative context (pain point)")
	}

	if len(reasoning) == 0 {
		reasoning = append(reasoning, fmt.Sprintf("baseline polarity: %.2f", base))
	}

	return SentimentResult{
		Sentiment:  labelForScore(score),
		Score:      score,
		Confidence: confidence,
		Reasoning:  reasoning,
	}
}

// Classified is one response with its classification, the flat row shape
// used by the JSONL export and the aggregation layer.
type Classified struct {
	Question   string    `json:"question"`
	Response   string    `json:"response"`
	Sentiment  Sentiment `json:"sentiment"`
	Score      float64   `json:"score"`
	Confidence float64   `json:"confidence"`
	Reasoning  string    `json:"reasoning"`
}

// ClassifyAll classifies a batch of responses. Classification of each
// response is independent, so the batch is a parallel map bounded by
// concurrency (values < 1 mean sequential). The result slice matches
// the input order.
func (c *Classifier) ClassifyAll(responses []SurveyResponse, concurrency int) []Classified {
	if concurrency < 1 {
		concurrency = 1
	}

	// Detect each question's context once, not per response.
	contexts := make(map[string]QuestionContext)
	for _, r := range responses {
		if _, ok := contexts[r.Question]; !ok {
			contexts[r.Question] = DetectQuestionContext(r.Question)
		}
	}

	out := make([]Classified, len(responses))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	for i, r := range responses {
		wg.Add(1)
		go func(i int, r SurveyResponse) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			res := c.classify(r.Text, contexts[r.Question])
			out[i] = Classified{
				Question:   r.Question,
				Response:   r.Text,
				Sentiment:  res.Sentiment,
				Score:      res.Score,
				Confidence: res.Confidence,
				Reasoning:  res.ReasoningText(),
			}
		}(i, r)
	}
	wg.Wait()
	return out
}
