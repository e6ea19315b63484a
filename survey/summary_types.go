package survey

// Model-produced summary artifacts for the LLM batch summarizer. The
// shapes double as the JSON schema source for structured outputs, so
// field tags are load-bearing.

// Theme is one recurring topic the model identified in a question's
// responses, with an estimated mention frequency.
type Theme struct {
	Theme       string `json:"theme"`
	Frequency   string `json:"frequency"`
	Description string `json:"description"`
}

// SentimentJudgment is the model's own sentiment call for a question,
// kept separate from the rule-based pipeline so the two can be
// cross-checked.
type SentimentJudgment struct {
	Overall    string  `json:"overall"`
	Reasoning  string  `json:"reasoning"`
	Confidence float64 `json:"confidence"`
}

// QuestionSummary is the structured analysis of one survey question.
type QuestionSummary struct {
	Question      string `json:"question"`
	ResponseCount int    `json:"response_count"`

	ExecutiveSummary     string            `json:"executive_summary"`
	Themes               []Theme           `json:"themes"`
	Sentiment            SentimentJudgment `json:"sentiment_analysis"`
	RepresentativeQuotes []string          `json:"representative_quotes"`
	ActionableInsights   []string          `json:"actionable_insights"`
	HiddenPatterns       string            `json:"hidden_patterns"`
}

// StrategicPriority is one ranked entry in the overall assessment.
type StrategicPriority struct {
	Rank      int    `json:"rank"`
	Priority  string `json:"priority"`
	Rationale string `json:"rationale"`
}

// CriticalRisks groups the risk narratives of the overall assessment.
type CriticalRisks struct {
	People      string `json:"people"`
	Revenue     string `json:"revenue"`
	Competitive string `json:"competitive"`
}

// CrossQuestionInsights captures patterns that only appear when
// questions are read together.
type CrossQuestionInsights struct {
	Alignments       []string `json:"alignments"`
	Contradictions   []string `json:"contradictions"`
	EmergingPatterns []string `json:"emerging_patterns"`
}

// ActionItem is one entry of the timeboxed action plan.
type ActionItem struct {
	Timeframe string `json:"timeframe"`
	Action    string `json:"action"`
	Rationale string `json:"rationale"`
}

// OverallSummary is the cross-question organizational assessment.
type OverallSummary struct {
	ExecutiveSummary      string                `json:"executive_summary"`
	StrategicPriorities   []StrategicPriority   `json:"strategic_priorities"`
	CriticalRisks         CriticalRisks         `json:"critical_risks"`
	CrossQuestionInsights CrossQuestionInsights `json:"cross_question_insights"`
	ActionPlan            []ActionItem          `json:"action_plan"`
}

// SummaryMetadata records provenance for a summarizer run.
type SummaryMetadata struct {
	GeneratedAt    string `json:"generated_at"`
	Model          string `json:"model"`
	TotalQuestions int    `json:"total_questions"`
	TotalResponses int    `json:"total_responses"`
}

// SurveySummaries is the complete summarizer output file.
type SurveySummaries struct {
	Metadata          SummaryMetadata   `json:"metadata"`
	QuestionSummaries []QuestionSummary `json:"question_summaries"`
	OverallSummary    *OverallSummary   `json:"overall_summary,omitempty"`
}
