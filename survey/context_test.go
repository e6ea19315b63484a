package survey

import "testing"

func TestDetectQuestionContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		question string
		want     QuestionContext
	}{
		{"", ContextNeutral},
		{"How would you rate the current AI tools?", ContextNeutral},
		{"What are the biggest challenges you face?", ContextNegativeBias},
		{"What are your biggest challenges and internal bottlenecks today?", ContextNegativeBias},
		{"Any operational challenges this quarter?", ContextNegativeBias},
		{"What should we STOP doing today?", ContextNegativeBias},
		{"What should we START doing today?", ContextPositiveBias},
		{"what becomes the most important, uniquely human value", ContextPositiveBias},
		{"In what uniquely human ways do we add value?", ContextPositiveBias},
		{"How would you describe our team culture?", ContextPositiveBias},
		{"How should our team relationship with PM be different?", ContextNeutral},
	}
	for _, tt := range tests {
		if got := DetectQuestionContext(tt.question); got != tt.want {
			t.Fatalf("DetectQuestionContext(%q) got=%v want=%v", tt.question, got, tt.want)
		}
	}
}

func TestDetectQuestionContextNegativeWinsTies(t *testing.T) {
	t.Parallel()

	// Both phrase lists could match; the negative list is checked first.
	got := DetectQuestionContext("What should we stop doing, and what should we start doing?")
	if got != ContextNegativeBias {
		t.Fatalf("got=%v want=%v", got, ContextNegativeBias)
	}
}

func TestQuestionContextString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ctx  QuestionContext
		want string
	}{
		{ContextNeutral, "neutral"},
		{ContextNegativeBias, "negative_bias"},
		{ContextPositiveBias, "positive_bias"},
		{QuestionContext(42), "QuestionContext(42)"},
	}
	for _, tt := range tests {
		if got := tt.ctx.String(); got != tt.want {
			t.Fatalf("String() got=%q want=%q", got, tt.want)
		}
	}
}
