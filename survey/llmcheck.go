package survey

import (
	"fmt"
	"strings"
)

// SummaryIssue is one quality finding against a model-produced summary.
type SummaryIssue struct {
	Question string `json:"question"`
	Kind     string `json:"kind"`
	Detail   string `json:"detail"`
}

// Issue kinds reported by CheckSummaries.
const (
	IssueFabricatedQuote   = "fabricated_quote"
	IssueCountMismatch     = "count_mismatch"
	IssueSentimentDisagree = "sentiment_disagreement"
	IssueUnknownQuestion   = "unknown_question"
)

// SummaryCheck is the result of validating model summaries against the
// raw survey data and the rule-based classifications.
type SummaryCheck struct {
	QuestionsChecked int            `json:"questions_checked"`
	QuotesChecked    int            `json:"quotes_checked"`
	Issues           []SummaryIssue `json:"issues,omitempty"`
}

// Clean reports whether no issues were found.
func (c SummaryCheck) Clean() bool { return len(c.Issues) == 0 }

// CheckSummaries validates each question summary three ways: every
// representative quote must be traceable to a real response, the
// reported response count must match the dataset, and the model's
// sentiment call must agree with the dominant rule-based label.
// Sentiment disagreement is flagged, not fatal: the two methods are
// allowed to differ, but a reviewer should see where.
func CheckSummaries(s SurveySummaries, ds Dataset, dists []Distribution) SummaryCheck {
	byQuestion := make(map[string]Distribution, len(dists))
	for _, d := range dists {
		byQuestion[d.Question] = d
	}

	var check SummaryCheck
	for _, qs := range s.QuestionSummaries {
		check.QuestionsChecked++

		responses := ds.ResponsesFor(qs.Question)
		if len(responses) == 0 {
			check.Issues = append(check.Issues, SummaryIssue{
				Question: qs.Question,
				Kind:     IssueUnknownQuestion,
				Detail:   "question not present in the survey data",
			})
			continue
		}

		if qs.ResponseCount != len(responses) {
			check.Issues = append(check.Issues, SummaryIssue{
				Question: qs.Question,
				Kind:     IssueCountMismatch,
				Detail:   fmt.Sprintf("summary reports %d responses, dataset has %d", qs.ResponseCount, len(responses)),
			})
		}

		for _, quote := range qs.RepresentativeQuotes {
			check.QuotesChecked++
			if !quoteTraceable(quote, responses) {
				check.Issues = append(check.Issues, SummaryIssue{
					Question: qs.Question,
					Kind:     IssueFabricatedQuote,
					Detail:   fmt.Sprintf("quote not found in responses: %q", Truncate(quote, 120)),
				})
			}
		}

		if d, ok := byQuestion[qs.Question]; ok {
			if model, ok := ParseSentiment(qs.Sentiment.Overall); ok && model != d.Dominant() {
				check.Issues = append(check.Issues, SummaryIssue{
					Question: qs.Question,
					Kind:     IssueSentimentDisagree,
					Detail:   fmt.Sprintf("model says %s, rule-based dominant is %s", model, d.Dominant()),
				})
			}
		}
	}
	return check
}

// quoteTraceable reports whether the quote appears in some response.
// Matching is normalized (case, punctuation, whitespace) and runs in
// both directions, since models quote fragments and occasionally pad a
// short response with surrounding words.
func quoteTraceable(quote string, responses []string) bool {
	q := CleanText(quote)
	if q == "" {
		return false
	}
	for _, r := range responses {
		clean := CleanText(r)
		if strings.Contains(clean, q) || strings.Contains(q, clean) {
			return true
		}
	}
	return false
}

// RenderSummaryCheck formats the check as a plain-text report.
func RenderSummaryCheck(check SummaryCheck) string {
	var b strings.Builder
	rule := strings.Repeat("=", 72)

	b.WriteString(rule + "\n")
	b.WriteString("LLM SUMMARY VALIDATION\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Questions checked: %d\n", check.QuestionsChecked)
	fmt.Fprintf(&b, "Quotes checked:    %d\n", check.QuotesChecked)
	fmt.Fprintf(&b, "Issues found:      %d\n\n", len(check.Issues))

	if check.Clean() {
		b.WriteString("All summaries passed validation.\n")
	} else {
		for _, issue := range check.Issues {
			fmt.Fprintf(&b, "[%s] %s\n  %s\n", issue.Kind, issue.Question, issue.Detail)
		}
	}
	b.WriteString("\n" + rule + "\n")
	return b.String()
}
