package survey

import (
	"fmt"
	"strings"
	"time"
)

// InsightsReport bundles everything the markdown insights renderer
// needs for one survey run.
type InsightsReport struct {
	Title         string
	GeneratedAt   time.Time
	Dataset       Dataset
	Distributions []Distribution
	TopWordsPer   int
	SamplePer     int
}

const (
	defaultTopWords = 10
	defaultSamples  = 5
)

// RenderInsights renders the survey as a markdown insights document:
// per-question sentiment distribution, dominant themes by word
// frequency, and high-confidence example responses, followed by the
// multiple-choice vote tallies.
func RenderInsights(rep InsightsReport) string {
	topWords := rep.TopWordsPer
	if topWords <= 0 {
		topWords = defaultTopWords
	}
	samples := rep.SamplePer
	if samples <= 0 {
		samples = defaultSamples
	}
	title := rep.Title
	if title == "" {
		title = "Survey Insights"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if !rep.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "_Generated %s_\n\n", rep.GeneratedAt.UTC().Format(time.RFC3339))
	}
	fmt.Fprintf(&b, "Open-ended responses: %d across %d questions.\n\n",
		len(rep.Dataset.OpenEnded), len(rep.Distributions))

	for _, d := range rep.Distributions {
		fmt.Fprintf(&b, "## %s\n\n", d.Question)
		fmt.Fprintf(&b, "- Responses: %d\n", d.Total)
		fmt.Fprintf(&b, "- Question context: %s\n", d.Context)
		fmt.Fprintf(&b, "- Sentiment: %d positive / %d neutral / %d negative (dominant: %s)\n",
			d.Positive, d.Neutral, d.Negative, d.Dominant())
		fmt.Fprintf(&b, "- Mean confidence: %.2f\n\n", d.MeanConfidence)

		words := TopWords(rep.Dataset.ResponsesFor(d.Question), topWords)
		if len(words) > 0 {
			b.WriteString("**Common themes:** ")
			parts := make([]string, 0, len(words))
			for _, w := range words {
				parts = append(parts, fmt.Sprintf("%s (%d)", w.Word, w.Count))
			}
			b.WriteString(strings.Join(parts, ", "))
			b.WriteString("\n\n")
		}

		writeQuoteBlock(&b, "Strongest positive signals", d.TopPositive)
		writeQuoteBlock(&b, "Strongest negative signals", d.TopNegative)

		responses := rep.Dataset.ResponsesFor(d.Question)
		if len(responses) > 0 {
			b.WriteString("**Sample responses:**\n\n")
			n := len(responses)
			if n > samples {
				n = samples
			}
			for _, r := range responses[:n] {
				fmt.Fprintf(&b, "> %s\n\n", Truncate(r, 200))
			}
		}
	}

	writeQuickWins(&b, rep.Dataset, topWords)

	if len(rep.Dataset.MultipleChoice) > 0 {
		b.WriteString("## Multiple-choice results\n\n")
		b.WriteString("| Question | Votes |\n|---|---|\n")
		for _, row := range rep.Dataset.MultipleChoice {
			fmt.Fprintf(&b, "| %s | %d |\n", escapeTableCell(row.Question), row.Votes)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeQuoteBlock(b *strings.Builder, title string, rows []Classified) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s:**\n\n", title)
	for _, row := range rows {
		fmt.Fprintf(b, "- %q (confidence %.2f; %s)\n",
			Truncate(row.Response, 160), row.Confidence, row.Reasoning)
	}
	b.WriteString("\n")
}

// quickWinShare is the mention-rate floor for a theme to count as a
// priority item in the quick-wins section.
const quickWinShare = 0.05

// writeQuickWins pairs the stop-doing and start-doing questions into an
// immediate-actions section: themes mentioned by at least 5% of that
// question's respondents, pain points to eliminate vs initiatives to
// launch.
func writeQuickWins(b *strings.Builder, ds Dataset, topWords int) {
	stop := findQuestion(ds, "stop doing")
	start := findQuestion(ds, "start doing")
	if stop == "" && start == "" {
		return
	}

	b.WriteString("## Quick wins\n\n")
	writePriorityThemes(b, "Stop doing (top pain points)", ds.ResponsesFor(stop), topWords)
	writePriorityThemes(b, "Start doing (top initiatives)", ds.ResponsesFor(start), topWords)
}

func findQuestion(ds Dataset, phrase string) string {
	for _, q := range ds.Questions() {
		if strings.Contains(strings.ToLower(q), phrase) {
			return q
		}
	}
	return ""
}

func writePriorityThemes(b *strings.Builder, title string, responses []string, topWords int) {
	if len(responses) == 0 {
		return
	}
	floor := int(float64(len(responses))*quickWinShare + 0.5)
	if floor < 1 {
		floor = 1
	}
	fmt.Fprintf(b, "**%s** (%d responses):\n\n", title, len(responses))
	for _, w := range TopWords(responses, topWords) {
		if w.Count < floor {
			continue
		}
		fmt.Fprintf(b, "- %s: %d mentions (%.1f%%)\n", w.Word, w.Count, float64(w.Count)/float64(len(responses))*100)
	}
	b.WriteString("\n")
}

func escapeTableCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// WriteInsights renders the report and writes it atomically.
func WriteInsights(path string, rep InsightsReport) error {
	if err := WriteFileAtomic(path, []byte(RenderInsights(rep)), 0o644); err != nil {
		return fmt.Errorf("write insights: %w", err)
	}
	return nil
}
