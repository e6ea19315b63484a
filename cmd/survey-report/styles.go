package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Santhosh26/SC-Surevey-Analyzer/survey"
)

type reportStyles struct {
	title    lipgloss.Style
	question lipgloss.Style
	meta     lipgloss.Style
	positive lipgloss.Style
	neutral  lipgloss.Style
	negative lipgloss.Style
}

func newReportStyles(noColor bool) reportStyles {
	if noColor {
		plain := lipgloss.NewStyle()
		return reportStyles{plain, plain, plain, plain, plain, plain}
	}
	return reportStyles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("57")).Padding(0, 1),
		question: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		positive: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		neutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		negative: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// barWidth is the full width of a sentiment bar at 100%.
const barWidth = 30

func renderBar(share float64) string {
	n := int(share*barWidth + 0.5)
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
}

func renderReport(title string, ds survey.Dataset, dists []survey.Distribution, noColor bool) string {
	st := newReportStyles(noColor)
	var b strings.Builder

	b.WriteString(st.title.Render(title) + "\n\n")

	for _, d := range dists {
		b.WriteString(st.question.Render(d.Question) + "\n")
		b.WriteString(st.meta.Render(fmt.Sprintf("%d responses · context %s · mean confidence %.2f", d.Total, d.Context, d.MeanConfidence)) + "\n")

		b.WriteString(st.positive.Render(fmt.Sprintf("  positive %s %3d (%.0f%%)", renderBar(d.Share(survey.Positive)), d.Positive, d.Share(survey.Positive)*100)) + "\n")
		b.WriteString(st.neutral.Render(fmt.Sprintf("  neutral  %s %3d (%.0f%%)", renderBar(d.Share(survey.Neutral)), d.Neutral, d.Share(survey.Neutral)*100)) + "\n")
		b.WriteString(st.negative.Render(fmt.Sprintf("  negative %s %3d (%.0f%%)", renderBar(d.Share(survey.Negative)), d.Negative, d.Share(survey.Negative)*100)) + "\n")

		if words := survey.TopWords(ds.ResponsesFor(d.Question), 5); len(words) > 0 {
			parts := make([]string, 0, len(words))
			for _, w := range words {
				parts = append(parts, fmt.Sprintf("%s(%d)", w.Word, w.Count))
			}
			b.WriteString(st.meta.Render("  themes: "+strings.Join(parts, " ")) + "\n")
		}
		if len(d.TopNegative) > 0 {
			top := d.TopNegative[0]
			b.WriteString(st.meta.Render(fmt.Sprintf("  ↳ %q (%.2f)", survey.Truncate(top.Response, 80), top.Confidence)) + "\n")
		}
		b.WriteString("\n")
	}

	if len(ds.MultipleChoice) > 0 {
		b.WriteString(st.question.Render("Multiple-choice results") + "\n")
		for _, v := range ds.MultipleChoice {
			b.WriteString(st.meta.Render(fmt.Sprintf("  %-60s %d", survey.Truncate(v.Question, 60), v.Votes)) + "\n")
		}
	}
	return b.String()
}
