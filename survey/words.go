package survey

import (
	"regexp"
	"sort"
	"strings"
)

// Stopwords excluded from word-frequency statistics. The second group
// covers filler verbs that dominate "what should we do" answers without
// carrying a theme.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "do", "does", "did", "will", "would", "could",
		"should", "may", "might", "can", "our", "we", "us", "i", "my", "me",
		"more", "better", "new", "using", "use", "make", "need",
	} {
		stopwords[w] = struct{}{}
	}
}

var nonWord = regexp.MustCompile(`[^\w\s]`)

// CleanText lowercases text and strips punctuation, leaving
// space-separated word tokens.
func CleanText(text string) string {
	text = strings.ToLower(text)
	text = nonWord.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}

// WordCount is one entry in a word-frequency ranking.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TopWords returns the topN most frequent non-stopword tokens (longer
// than two characters) across the responses. Ties break alphabetically
// so the ranking is deterministic.
func TopWords(responses []string, topN int) []WordCount {
	counts := make(map[string]int)
	for _, response := range responses {
		for _, w := range strings.Fields(CleanText(response)) {
			if len(w) <= 2 {
				continue
			}
			if _, skip := stopwords[w]; skip {
				continue
			}
			counts[w]++
		}
	}

	out := make([]WordCount, 0, len(counts))
	for w, n := range counts {
		out = append(out, WordCount{Word: w, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
