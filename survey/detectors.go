package survey

import (
	"regexp"
	"strings"
)

// All detectors are total functions over lowercased, normalized response
// text: empty input returns false, nothing panics.

// normalizeResponse prepares raw response text for classification:
// underscores become spaces (the export uses them in compound answers)
// and runs of whitespace collapse to single spaces.
func normalizeResponse(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

func matchesAny(patterns []*regexp.Regexp, lower string) bool {
	if lower == "" {
		return false
	}
	for _, p := range patterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

// hasGapIndicator reports whether the response contains an unmet-need
// pattern ("more X", "need X", "lacking", ...).
func hasGapIndicator(lower string) bool {
	return matchesAny(gapPatterns, lower)
}

// hasUncertainty reports whether the response expresses uncertainty
// ("not sure", "don't know", ...).
func hasUncertainty(lower string) bool {
	return matchesAny(uncertaintyPatterns, lower)
}

// hasNegation reports whether the response contains a negation cue,
// with one context-dependent override: under a positive-bias question,
// a non-uncertain response containing "stop" is a constructive
// "stop doing X" suggestion, not a complaint, so negation is suppressed.
// The suppression applies only to "stop"; other cues always count.
func hasNegation(lower string, qctx QuestionContext, uncertain bool) bool {
	if !matchesAny(negationPatterns, lower) {
		return false
	}
	if qctx == ContextPositiveBias && strings.Contains(lower, "stop") && !uncertain {
		// Re-test with "stop" removed: another cue must match on its own.
		stripped := strings.ReplaceAll(lower, "stop", " ")
		return matchesAny(negationPatterns, stripped)
	}
	return true
}

// containsAnyKeyword reports whether any keyword stem from the set is a
// substring of the response.
func containsAnyKeyword(lower string, keywords []string) bool {
	if lower == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
