package morse

import "strings"

// maxAmbiguousLen caps how long a morse string without any group
// delimiters may be before we refuse to call it valid. Anything longer
// cannot be a single character and is unparseable without boundaries.
const maxAmbiguousLen = 9

// ValidateMorse reports whether sequence looks like well-formed Morse
// code. With delimiters present, every space/'/'-separated group
// must be a known pattern. A sequence with no delimiters at all is
// inherently ambiguous, so this is only a best-effort sanity check: it
// is accepted when short enough and not a degenerate run of identical
// or strictly alternating symbols.
func ValidateMorse(sequence string) bool {
	trimmed := strings.TrimSpace(sequence)
	if trimmed == "" {
		return false
	}

	for _, r := range trimmed {
		switch r {
		case '.', '-', ' ', '/':
		default:
			return false
		}
	}

	if !strings.ContainsAny(trimmed, " /") {
		return len(trimmed) <= maxAmbiguousLen && !degenerateRun(trimmed)
	}

	for _, word := range strings.Split(trimmed, "/") {
		for _, group := range strings.Fields(word) {
			if _, ok := fromMorse[group]; !ok {
				return false
			}
		}
	}
	return true
}

// degenerateRun detects undelimited sequences that no single character
// could produce: 7+ dits, 6+ dahs, or 6+ alternating dit-dah pairs.
func degenerateRun(s string) bool {
	if len(s) >= 7 && strings.Count(s, ".") == len(s) {
		return true
	}
	if len(s) >= 6 && strings.Count(s, "-") == len(s) {
		return true
	}
	return len(s) >= 12 && len(s)%2 == 0 && s == strings.Repeat(".-", len(s)/2)
}
