package morse

import "testing"

func TestSupportedCharacterCount(t *testing.T) {
	chars := SupportedCharacters()
	if len(chars) != 54 {
		t.Fatalf("SupportedCharacters() has %d entries, want 54", len(chars))
	}

	letters, digits, punct := 0, 0, 0
	for _, r := range chars {
		switch {
		case r >= 'A' && r <= 'Z':
			letters++
		case r >= '0' && r <= '9':
			digits++
		default:
			punct++
		}
	}
	if letters != 26 || digits != 10 || punct != 18 {
		t.Errorf("distribution = %d letters, %d digits, %d punctuation; want 26/10/18",
			letters, digits, punct)
	}
}

func TestPatternsAreUnique(t *testing.T) {
	seen := make(map[string]rune)
	for r, code := range toMorse {
		if prev, dup := seen[code]; dup {
			t.Errorf("pattern %q maps to both %q and %q", code, prev, r)
		}
		seen[code] = r
	}
}

func TestReverseMapRoundTrips(t *testing.T) {
	for r, code := range toMorse {
		if back, ok := fromMorse[code]; !ok || back != r {
			t.Errorf("fromMorse[%q] = %q, want %q", code, back, r)
		}
	}
}

func TestPatternFor(t *testing.T) {
	if code, ok := PatternFor('S'); !ok || code != "..." {
		t.Errorf("PatternFor('S') = %q, %v", code, ok)
	}
	if _, ok := PatternFor('~'); ok {
		t.Error("PatternFor('~') should not be supported")
	}
}
