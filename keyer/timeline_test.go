package keyer

import (
	"testing"
	"time"
)

const unit = 10 * time.Millisecond

func TestTimelineSingleSymbols(t *testing.T) {
	tests := []struct {
		sequence string
		tones    int
		total    time.Duration
	}{
		{".", 1, 2 * unit},  // 1 tone + 1 trailing gap
		{"-", 1, 4 * unit},  // 3 tone + 1 trailing gap
		{"..", 2, 4 * unit},
		{".-", 2, 6 * unit},
		{"...", 3, 6 * unit},
	}

	for _, tc := range tests {
		tl := buildTimeline(tc.sequence, unit)
		if len(tl.tones) != tc.tones {
			t.Errorf("buildTimeline(%q): %d tones, want %d", tc.sequence, len(tl.tones), tc.tones)
		}
		if tl.total != tc.total {
			t.Errorf("buildTimeline(%q): total %v, want %v", tc.sequence, tl.total, tc.total)
		}
		if tl.symbolCount != len(tc.sequence) {
			t.Errorf("buildTimeline(%q): symbolCount %d, want %d", tc.sequence, tl.symbolCount, len(tc.sequence))
		}
	}
}

func TestTimelineGapAccounting(t *testing.T) {
	// ". ." : dit(1) + gap(1) + char top-up(2) = 4 units before the
	// second tone starts. The inter-character gap totals exactly 3
	// units of silence.
	tl := buildTimeline(". .", unit)
	if len(tl.tones) != 2 {
		t.Fatalf("expected 2 tones, got %d", len(tl.tones))
	}
	if tl.tones[1].offset != 4*unit {
		t.Errorf("second tone offset = %v, want %v", tl.tones[1].offset, 4*unit)
	}

	// Handlers are unconditional top-ups, so a canonical " / " word
	// break advances 1 (element) + 2 (space) + 4 (slash) + 2 (space).
	tl = buildTimeline(". / .", unit)
	if tl.tones[1].offset != 10*unit {
		t.Errorf("tone after word break at %v, want %v", tl.tones[1].offset, 10*unit)
	}

	// A bare slash reaches the 7-unit word gap: 1 + 2 + 4.
	tl = buildTimeline(". /.", unit)
	if tl.tones[1].offset != 8*unit {
		t.Errorf("tone after bare slash at %v, want %v", tl.tones[1].offset, 8*unit)
	}
}

func TestTimelineConsecutiveSeparators(t *testing.T) {
	// Separators are additive top-ups, never resets: two spaces in a
	// row keep advancing the clock by 2 units each.
	tl := buildTimeline(".  .", unit)
	if tl.tones[1].offset != 6*unit {
		t.Errorf("offset = %v, want %v", tl.tones[1].offset, 6*unit)
	}
}

func TestTimelineSOS(t *testing.T) {
	// "... --- ..." at 1 unit:
	//   S: 3*(1+1) = 6, space +2 -> 8
	//   O: 3*(3+1) = 12 -> 20, space +2 -> 22
	//   S: 6 -> 28
	tl := buildTimeline("... --- ...", unit)
	if len(tl.tones) != 9 {
		t.Fatalf("expected 9 tones, got %d", len(tl.tones))
	}
	if tl.total != 28*unit {
		t.Errorf("total = %v, want %v", tl.total, 28*unit)
	}
	if tl.symbolCount != 11 {
		t.Errorf("symbolCount = %d, want 11", tl.symbolCount)
	}

	// Offsets strictly increase and indices are tone ordinals.
	for i, ev := range tl.tones {
		if ev.index != i {
			t.Errorf("tone %d has index %d", i, ev.index)
		}
		if i > 0 && ev.offset <= tl.tones[i-1].offset {
			t.Errorf("tone %d offset %v not after %v", i, ev.offset, tl.tones[i-1].offset)
		}
	}
}

func TestTimelineIgnoresForeignRunes(t *testing.T) {
	tl := buildTimeline(".x.", unit)
	if len(tl.tones) != 2 {
		t.Fatalf("expected 2 tones, got %d", len(tl.tones))
	}
	if tl.symbolCount != 3 {
		t.Errorf("symbolCount = %d, want 3 (raw length)", tl.symbolCount)
	}
	if tl.tones[1].offset != 2*unit {
		t.Errorf("foreign rune advanced the clock: offset %v", tl.tones[1].offset)
	}
}

func TestTonePositions(t *testing.T) {
	got := TonePositions("... / -")
	want := []int{0, 1, 2, 6}
	if len(got) != len(want) {
		t.Fatalf("TonePositions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("TonePositions = %v, want %v", got, want)
		}
	}
}

func TestTimelineScalesWithUnit(t *testing.T) {
	a := buildTimeline("... --- ...", unit)
	b := buildTimeline("... --- ...", 2*unit)
	if b.total != 2*a.total {
		t.Errorf("doubling the unit should double the total: %v vs %v", a.total, b.total)
	}
}
