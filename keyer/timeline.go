package keyer

import "time"

// toneEvent is one scheduled tone: when it starts relative to session
// start, how long it sounds, and its ordinal among the tones of the
// sequence (for progress reporting).
type toneEvent struct {
	offset   time.Duration
	duration time.Duration
	index    int
}

// timeline is the fully scheduled form of a morse sequence. All offsets
// are absolute from session start, so playback never accumulates drift
// from chained relative delays.
type timeline struct {
	tones       []toneEvent
	total       time.Duration
	symbolCount int
}

// Standard ITU timing ratios, in dit units. Every emitted symbol
// unconditionally contributes its own trailing 1-unit gap; separators
// only top up the difference to the 3-unit character gap or the 7-unit
// word gap. Resetting the accounting instead would drift by whole units
// on consecutive separators.
const (
	ditUnits     = 1
	dahUnits     = 3
	elementGap   = 1
	charGapTopUp = 2 // 1 elementGap already paid -> 3 total
	wordGapTopUp = 4 // 3 charGap already paid -> 7 total
)

// buildTimeline walks the sequence once, emitting a tone event per dit
// and dah. Runes outside the morse symbol set advance nothing but still
// count toward symbolCount, which is the raw rune length of the input.
func buildTimeline(sequence string, unit time.Duration) timeline {
	tl := timeline{}

	var offset time.Duration
	tone := 0
	for _, r := range sequence {
		tl.symbolCount++
		switch r {
		case '.':
			tl.tones = append(tl.tones, toneEvent{offset: offset, duration: ditUnits * unit, index: tone})
			tone++
			offset += (ditUnits + elementGap) * unit
		case '-':
			tl.tones = append(tl.tones, toneEvent{offset: offset, duration: dahUnits * unit, index: tone})
			tone++
			offset += (dahUnits + elementGap) * unit
		case ' ':
			offset += charGapTopUp * unit
		case '/':
			offset += wordGapTopUp * unit
		}
	}

	tl.total = offset
	return tl
}

// TonePositions maps tone ordinals back to rune indices in sequence:
// element i is the index of the rune sounded when a progress callback
// reports symbolIndex i. UIs use it to highlight the symbol currently
// playing.
func TonePositions(sequence string) []int {
	var positions []int
	for i, r := range []rune(sequence) {
		if r == '.' || r == '-' {
			positions = append(positions, i)
		}
	}
	return positions
}
