package keyer

import "time"

// sink is where tones go. The production implementation wraps the
// process-wide beep speaker; tests substitute a recording fake. The
// keyer owns all scheduling, so a sink only needs to start tones and be
// able to revoke everything it has been handed.
type sink interface {
	// available reports whether this build/host can emit audio at all.
	available() bool
	// acquire prepares the underlying audio device. Idempotent; called
	// lazily on the first Play of each session.
	acquire() error
	// startTone begins emitting a tone immediately. It must not block
	// for the duration of the tone.
	startTone(freq float64, volume float64, d time.Duration)
	// stopAll hard-stops every in-flight and scheduled tone.
	stopAll()
}
