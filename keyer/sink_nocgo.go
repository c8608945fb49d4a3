//go:build linux && !cgo

package keyer

import "time"

// Audio on Linux requires CGO for the beep speaker backend. Without it
// the sink reports itself unavailable and Play fails with
// ErrAudioUnavailable before any scheduling.
type unavailableSink struct{}

func platformSink() sink {
	return unavailableSink{}
}

func (unavailableSink) available() bool { return false }

func (unavailableSink) acquire() error { return ErrAudioUnavailable }

func (unavailableSink) startTone(freq float64, volume float64, d time.Duration) {}

func (unavailableSink) stopAll() {}
