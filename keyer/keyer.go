// Package keyer turns a Morse symbol sequence into precisely timed
// audio tones.
//
// A Keyer holds the playback configuration (speed, tone frequency,
// volume) and at most one active Session. Play schedules the whole
// sequence up front as absolute offsets from a single start instant,
// then emits tones and progress callbacks from that reference clock;
// Stop cancels everything immediately. Sessions are identified by a
// generation counter so stale timers from a replaced session can never
// touch a newer one.
package keyer

import (
	"errors"
	"strings"
	"sync"
	"time"
)

var (
	// ErrAudioUnavailable means the audio device could not be acquired.
	ErrAudioUnavailable = errors.New("audio playback unavailable")
	// ErrPlaybackCancelled resolves sessions interrupted by Stop or by
	// a newer Play. It is a deliberate signal, not a failure; callers
	// typically errors.Is it away.
	ErrPlaybackCancelled = errors.New("playback cancelled")
)

// WPM and tone configuration limits.
const (
	MinWPM       = 5
	MaxWPM       = 40
	MinFrequency = 200.0
	MaxFrequency = 1200.0

	DefaultWPM       = 20
	DefaultFrequency = 600.0
	DefaultVolume    = 0.3
)

// ProgressFunc is invoked once per emitted tone, at the tone's start
// offset, with the zero-based ordinal of the tone and the total rune
// length of the sequence being played. It is advisory: panics are
// swallowed and never disturb the timeline.
type ProgressFunc func(symbolIndex, totalSymbols int)

// Keyer schedules and plays Morse audio. The zero value is not usable;
// call New.
type Keyer struct {
	mu   sync.Mutex
	sink sink

	wpm       int
	frequency float64
	volume    float64

	generation uint64
	active     *Session
}

// New returns a Keyer with default speed (20 WPM), frequency (600 Hz)
// and volume (0.3), wired to the platform audio sink.
func New() *Keyer {
	return newWithSink(platformSink())
}

func newWithSink(s sink) *Keyer {
	return &Keyer{
		sink:      s,
		wpm:       DefaultWPM,
		frequency: DefaultFrequency,
		volume:    DefaultVolume,
	}
}

// IsSupported reports whether this build/host can play audio at all.
func (k *Keyer) IsSupported() bool {
	return k.sink.available()
}

// SetSpeed sets the playback speed in words per minute, clamped to
// [MinWPM, MaxWPM]. It affects only sessions started afterwards, never
// one already playing.
func (k *Keyer) SetSpeed(wpm int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.wpm = min(max(wpm, MinWPM), MaxWPM)
}

// Speed returns the configured words per minute.
func (k *Keyer) Speed() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.wpm
}

// UnitDuration returns the wall-clock duration of one timing unit at
// the configured speed: 1200/WPM milliseconds (PARIS standard).
func (k *Keyer) UnitDuration() time.Duration {
	k.mu.Lock()
	defer k.mu.Unlock()
	return unitDuration(k.wpm)
}

func unitDuration(wpm int) time.Duration {
	return time.Duration(1200/float64(wpm)*1000) * time.Microsecond
}

// SetFrequency sets the tone frequency in Hz, clamped to
// [MinFrequency, MaxFrequency].
func (k *Keyer) SetFrequency(hz float64) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.frequency = min(max(hz, MinFrequency), MaxFrequency)
}

// SetVolume sets the playback volume, clamped to [0, 1].
func (k *Keyer) SetVolume(v float64) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.volume = min(max(v, 0), 1)
}

// Play schedules and starts playback of a Morse symbol sequence
// ('.', '-', ' ', '/'; other runes are skipped). Any session already
// active is cancelled first, so at most one session ever emits tone.
//
// The returned Session completes when the full computed duration has
// elapsed, or resolves with ErrPlaybackCancelled if interrupted. Play
// itself fails only with ErrAudioUnavailable, before any scheduling.
// An empty or whitespace-only sequence returns an already-completed
// session without touching the audio device.
func (k *Keyer) Play(sequence string, onProgress ProgressFunc) (*Session, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.stopLocked()

	if !k.sink.available() {
		return nil, ErrAudioUnavailable
	}

	if strings.TrimSpace(sequence) == "" {
		s := newSession(0)
		s.finish(nil)
		return s, nil
	}

	if err := k.sink.acquire(); err != nil {
		return nil, errors.Join(ErrAudioUnavailable, err)
	}

	tl := buildTimeline(sequence, unitDuration(k.wpm))

	k.generation++
	s := newSession(k.generation)
	k.active = s

	go k.run(s, tl, k.frequency, k.volume, onProgress)

	return s, nil
}

// Stop cancels the active session, hard-stopping all in-flight and
// scheduled tones. It is idempotent and a no-op when nothing is
// playing; the keyer is always idle afterwards.
func (k *Keyer) Stop() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.stopLocked()
}

func (k *Keyer) stopLocked() {
	if k.active == nil {
		return
	}
	s := k.active
	k.active = nil
	close(s.cancel)
	k.sink.stopAll()
	s.finish(ErrPlaybackCancelled)
}

// run emits the precomputed timeline. Every wait targets an absolute
// deadline derived from one start instant, so long sequences cannot
// accumulate timer drift.
func (k *Keyer) run(s *Session, tl timeline, freq, volume float64, onProgress ProgressFunc) {
	start := time.Now()

	for _, ev := range tl.tones {
		if !s.sleepUntil(start.Add(ev.offset)) {
			return
		}
		if !k.emitTone(s, freq, volume, ev.duration) {
			return
		}
		notify(onProgress, ev.index, tl.symbolCount)
	}

	if !s.sleepUntil(start.Add(tl.total)) {
		return
	}

	k.mu.Lock()
	if k.active == s {
		k.active = nil
	}
	k.mu.Unlock()
	s.finish(nil)
}

// emitTone starts a tone only while s is still the active session,
// under the keyer lock so no tone can reach the sink after Stop has
// cleared it.
func (k *Keyer) emitTone(s *Session, freq, volume float64, d time.Duration) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.active != s {
		return false
	}
	k.sink.startTone(freq, volume, d)
	return true
}

// notify shields the timeline from consumer callbacks: a panicking
// progress handler must not kill the playback goroutine.
func notify(onProgress ProgressFunc, index, total int) {
	if onProgress == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	onProgress(index, total)
}
