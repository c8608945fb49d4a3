//go:build (linux && cgo) || windows || darwin

package keyer

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = 44100
	// envelope is the linear attack/release ramp around each tone's
	// plateau. Without it every tone starts and ends with an audible
	// click.
	envelope = 5 * time.Millisecond
)

// The speaker is a process-wide singleton: initialized once, reused by
// every keyer and session in the process.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// speakerSink plays tones through the beep speaker.
type speakerSink struct{}

func platformSink() sink {
	return speakerSink{}
}

func (speakerSink) available() bool {
	return true
}

func (speakerSink) acquire() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(beep.SampleRate(sampleRate), sampleRate/10)
	})
	return speakerErr
}

func (speakerSink) startTone(freq float64, volume float64, d time.Duration) {
	speaker.Play(&toneStreamer{
		samples:   int(float64(sampleRate) * d.Seconds()),
		frequency: freq,
		volume:    volume,
	})
}

func (speakerSink) stopAll() {
	speaker.Clear()
}

// toneStreamer generates a sine tone of a fixed sample count with a
// linear attack/release envelope.
type toneStreamer struct {
	samples   int
	position  int
	frequency float64
	volume    float64
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	fadeLen := int(float64(sampleRate) * envelope.Seconds())
	if fadeLen > t.samples/2 {
		fadeLen = t.samples / 2
	}

	for i := range samples {
		if t.position >= t.samples {
			return i, false
		}

		phase := 2 * math.Pi * t.frequency * float64(t.position) / float64(sampleRate)
		value := math.Sin(phase)

		gain := 1.0
		if t.position < fadeLen {
			gain = float64(t.position) / float64(fadeLen)
		} else if t.position > t.samples-fadeLen {
			gain = float64(t.samples-t.position) / float64(fadeLen)
		}

		value *= gain * t.volume
		samples[i][0] = value
		samples[i][1] = value
		t.position++
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error {
	return nil
}
