package play

import (
	"bytes"
	"strings"
	"testing"
)

func TestHighlightAt(t *testing.T) {
	got := highlightAt([]rune("..."), 1)
	want := ".\033[7m.\033[0m."
	if got != want {
		t.Errorf("highlightAt = %q, want %q", got, want)
	}
}

func TestToSequenceText(t *testing.T) {
	var stderr bytes.Buffer
	seq, code := toSequence(&Params{}, "SOS", &stderr)
	if code != 0 {
		t.Fatalf("code = %d, stderr: %s", code, stderr.String())
	}
	if seq != "... --- ..." {
		t.Errorf("sequence = %q", seq)
	}
}

func TestToSequenceMorsePassthrough(t *testing.T) {
	var stderr bytes.Buffer
	seq, code := toSequence(&Params{Morse: true}, " ... --- ... ", &stderr)
	if code != 0 {
		t.Fatalf("code = %d", code)
	}
	if seq != "... --- ..." {
		t.Errorf("sequence = %q", seq)
	}
}

func TestToSequenceRejectsInvalidMorse(t *testing.T) {
	var stderr bytes.Buffer
	_, code := toSequence(&Params{Morse: true}, "not morse", &stderr)
	if code != 1 {
		t.Errorf("code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "not a valid morse sequence") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
