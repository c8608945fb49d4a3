package trainer

import (
	"strings"
	"testing"

	"github.com/acworkma/morse/keyer"
	tea "github.com/charmbracelet/bubbletea"
)

func testModel(t *testing.T, text string) model {
	t.Helper()
	return initialModel(keyer.New(), text)
}

func TestSetTextEncodes(t *testing.T) {
	m := testModel(t, "SOS")
	if m.sequence != "... --- ..." {
		t.Errorf("sequence = %q", m.sequence)
	}

	m = m.setText("HI")
	if m.sequence != ".... .." {
		t.Errorf("sequence after setText = %q", m.sequence)
	}

	m = m.setText("")
	if m.sequence != "" {
		t.Errorf("sequence after clear = %q", m.sequence)
	}
}

func TestTypingUpdatesSequence(t *testing.T) {
	m := testModel(t, "")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	m = next.(model)
	if m.text != "e" || m.sequence != "." {
		t.Errorf("text = %q, sequence = %q", m.text, m.sequence)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(model)
	if m.text != "" {
		t.Errorf("text after backspace = %q", m.text)
	}
}

func TestSpeedKeysClamp(t *testing.T) {
	k := keyer.New()
	k.SetSpeed(keyer.MaxWPM)
	m := initialModel(k, "")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m = next.(model)
	if k.Speed() != keyer.MaxWPM {
		t.Errorf("Speed = %d, want clamped %d", k.Speed(), keyer.MaxWPM)
	}
}

func TestStaleSessionMessagesIgnored(t *testing.T) {
	m := testModel(t, "SOS")
	m.events = make(chan tea.Msg, 1)
	m.playing = true

	stale := make(chan tea.Msg, 1)
	next, _ := m.Update(playbackDoneMsg{from: stale, err: nil})
	m = next.(model)
	if !m.playing {
		t.Error("stale done message flipped the playing state")
	}

	next, _ = m.Update(progressMsg{from: stale, position: 3})
	m = next.(model)
	if m.current != -1 {
		t.Errorf("stale progress moved the highlight to %d", m.current)
	}

	next, _ = m.Update(playbackDoneMsg{from: m.events, err: nil})
	m = next.(model)
	if m.playing {
		t.Error("current session's done message was ignored")
	}
}

func TestRenderSequenceHighlight(t *testing.T) {
	out := renderSequence("...", 1)
	if !strings.Contains(out, ".") {
		t.Fatalf("renderSequence lost content: %q", out)
	}
	// Out-of-range positions render unhighlighted.
	if got := renderSequence("...", -1); !strings.Contains(got, "...") {
		t.Errorf("idle render = %q", got)
	}
}

func TestCopySeam(t *testing.T) {
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}
	defer func() { clipboardWriteAll = orig }()

	m := testModel(t, "SOS")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = next.(model)

	if copied != "... --- ..." {
		t.Errorf("clipboard = %q", copied)
	}
	if m.statusMsg == "" {
		t.Error("expected a confirmation status message")
	}
}

func TestViewIncludesHelp(t *testing.T) {
	m := testModel(t, "SOS")
	view := m.View()
	for _, want := range []string{"MORSE TRAINER", "enter: play", "... --- ..."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
