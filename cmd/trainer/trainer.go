package trainer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/acworkma/morse/cmd/common"
	"github.com/acworkma/morse/keyer"
	"github.com/acworkma/morse/morse"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
	morseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Seam for tests.
var clipboardWriteAll = clipboard.WriteAll

type Params struct {
	Text []string `pos:"true" optional:"true" help:"Initial practice text."`
	WPM  int      `short:"w" help:"Initial playback speed in words per minute." default:"20"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "trainer",
		Short:       "Interactive Morse code trainer",
		Long:        "Type a line of text, play it as Morse code and follow the highlighted symbol as it sounds. Adjust speed with +/-, copy the morse with ctrl+y, clear with ctrl+x.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params); err != nil {
				fmt.Fprintf(os.Stderr, "trainer: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params) error {
	k := keyer.New()
	k.SetSpeed(params.WPM)

	m := initialModel(k, strings.Join(params.Text, " "))
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	k.Stop()
	return err
}

// progressMsg reports the rune index in the morse sequence that just
// started sounding. from identifies the session's event channel so
// stale messages from a replaced session are ignored.
type progressMsg struct {
	from     chan tea.Msg
	position int
}

// playbackDoneMsg reports how the active session ended.
type playbackDoneMsg struct {
	from chan tea.Msg
	err  error
}

type model struct {
	keyer *keyer.Keyer

	text      string // practice line being edited
	sequence  string // its morse encoding, updated as the text changes
	warnings  []string
	current   int // rune index currently sounding, -1 when idle
	playing   bool
	statusMsg string

	// events carries progress/done messages from the keyer's playback
	// goroutine into the bubbletea loop. Replaced for every session.
	events chan tea.Msg
}

func initialModel(k *keyer.Keyer, text string) model {
	m := model{
		keyer:   k,
		current: -1,
	}
	m = m.setText(text)
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

// setText updates the practice line and re-encodes it.
func (m model) setText(text string) model {
	m.text = text
	res, err := morse.Translate(text, morse.TextToMorse)
	if err != nil {
		// Unreachable with a fixed direction; keep the old sequence.
		return m
	}
	m.sequence = res.Output
	m.warnings = res.Errors
	return m
}

// waitForEvent pumps one playback event into the update loop.
func waitForEvent(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func (m model) startPlayback() (model, tea.Cmd) {
	if m.sequence == "" {
		m.statusMsg = "nothing to play"
		return m, nil
	}
	if !m.keyer.IsSupported() {
		m.statusMsg = "audio not supported in this build"
		return m, nil
	}

	positions := keyer.TonePositions(m.sequence)

	// Buffered so the playback goroutine never blocks on the UI: one
	// slot per tone plus the completion message.
	events := make(chan tea.Msg, len(positions)+1)

	session, err := m.keyer.Play(m.sequence, func(symbolIndex, totalSymbols int) {
		events <- progressMsg{from: events, position: positions[symbolIndex]}
	})
	if err != nil {
		m.statusMsg = err.Error()
		return m, nil
	}

	go func() {
		events <- playbackDoneMsg{from: events, err: session.Wait()}
	}()

	m.events = events
	m.playing = true
	m.current = -1
	m.statusMsg = ""
	return m, waitForEvent(events)
}

func (m model) stopPlayback() model {
	m.keyer.Stop()
	m.playing = false
	m.current = -1
	return m
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		if msg.from != m.events {
			return m, nil // stale session
		}
		m.current = msg.position
		return m, waitForEvent(m.events)

	case playbackDoneMsg:
		if msg.from != m.events {
			return m, nil // stale session
		}
		m.playing = false
		m.current = -1
		// Cancellation already reflects a user action; anything else
		// is worth showing.
		if msg.err != nil && !errors.Is(msg.err, keyer.ErrPlaybackCancelled) {
			m.statusMsg = msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m = m.stopPlayback()
			return m, tea.Quit

		case "enter":
			if m.playing {
				m = m.stopPlayback()
			}
			return m.startPlayback()

		case "ctrl+s":
			m = m.stopPlayback()
			return m, nil

		case "+":
			m.keyer.SetSpeed(m.keyer.Speed() + 1)
			return m, nil

		case "-":
			m.keyer.SetSpeed(m.keyer.Speed() - 1)
			return m, nil

		case "ctrl+y":
			if m.sequence != "" {
				if err := clipboardWriteAll(m.sequence); err != nil {
					m.statusMsg = fmt.Sprintf("copy failed: %v", err)
				} else {
					m.statusMsg = "morse copied to clipboard"
				}
			}
			return m, nil

		case "ctrl+x":
			m = m.stopPlayback()
			m = m.setText("")
			m.statusMsg = ""
			return m, nil

		case "backspace":
			if len(m.text) > 0 {
				m = m.setText(m.text[:len(m.text)-1])
			}
			return m, nil

		default:
			// Printable characters extend the practice line.
			if len(msg.String()) == 1 && msg.String()[0] >= 32 && msg.String()[0] < 127 {
				m = m.setText(m.text + msg.String())
			}
			return m, nil
		}
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("MORSE TRAINER"))
	b.WriteString("\n\n")

	b.WriteString("Text:  ")
	b.WriteString(m.text)
	if !m.playing {
		b.WriteString("_")
	}
	b.WriteString("\n")

	b.WriteString("Morse: ")
	b.WriteString(renderSequence(m.sequence, m.current))
	b.WriteString("\n\n")

	state := "idle"
	if m.playing {
		state = "playing"
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("%d WPM | %s", m.keyer.Speed(), state)))
	b.WriteString("\n")

	for _, w := range m.warnings {
		b.WriteString(warnStyle.Render(w))
		b.WriteString("\n")
	}
	if m.statusMsg != "" {
		b.WriteString(statusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: play | ctrl+s: stop | +/-: speed | ctrl+y: copy morse | ctrl+x: clear | esc: quit"))
	b.WriteString("\n")

	return b.String()
}

// renderSequence highlights the rune at pos, the symbol currently
// sounding.
func renderSequence(sequence string, pos int) string {
	if sequence == "" {
		return ""
	}
	runes := []rune(sequence)
	if pos < 0 || pos >= len(runes) {
		return morseStyle.Render(sequence)
	}

	var b strings.Builder
	if pos > 0 {
		b.WriteString(morseStyle.Render(string(runes[:pos])))
	}
	b.WriteString(activeStyle.Render(string(runes[pos])))
	if pos+1 < len(runes) {
		b.WriteString(morseStyle.Render(string(runes[pos+1:])))
	}
	return b.String()
}
