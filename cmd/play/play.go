package play

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/acworkma/morse/cmd/common"
	"github.com/acworkma/morse/keyer"
	"github.com/acworkma/morse/morse"
	"github.com/gen2brain/beeep"
	"github.com/spf13/cobra"
)

type Params struct {
	Text      []string `pos:"true" optional:"true" help:"Text to play. If none provided, reads from stdin."`
	Morse     bool     `short:"m" help:"Treat input as a morse sequence instead of text." default:"false"`
	WPM       int      `short:"w" help:"Playback speed in words per minute (5-40)." default:"20"`
	Frequency float64  `short:"f" help:"Tone frequency in Hz (200-1200)." default:"600"`
	Volume    float64  `short:"v" help:"Volume between 0.0 and 1.0." default:"0.3"`
	Quiet     bool     `short:"q" help:"Do not render the live symbol highlight." default:"false"`
	Notify    bool     `help:"Send a desktop notification when playback completes." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "play",
		Short:       "Play text as Morse code audio",
		Long:        "Encode text to International Morse Code and play it through the speakers, highlighting each symbol as it sounds. Ctrl-C stops playback.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			os.Exit(Run(params, os.Stdin, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func Run(params *Params, stdin io.Reader, stdout, stderr io.Writer) int {
	k := keyer.New()
	if !k.IsSupported() {
		fmt.Fprintln(stderr, "play: audio playback is not supported in this build (requires CGO on Linux)")
		return 1
	}

	input, err := readInput(params, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "play: %v\n", err)
		return 1
	}

	sequence, code := toSequence(params, input, stderr)
	if code != 0 {
		return code
	}
	if strings.TrimSpace(sequence) == "" {
		return 0
	}

	k.SetSpeed(params.WPM)
	k.SetFrequency(params.Frequency)
	k.SetVolume(params.Volume)

	var onProgress keyer.ProgressFunc
	if !params.Quiet {
		positions := keyer.TonePositions(sequence)
		runes := []rune(sequence)
		onProgress = func(symbolIndex, totalSymbols int) {
			fmt.Fprintf(stdout, "\r%s", highlightAt(runes, positions[symbolIndex]))
		}
		fmt.Fprintf(stdout, "%s", sequence)
	}

	session, err := k.Play(sequence, onProgress)
	if err != nil {
		fmt.Fprintf(stderr, "\nplay: %v\n", err)
		return 1
	}

	// Ctrl-C stops playback instead of killing the process mid-tone.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		k.Stop()
	}()

	err = session.Wait()
	if !params.Quiet {
		fmt.Fprintln(stdout)
	}

	switch {
	case err == nil:
		if params.Notify {
			_ = beeep.Notify("Morse", "Playback finished", "")
		}
		return 0
	case errors.Is(err, keyer.ErrPlaybackCancelled):
		// User-initiated stop, nothing to report.
		return 0
	default:
		fmt.Fprintf(stderr, "play: %v\n", err)
		return 1
	}
}

func readInput(params *Params, stdin io.Reader) (string, error) {
	if len(params.Text) > 0 {
		return strings.Join(params.Text, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// toSequence resolves the input into a playable morse sequence,
// reporting translation warnings on stderr.
func toSequence(params *Params, input string, stderr io.Writer) (string, int) {
	if params.Morse {
		if !morse.ValidateMorse(input) {
			fmt.Fprintln(stderr, "play: input is not a valid morse sequence")
			return "", 1
		}
		return strings.TrimSpace(input), 0
	}

	res, err := morse.Translate(input, morse.TextToMorse)
	if err != nil {
		fmt.Fprintf(stderr, "play: %v\n", err)
		return "", 1
	}
	for _, msg := range res.Errors {
		fmt.Fprintf(stderr, "play: %s\n", msg)
	}
	return res.Output, 0
}

// highlightAt renders the sequence with the rune at pos in reverse
// video, so rewriting the line with \r tracks the sounding symbol.
func highlightAt(runes []rune, pos int) string {
	var b strings.Builder
	for i, r := range runes {
		if i == pos {
			b.WriteString("\033[7m")
			b.WriteRune(r)
			b.WriteString("\033[0m")
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
