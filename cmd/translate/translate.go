package translate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/acworkma/morse/cmd/common"
	"github.com/acworkma/morse/morse"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// Seam for tests.
var clipboardWriteAll = clipboard.WriteAll

type Params struct {
	Text   []string `pos:"true" optional:"true" help:"Text to translate. If none provided, reads lines from stdin."`
	Decode bool     `short:"d" help:"Decode morse code to text." default:"false"`
	Copy   bool     `short:"c" help:"Copy the result to the system clipboard." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "translate",
		Short:       "Translate between text and Morse code",
		Long:        "Convert text to International Morse Code, or decode Morse code back to text with -d. Unsupported characters are skipped with a warning; unrecognized morse groups decode to '?'.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			os.Exit(Run(params, os.Stdin, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func Run(params *Params, stdin io.Reader, stdout, stderr io.Writer) int {
	dir := morse.TextToMorse
	if params.Decode {
		dir = morse.MorseToText
	}

	var inputs []string
	if len(params.Text) > 0 {
		inputs = []string{strings.Join(params.Text, " ")}
	} else {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(stderr, "translate: %v\n", err)
			return 1
		}
	}

	exitCode := 0
	var outputs []string
	for _, input := range inputs {
		res, err := morse.Translate(input, dir)
		if err != nil {
			fmt.Fprintf(stderr, "translate: %v\n", err)
			return 1
		}

		for _, msg := range res.Errors {
			fmt.Fprintf(stderr, "translate: %s\n", msg)
		}
		if !res.Valid {
			exitCode = 1
		}

		fmt.Fprintln(stdout, res.Output)
		outputs = append(outputs, res.Output)
	}

	if params.Copy {
		if err := clipboardWriteAll(strings.Join(outputs, "\n")); err != nil {
			fmt.Fprintf(stderr, "translate: failed to copy to clipboard: %v\n", err)
			return 1
		}
	}

	return exitCode
}
