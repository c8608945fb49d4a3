package chart

import (
	"io"
	"os"
	"sort"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/acworkma/morse/cmd/common"
	"github.com/acworkma/morse/morse"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Params struct {
	Columns int `short:"c" help:"Number of character/code column pairs." default:"3"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "chart",
		Short:       "Print the Morse code chart",
		Long:        "Print the full International Morse Code chart: all supported letters, digits and punctuation with their dit/dah patterns.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			Run(params, os.Stdout)
		},
	}.ToCobra()
}

func Run(params *Params, stdout io.Writer) {
	columns := params.Columns
	if columns < 1 {
		columns = 1
	}

	chars := morse.SupportedCharacters()
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)

	header := table.Row{}
	for i := 0; i < columns; i++ {
		header = append(header, "Char", "Code")
	}
	t.AppendHeader(header)

	rows := (len(chars) + columns - 1) / columns
	for r := 0; r < rows; r++ {
		row := table.Row{}
		for c := 0; c < columns; c++ {
			idx := c*rows + r
			if idx < len(chars) {
				code, _ := morse.PatternFor(chars[idx])
				row = append(row, string(chars[idx]), code)
			} else {
				row = append(row, "", "")
			}
		}
		t.AppendRow(row)
	}

	t.Render()
}
