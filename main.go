package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/acworkma/morse/cmd/chart"
	"github.com/acworkma/morse/cmd/play"
	"github.com/acworkma/morse/cmd/trainer"
	"github.com/acworkma/morse/cmd/translate"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "morse",
		Short:   "Translate and play International Morse Code",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			translate.Cmd(),
			play.Cmd(),
			chart.Cmd(),
			trainer.Cmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuildInfo := debug.ReadBuildInfo()
	if !hasBuildInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
