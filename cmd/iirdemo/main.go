// Command iirdemo drives the IIR filters of this module from the command
// line.
//
// Usage:
//
//	iirdemo impulse [flags]
//	iirdemo info [flags]
//
// impulse writes the impulse responses of a fixed set of fourth-order demo
// filters (1 kHz sample rate) as one "%e" value per line to bs.dat, lp.dat,
// hp_rbj.dat, lp_elliptic.dat, lp_cheby1.dat, lp_cheby2.dat and
// bp_bessel.dat. info designs one filter and prints its sections and a
// magnitude/phase table.
//
// Examples:
//
//	iirdemo impulse --dir out
//	iirdemo info --family elliptic --shape lowpass --order 6 --ripple 0.5
//	iirdemo info --family butterworth --shape bandstop --freq 100 --width 20
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

var version = "0.1.0"

// CLI is the kong command tree.
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version information"`

	Impulse ImpulseCmd `cmd:"" help:"Write impulse responses of the demo filters to .dat files"`
	Info    InfoCmd    `cmd:"" help:"Print the sections and response of one design"`
}

// env is bound into every command's Run method.
type env struct {
	stdout io.Writer
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("iirdemo"),
		kong.Description("IIR filter design demonstration"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version},
	)

	if err := ctx.Run(&env{stdout: os.Stdout}); err != nil {
		printError(os.Stderr, err.Error())
		os.Exit(1)
	}
}
