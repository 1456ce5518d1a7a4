package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

const (
	demoOrder  = 4
	demoRate   = 1000.0
	demoCenter = 100.0
	demoWidth  = 20.0
	demoCutoff = 100.0
)

type demo struct {
	file      string
	title     string
	structure biquad.Structure
	setup     func(f *iir.Filter) error
}

var demos = []demo{
	{"bs.dat", "Butterworth band-stop, Direct Form I", biquad.DirectFormI, func(f *iir.Filter) error {
		return f.ButterworthBandStop(demoOrder, demoRate, demoCenter, demoWidth)
	}},
	{"lp.dat", "Butterworth low shelf, +10 dB", biquad.DirectFormII, func(f *iir.Filter) error {
		return f.ButterworthLowShelf(demoOrder, demoRate, demoCutoff, 10)
	}},
	{"hp_rbj.dat", "RBJ high-pass, Q = 5", biquad.DirectFormII, func(f *iir.Filter) error {
		c, err := design.Highpass(demoCutoff, 5, demoRate)
		if err != nil {
			return err
		}

		return f.SetSections(demoRate, c)
	}},
	{"lp_elliptic.dat", "Elliptic low-pass, 5 dB ripple", biquad.DirectFormII, func(f *iir.Filter) error {
		return f.EllipticLowPass(demoOrder, demoRate, demoCutoff, 5, 0.1)
	}},
	{"lp_cheby1.dat", "Chebyshev I low-pass, 5 dB ripple", biquad.DirectFormII, func(f *iir.Filter) error {
		return f.ChebyshevILowPass(demoOrder, demoRate, demoCutoff, 5)
	}},
	{"lp_cheby2.dat", "Chebyshev II low-pass, 20 dB stopband", biquad.DirectFormII, func(f *iir.Filter) error {
		return f.ChebyshevIILowPass(demoOrder, demoRate, demoCutoff, 20)
	}},
	{"bp_bessel.dat", "Bessel band-pass", biquad.DirectFormII, func(f *iir.Filter) error {
		return f.BesselBandPass(demoOrder, demoRate, demoCenter, demoWidth)
	}},
}

// ImpulseCmd writes the demo impulse responses.
type ImpulseCmd struct {
	Dir      string `short:"d" type:"path" default:"." help:"Output directory"`
	Length   int    `short:"n" default:"1000" help:"Samples per file"`
	Position int    `short:"p" default:"10" help:"Index of the unit impulse"`
}

// Run implements the impulse command.
func (c *ImpulseCmd) Run(e *env) error {
	if c.Length < 1 || c.Position < 0 || c.Position >= c.Length {
		return fmt.Errorf("impulse position %d outside [0, %d)", c.Position, c.Length)
	}

	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	printTitle(e.stdout, "Impulse responses")

	for _, d := range demos {
		f := iir.New(iir.WithStructure(d.structure))
		if err := d.setup(f); err != nil {
			return fmt.Errorf("%s: %w", d.file, err)
		}

		path := filepath.Join(c.Dir, d.file)
		if err := writeImpulse(path, f, c.Length, c.Position); err != nil {
			return err
		}

		printKeyValue(e.stdout, d.file, d.title)
	}

	fmt.Fprintln(e.stdout, "finished!")

	return nil
}

// writeImpulse runs a unit impulse at pos through f and writes every output
// sample on its own line.
func writeImpulse(path string, f *iir.Filter, length, pos int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := bufio.NewWriter(file)

	for i := range length {
		x := 0.0
		if i == pos {
			x = 1
		}

		if _, err := fmt.Fprintf(w, "%e\n", f.Filter(x)); err != nil {
			_ = file.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}

	return file.Close()
}
