package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design/prototype"
	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// InfoCmd designs one filter and prints its sections and response.
type InfoCmd struct {
	Family    string  `short:"f" enum:"butterworth,chebyshev1,chebyshev2,elliptic,bessel" default:"butterworth" help:"Prototype family (${enum})"`
	Shape     string  `short:"s" enum:"lowpass,highpass,bandpass,bandstop,lowshelf,highshelf,bandshelf" default:"lowpass" help:"Response shape (${enum})"`
	Order     int     `short:"o" default:"4" help:"Filter order"`
	Rate      float64 `short:"r" default:"1000" help:"Sample rate in Hz"`
	Freq      float64 `default:"100" help:"Cutoff or center frequency in Hz"`
	Width     float64 `default:"20" help:"Band width in Hz (band shapes)"`
	Gain      float64 `default:"6" help:"Shelf gain in dB (shelf shapes)"`
	Ripple    float64 `default:"1" help:"Passband ripple in dB (chebyshev1, elliptic)"`
	Stopband  float64 `default:"40" help:"Stopband attenuation in dB (chebyshev2)"`
	Rolloff   float64 `default:"0" help:"Elliptic transition steepness"`
	Structure string  `enum:"df1,df2,tdf2" default:"df2" help:"Recursion structure (${enum})"`
	Points    int     `default:"12" help:"Rows in the response table"`
}

var structureNames = map[string]biquad.Structure{
	"df1":  biquad.DirectFormI,
	"df2":  biquad.DirectFormII,
	"tdf2": biquad.TransposedDirectFormII,
}

// Run implements the info command.
func (c *InfoCmd) Run(e *env) error {
	d, err := c.design()
	if err != nil {
		return err
	}

	f := iir.New(iir.WithStructure(structureNames[c.Structure]))
	if err := f.Setup(d); err != nil {
		return err
	}

	printTitle(e.stdout, fmt.Sprintf("%s %s, order %d", d.Prototype.Name(), d.Shape, d.Order))
	printKeyValue(e.stdout, "structure", f.Structure())
	printKeyValue(e.stdout, "sections", f.NumSections())
	printKeyValue(e.stdout, "sample rate", d.SampleRate)
	fmt.Fprintln(e.stdout)

	if err := writeSections(e.stdout, f.Sections()); err != nil {
		return err
	}

	fmt.Fprintln(e.stdout)

	return writeResponse(e.stdout, f, responseFrequencies(c.Points, d.SampleRate))
}

// design maps the flags onto an iir.Design.
func (c *InfoCmd) design() (iir.Design, error) {
	shape, err := iir.ParseShape(c.Shape)
	if err != nil {
		return iir.Design{}, err
	}

	p, err := c.prototype(shape.Shelf())
	if err != nil {
		return iir.Design{}, err
	}

	d := iir.Design{
		Shape:      shape,
		Prototype:  p,
		Order:      c.Order,
		SampleRate: c.Rate,
		Frequency:  c.Freq,
	}
	if shape.Band() {
		d.Width = c.Width
	}

	return d, nil
}

func (c *InfoCmd) prototype(shelf bool) (prototype.Prototype, error) {
	switch c.Family {
	case "butterworth":
		if shelf {
			return prototype.ButterworthShelf{GainDB: c.Gain}, nil
		}

		return prototype.Butterworth{}, nil
	case "chebyshev1":
		if shelf {
			return prototype.ChebyshevIShelf{GainDB: c.Gain, RippleDB: c.Ripple}, nil
		}

		return prototype.ChebyshevI{RippleDB: c.Ripple}, nil
	case "chebyshev2":
		if shelf {
			return prototype.ChebyshevIIShelf{GainDB: c.Gain, StopbandDB: c.Stopband}, nil
		}

		return prototype.ChebyshevII{StopbandDB: c.Stopband}, nil
	case "elliptic":
		if shelf {
			return nil, core.Configf("elliptic: no shelf prototype")
		}

		return prototype.Elliptic{RippleDB: c.Ripple, Rolloff: c.Rolloff}, nil
	case "bessel":
		if shelf {
			return prototype.BesselShelf{GainDB: c.Gain}, nil
		}

		return prototype.Bessel{}, nil
	default:
		return nil, core.Configf("unknown family %q", c.Family)
	}
}

func writeSections(w io.Writer, sections []biquad.Coefficients) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "Section\tB0\tB1\tB2\tA1\tA2\t|p|"); err != nil {
		return err
	}

	for i, s := range sections {
		if _, err := fmt.Fprintf(tw, "%d\t%.8f\t%.8f\t%.8f\t%.8f\t%.8f\t%.6f\n",
			i, s.B0, s.B1, s.B2, s.A1, s.A2, s.PoleRadius()); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func writeResponse(w io.Writer, f *iir.Filter, freqs []float64) error {
	mags := make([]float64, len(freqs))
	f.MagnitudeResponse(mags, freqs)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "Hz\tdB\tPhase"); err != nil {
		return err
	}

	for i, hz := range freqs {
		if _, err := fmt.Fprintf(tw, "%.2f\t%.3f\t%.4f\n",
			hz, core.LinearToDB(mags[i]), f.Phase(hz)); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// responseFrequencies spaces n points logarithmically from fs/1000 to just
// below Nyquist.
func responseFrequencies(n int, sampleRate float64) []float64 {
	if n < 2 {
		n = 2
	}

	lo := sampleRate / 1000
	hi := 0.499 * sampleRate
	ratio := math.Pow(hi/lo, 1/float64(n-1))

	freqs := make([]float64, n)
	hz := lo

	for i := range freqs {
		freqs[i] = hz
		hz *= ratio
	}

	return freqs
}
