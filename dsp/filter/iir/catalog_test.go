package iir

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/design/prototype"
)

const (
	testRate   = 48000.0
	testFreq   = 1000.0
	testWidth  = 400.0
	testGainDB = 6.0
)

type namedDesign struct {
	name string
	d    Design
}

// catalog returns every family/shape combination at a moderate order.
func catalog(order int) []namedDesign {
	pass := []prototype.Prototype{
		prototype.Butterworth{},
		prototype.ChebyshevI{RippleDB: 1},
		prototype.ChebyshevII{StopbandDB: 40},
		prototype.Elliptic{RippleDB: 1, Rolloff: 0},
		prototype.Bessel{},
	}

	shelf := []prototype.Prototype{
		prototype.ButterworthShelf{GainDB: testGainDB},
		prototype.ChebyshevIShelf{GainDB: -testGainDB, RippleDB: 0.5},
		prototype.ChebyshevIIShelf{GainDB: testGainDB, StopbandDB: 30},
		prototype.BesselShelf{GainDB: -testGainDB},
	}

	var out []namedDesign

	add := func(shape Shape, p prototype.Prototype) {
		d := Design{
			Shape:      shape,
			Prototype:  p,
			Order:      order,
			SampleRate: testRate,
			Frequency:  testFreq,
		}
		if shape.Band() {
			d.Width = testWidth
		}

		out = append(out, namedDesign{name: fmt.Sprintf("%s/%s", p.Name(), shape), d: d})
	}

	for _, p := range pass {
		for _, s := range []Shape{LowPass, HighPass, BandPass, BandStop} {
			add(s, p)
		}
	}

	for _, p := range shelf {
		for _, s := range []Shape{LowShelf, HighShelf, BandShelf} {
			add(s, p)
		}
	}

	return out
}
