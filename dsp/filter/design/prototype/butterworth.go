package prototype

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/design/layout"
)

// Butterworth is the maximally flat all-pole low-pass. The -3 dB point is
// at the cutoff.
type Butterworth struct{}

// Name implements Prototype.
func (Butterworth) Name() string { return "butterworth" }

// Shelf implements Prototype.
func (Butterworth) Shelf() bool { return false }

func (Butterworth) design(l *layout.Layout, order int) error {
	return butterworthPoles(order).addAllPole(l)
}

// ButterworthShelf is a Butterworth low shelf with GainDB at DC and unity
// gain above the transition.
type ButterworthShelf struct {
	GainDB float64
}

// Name implements Prototype.
func (ButterworthShelf) Name() string { return "butterworth-shelf" }

// Shelf implements Prototype.
func (ButterworthShelf) Shelf() bool { return true }

func (b ButterworthShelf) design(l *layout.Layout, order int) error {
	g, err := validateGain(b.Name(), b.GainDB)
	if err != nil {
		return err
	}

	return butterworthPoles(order).addShelf(l, order, g)
}

// butterworthPoles places the poles on the unit circle at
// -sin(theta) + j*cos(theta), theta = (2i+1)*pi/(2n).
func butterworthPoles(n int) poleSet {
	ps := poleSet{pairs: make([]complex128, 0, n/2)}

	for i := range n / 2 {
		theta := float64(2*i+1) * math.Pi / float64(2*n)
		ps.pairs = append(ps.pairs, complex(-math.Sin(theta), math.Cos(theta)))
	}

	if n%2 == 1 {
		ps.real = -1
		ps.hasReal = true
	}

	return ps
}
