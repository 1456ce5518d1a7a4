package iir

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// Shape is the response shape a prototype is transformed to.
type Shape int

const (
	LowPass Shape = iota
	HighPass
	BandPass
	BandStop
	LowShelf
	HighShelf
	BandShelf
)

var shapeNames = [...]string{
	LowPass:   "lowpass",
	HighPass:  "highpass",
	BandPass:  "bandpass",
	BandStop:  "bandstop",
	LowShelf:  "lowshelf",
	HighShelf: "highshelf",
	BandShelf: "bandshelf",
}

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}

	return shapeNames[s]
}

// Valid reports whether s is a defined shape.
func (s Shape) Valid() bool {
	return s >= LowPass && s <= BandShelf
}

// Shelf reports whether s needs a shelf prototype.
func (s Shape) Shelf() bool {
	return s == LowShelf || s == HighShelf || s == BandShelf
}

// Band reports whether s takes a center frequency and a width.
func (s Shape) Band() bool {
	return s == BandPass || s == BandStop || s == BandShelf
}

// ParseShape returns the shape named by String.
func ParseShape(name string) (Shape, error) {
	for s, n := range shapeNames {
		if n == name {
			return Shape(s), nil
		}
	}

	return 0, core.Configf("unknown shape %q", name)
}
