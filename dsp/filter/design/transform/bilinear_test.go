package transform

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/design/layout"
)

func TestBilinear_MapsPoints(t *testing.T) {
	tests := []struct {
		s, want complex128
	}{
		{0, 1},
		{layout.Infinity, -1},
		{complex(0, 1), complex(0, 1)},
		{-1, 0},
	}

	for _, tc := range tests {
		if got := bilinear(tc.s); cmplx.Abs(got-tc.want) > 1e-15 {
			t.Fatalf("bilinear(%v) = %v, want %v", tc.s, got, tc.want)
		}
	}
}

func TestBilinear_LeftHalfPlaneInsideUnitCircle(t *testing.T) {
	for _, s := range []complex128{complex(-1e-6, 100), complex(-0.5, 0.5), -1000, complex(-3, -7)} {
		if r := cmplx.Abs(bilinear(s)); r >= 1 {
			t.Fatalf("|bilinear(%v)| = %v", s, r)
		}
	}
}

func TestBilinear_KeepsPairingAndGain(t *testing.T) {
	src := layout.New(4)
	if err := src.AddConjugatePairs(complex(-0.3, 0.8), layout.Infinity); err != nil {
		t.Fatal(err)
	}

	if err := src.AddSingle(-0.5, layout.Infinity); err != nil {
		t.Fatal(err)
	}

	src.NormalGain = 2

	dst := layout.New(4)
	if err := Bilinear(dst, src); err != nil {
		t.Fatal(err)
	}

	if dst.NumPairs() != 2 || !dst.HasSingle() {
		t.Fatalf("pairs %d single %v", dst.NumPairs(), dst.HasSingle())
	}

	p := dst.Pair(0)
	if !p.Poles.IsConjugate() || p.Zeros.First != -1 || p.Zeros.Second != -1 {
		t.Fatalf("pair 0 = %+v", p)
	}

	got := dst.Gain * cmplx.Abs(dst.DigitalResponse(0))
	if math.Abs(got-2) > 1e-12 {
		t.Fatalf("DC gain %v, want 2", got)
	}
}

func TestBilinear_UnstableGain(t *testing.T) {
	src := layout.New(2)
	if err := src.AddSingle(1, layout.Infinity); err != nil {
		t.Fatal(err)
	}

	if err := Bilinear(layout.New(2), src); !errors.Is(err, core.ErrInstability) {
		t.Fatalf("err = %v, want ErrInstability", err)
	}
}
