package iir

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

func TestApplyOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want Config
	}{
		{"defaults", nil, Config{MaxOrder: 16, Structure: biquad.DirectFormII}},
		{"max order", []Option{WithMaxOrder(4)}, Config{MaxOrder: 4, Structure: biquad.DirectFormII}},
		{"zero order ignored", []Option{WithMaxOrder(0)}, Config{MaxOrder: 16, Structure: biquad.DirectFormII}},
		{"negative order ignored", []Option{WithMaxOrder(-3)}, Config{MaxOrder: 16, Structure: biquad.DirectFormII}},
		{"structure", []Option{WithStructure(biquad.TransposedDirectFormII)}, Config{MaxOrder: 16, Structure: biquad.TransposedDirectFormII}},
		{"unknown structure ignored", []Option{WithStructure(biquad.Structure(42))}, Config{MaxOrder: 16, Structure: biquad.DirectFormII}},
		{"nil option", []Option{nil, WithMaxOrder(2)}, Config{MaxOrder: 2, Structure: biquad.DirectFormII}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplyOptions(tc.opts...); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestNewUsesConfig(t *testing.T) {
	f := New(WithMaxOrder(5), WithStructure(biquad.DirectFormI))

	if f.MaxOrder() != 5 || f.Structure() != biquad.DirectFormI {
		t.Fatalf("MaxOrder %d Structure %v", f.MaxOrder(), f.Structure())
	}

	if f.chain.MaxSections() != 5 {
		t.Fatalf("chain capacity %d, want 5", f.chain.MaxSections())
	}
}

func TestShape(t *testing.T) {
	for s := LowPass; s <= BandShelf; s++ {
		got, err := ParseShape(s.String())
		if err != nil || got != s {
			t.Fatalf("ParseShape(%q) = %v, %v", s.String(), got, err)
		}
	}

	if Shape(-1).Valid() || Shape(7).Valid() {
		t.Fatal("out-of-range shape reported valid")
	}

	if Shape(9).String() != "Shape(9)" {
		t.Fatalf("String = %q", Shape(9).String())
	}

	if _, err := ParseShape("comb"); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("err = %v", err)
	}

	if !BandShelf.Shelf() || !BandShelf.Band() || LowShelf.Band() || BandStop.Shelf() {
		t.Fatal("shape predicates wrong")
	}
}
