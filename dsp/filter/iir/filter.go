package iir

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design/layout"
	"github.com/cwbudde/algo-iir/dsp/filter/design/prototype"
	"github.com/cwbudde/algo-iir/dsp/filter/design/transform"
)

// Design describes one pipeline configuration.
//
// Frequency is the cutoff of low/high shapes and the center of band shapes,
// Width the band width; both in Hz. Shelf shapes need a shelf prototype
// (ButterworthShelf, ChebyshevIShelf, ChebyshevIIShelf, BesselShelf); the
// other shapes need a low-pass prototype.
type Design struct {
	Shape      Shape
	Prototype  prototype.Prototype
	Order      int
	SampleRate float64
	Frequency  float64
	Width      float64
}

// Filter is a cascade of biquad sections with its delay registers.
type Filter struct {
	cfg   Config
	chain *biquad.Chain

	// analog, warped and next are scratch; current holds the committed
	// digital layout.
	analog  *layout.Layout
	warped  *layout.Layout
	next    *layout.Layout
	current *layout.Layout
	scratch []biquad.Coefficients

	design     Design
	sampleRate float64
}

// New returns an unconfigured filter. Until the first successful
// configuration it passes its input through unchanged.
func New(opts ...Option) *Filter {
	cfg := ApplyOptions(opts...)

	return &Filter{
		cfg:     cfg,
		chain:   biquad.NewChain(cfg.MaxOrder, cfg.Structure),
		analog:  layout.New(cfg.MaxOrder),
		warped:  layout.New(2 * cfg.MaxOrder),
		next:    layout.New(2 * cfg.MaxOrder),
		current: layout.New(2 * cfg.MaxOrder),
		scratch: make([]biquad.Coefficients, 0, cfg.MaxOrder),
	}
}

// Setup designs d and installs it. On error the previous coefficients,
// layout and design stay in place. The delay registers are kept either way.
func (f *Filter) Setup(d Design) error {
	if err := f.validate(d); err != nil {
		return err
	}

	if err := prototype.Design(d.Prototype, f.analog, d.Order); err != nil {
		return err
	}

	fc := d.Frequency / d.SampleRate
	width := d.Width / d.SampleRate

	var err error

	switch d.Shape {
	case LowPass, LowShelf:
		err = transform.LowPass(f.warped, f.analog, fc)
	case HighPass, HighShelf:
		err = transform.HighPass(f.warped, f.analog, fc)
	case BandPass, BandShelf:
		err = transform.BandPass(f.warped, f.analog, fc, width)
	case BandStop:
		err = transform.BandStop(f.warped, f.analog, fc, width)
	}

	if err != nil {
		return err
	}

	if err := transform.Bilinear(f.next, f.warped); err != nil {
		return err
	}

	sections, err := layout.Assemble(f.scratch[:0], f.next)
	if err != nil {
		return err
	}

	if err := f.chain.SetCoefficients(sections); err != nil {
		return err
	}

	f.current, f.next = f.next, f.current
	f.design = d
	f.sampleRate = d.SampleRate

	return nil
}

func (f *Filter) validate(d Design) error {
	if !d.Shape.Valid() {
		return core.Configf("unknown shape %d", int(d.Shape))
	}

	if d.Prototype == nil {
		return core.Configf("%s: nil prototype", d.Shape)
	}

	if d.Shape.Shelf() != d.Prototype.Shelf() {
		return core.Configf("%s shape needs a matching prototype, got %s", d.Shape, d.Prototype.Name())
	}

	if d.Order < 1 || d.Order > f.cfg.MaxOrder {
		return core.Configf("order %d out of range [1, %d]", d.Order, f.cfg.MaxOrder)
	}

	if err := core.ValidateFrequency(d.Frequency, d.SampleRate); err != nil {
		return err
	}

	if d.Shape.Band() {
		nyquist := d.SampleRate / 2
		limit := 2 * min(d.Frequency, nyquist-d.Frequency)

		if !core.IsFinite(d.Width) || d.Width <= 0 || d.Width >= limit {
			return core.Configf("width %v Hz must be in (0, %v) around %v Hz", d.Width, limit, d.Frequency)
		}
	}

	return nil
}

// SetSections installs a ready-made cascade, such as a cookbook biquad,
// evaluated at sampleRate. The sections must be finite with all poles inside
// the unit circle. On error the filter is unchanged.
func (f *Filter) SetSections(sampleRate float64, sections ...biquad.Coefficients) error {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return err
	}

	if len(sections) == 0 || len(sections) > f.cfg.MaxOrder {
		return core.Configf("%d sections, want 1..%d", len(sections), f.cfg.MaxOrder)
	}

	for i := range sections {
		if c := &sections[i]; !c.Stable() {
			return fmt.Errorf("%w: section %d %+v has pole radius %v", core.ErrInstability, i, *c, c.PoleRadius())
		}
	}

	if err := f.chain.SetCoefficients(sections); err != nil {
		return err
	}

	f.current.Reset()
	f.design = Design{}
	f.sampleRate = sampleRate

	return nil
}

// Filter processes one sample. It performs no validation and never fails;
// non-finite input propagates.
func (f *Filter) Filter(x float64) float64 {
	return f.chain.ProcessSample(x)
}

// ProcessBlock filters buf in place. The result equals calling Filter on
// every element.
func (f *Filter) ProcessBlock(buf []float64) {
	f.chain.ProcessBlock(buf)
}

// Reset clears all delay registers.
func (f *Filter) Reset() {
	f.chain.Reset()
}

// Sections returns a copy of the active cascade.
func (f *Filter) Sections() []biquad.Coefficients {
	return f.chain.Sections()
}

// Layout returns a copy of the digital pole/zero layout of the last Setup.
// It is empty after SetSections or before any configuration.
func (f *Filter) Layout() *layout.Layout {
	l := layout.New(f.current.MaxPoles())
	_ = l.CopyFrom(f.current)

	return l
}

// Design returns the last successful Setup argument. It is the zero Design
// after SetSections.
func (f *Filter) Design() Design { return f.design }

// Response returns the complex response at freqHz.
func (f *Filter) Response(freqHz float64) complex128 {
	if f.sampleRate == 0 {
		return 1
	}

	return f.chain.Response(freqHz, f.sampleRate)
}

// MagnitudeDB returns the magnitude response at freqHz in dB.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz)))
}

// Phase returns the phase response at freqHz in radians.
func (f *Filter) Phase(freqHz float64) float64 {
	return cmplx.Phase(f.Response(freqHz))
}

// MagnitudeResponse writes |H(f)| for every frequency in freqs to dst.
func (f *Filter) MagnitudeResponse(dst, freqs []float64) {
	if f.sampleRate == 0 {
		for i := range freqs {
			dst[i] = 1
		}

		return
	}

	f.chain.MagnitudeResponse(dst, freqs, f.sampleRate)
}

// ImpulseResponse returns n samples of the impulse response without
// disturbing the delay registers.
func (f *Filter) ImpulseResponse(n int) []float64 {
	return f.chain.ImpulseResponse(n)
}

// Order returns the digital filter order, the total pole count of the
// cascade. Band designs have twice the prototype order.
func (f *Filter) Order() int { return f.chain.Order() }

// NumSections returns the number of active sections.
func (f *Filter) NumSections() int { return f.chain.NumSections() }

// Structure returns the recursion structure.
func (f *Filter) Structure() biquad.Structure { return f.cfg.Structure }

// SampleRate returns the sample rate of the active configuration, or 0.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// MaxOrder returns the order capacity.
func (f *Filter) MaxOrder() int { return f.cfg.MaxOrder }
