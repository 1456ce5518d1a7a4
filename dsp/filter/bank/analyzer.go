package bank

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

const (
	defaultAnalyzerOrder         = 10
	defaultAnalyzerEnvelopeHz    = 100.0
	defaultAnalyzerEnvelopeOrder = 4
)

// Analyzer estimates per-band envelope levels using an octave or fractional-octave
// filter bank with Butterworth bandpass sections.
type Analyzer struct {
	bands      []analyzerBand
	peaks      []float64
	sampleRate float64
	fraction   int
	scratch    []float64
}

type analyzerBand struct {
	spec bandSpec
	bp   *iir.Filter
	env  *iir.Filter
}

type analyzerConfig struct {
	order         int
	envelopeHz    float64
	envelopeOrder int
	lowerHz       float64
	upperHz       float64
	structure     biquad.Structure
}

func defaultAnalyzerConfig() analyzerConfig {
	return analyzerConfig{
		order:         defaultAnalyzerOrder,
		envelopeHz:    defaultAnalyzerEnvelopeHz,
		envelopeOrder: defaultAnalyzerEnvelopeOrder,
		lowerHz:       defaultLowerFreq,
		upperHz:       defaultUpperFreq,
		structure:     biquad.TransposedDirectFormII,
	}
}

// AnalyzerOption configures a fractional-octave analyzer.
type AnalyzerOption func(*analyzerConfig)

// WithAnalyzerOrder sets the Butterworth prototype order per band.
// Must be a positive even integer; defaults to 10.
func WithAnalyzerOrder(n int) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		if n > 0 && n%2 == 0 {
			cfg.order = n
		}
	}
}

// WithAnalyzerFrequencyRange sets custom lower and upper frequency limits
// for the analyzer. Bands outside this range are excluded.
func WithAnalyzerFrequencyRange(lower, upper float64) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		if lower > 0 && upper > lower {
			cfg.lowerHz = lower
			cfg.upperHz = upper
		}
	}
}

// WithAnalyzerEnvelopeHz sets the envelope follower cutoff frequency in Hz.
func WithAnalyzerEnvelopeHz(freqHz float64) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		if freqHz > 0 {
			cfg.envelopeHz = freqHz
		}
	}
}

// WithAnalyzerEnvelopeOrder sets the Butterworth order for the envelope smoother.
// Must be a positive even integer; defaults to 4.
func WithAnalyzerEnvelopeOrder(n int) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		if n > 0 && n%2 == 0 {
			cfg.envelopeOrder = n
		}
	}
}

// WithAnalyzerStructure selects the recursion structure of the band and
// envelope filters. Defaults to transposed direct form II.
func WithAnalyzerStructure(s biquad.Structure) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		if s.Valid() {
			cfg.structure = s
		}
	}
}

// NewOctaveAnalyzer builds an octave or fractional-octave analyzer.
// The fraction parameter controls the bandwidth: fraction=1 gives full octave
// bands, fraction=3 gives 1/3-octave bands, etc.
func NewOctaveAnalyzer(fraction int, sampleRate float64, opts ...AnalyzerOption) (*Analyzer, error) {
	if fraction <= 0 {
		fraction = 1
	}

	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("bank: %w", err)
	}

	cfg := defaultAnalyzerConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	specs := octaveBandSpecs(fraction, sampleRate, cfg.lowerHz, cfg.upperHz)
	if len(specs) == 0 {
		return nil, core.Configf("bank: no bands in frequency range %.2f-%.2f Hz", cfg.lowerHz, cfg.upperHz)
	}

	an := &Analyzer{
		bands:      make([]analyzerBand, 0, len(specs)),
		peaks:      make([]float64, len(specs)),
		sampleRate: sampleRate,
		fraction:   fraction,
	}

	envHz := clampEnvelopeHz(cfg.envelopeHz, sampleRate)

	for _, spec := range specs {
		band, err := newBand(spec, cfg.order, sampleRate, cfg.structure)
		if err != nil {
			return nil, err
		}

		env := iir.New(iir.WithMaxOrder(cfg.envelopeOrder), iir.WithStructure(cfg.structure))
		if err := env.ButterworthLowPass(cfg.envelopeOrder, sampleRate, envHz); err != nil {
			return nil, fmt.Errorf("bank: envelope: %w", err)
		}

		an.bands = append(an.bands, analyzerBand{spec: spec, bp: band.Filter, env: env})
	}

	return an, nil
}

// BandInfo describes the configured analyzer bands.
type BandInfo struct {
	CenterHz float64
	LowHz    float64
	HighHz   float64
}

// Bands returns metadata for each analyzer band.
func (a *Analyzer) Bands() []BandInfo {
	if a == nil {
		return nil
	}

	out := make([]BandInfo, len(a.bands))
	for i, b := range a.bands {
		out[i] = BandInfo{
			CenterHz: b.spec.center,
			LowHz:    b.spec.low,
			HighHz:   b.spec.high,
		}
	}

	return out
}

// Peaks returns the current per-band envelope values (linear).
// The returned slice is owned by the analyzer and is updated on each call
// to ProcessBlock.
func (a *Analyzer) Peaks() []float64 {
	if a == nil {
		return nil
	}

	return a.peaks
}

// SampleRate returns the input sample rate for the analyzer.
func (a *Analyzer) SampleRate() float64 {
	if a == nil {
		return 0
	}

	return a.sampleRate
}

// Fraction returns the configured fractional-octave bandwidth (1, 3, 6, ...).
func (a *Analyzer) Fraction() int {
	if a == nil {
		return 0
	}

	return a.fraction
}

// Reset clears all filter states and peaks.
func (a *Analyzer) Reset() {
	if a == nil {
		return
	}

	for i := range a.bands {
		a.bands[i].bp.Reset()
		a.bands[i].env.Reset()
	}

	clear(a.peaks)
}

// ProcessBlock runs the analyzer on an input block and returns per-band
// envelope values (linear). The returned slice is owned by the analyzer.
func (a *Analyzer) ProcessBlock(input []float64) []float64 {
	if a == nil {
		return nil
	}

	if len(input) == 0 {
		return a.peaks
	}

	if cap(a.scratch) < len(input) {
		a.scratch = make([]float64, len(input))
	}

	data := a.scratch[:len(input)]

	for i := range a.bands {
		b := &a.bands[i]

		copy(data, input)
		b.bp.ProcessBlock(data)

		var last float64
		for _, v := range data {
			last = b.env.Filter(math.Abs(v))
		}

		a.peaks[i] = last
	}

	return a.peaks
}

func clampEnvelopeHz(freqHz, sampleRate float64) float64 {
	nyquist := sampleRate / 2
	if freqHz <= 0 {
		return math.Min(1, nyquist*0.1)
	}

	return math.Min(freqHz, nyquist*0.45)
}
