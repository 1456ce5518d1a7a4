package iir

import "github.com/cwbudde/algo-iir/dsp/filter/design/prototype"

// Per-family shortcuts for Setup. Frequencies are in Hz; gains, ripple and
// attenuation in dB.

// ButterworthLowPass designs a Butterworth low-pass, -3 dB at cutoff.
func (f *Filter) ButterworthLowPass(order int, sampleRate, cutoff float64) error {
	return f.Setup(Design{
		Shape: LowPass, Prototype: prototype.Butterworth{},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// ButterworthHighPass is the high-pass counterpart of ButterworthLowPass.
func (f *Filter) ButterworthHighPass(order int, sampleRate, cutoff float64) error {
	return f.Setup(Design{
		Shape: HighPass, Prototype: prototype.Butterworth{},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// ButterworthBandPass designs a band-pass of 2*order poles around center.
func (f *Filter) ButterworthBandPass(order int, sampleRate, center, width float64) error {
	return f.Setup(Design{
		Shape: BandPass, Prototype: prototype.Butterworth{},
		Order: order, SampleRate: sampleRate, Frequency: center, Width: width,
	})
}

// ButterworthBandStop designs a band-stop of 2*order poles around center.
func (f *Filter) ButterworthBandStop(order int, sampleRate, center, width float64) error {
	return f.Setup(Design{
		Shape: BandStop, Prototype: prototype.Butterworth{},
		Order: order, SampleRate: sampleRate, Frequency: center, Width: width,
	})
}

// ButterworthLowShelf boosts or cuts below cutoff by gainDB.
func (f *Filter) ButterworthLowShelf(order int, sampleRate, cutoff, gainDB float64) error {
	return f.Setup(Design{
		Shape: LowShelf, Prototype: prototype.ButterworthShelf{GainDB: gainDB},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// ButterworthHighShelf boosts or cuts above cutoff by gainDB.
func (f *Filter) ButterworthHighShelf(order int, sampleRate, cutoff, gainDB float64) error {
	return f.Setup(Design{
		Shape: HighShelf, Prototype: prototype.ButterworthShelf{GainDB: gainDB},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// ButterworthBandShelf boosts or cuts the band around center by gainDB.
func (f *Filter) ButterworthBandShelf(order int, sampleRate, center, width, gainDB float64) error {
	return f.Setup(Design{
		Shape: BandShelf, Prototype: prototype.ButterworthShelf{GainDB: gainDB},
		Order: order, SampleRate: sampleRate, Frequency: center, Width: width,
	})
}

// ChebyshevILowPass designs a Chebyshev I low-pass with rippleDB of passband
// ripple; the gain at cutoff is -rippleDB.
func (f *Filter) ChebyshevILowPass(order int, sampleRate, cutoff, rippleDB float64) error {
	return f.Setup(Design{
		Shape: LowPass, Prototype: prototype.ChebyshevI{RippleDB: rippleDB},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// ChebyshevIHighPass is the high-pass counterpart of ChebyshevILowPass.
func (f *Filter) ChebyshevIHighPass(order int, sampleRate, cutoff, rippleDB float64) error {
	return f.Setup(Design{
		Shape: HighPass, Prototype: prototype.ChebyshevI{RippleDB: rippleDB},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// ChebyshevIBandPass designs a band-pass of 2*order poles around center.
func (f *Filter) ChebyshevIBandPass(order int, sampleRate, center, width, rippleDB float64) error {
	return f.Setup(Design{
		Shape: BandPass, Prototype: prototype.ChebyshevI{RippleDB: rippleDB},
		Order: order, SampleRate: sampleRate, Frequency: center, Width: width,
	})
}

// ChebyshevIBandStop designs a band-stop of 2*order poles around center.
func (f *Filter) ChebyshevIBandStop(order int, sampleRate, center, width, rippleDB float64) error {
	return f.Setup(Design{
		Shape: BandStop, Prototype: prototype.ChebyshevI{RippleDB: rippleDB},
		Order: order, SampleRate: sampleRate, Frequency: center, Width: width,
	})
}

// ChebyshevILowShelf boosts or cuts below cutoff by gainDB.
func (f *Filter) ChebyshevILowShelf(order int, sampleRate, cutoff, gainDB, rippleDB float64) error {
	return f.Setup(Design{
		Shape: LowShelf, Prototype: prototype.ChebyshevIShelf{GainDB: gainDB, RippleDB: rippleDB},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// ChebyshevIHighShelf boosts or cuts above cutoff by gainDB.
func (f *Filter) ChebyshevIHighShelf(order int, sampleRate, cutoff, gainDB, rippleDB float64) error {
	return f.Setup(Design{
		Shape: HighShelf, Prototype: prototype.ChebyshevIShelf{GainDB: gainDB, RippleDB: rippleDB},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// ChebyshevIBandShelf boosts or cuts the band around center by gainDB.
func (f *Filter) ChebyshevIBandShelf(order int, sampleRate, center, width, gainDB, rippleDB float64) error {
	return f.Setup(Design{
		Shape: BandShelf, Prototype: prototype.ChebyshevIShelf{GainDB: gainDB, RippleDB: rippleDB},
		Order: order, SampleRate: sampleRate, Frequency: center, Width: width,
	})
}

// ChebyshevIILowPass designs an inverse Chebyshev low-pass whose stopband,
// starting at cutoff, is at least stopbandDB down.
func (f *Filter) ChebyshevIILowPass(order int, sampleRate, cutoff, stopbandDB float64) error {
	return f.Setup(Design{
		Shape: LowPass, Prototype: prototype.ChebyshevII{StopbandDB: stopbandDB},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// ChebyshevIIHighPass is the high-pass counterpart of ChebyshevIILowPass.
func (f *Filter) ChebyshevIIHighPass(order int, sampleRate, cutoff, stopbandDB float64) error {
	return f.Setup(Design{
		Shape: HighPass, Prototype: prototype.ChebyshevII{StopbandDB: stopbandDB},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// ChebyshevIIBandPass designs a band-pass of 2*order poles around center.
func (f *Filter) ChebyshevIIBandPass(order int, sampleRate, center, width, stopbandDB float64) error {
	return f.Setup(Design{
		Shape: BandPass, Prototype: prototype.ChebyshevII{StopbandDB: stopbandDB},
		Order: order, SampleRate: sampleRate, Frequency: center, Width: width,
	})
}

// ChebyshevIIBandStop designs a band-stop of 2*order poles around center.
func (f *Filter) ChebyshevIIBandStop(order int, sampleRate, center, width, stopbandDB float64) error {
	return f.Setup(Design{
		Shape: BandStop, Prototype: prototype.ChebyshevII{StopbandDB: stopbandDB},
		Order: order, SampleRate: sampleRate, Frequency: center, Width: width,
	})
}

// ChebyshevIILowShelf boosts or cuts below cutoff by gainDB.
func (f *Filter) ChebyshevIILowShelf(order int, sampleRate, cutoff, gainDB, stopbandDB float64) error {
	return f.Setup(Design{
		Shape: LowShelf, Prototype: prototype.ChebyshevIIShelf{GainDB: gainDB, StopbandDB: stopbandDB},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// ChebyshevIIHighShelf boosts or cuts above cutoff by gainDB.
func (f *Filter) ChebyshevIIHighShelf(order int, sampleRate, cutoff, gainDB, stopbandDB float64) error {
	return f.Setup(Design{
		Shape: HighShelf, Prototype: prototype.ChebyshevIIShelf{GainDB: gainDB, StopbandDB: stopbandDB},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// ChebyshevIIBandShelf boosts or cuts the band around center by gainDB.
func (f *Filter) ChebyshevIIBandShelf(order int, sampleRate, center, width, gainDB, stopbandDB float64) error {
	return f.Setup(Design{
		Shape: BandShelf, Prototype: prototype.ChebyshevIIShelf{GainDB: gainDB, StopbandDB: stopbandDB},
		Order: order, SampleRate: sampleRate, Frequency: center, Width: width,
	})
}

// EllipticLowPass designs an elliptic low-pass with rippleDB of passband
// ripple. rolloff in [prototype.MinEllipticRolloff,
// prototype.MaxEllipticRolloff] trades transition width for stopband depth.
func (f *Filter) EllipticLowPass(order int, sampleRate, cutoff, rippleDB, rolloff float64) error {
	return f.Setup(Design{
		Shape: LowPass, Prototype: prototype.Elliptic{RippleDB: rippleDB, Rolloff: rolloff},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// EllipticHighPass is the high-pass counterpart of EllipticLowPass.
func (f *Filter) EllipticHighPass(order int, sampleRate, cutoff, rippleDB, rolloff float64) error {
	return f.Setup(Design{
		Shape: HighPass, Prototype: prototype.Elliptic{RippleDB: rippleDB, Rolloff: rolloff},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// EllipticBandPass designs a band-pass of 2*order poles around center.
func (f *Filter) EllipticBandPass(order int, sampleRate, center, width, rippleDB, rolloff float64) error {
	return f.Setup(Design{
		Shape: BandPass, Prototype: prototype.Elliptic{RippleDB: rippleDB, Rolloff: rolloff},
		Order: order, SampleRate: sampleRate, Frequency: center, Width: width,
	})
}

// EllipticBandStop designs a band-stop of 2*order poles around center.
func (f *Filter) EllipticBandStop(order int, sampleRate, center, width, rippleDB, rolloff float64) error {
	return f.Setup(Design{
		Shape: BandStop, Prototype: prototype.Elliptic{RippleDB: rippleDB, Rolloff: rolloff},
		Order: order, SampleRate: sampleRate, Frequency: center, Width: width,
	})
}

// BesselLowPass designs a Bessel low-pass, -3 dB at cutoff, with maximally
// flat group delay.
func (f *Filter) BesselLowPass(order int, sampleRate, cutoff float64) error {
	return f.Setup(Design{
		Shape: LowPass, Prototype: prototype.Bessel{},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// BesselHighPass is the high-pass counterpart of BesselLowPass.
func (f *Filter) BesselHighPass(order int, sampleRate, cutoff float64) error {
	return f.Setup(Design{
		Shape: HighPass, Prototype: prototype.Bessel{},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// BesselBandPass designs a band-pass of 2*order poles around center.
func (f *Filter) BesselBandPass(order int, sampleRate, center, width float64) error {
	return f.Setup(Design{
		Shape: BandPass, Prototype: prototype.Bessel{},
		Order: order, SampleRate: sampleRate, Frequency: center, Width: width,
	})
}

// BesselBandStop designs a band-stop of 2*order poles around center.
func (f *Filter) BesselBandStop(order int, sampleRate, center, width float64) error {
	return f.Setup(Design{
		Shape: BandStop, Prototype: prototype.Bessel{},
		Order: order, SampleRate: sampleRate, Frequency: center, Width: width,
	})
}

// BesselLowShelf boosts or cuts below cutoff by gainDB.
func (f *Filter) BesselLowShelf(order int, sampleRate, cutoff, gainDB float64) error {
	return f.Setup(Design{
		Shape: LowShelf, Prototype: prototype.BesselShelf{GainDB: gainDB},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// BesselHighShelf boosts or cuts above cutoff by gainDB.
func (f *Filter) BesselHighShelf(order int, sampleRate, cutoff, gainDB float64) error {
	return f.Setup(Design{
		Shape: HighShelf, Prototype: prototype.BesselShelf{GainDB: gainDB},
		Order: order, SampleRate: sampleRate, Frequency: cutoff,
	})
}

// BesselBandShelf boosts or cuts the band around center by gainDB.
func (f *Filter) BesselBandShelf(order int, sampleRate, center, width, gainDB float64) error {
	return f.Setup(Design{
		Shape: BandShelf, Prototype: prototype.BesselShelf{GainDB: gainDB},
		Order: order, SampleRate: sampleRate, Frequency: center, Width: width,
	})
}
