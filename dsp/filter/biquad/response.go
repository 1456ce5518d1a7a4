package biquad

import (
	"math"
	"math/cmplx"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Response computes the complex frequency response H(e^jw) of a biquad
// at the given frequency (Hz) and sample rate (Hz).
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	return c.ResponseAt(2 * math.Pi * freqHz / sampleRate)
}

// ResponseAt computes H(e^jw) at the normalized angle w (radians/sample).
func (c *Coefficients) ResponseAt(w float64) complex128 {
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := ejw * ejw

	num := complex(c.B0, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w
	den := complex(1, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w

	return num / den
}

// MagnitudeSquared returns |H(f)|^2 using a closed-form expression.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw

	return num / den
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase response in radians at the given frequency.
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// Response computes the complex frequency response of the full cascade
// as the product of individual section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	return c.ResponseAt(2 * math.Pi * freqHz / sampleRate)
}

// ResponseAt computes the cascade response at the normalized angle w.
func (c *Chain) ResponseAt(w float64) complex128 {
	h := complex(1, 0)
	for i := range c.sections {
		h *= c.sections[i].ResponseAt(w)
	}

	return h
}

// MagnitudeDB returns the cascaded magnitude response in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Phase returns the cascaded phase response in radians.
func (c *Chain) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// MagnitudeResponse evaluates |H(f)| for every frequency in freqs and writes
// the result to dst, which must be at least len(freqs) long.
func (c *Chain) MagnitudeResponse(dst, freqs []float64, sampleRate float64) {
	n := len(freqs)
	re := make([]float64, n)
	im := make([]float64, n)

	for i, f := range freqs {
		h := c.Response(f, sampleRate)
		re[i] = real(h)
		im[i] = imag(h)
	}

	vecmath.Magnitude(dst[:n], re, im)
}

// ImpulseResponse computes n samples of the cascade impulse response.
// The registers are saved and restored so the chain is left as found.
func (c *Chain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := c.State()
	c.Reset()

	ir := make([]float64, n)
	ir[0] = c.ProcessSample(1)

	for i := 1; i < n; i++ {
		ir[i] = c.ProcessSample(0)
	}

	_ = c.SetState(saved)

	return ir
}
