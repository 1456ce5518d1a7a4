package generic

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:                   "generic",
		SIMDLevel:              cpu.SIMDNone,
		Priority:               0,
		DirectFormI:            processBlockDF1,
		DirectFormII:           processBlockDF2,
		TransposedDirectFormII: processBlockTDF2,
	})
}

func processBlockDF1(c registry.Coefficients, state []float64, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	x1, x2, y1, y2 := state[0], state[1], state[2], state[3]

	for i, x := range buf {
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	state[0], state[1], state[2], state[3] = x1, x2, y1, y2
}

func processBlockDF2(c registry.Coefficients, state []float64, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	w1, w2 := state[0], state[1]

	for i, x := range buf {
		w := x - a1*w1 - a2*w2
		buf[i] = b0*w + b1*w1 + b2*w2
		w2, w1 = w1, w
	}

	state[0], state[1] = w1, w2
}

// processBlockTDF2 is 2x unrolled to shorten the loop-carried chain.
func processBlockTDF2(c registry.Coefficients, state []float64, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	d0, d1 := state[0], state[1]

	i := 0
	n := len(buf)
	for ; i+1 < n; i += 2 {
		x0 := buf[i]
		y0 := b0*x0 + d0
		d0n := b1*x0 - a1*y0 + d1
		d1n := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + d0n
		d0 = b1*x1 - a1*y1 + d1n
		d1 = b2*x1 - a2*y1

		buf[i] = y0
		buf[i+1] = y1
	}

	if i < n {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	state[0], state[1] = d0, d1
}
