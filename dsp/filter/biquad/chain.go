package biquad

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// Chain is an ordered cascade of biquad sections processed in series, plus
// the delay registers of every section.
//
// Coefficient and register storage is sized to maxSections at construction.
// Replacing the coefficients never reallocates and never clears the
// registers; call Reset explicitly when a fresh start is wanted.
//
// A Chain is not safe for concurrent use.
type Chain struct {
	structure Structure
	sections  []Coefficients
	state     []float64
}

// NewChain returns an empty cascade able to hold up to maxSections sections
// evaluated with the given structure. An empty chain passes input through
// unchanged. It panics if structure is not a defined Structure.
func NewChain(maxSections int, structure Structure) *Chain {
	if !structure.Valid() {
		panic(fmt.Sprintf("biquad: unknown structure %d", int(structure)))
	}

	maxSections = max(maxSections, 1)

	return &Chain{
		structure: structure,
		sections:  make([]Coefficients, 0, maxSections),
		state:     make([]float64, maxSections*structure.Registers()),
	}
}

// SetCoefficients replaces the cascade. Registers are preserved so a running
// signal sees no reset; only registers of sections beyond the new count are
// cleared. It fails with core.ErrConfiguration when coeffs exceeds the
// capacity, leaving the chain unchanged.
func (c *Chain) SetCoefficients(coeffs []Coefficients) error {
	if len(coeffs) > cap(c.sections) {
		return core.Configf("%d sections exceed capacity %d", len(coeffs), cap(c.sections))
	}

	r := c.structure.Registers()
	if len(coeffs) < len(c.sections) {
		clear(c.state[len(coeffs)*r : len(c.sections)*r])
	}

	c.sections = append(c.sections[:0], coeffs...)

	return nil
}

// ProcessSample cascades x through all sections in order. It performs no
// validation and does not allocate.
func (c *Chain) ProcessSample(x float64) float64 {
	switch c.structure {
	case DirectFormI:
		for i := range c.sections {
			x = stepDF1(&c.sections[i], c.state[4*i:4*i+4], x)
		}
	case DirectFormII:
		for i := range c.sections {
			x = stepDF2(&c.sections[i], c.state[2*i:2*i+2], x)
		}
	default:
		for i := range c.sections {
			x = stepTDF2(&c.sections[i], c.state[2*i:2*i+2], x)
		}
	}

	return x
}

// ProcessBlock filters buf in-place through the full cascade. The result is
// identical to calling ProcessSample for each element. Zero-alloc.
func (c *Chain) ProcessBlock(buf []float64) {
	if len(buf) == 0 {
		return
	}

	kernel := blockKernel(c.structure)
	r := c.structure.Registers()

	for i := range c.sections {
		kernel(toArch(c.sections[i]), c.state[i*r:(i+1)*r], buf)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (c *Chain) ProcessBlockTo(dst, src []float64) {
	copy(dst[:len(src)], src)
	c.ProcessBlock(dst[:len(src)])
}

// Reset clears all delay registers to zero.
func (c *Chain) Reset() {
	clear(c.state)
}

// Structure returns the recursion structure chosen at construction.
func (c *Chain) Structure() Structure { return c.structure }

// NumSections returns the number of active sections.
func (c *Chain) NumSections() int { return len(c.sections) }

// MaxSections returns the section capacity.
func (c *Chain) MaxSections() int { return cap(c.sections) }

// Order returns the total filter order: 2 per full section, 1 per
// first-order section.
func (c *Chain) Order() int {
	n := 0
	for i := range c.sections {
		if c.sections[i].IsFirstOrder() {
			n++
		} else {
			n += 2
		}
	}

	return n
}

// Section returns the coefficients of the i-th section.
func (c *Chain) Section(i int) Coefficients {
	return c.sections[i]
}

// Sections returns a copy of the active coefficients.
func (c *Chain) Sections() []Coefficients {
	out := make([]Coefficients, len(c.sections))
	copy(out, c.sections)

	return out
}

// State returns a snapshot of the registers of the active sections.
func (c *Chain) State() []float64 {
	n := len(c.sections) * c.structure.Registers()
	out := make([]float64, n)
	copy(out, c.state[:n])

	return out
}

// SetState restores a snapshot taken with State. The length must match the
// active register count.
func (c *Chain) SetState(state []float64) error {
	n := len(c.sections) * c.structure.Registers()
	if len(state) != n {
		return core.Configf("state length %d, want %d", len(state), n)
	}

	copy(c.state, state)

	return nil
}
