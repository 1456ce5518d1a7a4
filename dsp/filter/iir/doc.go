// Package iir designs and runs classical digital IIR filters.
//
// A [Filter] owns a cascade of second-order sections and its delay
// registers, both sized once from the configured maximum order. Designs go
// through the pipeline
//
//	analog prototype -> shape transform -> bilinear transform -> cascade
//
// built from the prototype, transform and layout packages under
// dsp/filter/design. Single cookbook biquads from dsp/filter/design can be
// loaded directly with [Filter.SetSections].
//
// Configuration is transactional: a failed Setup leaves the previous
// coefficients in place. Reconfiguration never clears the delay registers;
// call [Filter.Reset] when the signal history should be discarded.
//
// A Filter is not safe for concurrent use. Filter and ProcessBlock do not
// allocate.
package iir
