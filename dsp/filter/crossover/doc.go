// Package crossover splits a signal into bands with Linkwitz-Riley filters
// built on the iir package.
//
// An LR-N crossover squares an order N/2 Butterworth: the Butterworth
// sections are designed once through [iir.Filter] and loaded twice with
// SetSections, so each output is a plain cascade. Both outputs sit at
// -6.02 dB at the crossover frequency. When N/2 is odd the high-pass is
// negated so that LP+HP sums to an allpass instead of notching.
//
// [New] builds one two-way split; [NewMultiBand] chains splits at ascending
// frequencies. Options such as [iir.WithStructure] are passed through to
// every filter.
//
//	xo, err := crossover.New(1000, 4, 48000)
//	if err != nil {
//	    return err
//	}
//	lo, hi := xo.ProcessSample(x)
package crossover
