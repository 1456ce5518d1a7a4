// Package polyroot provides polynomial root finding and conjugate-pair
// grouping used by the analog prototype designs.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
)

var (
	// ErrDegeneratePolynomial is returned when a polynomial has degenerate
	// coefficients (leading coefficient zero, unpaired complex roots, etc.).
	ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

	// ErrNoConvergence is returned when the simultaneous iteration does not
	// settle within its iteration budget.
	ErrNoConvergence = errors.New("polyroot: root iteration did not converge")
)

// MaxIterations bounds the Durand-Kerner sweep count.
const MaxIterations = 500

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// BesselCoefficients returns the reverse Bessel polynomial of order n in
// descending power order. The leading coefficient is 1 and
// a[k] = a[k+1]*(2n-k)*(k+1)/(2(n-k)) walks down to the constant term.
func BesselCoefficients(n int) []complex128 {
	if n < 1 {
		return nil
	}

	asc := make([]float64, n+1)
	asc[n] = 1

	for k := n - 1; k >= 0; k-- {
		asc[k] = asc[k+1] * float64(2*n-k) * float64(k+1) / float64(2*(n-k))
	}

	desc := make([]complex128, n+1)
	for i := range asc {
		desc[n-i] = complex(asc[i], 0)
	}

	return desc
}

// FujiwaraBound returns an upper bound on the magnitude of every root of the
// polynomial given in descending power order.
func FujiwaraBound(coeff []complex128) float64 {
	n := len(coeff) - 1
	if n < 1 || coeff[0] == 0 {
		return 0
	}

	lead := cmplx.Abs(coeff[0])
	bound := 0.0

	for i := 1; i <= n; i++ {
		c := cmplx.Abs(coeff[i]) / lead
		if i == n {
			c /= 2
		}

		if r := math.Pow(c, 1/float64(i)); r > bound {
			bound = r
		}
	}

	return 2 * bound
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method, followed by a short Newton
// polish of every root. Coefficients are in descending power order:
// coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
// The polynomial is made monic and rescaled by half its Fujiwara bound so the
// iteration runs on roots of order one. A root is accepted when its residual
// is below 16(n+1) machine epsilons times the Horner error bound at that
// point, so polynomials with very large constant terms are still solvable.
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	scale := FujiwaraBound(norm) / 2
	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}

	// q(w) = p(scale*w) / scale^n
	q := make([]complex128, len(norm))
	pow := 1.0

	for i := range norm {
		q[i] = norm[i] / complex(pow, 0)
		pow *= scale
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.4
		r := 1 + 0.1*float64(i)/float64(n)
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const tol = 1e-13

	for range MaxIterations {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if den == 0 {
				roots[i] += complex(1e-10, 1e-10)
				maxDelta = math.Inf(1)

				continue
			}

			delta := PolyEval(q, roots[i]) / den
			roots[i] -= delta

			if d := cmplx.Abs(delta) / math.Max(1, cmplx.Abs(roots[i])); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			break
		}
	}

	slack := 16 * float64(n+1) * epsilon

	for i := range roots {
		r := newtonPolish(q, roots[i])
		if cmplx.IsNaN(r) || cmplx.IsInf(r) {
			return nil, ErrNoConvergence
		}

		if cmplx.Abs(PolyEval(q, r)) > slack*hornerBound(q, cmplx.Abs(r)) {
			return nil, ErrNoConvergence
		}

		roots[i] = r * complex(scale, 0)
	}

	return roots, nil
}

// epsilon is the float64 machine epsilon.
const epsilon = 0x1p-52

// hornerBound returns sum |coeff[i]| * x^(n-i), the scale of the rounding
// error Horner's rule makes at a point of magnitude x.
func hornerBound(coeff []complex128, x float64) float64 {
	v := 0.0
	for _, c := range coeff {
		v = v*x + cmplx.Abs(c)
	}

	return v
}

func newtonPolish(coeff []complex128, x complex128) complex128 {
	const steps = 3

	best := x
	bestRes := cmplx.Abs(PolyEval(coeff, x))

	for range steps {
		p, dp := polyEvalDeriv(coeff, x)
		if dp == 0 {
			break
		}

		x -= p / dp

		res := cmplx.Abs(PolyEval(coeff, x))
		if res >= bestRes {
			break
		}

		best, bestRes = x, res
	}

	return best
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

func polyEvalDeriv(coeff []complex128, x complex128) (complex128, complex128) {
	p := coeff[0]
	dp := complex(0, 0)

	for i := 1; i < len(coeff); i++ {
		dp = dp*x + p
		p = p*x + coeff[i]
	}

	return p, dp
}

// PairConjugates groups a slice of complex roots into conjugate pairs. For
// each unused root, it finds the closest match to the expected conjugate and
// validates the pairing within ConjugateTol.
func PairConjugates(roots []complex128) ([][2]complex128, error) {
	used := make([]bool, len(roots))
	pairs := make([][2]complex128, 0, len(roots)/2)

	for i := range roots {
		if used[i] {
			continue
		}

		root := roots[i]
		conj := complex(real(root), -imag(root))
		best := -1
		bestDist := math.MaxFloat64

		for j := range roots {
			if i == j || used[j] {
				continue
			}

			d := cmplx.Abs(roots[j] - conj)
			if d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best == -1 || !IsConjugate(root, roots[best], ConjugateTol) {
			return nil, ErrDegeneratePolynomial
		}

		used[i] = true
		used[best] = true
		pairs = append(pairs, [2]complex128{root, roots[best]})
	}

	return pairs, nil
}

// SplitConjugates separates the roots of a real polynomial into its real
// roots and one representative (non-negative imaginary part) per conjugate
// pair. A root counts as real when its imaginary part is within ConjugateTol
// of its magnitude. Both results are sorted by ascending imaginary part then
// real part so the caller sees a stable order.
func SplitConjugates(roots []complex128) ([]float64, []complex128, error) {
	var (
		reals []float64
		cplx  []complex128
	)

	for _, r := range roots {
		if math.Abs(imag(r)) <= ConjugateTol*math.Max(1, cmplx.Abs(r)) {
			reals = append(reals, real(r))
			continue
		}

		cplx = append(cplx, r)
	}

	pairs, err := PairConjugates(cplx)
	if err != nil {
		return nil, nil, err
	}

	upper := make([]complex128, len(pairs))
	for i, p := range pairs {
		r := p[0]
		if imag(r) < 0 {
			r = p[1]
		}

		upper[i] = r
	}

	sort.Float64s(reals)
	sort.Slice(upper, func(i, j int) bool {
		if imag(upper[i]) != imag(upper[j]) {
			return imag(upper[i]) < imag(upper[j])
		}

		return real(upper[i]) < real(upper[j])
	})

	return reals, upper, nil
}

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}
