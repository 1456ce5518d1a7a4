// Package ellipticmath implements the complete elliptic integral, Jacobi
// elliptic functions and their inverses through descending Landen
// transformations, with a bounded iteration budget.
package ellipticmath

import (
	"errors"
	"math"
	"math/cmplx"
)

// MaxLandenIterations bounds the descending Landen sequence. Each step at
// least squares the modulus once it drops below 1, so 16 steps cover every
// modulus representable as a float64 below 1.
const MaxLandenIterations = 16

const tol = 2.220446049250313e-16

var (
	// ErrNoConvergence is returned when the Landen sequence does not reach
	// machine precision within MaxLandenIterations.
	ErrNoConvergence = errors.New("ellipticmath: landen sequence did not converge")

	// ErrDomain is returned for a modulus outside [0, 1).
	ErrDomain = errors.New("ellipticmath: modulus out of range")
)

// Landen computes the sequence of descending moduli for k.
func Landen(k float64) ([]float64, error) {
	if math.IsNaN(k) || k < 0 || k >= 1 {
		return nil, ErrDomain
	}

	if k == 0 {
		return []float64{0}, nil
	}

	v := make([]float64, 0, MaxLandenIterations)
	for k > tol {
		if len(v) == MaxLandenIterations {
			return nil, ErrNoConvergence
		}

		t := k / (1.0 + math.Sqrt((1-k)*(1+k)))
		k = t * t
		v = append(v, k)
	}

	return v, nil
}

// LandenK computes K(k) from a precomputed Landen sequence using
// K(k) = (pi/2) * product(1 + v[i]).
func LandenK(v []float64) float64 {
	prod := 1.0
	for _, x := range v {
		prod *= 1.0 + x
	}

	return prod * math.Pi * 0.5
}

// EllipK computes the complete elliptic integral K(k) and K'(k) = K(k').
func EllipK(k float64) (float64, float64, error) {
	return ellipKReuse(k, nil)
}

func ellipKReuse(k float64, vk []float64) (float64, float64, error) {
	if math.IsNaN(k) || k < 0 || k > 1 {
		return 0, 0, ErrDomain
	}

	const kmin = 1e-6

	kmax := math.Sqrt(1 - kmin*kmin)

	var K, Kp float64

	switch {
	case k == 1:
		K = math.Inf(1)
	case k > kmax:
		kp := math.Sqrt((1 - k) * (1 + k))
		L := -math.Log(kp / 4.0)
		K = L + (L-1)*kp*kp/4.0
	default:
		if vk == nil {
			var err error

			vk, err = Landen(k)
			if err != nil {
				return 0, 0, err
			}
		}

		K = LandenK(vk)
	}

	switch {
	case k == 0:
		Kp = math.Inf(1)
	case k < kmin:
		L := -math.Log(k / 4.0)
		Kp = L + (L-1.0)*k*k/4.0
	default:
		vkp, err := Landen(math.Sqrt((1 - k) * (1 + k)))
		if err != nil {
			return 0, 0, err
		}

		Kp = LandenK(vkp)
	}

	return K, Kp, nil
}

// SymmetricRemainder returns x modulo y mapped to approximately [-y/2, y/2].
func SymmetricRemainder(x, y float64) float64 {
	z := math.Remainder(x, y)
	correction := 0.0

	if math.Abs(z) > y/2.0 {
		correction = 1.0
	}

	return z - y*math.Copysign(correction, z)
}

// CD evaluates the Jacobi elliptic function cd(u*K, k). The argument u is
// normalized to the quarter period K.
func CD(u complex128, k float64) (complex128, error) {
	v, err := Landen(k)
	if err != nil {
		return 0, err
	}

	w := cmplx.Cos(u * math.Pi * 0.5)
	for i := len(v) - 1; i >= 0; i-- {
		w = (1 + complex(v[i], 0)) * w / (1.0 + complex(v[i], 0)*w*w)
	}

	return w, nil
}

// SN evaluates sn(u*K, k) through the identity sn(u*K) = cd((1-u)*K).
func SN(u complex128, k float64) (complex128, error) {
	return CD(1-u, k)
}

// ACD is the inverse of CD: it returns the normalized u with cd(u*K, k) = w.
// The real part is reduced modulo 4 and the imaginary part modulo 2K'/K.
func ACD(w complex128, k float64) (complex128, error) {
	v, err := Landen(k)
	if err != nil {
		return 0, err
	}

	prev := k
	for _, vi := range v {
		w = w / (1.0 + cmplx.Sqrt(1.0-w*w*complex(prev*prev, 0))) * 2.0 / (1 + complex(vi, 0))
		prev = vi
	}

	u := 2.0 / math.Pi * cmplx.Acos(w)

	K, Kp, err := ellipKReuse(k, v)
	if err != nil {
		return 0, err
	}

	re := SymmetricRemainder(real(u), 4)
	im := SymmetricRemainder(imag(u), 2*(Kp/K))

	return complex(re, im), nil
}

// ASN is the inverse of SN.
func ASN(w complex128, k float64) (complex128, error) {
	u, err := ACD(w, k)
	if err != nil {
		return 0, err
	}

	return 1.0 - u, nil
}

// DegreeModulus solves the degree equation N*K'(k)/K(k) = K'(k1)/K(k1) for
// k1 given the selectivity modulus k, using the nome series
// k1 = 4*sqrt(q1)*((1+sum q1^(m(m+1)))/(1+2*sum q1^(m^2)))^2 with q1 = q^N.
func DegreeModulus(n int, k float64) (float64, error) {
	if n < 1 {
		return 0, ErrDomain
	}

	K, Kp, err := EllipK(k)
	if err != nil {
		return 0, err
	}

	const terms = 7

	q := math.Exp(-math.Pi * Kp / K)
	q1 := math.Pow(q, float64(n))

	var s1, s2 float64

	q1sq := q1
	q1pow := q1
	q1gap := q1
	q1sq2 := q1 * q1

	for range terms {
		s2 += q1sq
		s1 += q1sq * q1pow
		q1gap *= q1sq2
		q1sq *= q1gap
		q1pow *= q1
	}

	r := (1.0 + s1) / (1.0 + 2*s2)

	return 4 * math.Sqrt(q1) * r * r, nil
}
