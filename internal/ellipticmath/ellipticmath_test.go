package ellipticmath

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if tol > 0 && tol < 1 {
		mag := math.Max(math.Abs(a), math.Abs(b))
		if mag > 1 {
			return diff/mag < tol
		}
	}

	return diff < tol
}

func mustLanden(t *testing.T, k float64) []float64 {
	t.Helper()

	v, err := Landen(k)
	if err != nil {
		t.Fatalf("Landen(%v): %v", k, err)
	}

	return v
}

func TestLanden_Convergence(t *testing.T) {
	v := mustLanden(t, 0.5)
	if len(v) == 0 {
		t.Fatal("Landen returned empty sequence")
	}

	last := v[len(v)-1]
	if last > tol {
		t.Fatalf("Landen did not converge: last value = %e", last)
	}

	for i := 1; i < len(v); i++ {
		if v[i] >= v[i-1] {
			t.Fatalf("Landen not monotonically decreasing at index %d: %e >= %e", i, v[i], v[i-1])
		}
	}
}

func TestLanden_Bounded(t *testing.T) {
	for _, k := range []float64{1e-300, 1e-8, 0.1, 0.9, 0.999999, 1 - 1e-15} {
		v := mustLanden(t, k)
		if len(v) > MaxLandenIterations {
			t.Fatalf("Landen(%v) used %d steps, cap is %d", k, len(v), MaxLandenIterations)
		}
	}
}

func TestLanden_Domain(t *testing.T) {
	v0 := mustLanden(t, 0)
	if len(v0) != 1 || v0[0] != 0 {
		t.Fatalf("Landen(0) = %v, expected [0]", v0)
	}

	for _, k := range []float64{-0.1, 1, 1.5, math.NaN()} {
		if _, err := Landen(k); !errors.Is(err, ErrDomain) {
			t.Fatalf("Landen(%v) err = %v, want ErrDomain", k, err)
		}
	}
}

func TestLandenK_MatchesEllipK(t *testing.T) {
	k := 0.6
	got := LandenK(mustLanden(t, k))

	want, _, err := EllipK(k)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("LandenK mismatch: got=%g want=%g", got, want)
	}
}

func TestEllipK_KnownValues(t *testing.T) {
	K, Kp, err := EllipK(0)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(K, math.Pi/2, 1e-10) {
		t.Fatalf("K(0) = %v, expected pi/2 = %v", K, math.Pi/2)
	}

	if !math.IsInf(Kp, 1) {
		t.Fatalf("K'(0) = %v, expected +Inf", Kp)
	}

	K1, _, err := EllipK(1)
	if err != nil {
		t.Fatal(err)
	}

	if !math.IsInf(K1, 1) {
		t.Fatalf("K(1) = %v, expected +Inf", K1)
	}

	// K(1/sqrt2) is the lemniscate case.
	Kl, Klp, err := EllipK(math.Sqrt2 / 2)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(Kl, 1.8540746773013719, 1e-12) || !almostEqual(Kl, Klp, 1e-12) {
		t.Fatalf("K(1/sqrt2) = (%v, %v), want 1.8540746773013719 twice", Kl, Klp)
	}
}

func TestEllipK_SymmetryRelation(t *testing.T) {
	k := 0.6
	kp := math.Sqrt(1 - k*k)

	K, Kprime, err := EllipK(k)
	if err != nil {
		t.Fatal(err)
	}

	Kkp, Kpkp, err := EllipK(kp)
	if err != nil {
		t.Fatal(err)
	}

	ratio1 := K / Kprime
	ratio2 := Kpkp / Kkp

	if !almostEqual(ratio1, ratio2, 1e-8) {
		t.Fatalf("symmetry: K/K' = %v, K'(k')/K(k') = %v", ratio1, ratio2)
	}
}

func TestCD_RealInputRange(t *testing.T) {
	k := 0.5

	for _, uVal := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		cd, err := CD(complex(uVal, 0), k)
		if err != nil {
			t.Fatal(err)
		}

		if math.Abs(imag(cd)) > 1e-10 {
			t.Fatalf("CD(%v, %v): imaginary part = %v, expected ~0", uVal, k, imag(cd))
		}

		if real(cd) < -0.01 || real(cd) > 1.01 {
			t.Fatalf("CD(%v, %v) = %v, outside expected range [0,1]", uVal, k, real(cd))
		}
	}
}

func TestCD_SN_Endpoints(t *testing.T) {
	k := 0.7

	cd0, _ := CD(0, k)
	cd1, _ := CD(1, k)
	sn0, _ := SN(0, k)
	sn1, _ := SN(1, k)

	if !almostEqual(real(cd0), 1, 1e-10) || !almostEqual(real(cd1), 0, 1e-10) {
		t.Fatalf("cd endpoints = (%v, %v), want (1, 0)", cd0, cd1)
	}

	if !almostEqual(real(sn0), 0, 1e-10) || !almostEqual(real(sn1), 1, 1e-10) {
		t.Fatalf("sn endpoints = (%v, %v), want (0, 1)", sn0, sn1)
	}
}

func TestACD_InverseOfCD(t *testing.T) {
	k := 0.8

	for _, uVal := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		w, err := CD(complex(uVal, 0), k)
		if err != nil {
			t.Fatal(err)
		}

		u, err := ACD(w, k)
		if err != nil {
			t.Fatal(err)
		}

		if cmplx.Abs(u-complex(uVal, 0)) > 1e-9 {
			t.Fatalf("ACD(CD(%v)) = %v", uVal, u)
		}
	}
}

func TestASN_ImaginaryArgument(t *testing.T) {
	// asn(j/eps) lands on the imaginary axis; used to place elliptic poles.
	k1 := 0.01

	u, err := ASN(complex(0, 2), k1)
	if err != nil {
		t.Fatal(err)
	}

	sn, err := SN(u, k1)
	if err != nil {
		t.Fatal(err)
	}

	if cmplx.Abs(sn-complex(0, 2)) > 1e-8 {
		t.Fatalf("SN(ASN(2j)) = %v, want 2j", sn)
	}
}

func TestDegreeModulus_SatisfiesDegreeEquation(t *testing.T) {
	for _, tc := range []struct {
		n int
		k float64
	}{
		{2, 0.5},
		{4, 0.6},
		{5, 0.8},
		{8, 0.9},
	} {
		k1, err := DegreeModulus(tc.n, tc.k)
		if err != nil {
			t.Fatal(err)
		}

		K, Kp, _ := EllipK(tc.k)
		K1, K1p, _ := EllipK(k1)

		lhs := float64(tc.n) * Kp / K
		rhs := K1p / K1

		if !almostEqual(lhs, rhs, 1e-9) {
			t.Fatalf("n=%d k=%v: N*K'/K = %v, K1'/K1 = %v", tc.n, tc.k, lhs, rhs)
		}

		if k1 <= 0 || k1 >= tc.k {
			t.Fatalf("n=%d k=%v: k1=%v should be in (0, k)", tc.n, tc.k, k1)
		}
	}
}

func TestDegreeModulus_InvalidOrder(t *testing.T) {
	if _, err := DegreeModulus(0, 0.5); !errors.Is(err, ErrDomain) {
		t.Fatalf("err = %v, want ErrDomain", err)
	}
}

func TestSymmetricRemainder(t *testing.T) {
	tests := []struct {
		x, y, want float64
	}{
		{0.5, 4, 0.5},
		{3.5, 4, -0.5},
		{-3.5, 4, 0.5},
		{0, 4, 0},
	}

	for _, tc := range tests {
		got := SymmetricRemainder(tc.x, tc.y)
		if !almostEqual(got, tc.want, 1e-12) {
			t.Fatalf("SymmetricRemainder(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func BenchmarkCD(b *testing.B) {
	for b.Loop() {
		_, _ = CD(complex(0.3, -0.1), 0.8)
	}
}
