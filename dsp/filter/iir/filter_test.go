package iir

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/design/prototype"
	"github.com/cwbudde/algo-iir/internal/testutil"
)

const butterworthEdgeDB = -3.0102999566398120

func mustSetup(t *testing.T, f *Filter, d Design) {
	t.Helper()

	if err := f.Setup(d); err != nil {
		t.Fatalf("Setup(%+v): %v", d, err)
	}
}

func TestBandStopScenario(t *testing.T) {
	f := New()
	if err := f.ButterworthBandStop(4, 1000, 100, 20); err != nil {
		t.Fatal(err)
	}

	if f.Order() != 8 || f.NumSections() != 4 {
		t.Fatalf("order %d sections %d, want 8 and 4", f.Order(), f.NumSections())
	}

	in := testutil.Impulse(1000, 10)
	out := make([]float64, len(in))

	for i, x := range in {
		out[i] = f.Filter(x)
	}

	for i := range 10 {
		if out[i] != 0 {
			t.Fatalf("out[%d] = %v before the impulse", i, out[i])
		}
	}

	if out[10] == 0 {
		t.Fatal("no response at the impulse")
	}

	signChanges := 0
	for i := 11; i < 200; i++ {
		if (out[i] > 0) != (out[i-1] > 0) {
			signChanges++
		}
	}

	if signChanges < 10 {
		t.Fatalf("tail is not oscillatory: %d sign changes", signChanges)
	}

	tail := 0.0
	for _, v := range out[900:] {
		tail = math.Max(tail, math.Abs(v))
	}

	if tail > 1e-6 {
		t.Fatalf("tail did not decay: max |y| = %v", tail)
	}

	for hz := 90.0; hz <= 110; hz += 0.5 {
		if db := f.MagnitudeDB(hz); db > butterworthEdgeDB+1e-6 {
			t.Fatalf("stopband at %v Hz only %v dB", hz, db)
		}
	}

	if db := f.MagnitudeDB(100); db > -100 {
		t.Fatalf("center attenuation %v dB", db)
	}

	testutil.RequireDB(t, "90 Hz edge", f.MagnitudeDB(90), butterworthEdgeDB, 1e-6)
	testutil.RequireDB(t, "110 Hz edge", f.MagnitudeDB(110), butterworthEdgeDB, 1e-6)
	testutil.RequireDB(t, "DC", f.MagnitudeDB(0), 0, 1e-9)
}

func TestButterworth_Minus3dBAtEdges(t *testing.T) {
	for order := 1; order <= 10; order++ {
		f := New()

		if err := f.ButterworthLowPass(order, testRate, testFreq); err != nil {
			t.Fatal(err)
		}

		testutil.RequireDB(t, "lowpass cutoff", f.MagnitudeDB(testFreq), butterworthEdgeDB, 1e-6)

		if err := f.ButterworthHighPass(order, testRate, testFreq); err != nil {
			t.Fatal(err)
		}

		testutil.RequireDB(t, "highpass cutoff", f.MagnitudeDB(testFreq), butterworthEdgeDB, 1e-6)

		if err := f.ButterworthBandPass(order, testRate, testFreq, testWidth); err != nil {
			t.Fatal(err)
		}

		testutil.RequireDB(t, "bandpass lower edge", f.MagnitudeDB(testFreq-testWidth/2), butterworthEdgeDB, 1e-6)
		testutil.RequireDB(t, "bandpass upper edge", f.MagnitudeDB(testFreq+testWidth/2), butterworthEdgeDB, 1e-6)
	}
}

func TestReferenceGainEqualsTarget(t *testing.T) {
	for _, tc := range catalog(4) {
		t.Run(tc.name, func(t *testing.T) {
			f := New()
			mustSetup(t, f, tc.d)

			l := f.Layout()
			freq := l.NormalW * testRate / (2 * math.Pi)
			got := cmplx.Abs(f.Response(freq))

			if math.Abs(got-l.NormalGain) > 1e-9*math.Max(1, l.NormalGain) {
				t.Fatalf("gain at %.3f Hz = %.12g, want %.12g", freq, got, l.NormalGain)
			}

			want := 1.0
			switch p := tc.d.Prototype.(type) {
			case prototype.ButterworthShelf:
				want = core.DBToLinear(p.GainDB)
			case prototype.ChebyshevIShelf:
				want = core.DBToLinear(p.GainDB)
			case prototype.ChebyshevIIShelf:
				want = core.DBToLinear(p.GainDB)
			case prototype.BesselShelf:
				want = core.DBToLinear(p.GainDB)
			case prototype.ChebyshevI:
				want = core.DBToLinear(-p.RippleDB)
			case prototype.Elliptic:
				want = core.DBToLinear(-p.RippleDB)
			}

			if math.Abs(l.NormalGain-want) > 1e-12 {
				t.Fatalf("reference target %v, want %v", l.NormalGain, want)
			}
		})
	}
}

func TestRippleFamilies_GainAtCutoff(t *testing.T) {
	f := New()

	if err := f.ChebyshevILowPass(5, testRate, testFreq, 2); err != nil {
		t.Fatal(err)
	}

	testutil.RequireDB(t, "chebyshev1 cutoff", f.MagnitudeDB(testFreq), -2, 1e-6)

	if err := f.ChebyshevIILowPass(5, testRate, testFreq, 50); err != nil {
		t.Fatal(err)
	}

	testutil.RequireDB(t, "chebyshev2 cutoff", f.MagnitudeDB(testFreq), -50, 1e-5)

	if err := f.EllipticLowPass(5, testRate, testFreq, 0.5, 0); err != nil {
		t.Fatal(err)
	}

	testutil.RequireDB(t, "elliptic cutoff", f.MagnitudeDB(testFreq), -0.5, 1e-5)

	if err := f.BesselLowPass(5, testRate, testFreq); err != nil {
		t.Fatal(err)
	}

	testutil.RequireDB(t, "bessel cutoff", f.MagnitudeDB(testFreq), butterworthEdgeDB, 1e-6)
}

func TestImpulseResponseDecays(t *testing.T) {
	for _, tc := range catalog(4) {
		t.Run(tc.name, func(t *testing.T) {
			f := New()
			mustSetup(t, f, tc.d)

			ir := f.ImpulseResponse(16384)
			testutil.RequireFinite(t, ir)

			peak, tail := 0.0, 0.0
			for i, v := range ir {
				if i < len(ir)-1024 {
					peak = math.Max(peak, math.Abs(v))
				} else {
					tail = math.Max(tail, math.Abs(v))
				}
			}

			if tail > 1e-6*peak {
				t.Fatalf("tail %v vs peak %v", tail, peak)
			}
		})
	}
}

func TestZeroInZeroOut(t *testing.T) {
	zeros := make([]float64, 512)

	for _, s := range biquad.Structures() {
		for _, tc := range catalog(3) {
			f := New(WithStructure(s))
			mustSetup(t, f, tc.d)

			for i, x := range zeros {
				if y := f.Filter(x); y != 0 {
					t.Fatalf("%s %s: y[%d] = %v", s, tc.name, i, y)
				}
			}
		}
	}
}

func TestStructuresAgree(t *testing.T) {
	in := testutil.DeterministicNoise(7, 1, 2048)

	for _, tc := range catalog(4) {
		t.Run(tc.name, func(t *testing.T) {
			outs := make([][]float64, 0, 3)

			for _, s := range biquad.Structures() {
				f := New(WithStructure(s))
				mustSetup(t, f, tc.d)

				out := make([]float64, len(in))
				for i, x := range in {
					out[i] = f.Filter(x)
				}

				outs = append(outs, out)
			}

			testutil.RequireSliceNearlyEqual(t, outs[1], outs[0], 1e-8)
			testutil.RequireSliceNearlyEqual(t, outs[2], outs[0], 1e-8)
		})
	}
}

func TestProcessBlockMatchesFilter(t *testing.T) {
	in := testutil.DeterministicNoise(3, 1, 1000)

	for _, s := range biquad.Structures() {
		a := New(WithStructure(s))
		b := New(WithStructure(s))

		if err := a.EllipticBandPass(3, testRate, 3000, 800, 0.5, 1); err != nil {
			t.Fatal(err)
		}

		if err := b.EllipticBandPass(3, testRate, 3000, 800, 0.5, 1); err != nil {
			t.Fatal(err)
		}

		want := make([]float64, len(in))
		for i, x := range in {
			want[i] = a.Filter(x)
		}

		got := append([]float64(nil), in...)
		b.ProcessBlock(got[:333])
		b.ProcessBlock(got[333:])

		testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
	}
}

func TestOrderBoundaries(t *testing.T) {
	f := New(WithMaxOrder(6))

	ok := []func() error{
		func() error { return f.ButterworthLowPass(6, testRate, testFreq) },
		func() error { return f.ChebyshevIHighPass(6, testRate, testFreq, 1) },
		func() error { return f.ChebyshevIIBandPass(6, testRate, testFreq, testWidth, 40) },
		func() error { return f.EllipticBandStop(6, testRate, testFreq, testWidth, 1, 0) },
		func() error { return f.BesselLowShelf(6, testRate, testFreq, 3) },
	}

	for i, fn := range ok {
		if err := fn(); err != nil {
			t.Fatalf("case %d at MaxOrder: %v", i, err)
		}
	}

	bad := []func() error{
		func() error { return f.ButterworthLowPass(7, testRate, testFreq) },
		func() error { return f.EllipticLowPass(7, testRate, testFreq, 1, 0) },
		func() error { return f.BesselBandPass(7, testRate, testFreq, testWidth) },
		func() error { return f.ChebyshevILowPass(0, testRate, testFreq, 1) },
		func() error { return f.ChebyshevIILowPass(-2, testRate, testFreq, 40) },
	}

	for i, fn := range bad {
		if err := fn(); !errors.Is(err, core.ErrConfiguration) {
			t.Fatalf("case %d: err = %v, want ErrConfiguration", i, err)
		}
	}
}

func TestDefaultMaxOrderAllFamilies(t *testing.T) {
	f := New()

	for _, tc := range catalog(DefaultMaxOrder) {
		if tc.d.Shape != LowPass && tc.d.Shape != LowShelf {
			continue
		}

		if err := f.Setup(tc.d); err != nil {
			t.Fatalf("%s order %d: %v", tc.name, DefaultMaxOrder, err)
		}
	}

	d := catalog(DefaultMaxOrder + 1)[0].d
	if err := f.Setup(d); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("order %d: err = %v", d.Order, err)
	}
}

func TestBesselEveryOrderAndShape(t *testing.T) {
	f := New()

	for order := 1; order <= DefaultMaxOrder; order++ {
		for _, tc := range catalog(order) {
			if tc.d.Prototype.Name() != "bessel" && tc.d.Prototype.Name() != "bessel-shelf" {
				continue
			}

			if err := f.Setup(tc.d); err != nil {
				t.Fatalf("%s order %d: %v", tc.name, order, err)
			}

			want := (order + 1) / 2
			if tc.d.Shape.Band() {
				want = order
			}

			if f.NumSections() != want {
				t.Fatalf("%s order %d: %d sections, want %d", tc.name, order, f.NumSections(), want)
			}

			if db := f.MagnitudeDB(testFreq / 2); math.IsNaN(db) || math.IsInf(db, 1) {
				t.Fatalf("%s order %d: response %v dB", tc.name, order, db)
			}
		}
	}
}

func TestFrequencyBoundaries(t *testing.T) {
	f := New()

	for _, freq := range []float64{0, -100, testRate / 2, testRate, math.NaN(), math.Inf(1)} {
		if err := f.ButterworthLowPass(2, testRate, freq); !errors.Is(err, core.ErrConfiguration) {
			t.Fatalf("cutoff %v: err = %v", freq, err)
		}
	}

	for _, rate := range []float64{0, -48000, math.NaN()} {
		if err := f.ButterworthHighPass(2, rate, testFreq); !errors.Is(err, core.ErrConfiguration) {
			t.Fatalf("sample rate %v: err = %v", rate, err)
		}
	}

	for _, freq := range []float64{1, 23900} {
		if err := f.ButterworthLowPass(2, testRate, freq); err != nil {
			t.Fatalf("cutoff %v: %v", freq, err)
		}
	}

	widths := []struct {
		center, width float64
		ok            bool
	}{
		{1000, 1999, true},
		{1000, 2000, false},
		{1000, 0, false},
		{1000, -10, false},
		{23000, 1999, true},
		{23000, 2000, false},
	}

	for _, w := range widths {
		err := f.ButterworthBandPass(2, testRate, w.center, w.width)
		if w.ok && err != nil {
			t.Fatalf("band %v/%v: %v", w.center, w.width, err)
		}

		if !w.ok && !errors.Is(err, core.ErrConfiguration) {
			t.Fatalf("band %v/%v: err = %v", w.center, w.width, err)
		}
	}
}

func TestFailedSetupKeepsCoefficients(t *testing.T) {
	f := New()
	if err := f.ChebyshevILowPass(4, testRate, testFreq, 1); err != nil {
		t.Fatal(err)
	}

	sections := f.Sections()
	designed := f.Design()
	poles := f.Layout().NumPoles()

	failures := []Design{
		{Shape: LowPass, Prototype: prototype.Butterworth{}, Order: 0, SampleRate: testRate, Frequency: testFreq},
		{Shape: LowPass, Prototype: prototype.Butterworth{}, Order: 2, SampleRate: testRate, Frequency: 30000},
		{Shape: LowPass, Prototype: prototype.Elliptic{RippleDB: 1, Rolloff: 10}, Order: 4, SampleRate: testRate, Frequency: testFreq},
		{Shape: LowPass, Prototype: prototype.ChebyshevI{RippleDB: 0}, Order: 4, SampleRate: testRate, Frequency: testFreq},
		{Shape: LowShelf, Prototype: prototype.Butterworth{}, Order: 2, SampleRate: testRate, Frequency: testFreq},
		{Shape: BandPass, Prototype: prototype.ButterworthShelf{GainDB: 3}, Order: 2, SampleRate: testRate, Frequency: testFreq, Width: 100},
		{Shape: BandStop, Prototype: prototype.Bessel{}, Order: 2, SampleRate: testRate, Frequency: testFreq, Width: 5000},
		{Shape: HighPass, Order: 2, SampleRate: testRate, Frequency: testFreq},
		{Shape: Shape(99), Prototype: prototype.Butterworth{}, Order: 2, SampleRate: testRate, Frequency: testFreq},
	}

	for i, d := range failures {
		if err := f.Setup(d); !errors.Is(err, core.ErrConfiguration) {
			t.Fatalf("case %d: err = %v, want ErrConfiguration", i, err)
		}

		if diff := cmp.Diff(sections, f.Sections()); diff != "" {
			t.Fatalf("case %d: sections changed (-want +got):\n%s", i, diff)
		}

		if f.Design() != designed || f.Layout().NumPoles() != poles || f.SampleRate() != testRate {
			t.Fatalf("case %d: configuration changed", i)
		}
	}
}

func TestUnconfiguredFilterPassesThrough(t *testing.T) {
	f := New()

	if err := f.ButterworthLowPass(99, testRate, testFreq); err == nil {
		t.Fatal("expected error")
	}

	if f.NumSections() != 0 || f.Order() != 0 || f.SampleRate() != 0 {
		t.Fatalf("sections %d order %d rate %v", f.NumSections(), f.Order(), f.SampleRate())
	}

	for _, x := range []float64{0.5, -2, 1e9} {
		if y := f.Filter(x); y != x {
			t.Fatalf("Filter(%v) = %v", x, y)
		}
	}

	if h := f.Response(1000); h != 1 {
		t.Fatalf("Response = %v", h)
	}
}

func TestReconfigureKeepsState(t *testing.T) {
	f := New(WithStructure(biquad.DirectFormI))
	if err := f.ButterworthLowPass(4, testRate, testFreq); err != nil {
		t.Fatal(err)
	}

	for _, x := range testutil.DeterministicNoise(1, 1, 64) {
		f.Filter(x)
	}

	before := f.chain.State()

	if err := f.ButterworthLowPass(4, testRate, 2*testFreq); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(before, f.chain.State()); diff != "" {
		t.Fatalf("state changed on reconfigure (-before +after):\n%s", diff)
	}

	f.Reset()

	for _, v := range f.chain.State() {
		if v != 0 {
			t.Fatalf("state after Reset: %v", f.chain.State())
		}
	}
}

func TestNonFiniteInputPropagates(t *testing.T) {
	f := New()
	if err := f.ButterworthLowPass(2, testRate, testFreq); err != nil {
		t.Fatal(err)
	}

	if y := f.Filter(math.NaN()); !math.IsNaN(y) {
		t.Fatalf("Filter(NaN) = %v", y)
	}
}

func TestButterworthMatchesCookbookCascade(t *testing.T) {
	for _, order := range []int{2, 4, 6, 8} {
		f := New()
		if err := f.ButterworthLowPass(order, testRate, testFreq); err != nil {
			t.Fatal(err)
		}

		ref := New()
		sections := make([]biquad.Coefficients, 0, order/2)

		for i := range order / 2 {
			theta := float64(2*i+1) * math.Pi / float64(2*order)

			c, err := design.Lowpass(testFreq, 1/(2*math.Sin(theta)), testRate)
			if err != nil {
				t.Fatal(err)
			}

			sections = append(sections, c)
		}

		if err := ref.SetSections(testRate, sections...); err != nil {
			t.Fatal(err)
		}

		got := f.ImpulseResponse(512)
		want := ref.ImpulseResponse(512)

		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Fatalf("order %d impulse response mismatch (-cookbook +pipeline):\n%s", order, diff)
		}
	}
}

func TestSetSections(t *testing.T) {
	flat, err := design.Highpass(100, design.DefaultQ, 1000)
	if err != nil {
		t.Fatal(err)
	}

	resonant, err := design.Highpass(100, 5, 1000)
	if err != nil {
		t.Fatal(err)
	}

	f := New()
	if err := f.SetSections(1000, flat); err != nil {
		t.Fatal(err)
	}

	flatDB := f.MagnitudeDB(100)

	if err := f.SetSections(1000, resonant); err != nil {
		t.Fatal(err)
	}

	resonantDB := f.MagnitudeDB(100)

	testutil.RequireDB(t, "Q=1/sqrt2", flatDB, butterworthEdgeDB, 1e-6)
	testutil.RequireDB(t, "Q=5", resonantDB, 20*math.Log10(5), 1e-9)

	if resonantDB <= flatDB {
		t.Fatal("no resonance")
	}

	if f.Order() != 2 || f.SampleRate() != 1000 || f.Layout().NumPoles() != 0 || f.Design() != (Design{}) {
		t.Fatal("unexpected state after SetSections")
	}
}

func TestSetSectionsRejects(t *testing.T) {
	f := New(WithMaxOrder(2))
	pass := biquad.Coefficients{B0: 1}

	tests := []struct {
		name     string
		rate     float64
		sections []biquad.Coefficients
		want     error
	}{
		{"no sections", 1000, nil, core.ErrConfiguration},
		{"too many", 1000, []biquad.Coefficients{pass, pass, pass}, core.ErrConfiguration},
		{"bad rate", 0, []biquad.Coefficients{pass}, core.ErrConfiguration},
		{"unstable", 1000, []biquad.Coefficients{{B0: 1, A1: -2.5, A2: 1.5}}, core.ErrInstability},
		{"on circle", 1000, []biquad.Coefficients{{B0: 1, A2: 1}}, core.ErrInstability},
		{"nan", 1000, []biquad.Coefficients{{B0: math.NaN()}}, core.ErrInstability},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := f.SetSections(tc.rate, tc.sections...); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}

			if f.NumSections() != 0 {
				t.Fatal("filter changed")
			}
		})
	}
}

func TestImpulseResponseMatchesSpectrum(t *testing.T) {
	const n = 4096

	f := New()
	if err := f.ChebyshevIIBandStop(3, testRate, 5000, 2000, 40); err != nil {
		t.Fatal(err)
	}

	spectrum, err := testutil.Spectrum(f.ImpulseResponse(n), n)
	if err != nil {
		t.Fatal(err)
	}

	want := make([]complex128, n/2+1)
	for k := range want {
		want[k] = f.Response(testutil.BinFrequency(k, n) * testRate)
	}

	d, err := testutil.MaxComplexDiff(spectrum[:n/2+1], want)
	if err != nil {
		t.Fatal(err)
	}

	if d > 1e-6 {
		t.Fatalf("FFT of impulse response differs from analytic response by %v", d)
	}
}

func TestMagnitudeResponseMatchesMagnitudeDB(t *testing.T) {
	f := New()
	if err := f.BesselBandShelf(3, testRate, 2000, 1000, 9); err != nil {
		t.Fatal(err)
	}

	freqs := []float64{0, 500, 1500, 2000, 2500, 10000, 23999}
	mags := make([]float64, len(freqs))
	f.MagnitudeResponse(mags, freqs)

	for i, hz := range freqs {
		testutil.RequireDB(t, "grid", core.LinearToDB(mags[i]), f.MagnitudeDB(hz), 1e-9)
	}
}

func BenchmarkFilter(b *testing.B) {
	for _, s := range biquad.Structures() {
		b.Run(s.String(), func(b *testing.B) {
			f := New(WithStructure(s))
			if err := f.EllipticLowPass(8, testRate, testFreq, 0.5, 0); err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()

			for b.Loop() {
				f.Filter(1)
			}
		})
	}
}

func BenchmarkProcessBlock(b *testing.B) {
	buf := testutil.DeterministicNoise(1, 1, 1024)

	f := New()
	if err := f.ButterworthBandPass(8, testRate, testFreq, testWidth); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(buf) * 8))

	for b.Loop() {
		f.ProcessBlock(buf)
	}
}

func BenchmarkSetupElliptic(b *testing.B) {
	f := New()

	b.ReportAllocs()

	for b.Loop() {
		if err := f.EllipticBandStop(8, testRate, testFreq, testWidth, 0.5, 1); err != nil {
			b.Fatal(err)
		}
	}
}
