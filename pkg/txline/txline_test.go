package txline

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func complexNear(t *testing.T, got, want complex128, tol float64, label string) {
	t.Helper()
	if cmplx.Abs(got-want) > tol {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
}

func TestReflectionCoefficientTypicalLoad(t *testing.T) {
	gamma, err := ReflectionCoefficient(3+4i, 50)
	if err != nil {
		t.Fatalf("ReflectionCoefficient failed: %v", err)
	}
	if !scalar.EqualWithinAbs(cmplx.Abs(gamma), 0.8875, 1e-3) {
		t.Fatalf("|Gamma| = %v, want ~0.8875", cmplx.Abs(gamma))
	}
	if !scalar.EqualWithinAbs(Angle(gamma), 170.8, 0.1) {
		t.Fatalf("angle = %v deg, want ~170.8", Angle(gamma))
	}
}

func TestReflectionCoefficientMatched(t *testing.T) {
	gamma, err := ReflectionCoefficient(50, 50)
	if err != nil {
		t.Fatalf("ReflectionCoefficient failed: %v", err)
	}
	if gamma != 0 {
		t.Fatalf("matched load Gamma = %v, want exactly 0", gamma)
	}
}

func TestReflectionCoefficientShort(t *testing.T) {
	gamma, err := ReflectionCoefficient(0, 50)
	if err != nil {
		t.Fatalf("ReflectionCoefficient failed: %v", err)
	}
	if gamma != -1 {
		t.Fatalf("short circuit Gamma = %v, want exactly -1", gamma)
	}
}

func TestReflectionCoefficientVanishingDenominator(t *testing.T) {
	_, err := ReflectionCoefficient(-50, 50)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Z = -Z0: err = %v, want ErrDivisionByZero", err)
	}
}

// Passive loads (Re ZL >= 0) never reflect more than they receive.
func TestReflectionCoefficientPassivity(t *testing.T) {
	for _, re := range []float64{0, 0.1, 1, 10, 50, 1e3, 1e6} {
		for _, im := range []float64{-1e4, -300, -50, 0, 2, 75, 1e5} {
			zl := complex(re, im)
			gamma, err := ReflectionCoefficient(zl, 50)
			if err != nil {
				t.Fatalf("ZL=%v: %v", zl, err)
			}
			if cmplx.Abs(gamma) > 1+1e-12 {
				t.Fatalf("ZL=%v: |Gamma| = %v > 1", zl, cmplx.Abs(gamma))
			}
		}
	}
}

func TestInputImpedanceZeroLength(t *testing.T) {
	zin, err := InputImpedance(50, 3+4i, 0)
	if err != nil {
		t.Fatalf("InputImpedance failed: %v", err)
	}
	complexNear(t, zin, 3+4i, 1e-12, "Zin at betaL=0")
}

func TestInputImpedanceMatchedAnyLength(t *testing.T) {
	for _, bl := range []float64{0, 0.3, math.Pi / 4, math.Pi / 2, 2, 5.9} {
		zin, err := InputImpedance(50, 50, bl)
		if err != nil {
			t.Fatalf("betaL=%g: %v", bl, err)
		}
		complexNear(t, zin, 50, 1e-9, "matched Zin")
	}
}

func TestInputImpedanceQuarterWave(t *testing.T) {
	// Zin = Z0^2/ZL at betaL = pi/2. 2500/(3+4i) = 300-400i.
	zin, err := InputImpedance(50, 3+4i, math.Pi/2)
	if err != nil {
		t.Fatalf("InputImpedance failed: %v", err)
	}
	complexNear(t, zin, 300-400i, 1e-9, "quarter-wave Zin")
}

func TestInputImpedanceQuarterWaveShort(t *testing.T) {
	// A quarter-wave line transforms a short to an open; there is no
	// finite result to report.
	_, err := InputImpedance(50, 0, math.Pi/2)
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("err = %v, want DomainError", err)
	}
}

func TestInputImpedanceResonantDenominator(t *testing.T) {
	// ZL = j*Z0 at betaL = pi/4 makes the denominator Z0 + j*ZL*tan
	// vanish.
	_, err := InputImpedance(50, 50i, math.Pi/4)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("err = %v, want ErrDivisionByZero", err)
	}
}

func TestInputImpedanceNeverNaN(t *testing.T) {
	for _, bl := range []float64{0, 0.1, math.Pi / 2, math.Pi, 3 * math.Pi / 2, 100} {
		for _, zl := range []complex128{0, 50, 3 + 4i, -20 + 5i, 1e9} {
			zin, err := InputImpedance(50, zl, bl)
			if err != nil {
				continue
			}
			if cmplx.IsNaN(zin) || cmplx.IsInf(zin) {
				t.Fatalf("betaL=%g ZL=%v: Zin = %v", bl, zl, zin)
			}
		}
	}
}

func TestAdmittance(t *testing.T) {
	y, err := Admittance(3 + 4i)
	if err != nil {
		t.Fatalf("Admittance failed: %v", err)
	}
	complexNear(t, y, 0.12-0.16i, 1e-12, "Y")
}

func TestAdmittanceOfShort(t *testing.T) {
	_, err := Admittance(0)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("err = %v, want ErrDivisionByZero", err)
	}
}

func TestAdmittanceRoundTrip(t *testing.T) {
	for _, z := range []complex128{1, 3 + 4i, -7 + 2i, 0.001i, 1e6 - 1e6i} {
		y, err := Admittance(z)
		if err != nil {
			t.Fatalf("Z=%v: %v", z, err)
		}
		back, err := Admittance(y)
		if err != nil {
			t.Fatalf("Y=%v: %v", y, err)
		}
		complexNear(t, back, z, cmplx.Abs(z)*1e-12, "1/(1/Z)")
	}
}

func TestSWRMatched(t *testing.T) {
	v := SWR(0)
	if v.Ratio != 1 {
		t.Fatalf("SWR(0) = %v, want exactly 1", v.Ratio)
	}
	if v.OutOfPassiveRange {
		t.Fatal("SWR(0) flagged out of passive range")
	}
}

func TestSWRTypicalLoad(t *testing.T) {
	gamma, _ := ReflectionCoefficient(3+4i, 50)
	v := SWR(gamma)
	if !scalar.EqualWithinAbs(v.Ratio, 16.77, 0.01) {
		t.Fatalf("SWR = %v, want ~16.77", v.Ratio)
	}
}

func TestSWRTotalReflection(t *testing.T) {
	v := SWR(-1)
	if !math.IsInf(v.Ratio, 1) {
		t.Fatalf("SWR(|Gamma|=1) = %v, want +Inf", v.Ratio)
	}
}

func TestSWRMonotonic(t *testing.T) {
	prev := 0.0
	for _, m := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99} {
		v := SWR(complex(m, 0))
		if v.Ratio <= prev && m > 0 {
			t.Fatalf("SWR(%v) = %v not increasing past %v", m, v.Ratio, prev)
		}
		prev = v.Ratio
	}
}

func TestSWROutOfPassiveRange(t *testing.T) {
	v := SWR(1.5)
	if !v.OutOfPassiveRange {
		t.Fatal("|Gamma|=1.5 not flagged out of passive range")
	}
	// The raw formula value is still reported, negative as it is.
	if v.Ratio >= 0 {
		t.Fatalf("SWR(1.5) = %v, want the raw (negative) formula value", v.Ratio)
	}
}

func TestAdmittanceReflectionExactNegation(t *testing.T) {
	for _, g := range []complex128{0, 1, -1, 0.3 - 0.7i, 2 + 2i} {
		if got := AdmittanceReflection(g); got != -g {
			t.Fatalf("AdmittanceReflection(%v) = %v, want %v", g, got, -g)
		}
	}
}

func TestAngleRange(t *testing.T) {
	cases := []struct {
		c    complex128
		want float64
	}{
		{1, 0},
		{1i, 90},
		{-1i, -90},
		{-1, 180}, // (-180, 180]: the negative real axis maps to +180
		{1 + 1i, 45},
	}
	for _, tc := range cases {
		if got := Angle(tc.c); !scalar.EqualWithinAbs(got, tc.want, 1e-9) {
			t.Fatalf("Angle(%v) = %v, want %v", tc.c, got, tc.want)
		}
	}
}
