package txline

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Epsilon is the magnitude below which a denominator is treated as zero
// and |cos βl| as a tangent singularity.
const Epsilon = 1e-12

// ReflectionCoefficient computes Γ = (z − z0)/(z + z0), the reflection
// coefficient seen looking into impedance z on a line of characteristic
// impedance z0.
func ReflectionCoefficient(z, z0 complex128) (complex128, error) {
	den := z + z0
	if cmplx.Abs(den) < Epsilon {
		return 0, fmt.Errorf("reflection coefficient with Z+Z0=0: %w", ErrDivisionByZero)
	}
	return (z - z0) / den, nil
}

// InputImpedance transforms the load impedance zl through an ideal line of
// characteristic impedance z0 and electrical length betaL radians:
//
//	Zin = Z0·(ZL + j·Z0·tan βl) / (Z0 + j·ZL·tan βl)
//
// At βl = π/2 + kπ the tangent diverges, so the transform is evaluated in
// its limiting quarter-wave form Zin = Z0²/ZL there; the quarter-wave
// transformer identity holds exactly instead of leaking a huge tan value.
// A short circuit at a quarter-wave point has no finite input impedance
// and is reported as a DomainError. A vanishing denominator away from the
// singularity is the line's resonance condition and is reported as
// ErrDivisionByZero.
func InputImpedance(z0, zl complex128, betaL float64) (complex128, error) {
	sin, cos := math.Sincos(betaL)
	if math.Abs(cos) < Epsilon {
		if cmplx.Abs(zl) < Epsilon {
			return 0, &DomainError{
				Op:     "input impedance",
				Reason: fmt.Sprintf("betaL=%g rad is a quarter-wave point and ZL=0: the short transforms to an open", betaL),
			}
		}
		return z0 * z0 / zl, nil
	}
	t := complex(sin/cos, 0)
	den := z0 + 1i*zl*t
	if cmplx.Abs(den) < Epsilon {
		return 0, fmt.Errorf("input impedance at betaL=%g rad is resonant: %w", betaL, ErrDivisionByZero)
	}
	return z0 * (zl + 1i*z0*t) / den, nil
}

// Admittance computes Y = 1/z in Siemens.
func Admittance(z complex128) (complex128, error) {
	if cmplx.Abs(z) < Epsilon {
		return 0, fmt.Errorf("admittance of Z=0: %w", ErrDivisionByZero)
	}
	return 1 / z, nil
}

// SWRValue is a standing wave ratio together with its edge annotations.
type SWRValue struct {
	// Ratio is (1+|Γ|)/(1−|Γ|), or +Inf when |Γ| is 1 within Epsilon.
	Ratio float64
	// OutOfPassiveRange is set when |Γ| exceeds 1 beyond Epsilon. The
	// classical SWR interpretation breaks down there; Ratio still holds
	// the raw formula value so exploratory inputs stay usable.
	OutOfPassiveRange bool
}

// SWR computes the standing wave ratio for a reflection coefficient.
func SWR(gamma complex128) SWRValue {
	m := cmplx.Abs(gamma)
	if math.Abs(m-1) < Epsilon {
		return SWRValue{Ratio: math.Inf(1)}
	}
	return SWRValue{
		Ratio:             (1 + m) / (1 - m),
		OutOfPassiveRange: m > 1,
	}
}

// AdmittanceReflection maps an impedance-plane reflection coefficient to
// the corresponding admittance point: an exact 180° rotation, Γ_Y = −Γ.
func AdmittanceReflection(gamma complex128) complex128 {
	return -gamma
}

// Angle returns the argument of c in degrees, normalized to (−180, 180].
func Angle(c complex128) float64 {
	deg := cmplx.Phase(c) * 180 / math.Pi
	if deg <= -180 {
		deg += 360
	}
	return deg
}
