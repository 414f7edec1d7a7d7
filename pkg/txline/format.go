package txline

import (
	"fmt"
	"math"
	"math/cmplx"
)

// FormatPolar renders c as magnitude and angle in degrees, e.g.
// "0.8875∠170.8°".
func FormatPolar(c complex128) string {
	return fmt.Sprintf("%.4g∠%.1f°", cmplx.Abs(c), Angle(c))
}

// FormatRect renders c in rectangular form, e.g. "3+4i" or "0.12-0.16i".
func FormatRect(c complex128) string {
	re, im := real(c), imag(c)
	switch {
	case im == 0:
		return fmt.Sprintf("%.4g", re)
	case im < 0:
		return fmt.Sprintf("%.4g-%.4gi", re, -im)
	default:
		return fmt.Sprintf("%.4g+%.4gi", re, im)
	}
}

// FormatSWR renders a standing wave ratio, annotating the edge conditions.
func FormatSWR(v SWRValue) string {
	switch {
	case math.IsInf(v.Ratio, 1):
		return "inf"
	case v.OutOfPassiveRange:
		return fmt.Sprintf("%.4g (out of passive range)", v.Ratio)
	default:
		return fmt.Sprintf("%.4g", v.Ratio)
	}
}
