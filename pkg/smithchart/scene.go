package smithchart

import (
	"math"
	"math/cmplx"

	"github.com/OpenTraceLab/OpenTraceSmith/pkg/txline"
)

// DefaultResolution is the number of samples per circle when the caller
// passes a non-positive resolution. It trades smoothness for point count
// and has no effect on correctness.
const DefaultResolution = 256

func sampleCircle(center XY, radius float64, resolution int) Circle {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	pts := make([]XY, resolution)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(resolution))
		pts[i] = XY{X: center.X + radius*cos, Y: center.Y + radius*sin}
	}
	return Circle{Center: center, Radius: radius, Points: pts}
}

// UnitCircle returns the chart boundary |Γ| = 1.
func UnitCircle(resolution int) Circle {
	return sampleCircle(XY{}, 1, resolution)
}

// SWRCircle returns the constant-mismatch circle through Γ_L. A matched
// load degenerates it to a zero-radius circle.
func SWRCircle(gammaL complex128, resolution int) Circle {
	return sampleCircle(XY{}, cmplx.Abs(gammaL), resolution)
}

// MarkerPoint places a marker of the given kind at Γ.
func MarkerPoint(gamma complex128, kind MarkerKind) Marker {
	return Marker{X: real(gamma), Y: imag(gamma), Kind: kind}
}

// BuildScene assembles the ordered primitive list for one analysis: unit
// circle, SWR circle, then the load-impedance, input-impedance,
// load-admittance and input-admittance markers. The order fixes z-order
// and legend order for renderers.
//
// Quantities the engine could not compute are omitted, never plotted at a
// default position. The admittance markers only need the corresponding Γ
// (negation is exact), so they survive even when Y itself is undefined.
func BuildScene(res txline.Result, resolution int) []Primitive {
	unit := UnitCircle(resolution)
	scene := []Primitive{{Circle: &unit}}
	if res.GammaLoad.Defined() {
		swr := SWRCircle(res.GammaLoad.Value, resolution)
		scene = append(scene, Primitive{Circle: &swr})
	}
	addMarker := func(q txline.Quantity, kind MarkerKind, admittance bool) {
		if !q.Defined() {
			return
		}
		g := q.Value
		if admittance {
			g = txline.AdmittanceReflection(g)
		}
		m := MarkerPoint(g, kind)
		scene = append(scene, Primitive{Marker: &m})
	}
	addMarker(res.GammaLoad, LoadImpedance, false)
	addMarker(res.GammaIn, InputImpedance, false)
	addMarker(res.GammaLoad, LoadAdmittance, true)
	addMarker(res.GammaIn, InputAdmittance, true)
	return scene
}
