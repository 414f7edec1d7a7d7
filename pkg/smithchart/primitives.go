// Package smithchart maps transmission-line quantities onto the bounded
// reflection-coefficient plane as renderable geometric primitives: the
// chart boundary, the constant-mismatch (SWR) circle, and one labeled
// marker per derived quantity. It knows nothing about any rendering
// technology; see the render subpackage for the gonum/plot backend.
package smithchart

import "image/color"

// MarkerKind identifies which derived quantity a marker represents. Each
// kind has a fixed visual identity so legends stay stable across scenes.
type MarkerKind int

const (
	LoadImpedance MarkerKind = iota
	InputImpedance
	LoadAdmittance
	InputAdmittance
)

func (k MarkerKind) String() string {
	switch k {
	case LoadImpedance:
		return "load impedance"
	case InputImpedance:
		return "input impedance"
	case LoadAdmittance:
		return "load admittance"
	case InputAdmittance:
		return "input admittance"
	}
	return "unknown"
}

// Color returns the kind's fixed plotting color.
func (k MarkerKind) Color() color.RGBA {
	switch k {
	case LoadImpedance:
		return color.RGBA{R: 0xD6, G: 0x28, B: 0x28, A: 0xFF}
	case InputImpedance:
		return color.RGBA{R: 0x1F, G: 0x77, B: 0xB4, A: 0xFF}
	case LoadAdmittance:
		return color.RGBA{R: 0xE8, G: 0x85, B: 0x0C, A: 0xFF}
	case InputAdmittance:
		return color.RGBA{R: 0x2C, G: 0xA0, B: 0x2C, A: 0xFF}
	}
	return color.RGBA{A: 0xFF}
}

// XY is one point on the Γ-plane.
type XY struct {
	X, Y float64
}

// Circle is a sampled circle. A zero radius is a valid degenerate circle;
// renderers must not special-case it.
type Circle struct {
	Center XY
	Radius float64
	Points []XY // parametric samples over θ ∈ [0, 2π)
}

// Marker is a single labeled point.
type Marker struct {
	X, Y float64
	Kind MarkerKind
}

// Primitive is one drawable element; exactly one field is set.
type Primitive struct {
	Circle *Circle
	Marker *Marker
}
