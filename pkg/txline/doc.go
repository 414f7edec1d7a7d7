// Package txline computes the steady-state behavior of a uniform,
// ideal transmission line segment terminated in a complex load.
//
// Given the characteristic impedance Z0, the load impedance ZL, and the
// electrical length βl in radians, the package derives:
//   - Γ_L, Γ_in: reflection coefficients at the load and line input
//   - SWR: standing wave ratio
//   - Zin: input impedance through the line transform
//   - Y_L, Y_in: load and input admittances
//
// # Usage
//
//	in := txline.Input{Z0: 50, ZL: 3 + 4i, BetaL: math.Pi / 4}
//	if err := in.Validate(); err != nil { ... }
//	res := txline.Analyze(in)
//	if res.Zin.Defined() {
//		fmt.Println(txline.FormatRect(res.Zin.Value))
//	}
//
// Every function is stateless; a Result is a fresh value per call with no
// sharing between invocations.
//
// # Error model
//
// Vanishing denominators (ZL = −Z0, admittance of a short, line resonance)
// are reported as ErrDivisionByZero. Inputs the transform cannot accept at
// all, such as a short circuit at an exact quarter-wave point, are reported
// as a DomainError. Neither condition is ever signalled through IEEE
// infinities or NaN: a quantity is either a finite complex value or carries
// its error.
//
// The standing wave ratio is the one advisory exception: for |Γ| > 1
// (active or negative-resistance loads) the classical ratio loses its
// meaning, but the formula is still evaluated and the value flagged
// OutOfPassiveRange so exploratory inputs remain usable.
package txline
