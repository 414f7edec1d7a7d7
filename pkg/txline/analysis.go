package txline

import "fmt"

// Input is one validated set of line parameters.
type Input struct {
	Z0    complex128 // characteristic impedance, Re(Z0) > 0
	ZL    complex128 // load impedance; 0 is a short, large magnitude approximates an open
	BetaL float64    // electrical length in radians
}

// Validate checks the parameters the transforms cannot themselves reject.
func (in Input) Validate() error {
	if real(in.Z0) <= 0 {
		return &DomainError{
			Op:     "validate",
			Reason: fmt.Sprintf("characteristic impedance Z0=%v must have a positive real part", in.Z0),
		}
	}
	return nil
}

// Quantity is one derived value that may be undefined for the given
// inputs. Undefined quantities keep their error; they are never defaulted
// to zero.
type Quantity struct {
	Value complex128
	Err   error
}

// Defined reports whether the quantity was computed.
func (q Quantity) Defined() bool { return q.Err == nil }

// Result collects every quantity derived from one Input. SWR is
// meaningful only when GammaLoad is defined.
type Result struct {
	GammaLoad Quantity // Γ_L, reflection coefficient at the load
	SWR       SWRValue
	Zin       Quantity // input impedance through the line transform
	GammaIn   Quantity // Γ_in, reflection coefficient at the line input
	YLoad     Quantity // Y_L = 1/ZL
	YIn       Quantity // Y_in = 1/Zin
}

// Analyze runs the full transformation pipeline. Each quantity carries its
// own error, so a partially degenerate network (a short circuit, say) still
// yields every quantity that remains well defined.
func Analyze(in Input) Result {
	var res Result
	res.GammaLoad = quantity(ReflectionCoefficient(in.ZL, in.Z0))
	if res.GammaLoad.Defined() {
		res.SWR = SWR(res.GammaLoad.Value)
	}
	res.Zin = quantity(InputImpedance(in.Z0, in.ZL, in.BetaL))
	if res.Zin.Defined() {
		res.GammaIn = quantity(ReflectionCoefficient(res.Zin.Value, in.Z0))
		res.YIn = quantity(Admittance(res.Zin.Value))
	} else {
		res.GammaIn = Quantity{Err: res.Zin.Err}
		res.YIn = Quantity{Err: res.Zin.Err}
	}
	res.YLoad = quantity(Admittance(in.ZL))
	return res
}

func quantity(v complex128, err error) Quantity {
	return Quantity{Value: v, Err: err}
}
