package cxparse

import "fmt"

// Expr is a sum of terms: Term (("+"|"-") Term)*
type Expr struct {
	Left *Term     `parser:"@@"`
	Rest []*OpTerm `parser:"@@*"`
}

// OpTerm is one additive continuation.
type OpTerm struct {
	Op   string `parser:"@(Add | Sub)"`
	Term *Term  `parser:"@@"`
}

// Term is a product of factors: Factor (("*"|"/") Factor)*
type Term struct {
	Left *Factor     `parser:"@@"`
	Rest []*OpFactor `parser:"@@*"`
}

// OpFactor is one multiplicative continuation.
type OpFactor struct {
	Op     string  `parser:"@(Mul | Div)"`
	Factor *Factor `parser:"@@"`
}

// Factor is an optionally signed atom.
type Factor struct {
	Sign string `parser:"@(Sub | Add)?"`
	Atom *Atom  `parser:"@@"`
}

// Atom is a literal, pi, or a parenthesized subexpression.
type Atom struct {
	Imag *ImagLit `parser:"  @@"`
	Num  *NumLit  `parser:"| @@"`
	Pi   bool     `parser:"| @Pi"`
	Sub  *Expr    `parser:"| LParen @@ RParen"`
}

// NumLit is a real literal with an optional postfix imaginary marker (4j).
type NumLit struct {
	Value float64 `parser:"@Number"`
	Imag  bool    `parser:"@Imag?"`
}

// ImagLit is a prefix imaginary marker with an optional magnitude (j4, j).
type ImagLit struct {
	Marker bool     `parser:"@Imag"`
	Value  *float64 `parser:"@Number?"`
}

func (e *Expr) eval() (complex128, error) {
	v, err := e.Left.eval()
	if err != nil {
		return 0, err
	}
	for _, t := range e.Rest {
		rhs, err := t.Term.eval()
		if err != nil {
			return 0, err
		}
		if t.Op == "-" {
			v -= rhs
		} else {
			v += rhs
		}
	}
	return v, nil
}

func (t *Term) eval() (complex128, error) {
	v, err := t.Left.eval()
	if err != nil {
		return 0, err
	}
	for _, f := range t.Rest {
		rhs, err := f.Factor.eval()
		if err != nil {
			return 0, err
		}
		if f.Op == "/" {
			if rhs == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			v /= rhs
		} else {
			v *= rhs
		}
	}
	return v, nil
}

func (f *Factor) eval() (complex128, error) {
	v, err := f.Atom.eval()
	if err != nil {
		return 0, err
	}
	if f.Sign == "-" {
		v = -v
	}
	return v, nil
}

func (a *Atom) eval() (complex128, error) {
	switch {
	case a.Imag != nil:
		if a.Imag.Value != nil {
			return complex(0, *a.Imag.Value), nil
		}
		return 1i, nil
	case a.Num != nil:
		if a.Num.Imag {
			return complex(0, a.Num.Value), nil
		}
		return complex(a.Num.Value, 0), nil
	case a.Pi:
		return complex(pi, 0), nil
	case a.Sub != nil:
		return a.Sub.eval()
	}
	return 0, fmt.Errorf("empty expression")
}
