// Package cxparse parses the complex-number literals and simple radian
// expressions accepted by the calculator's input fields: rectangular forms
// like "3+4i", "3-j4" and "(3+4j)" with i and j interchangeable, bare
// reals, and pi arithmetic such as "pi/4" or "3*pi/8".
package cxparse

import (
	"fmt"
	"math"

	"github.com/alecthomas/participle/v2"
)

const pi = math.Pi

// ParseError reports input the expression grammar could not accept, or an
// expression whose evaluation is undefined.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cxparse: cannot parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parser parses complex-valued expressions.
type Parser struct {
	parser *participle.Parser[Expr]
}

// NewParser creates a new expression parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Expr](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse evaluates one expression to a complex value.
func (p *Parser) Parse(input string) (complex128, error) {
	expr, err := p.parser.ParseString("", input)
	if err != nil {
		return 0, &ParseError{Input: input, Err: err}
	}
	v, err := expr.eval()
	if err != nil {
		return 0, &ParseError{Input: input, Err: err}
	}
	return v, nil
}

// ParseComplex evaluates one expression to a complex value using a fresh
// parser.
func ParseComplex(input string) (complex128, error) {
	p, err := NewParser()
	if err != nil {
		return 0, err
	}
	return p.Parse(input)
}

// ParseReal evaluates one expression and requires the result to be purely
// real, as needed for Z0 and the electrical length.
func ParseReal(input string) (float64, error) {
	c, err := ParseComplex(input)
	if err != nil {
		return 0, err
	}
	if imag(c) != 0 {
		return 0, &ParseError{Input: input, Err: fmt.Errorf("imaginary part not allowed here")}
	}
	return real(c), nil
}
