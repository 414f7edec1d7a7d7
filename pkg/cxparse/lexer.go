package cxparse

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// exprLexer defines the lexical structure for complex-number literals and
// simple radian expressions. The imaginary unit marker may be written i or
// j, before or after its magnitude (4j, j4, j).
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Whitespace
	{Name: "Whitespace", Pattern: `[\s]+`},

	// The circle constant (case-insensitive, must precede Imag so "pi"
	// is not read as an identifier starting with i)
	{Name: "Pi", Pattern: `(?i)\bpi\b`},

	// Numbers (sign is handled by the grammar)
	{Name: "Number", Pattern: `[0-9]+(?:\.[0-9]*)?(?:[eE][-+]?[0-9]+)?|\.[0-9]+(?:[eE][-+]?[0-9]+)?`},

	// Imaginary unit marker
	{Name: "Imag", Pattern: `(?i)[ij]`},

	// Operators and parentheses
	{Name: "Add", Pattern: `\+`},
	{Name: "Sub", Pattern: `-`},
	{Name: "Mul", Pattern: `\*`},
	{Name: "Div", Pattern: `/`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})
