package txline

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero reports that a denominator vanished within Epsilon.
// This marks a degenerate or resonant network condition (ZL = −Z0, the
// admittance of a short, a resonant line denominator), not a malformed
// user entry.
var ErrDivisionByZero = errors.New("txline: division by zero")

// DomainError reports an input that is mathematically invalid for the
// requested operation.
type DomainError struct {
	Op     string // operation that rejected the input
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("txline: %s: %s", e.Op, e.Reason)
}
