// Package num is the arithmetic kernel shared by the tree-walking
// evaluator and the virtual machine, so both execution paths agree on
// division, remainder and exponentiation semantics.
package num

import (
	"errors"
	"fmt"
	"math"
)

// ErrDivisionByZero is returned when the right operand of '/' or '%'
// is exactly zero.
var ErrDivisionByZero = errors.New("division by zero")

// Div performs IEEE-754 division, rejecting a zero divisor.
func Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Mod computes the floating-point remainder. The sign of the result
// follows the dividend, not the always-non-negative modulo convention.
func Mod(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return math.Mod(a, b), nil
}

// Pow is real-valued exponentiation. Invalid bases or exponents yield
// NaN or Inf per IEEE rules rather than an error.
func Pow(a, b float64) float64 {
	return math.Pow(a, b)
}

// Format renders v with 15 significant decimal digits.
func Format(v float64) string {
	return fmt.Sprintf("%.15g", v)
}
