package math

import "errors"

var (
	// ErrZeroOperand is returned when an operand is congruent to zero mod p
	// and the requested operation is undefined for zero
	ErrZeroOperand = errors.New("operand is zero mod p")

	// ErrNoSquareRoot is returned when a value has no square root mod p
	ErrNoSquareRoot = errors.New("value is not a quadratic residue")
)
