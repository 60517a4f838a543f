package intpoly

import "errors"

var (
	// ErrInvalidArgumentType is returned when a dynamically typed operand is
	// neither a polynomial nor an integer that fits in an int64.
	ErrInvalidArgumentType = errors.New("incorrect argument type")

	// ErrUnknownOperation is returned by Apply for an Op it does not define.
	ErrUnknownOperation = errors.New("unknown polynomial operation")

	// ErrEmptyProduct is returned by Product when given no polynomials.
	ErrEmptyProduct = errors.New("product needs at least one polynomial")
)
