package intpoly

import (
	"fmt"
	"math"
	"reflect"
)

// Op names a binary polynomial operation.
type Op string

const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
)

// Apply computes `lhs op rhs` for dynamically typed operands.
//
// Each operand is either an integer of any Go integer kind or a polynomial
// (*Polynomial or Polynomial). At least one operand must be a polynomial.
// An integer on the left is handled the same way as on the right:
// n + p == p + n, n * p == p * n, and n - p == (-p) + n.
func Apply(op Op, lhs, rhs any) (*Polynomial, error) {
	switch op {
	case OpAdd, OpSub, OpMul:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}

	l, err := toOperand(op, lhs)
	if err != nil {
		return nil, err
	}
	r, err := toOperand(op, rhs)
	if err != nil {
		return nil, err
	}

	p, lhsIsPoly := l.(*Polynomial)
	if !lhsIsPoly {
		n := int64(l.(Int))
		q, ok := r.(*Polynomial)
		if !ok {
			return nil, fmt.Errorf("%w: %s expected at least one Polynomial, got %T and %T", ErrInvalidArgumentType, op, lhs, rhs)
		}
		switch op {
		case OpAdd:
			return IntAdd(n, q), nil
		case OpSub:
			return IntSub(n, q), nil
		default:
			return IntMul(n, q), nil
		}
	}

	switch op {
	case OpAdd:
		return p.Add(r), nil
	case OpSub:
		return p.Sub(r), nil
	default:
		return p.Mul(r), nil
	}
}

func toOperand(op Op, v any) (Operand, error) {
	switch v := v.(type) {
	case Int:
		return v, nil
	case *Polynomial:
		if v != nil {
			return v, nil
		}
	case Polynomial:
		return &v, nil
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return Int(rv.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if u := rv.Uint(); u <= math.MaxInt64 {
				return Int(int64(u)), nil
			}
			return nil, fmt.Errorf("%w: %s operand %d overflows int64", ErrInvalidArgumentType, op, rv.Uint())
		}
	}
	return nil, fmt.Errorf("%w: %s expected int or Polynomial, got %T", ErrInvalidArgumentType, op, v)
}
