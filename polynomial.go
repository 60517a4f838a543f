package intpoly

import (
	"fmt"
	"math"
	"reflect"

	"github.com/crate-crypto/go-int-poly/internal/poly"
	"github.com/crate-crypto/go-int-poly/internal/utils"
)

// Integer is the set of coefficient kinds a Polynomial can be built from.
type Integer = poly.Integer

// Polynomial is a single-variable polynomial with int64 coefficients.
//
// Coefficients are stored from the highest degree down to the constant
// term, so index 0 holds the leading coefficient. Every constructor
// normalizes the coefficients: leading zeros are removed and the zero
// polynomial is the single coefficient [0].
//
// Arithmetic never modifies its operands. SetCoeff modifies the receiver
// in place and is not synchronized.
//
// The zero value is the zero polynomial.
type Polynomial struct {
	coeffs poly.PolynomialCoeff
}

// New creates a polynomial from coefficients given highest degree first.
//
// New(1, 2, 4) is x^2 + 2x + 4. New() is the zero polynomial.
func New(coeffs ...int64) *Polynomial {
	return FromSlice(coeffs)
}

// FromSlice creates a polynomial from a slice of any integer kind that
// fits in an int64. The slice is copied. Use arr[:] to build from an array.
// Slices of uint or uint64 go through FromValue, which range checks them.
func FromSlice[T Integer](coeffs []T) *Polynomial {
	return newOwned(poly.FromIntegers(coeffs))
}

// FromPolynomial returns an independent copy of `other`.
func FromPolynomial(other *Polynomial) *Polynomial {
	return other.Clone()
}

// FromValue creates a polynomial from a dynamically typed source.
//
// Accepted sources are slices or arrays of any integer kind, *Polynomial
// and Polynomial. Anything else, including unsigned values above
// math.MaxInt64, returns an error wrapping ErrInvalidArgumentType.
func FromValue(src any) (*Polynomial, error) {
	switch src := src.(type) {
	case []int64:
		return FromSlice(src), nil
	case []int:
		return FromSlice(src), nil
	case *Polynomial:
		if src == nil {
			return nil, fmt.Errorf("%w: expected integer sequence or Polynomial, got nil %T", ErrInvalidArgumentType, src)
		}
		return src.Clone(), nil
	case Polynomial:
		return src.Clone(), nil
	}

	coeffs, err := integerSequence(src)
	if err != nil {
		return nil, err
	}
	return newOwned(coeffs), nil
}

// DeleteFirstZeros strips the leading zero coefficients of `coeffs`.
// An empty or all-zero input yields [0]. The result is a copy.
func DeleteFirstZeros(coeffs []int64) []int64 {
	return utils.CloneSlice(poly.DeleteLeadingZeros(coeffs))
}

// PaddingByZeros right-aligns `coeffs` into a new slice of length `n`,
// filling the higher degrees with zeros. n == 0 yields [0].
// A target shorter than coeffs returns a copy of coeffs.
func PaddingByZeros(coeffs []int64, n int) []int64 {
	return poly.PadWithZeros(coeffs, n)
}

// newOwned takes ownership of `coeffs` without copying.
func newOwned(coeffs poly.PolynomialCoeff) *Polynomial {
	return &Polynomial{coeffs: poly.DeleteLeadingZeros(coeffs)}
}

// integerSequence widens a slice or array of an integer kind through
// reflection. Named element types are accepted.
func integerSequence(src any) (poly.PolynomialCoeff, error) {
	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: expected integer sequence or Polynomial, got %T", ErrInvalidArgumentType, src)
	}

	coeffs := make(poly.PolynomialCoeff, rv.Len())
	switch rv.Type().Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		for i := range coeffs {
			coeffs[i] = rv.Index(i).Int()
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		for i := range coeffs {
			u := rv.Index(i).Uint()
			if u > math.MaxInt64 {
				return nil, fmt.Errorf("%w: coefficient %d of %T overflows int64", ErrInvalidArgumentType, i, src)
			}
			coeffs[i] = int64(u)
		}
	default:
		return nil, fmt.Errorf("%w: expected integer sequence or Polynomial, got %T", ErrInvalidArgumentType, src)
	}
	return coeffs, nil
}

// raw returns the stored coefficients, treating the zero value as [0].
func (p *Polynomial) raw() poly.PolynomialCoeff {
	if len(p.coeffs) == 0 {
		return poly.PolynomialCoeff{0}
	}
	return p.coeffs
}

// Clone returns a deep copy of the polynomial.
//
// The copy is normalized, so a polynomial whose leading coefficient was set
// to zero through SetCoeff is canonical again after cloning.
func (p *Polynomial) Clone() *Polynomial {
	return newOwned(utils.CloneSlice(p.raw()))
}

// Len returns the number of stored coefficients.
func (p *Polynomial) Len() int {
	return len(p.raw())
}

// Degree returns Len() - 1. The zero polynomial has degree 0.
func (p *Polynomial) Degree() int {
	return p.Len() - 1
}

// IsZero reports whether the polynomial is [0].
func (p *Polynomial) IsZero() bool {
	c := p.raw()
	return len(c) == 1 && c[0] == 0
}

// Coefficients returns a copy of the coefficients, highest degree first.
func (p *Polynomial) Coefficients() []int64 {
	return utils.CloneSlice(p.raw())
}

// Coeff returns the coefficient stored at index `i`.
// Negative indices count from the end, so Coeff(-1) is the constant term.
func (p *Polynomial) Coeff(i int) int64 {
	c := p.raw()
	return c[p.index(i, len(c))]
}

// SetCoeff overwrites the coefficient stored at index `i` in place.
// Negative indices count from the end. The result is not normalized.
func (p *Polynomial) SetCoeff(i int, v int64) {
	if len(p.coeffs) == 0 {
		p.coeffs = poly.PolynomialCoeff{0}
	}
	p.coeffs[p.index(i, len(p.coeffs))] = v
}

func (p *Polynomial) index(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		panic(fmt.Sprintf("intpoly: coefficient index out of range [%d] with length %d", i, n))
	}
	return i
}

// Equal reports whether both polynomials store the same coefficients.
//
// Polynomials of different lengths are never equal.
func (p *Polynomial) Equal(other *Polynomial) bool {
	return poly.PolyEqual(p.raw(), other.raw())
}

// Equal compares two dynamically typed values as polynomials.
// Both must be a *Polynomial or Polynomial, otherwise an error wrapping
// ErrInvalidArgumentType is returned.
func Equal(a, b any) (bool, error) {
	pa, err := polynomialOperand(a)
	if err != nil {
		return false, err
	}
	pb, err := polynomialOperand(b)
	if err != nil {
		return false, err
	}
	return pa.Equal(pb), nil
}

func polynomialOperand(v any) (*Polynomial, error) {
	switch v := v.(type) {
	case *Polynomial:
		if v != nil {
			return v, nil
		}
	case Polynomial:
		return &v, nil
	}
	return nil, fmt.Errorf("%w: expected Polynomial, got %T", ErrInvalidArgumentType, v)
}

// Eval evaluates the polynomial at `x` using Horner's method.
// Arithmetic wraps on int64 overflow.
func (p *Polynomial) Eval(x int64) int64 {
	return poly.PolyEval(p.raw(), x)
}
