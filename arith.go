package intpoly

import (
	"fmt"

	"github.com/crate-crypto/go-int-poly/internal/poly"
)

// Operand is the right hand side of an arithmetic operation: either an Int
// or a *Polynomial. The interface is sealed.
type Operand interface {
	operand()
}

// Int is an integer operand.
type Int int64

func (Int) operand()         {}
func (*Polynomial) operand() {}

// Add returns p + o.
//
// Adding a polynomial aligns both operands on their constant term and
// normalizes the sum, so the degree drops when leading terms cancel.
// Adding an Int only changes the constant term.
func (p *Polynomial) Add(o Operand) *Polynomial {
	switch o := o.(type) {
	case Int:
		return p.AddInt(int64(o))
	case *Polynomial:
		if o != nil {
			return p.addPoly(o)
		}
	}
	panic(invalidOperand("add", o))
}

// Sub returns p - o, computed as p + (-o).
func (p *Polynomial) Sub(o Operand) *Polynomial {
	switch o := o.(type) {
	case Int:
		return p.SubInt(int64(o))
	case *Polynomial:
		if o != nil {
			return p.addPoly(o.Neg())
		}
	}
	panic(invalidOperand("sub", o))
}

// Mul returns p * o.
func (p *Polynomial) Mul(o Operand) *Polynomial {
	switch o := o.(type) {
	case Int:
		return p.MulInt(int64(o))
	case *Polynomial:
		if o != nil {
			return p.mulPoly(o)
		}
	}
	panic(invalidOperand("mul", o))
}

// AddInt returns a copy of p with `n` added to the constant term.
//
// The result is not normalized again: only the last coefficient changes,
// which can never introduce a leading zero.
func (p *Polynomial) AddInt(n int64) *Polynomial {
	result := p.Clone()
	result.coeffs[len(result.coeffs)-1] += n
	return result
}

// SubInt returns p - n.
func (p *Polynomial) SubInt(n int64) *Polynomial {
	return p.AddInt(-n)
}

// MulInt returns p with every coefficient multiplied by `n`.
// Multiplying by zero yields the zero polynomial.
func (p *Polynomial) MulInt(n int64) *Polynomial {
	return newOwned(poly.PolyScale(p.raw(), n))
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	return IntMul(-1, p)
}

// IntAdd returns n + p.
func IntAdd(n int64, p *Polynomial) *Polynomial {
	return p.AddInt(n)
}

// IntSub returns n - p, computed as (-p) + n.
func IntSub(n int64, p *Polynomial) *Polynomial {
	return p.Neg().AddInt(n)
}

// IntMul returns n * p.
func IntMul(n int64, p *Polynomial) *Polynomial {
	return p.MulInt(n)
}

func (p *Polynomial) addPoly(other *Polynomial) *Polynomial {
	return newOwned(poly.PolyAdd(p.raw(), other.raw()))
}

// mulPoly sums the partial products other * a[i] * x^(n-1-i), where a[i]
// is the coefficient of p at index i. Each partial product is normalized
// before it is accumulated.
func (p *Polynomial) mulPoly(other *Polynomial) *Polynomial {
	a := p.raw()
	n := len(a)

	var product *Polynomial
	for i, ai := range a {
		scaled := other.MulInt(ai)
		partial := newOwned(poly.PolyShift(scaled.coeffs, n-i-1))
		if product == nil {
			product = partial
			continue
		}
		product = product.addPoly(partial)
	}
	return product
}

func invalidOperand(op string, o Operand) error {
	return fmt.Errorf("%w: %s expected Int or Polynomial, got %T", ErrInvalidArgumentType, op, o)
}
