package intpoly

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/crate-crypto/go-int-poly/internal/utils"
)

// ToField reduces the coefficients into the scalar field of bls12-381.
//
// The returned slice is in monomial form with the constant term first,
// which is the order gnark and go-eth-kzg use for coefficient vectors.
// Negative coefficients map to their additive inverse.
func (p *Polynomial) ToField() []fr.Element {
	c := p.raw()
	elements := make([]fr.Element, len(c))
	for i, coeff := range c {
		elements[i].SetInt64(coeff)
	}
	utils.Reverse(elements)
	return elements
}

// EvalField evaluates the polynomial at `z` modulo the bls12-381 scalar field
// order; f(z)
func (p *Polynomial) EvalField(z fr.Element) fr.Element {
	poly := p.ToField()
	result := fr.NewElement(0)

	for i := len(poly) - 1; i >= 0; i-- {
		tmp := fr.Element{}
		tmp.Mul(&result, &z)
		result.Add(&tmp, &poly[i])
	}

	return result
}
