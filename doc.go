// Package intpoly implements single-variable polynomials with integer
// coefficients.
//
// A Polynomial stores its coefficients from the highest degree down to the
// constant term and is always kept in canonical form: there are no leading
// zero coefficients and the zero polynomial is the single coefficient [0].
// Equality compares the canonical coefficients, so polynomials of different
// lengths are never equal.
//
// Arithmetic with integers and with other polynomials returns new values:
//
//	p := intpoly.New(1, 2, 4)           // x^2 + 2x + 4
//	q := intpoly.New(-1, 2, 4)          // -x^2 + 2x + 4
//	p.Add(q)                            // 4x + 8
//	p.Mul(intpoly.Int(3))               // 3x^2 + 6x + 12
//	intpoly.IntSub(1, p)                // -x^2 - 2x - 3
//
// Operands of unknown type can be combined through Apply, FromValue and
// Equal, which report ErrInvalidArgumentType instead of panicking.
package intpoly
