package poly

// Integer is the set of coefficient kinds a polynomial can be built from.
// Every kind converts to int64 without loss, so uint and uint64 are excluded.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32
}

// PolynomialCoeff holds coefficients from the highest degree down to the
// constant term. Index 0 is the leading coefficient.
type PolynomialCoeff = []int64

// FromIntegers widens a slice of any integer kind into a fresh PolynomialCoeff.
func FromIntegers[T Integer](values []T) PolynomialCoeff {
	coeffs := make(PolynomialCoeff, len(values))
	for i, v := range values {
		coeffs[i] = int64(v)
	}
	return coeffs
}

// DeleteLeadingZeros returns the suffix of `poly` starting at its first
// nonzero coefficient.
//
// An empty or all-zero input yields the zero polynomial `[0]`.
// The returned slice aliases `poly` when it is not the zero polynomial.
func DeleteLeadingZeros(poly PolynomialCoeff) PolynomialCoeff {
	first := 0
	for first < len(poly) && poly[first] == 0 {
		first++
	}
	if first == len(poly) {
		return PolynomialCoeff{0}
	}
	return poly[first:]
}

// PadWithZeros right-aligns `poly` into a new slice of length `n`,
// filling the higher degrees with zeros.
//
// n == 0 yields `[0]`. When `n` is smaller than the length of `poly` the
// coefficients are returned as they are. The result never aliases `poly`.
func PadWithZeros(poly PolynomialCoeff, n int) PolynomialCoeff {
	if n == 0 {
		return PolynomialCoeff{0}
	}
	if n < len(poly) {
		n = len(poly)
	}
	result := make(PolynomialCoeff, n)
	copy(result[n-len(poly):], poly)
	return result
}

// PolyAdd adds two polynomials of possibly different lengths.
//
// Both operands are aligned on their constant term. The result is not
// normalized; leading terms that cancel stay as zeros.
func PolyAdd(a, b PolynomialCoeff) PolynomialCoeff {
	n := max(len(a), len(b))
	result := PadWithZeros(a, n)
	padded := PadWithZeros(b, n)
	for i := range result {
		result[i] += padded[i]
	}
	return result
}

// PolyScale multiplies every coefficient by `factor`.
func PolyScale(poly PolynomialCoeff, factor int64) PolynomialCoeff {
	result := make(PolynomialCoeff, len(poly))
	for i, c := range poly {
		result[i] = c * factor
	}
	return result
}

// PolyShift raises the degree of `poly` by `k`, appending k zero
// coefficients at the low end. This is multiplication by x^k.
func PolyShift(poly PolynomialCoeff, k int) PolynomialCoeff {
	result := make(PolynomialCoeff, len(poly)+k)
	copy(result, poly)
	return result
}

// PolyEval evaluates a polynomial f(x) at a point `z`; f(z)
func PolyEval(poly PolynomialCoeff, z int64) int64 {
	var result int64
	for _, c := range poly {
		result = result*z + c
	}
	return result
}

// PolyEqual reports whether both slices hold the same coefficients.
// Slices of different lengths are never equal.
func PolyEqual(a, b PolynomialCoeff) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
