package intpoly

import (
	"bytes"
	"strconv"

	"github.com/crate-crypto/go-int-poly/internal/pool"
)

var buffers = pool.New(func() *bytes.Buffer { return new(bytes.Buffer) }, (*bytes.Buffer).Reset)

// String renders the polynomial as "a_n x^n + ... + a_1 x + a_0".
//
// Zero coefficients below the leading term are skipped. A magnitude of one
// is omitted for the leading term; for the following terms it is omitted
// only when the coefficient is exactly +1. For example:
//
//	New(1, 2, 4)      -> "x^2 + 2x + 4"
//	New(-1, 0, -2, 0) -> "-x^3 - 2x"
//	New()             -> "0"
func (p *Polynomial) String() string {
	c := p.raw()
	n := len(c)
	if n == 1 {
		return strconv.FormatInt(c[0], 10)
	}

	buf := buffers.MustGet()
	defer buffers.Put(buf)

	lead := c[0]
	if lead < 0 {
		buf.WriteByte('-')
	}
	if lead != 1 && lead != -1 {
		buf.WriteString(magnitude(lead))
	}
	writeVariable(buf, n-1)

	for i := 1; i < n-1; i++ {
		ci := c[i]
		if ci == 0 {
			continue
		}
		writeSign(buf, ci)
		if ci != 1 {
			buf.WriteString(magnitude(ci))
		}
		writeVariable(buf, n-1-i)
	}

	if last := c[n-1]; last != 0 {
		writeSign(buf, last)
		buf.WriteString(magnitude(last))
	}
	return buf.String()
}

// GoString returns a representation that rebuilds an equal polynomial,
// such as "Polynomial([1, 2, -4])".
func (p *Polynomial) GoString() string {
	buf := buffers.MustGet()
	defer buffers.Put(buf)

	buf.WriteString("Polynomial([")
	for i, c := range p.raw() {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.FormatInt(c, 10))
	}
	buf.WriteString("])")
	return buf.String()
}

// LaTeX renders the polynomial for a LaTeX math environment, e.g.
// "3x^{2} - x + 1". Unit magnitudes are omitted for every term.
func (p *Polynomial) LaTeX() string {
	c := p.raw()
	n := len(c)
	if n == 1 {
		return strconv.FormatInt(c[0], 10)
	}

	buf := buffers.MustGet()
	defer buffers.Put(buf)

	for i, ci := range c {
		degree := n - 1 - i
		if ci == 0 && i > 0 {
			continue
		}
		switch {
		case i == 0 && ci < 0:
			buf.WriteByte('-')
		case i > 0:
			writeSign(buf, ci)
		}
		if degree == 0 || (ci != 1 && ci != -1) {
			buf.WriteString(magnitude(ci))
		}
		if degree == 0 {
			continue
		}
		buf.WriteByte('x')
		if degree != 1 {
			buf.WriteString("^{")
			buf.WriteString(strconv.Itoa(degree))
			buf.WriteByte('}')
		}
	}
	return buf.String()
}

func writeSign(buf *bytes.Buffer, c int64) {
	if c > 0 {
		buf.WriteString(" + ")
	} else {
		buf.WriteString(" - ")
	}
}

func writeVariable(buf *bytes.Buffer, degree int) {
	buf.WriteByte('x')
	if degree != 1 {
		buf.WriteByte('^')
		buf.WriteString(strconv.Itoa(degree))
	}
}

// magnitude formats |c|, including for math.MinInt64.
func magnitude(c int64) string {
	if c < 0 {
		return strconv.FormatUint(uint64(^c)+1, 10)
	}
	return strconv.FormatUint(uint64(c), 10)
}
