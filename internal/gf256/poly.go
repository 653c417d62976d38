package gf256

// Poly is a GF(256) polynomial, coefficient-first: Poly[0] is the
// coefficient of the highest-degree term. This matches how QR codewords
// are laid out (most significant codeword first) so encoding and decoding
// never need to reverse a slice.
type Poly []int

// NewPoly strips leading zero coefficients. The zero polynomial is
// represented as Poly{0}, never as an empty slice.
func NewPoly(coeffs []int) Poly {
	i := 0
	for i < len(coeffs)-1 && coeffs[i] == 0 {
		i++
	}
	out := make(Poly, len(coeffs)-i)
	copy(out, coeffs[i:])
	return out
}

// Degree returns the degree of p.
func (p Poly) Degree() int {
	return len(p) - 1
}

// Coefficient returns the coefficient of the x^degree term.
func (p Poly) Coefficient(degree int) int {
	return p[p.Degree()-degree]
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p) == 1 && p[0] == 0
}

// AddPoly returns p+q (which is also p-q, since GF(2^8) has characteristic 2).
func AddPoly(p, q Poly) Poly {
	if len(p) < len(q) {
		p, q = q, p
	}
	diff := len(p) - len(q)
	out := make([]int, len(p))
	copy(out, p)
	for i, c := range q {
		out[diff+i] = Add(out[diff+i], c)
	}
	return NewPoly(out)
}

// MulPoly returns p*q.
func MulPoly(p, q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{0}
	}
	out := make([]int, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			out[i+j] = Add(out[i+j], Mul(a, b))
		}
	}
	return NewPoly(out)
}

// MulPolyScalar returns p scaled by the scalar s.
func MulPolyScalar(p Poly, s int) Poly {
	if s == 0 {
		return Poly{0}
	}
	out := make([]int, len(p))
	for i, c := range p {
		out[i] = Mul(c, s)
	}
	return NewPoly(out)
}

// MulPolyMonomial returns p * (c * x^degree).
func MulPolyMonomial(p Poly, degree, c int) Poly {
	if c == 0 {
		return Poly{0}
	}
	out := make([]int, len(p)+degree)
	for i, a := range p {
		out[i] = Mul(a, c)
	}
	return NewPoly(out)
}

// RemainderPoly returns data mod div. The result always has length
// len(div)-1, zero-padded on the left if necessary.
func RemainderPoly(data, div Poly) Poly {
	if div.IsZero() {
		return Poly{0}
	}
	rem := make([]int, len(data))
	copy(rem, data)
	for len(rem) >= len(div) && !allZero(rem) {
		factor := rem[0]
		if factor != 0 {
			lead, _ := Inv(div[0])
			scale := Mul(factor, lead)
			for i, c := range div {
				rem[i] = Add(rem[i], Mul(c, scale))
			}
		}
		rem = rem[1:]
	}
	want := len(div) - 1
	if len(rem) < want {
		padded := make([]int, want)
		copy(padded[want-len(rem):], rem)
		rem = padded
	} else if len(rem) > want {
		rem = rem[len(rem)-want:]
	}
	return Poly(rem)
}

func allZero(p []int) bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// EvalPoly evaluates p(x) via Horner's method.
func EvalPoly(p Poly, x int) int {
	result := p[0]
	for i := 1; i < len(p); i++ {
		result = Add(Mul(result, x), p[i])
	}
	return result
}

// DivisorPoly returns the generator polynomial of degree d:
// product_{i=0}^{d-1} (X + alpha^i).
func DivisorPoly(d int) Poly {
	g := Poly{1}
	for i := 0; i < d; i++ {
		g = MulPoly(g, Poly{1, Exp(i)})
	}
	return g
}
