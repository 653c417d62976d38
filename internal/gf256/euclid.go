package gf256

import "github.com/jalphad/qrdecode/qrerror"

// Euclidean runs the extended Euclidean algorithm on (a, b) until the
// remainder's degree satisfies 2*deg(r) < R, returning (sigma, omega) with
// sigma normalized so that sigma(0) = 1. This is the key step of
// Reed-Solomon decoding: a is the monomial X^R, b is the syndrome
// polynomial, and R is the number of ECC words.
//
// It fails with qrerror.Decode when an intermediate leading coefficient is
// zero (division would be undefined) or when the resulting sigma(0) is 0
// (the codeword is uncorrectable).
func Euclidean(a, b Poly, R int) (sigma, omega Poly, err error) {
	// Swap so that deg(a) >= deg(b), the usual Euclidean precondition.
	if a.Degree() < b.Degree() {
		a, b = b, a
	}

	rLast, r := a, b
	tLast, t := Poly{0}, Poly{1}

	for 2*r.Degree() >= R {
		rLastLast, tLastLast := rLast, tLast
		rLast, tLast = r, t

		if rLast.IsZero() {
			return nil, nil, qrerror.New(qrerror.Decode, "Euclidean: r_{i-1} is zero, codeword is uncorrectable")
		}
		r = rLastLast
		q := Poly{0}

		denomLeadTerm := rLast[0]
		dltInverse, invErr := Inv(denomLeadTerm)
		if invErr != nil {
			return nil, nil, qrerror.Wrap(qrerror.Decode, invErr, "Euclidean: zero leading coefficient")
		}

		for r.Degree() >= rLast.Degree() && !r.IsZero() {
			degreeDiff := r.Degree() - rLast.Degree()
			scale := Mul(r[0], dltInverse)
			q = AddPoly(q, MulPolyMonomial(Poly{1}, degreeDiff, scale))
			r = AddPoly(r, MulPolyMonomial(rLast, degreeDiff, scale))
		}

		t = AddPoly(MulPoly(q, tLast), tLastLast)

		if r.Degree() >= rLast.Degree() {
			return nil, nil, qrerror.New(qrerror.Decode, "Euclidean: division algorithm failed to reduce degree")
		}
	}

	sigmaTildeAtZero := t[len(t)-1]
	if sigmaTildeAtZero == 0 {
		return nil, nil, qrerror.New(qrerror.Decode, "Euclidean: sigma(0) is zero")
	}

	inverse, invErr := Inv(sigmaTildeAtZero)
	if invErr != nil {
		return nil, nil, qrerror.Wrap(qrerror.Decode, invErr, "Euclidean: sigma(0) has no inverse")
	}
	sigma = MulPolyScalar(t, inverse)
	omega = MulPolyScalar(r, inverse)
	return sigma, omega, nil
}
