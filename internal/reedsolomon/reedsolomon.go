// Package reedsolomon implements the Reed-Solomon codec QR codes use for
// error correction, over the GF(256) field in internal/gf256.
//
// A Codec is parameterized by eccWords only, the way the teacher's
// ErrorCorrector was parameterized by a field: construction is cheap and
// holds no state beyond the parameter, so callers build one per block size
// and reuse it.
package reedsolomon

import (
	"github.com/jalphad/qrdecode/internal/gf256"
	"github.com/jalphad/qrdecode/qrerror"
)

// Codec encodes and decodes Reed-Solomon codewords with a fixed number of
// ECC words.
type Codec struct {
	eccWords int
	divisor  gf256.Poly
}

// NewCodec returns a Codec for the given number of ECC words.
func NewCodec(eccWords int) *Codec {
	return &Codec{eccWords: eccWords, divisor: gf256.DivisorPoly(eccWords)}
}

// Encode returns the eccWords ECC bytes for data: the remainder of
// data*X^eccWords divided by the generator polynomial.
func (c *Codec) Encode(data []byte) []byte {
	shifted := make([]int, len(data)+c.eccWords)
	for i, b := range data {
		shifted[i] = int(b)
	}
	rem := gf256.RemainderPoly(gf256.NewPoly(shifted), c.divisor)
	out := make([]byte, c.eccWords)
	for i := 0; i < c.eccWords; i++ {
		out[i] = byte(rem[i])
	}
	return out
}

// Decode corrects errors in codeword in place (conceptually — it returns a
// corrected copy) and returns the result with the number of corrected
// errors. If the codeword has no errors, it is returned unchanged with a
// count of 0. It fails with qrerror.Decode when the codeword is
// uncorrectable: fewer Chien roots than the error locator's degree, a
// Forney position out of range, or a zero locator or denominator.
func (c *Codec) Decode(codeword []byte) ([]byte, int, error) {
	poly := make([]int, len(codeword))
	for i, b := range codeword {
		poly[i] = int(b)
	}

	syndromeCoefficients := make([]int, c.eccWords)
	noError := true
	for i := 0; i < c.eccWords; i++ {
		val := gf256.EvalPoly(gf256.NewPoly(poly), gf256.Exp(i))
		syndromeCoefficients[c.eccWords-1-i] = val
		if val != 0 {
			noError = false
		}
	}
	if noError {
		out := make([]byte, len(codeword))
		copy(out, codeword)
		return out, 0, nil
	}

	syndrome := gf256.NewPoly(syndromeCoefficients)
	monomial := gf256.MulPolyMonomial(gf256.Poly{1}, c.eccWords, 1)
	sigma, omega, err := gf256.Euclidean(monomial, syndrome, c.eccWords)
	if err != nil {
		return nil, 0, err
	}

	errorLocations, err := chienSearch(sigma, len(codeword))
	if err != nil {
		return nil, 0, err
	}
	if len(errorLocations) != sigma.Degree() {
		return nil, 0, qrerror.New(qrerror.Decode, "Reed-Solomon: found %d error locations but sigma has degree %d", len(errorLocations), sigma.Degree())
	}

	corrected := make([]int, len(poly))
	copy(corrected, poly)
	for k, xk := range errorLocations {
		logXk, logErr := gf256.Log(xk)
		if logErr != nil {
			return nil, 0, qrerror.Wrap(qrerror.Decode, logErr, "Reed-Solomon: error locator is zero")
		}
		pos := len(poly) - 1 - logXk
		if pos < 0 {
			return nil, 0, qrerror.New(qrerror.Decode, "Reed-Solomon: error position %d out of range", pos)
		}
		magnitude, magErr := forneyMagnitude(omega, errorLocations, k)
		if magErr != nil {
			return nil, 0, magErr
		}
		corrected[pos] = gf256.Add(corrected[pos], magnitude)
	}

	out := make([]byte, len(corrected))
	for i, v := range corrected {
		out[i] = byte(v)
	}
	return out, len(errorLocations), nil
}

// chienSearch finds, for i in [1, 255], every i such that sigma(i) == 0,
// returning the corresponding error locators X_k = inv(i).
func chienSearch(sigma gf256.Poly, codewordLen int) ([]int, error) {
	numErrors := sigma.Degree()

	var results []int
	for i := 1; i < 256; i++ {
		if gf256.EvalPoly(sigma, i) == 0 {
			inv, err := gf256.Inv(i)
			if err != nil {
				continue
			}
			results = append(results, inv)
			if len(results) == numErrors {
				break
			}
		}
	}
	return results, nil
}

// forneyMagnitude computes the correction at locators[k]:
//
//	omega(inv(X_k)) * inv(product_{j != k} (1 + X_j*inv(X_k)))
//
// exactly as the extended-Euclid form of Reed-Solomon decoding specifies it.
func forneyMagnitude(omega gf256.Poly, locators []int, k int) (int, error) {
	xk := locators[k]
	xkInv, err := gf256.Inv(xk)
	if err != nil {
		return 0, qrerror.Wrap(qrerror.Decode, err, "Forney: zero error locator")
	}

	errorEvaluator := gf256.EvalPoly(omega, xkInv)

	denominator := 1
	for j, xj := range locators {
		if j == k {
			continue
		}
		denominator = gf256.Mul(denominator, gf256.Add(1, gf256.Mul(xj, xkInv)))
	}
	denomInv, err := gf256.Inv(denominator)
	if err != nil {
		return 0, qrerror.Wrap(qrerror.Decode, err, "Forney: zero denominator")
	}
	return gf256.Mul(errorEvaluator, denomInv), nil
}
