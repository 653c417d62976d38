// Package gf256 implements arithmetic over GF(2^8) with the QR code
// primitive polynomial 0x11d (x^8 + x^4 + x^3 + x^2 + 1).
//
// The log/exp tables are built once, the way the teacher's field types
// build their lookup tables at construction time, except here the field is
// fixed and small enough to precompute with a package-level init instead of
// a constructor: there is exactly one GF(256) a QR decoder ever needs.
package gf256

import "github.com/jalphad/qrdecode/qrerror"

// primitivePoly is the QR code's primitive polynomial, 0x11d.
const primitivePoly = 0x11d

var (
	expTable [256]int // exp[i] = alpha^i
	logTable [256]int // log[alpha^i] = i, logTable[0] is unused
)

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		expTable[i] = x
		logTable[x] = i
		x <<= 1
		if x&0x100 != 0 {
			x ^= primitivePoly
		}
	}
	// exp is periodic with period 255; fill the duplicate slot so index
	// 255 (alpha^255 = 1) is valid without a modulo first.
	expTable[255] = expTable[0]
}

// Add returns a XOR b, which is both addition and subtraction in GF(2^8).
func Add(a, b int) int {
	return a ^ b
}

// Mul returns a*b in GF(2^8).
func Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[(logTable[a]+logTable[b])%255]
}

// Pow returns a^e in GF(2^8).
func Pow(a, e int) int {
	if a == 0 {
		if e == 0 {
			return 1
		}
		return 0
	}
	exp := (logTable[a] * e) % 255
	if exp < 0 {
		exp += 255
	}
	return expTable[exp]
}

// Inv returns the multiplicative inverse of a. It fails with
// qrerror.InvalidArgument when a is 0.
func Inv(a int) (int, error) {
	if a == 0 {
		return 0, qrerror.New(qrerror.InvalidArgument, "GF(256): inverse of 0 is undefined")
	}
	return expTable[255-logTable[a]], nil
}

// Log returns the discrete log of a (base alpha=2). It fails with
// qrerror.InvalidArgument when a is 0.
func Log(a int) (int, error) {
	if a == 0 {
		return 0, qrerror.New(qrerror.InvalidArgument, "GF(256): log of 0 is undefined")
	}
	return logTable[a], nil
}

// Exp returns alpha^i for i in [0, 255). Negative or out-of-range i is
// reduced modulo 255.
func Exp(i int) int {
	i %= 255
	if i < 0 {
		i += 255
	}
	return expTable[i]
}
