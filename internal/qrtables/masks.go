package qrtables

import "github.com/jalphad/qrdecode/qrerror"

// MaskInvert reports whether mask pattern m inverts the module at (x, y).
// The eight formulae are ISO 18004's, applied only to non-function
// modules by the caller — this function doesn't know about function
// patterns at all.
func MaskInvert(m, x, y int) bool {
	switch m {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return (x*y)%2+(x*y)%3 == 0
	case 6:
		return ((x*y)%2+(x*y)%3)%2 == 0
	case 7:
		return ((x+y)%2+(x*y)%3)%2 == 0
	default:
		return false
	}
}

// ValidMask reports whether m is one of the eight legal mask patterns.
func ValidMask(m int) error {
	if m < 0 || m > 7 {
		return qrerror.New(qrerror.InvalidFormat, "mask pattern %d out of range [0,7]", m)
	}
	return nil
}
