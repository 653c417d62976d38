package qrtables

import "github.com/jalphad/qrdecode/qrerror"

// alphanumericCharset is the 45-character set ISO 18004 Table 5 defines
// for alphanumeric mode, in value order (index == encoded value).
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// AlphanumericValue returns the encoded value of an alphanumeric
// character, failing with qrerror.Decode if c isn't in the set.
func AlphanumericValue(c byte) (int, error) {
	i := indexOf(alphanumericCharset, c)
	if i < 0 {
		return 0, qrerror.New(qrerror.Decode, "byte %q is not a legal alphanumeric-mode character", c)
	}
	return i, nil
}

// AlphanumericChar is the inverse of AlphanumericValue.
func AlphanumericChar(v int) (byte, error) {
	if v < 0 || v >= len(alphanumericCharset) {
		return 0, qrerror.New(qrerror.Decode, "alphanumeric value %d out of range [0,%d)", v, len(alphanumericCharset))
	}
	return alphanumericCharset[v], nil
}

func indexOf(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
