// Package qrtables holds the fixed QR code tables and the function-pattern
// template logic: capacities, masks, alignment positions, format/version
// BCH codes, the alphanumeric character set, and the zigzag data-read order.
// Everything here is a pure constant or a pure function of (version, ecc,
// mask) — there is no per-call state to construct.
package qrtables

import "github.com/jalphad/qrdecode/qrerror"

// MinVersion and MaxVersion bound the QR versions this package knows about.
const (
	MinVersion = 1
	MaxVersion = 40
)

// SizeForVersion returns the module width/height of a symbol at version v:
// 21 + 4*(v-1).
func SizeForVersion(v int) int {
	return 17 + 4*v
}

// VersionForSize inverts SizeForVersion, failing with qrerror.InvalidVersion
// if size isn't one of the 40 legal QR sizes.
func VersionForSize(size int) (int, error) {
	if (size-17)%4 != 0 {
		return 0, qrerror.New(qrerror.InvalidVersion, "size %d is not a multiple of 4 modules above 21", size)
	}
	v := (size - 17) / 4
	if v < MinVersion || v > MaxVersion {
		return 0, qrerror.New(qrerror.InvalidVersion, "version %d out of range [%d,%d]", v, MinVersion, MaxVersion)
	}
	return v, nil
}
