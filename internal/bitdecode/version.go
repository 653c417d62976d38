package bitdecode

import (
	"github.com/jalphad/qrdecode/internal/bitmap"
	"github.com/jalphad/qrdecode/internal/qrtables"
	"github.com/jalphad/qrdecode/qrerror"
)

// versionBitPositions lists the (x, y) cell for each of the 18 version
// bits, for each of the two redundant copies a v>=7 symbol carries.
func versionBitPositions(size int) (copy1, copy2 [18][2]int) {
	for i := 0; i < 18; i++ {
		a := size - 11 + i%3
		b := i / 3
		copy1[i] = [2]int{a, b}
		copy2[i] = [2]int{b, a}
	}
	return copy1, copy2
}

// resolveVersion recovers the true version for a symbol of the given
// size: versions below 7 carry no explicit version field, so the size
// alone determines it; otherwise the two version-info copies are read and
// BCH-corrected, and the result must agree with size.
func resolveVersion(bm *bitmap.Bitmap, size int) (int, error) {
	sizeVersion, err := qrtables.VersionForSize(size)
	if err != nil {
		return 0, err
	}
	if sizeVersion < 7 {
		return sizeVersion, nil
	}

	c1, c2 := versionBitPositions(size)
	bits1 := readBits(bm, c1[:])
	version, err := qrtables.DecodeVersion(bits1)
	if err != nil {
		bits2 := readBits(bm, c2[:])
		version, err = qrtables.DecodeVersion(bits2)
		if err != nil {
			return 0, err
		}
	}
	if qrtables.SizeForVersion(version) != size {
		return 0, qrerror.New(qrerror.InvalidVersion, "recovered version %d does not encode back to size %d", version, size)
	}
	return version, nil
}
