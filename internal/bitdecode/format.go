// Package bitdecode reads a rectified symbol Bitmap: recovering format and
// version, regenerating the function-pattern template, walking the zigzag
// data order, de-interleaving and Reed-Solomon correcting the codewords,
// and parsing the resulting byte stream into text segments.
package bitdecode

import (
	"github.com/jalphad/qrdecode/internal/bitmap"
	"github.com/jalphad/qrdecode/internal/qrtables"
)

// formatBitPositions lists the (x, y) cell for each of the 15 format bits,
// for each of the two redundant copies a symbol carries.
func formatBitPositions(size int) (copy1, copy2 [15][2]int) {
	for i := 0; i <= 5; i++ {
		copy1[i] = [2]int{8, i}
	}
	copy1[6] = [2]int{8, 7}
	copy1[7] = [2]int{8, 8}
	copy1[8] = [2]int{7, 8}
	for i := 9; i < 15; i++ {
		copy1[i] = [2]int{14 - i, 8}
	}

	for i := 0; i < 8; i++ {
		copy2[i] = [2]int{size - 1 - i, 8}
	}
	for i := 8; i < 15; i++ {
		copy2[i] = [2]int{8, size - 15 + i}
	}
	return copy1, copy2
}

func readBits(bm *bitmap.Bitmap, positions [][2]int) int {
	bits := 0
	for i, p := range positions {
		if bm.IsOn(p[0], p[1]) {
			bits |= 1 << i
		}
	}
	return bits
}

// readFormat recovers (ecc, mask) from the two redundant format copies,
// preferring whichever copy decodes successfully.
func readFormat(bm *bitmap.Bitmap, size int) (qrtables.ECCLevel, int, error) {
	c1, c2 := formatBitPositions(size)
	bits1 := readBits(bm, c1[:])
	if ecc, mask, err := qrtables.DecodeFormat(bits1); err == nil {
		return ecc, mask, nil
	}
	bits2 := readBits(bm, c2[:])
	return qrtables.DecodeFormat(bits2)
}
