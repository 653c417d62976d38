package qrcode

// Test-only golden vector for scenario S1 ("0", LOW, version 1), built
// without calling qrtables.FunctionGrid, qrtables.ZigzagWalk, or
// qrtables.MaskInvert: the function-module layout, zigzag bit-placement
// order, and mask-0 formula are each reimplemented independently here,
// directly from the ISO 18004 module-placement rules, so a regression in
// any of those three production tables would actually break this test
// instead of silently reproducing itself in both the fixture and the
// thing under test.

import (
	"testing"

	"github.com/jalphad/qrdecode/internal/bitmap"
	"github.com/jalphad/qrdecode/internal/qrtables"
	"github.com/jalphad/qrdecode/internal/reedsolomon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// independentIsFunction reports whether (x, y) in a version-1 (21x21)
// symbol is a function module: a finder pattern plus its separator at
// each of the three non-bottom-right corners, the two timing strips, the
// format-information reservation around the top-left finder and
// mirrored near the top-right/bottom-left finders, and the fixed dark
// module. Version 1 has no alignment pattern.
func independentIsFunction(x, y, size int) bool {
	if x < 8 && y < 8 {
		return true // top-left finder + separator
	}
	if x >= size-8 && y < 8 {
		return true // top-right finder + separator
	}
	if x < 8 && y >= size-8 {
		return true // bottom-left finder + separator
	}
	if x == 6 || y == 6 {
		return true // timing strips
	}
	if x == 8 && y <= 8 {
		return true // format copy 1, vertical run
	}
	if y == 8 && x <= 8 {
		return true // format copy 1, horizontal run
	}
	if y == 8 && x >= size-8 {
		return true // format copy 2, top-right
	}
	if x == 8 && y >= size-7 {
		return true // format copy 2, bottom-left
	}
	if x == 8 && y == size-8 {
		return true // dark module
	}
	return false
}

// independentZigzagPositions walks a version-1 symbol's data area in
// codeword-bit order: two columns at a time from the right edge,
// alternating bottom-to-top and top-to-bottom sweeps, skipping the
// vertical timing column entirely. This is coded independently of
// qrtables.ZigzagWalk — a different loop shape over the same ISO 18004
// placement rule — so it does not share a transcription bug with it.
func independentZigzagPositions(size int, isFunction func(x, y int) bool) [][2]int {
	var positions [][2]int
	x := size - 1
	goingUp := true
	for x > 0 {
		if x == 6 {
			x--
			continue
		}
		if goingUp {
			for y := size - 1; y >= 0; y-- {
				for _, cx := range [2]int{x, x - 1} {
					if !isFunction(cx, y) {
						positions = append(positions, [2]int{cx, y})
					}
				}
			}
		} else {
			for y := 0; y < size; y++ {
				for _, cx := range [2]int{x, x - 1} {
					if !isFunction(cx, y) {
						positions = append(positions, [2]int{cx, y})
					}
				}
			}
		}
		x -= 2
		goingUp = !goingUp
	}
	return positions
}

// buildGoldenS1 renders scenario S1 ("0", LOW, version 1) as an ON/OFF
// module grid, placing every bit through independentIsFunction and
// independentZigzagPositions instead of the production template/zigzag
// tables, and applying the mask-0 formula directly rather than through
// qrtables.MaskInvert.
func buildGoldenS1(t *testing.T) *bitmap.Bitmap {
	t.Helper()
	const size = 21
	const eccWords = 7 // version 1, ECC Low: single block, 19 data + 7 ecc

	layout, err := qrtables.Layout(1, qrtables.Low)
	require.NoError(t, err)
	require.Equal(t, 1, layout.NumBlocks)
	require.Equal(t, eccWords, layout.EccWords)

	bits := buildNumericBits("0")
	data := buildDataBytes(0b0001, 10, 1, bits, layout.ShortBlockLen)
	require.Len(t, data, layout.ShortBlockLen)

	codec := reedsolomon.NewCodec(eccWords)
	codeword := append(append([]byte(nil), data...), codec.Encode(data)...)

	var codewordBits []bool
	for _, b := range codeword {
		for i := 7; i >= 0; i-- {
			codewordBits = append(codewordBits, (b>>uint(i))&1 == 1)
		}
	}

	bm := bitmap.New(size, size)
	drawFunctionPatternValues(bm, size, 1)
	drawFormatBits(bm, size, qrtables.EncodeFormat(qrtables.Low, 0))

	isFunction := func(x, y int) bool { return independentIsFunction(x, y, size) }
	positions := independentZigzagPositions(size, isFunction)
	require.Len(t, positions, len(codewordBits), "independent zigzag order must visit exactly one cell per codeword bit")

	for i, p := range positions {
		bit := codewordBits[i]
		if (p[0]+p[1])%2 == 0 { // mask 0, computed directly rather than via qrtables.MaskInvert
			bit = !bit
		}
		v := bitmap.Off
		if bit {
			v = bitmap.On
		}
		bm.Set(p[0], p[1], v)
	}

	return bm.Border(4, bitmap.Off)
}

func TestDecodeGoldenS1IndependentOfTemplateZigzagMask(t *testing.T) {
	bm := buildGoldenS1(t)
	width, height, pixels := renderImage(bm, modulePx)

	got, err := Decode(width, height, pixels)
	require.NoError(t, err)
	assert.Equal(t, "0", got)
}
