package bitdecode

import (
	"github.com/jalphad/qrdecode/internal/bitmap"
	"github.com/jalphad/qrdecode/internal/qrtables"
	"github.com/jalphad/qrdecode/qrerror"
)

// readCodewords regenerates the function-pattern template for (version,
// mask), walks the data cells in zigzag order applying the mask, and
// packs the resulting bits into the version's total codeword count of
// bytes; remainder bits after the last codeword are dropped. It fails with
// qrerror.Decode if the walk yields fewer bits than those codewords need.
func readCodewords(bm *bitmap.Bitmap, version, mask int) ([]byte, error) {
	grid := qrtables.FunctionGrid(version)
	isFunction := func(x, y int) bool { return grid.IsOn(x, y) }

	var bits []bool
	qrtables.ZigzagWalk(version, isFunction, func(x, y int) {
		on := bm.IsOn(x, y)
		if qrtables.MaskInvert(mask, x, y) {
			on = !on
		}
		bits = append(bits, on)
	})

	want := qrtables.TotalCodewords(version) * 8
	if len(bits) < want {
		return nil, qrerror.New(qrerror.Decode, "zigzag read produced %d bits, need at least %d", len(bits), want)
	}

	total := qrtables.TotalCodewords(version)
	out := make([]byte, total)
	for i := 0; i < total; i++ {
		var b byte
		for j := 0; j < 8; j++ {
			b <<= 1
			if bits[i*8+j] {
				b |= 1
			}
		}
		out[i] = b
	}
	return out, nil
}
