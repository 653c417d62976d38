package qrcode

// Test-only QR symbol builder: encodes a payload into a real module grid
// at any version, using the same tables (internal/qrtables), Reed-Solomon
// codec (internal/reedsolomon), interleaving (internal/interleave) and
// bitmap (internal/bitmap) the decoder itself uses, then renders it to a
// grayscale pixel buffer the way spec.md's end-to-end scenarios describe
// (10px/module, black=0, white=255). This gives most golden-vector tests
// an independently constructed symbol to decode, without hand-
// transcribing a published module grid bit by bit; golden_literal_test.go
// covers the one scenario that needs independence from this file's own
// template/zigzag/mask logic instead.

import (
	"github.com/jalphad/qrdecode/internal/bitmap"
	"github.com/jalphad/qrdecode/internal/interleave"
	"github.com/jalphad/qrdecode/internal/qrtables"
	"github.com/jalphad/qrdecode/internal/reedsolomon"
	"github.com/jalphad/qrdecode/qrerror"
)

const testVersion = 1
const testMask = 0

func buildNumericBits(payload string) []bool {
	var bits []bool
	appendBits := func(v, n int) {
		for i := n - 1; i >= 0; i-- {
			bits = append(bits, (v>>uint(i))&1 == 1)
		}
	}
	i := 0
	for i+3 <= len(payload) {
		v := atoi(payload[i : i+3])
		appendBits(v, 10)
		i += 3
	}
	remaining := len(payload) - i
	if remaining == 2 {
		appendBits(atoi(payload[i:i+2]), 7)
	} else if remaining == 1 {
		appendBits(atoi(payload[i:i+1]), 4)
	}
	return bits
}

func buildAlphanumericBits(payload string) ([]bool, error) {
	var bits []bool
	appendBits := func(v, n int) {
		for i := n - 1; i >= 0; i-- {
			bits = append(bits, (v>>uint(i))&1 == 1)
		}
	}
	i := 0
	for i+2 <= len(payload) {
		hi, err := qrtables.AlphanumericValue(payload[i])
		if err != nil {
			return nil, err
		}
		lo, err := qrtables.AlphanumericValue(payload[i+1])
		if err != nil {
			return nil, err
		}
		appendBits(hi*45+lo, 11)
		i += 2
	}
	if i < len(payload) {
		v, err := qrtables.AlphanumericValue(payload[i])
		if err != nil {
			return nil, err
		}
		appendBits(v, 6)
	}
	return bits, nil
}

func atoi(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		v = v*10 + int(s[i]-'0')
	}
	return v
}

// buildDataBytes packs a mode indicator, character count, and payload bits
// into a data-codeword stream totalDataBytes long, padding per ISO 18004: a
// terminator (up to 4 zero bits), zero-padding to a byte boundary, then
// alternating 0xEC/0x11 pad bytes until the whole symbol's data capacity
// (summed across every Reed-Solomon block) is full.
func buildDataBytes(mode int, countBits int, count int, payloadBits []bool, totalDataBytes int) []byte {
	var bits []bool
	appendBits := func(v, n int) {
		for i := n - 1; i >= 0; i-- {
			bits = append(bits, (v>>uint(i))&1 == 1)
		}
	}
	appendBits(mode, 4)
	appendBits(count, countBits)
	bits = append(bits, payloadBits...)

	dataBitsCap := totalDataBytes * 8
	for i := 0; i < 4 && len(bits) < dataBitsCap; i++ {
		bits = append(bits, false)
	}
	for len(bits)%8 != 0 {
		bits = append(bits, false)
	}

	out := make([]byte, 0, totalDataBytes)
	for i := 0; i < len(bits); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			b <<= 1
			if bits[i+j] {
				b |= 1
			}
		}
		out = append(out, b)
	}

	padToggle := true
	for len(out) < totalDataBytes {
		if padToggle {
			out = append(out, 0xEC)
		} else {
			out = append(out, 0x11)
		}
		padToggle = !padToggle
	}
	return out
}

// drawFunctionPatternValues draws the actual light/dark pixel values of
// every function module: finder patterns with separators, timing
// patterns, the dark module, and — for version >= 2 — the real alignment
// patterns AlignmentPositions names (skipping the three corners that
// coincide with a finder pattern, same as qrtables.FunctionGrid does when
// marking them as function cells).
func drawFunctionPatternValues(bm *bitmap.Bitmap, size, version int) {
	drawFinder := func(cx, cy int) {
		for dy := -4; dy <= 4; dy++ {
			for dx := -4; dx <= 4; dx++ {
				x, y := cx+dx, cy+dy
				if x < 0 || x >= size || y < 0 || y >= size {
					continue
				}
				// Concentric rings by Chebyshev distance from center:
				// d=0,1 and the d=3 border are dark; d=2 is the light
				// ring; d=4 is the one-module light separator.
				d := maxAbs(dx, dy)
				if d == 2 || d == 4 {
					bm.Set(x, y, bitmap.Off)
				} else {
					bm.Set(x, y, bitmap.On)
				}
			}
		}
	}
	drawFinder(3, 3)
	drawFinder(size-4, 3)
	drawFinder(3, size-4)

	for i := 8; i < size-8; i++ {
		v := bitmap.Off
		if i%2 == 0 {
			v = bitmap.On
		}
		bm.Set(i, 6, v)
		bm.Set(6, i, v)
	}

	bm.Set(8, size-8, bitmap.On)

	drawAlignmentPatternValues(bm, size, version)
}

// drawAlignmentPatternValues draws each real alignment pattern (a 5x5
// block: dark outer ring, light middle ring, dark center) at the
// positions qrtables.AlignmentPositions names, skipping the three
// (row,col) combinations that coincide with a finder pattern.
func drawAlignmentPatternValues(bm *bitmap.Bitmap, size, version int) {
	align := qrtables.AlignmentPositions(version)
	for i := range align {
		for j := range align {
			if qrtables.IsAlignmentCorner(i, j, len(align)) {
				continue
			}
			cx, cy := align[j], align[i]
			for dy := -2; dy <= 2; dy++ {
				for dx := -2; dx <= 2; dx++ {
					v := bitmap.On
					if maxAbs(dx, dy) == 1 {
						v = bitmap.Off
					}
					bm.Set(cx+dx, cy+dy, v)
				}
			}
		}
	}
}

// drawVersionBits draws both redundant 18-bit copies of a version >= 7
// symbol's version-information block, mirroring the cell layout
// internal/bitdecode's versionBitPositions reads back.
func drawVersionBits(bm *bitmap.Bitmap, size, versionWord int) {
	for i := 0; i < 18; i++ {
		a := size - 11 + i%3
		b := i / 3
		v := bitmap.Off
		if (versionWord>>uint(i))&1 == 1 {
			v = bitmap.On
		}
		bm.Set(a, b, v)
		bm.Set(b, a, v)
	}
}

func maxAbs(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}

func drawFormatBits(bm *bitmap.Bitmap, size int, formatBits int) {
	var copy1, copy2 [15][2]int
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
	write := func(positions [15][2]int) {
		for i, p := range positions {
			v := bitmap.Off
			if (formatBits>>uint(i))&1 == 1 {
				v = bitmap.On
			}
			bm.Set(p[0], p[1], v)
		}
	}
	write(copy1)
	write(copy2)
}

// buildSymbol constructs a complete version module grid encoding payload
// under mode/ecc, as an ON/OFF bitmap ready to render. Versions with more
// than one Reed-Solomon block (version >= 7 always does) are built by
// Reed-Solomon encoding each block separately and re-interleaving them
// with internal/interleave.Merge, the same way a real encoder lays out
// multi-block codewords. corrupt, if non-nil, is applied to the
// flattened, interleaved data+ECC codeword before it is drawn, letting
// tests inject byte errors the way a damaged photograph would.
func buildSymbol(version, mode int, countBits, count int, payloadBits []bool, ecc qrtables.ECCLevel, corrupt func([]byte)) (*bitmap.Bitmap, int, error) {
	size := qrtables.SizeForVersion(version)
	layout, err := qrtables.Layout(version, ecc)
	if err != nil {
		return nil, 0, err
	}
	totalDataBytes := layout.NumShortBlocks*layout.ShortBlockLen + layout.NumLongBlocks*(layout.ShortBlockLen+1)
	data := buildDataBytes(mode, countBits, count, payloadBits, totalDataBytes)
	if len(data) != totalDataBytes {
		return nil, 0, qrerror.New(qrerror.Decode, "test vector: built %d data bytes, want %d", len(data), totalDataBytes)
	}

	codec := reedsolomon.NewCodec(layout.EccWords)
	blocks := make([]interleave.Block, layout.NumBlocks)
	offset := 0
	for i := range blocks {
		dataLen := layout.ShortBlockLen
		if i >= layout.NumShortBlocks {
			dataLen++
		}
		blockData := append([]byte(nil), data[offset:offset+dataLen]...)
		offset += dataLen
		blocks[i] = interleave.Block{Data: blockData, ECC: codec.Encode(blockData)}
	}
	codeword := interleave.Merge(blocks)
	if corrupt != nil {
		corrupt(codeword)
	}

	grid := qrtables.FunctionGrid(version)
	isFunction := func(x, y int) bool { return grid.IsOn(x, y) }

	var bits []bool
	for _, b := range codeword {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1 == 1)
		}
	}

	bm := bitmap.New(size, size)
	drawFunctionPatternValues(bm, size, version)
	drawFormatBits(bm, size, qrtables.EncodeFormat(ecc, testMask))
	if version >= 7 {
		drawVersionBits(bm, size, qrtables.EncodeVersion(version))
	}

	idx := 0
	qrtables.ZigzagWalk(version, isFunction, func(x, y int) {
		bit := false
		if idx < len(bits) {
			bit = bits[idx]
		}
		idx++
		if qrtables.MaskInvert(testMask, x, y) {
			bit = !bit
		}
		v := bitmap.Off
		if bit {
			v = bitmap.On
		}
		bm.Set(x, y, v)
	})

	// A real QR symbol always carries a light quiet zone at least 4
	// modules wide; the finder/alignment scanner relies on runs
	// terminating in light modules at the symbol's outer edge.
	return bm.Border(4, bitmap.Off), size, nil
}

// renderImage upsamples an ON/OFF module grid to a grayscale pixel buffer
// at modulePx pixels per module: On -> 0 (black), Off -> 255 (white).
func renderImage(bm *bitmap.Bitmap, modulePx int) (width, height int, pixels []byte) {
	width = bm.Width * modulePx
	height = bm.Height * modulePx
	pixels = make([]byte, width*height)
	for my := 0; my < bm.Height; my++ {
		for mx := 0; mx < bm.Width; mx++ {
			v := byte(255)
			if bm.IsOn(mx, my) {
				v = 0
			}
			for dy := 0; dy < modulePx; dy++ {
				row := (my*modulePx + dy) * width
				for dx := 0; dx < modulePx; dx++ {
					pixels[row+mx*modulePx+dx] = v
				}
			}
		}
	}
	return width, height, pixels
}

func numericVector(payload string, ecc qrtables.ECCLevel, corrupt func([]byte)) (*bitmap.Bitmap, int, error) {
	bits := buildNumericBits(payload)
	return buildSymbol(testVersion, 0b0001, 10, len(payload), bits, ecc, corrupt)
}

func alphanumericVector(payload string, ecc qrtables.ECCLevel, corrupt func([]byte)) (*bitmap.Bitmap, int, error) {
	bits, err := buildAlphanumericBits(payload)
	if err != nil {
		return nil, 0, err
	}
	return buildSymbol(testVersion, 0b0010, 9, len(payload), bits, ecc, corrupt)
}

// numericVectorVersion7 builds a version-7 (size 45) numeric symbol: large
// enough that internal/detect.Detect searches for a real alignment pattern
// (detect.go gates that on size >= 25) and internal/bitdecode.resolveVersion
// reads the 18-bit version-information block off the bitmap rather than
// trusting size alone (version.go gates that on size-derived version >= 7).
func numericVectorVersion7(payload string, ecc qrtables.ECCLevel, corrupt func([]byte)) (*bitmap.Bitmap, int, error) {
	// Numeric mode uses a 10-bit character count field for versions 1-9.
	bits := buildNumericBits(payload)
	return buildSymbol(7, 0b0001, 10, len(payload), bits, ecc, corrupt)
}
