package qrtables

import "github.com/jalphad/qrdecode/internal/bitmap"

// FunctionGrid returns a bitmap the size of a version-v symbol, with every
// function module (finder patterns plus separators, timing patterns,
// alignment patterns, format/version reservation areas, and the dark
// module) set On. Everything left Unknown is a data or remainder module a
// zigzag walk should visit.
func FunctionGrid(version int) *bitmap.Bitmap {
	size := SizeForVersion(version)
	grid := bitmap.New(size, size)

	markFinder := func(cx, cy int) {
		for dy := -4; dy <= 4; dy++ {
			for dx := -4; dx <= 4; dx++ {
				x, y := cx+dx, cy+dy
				if x < 0 || x >= size || y < 0 || y >= size {
					continue
				}
				grid.Set(x, y, bitmap.On)
			}
		}
	}
	markFinder(3, 3)
	markFinder(size-4, 3)
	markFinder(3, size-4)

	for i := 0; i < size; i++ {
		grid.Set(6, i, bitmap.On)
		grid.Set(i, 6, bitmap.On)
	}

	align := AlignmentPositions(version)
	for i := range align {
		for j := range align {
			if IsAlignmentCorner(i, j, len(align)) {
				continue
			}
			cx, cy := align[j], align[i]
			for dy := -2; dy <= 2; dy++ {
				for dx := -2; dx <= 2; dx++ {
					grid.Set(cx+dx, cy+dy, bitmap.On)
				}
			}
		}
	}

	for i := 0; i <= 5; i++ {
		grid.Set(8, i, bitmap.On)
	}
	grid.Set(8, 7, bitmap.On)
	grid.Set(8, 8, bitmap.On)
	grid.Set(7, 8, bitmap.On)
	for i := 9; i < 15; i++ {
		grid.Set(14-i, 8, bitmap.On)
	}
	for i := 0; i < 8; i++ {
		grid.Set(size-1-i, 8, bitmap.On)
	}
	for i := 8; i < 15; i++ {
		grid.Set(8, size-15+i, bitmap.On)
	}
	grid.Set(8, size-8, bitmap.On) // dark module

	if version >= 7 {
		for i := 0; i < 18; i++ {
			a := size - 11 + i%3
			b := i / 3
			grid.Set(a, b, bitmap.On)
			grid.Set(b, a, bitmap.On)
		}
	}

	return grid
}
