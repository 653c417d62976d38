package rectify

import (
	"github.com/jalphad/qrdecode/internal/bitmap"
	"github.com/jalphad/qrdecode/internal/geom"
)

// Corners are the four image-space points driving the homography: the
// three finder centers plus the bottom-right corner, either a real
// alignment pattern center or the extrapolated corner tr-tl+bl.
type Corners struct {
	TopLeft, TopRight, BottomLeft, BottomRight geom.Point
	HasAlignment                               bool
}

// Rectify samples a size x size module grid out of bm using the
// perspective homography fitted from corners. For each output cell
// center it maps back into source pixel space, truncates to an integer
// pixel, clamps to the source bounds, and copies that pixel's ON/OFF
// state.
func Rectify(bm *bitmap.Bitmap, corners Corners, size int) *bitmap.Bitmap {
	dimMinusThree := float64(size) - 3.5

	var brX, brY float64
	if corners.HasAlignment {
		brX = dimMinusThree - 3.0
		brY = brX
	} else {
		brX = dimMinusThree
		brY = dimMinusThree
	}

	grid0 := geom.Point{X: 3.5, Y: 3.5}
	grid1 := geom.Point{X: dimMinusThree, Y: 3.5}
	grid2 := geom.Point{X: brX, Y: brY}
	grid3 := geom.Point{X: 3.5, Y: dimMinusThree}

	t := quadToQuad(grid0, grid1, grid2, grid3,
		corners.TopLeft, corners.TopRight, corners.BottomRight, corners.BottomLeft)

	out := bitmap.New(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			src := t.apply(geom.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			sx := clamp(src.TruncX(), 0, bm.Width-1)
			sy := clamp(src.TruncY(), 0, bm.Height-1)
			if bm.IsOn(sx, sy) {
				out.Set(x, y, bitmap.On)
			} else {
				out.Set(x, y, bitmap.Off)
			}
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
