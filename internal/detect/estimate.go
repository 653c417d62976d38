package detect

import (
	"math"

	"github.com/jalphad/qrdecode/internal/bitmap"
	"github.com/jalphad/qrdecode/internal/qrtables"
	"github.com/jalphad/qrdecode/qrerror"
)

// blackWhiteBlack walks a Bresenham line from (fromX, fromY) towards
// (toX, toY) and returns the Euclidean distance covered by the time it has
// crossed black-to-white, white-to-black and black-to-white again — from a
// finder center, the distance out of the dark core, across the light ring
// and out of the dark ring (half of a finder bar along that line). It
// returns NaN if the line leaves the image or reaches (toX, toY) before
// completing those crossings.
func blackWhiteBlack(bm *bitmap.Bitmap, fromX, fromY, toX, toY int) float64 {
	steep := iabs(toY-fromY) > iabs(toX-fromX)
	if steep {
		fromX, fromY = fromY, fromX
		toX, toY = toY, toX
	}

	dx := iabs(toX - fromX)
	dy := iabs(toY - fromY)
	errAcc := -dx / 2
	xstep := 1
	if fromX > toX {
		xstep = -1
	}
	ystep := 1
	if fromY > toY {
		ystep = -1
	}

	state := 0
	x, y := fromX, fromY
	xLimit := toX + xstep

	for ; x != xLimit; x += xstep {
		realX, realY := x, y
		if steep {
			realX, realY = y, x
		}
		if realX < 0 || realX >= bm.Width || realY < 0 || realY >= bm.Height {
			return math.NaN()
		}

		on := bm.IsOn(realX, realY)
		wantBlack := state == 1
		if wantBlack == on {
			if state == 2 {
				ox, oy := fromX, fromY
				if steep {
					ox, oy = oy, ox
				}
				dxr, dyr := float64(realX-ox), float64(realY-oy)
				return math.Sqrt(dxr*dxr + dyr*dyr)
			}
			state++
		}

		errAcc += dy
		if errAcc > 0 {
			if y == toY {
				break
			}
			y += ystep
			errAcc -= dx
		}
	}
	return math.NaN()
}

// EstimateModuleSize computes the module size from the three finder
// centers: the average of the black-white-black run lengths along
// tl->tr and tl->bl, divided by 7. Each leg is measured both ways from the
// top-left center (towards the other finder and directly away from it) so
// that it spans one full finder bar. It fails with qrerror.Decode if the
// estimate comes out below 1 module.
func EstimateModuleSize(bm *bitmap.Bitmap, t Triple) (float64, error) {
	bothWays := func(fromX, fromY, toX, toY int) float64 {
		return blackWhiteBlack(bm, fromX, fromY, toX, toY) + blackWhiteBlack(bm, fromX, fromY, 2*fromX-toX, 2*fromY-toY) - 1
	}
	bwb1 := bothWays(int(t.TopLeft.X), int(t.TopLeft.Y), int(t.TopRight.X), int(t.TopRight.Y))
	bwb2 := bothWays(int(t.TopLeft.X), int(t.TopLeft.Y), int(t.BottomLeft.X), int(t.BottomLeft.Y))

	var moduleSize float64
	switch {
	case math.IsNaN(bwb1) && math.IsNaN(bwb2):
		return 0, qrerror.New(qrerror.Decode, "could not estimate module size: both legs failed")
	case math.IsNaN(bwb1):
		moduleSize = bwb2 / 7
	case math.IsNaN(bwb2):
		moduleSize = bwb1 / 7
	default:
		moduleSize = (bwb1 + bwb2) / 2 / 7
	}
	if moduleSize < 1 {
		return 0, qrerror.New(qrerror.Decode, "estimated module size %.3f is below 1", moduleSize)
	}
	return moduleSize, nil
}

// EstimateSize computes the symbol's module width/height from the finder
// geometry, snapping to the nearest size valid modulo 4 and validating it
// decodes to a real version.
func EstimateSize(t Triple, moduleSize float64) (int, error) {
	distTR := dist(t.TopLeft, t.TopRight) / moduleSize
	distBL := dist(t.TopLeft, t.BottomLeft) / moduleSize
	size := (round(distTR) + round(distBL)) / 2 + 7

	switch size % 4 {
	case 0:
		size++
	case 2:
		size--
	case 3:
		size -= 2
	}

	if _, err := qrtables.VersionForSize(size); err != nil {
		return 0, err
	}
	return size, nil
}

func dist(p, q Pattern) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
