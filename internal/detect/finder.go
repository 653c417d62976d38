package detect

import (
	"math"

	"github.com/jalphad/qrdecode/internal/bitmap"
	"github.com/jalphad/qrdecode/qrerror"
)

var finderRatio = []float64{1, 1, 3, 1, 1}

const defaultFinderVarianceFactor = 2.0
const diagonalVarianceFactor = 1.333

// FindFinderCandidates scans bm for finder-pattern candidates, merging
// repeated hits into Patterns weighted by how many scans confirmed them,
// using the default variance tolerance. It fails with
// qrerror.FinderNotFound if fewer than three candidates survive.
func FindFinderCandidates(bm *bitmap.Bitmap) ([]Pattern, error) {
	return FindFinderCandidatesWithVariance(bm, defaultFinderVarianceFactor)
}

// FindFinderCandidatesWithVariance is FindFinderCandidates with an
// explicit variance factor. Each run may differ from its ideal length by
// less than ideal/varianceFactor, so a smaller factor loosens the check and
// a larger one tightens it.
func FindFinderCandidatesWithVariance(bm *bitmap.Bitmap, varianceFactor float64) ([]Pattern, error) {
	var candidates []Pattern

	skipRows := 1
	minSkip := intMax(3, 3*bm.Height/388)
	y := minSkip

	for y < bm.Height {
		row := y
		matches := scanRuns(bm.Width, func(x int) bool { return bm.IsOn(x, row) }, finderRatio, varianceFactor)
		advanced := false
		for _, m := range matches {
			total := m.runs[0] + m.runs[1] + m.runs[2] + m.runs[3] + m.runs[4]
			centerX := float64(m.index) - float64(m.runs[4]) - float64(m.runs[3]) - float64(m.runs[2])/2
			moduleSize := float64(total) / 7

			confirmed, ok := confirmCenter(bm, centerX, float64(row), m.runs[2], moduleSize, varianceFactor)
			if !ok {
				continue
			}
			candidates = mergeInto(candidates, confirmed)

			if len(candidates) >= 2 {
				a, b := candidates[len(candidates)-1], candidates[len(candidates)-2]
				if a.Count >= 2 && b.Count >= 2 {
					d := int(math.Abs(a.X-b.X)-math.Abs(a.Y-b.Y))/2 - m.runs[2] - skipRows
					if d > 0 {
						y += d
						advanced = true
					}
					skipRows = 2
				}
			}
		}

		if haveEarlyExit(candidates) {
			break
		}
		if !advanced {
			y++
		}
	}

	if len(candidates) < 3 {
		return nil, qrerror.New(qrerror.FinderNotFound, "found only %d finder-pattern candidates, need 3", len(candidates))
	}
	return candidates, nil
}

// confirmCenter re-checks a horizontal hit vertically, then horizontally
// again through the refined row, then diagonally with relaxed tolerance.
func confirmCenter(bm *bitmap.Bitmap, cx, cy float64, maxCount int, moduleSize float64, varianceFactor float64) (Pattern, bool) {
	vCenter, _, ok := crossCheckWithVariance(bm, cx, cy, 0, 1, maxCount, varianceFactor)
	if !ok {
		return Pattern{}, false
	}
	newY := cy + vCenter

	hCenter, hRuns, ok := crossCheckWithVariance(bm, cx, newY, 1, 0, maxCount, varianceFactor)
	if !ok {
		return Pattern{}, false
	}
	newX := cx + hCenter

	_, _, ok = crossCheckDiagonal(bm, newX, newY, maxCount)
	if !ok {
		return Pattern{}, false
	}

	total := hRuns[0] + hRuns[1] + hRuns[2] + hRuns[3] + hRuns[4]
	return Pattern{X: newX, Y: newY, ModuleSize: float64(total) / 7, Count: 1}, true
}

// crossCheckDiagonal confirms the pattern along one of the two diagonals
// through (cx, cy) — the main diagonal first, the other only if that one
// fails — using the relaxed variance factor the spec allows off-axis.
func crossCheckDiagonal(bm *bitmap.Bitmap, cx, cy float64, maxCount int) (float64, [5]int, bool) {
	if c, r, ok := crossCheckWithVariance(bm, cx, cy, 1, 1, maxCount, diagonalVarianceFactor); ok {
		return c, r, true
	}
	return crossCheckWithVariance(bm, cx, cy, 1, -1, maxCount, diagonalVarianceFactor)
}

// haveEarlyExit reports whether 3+ candidates with count>=2 agree on
// module size within 5%, per the spec's early-stop condition.
func haveEarlyExit(candidates []Pattern) bool {
	var strong []Pattern
	for _, c := range candidates {
		if c.Count >= 2 {
			strong = append(strong, c)
		}
	}
	if len(strong) < 3 {
		return false
	}
	for i := 0; i < len(strong); i++ {
		for j := i + 1; j < len(strong); j++ {
			sum := strong[i].ModuleSize + strong[j].ModuleSize
			if sum == 0 || math.Abs(strong[i].ModuleSize-strong[j].ModuleSize)/sum > 0.05 {
				return false
			}
		}
	}
	return true
}

func intMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
