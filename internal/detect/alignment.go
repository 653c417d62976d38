package detect

import "github.com/jalphad/qrdecode/internal/bitmap"

var alignmentRatio = []float64{1, 1, 1}

const alignmentVarianceFactor = 2.0

var allowanceFactors = []float64{4, 8, 16}

// SetAllowanceFactors overrides the alignment-pattern search-window
// widening schedule. See detect.SetVarianceSteps for why this is exposed
// as a package-level setter rather than a parameter.
func SetAllowanceFactors(factors []float64) {
	if len(factors) > 0 {
		allowanceFactors = factors
	}
}

// FindAlignmentPattern searches for the bottom-right alignment pattern
// near (estX, estY), retrying with a wider search window (half-width
// allowanceFactor*moduleSize, factor = 4, then 8, then 16) until one is
// found. It returns ok=false if no window turns up a match, in which case
// the caller should extrapolate the corner instead.
func FindAlignmentPattern(bm *bitmap.Bitmap, estX, estY, moduleSize float64) (Pattern, bool) {
	for _, factor := range allowanceFactors {
		if p, ok := searchAlignmentWindow(bm, estX, estY, factor*moduleSize, moduleSize); ok {
			return p, true
		}
	}
	return Pattern{}, false
}

func searchAlignmentWindow(bm *bitmap.Bitmap, estX, estY, halfWidth, moduleSize float64) (Pattern, bool) {
	minX := clampInt(int(estX-halfWidth), 0, bm.Width-1)
	maxX := clampInt(int(estX+halfWidth), 0, bm.Width-1)
	minY := clampInt(int(estY-halfWidth), 0, bm.Height-1)
	maxY := clampInt(int(estY+halfWidth), 0, bm.Height-1)
	if minX >= maxX || minY >= maxY {
		return Pattern{}, false
	}
	centerRow := (minY + maxY) / 2

	var candidates []Pattern
	for offset := 0; ; offset++ {
		rows := []int{centerRow + offset}
		if offset > 0 {
			rows = append(rows, centerRow-offset)
		}
		any := false
		for _, row := range rows {
			if row < minY || row > maxY {
				continue
			}
			any = true
			matches := scanRuns(maxX-minX+1, func(i int) bool { return bm.IsOn(minX+i, row) }, alignmentRatio, alignmentVarianceFactor)
			for _, m := range matches {
				total := m.runs[0] + m.runs[1] + m.runs[2]
				centerX := float64(minX) + float64(m.index) - float64(m.runs[2])/2
				vCenter, _, ok := crossCheckAlignment(bm, centerX, float64(row), 2*m.runs[1])
				if !ok {
					continue
				}
				candidate := Pattern{X: centerX, Y: float64(row) + vCenter, ModuleSize: float64(total) / 3, Count: 1}
				candidates = mergeInto(candidates, candidate)
				if len(candidates) > 0 {
					return candidates[0], true
				}
			}
		}
		if !any {
			break
		}
	}
	return Pattern{}, false
}

// crossCheckAlignment confirms a 1:1:1 alignment run vertically through
// (cx, cy), the same bidirectional expansion crossCheck uses for finders
// but with 3 runs instead of 5.
func crossCheckAlignment(bm *bitmap.Bitmap, cx, cy float64, maxCount int) (float64, [3]int, bool) {
	var runs [3]int
	at := func(step int) (bool, bool) {
		y := int(cy) + step
		x := int(cx)
		if x < 0 || x >= bm.Width || y < 0 || y >= bm.Height {
			return false, false
		}
		return bm.IsOn(x, y), true
	}

	step := 0
	for {
		on, in := at(step)
		if !in || !on {
			break
		}
		runs[1]++
		step--
	}
	leftmost := step + 1
	for runs[0] <= maxCount {
		on, in := at(step)
		if !in || !on {
			break
		}
		runs[0]++
		step--
		leftmost = step + 1
	}
	if runs[0] > maxCount {
		return 0, runs, false
	}

	step = 1
	for {
		on, in := at(step)
		if !in || !on {
			break
		}
		runs[1]++
		step++
	}
	rightmost := step - 1
	for runs[2] <= maxCount {
		on, in := at(step)
		if !in || !on {
			break
		}
		runs[2]++
		step++
		rightmost = step - 1
	}
	if runs[2] > maxCount {
		return 0, runs, false
	}

	total := runs[0] + runs[1] + runs[2]
	if total < 3 || !ratioOK(runs[:], alignmentRatio, alignmentVarianceFactor) {
		return 0, runs, false
	}
	return float64(leftmost+rightmost) / 2, runs, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
