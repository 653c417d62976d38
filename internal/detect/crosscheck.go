package detect

import "github.com/jalphad/qrdecode/internal/bitmap"

// crossCheckWithVariance re-verifies a finder pattern along the line
// through (cx, cy) in direction (dx, dy) (each -1, 0, or 1 — a unit step
// in pixel space), expanding outward from the center pixel in both
// directions and counting the five alternating runs on-off-on-off-on.
// This anchors the check at a known interior point instead of sweeping
// from an edge, the way the initial horizontal scan does.
//
// maxCount bounds every run except the center one: if an outer run grows
// past it without the line ending, the check fails. It returns the
// recovered center position (in steps from (cx, cy) along the direction)
// and the five run lengths. varianceFactor lets the diagonal confirmation
// pass use a looser tolerance than the axis-aligned passes.
// the diagonal confirmation pass can use the spec's relaxed tolerance.
func crossCheckWithVariance(bm *bitmap.Bitmap, cx, cy float64, dx, dy int, maxCount int, varianceFactor float64) (center float64, runs [5]int, ok bool) {
	at := func(step int) (bool, bool) {
		x := int(cx) + step*dx
		y := int(cy) + step*dy
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
		runs[2]++
		step--
	}
	leftmost := step + 1

	for runs[1] <= maxCount {
		on, in := at(step)
		if !in {
			return 0, runs, false
		}
		if on {
			break
		}
		runs[1]++
		step--
		leftmost = step + 1
	}
	if runs[1] > maxCount {
		return 0, runs, false
	}
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
		runs[2]++
		step++
	}
	rightmost := step - 1

	for runs[3] <= maxCount {
		on, in := at(step)
		if !in {
			return 0, runs, false
		}
		if on {
			break
		}
		runs[3]++
		step++
		rightmost = step - 1
	}
	if runs[3] > maxCount {
		return 0, runs, false
	}
	for runs[4] <= maxCount {
		on, in := at(step)
		if !in || !on {
			break
		}
		runs[4]++
		step++
		rightmost = step - 1
	}
	if runs[4] > maxCount {
		return 0, runs, false
	}

	total := runs[0] + runs[1] + runs[2] + runs[3] + runs[4]
	if total < 7 {
		return 0, runs, false
	}
	if !ratioOK(runs[:], []float64{1, 1, 3, 1, 1}, varianceFactor) {
		return 0, runs, false
	}
	center = float64(leftmost+rightmost) / 2
	return center, runs, true
}
