package detect

import "math"

// runMatch is a point along a scan line where the trailing run completed a
// ratio match: index is the position of the pixel that ended the final
// run (the first pixel of the opposite color after it), and runs holds
// each run's length in scan order.
type runMatch struct {
	index int
	runs  []int
}

// scanRuns walks on(i) for i in [0, length), maintaining a rolling window
// of len(idealRatio) alternating runs (starting on-color), and reports
// every position at which the trailing window's run lengths satisfy the
// ratio check against idealRatio within varianceFactor tolerance.
//
// This is the same run-counting state machine a finder-pattern scan and an
// alignment-pattern scan both use, generalized over the number of runs and
// their ideal relative widths so both can share it: 5 runs of 1:1:3:1:1
// for finders, 3 runs of 1:1:1 for alignment marks.
func scanRuns(length int, on func(i int) bool, idealRatio []float64, varianceFactor float64) []runMatch {
	n := len(idealRatio)
	counts := make([]int, n)
	state := 0
	var matches []runMatch

	flushOne := func(i int) {
		if ratioOK(counts, idealRatio, varianceFactor) {
			matches = append(matches, runMatch{index: i, runs: append([]int(nil), counts...)})
		}
	}

	for i := 0; i < length; i++ {
		isOn := on(i)
		if isOn {
			if state&1 == 1 {
				state++
			}
			counts[min(state, n-1)]++
		} else {
			if state&1 == 0 {
				if state == n-1 {
					flushOne(i)
					// slide the window by two runs (one on, one off) and
					// keep scanning instead of restarting from scratch.
					copy(counts, counts[2:])
					counts[n-2] = 1
					counts[n-1] = 0
					state = n - 2
					continue
				}
				state++
			}
			counts[min(state, n-1)]++
		}
	}
	return matches
}

func ratioOK(counts []int, idealRatio []float64, varianceFactor float64) bool {
	total := 0
	for _, c := range counts {
		if c == 0 {
			return false
		}
		total += c
	}
	var ratioSum float64
	for _, r := range idealRatio {
		ratioSum += r
	}
	moduleSize := float64(total) / ratioSum
	if moduleSize < 1 {
		return false
	}
	for i, c := range counts {
		ideal := idealRatio[i] * moduleSize
		tol := idealRatio[i] * moduleSize / varianceFactor
		if math.Abs(float64(c)-ideal) >= tol {
			return false
		}
	}
	return true
}
