package qrtables

// ZigzagWalk visits every non-function module of a version-v symbol in the
// order QR codewords are written to it: two columns at a time, starting
// from the bottom-right corner, alternating upward and downward sweeps,
// skipping the vertical timing column at x=6 entirely.
//
// visit is called once per data-bearing position, in read order; it
// returns nothing because the caller accumulates bits itself.
func ZigzagWalk(version int, functionGrid func(x, y int) bool, visit func(x, y int)) {
	size := SizeForVersion(version)
	for right := size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0
				var y int
				if upward {
					y = size - 1 - vert
				} else {
					y = vert
				}
				if !functionGrid(x, y) {
					visit(x, y)
				}
			}
		}
	}
}
