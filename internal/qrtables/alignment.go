package qrtables

// AlignmentPositions returns the row/column coordinates at which alignment
// pattern centers may appear for the given version (empty for version 1,
// which has none). Three of the (row,col) combinations — the ones
// coinciding with the finder patterns — are not actually drawn; callers
// must skip those themselves.
func AlignmentPositions(version int) []int {
	if version == 1 {
		return nil
	}
	numAlign := version/7 + 2
	var step int
	if version == 32 {
		step = 26
	} else {
		step = (version*4+numAlign*2+1)/(numAlign*2-2) * 2
	}
	result := make([]int, numAlign)
	result[0] = 6
	pos := version*4 + 17 - 7
	for i := numAlign - 1; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}
	return result
}

// IsAlignmentCorner reports whether the alignment pattern at index (i, j)
// in AlignmentPositions(version) coincides with a finder pattern and
// should be skipped.
func IsAlignmentCorner(i, j, numAlign int) bool {
	return (i == 0 && j == 0) || (i == 0 && j == numAlign-1) || (i == numAlign-1 && j == 0)
}
