// Package detect locates the three finder patterns and, where present, the
// bottom-right alignment pattern of a QR symbol inside a binarized Bitmap,
// by scanning runs of modules along rows, columns, and diagonals looking
// for the finder ratio 1:1:3:1:1.
package detect

import "math"

// Pattern is a candidate finder or alignment pattern center: its position,
// estimated module size, and how many scans have merged into it.
type Pattern struct {
	X, Y       float64
	ModuleSize float64
	Count      float64
}

// equivalent reports whether two patterns are close enough to be the same
// physical feature, per the merge tolerance: position within one module of
// each other and module size within max(1, moduleSize) of each other.
func (p Pattern) equivalent(o Pattern) bool {
	dx := math.Abs(p.X - o.X)
	dy := math.Abs(p.Y - o.Y)
	dm := math.Abs(p.ModuleSize - o.ModuleSize)
	return dx <= o.ModuleSize && dy <= o.ModuleSize && dm <= math.Max(1.0, o.ModuleSize)
}

// merge combines p and o into a count-weighted average pattern.
func (p Pattern) merge(o Pattern) Pattern {
	total := p.Count + o.Count
	return Pattern{
		X:          (p.X*p.Count + o.X*o.Count) / total,
		Y:          (p.Y*p.Count + o.Y*o.Count) / total,
		ModuleSize: (p.ModuleSize*p.Count + o.ModuleSize*o.Count) / total,
		Count:      total,
	}
}

// mergeInto folds candidate into patterns, merging with the first
// equivalent entry if one exists, else appending it as a new candidate.
func mergeInto(patterns []Pattern, candidate Pattern) []Pattern {
	for i, p := range patterns {
		if p.equivalent(candidate) {
			patterns[i] = p.merge(candidate)
			return patterns
		}
	}
	return append(patterns, candidate)
}
