package detect

import (
	"math"

	"github.com/jalphad/qrdecode/qrerror"
)

// Triple is the three finder patterns assigned to their symbol roles.
type Triple struct {
	TopLeft, TopRight, BottomLeft Pattern
}

// SelectTriple picks, from three or more finder candidates, the three
// whose squared pairwise distances are closest to a right isoceles
// triangle (the shape three QR finder corners always form), rejects any
// triple whose module sizes disagree by more than 1.4x, and assigns
// top-left/top-right/bottom-left roles.
func SelectTriple(candidates []Pattern) (Triple, error) {
	if len(candidates) < 3 {
		return Triple{}, qrerror.New(qrerror.FinderNotFound, "need at least 3 finder candidates, have %d", len(candidates))
	}

	bestScore := math.Inf(1)
	bestIdx := [3]int{-1, -1, -1}

	n := len(candidates)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				p, q, r := candidates[i], candidates[j], candidates[k]
				if !moduleSizesAgree(p, q, r) {
					continue
				}
				score, ok := isoscelesScore(p, q, r)
				if !ok {
					continue
				}
				if score < bestScore {
					bestScore = score
					bestIdx = [3]int{i, j, k}
				}
			}
		}
	}

	if bestIdx[0] < 0 {
		return Triple{}, qrerror.New(qrerror.FinderNotFound, "no candidate triple forms a plausible finder arrangement")
	}

	return assignRoles(candidates[bestIdx[0]], candidates[bestIdx[1]], candidates[bestIdx[2]]), nil
}

func moduleSizesAgree(p, q, r Pattern) bool {
	lo := math.Min(p.ModuleSize, math.Min(q.ModuleSize, r.ModuleSize))
	hi := math.Max(p.ModuleSize, math.Max(q.ModuleSize, r.ModuleSize))
	if lo <= 0 {
		return false
	}
	return hi <= lo*1.4
}

func sqDist(p, q Pattern) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// isoscelesScore returns |c-2b| + |c-2a| for the triangle's squared side
// lengths sorted a <= b <= c.
func isoscelesScore(p, q, r Pattern) (float64, bool) {
	d := [3]float64{sqDist(p, q), sqDist(q, r), sqDist(p, r)}
	a, b, c := d[0], d[1], d[2]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return math.Abs(c-2*b) + math.Abs(c-2*a), true
}

// assignRoles finds the vertex opposite the longest side (the top-left
// finder, since the hypotenuse of the right isoceles triangle connects
// top-right and bottom-left) and orders the remaining two so that
// (tr-tl) x (bl-tl) is non-negative.
func assignRoles(p, q, r Pattern) Triple {
	pts := [3]Pattern{p, q, r}
	dists := [3]float64{sqDist(q, r), sqDist(p, r), sqDist(p, q)} // side opposite each vertex
	longest := 0
	for i := 1; i < 3; i++ {
		if dists[i] > dists[longest] {
			longest = i
		}
	}
	tl := pts[longest]
	var a, b Pattern
	switch longest {
	case 0:
		a, b = pts[1], pts[2]
	case 1:
		a, b = pts[0], pts[2]
	default:
		a, b = pts[0], pts[1]
	}

	cross := (a.X-tl.X)*(b.Y-tl.Y) - (a.Y-tl.Y)*(b.X-tl.X)
	if cross < 0 {
		a, b = b, a
	}
	return Triple{TopLeft: tl, TopRight: a, BottomLeft: b}
}
