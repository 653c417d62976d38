// Package rectify maps a warped symbol in a binarized Bitmap onto a clean
// N x N module grid via a perspective homography fitted from the three
// finder centers and the bottom-right corner (alignment pattern or
// extrapolated).
package rectify

import "github.com/jalphad/qrdecode/internal/geom"

// transform is a 3x3 projective matrix, row-major: [a11 a21 a31; a12 a22
// a32; a13 a23 a33]. The naming matches the classic "unit square to
// quadrilateral" derivation: a11..a32 are the affine part, a13/a23 are
// the projective correction, a33 is 1 for a transform built by
// squareToQuad (adjugate and times generally give other values).
type transform struct {
	a11, a21, a31 float64
	a12, a22, a32 float64
	a13, a23, a33 float64
}

// squareToQuad builds the transform that maps (0,0),(1,0),(1,1),(0,1) to
// the given quadrilateral p0..p3 (in that cyclic order).
func squareToQuad(p0, p1, p2, p3 geom.Point) transform {
	d3 := geom.Point{X: p0.X - p1.X + p2.X - p3.X, Y: p0.Y - p1.Y + p2.Y - p3.Y}
	if d3.X == 0 && d3.Y == 0 {
		return transform{
			a11: p1.X - p0.X, a21: p2.X - p1.X, a31: p0.X,
			a12: p1.Y - p0.Y, a22: p2.Y - p1.Y, a32: p0.Y,
			a13: 0, a23: 0, a33: 1,
		}
	}
	d1 := geom.Point{X: p1.X - p2.X, Y: p1.Y - p2.Y}
	d2 := geom.Point{X: p3.X - p2.X, Y: p3.Y - p2.Y}
	den := d1.Cross(d2)
	a13 := d3.Cross(d2) / den
	a23 := d1.Cross(d3) / den

	return transform{
		a11: p1.X - p0.X + a13*p1.X, a21: p3.X - p0.X + a23*p3.X, a31: p0.X,
		a12: p1.Y - p0.Y + a13*p1.Y, a22: p3.Y - p0.Y + a23*p3.Y, a32: p0.Y,
		a13: a13, a23: a23, a33: 1,
	}
}

// quadToSquare is the inverse of squareToQuad, computed via the adjugate
// (equal to the inverse up to a scalar for a homogeneous matrix, and
// cheaper to compute than a full Gaussian elimination).
func quadToSquare(p0, p1, p2, p3 geom.Point) transform {
	t := squareToQuad(p0, p1, p2, p3)
	return t.adjugate()
}

func (t transform) adjugate() transform {
	return transform{
		a11: t.a22*t.a33 - t.a23*t.a32,
		a21: t.a23*t.a31 - t.a21*t.a33,
		a31: t.a21*t.a32 - t.a22*t.a31,
		a12: t.a13*t.a32 - t.a12*t.a33,
		a22: t.a11*t.a33 - t.a13*t.a31,
		a32: t.a12*t.a31 - t.a11*t.a32,
		a13: t.a12*t.a23 - t.a13*t.a22,
		a23: t.a13*t.a21 - t.a11*t.a23,
		a33: t.a11*t.a22 - t.a12*t.a21,
	}
}

// times composes t * other (apply other first, then t).
func (t transform) times(o transform) transform {
	return transform{
		a11: t.a11*o.a11 + t.a21*o.a12 + t.a31*o.a13,
		a21: t.a11*o.a21 + t.a21*o.a22 + t.a31*o.a23,
		a31: t.a11*o.a31 + t.a21*o.a32 + t.a31*o.a33,
		a12: t.a12*o.a11 + t.a22*o.a12 + t.a32*o.a13,
		a22: t.a12*o.a21 + t.a22*o.a22 + t.a32*o.a23,
		a32: t.a12*o.a31 + t.a22*o.a32 + t.a32*o.a33,
		a13: t.a13*o.a11 + t.a23*o.a12 + t.a33*o.a13,
		a23: t.a13*o.a21 + t.a23*o.a22 + t.a33*o.a23,
		a33: t.a13*o.a31 + t.a23*o.a32 + t.a33*o.a33,
	}
}

// apply maps p through the homogeneous transform.
func (t transform) apply(p geom.Point) geom.Point {
	denom := t.a13*p.X + t.a23*p.Y + t.a33
	return geom.Point{
		X: (t.a11*p.X + t.a21*p.Y + t.a31) / denom,
		Y: (t.a12*p.X + t.a22*p.Y + t.a32) / denom,
	}
}

// quadToQuad builds the transform mapping quadrilateral from0..from3 onto
// to0..to3, via the classic two-homography composition.
func quadToQuad(from0, from1, from2, from3, to0, to1, to2, to3 geom.Point) transform {
	qToS := quadToSquare(from0, from1, from2, from3)
	sToQ := squareToQuad(to0, to1, to2, to3)
	return sToQ.times(qToS)
}
