// Package geom provides the 2-D point arithmetic used throughout the
// detection and rectification stages of the QR decoder.
package geom

import "math"

// Point is a location in the image plane. Coordinates are float64 because
// the detector and rectifier both need sub-pixel precision; truncation to
// an integer pixel happens explicitly at the point of use, never implicitly.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Mirror swaps the X and Y coordinates.
func (p Point) Mirror() Point {
	return Point{p.Y, p.X}
}

// Cross returns the Z component of the 3-D cross product of p and q,
// treating both as vectors from the origin.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// DistanceSq returns the squared Euclidean distance between p and q.
func DistanceSq(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Sqrt(DistanceSq(p, q))
}

// TruncX returns the integer part of p.X. Truncation, not rounding, is
// intentional: the detector and rectifier rely on truncation toward zero
// at the pixel-sampling boundary.
func (p Point) TruncX() int {
	return int(p.X)
}

// TruncY returns the integer part of p.Y.
func (p Point) TruncY() int {
	return int(p.Y)
}
