package geometry

import "math"

// Matrix is a 2D affine transform in [a, b, c, d, tx, ty] form:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Matrix [6]float64

// Identity is the identity affine matrix.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// NewScale builds a uniform scale matrix.
func NewScale(s float64) Matrix {
	return Matrix{s, 0, 0, s, 0, 0}
}

// NewRotation builds a counterclockwise rotation by an angle in degrees.
func NewRotation(angleDeg float64) Matrix {
	sin, cos := math.Sincos(Radians(angleDeg))
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// NewTranslation builds a translation matrix.
func NewTranslation(p Point) Matrix {
	return Matrix{1, 0, 0, 1, p.X, p.Y}
}

// Multiply returns the product m·n. Applied to a point, n acts first.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// Invert returns the inverse affine matrix, or Identity if the matrix is
// singular (zero scale collapses the plane and has no inverse).
func (m Matrix) Invert() Matrix {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -Epsilon && det < Epsilon {
		return Identity
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms a point by the matrix.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Translation returns the translation part of the matrix.
func (m Matrix) Translation() Point {
	return Point{X: m[4], Y: m[5]}
}

// Rotation returns the angle of the rotational sub-block in degrees. The
// result is not wrapped to [0, 360).
func (m Matrix) Rotation() float64 {
	return Degrees(math.Atan2(m[1], m[0]))
}

// Scaling returns the uniform scale factor as the magnitude of the first
// basis vector. Assumes no skew and no non-uniform scale.
func (m Matrix) Scaling() float64 {
	return math.Hypot(m[0], m[1])
}
