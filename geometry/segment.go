package geometry

import "math"

// Segment is a directed line segment from A to B. A zero-length segment
// (A == B) is legal; its length is zero and its angle and direction are
// computed but meaningless.
type Segment struct {
	A, B Point
}

// Length returns the Euclidean distance between the endpoints.
func (s Segment) Length() float64 {
	return Distance(s.A, s.B)
}

// Angle returns the direction from A to B in degrees in [0, 360).
func (s Segment) Angle() float64 {
	return Angle(s.A, s.B)
}

// Direction returns the unit vector pointing from A toward B.
func (s Segment) Direction() Point {
	return DirectionFromAngle(s.Angle())
}

// Contains reports whether the point lies on the segment, within
// DefaultTolerance.
func (s Segment) Contains(p Point) bool {
	return s.ContainsWithin(p, DefaultTolerance)
}

// ContainsWithin reports whether the point lies on the segment: a point is
// on the segment when its distances to the two endpoints sum to the segment
// length. The comparison is strict, so a point whose distance sum is exactly
// length±tolerance is excluded.
func (s Segment) ContainsWithin(p Point, tolerance float64) bool {
	sum := Distance(s.A, p) + Distance(s.B, p)
	length := s.Length()
	return sum > length-tolerance && sum < length+tolerance
}

// Intersection returns the point where the two segments cross. The second
// result is false when the carrier lines are parallel or coincident, or when
// the line crossing falls outside either segment (per Contains, with the
// default tolerance).
//
// Each carrier line is expressed in general form a·x + b·y = c, so vertical
// and horizontal segments need no special handling; a zero determinant of
// the resulting 2x2 system is the degeneracy check.
func (s Segment) Intersection(other Segment) (Point, bool) {
	a1 := s.B.Y - s.A.Y
	b1 := s.A.X - s.B.X
	c1 := a1*s.A.X + b1*s.A.Y

	a2 := other.B.Y - other.A.Y
	b2 := other.A.X - other.B.X
	c2 := a2*other.A.X + b2*other.A.Y

	det := a1*b2 - a2*b1
	if det == 0 {
		return Point{}, false
	}

	p := Point{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}
	if !s.Contains(p) || !other.Contains(p) {
		return Point{}, false
	}
	return p, true
}

// Intersects reports whether the two segments cross.
func (s Segment) Intersects(other Segment) bool {
	_, ok := s.Intersection(other)
	return ok
}

// ClosestPoint returns the point on the segment nearest to p, by projecting
// p onto the carrier line and clamping to the segment. A zero-length
// segment returns A.
func (s Segment) ClosestPoint(p Point) Point {
	dx, dy := s.B.X-s.A.X, s.B.Y-s.A.Y
	magnitude := dx*dx + dy*dy
	if magnitude == 0 {
		return s.A
	}
	t := ((p.X-s.A.X)*dx + (p.Y-s.A.Y)*dy) / magnitude
	t = math.Max(0, math.Min(1, t))
	return Point{X: s.A.X + t*dx, Y: s.A.Y + t*dy}
}
