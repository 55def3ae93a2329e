package geometry

import "math"

// rayTargetScale extrapolates far behind the first segment's start point to
// produce a point guaranteed to be outside any reasonably sized hitbox. The
// ray cast for containment runs from the query point to that target.
const rayTargetScale = -50

// Hitbox is an ordered run of segments built from a point sequence. The
// sequence is open: repeat the first point at the end to close a polygon.
//
// LocalLines is fixed at construction. Lines is the world-space copy,
// replaced wholesale by ApplyTransform; until a transform is applied it
// equals LocalLines, as if transformed by the identity.
//
// The containment queries are parity tests against a fixed outside point.
// They are only reliable for convex, non-self-intersecting outlines; concave
// shapes may misreport containment. This is a documented limitation, not a
// bug.
type Hitbox struct {
	LocalLines []Segment
	Lines      []Segment
}

// NewHitbox builds a hitbox from an ordered point sequence. N points produce
// N-1 segments; fewer than two points produce none.
func NewHitbox(points ...Point) *Hitbox {
	hb := &Hitbox{}
	for i := 0; i+1 < len(points); i++ {
		hb.LocalLines = append(hb.LocalLines, Segment{A: points[i], B: points[i+1]})
	}
	hb.Lines = append([]Segment(nil), hb.LocalLines...)
	return hb
}

// ApplyTransform replaces the world-space lines by mapping every local
// endpoint through the node's current pose. The hitbox does not track the
// node; call this again after mutating the pose to stay in sync.
func (hb *Hitbox) ApplyTransform(t *Transform) {
	lines := make([]Segment, len(hb.LocalLines))
	for i, s := range hb.LocalLines {
		lines[i] = Segment{A: t.LocalToWorld(s.A), B: t.LocalToWorld(s.B)}
	}
	hb.Lines = lines
}

// Intersections returns every crossing point between the two hitboxes'
// world-space lines. The order follows this hitbox's segments (outer loop),
// then the other's; it is deterministic but not sorted along either
// boundary.
func (hb *Hitbox) Intersections(other *Hitbox) []Point {
	var points []Point
	for _, s := range hb.Lines {
		for _, o := range other.Lines {
			if p, ok := s.Intersection(o); ok {
				points = append(points, p)
			}
		}
	}
	return points
}

// Intersects reports whether any pair of world-space lines crosses.
func (hb *Hitbox) Intersects(other *Hitbox) bool {
	for _, s := range hb.Lines {
		for _, o := range other.Lines {
			if s.Intersects(o) {
				return true
			}
		}
	}
	return false
}

// ContainsPoint reports whether the point falls inside the hitbox, by
// counting how many lines a ray from the point to a fixed outside point
// crosses; an odd count means inside. Hitboxes with fewer than three lines
// contain nothing. Only reliable for convex outlines.
func (hb *Hitbox) ContainsPoint(p Point) bool {
	if len(hb.Lines) < 3 {
		return false
	}
	first := hb.Lines[0]
	ray := Segment{A: p, B: Lerp(first.A, first.B, rayTargetScale)}
	crossings := 0
	for _, s := range hb.Lines {
		if s.Intersects(ray) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// ContainsHitbox approximates whether one hitbox encloses the other: for
// each pair of lines, at least one of the four endpoints must be inside the
// opposite hitbox. This is a heuristic over segment endpoints, not a
// rigorous polygon-in-polygon test, and it inherits the convex-only
// limitation of ContainsPoint.
func (hb *Hitbox) ContainsHitbox(other *Hitbox) bool {
	for _, s := range hb.Lines {
		for _, o := range other.Lines {
			if !hb.ContainsPoint(o.A) && !hb.ContainsPoint(o.B) &&
				!other.ContainsPoint(s.A) && !other.ContainsPoint(s.B) {
				return false
			}
		}
	}
	return true
}

// Overlaps reports whether the hitboxes touch: either their outlines cross
// or one encloses the other.
func (hb *Hitbox) Overlaps(other *Hitbox) bool {
	return hb.Intersects(other) || hb.ContainsHitbox(other)
}

// ClosestPoint returns the point on the hitbox outline nearest to p, the
// global minimum over the per-segment closest points. Ties go to the
// earliest segment. A hitbox with no lines returns the zero point.
func (hb *Hitbox) ClosestPoint(p Point) Point {
	var best Point
	bestDistance := math.Inf(1)
	for _, s := range hb.Lines {
		candidate := s.ClosestPoint(p)
		if d := Distance(p, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}
