// A 2D collision package for interactive applications.
//
// This package models directed line segments, hierarchical spatial
// transforms, and polygonal hitboxes built from connected segments, and
// answers intersection, containment and closest-point queries over them.
// Shapes are authored as local point sequences and placed in the world
// through a Transform hierarchy; all queries run on the world-space
// segments.
//
// The containment queries are convex-only approximations; see Hitbox for
// details.
package hitbox2d

import "github.com/georgi-kanchev/TransformableHitbox2D/geometry"

type Point = geometry.Point
type Segment = geometry.Segment
type Matrix = geometry.Matrix
type Transform = geometry.Transform
type Hitbox = geometry.Hitbox

// NewTransform returns an orphan transform at the origin with angle 0 and
// scale 1. Build hierarchies with SetParent or Adopt.
func NewTransform() *Transform {
	return geometry.NewTransform()
}

// NewTransformAt returns an orphan transform with the given local pose.
func NewTransformAt(position Point, angleDeg, scale float64) *Transform {
	return geometry.NewTransformAt(position, angleDeg, scale)
}

// NewHitbox builds a hitbox from an ordered point sequence. The sequence is
// open; repeat the first point at the end to close a polygon.
func NewHitbox(points ...Point) *Hitbox {
	return geometry.NewHitbox(points...)
}
