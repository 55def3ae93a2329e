package geometry

import "github.com/pkg/errors"

// Transform is a node in a parent/child pose hierarchy. Each node holds a
// position, angle (degrees) and uniform scale relative to its parent, and
// caches the composed world matrix. Every local mutation recomputes the
// cached matrix of this node and then of every descendant, parent before
// child, so the world getters are always consistent with the current pose of
// the whole ancestor chain.
//
// A hierarchy is a shared mutable graph with no internal locking; confine
// each hierarchy to a single goroutine.
type Transform struct {
	localPosition Point
	localAngle    float64
	localScale    float64

	parent   *Transform
	children []*Transform

	world Matrix
}

// NewTransform returns an orphan node at the origin with angle 0 and scale 1.
func NewTransform() *Transform {
	return NewTransformAt(Point{}, 0, 1)
}

// NewTransformAt returns an orphan node with the given local pose.
func NewTransformAt(position Point, angleDeg, scale float64) *Transform {
	t := &Transform{
		localPosition: position,
		localAngle:    angleDeg,
		localScale:    scale,
	}
	t.updateWorld()
	return t
}

// LocalPosition returns the position relative to the parent.
func (t *Transform) LocalPosition() Point { return t.localPosition }

// LocalAngle returns the angle relative to the parent, in degrees. The value
// is whatever was assigned; it is not wrapped to [0, 360).
func (t *Transform) LocalAngle() float64 { return t.localAngle }

// LocalScale returns the uniform scale relative to the parent.
func (t *Transform) LocalScale() float64 { return t.localScale }

// SetLocalPosition moves the node relative to its parent.
func (t *Transform) SetLocalPosition(p Point) {
	t.localPosition = p
	t.updateWorld()
}

// SetLocalAngle rotates the node relative to its parent, in degrees.
func (t *Transform) SetLocalAngle(angleDeg float64) {
	t.localAngle = angleDeg
	t.updateWorld()
}

// SetLocalScale scales the node relative to its parent.
func (t *Transform) SetLocalScale(scale float64) {
	t.localScale = scale
	t.updateWorld()
}

// Position returns the node's position in world space.
func (t *Transform) Position() Point { return t.world.Translation() }

// Angle returns the node's world angle in degrees, extracted from the world
// matrix. Like LocalAngle, it is not wrapped to [0, 360).
func (t *Transform) Angle() float64 { return t.world.Rotation() }

// Scale returns the node's world scale.
func (t *Transform) Scale() float64 { return t.world.Scaling() }

// Direction returns the unit vector the node is facing in world space.
func (t *Transform) Direction() Point { return DirectionFromAngle(t.Angle()) }

// SetPosition moves the node to a world-space position by recomputing its
// local position through the parent's inverse world matrix.
func (t *Transform) SetPosition(p Point) {
	t.SetLocalPosition(t.parentWorld().Invert().Apply(p))
}

// SetAngle rotates the node to a world-space angle in degrees.
func (t *Transform) SetAngle(angleDeg float64) {
	t.SetLocalAngle(angleDeg - t.parentWorld().Rotation())
}

// SetScale scales the node to a world-space scale. Under a zero-scale
// ancestor no local scale can reach a nonzero world scale; the value is
// assigned locally as-is in that case.
func (t *Transform) SetScale(scale float64) {
	if parentScale := t.parentWorld().Scaling(); parentScale != 0 {
		scale /= parentScale
	}
	t.SetLocalScale(scale)
}

// Parent returns the node's parent, or nil for a root.
func (t *Transform) Parent() *Transform { return t.parent }

// Children returns a copy of the node's child list.
func (t *Transform) Children() []*Transform {
	return append([]*Transform(nil), t.children...)
}

// SetParent reparents the node, keeping its world position, angle and scale
// unchanged by recomputing the local pose against the new parent. Passing
// nil detaches the node. It fails without mutating anything when the new
// parent is the node itself or one of its descendants, since either would
// create a cycle in the ancestor chain.
func (t *Transform) SetParent(parent *Transform) error {
	if parent == t.parent {
		return nil
	}
	if parent == t {
		return errors.New("transform cannot be its own parent")
	}
	for ancestor := parent; ancestor != nil; ancestor = ancestor.parent {
		if ancestor == t {
			return errors.New("new parent is a descendant of this transform")
		}
	}

	position, angle, scale := t.Position(), t.Angle(), t.Scale()

	if t.parent != nil {
		t.parent.removeChild(t)
	}
	t.parent = parent
	if parent != nil {
		parent.children = append(parent.children, t)
	}

	parentWorld := t.parentWorld()
	t.localPosition = parentWorld.Invert().Apply(position)
	t.localAngle = angle - parentWorld.Rotation()
	if parentScale := parentWorld.Scaling(); parentScale != 0 {
		t.localScale = scale / parentScale
	} else {
		t.localScale = scale
	}
	t.updateWorld()
	return nil
}

// Adopt makes the node the parent of each given child, with the same world
// pose preservation and cycle rejection as SetParent. It stops at the first
// rejected child.
func (t *Transform) Adopt(children ...*Transform) error {
	for _, child := range children {
		if err := child.SetParent(t); err != nil {
			return errors.Wrap(err, "adopt")
		}
	}
	return nil
}

// LocalToWorld maps a point from this node's local space to world space.
func (t *Transform) LocalToWorld(p Point) Point {
	return t.world.Apply(p)
}

// WorldToLocal maps a world-space point into this node's local space.
func (t *Transform) WorldToLocal(p Point) Point {
	return t.world.Invert().Apply(p)
}

// LocalToLocalOf maps a point from this node's local space into another
// node's local space.
func (t *Transform) LocalToLocalOf(other *Transform, p Point) Point {
	return other.WorldToLocal(t.LocalToWorld(p))
}

func (t *Transform) removeChild(child *Transform) {
	for i, c := range t.children {
		if c == child {
			t.children = append(t.children[:i], t.children[i+1:]...)
			return
		}
	}
}

func (t *Transform) parentWorld() Matrix {
	if t.parent == nil {
		return Identity
	}
	return t.parent.world
}

// updateWorld recomputes the cached world matrix for this node and then for
// every descendant, parent before child, since each child's world matrix
// depends on its parent's.
func (t *Transform) updateWorld() {
	local := NewTranslation(t.localPosition).
		Multiply(NewRotation(t.localAngle)).
		Multiply(NewScale(t.localScale))
	t.world = t.parentWorld().Multiply(local)
	for _, child := range t.children {
		child.updateWorld()
	}
}
