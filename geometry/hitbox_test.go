package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squarePoints() []Point {
	return []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
}

func TestNewHitbox(t *testing.T) {
	t.Run("n points make n-1 lines", func(t *testing.T) {
		hb := NewHitbox(squarePoints()...)
		assert.Len(t, hb.LocalLines, 4)
		assert.Len(t, hb.Lines, 4)
	})

	t.Run("degenerate inputs make no lines", func(t *testing.T) {
		assert.Empty(t, NewHitbox().LocalLines)
		assert.Empty(t, NewHitbox(Point{1, 1}).LocalLines)
	})

	t.Run("world lines start as the local lines", func(t *testing.T) {
		hb := NewHitbox(squarePoints()...)
		assert.Equal(t, hb.LocalLines, hb.Lines)
	})
}

func TestHitboxApplyTransform(t *testing.T) {
	hb := NewHitbox(Point{0, 0}, Point{1, 0})
	node := NewTransformAt(Point{10, 0}, 0, 2)
	hb.ApplyTransform(node)

	require.Len(t, hb.Lines, 1)
	assert.InDelta(t, 10, hb.Lines[0].A.X, Epsilon)
	assert.InDelta(t, 0, hb.Lines[0].A.Y, Epsilon)
	assert.InDelta(t, 12, hb.Lines[0].B.X, Epsilon)
	assert.InDelta(t, 0, hb.Lines[0].B.Y, Epsilon)

	// Local lines are untouched
	assert.Equal(t, Segment{Point{0, 0}, Point{1, 0}}, hb.LocalLines[0])

	// Applying again with a moved pose replaces the lines wholesale
	node.SetLocalPosition(Point{0, 0})
	hb.ApplyTransform(node)
	assert.InDelta(t, 0, hb.Lines[0].A.X, Epsilon)
	assert.InDelta(t, 2, hb.Lines[0].B.X, Epsilon)
}

func TestHitboxContainsPoint(t *testing.T) {
	square := NewHitbox(squarePoints()...)

	t.Run("inside", func(t *testing.T) {
		assert.True(t, square.ContainsPoint(Point{5, 5}))
		assert.True(t, square.ContainsPoint(Point{1, 9}))
	})

	t.Run("outside", func(t *testing.T) {
		assert.False(t, square.ContainsPoint(Point{15, 15}))
		assert.False(t, square.ContainsPoint(Point{-3, 5}))
	})

	t.Run("fewer than three lines contain nothing", func(t *testing.T) {
		open := NewHitbox(Point{0, 0}, Point{10, 0}, Point{10, 10})
		assert.False(t, open.ContainsPoint(Point{5, 1}))
	})
}

func TestHitboxIntersections(t *testing.T) {
	square := NewHitbox(squarePoints()...)
	other := NewHitbox(squarePoints()...)
	other.ApplyTransform(NewTransformAt(Point{5, 5}, 0, 1))

	points := square.Intersections(other)
	require.Len(t, points, 2)
	// Iteration order: this hitbox's lines first, so the right edge crossing
	// comes before the top edge crossing.
	assert.InDelta(t, 10, points[0].X, 1e-9)
	assert.InDelta(t, 5, points[0].Y, 1e-9)
	assert.InDelta(t, 5, points[1].X, 1e-9)
	assert.InDelta(t, 10, points[1].Y, 1e-9)
}

func TestHitboxIntersects(t *testing.T) {
	square := NewHitbox(squarePoints()...)

	t.Run("translated far apart", func(t *testing.T) {
		other := NewHitbox(squarePoints()...)
		other.ApplyTransform(NewTransformAt(Point{20, 0}, 0, 1))
		assert.False(t, square.Intersects(other))
		assert.Empty(t, square.Intersections(other))
		assert.False(t, square.Overlaps(other))
	})

	t.Run("translated into overlap", func(t *testing.T) {
		other := NewHitbox(squarePoints()...)
		other.ApplyTransform(NewTransformAt(Point{5, 0}, 0, 1))
		assert.True(t, square.Intersects(other))
		assert.True(t, square.Overlaps(other))
	})
}

func TestHitboxContainsHitbox(t *testing.T) {
	square := NewHitbox(squarePoints()...)

	t.Run("enclosed hitbox", func(t *testing.T) {
		inner := NewHitbox(Point{2, 2}, Point{8, 2}, Point{8, 8}, Point{2, 8}, Point{2, 2})
		assert.True(t, square.ContainsHitbox(inner))
		// The test is mutual, so the enclosed side agrees
		assert.True(t, inner.ContainsHitbox(square))
		assert.True(t, square.Overlaps(inner))
		assert.False(t, square.Intersects(inner))
	})

	t.Run("disjoint hitbox", func(t *testing.T) {
		far := NewHitbox(squarePoints()...)
		far.ApplyTransform(NewTransformAt(Point{30, 30}, 0, 1))
		assert.False(t, square.ContainsHitbox(far))
		assert.False(t, square.Overlaps(far))
	})

	t.Run("partial overlap is not containment", func(t *testing.T) {
		shifted := NewHitbox(squarePoints()...)
		shifted.ApplyTransform(NewTransformAt(Point{5, 5}, 0, 1))
		assert.False(t, square.ContainsHitbox(shifted))
		// But it still overlaps through the outline crossing
		assert.True(t, square.Overlaps(shifted))
	})
}

func TestHitboxClosestPoint(t *testing.T) {
	square := NewHitbox(squarePoints()...)

	p := square.ClosestPoint(Point{5, -3})
	assert.InDelta(t, 5, p.X, Epsilon)
	assert.InDelta(t, 0, p.Y, Epsilon)

	p = square.ClosestPoint(Point{12, 5})
	assert.InDelta(t, 10, p.X, Epsilon)
	assert.InDelta(t, 5, p.Y, Epsilon)

	// An interior query still lands on the outline
	p = square.ClosestPoint(Point{1, 5})
	assert.InDelta(t, 0, p.X, Epsilon)
	assert.InDelta(t, 5, p.Y, Epsilon)
}

func TestHitboxWithRotatedTransform(t *testing.T) {
	hb := NewHitbox(squarePoints()...)
	node := NewTransformAt(Point{0, 0}, 45, 1)
	hb.ApplyTransform(node)

	// Rotation about the origin leaves the corner at (0, 0) and swings the
	// opposite corner onto the y axis.
	assert.InDelta(t, 0, hb.Lines[0].A.X, 1e-9)
	assert.InDelta(t, 0, hb.Lines[0].A.Y, 1e-9)
	assert.True(t, hb.ContainsPoint(Point{0, 7}))
	assert.False(t, hb.ContainsPoint(Point{8, 2}))
}

func TestHitboxFixtures(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		square := LoadFixture("square")
		assert.Len(t, square.Lines, 4)
		assert.True(t, square.ContainsPoint(Point{5, 5}))
		assert.False(t, square.ContainsPoint(Point{15, 15}))
	})

	t.Run("triangle", func(t *testing.T) {
		tri := LoadFixture("triangle")
		assert.Len(t, tri.Lines, 3)
		assert.True(t, tri.ContainsPoint(Point{5, 3}))
		assert.False(t, tri.ContainsPoint(Point{0, 7}))
	})

	t.Run("chevron", func(t *testing.T) {
		// Concave outline. Containment on concave shapes is approximate (the
		// parity ray is cast to a fixed target), so only clearly convex
		// regions are asserted here.
		chev := LoadFixture("chevron")
		assert.Len(t, chev.Lines, 5)
		assert.True(t, chev.ContainsPoint(Point{2, 5}))
		assert.False(t, chev.ContainsPoint(Point{12, 5}))
	})
}
