package geometry

import "math"

// Point is a 2D coordinate. Points are plain values with no identity; all
// comparisons are by value.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Lerp interpolates linearly from a to b. The amount is not clamped, so
// values outside [0, 1] extrapolate past the endpoints.
func Lerp(a, b Point, amount float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*amount,
		Y: a.Y + (b.Y-a.Y)*amount,
	}
}

// Angle returns the direction from a to b in degrees, wrapped to [0, 360).
// This is the only angle in the package that wraps; pose angles accumulate
// freely.
func Angle(a, b Point) float64 {
	return WrapAngle(Degrees(math.Atan2(b.Y-a.Y, b.X-a.X)))
}

// DirectionFromAngle returns the unit vector pointing along an angle given
// in degrees.
func DirectionFromAngle(angleDeg float64) Point {
	sin, cos := math.Sincos(Radians(angleDeg))
	return Point{X: cos, Y: sin}
}
