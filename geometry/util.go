package geometry

import "math"

// DefaultTolerance is the slack used by segment containment checks. It
// absorbs the floating point error accumulated by the sum-of-distances test;
// callers needing inclusive endpoint behavior should pad it.
const DefaultTolerance = 0.01

// Epsilon bounds float comparison error for exact-value helpers.
const Epsilon = 1e-9

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// WrapAngle normalizes an angle in degrees to [0, 360).
func WrapAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
