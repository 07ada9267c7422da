package geometry

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Unit returns the unit vector of v, or the zero vector when v has no direction.
func Unit(v Vector2D) Vector2D {
	return v.Normalize()
}

// AngleBetween returns the signed angle in (-Pi, Pi] that takes v1 onto v2.
//
// The magnitude is acos of the clamped dot product of the unit vectors; the
// sign is negative when v1 x v2 < 0. Either vector being shorter than Epsilon
// makes the angle undefined and NaN is returned: callers treat NaN as
// "no force, no turn".
func AngleBetween(v1, v2 Vector2D) float64 {
	if v1.IsZero() || v2.IsZero() {
		return math.NaN()
	}
	cos := Unit(v1).Dot(Unit(v2))
	angle := math.Acos(Clamp(cos, -1, 1))
	if v1.Cross(v2) < 0 {
		return -angle
	}
	return angle
}

// SigmoidThreshold is a smooth 0..1 gate centred on x0.
// With a negative steepness it is ~1 below x0 and decays to ~0 above it.
func SigmoidThreshold(x, x0, steepness float64) float64 {
	return 0.5 * (math.Tanh(steepness*(x-x0)) + 1)
}

// NormalizeAngle maps any angle into [0, 2Pi).
// Non-finite input maps to 0 so a degenerate angle can never poison an agent.
func NormalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// Mod of a value just below 0 can round back up to exactly 2Pi.
	if a >= TwoPi {
		a = 0
	}
	return a
}

// HeadingVector returns the screen-space unit heading for an orientation:
// 0 faces right, Pi/2 faces up.
func HeadingVector(orientation float64) Vector2D {
	return Vector2D{X: math.Cos(orientation), Y: -math.Sin(orientation)}
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
