package geometry

import "math"

// ToroidalDelta returns the shortest signed displacement from -> to on a torus
// of size width x height. Each axis wraps by its own length, so the result is
// correct for non-square arenas too.
func ToroidalDelta(from, to Vector2D, width, height float64) Vector2D {
	return Vector2D{
		X: wrapAxis(to.X-from.X, width),
		Y: wrapAxis(to.Y-from.Y, height),
	}
}

// wrapAxis applies the minimum-image convention on one axis.
// A non-positive length disables wrapping on that axis.
func wrapAxis(d, length float64) float64 {
	if length <= 0 {
		return d
	}
	half := length / 2
	d = math.Mod(d, length)
	if d > half {
		d -= length
	} else if d < -half {
		d += length
	}
	return d
}
