package geometry

import (
	"math"
	"testing"
)

// floatEquals compares scalars with Epsilon tolerance.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func vecEquals(a, b Vector2D) bool {
	return floatEquals(a.X, b.X) && floatEquals(a.Y, b.Y)
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	if got := v.String(); got != "(1.23, 5.68)" {
		t.Errorf("Vector2D.String() = %q; want %q", got, "(1.23, 5.68)")
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	tests := []struct {
		name string
		got  Vector2D
		want Vector2D
	}{
		{"Add", v1.Add(v2), Vector2D{4, 6}},
		{"Sub", v1.Sub(v2), Vector2D{-2, -2}},
		{"Mul", v1.Mul(2), Vector2D{2, 4}},
		{"Mul by -1", v1.Mul(-1), Vector2D{-1, -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecEquals(tt.got, tt.want) {
				t.Errorf("%s = %v; want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestVector_Products(t *testing.T) {
	x := Vector2D{1, 0}
	y := Vector2D{0, 1}

	if got := x.Dot(y); got != 0 {
		t.Errorf("Dot orthogonal = %v; want 0", got)
	}
	if got := x.Dot(Vector2D{2, 0}); got != 2 {
		t.Errorf("Dot parallel = %v; want 2", got)
	}
	if got := x.Cross(y); got != 1 {
		t.Errorf("Cross X,Y = %v; want 1", got)
	}
	if got := y.Cross(x); got != -1 {
		t.Errorf("Cross Y,X = %v; want -1", got)
	}
}

func TestVector_Magnitude(t *testing.T) {
	v := Vector2D{3, 4}

	if got := v.Len(); got != 5 {
		t.Errorf("Len = %v; want 5", got)
	}
	if got := v.LenSqr(); got != 25 {
		t.Errorf("LenSqr = %v; want 25", got)
	}

	n := v.Normalize()
	if !vecEquals(n, Vector2D{0.6, 0.8}) || !floatEquals(n.Len(), 1) {
		t.Errorf("Normalize = %v; want (0.60, 0.80)", n)
	}

	zero := Vector2D{}
	if got := zero.Normalize(); got != zero {
		t.Errorf("Normalize(0,0) = %v; want (0,0)", got)
	}
	if !zero.IsZero() || v.IsZero() {
		t.Error("IsZero misclassified a vector")
	}
	if !(Vector2D{Epsilon / 2, 0}).IsZero() {
		t.Error("a vector shorter than Epsilon has no direction")
	}
}

func TestVector_IsFinite(t *testing.T) {
	if !(Vector2D{1, 2}).IsFinite() {
		t.Error("IsFinite(1,2) = false")
	}
	if (Vector2D{math.NaN(), 0}).IsFinite() || (Vector2D{0, math.Inf(-1)}).IsFinite() {
		t.Error("IsFinite accepted a non-finite vector")
	}
}
