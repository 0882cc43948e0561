package math

import (
	"math"
	"testing"
)

func TestRotate2Degrees90(t *testing.T) {
	got := Rotate2Degrees(90).MulVec2(Vec2{1, 0})
	if !got.ApproxEqual(Vec2{0, 1}, 1e-12) {
		t.Errorf("Rotate 90: got %v, want (0, 1)", got)
	}
}

func TestRotate2Zero(t *testing.T) {
	v := Vec2{10, -20}
	if got := Rotate2(0).MulVec2(v); got != v {
		t.Errorf("Rotate 0: got %v, want %v", got, v)
	}
}

func TestRotate2PreservesLength(t *testing.T) {
	v := Vec2{3, 4}
	for _, deg := range []float64{15, 45, 135, 270, -33} {
		r := Rotate2Degrees(deg).MulVec2(v)
		if got := math.Hypot(r.X, r.Y); math.Abs(got-5) > 1e-12 {
			t.Errorf("rotate %v: length = %v, want 5", deg, got)
		}
	}
}
