package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Div(t *testing.T) {
	got := Vec2{10, -20}.Div(Vec2{256, 256})
	want := Vec2{0.0390625, -0.078125}
	if got != want {
		t.Errorf("Vec2.Div() = %v, want %v", got, want)
	}
}

func TestVec2ApproxEqual(t *testing.T) {
	if !(Vec2{1, 1}).ApproxEqual(Vec2{1 + 1e-12, 1 - 1e-12}, 1e-9) {
		t.Error("expected vectors within epsilon to be equal")
	}
	if (Vec2{1, 1}).ApproxEqual(Vec2{1.1, 1}, 1e-9) {
		t.Error("expected vectors outside epsilon to differ")
	}
}

func TestVec3Cross(t *testing.T) {
	got := AxisX.Cross(AxisY)
	if got != AxisZ {
		t.Errorf("Vec3.Cross() = %v, want %v", got, AxisZ)
	}
}

func TestVec3Dot(t *testing.T) {
	got := Vec3{1, 2, 3}.Dot(Vec3{4, -5, 6})
	if got != 12 {
		t.Errorf("Vec3.Dot() = %v, want 12", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	if n != (Vec3{0.6, 0, 0.8}) {
		t.Errorf("Vec3.Normalize() = %v, want (0.6, 0, 0.8)", n)
	}
	if !(Vec3{}).Normalize().IsZero() {
		t.Error("Vec3.Normalize() of zero vector should be zero")
	}
}

func TestVec3IsZero(t *testing.T) {
	if !(Vec3{}).IsZero() {
		t.Error("zero vector should report IsZero")
	}
	if (Vec3{0, 0, 1e-300}).IsZero() {
		t.Error("tiny vector should not report IsZero")
	}
}

func TestPlaneFromPoints(t *testing.T) {
	p := PlaneFromPoints(Vec3{0, 0, 8}, Vec3{1, 0, 8}, Vec3{0, 1, 8})
	if p.Normal != AxisZ {
		t.Errorf("normal = %v, want %v", p.Normal, AxisZ)
	}
	if p.Dist != 8 {
		t.Errorf("dist = %v, want 8", p.Dist)
	}

	// Reversed winding flips the normal.
	p = PlaneFromPoints(Vec3{0, 0, 8}, Vec3{0, 1, 8}, Vec3{1, 0, 8})
	if p.Normal != (Vec3{0, 0, -1}) || p.Dist != -8 {
		t.Errorf("reversed plane = %+v, want normal (0, 0, -1) dist -8", p)
	}
}

func TestPlaneFromCollinearPoints(t *testing.T) {
	p := PlaneFromPoints(Vec3{0, 0, 0}, Vec3{1, 1, 1}, Vec3{2, 2, 2})
	if !p.Normal.IsZero() {
		t.Errorf("collinear points should give a zero normal, got %v", p.Normal)
	}
}
