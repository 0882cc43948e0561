package math

import "math"

// Mat2 is a 2x2 matrix in column-major order.
// Layout: [m0 m2]
//
//	[m1 m3]
type Mat2 [4]float64

// Rotate2 returns a counter-clockwise rotation matrix.
// angle is in radians.
func Rotate2(angle float64) Mat2 {
	s, c := math.Sincos(angle)
	return Mat2{
		c, s,
		-s, c,
	}
}

// Rotate2Degrees returns Rotate2 for an angle given in degrees.
func Rotate2Degrees(degrees float64) Mat2 {
	return Rotate2(degrees * math.Pi / 180)
}

// MulVec2 transforms v by m.
func (m Mat2) MulVec2(v Vec2) Vec2 {
	return Vec2{
		m[0]*v.X + m[2]*v.Y,
		m[1]*v.X + m[3]*v.Y,
	}
}
