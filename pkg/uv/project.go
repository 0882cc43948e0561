package uv

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/brushuv/pkg/math"
	"github.com/Faultbox/brushuv/pkg/texture"
)

// VertexUV computes the UV of vertex for a face with the given plane and
// texture placement.
func VertexUV(vertex math.Vec3, plane math.Plane3, tr Transform, size math.Vec2) (math.Vec2, error) {
	switch off := tr.Offset.(type) {
	case StandardOffset:
		return StandardUV(vertex, plane, off.U, off.V, tr.Rotation, tr.Scale, size)
	case *StandardOffset:
		if off != nil {
			return StandardUV(vertex, plane, off.U, off.V, tr.Rotation, tr.Scale, size)
		}
	case ValveOffset:
		return ValveUV(vertex, off.U, off.V, tr.Scale, size), nil
	case *ValveOffset:
		if off != nil {
			return ValveUV(vertex, off.U, off.V, tr.Scale, size), nil
		}
	}
	return math.Vec2{}, fmt.Errorf("%w: %T", ErrUnknownOffset, tr.Offset)
}

// StandardUV projects vertex onto the world plane closest to the face plane,
// rotates it by rotation degrees, and applies scale, size and pixel offsets.
//
// Ties between axes resolve in the order up (Z), right (Y), forward (X).
func StandardUV(vertex math.Vec3, plane math.Plane3, uOffset, vOffset, rotation float64, scale, size math.Vec2) (math.Vec2, error) {
	if plane.Normal.IsZero() {
		return math.Vec2{}, ErrZeroLengthNormal
	}

	du := gomath.Abs(plane.Normal.Dot(math.AxisZ))
	dr := gomath.Abs(plane.Normal.Dot(math.AxisY))
	df := gomath.Abs(plane.Normal.Dot(math.AxisX))

	var p math.Vec2
	switch {
	case du >= dr && du >= df:
		p = math.Vec2{X: vertex.X, Y: -vertex.Y}
	case dr >= du && dr >= df:
		p = math.Vec2{X: vertex.X, Y: -vertex.Z}
	case df >= du && df >= dr:
		p = math.Vec2{X: vertex.Y, Y: -vertex.Z}
	default:
		// NaN components compare false everywhere.
		return math.Vec2{}, ErrZeroLengthNormal
	}

	uv := math.Rotate2Degrees(rotation).MulVec2(p)
	uv = uv.Div(size).Div(scale)

	return uv.Add(math.Vec2{X: uOffset / size.X, Y: vOffset / size.Y}), nil
}

// ValveUV projects vertex onto the U and V texture axes and applies scale,
// size and the axis offsets. Zero-length axes yield degenerate UVs, not errors.
func ValveUV(vertex math.Vec3, u, v TexturePlane, scale, size math.Vec2) math.Vec2 {
	uv := math.Vec2{X: u.Axis().Dot(vertex), Y: v.Axis().Dot(vertex)}
	uv = uv.Div(size).Div(scale)

	return uv.Add(math.Vec2{X: u.D / size.X, Y: v.D / size.Y})
}

// SizeVec converts a texture size to the vector form used by the projectors.
func SizeVec(s texture.Size) math.Vec2 {
	return math.Vec2{X: float64(s.Width), Y: float64(s.Height)}
}
