// Package uv computes per-vertex texture coordinates for brush faces using
// the Standard (dominant axis) and Valve220 (basis vector) conventions.
package uv

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Faultbox/brushuv/pkg/math"
)

// Projection errors.
var (
	ErrZeroLengthNormal = errors.New("zero-length face normal")
	ErrUnknownOffset    = errors.New("unknown texture offset variant")
	ErrMissingFaceData  = errors.New("missing face data")
)

// FaceID identifies a brush face.
type FaceID uint32

// FaceError reports a face whose UVs could not be computed.
type FaceError struct {
	Face FaceID
	Err  error
}

func (e *FaceError) Error() string {
	return fmt.Sprintf("face %d: %v", e.Face, e.Err)
}

func (e *FaceError) Unwrap() error {
	return e.Err
}

// TexturePlane is a Valve220 texture axis: a direction plus an offset in pixels.
type TexturePlane struct {
	X, Y, Z float64
	D       float64
}

// Axis returns the direction part of the plane.
func (p TexturePlane) Axis() math.Vec3 {
	return math.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// Offset is the texture offset encoding of a face.
// It is either StandardOffset or ValveOffset, by value or by pointer.
type Offset interface {
	offset()
}

// StandardOffset holds scalar pixel offsets used with a dominant-axis projection.
type StandardOffset struct {
	U, V float64
}

// ValveOffset holds explicit U and V texture axes.
type ValveOffset struct {
	U, V TexturePlane
}

func (StandardOffset) offset() {}
func (ValveOffset) offset()    {}

// Transform is the texture placement of one face.
type Transform struct {
	Offset Offset
	// Rotation in degrees. Ignored by ValveOffset.
	Rotation float64
	Scale    math.Vec2
}

// FaceUVs maps faces to their UVs, one per vertex in vertex order.
type FaceUVs map[FaceID][]math.Vec2

// Faces returns the face ids in ascending order.
func (f FaceUVs) Faces() []FaceID {
	ids := make([]FaceID, 0, len(f))
	for id := range f {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
