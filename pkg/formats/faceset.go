package formats

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/brushuv/pkg/math"
	"github.com/Faultbox/brushuv/pkg/texture"
	"github.com/Faultbox/brushuv/pkg/uv"
)

// Face set errors.
var (
	ErrNoFaces          = errors.New("face set has no faces")
	ErrDuplicateFace    = errors.New("duplicate face id")
	ErrDuplicateTexture = errors.New("duplicate texture id")
	ErrUnknownTexture   = errors.New("unknown texture id")
	ErrOffsetVariant    = errors.New("face offset must be exactly one of standard or valve")
	ErrVectorLength     = errors.New("wrong vector length")
	ErrNoPlane          = errors.New("face has no plane and fewer than three vertices")
)

// FaceSet is the YAML document exported by the geometry layer: resolved
// face vertices, planes and texture placement for a whole map.
type FaceSet struct {
	Textures []TextureEntry `yaml:"textures"`
	Faces    []FaceEntry    `yaml:"faces"`
}

// TextureEntry describes a texture. Width and Height are zero when the
// texture image is unknown.
type TextureEntry struct {
	ID     uint32 `yaml:"id"`
	Name   string `yaml:"name"`
	Width  uint32 `yaml:"width,omitempty"`
	Height uint32 `yaml:"height,omitempty"`
}

// Sized reports whether the texture has a known size.
func (t TextureEntry) Sized() bool {
	return t.Width > 0 && t.Height > 0
}

// FaceEntry describes one brush face.
type FaceEntry struct {
	ID       uint32      `yaml:"id"`
	Texture  uint32      `yaml:"texture"`
	Plane    *PlaneEntry `yaml:"plane,omitempty"` // Derived from the first three vertices when omitted
	Vertices [][]float64 `yaml:"vertices,flow"`
	Offset   OffsetEntry `yaml:"offset"`
	Rotation float64     `yaml:"rotation,omitempty"`
	Scale    []float64   `yaml:"scale,omitempty,flow"`
}

// PlaneEntry is a face plane in normal/distance form.
type PlaneEntry struct {
	Normal []float64 `yaml:"normal,flow"`
	Dist   float64   `yaml:"dist"`
}

// OffsetEntry holds exactly one of the two offset encodings.
type OffsetEntry struct {
	Standard *StandardEntry `yaml:"standard,omitempty"`
	Valve    *ValveEntry    `yaml:"valve,omitempty"`
}

// StandardEntry is a Standard pixel offset.
type StandardEntry struct {
	U float64 `yaml:"u"`
	V float64 `yaml:"v"`
}

// ValveEntry holds the Valve220 texture axes as [x, y, z, d].
type ValveEntry struct {
	U []float64 `yaml:"u,flow"`
	V []float64 `yaml:"v,flow"`
}

// FaceSetStats summarizes a face set.
type FaceSetStats struct {
	Faces         int
	Vertices      int
	Textures      int
	StandardFaces int
	ValveFaces    int
}

// ParseFaceSet parses and validates a face set document.
func ParseFaceSet(data []byte) (*FaceSet, error) {
	var fs FaceSet
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("decoding face set: %w", err)
	}
	if err := fs.Validate(); err != nil {
		return nil, err
	}
	return &fs, nil
}

// LoadFaceSet parses a face set from disk.
func LoadFaceSet(path string) (*FaceSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading face set: %w", err)
	}
	return ParseFaceSet(data)
}

// Validate checks ids, references and vector lengths.
func (fs *FaceSet) Validate() error {
	if len(fs.Faces) == 0 {
		return ErrNoFaces
	}

	textures := make(map[uint32]struct{}, len(fs.Textures))
	for _, t := range fs.Textures {
		if _, dup := textures[t.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateTexture, t.ID)
		}
		textures[t.ID] = struct{}{}
	}

	faces := make(map[uint32]struct{}, len(fs.Faces))
	for i := range fs.Faces {
		f := &fs.Faces[i]
		if _, dup := faces[f.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateFace, f.ID)
		}
		faces[f.ID] = struct{}{}

		if err := f.validate(textures); err != nil {
			return fmt.Errorf("face %d: %w", f.ID, err)
		}
	}
	return nil
}

func (f *FaceEntry) validate(textures map[uint32]struct{}) error {
	if _, ok := textures[f.Texture]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTexture, f.Texture)
	}
	if f.Plane != nil {
		if err := checkLen("plane normal", f.Plane.Normal, 3); err != nil {
			return err
		}
	} else if len(f.Vertices) < 3 {
		return ErrNoPlane
	}
	for i, v := range f.Vertices {
		if err := checkLen(fmt.Sprintf("vertex %d", i), v, 3); err != nil {
			return err
		}
	}
	if len(f.Scale) != 0 {
		if err := checkLen("scale", f.Scale, 2); err != nil {
			return err
		}
	}

	switch {
	case f.Offset.Standard != nil && f.Offset.Valve == nil:
	case f.Offset.Valve != nil && f.Offset.Standard == nil:
		if err := checkLen("valve u axis", f.Offset.Valve.U, 4); err != nil {
			return err
		}
		if err := checkLen("valve v axis", f.Offset.Valve.V, 4); err != nil {
			return err
		}
	default:
		return ErrOffsetVariant
	}
	return nil
}

func checkLen(what string, v []float64, n int) error {
	if len(v) != n {
		return fmt.Errorf("%w: %s has %d components, want %d", ErrVectorLength, what, len(v), n)
	}
	return nil
}

// Input converts a validated face set into projector input.
// Faces keep their document order.
func (fs *FaceSet) Input() uv.Input {
	in := uv.Input{
		Faces:          make([]uv.FaceID, 0, len(fs.Faces)),
		Textures:       make(texture.Names, len(fs.Textures)),
		FaceTextures:   make(map[uv.FaceID]texture.ID, len(fs.Faces)),
		FaceVertices:   make(map[uv.FaceID][]math.Vec3, len(fs.Faces)),
		FacePlanes:     make(map[uv.FaceID]math.Plane3, len(fs.Faces)),
		FaceTransforms: make(map[uv.FaceID]uv.Transform, len(fs.Faces)),
		TextureSizes:   make(texture.Sizes),
	}

	for _, t := range fs.Textures {
		id := texture.ID(t.ID)
		in.Textures[id] = t.Name
		if t.Sized() {
			in.TextureSizes[id] = texture.Size{Width: t.Width, Height: t.Height}
		}
	}

	for _, f := range fs.Faces {
		id := uv.FaceID(f.ID)
		in.Faces = append(in.Faces, id)
		in.FaceTextures[id] = texture.ID(f.Texture)

		vertices := make([]math.Vec3, len(f.Vertices))
		for i, v := range f.Vertices {
			vertices[i] = vec3(v)
		}
		in.FaceVertices[id] = vertices

		if f.Plane != nil {
			in.FacePlanes[id] = math.Plane3{Normal: vec3(f.Plane.Normal), Dist: f.Plane.Dist}
		} else {
			in.FacePlanes[id] = math.PlaneFromPoints(vertices[0], vertices[1], vertices[2])
		}

		in.FaceTransforms[id] = f.transform()
	}
	return in
}

func (f *FaceEntry) transform() uv.Transform {
	tr := uv.Transform{
		Rotation: f.Rotation,
		Scale:    math.Vec2{X: 1, Y: 1},
	}
	if len(f.Scale) == 2 {
		tr.Scale = math.Vec2{X: f.Scale[0], Y: f.Scale[1]}
	}

	if s := f.Offset.Standard; s != nil {
		tr.Offset = uv.StandardOffset{U: s.U, V: s.V}
	} else if v := f.Offset.Valve; v != nil {
		tr.Offset = uv.ValveOffset{U: texturePlane(v.U), V: texturePlane(v.V)}
	}
	return tr
}

// Stats summarizes the face set.
func (fs *FaceSet) Stats() FaceSetStats {
	s := FaceSetStats{
		Faces:    len(fs.Faces),
		Textures: len(fs.Textures),
	}
	for _, f := range fs.Faces {
		s.Vertices += len(f.Vertices)
		if f.Offset.Valve != nil {
			s.ValveFaces++
		} else {
			s.StandardFaces++
		}
	}
	return s
}

// UnknownTextures returns the textures that r has no size for, in document order.
func (fs *FaceSet) UnknownTextures(r *texture.Resolver) []TextureEntry {
	var unknown []TextureEntry
	for _, t := range fs.Textures {
		if !r.Known(texture.ID(t.ID)) {
			unknown = append(unknown, t)
		}
	}
	return unknown
}

func vec3(v []float64) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func texturePlane(v []float64) uv.TexturePlane {
	return uv.TexturePlane{X: v[0], Y: v[1], Z: v[2], D: v[3]}
}
