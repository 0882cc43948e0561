package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/brushuv/pkg/uv"
)

// UVTable is the YAML form of computed face UVs.
type UVTable struct {
	Faces []FaceUVEntry `yaml:"faces"`
}

// FaceUVEntry holds the UVs of one face in vertex order.
type FaceUVEntry struct {
	ID  uint32       `yaml:"id"`
	UVs [][2]float64 `yaml:"uvs,flow"`
}

// NewUVTable converts face UVs to table form, ordered by face id.
func NewUVTable(uvs uv.FaceUVs) UVTable {
	ids := uvs.Faces()
	table := UVTable{Faces: make([]FaceUVEntry, 0, len(ids))}
	for _, id := range ids {
		entry := FaceUVEntry{ID: uint32(id), UVs: make([][2]float64, len(uvs[id]))}
		for i, c := range uvs[id] {
			entry.UVs[i] = [2]float64{c.X, c.Y}
		}
		table.Faces = append(table.Faces, entry)
	}
	return table
}

// MarshalUVs encodes face UVs as a YAML UV table.
func MarshalUVs(uvs uv.FaceUVs) ([]byte, error) {
	data, err := yaml.Marshal(NewUVTable(uvs))
	if err != nil {
		return nil, fmt.Errorf("encoding UV table: %w", err)
	}
	return data, nil
}
