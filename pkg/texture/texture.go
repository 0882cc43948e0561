// Package texture resolves the pixel size of face textures.
package texture

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Default fallback values.
const (
	DefaultWidth  = 256
	DefaultHeight = 256

	// EmptyMarker appears in the names of placeholder textures that are
	// expected to have no image.
	EmptyMarker = "TB_empty"
)

// ID identifies a texture within a map.
type ID uint32

// Size is a texture size in pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Names maps texture ids to display names.
type Names map[ID]string

// Sizes maps texture ids to known pixel sizes.
type Sizes map[ID]Size

// Name returns the display name of id, or a synthesized one if unnamed.
func (n Names) Name(id ID) string {
	if name, ok := n[id]; ok {
		return name
	}
	return fmt.Sprintf("texture#%d", id)
}

// Resolver looks up texture sizes, falling back to a default size.
// It is safe for concurrent use.
type Resolver struct {
	names       Names
	sizes       Sizes
	defaultSize Size
	emptyMarker string
	log         *zap.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithDefaultSize overrides the 256x256 fallback size.
func WithDefaultSize(size Size) ResolverOption {
	return func(r *Resolver) {
		r.defaultSize = size
	}
}

// WithEmptyMarker overrides the placeholder name marker.
func WithEmptyMarker(marker string) ResolverOption {
	return func(r *Resolver) {
		r.emptyMarker = marker
	}
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(log *zap.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// NewResolver creates a resolver over the given name and size tables.
// Both tables are read, never written.
func NewResolver(names Names, sizes Sizes, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		names:       names,
		sizes:       sizes,
		defaultSize: Size{Width: DefaultWidth, Height: DefaultHeight},
		emptyMarker: EmptyMarker,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultSize returns the fallback size.
func (r *Resolver) DefaultSize() Size {
	return r.defaultSize
}

// Known reports whether id has an entry in the size table.
func (r *Resolver) Known(id ID) bool {
	_, ok := r.sizes[id]
	return ok
}

// IsPlaceholder reports whether id names a placeholder texture.
func (r *Resolver) IsPlaceholder(id ID) bool {
	return r.emptyMarker != "" && strings.Contains(r.names[id], r.emptyMarker)
}

// Resolve returns the size of texture id. Unknown textures get the default
// size and, unless they are placeholders, a warning.
func (r *Resolver) Resolve(id ID) Size {
	if size, ok := r.sizes[id]; ok {
		return size
	}

	if !r.IsPlaceholder(id) {
		r.log.Warn("texture not found, generating UV with default size",
			zap.String("texture", r.names.Name(id)),
			zap.Uint32("width", r.defaultSize.Width),
			zap.Uint32("height", r.defaultSize.Height),
		)
	}
	return r.defaultSize
}
