package uv

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/brushuv/pkg/math"
	"github.com/Faultbox/brushuv/pkg/texture"
)

// Input is the read-only face data of one geometry pass.
type Input struct {
	Faces          []FaceID
	Textures       texture.Names
	FaceTextures   map[FaceID]texture.ID
	FaceVertices   map[FaceID][]math.Vec3
	FacePlanes     map[FaceID]math.Plane3
	FaceTransforms map[FaceID]Transform
	TextureSizes   texture.Sizes
}

type options struct {
	workers      int
	strict       bool
	log          *zap.Logger
	resolverOpts []texture.ResolverOption
}

// Option configures Build.
type Option func(*options)

// WithWorkers limits the number of faces processed concurrently.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithStrict selects the failure policy. Strict mode (the default) aborts the
// pass on the first failing face. Otherwise failing faces are left out of the
// result and their errors are joined.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithLogger sets the logger for texture fallback warnings and pass summaries.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithResolverOptions passes options to the texture size resolver.
func WithResolverOptions(opts ...texture.ResolverOption) Option {
	return func(o *options) {
		o.resolverOpts = append(o.resolverOpts, opts...)
	}
}

// Build computes the UVs of every face in in.Faces.
//
// Faces are processed concurrently and independently. Each face's texture
// size is resolved once. A failing face is reported as a *FaceError.
func Build(ctx context.Context, in Input, opts ...Option) (FaceUVs, error) {
	o := options{strict: true, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	resolver := texture.NewResolver(in.Textures, in.TextureSizes,
		append([]texture.ResolverOption{texture.WithLogger(o.log)}, o.resolverOpts...)...)

	var (
		mu       sync.Mutex
		out      = make(FaceUVs, len(in.Faces))
		failures []*FaceError
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	seen := make(map[FaceID]struct{}, len(in.Faces))
	for _, id := range in.Faces {
		id := id // per-iteration copy (go < 1.22 loopvar semantics)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			uvs, err := buildFace(id, in, resolver)
			if err != nil {
				ferr := &FaceError{Face: id, Err: err}
				if o.strict {
					return ferr
				}
				o.log.Warn("skipping face", zap.Uint32("face", uint32(id)), zap.Error(err))

				mu.Lock()
				failures = append(failures, ferr)
				mu.Unlock()
				return nil
			}

			mu.Lock()
			out[id] = uvs
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o.log.Debug("built face UVs",
		zap.Int("faces", len(out)),
		zap.Int("failed", len(failures)),
		zap.Int("workers", o.workers),
	)

	slices.SortFunc(failures, func(a, b *FaceError) int {
		return cmp.Compare(a.Face, b.Face)
	})
	errs := make([]error, len(failures))
	for i, f := range failures {
		errs[i] = f
	}
	return out, errors.Join(errs...)
}

// buildFace computes the UVs of a single face.
func buildFace(id FaceID, in Input, resolver *texture.Resolver) ([]math.Vec2, error) {
	tex, ok := in.FaceTextures[id]
	if !ok {
		return nil, fmt.Errorf("%w: no texture", ErrMissingFaceData)
	}
	vertices, ok := in.FaceVertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: no vertices", ErrMissingFaceData)
	}
	plane, ok := in.FacePlanes[id]
	if !ok {
		return nil, fmt.Errorf("%w: no plane", ErrMissingFaceData)
	}
	tr, ok := in.FaceTransforms[id]
	if !ok {
		return nil, fmt.Errorf("%w: no texture transform", ErrMissingFaceData)
	}

	size := SizeVec(resolver.Resolve(tex))

	uvs := make([]math.Vec2, len(vertices))
	for i, v := range vertices {
		uv, err := VertexUV(v, plane, tr, size)
		if err != nil {
			return nil, err
		}
		uvs[i] = uv
	}
	return uvs, nil
}
