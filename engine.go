package delaunay

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/osuushi/delaunay/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Engine holds a region, an ordered vertex set, and the triangles last computed
// from them. The caller owns the order of calls: nothing is recomputed until
// CreateDelaunay is called.
//
// An Engine is not safe for concurrent use. Separate engines share no state
// and can be used in parallel.
type Engine struct {
	region    Region
	vertices  []Point
	triangles TriangleList

	config Config
	rng    *rand.Rand
	logger *zap.Logger
}

type Option func(*Engine)

// Use config instead of DefaultConfig. Invalid fields fall back to their
// defaults, with a warning.
func WithConfig(config Config) Option {
	return func(e *Engine) {
		e.config = config
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Use rng for sampling instead of a source seeded from the config
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

func WithVertices(vertices []Point) Option {
	return func(e *Engine) {
		e.SetVertices(vertices)
	}
}

func New(width, height float64, opts ...Option) *Engine {
	e := &Engine{
		region: Region{Width: width, Height: height},
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if err := e.config.Validate(); err != nil {
		e.config = e.config.withDefaults()
		e.logger.Warn("invalid config, using defaults for invalid fields", zap.Error(err))
	}
	if e.rng == nil {
		seed := e.config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
	return e
}

// Resize the region. A zero dimension keeps its current value. Existing
// vertices are not checked against the new bounds.
func (e *Engine) SetSize(width, height float64) *Engine {
	if width != 0 {
		e.region.Width = width
	}
	if height != 0 {
		e.region.Height = height
	}
	return e
}

func (e *Engine) Size() Region {
	return e.region
}

func (e *Engine) Config() Config {
	return e.config
}

// Replace the vertex set. The slice is copied.
func (e *Engine) SetVertices(vertices []Point) *Engine {
	e.vertices = append([]Point(nil), vertices...)
	return e
}

func (e *Engine) AddVertex(p Point) *Engine {
	e.vertices = append(e.vertices, p)
	return e
}

func (e *Engine) Vertices() []Point {
	return append([]Point(nil), e.vertices...)
}

func (e *Engine) RemoveVertex(index int) *Engine {
	return e.RemoveVertices(index, 1)
}

// Remove count vertices starting at index. A count of zero or less removes
// one. A negative index counts back from the end, and ranges running past
// either end are clamped.
func (e *Engine) RemoveVertices(index, count int) *Engine {
	n := len(e.vertices)
	if count <= 0 {
		count = 1
	}
	if index < 0 {
		index = n + index
		if index < 0 {
			index = 0
		}
	}
	if index >= n {
		return e
	}
	end := index + count
	if end > n || end < index {
		end = n
	}
	e.vertices = append(e.vertices[:index], e.vertices[end:]...)
	return e
}

func (e *Engine) ClearVertices() *Engine {
	e.vertices = nil
	return e
}

// Forget the last triangulation. The vertex set is kept.
func (e *Engine) RemoveDelaunay() *Engine {
	e.triangles = nil
	return e
}

// Back to an empty, zero sized engine. Config, random source and logger are
// kept.
func (e *Engine) Reset() *Engine {
	e.region = Region{}
	e.vertices = nil
	e.triangles = nil
	return e
}

// The triangles from the last successful CreateDelaunay
func (e *Engine) Triangles() TriangleList {
	return append(TriangleList(nil), e.triangles...)
}

// Vertices along the region's border, roughly interval apart, starting with
// the four corners. The engine is left untouched.
func (e *Engine) OuterVertices(interval float64, randomized bool) []Point {
	return internal.OuterVertices(e.region, interval, randomized, e.rng)
}

// Replace the vertex set with random interior points at least interval apart.
// The current vertices are kept and sampled around; if there are none, the
// region's jittered outer vertices are used as a starting point. Sampling
// stops after Config.MaxAttempts rejections in a row, so the result can be
// sparse. That is not an error.
func (e *Engine) RandomVertices(interval float64) error {
	if !e.region.Valid() {
		return errors.Wrapf(ErrInvalidRegion, "cannot sample region %s", e.region)
	}
	if !(interval > 0) || math.IsInf(interval, 0) {
		return errors.Wrapf(ErrInvalidInterval, "interval must be positive and finite, got %g", interval)
	}

	before := len(e.vertices)
	e.vertices = internal.RandomVertices(e.region, e.vertices, interval, e.config.MaxAttempts, e.rng)
	e.logger.Debug("sampled random vertices",
		zap.Stringer("region", e.region),
		zap.Float64("interval", interval),
		zap.Int("before", before),
		zap.Int("after", len(e.vertices)),
	)
	return nil
}

// Triangulate the current vertex set, store the result and return it. On
// error, nothing is returned and the stored triangulation is cleared.
func (e *Engine) CreateDelaunay() (TriangleList, error) {
	return e.CreateDelaunayContext(context.Background())
}

// Like CreateDelaunay, but stops between vertex insertions once ctx is done.
func (e *Engine) CreateDelaunayContext(ctx context.Context) (TriangleList, error) {
	triangles, err := internal.Triangulate(ctx, e.region, e.vertices, internal.TriangulateOptions{
		Margin: e.config.Margin,
		Logger: e.logger,
	})
	if err != nil {
		e.triangles = nil
		e.logger.Debug("triangulation failed", zap.Error(err))
		return nil, err
	}
	e.triangles = triangles
	return e.Triangles(), nil
}
