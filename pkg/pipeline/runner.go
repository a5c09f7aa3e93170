package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svgbuild/pkg/cache"
	"github.com/matzehuels/svgbuild/pkg/errors"
	"github.com/matzehuels/svgbuild/pkg/observability"
	"github.com/matzehuels/svgbuild/pkg/scene"
	"github.com/matzehuels/svgbuild/pkg/svg"
)

// Runner renders scenes through a cache. It holds no per-run state and is
// safe for concurrent use when its cache is.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
	Backend string // cache backend name reported to hooks
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	backend := "custom"
	switch c.(type) {
	case nil:
		c, backend = cache.NewNullCache(), "none"
	case cache.NullCache:
		backend = "none"
	case *cache.FileCache:
		backend = "file"
	case *cache.RedisCache:
		backend = "redis"
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger, Backend: backend}
}

// Execute renders the scene in data. Cache read and write failures are
// logged and otherwise ignored; a broken cache never fails a render.
func (r *Runner) Execute(ctx context.Context, data []byte, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	start := time.Now()

	res := &Result{Key: r.Keyer.RenderKey(data, opts.KeyOpts())}

	if !opts.Refresh {
		cached, hit, err := r.Cache.Get(ctx, res.Key)
		switch {
		case err != nil:
			logger.Warn("cache read failed", "backend", r.Backend, "err", err)
		case hit:
			observability.Cache().OnCacheHit(ctx, r.Backend)
			res.SVG, res.CacheHit = cached, true
			res.Duration = time.Since(start)
			logger.Debug("cache hit", "source", opts.Source, "key", res.Key)
			return res, nil
		default:
			observability.Cache().OnCacheMiss(ctx, r.Backend)
		}
	}

	observability.Render().OnRenderStart(ctx, opts.Source)
	out, stats, err := render(data, opts)
	res.Duration = time.Since(start)
	observability.Render().OnRenderComplete(ctx, opts.Source, stats.Elements(), len(out), res.Duration, err)
	if err != nil {
		return nil, err
	}
	res.SVG, res.Stats = out, stats

	if err := r.Cache.Set(ctx, res.Key, out, opts.TTL); err != nil {
		logger.Warn("cache write failed", "backend", r.Backend, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, r.Backend, len(out))
	}

	logger.Debug("rendered scene",
		"source", opts.Source,
		"elements", stats.Elements(),
		"bytes", len(out),
		"duration", res.Duration)
	return res, nil
}

// ExecuteFile reads path and renders it, inferring the format from the
// extension unless opts.Format is set.
func (r *Runner) ExecuteFile(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	if opts.Format == "" {
		f, err := scene.FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		opts.Format = f
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read scene file %s", path)
	}
	if opts.Source == "" {
		opts.Source = path
	}
	return r.Execute(ctx, data, opts)
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func render(data []byte, opts Options) ([]byte, svg.Stats, error) {
	s, err := scene.Parse(data, opts.Format)
	if err != nil {
		return nil, svg.Stats{}, err
	}
	root, err := s.Build(opts.SVGOptions()...)
	if err != nil {
		return nil, svg.Stats{}, err
	}
	return []byte(root.String()), root.Document().Stats(), nil
}
