// Package pipeline runs the decode → build → serialize pipeline with
// caching. The CLI and the render server both go through a [Runner], so a
// scene renders the same way from either entry point.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, data, pipeline.Options{Format: scene.FormatTOML})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(res.SVG)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svgbuild/pkg/buildinfo"
	"github.com/matzehuels/svgbuild/pkg/cache"
	"github.com/matzehuels/svgbuild/pkg/errors"
	"github.com/matzehuels/svgbuild/pkg/scene"
	"github.com/matzehuels/svgbuild/pkg/svg"
	"github.com/matzehuels/svgbuild/pkg/svg/num"
)

// DefaultTTL is how long rendered documents stay cached.
const DefaultTTL = 24 * time.Hour

// MaxPrecision bounds the decimals a caller may request.
const MaxPrecision = num.MaxPrecision

// Options configures one pipeline run.
type Options struct {
	Format scene.Format `json:"format"`
	Source string       `json:"source,omitempty"` // file name or request id, for logs and hooks

	// Precision overrides the scene's number precision when set.
	Precision *int `json:"precision,omitempty"`
	Grouping  bool `json:"grouping,omitempty"`

	Refresh bool          `json:"refresh,omitempty"` // skip the cache lookup, still store the result
	TTL     time.Duration `json:"-"`

	Logger *log.Logger `json:"-"`
}

// Validate checks the options and fills in defaults.
func (o *Options) Validate() error {
	if o.Format == "" {
		o.Format = scene.FormatTOML
	}
	if _, err := scene.ParseFormat(string(o.Format)); err != nil {
		return err
	}
	if o.Precision != nil && (*o.Precision < 0 || *o.Precision > MaxPrecision) {
		return errors.New(errors.ErrCodeInvalidInput, "precision must be between 0 and %d", MaxPrecision)
	}
	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	if o.Source == "" {
		o.Source = "<input>"
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// KeyOpts returns the cache key options for o.
func (o *Options) KeyOpts() cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Format:    string(o.Format),
		Precision: o.Precision,
		Grouping:  o.Grouping,
		Version:   buildinfo.Version,
	}
}

// SVGOptions returns the document options implied by o. They are applied
// after the scene's own settings, so they win.
func (o *Options) SVGOptions() []svg.Option {
	var opts []svg.Option
	if o.Precision != nil {
		opts = append(opts, svg.WithPrecision(*o.Precision))
	}
	if o.Grouping {
		opts = append(opts, svg.WithGrouping())
	}
	return opts
}

// Result is the output of one run.
type Result struct {
	SVG      []byte
	Key      string
	CacheHit bool

	// Stats counts the elements built. It is zero on a cache hit.
	Stats    svg.Stats
	Duration time.Duration
}
