package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgbuild/pkg/cache"
	"github.com/matzehuels/svgbuild/pkg/errors"
	"github.com/matzehuels/svgbuild/pkg/pipeline"
	"github.com/matzehuels/svgbuild/pkg/server"
)

// redisURLEnv is read when --redis is not given.
const redisURLEnv = "SVGBUILD_REDIS_URL"

type serveOpts struct {
	addr      string
	redisURL  string
	keyPrefix string
	ttl       time.Duration
	maxBody   int64
	noCache   bool
}

func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:      ":8080",
		keyPrefix: appName + ":",
		ttl:       pipeline.DefaultTTL,
		maxBody:   server.DefaultMaxBody,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render server",
		Long: `Run an HTTP server that renders posted scenes.

  POST /render?format=toml|yaml|json   scene in, SVG out
  GET  /healthz                        liveness and cache check

Rendered documents are cached in Redis when --redis (or ` + redisURLEnv + `)
is set, otherwise in the local file cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.redisURL == "" {
				opts.redisURL = os.Getenv(redisURLEnv)
			}
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "Redis URL for the shared render cache (env "+redisURLEnv+")")
	cmd.Flags().StringVar(&opts.keyPrefix, "key-prefix", opts.keyPrefix, "prefix for Redis cache keys")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", opts.ttl, "how long rendered documents stay cached")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", opts.maxBody, "maximum request body in bytes")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)
	registerLogHooks(logger)

	runner, err := c.serveRunner(ctx, opts)
	if err != nil {
		return err
	}
	defer runner.Close()

	p := c.out()
	p.info("Serving on %s", StyleHighlight.Render(opts.addr))
	p.keyValue("cache", runner.Backend)
	p.keyValue("ttl", opts.ttl.String())

	srv := server.New(server.Config{
		Runner:  runner,
		Logger:  logger,
		TTL:     opts.ttl,
		MaxBody: opts.maxBody,
	})
	if err := srv.ListenAndServe(ctx, opts.addr); err != nil {
		return err
	}
	p.success("Server stopped")
	return nil
}

// serveRunner picks the cache: none, Redis when a URL is configured, and
// the local file cache otherwise.
func (c *CLI) serveRunner(ctx context.Context, opts serveOpts) (*pipeline.Runner, error) {
	logger := loggerFromContext(ctx)

	if opts.noCache || opts.redisURL == "" {
		return c.newRunner(opts.noCache)
	}
	if err := errors.ValidateRedisURL(opts.redisURL); err != nil {
		return nil, err
	}

	sp := newSpinner(ctx, c.stderr, "Connecting to Redis...")
	sp.Start()
	rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{URL: opts.redisURL})
	sp.Stop()
	if err != nil {
		c.out().failure("Redis unavailable")
		return nil, err
	}
	return pipeline.NewRunner(rc, cache.NewScopedKeyer(nil, opts.keyPrefix), logger), nil
}
