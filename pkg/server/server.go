// Package server exposes scene rendering over HTTP.
//
//	POST /render?format=toml|yaml|json[&precision=n][&grouping=true][&refresh=true]
//	GET  /healthz
//
// The request body is a scene; the response is the rendered document with
// Content-Type image/svg+xml and an X-Cache header of "hit" or "miss".
// Errors are plain text with the error code in X-Error-Code; see StatusCode
// for the mapping.
package server

import (
	"context"
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/svgbuild/pkg/buildinfo"
	"github.com/matzehuels/svgbuild/pkg/errors"
	"github.com/matzehuels/svgbuild/pkg/pipeline"
	"github.com/matzehuels/svgbuild/pkg/scene"
)

// DefaultMaxBody caps request bodies.
const DefaultMaxBody = 1 << 20

// Pinger is implemented by caches that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config configures a Server.
type Config struct {
	Runner  *pipeline.Runner
	Logger  *log.Logger
	TTL     time.Duration // cache TTL for rendered documents; 0 uses pipeline.DefaultTTL
	MaxBody int64         // 0 uses DefaultMaxBody
}

// Server is an http.Handler serving the render API.
type Server struct {
	runner  *pipeline.Runner
	logger  *log.Logger
	ttl     time.Duration
	maxBody int64
	router  chi.Router
}

// New builds the router. A nil Runner renders without a cache.
func New(cfg Config) *Server {
	s := &Server{
		runner:  cfg.Runner,
		logger:  cfg.Logger,
		ttl:     cfg.TTL,
		maxBody: cfg.MaxBody,
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, nil, s.logger)
	}
	if s.maxBody <= 0 {
		s.maxBody = DefaultMaxBody
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(serverHeader)

	r.Post("/render", s.handleRender)
	r.Get("/healthz", s.handleHealth)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully, giving in-flight requests up to ten seconds.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := renderOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Source = RequestID(r.Context())
	opts.TTL = s.ttl
	opts.Logger = loggerFrom(r.Context(), s.logger)

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}

	res, err := s.runner.Execute(r.Context(), data, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "image/svg+xml; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(len(res.SVG)))
	if res.CacheHit {
		h.Set("X-Cache", "hit")
	} else {
		h.Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.SVG)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if p, ok := s.runner.Cache.(Pinger); ok {
		if err := p.Ping(r.Context()); err != nil {
			loggerFrom(r.Context(), s.logger).Warn("health check failed", "err", err)
			http.Error(w, "cache unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// renderOptions reads the query string. The scene format comes from
// ?format=, falling back to the Content-Type and then to TOML.
func renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	var opts pipeline.Options

	switch f := q.Get("format"); {
	case f != "":
		pf, err := scene.ParseFormat(f)
		if err != nil {
			return opts, err
		}
		opts.Format = pf
	default:
		opts.Format = formatFromContentType(r.Header.Get("Content-Type"))
	}

	if p := q.Get("precision"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "precision must be an integer, got %q", p)
		}
		opts.Precision = &n
	}
	for name, dst := range map[string]*bool{"grouping": &opts.Grouping, "refresh": &opts.Refresh} {
		if v := q.Get(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return opts, errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean, got %q", name, v)
			}
			*dst = b
		}
	}
	return opts, nil
}

func formatFromContentType(ct string) scene.Format {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return scene.FormatTOML
	}
	switch {
	case mt == "application/json" || strings.HasSuffix(mt, "+json"):
		return scene.FormatJSON
	case strings.Contains(mt, "yaml"):
		return scene.FormatYAML
	}
	return scene.FormatTOML
}

// StatusCode maps an error to its HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, errors.ErrCodeNotFound), errors.Is(err, errors.ErrCodeFileNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusCode(err)
	logger := loggerFrom(r.Context(), s.logger)
	if status >= 500 {
		logger.Error("render failed", "err", err)
	} else {
		logger.Debug("rejected request", "status", status, "err", err)
	}

	msg := errors.UserMessage(err)
	if status >= 500 {
		msg = "internal error"
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if code := errors.GetCode(err); code != "" {
		w.Header().Set("X-Error-Code", string(code))
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg+"\n")
}

func serverHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", buildinfo.UserAgent())
		next.ServeHTTP(w, r)
	})
}
