package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bandgraph/pkg/cache"
	"github.com/matzehuels/bandgraph/pkg/observability"
	"github.com/matzehuels/bandgraph/pkg/render/disk"
	"github.com/matzehuels/bandgraph/pkg/theme"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string // listen address
	theme   string // path to a TOML theme file
	labels  bool   // draw node labels
	noCache bool   // disable the artifact cache
}

// serveCommand creates the serve command for live diagram previews.
// The server re-reads the diagram file on every request, so edits show up
// on browser refresh. Rendered SVG is cached keyed by file content, making
// refreshes cheap when nothing changed.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:   ":8700",
		labels: true,
	}

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a live SVG preview of a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file (defaults to the built-in theme)")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "draw node labels beneath each disk")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the rendered artifact cache")

	return cmd
}

// previewServer renders one diagram file on demand.
type previewServer struct {
	input  string
	theme  theme.Theme
	labels bool
	cache  cache.Cache
	keyer  cache.Keyer
}

func runServe(ctx context.Context, input string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	// Validate once at startup so broken input fails fast rather than on
	// the first request.
	if _, err := loadDiagram(ctx, input); err != nil {
		return err
	}

	th, err := loadTheme(opts.theme)
	if err != nil {
		return err
	}

	artifacts, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer artifacts.Close()

	srv := &previewServer{
		input:  input,
		theme:  th,
		labels: opts.labels,
		cache:  artifacts,
		keyer:  cache.NewScopedKeyer(cache.NewDefaultKeyer(), "serve:"),
	}

	r := chi.NewRouter()
	r.Use(requestLogger(ctx))
	r.Get("/", srv.handleIndex)
	r.Get("/diagram.svg", srv.handleSVG)
	r.Get("/diagram.json", srv.handleJSON)

	httpSrv := &http.Server{Addr: opts.addr, Handler: r}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	printKeyValue("serving", input)
	printKeyValue("address", "http://localhost"+opts.addr)
	printNextStep("Open the preview", "http://localhost"+opts.addr)
	logger.Infof("Listening on %s", opts.addr)

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// requestLogger tags each request with a UUID and reports it to the logger
// and the registered serve hooks.
func requestLogger(baseCtx context.Context) func(http.Handler) http.Handler {
	logger := loggerFromContext(baseCtx)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set("X-Request-ID", id)

			ctx := withLogger(r.Context(), logger.With("request_id", id))
			observability.Serve().OnRequest(ctx, r.Method, r.URL.Path)

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r.WithContext(ctx))

			elapsed := time.Since(start)
			observability.Serve().OnResponse(ctx, r.Method, r.URL.Path, sw.status, elapsed)
			logger.Debugf("%s %s %d (%s)", r.Method, r.URL.Path, sw.status, elapsed.Round(time.Millisecond))
		})
	}
}

// statusWriter records the response status code for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

const indexPage = `<!DOCTYPE html>
<html>
<head>
<title>bandgraph preview</title>
<style>
  body { margin: 0; display: grid; place-items: center; min-height: 100vh; background: #f6f6f6; }
  img { max-width: 95vw; max-height: 95vh; box-shadow: 0 1px 6px rgba(0,0,0,0.15); background: white; }
</style>
</head>
<body>
<img src="/diagram.svg" alt="diagram">
</body>
</html>
`

func (s *previewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

func (s *previewServer) handleSVG(w http.ResponseWriter, r *http.Request) {
	data, err := s.render(r.Context(), "svg")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(data)
}

func (s *previewServer) handleJSON(w http.ResponseWriter, r *http.Request) {
	data, err := s.render(r.Context(), "json")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(data)
}

// render produces the requested format for the current state of the
// diagram file, consulting the artifact cache first. The cache key covers
// the file content, so stale entries are never served after an edit.
func (s *previewServer) render(ctx context.Context, format string) ([]byte, error) {
	raw, err := os.ReadFile(s.input)
	if err != nil {
		return nil, err
	}
	key := s.keyer.ArtifactKey(cache.Hash(raw), cache.ArtifactKeyOpts{
		Format: format,
		Theme:  s.themeHash(),
		Labels: s.labels,
	})

	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	d, err := loadDiagram(ctx, s.input)
	if err != nil {
		return nil, err
	}

	renderOpts := []disk.Option{disk.WithTheme(s.theme)}
	if s.labels {
		renderOpts = append(renderOpts, disk.WithLabels())
	}

	var data []byte
	switch format {
	case "svg":
		data = disk.RenderSVG(d, renderOpts...)
	case "json":
		data, err = disk.RenderJSON(d, renderOpts...)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	if err := s.cache.Set(ctx, key, data, time.Hour); err == nil {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return data, nil
}

// themeHash identifies the theme in cache keys. Hashing the rendered
// defaults covers both file-loaded and built-in themes.
func (s *previewServer) themeHash() string {
	return cache.Hash([]byte(fmt.Sprintf("%+v", s.theme)))
}
