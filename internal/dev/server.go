package dev

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quill-dev/quill/pkg/dynamic"
	"github.com/quill-dev/quill/pkg/html"
	"github.com/quill-dev/quill/pkg/rdom"
	"github.com/quill-dev/quill/pkg/render"
)

// Renderer produces a document for a template id and payload. It is
// satisfied by *dynamic.Client.
type Renderer interface {
	Render(ctx context.Context, templateID string, payload []byte) ([]byte, error)
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	// Addr is the host:port to listen on.
	Addr string

	// Renderer renders previewed templates.
	Renderer Renderer

	// Templates lists the ids shown on the index page.
	Templates func() []string

	// Watch are directories whose changes trigger a browser reload.
	Watch []string

	// Ignore are glob patterns excluded from watching.
	Ignore []string

	// Logger is the structured logger. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Server previews registered templates over HTTP, reloading connected
// browsers when watched files change.
type Server struct {
	cfg    ServerConfig
	reload *ReloadServer
	logger *slog.Logger
}

// NewServer creates a preview server.
func NewServer(cfg ServerConfig) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:    cfg,
		reload: NewReloadServer(),
		logger: logger,
	}
}

// Handler returns the preview HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/t/{template}", s.handleTemplate)
	r.Get("/__reload", s.reload.HandleWebSocket)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}

// Run serves previews until ctx is done. File watching starts only
// when watch paths are configured.
func (s *Server) Run(ctx context.Context) error {
	if len(s.cfg.Watch) > 0 {
		watcher := NewWatcher(WatcherConfig{
			Paths:  s.cfg.Watch,
			Ignore: s.cfg.Ignore,
		})
		watcher.OnChange(func(path string) {
			s.logger.Info("change detected", "path", path)
			s.reload.NotifyReload(path)
		})
		go func() {
			if err := watcher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Warn("watcher stopped", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.reload.Close()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var ids []string
	if s.cfg.Templates != nil {
		ids = s.cfg.Templates()
	}

	page := rdom.Group(
		html.Doctype("html"),
		html.Html(
			html.Head(html.Title("quill preview")),
			html.Body(
				html.H1("Registered templates"),
				html.Ul(rdom.Map(ids, func(id string, _ int) *rdom.Node {
					return html.Li(html.A(html.Href("/t/"+id), id))
				})),
			),
		),
	)

	var buf bytes.Buffer
	if err := render.Render(&buf, page); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(injectReloadScript(buf.Bytes()))
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "template")
	payload := []byte(r.URL.Query().Get("data"))

	body, err := s.cfg.Renderer.Render(r.Context(), templateID, payload)
	if err != nil {
		s.writeRenderError(w, templateID, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(injectReloadScript(body))
}

func (s *Server) writeRenderError(w http.ResponseWriter, templateID string, err error) {
	s.logger.Error("preview render failed", "template", templateID, "error", err)
	s.reload.NotifyError(err.Error())

	var exitErr *dynamic.ChildExitError
	switch {
	case errors.Is(err, dynamic.ErrTimeout):
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
	case errors.As(err, &exitErr):
		http.Error(w, exitErr.Error()+"\n\n"+exitErr.Stderr, http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// injectReloadScript splices the live reload client into a rendered
// document, before </body> when present, appended otherwise.
func injectReloadScript(body []byte) []byte {
	closing := []byte("</body>")
	if i := bytes.LastIndex(body, closing); i >= 0 {
		out := make([]byte, 0, len(body)+len(reloadClientScript))
		out = append(out, body[:i]...)
		out = append(out, reloadClientScript...)
		out = append(out, body[i:]...)
		return out
	}
	return append(body, reloadClientScript...)
}
