// Package preview serves the generated Markdown tree as HTML for local
// inspection, along with Prometheus metrics for the running generator.
package preview

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/logfields"
	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/metrics"
)

// Server renders the output root on demand. Pages are converted per
// request so a rebuild is visible on the next reload without any cache
// invalidation.
type Server struct {
	outRoot  string
	registry *prom.Registry
}

func NewServer(outRoot string, registry *prom.Registry) *Server {
	return &Server{outRoot: outRoot, registry: registry}
}

// Handler returns the preview mux: an index of generated documents, the
// rendered pages, and /metrics when a registry is configured.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	if s.registry != nil {
		mux.Handle("/metrics", metrics.HTTPHandler(s.registry))
	}
	mux.HandleFunc("/", s.servePage)
	return mux
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("Preview server listening", slog.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, "/")
	if rel == "" {
		s.serveIndex(w)
		return
	}

	clean := filepath.Clean(rel)
	if filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		http.NotFound(w, r)
		return
	}
	full := filepath.Join(s.outRoot, clean)

	info, err := os.Stat(full)
	if err != nil || info.IsDir() || !strings.HasSuffix(clean, ".md") {
		http.NotFound(w, r)
		return
	}

	page, err := RenderPage(full)
	if err != nil {
		slog.Error("Preview render failed", logfields.Path(clean), logfields.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (s *Server) serveIndex(w http.ResponseWriter) {
	var docs []string
	_ = filepath.WalkDir(s.outRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		if rel, rerr := filepath.Rel(s.outRoot, path); rerr == nil {
			docs = append(docs, filepath.ToSlash(rel))
		}
		return nil
	})
	sort.Strings(docs)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><title>Generated docs</title></head><body>")
	b.WriteString("<h1>Generated docs</h1><ul>")
	for _, d := range docs {
		fmt.Fprintf(&b, `<li><a href="/%s">%s</a></li>`, html.EscapeString(d), html.EscapeString(d))
	}
	b.WriteString("</ul></body></html>")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}
