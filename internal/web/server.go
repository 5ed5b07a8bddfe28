package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/knagasaki/spectra/internal/config"
	"github.com/knagasaki/spectra/internal/observability"
	"github.com/knagasaki/spectra/internal/photo"
	"github.com/knagasaki/spectra/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// NewServer creates and configures the HTTP server for the spectra web UI
// and JSON API.
func NewServer(s *store.Store, cfg *config.Config, photos *photo.Dir, metrics *observability.Metrics, log *slog.Logger, version, bind string, port int) *http.Server {
	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(fmt.Sprintf("template sub-FS: %v", err))
	}
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(fmt.Sprintf("static sub-FS: %v", err))
	}

	h := &Handlers{
		store:    s,
		cfg:      cfg,
		photos:   photos,
		metrics:  metrics,
		renderer: NewRenderer(templateSub, version, log),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/observations", http.StatusFound)
	})
	mux.HandleFunc("GET /observations", h.HandleList)
	mux.HandleFunc("GET /observations/{id}", h.HandleDetail)
	mux.HandleFunc("GET /analysis", h.HandleAnalysis)
	mux.HandleFunc("GET /photos/{ref}", h.HandlePhoto)

	mux.HandleFunc("GET /api/observations", h.HandleAPIList)
	mux.HandleFunc("POST /api/observations", h.HandleAPICreate)
	mux.HandleFunc("GET /api/observations/{id}", h.HandleAPIFetch)
	mux.HandleFunc("GET /api/analysis", h.HandleAPIAnalysis)
	mux.HandleFunc("GET /api/geojson", h.HandleAPIGeoJSON)
	mux.HandleFunc("GET /api/sites", h.HandleAPISites)
	mux.HandleFunc("POST /api/photos", h.HandleAPIPhotoUpload)

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticSub)))

	handler := requestMetrics(metrics, securityHeaders(mux))

	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", bind, port),
		Handler: handler,
	}
}

// securityHeaders adds security-related HTTP headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; style-src 'self'")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

// requestMetrics counts requests by route pattern and response status.
func requestMetrics(m *observability.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(route, strconv.Itoa(sw.status)).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Run starts the HTTP server and handles graceful shutdown on SIGINT/SIGTERM.
func Run(srv *http.Server, log *slog.Logger) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Info("spectra UI running", "addr", "http://"+srv.Addr)
	if strings.Contains(srv.Addr, "0.0.0.0") || strings.Contains(srv.Addr, "::") {
		log.Warn("server is binding to all interfaces and may be accessible from the network")
	}

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
