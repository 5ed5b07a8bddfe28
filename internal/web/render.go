package web

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/knagasaki/spectra/internal/errors"
	"github.com/knagasaki/spectra/internal/ops"
	"github.com/knagasaki/spectra/internal/vector"
)

// PageData contains common fields used across all page templates.
type PageData struct {
	Title   string
	Version string
	Nav     string // active nav item: "observations", "analysis", "map"
}

// ListPageData is the template data for the observation list page.
type ListPageData struct {
	PageData
	Items    []ops.Summary
	Total    int
	Location string
}

// DetailPageData is the template data for the observation detail page.
type DetailPageData struct {
	PageData
	Observation  *ops.FetchOutput
	RenderedNote template.HTML
}

// AnalysisPageData is the template data for the aggregate analysis page.
type AnalysisPageData struct {
	PageData
	Stats      *vector.AggregateStats
	Items      []ops.VectorItem
	Categories []vector.Category
	Empty      bool
}

// ErrorPageData is the template data for the error page.
type ErrorPageData struct {
	PageData
	StatusCode int
	Message    string
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	version   string
	log       *slog.Logger
}

// NewRenderer creates a Renderer by parsing templates from the given FS.
func NewRenderer(templateFS fs.FS, version string, log *slog.Logger) *Renderer {
	funcMap := template.FuncMap{
		"formatTime":  formatTime,
		"formatScore": formatScore,
		"formatFloat": func(f float64) string { return fmt.Sprintf("%.2f", f) },
		"degrees":     degrees,
	}

	// Parse layout as the base template
	layoutTmpl := template.Must(template.New("layout").Funcs(funcMap).ParseFS(templateFS, "layout.html"))

	pages := map[string]string{
		"list":     "list.html",
		"detail":   "detail.html",
		"analysis": "analysis.html",
		"error":    "error.html",
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t := template.Must(layoutTmpl.Clone())
		template.Must(t.ParseFS(templateFS, file))
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		version:   version,
		log:       log,
	}
}

// renderPage renders a named page template with the given data and HTTP 200 status.
func (r *Renderer) renderPage(w http.ResponseWriter, name string, data any) {
	r.renderPageStatus(w, http.StatusOK, name, data)
}

// renderPageStatus renders a named page template with the given data and status code.
func (r *Renderer) renderPageStatus(w http.ResponseWriter, status int, name string, data any) {
	t, ok := r.templates[name]
	if !ok {
		r.log.Error("template not found", "name", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.log.Error("template execution failed", "name", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderError renders an error response with content negotiation: JSON for
// API clients, a full error page otherwise.
func (r *Renderer) renderError(w http.ResponseWriter, req *http.Request, err error) {
	var sErr *errors.SpectraError
	if !stderrors.As(err, &sErr) {
		sErr = errors.NewInternal(err)
	}

	if wantsJSON(req) {
		renderJSONError(w, sErr)
		return
	}

	r.renderPageStatus(w, sErr.Status, "error", ErrorPageData{
		PageData: PageData{
			Title:   fmt.Sprintf("Error %d", sErr.Status),
			Version: r.version,
		},
		StatusCode: sErr.Status,
		Message:    sErr.Message,
	})
}

// wantsJSON reports whether the request came from an API client.
func wantsJSON(req *http.Request) bool {
	return strings.HasPrefix(req.URL.Path, "/api/") ||
		strings.Contains(req.Header.Get("Accept"), "application/json")
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// renderJSONError writes a structured error as JSON.
func renderJSONError(w http.ResponseWriter, sErr *errors.SpectraError) {
	renderJSON(w, sErr.Status, map[string]any{
		"error": map[string]any{
			"code":    string(sErr.Code),
			"message": sErr.Message,
			"status":  sErr.Status,
			"details": sErr.Details,
		},
	})
}

// renderMarkdown converts a markdown note to HTML using goldmark.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// formatTime formats a timestamp as "2006-01-02 15:04" UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}

// formatScore formats a score with an explicit sign, matching how the
// spectrum axes read (-50 .. +50).
func formatScore(f float64) string {
	return fmt.Sprintf("%+g", f)
}

// degrees converts a direction in radians to degrees for display.
func degrees(rad float64) string {
	return fmt.Sprintf("%.1f°", rad*180/math.Pi)
}
