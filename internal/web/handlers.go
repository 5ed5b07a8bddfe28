package web

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knagasaki/spectra/internal/config"
	"github.com/knagasaki/spectra/internal/errors"
	"github.com/knagasaki/spectra/internal/observability"
	"github.com/knagasaki/spectra/internal/ops"
	"github.com/knagasaki/spectra/internal/photo"
	"github.com/knagasaki/spectra/internal/store"
	"github.com/knagasaki/spectra/internal/vector"
)

// maxPhotoBytes caps a single photo upload.
const maxPhotoBytes = 10 << 20

// Handlers contains HTTP route handlers for the web UI and JSON API.
type Handlers struct {
	store    *store.Store
	cfg      *config.Config
	photos   *photo.Dir
	metrics  *observability.Metrics
	renderer *Renderer
}

// HandleList handles GET /observations, the observation list page.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")

	result, err := ops.List(h.store, h.cfg, ops.ListInput{
		Location: location,
		Limit:    parseIntParam(r, "limit", ops.DefaultListLimit),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "list", ListPageData{
		PageData: PageData{
			Title:   "Observations",
			Version: h.renderer.version,
			Nav:     "observations",
		},
		Items:    result.Items,
		Total:    result.Total,
		Location: location,
	})
}

// HandleDetail handles GET /observations/{id}, a single observation page.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("observation ID is required"))
		return
	}

	result, err := ops.Fetch(h.store, h.cfg, id)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "detail", DetailPageData{
		PageData: PageData{
			Title:   result.Record.Location,
			Version: h.renderer.version,
			Nav:     "observations",
		},
		Observation:  result,
		RenderedNote: renderMarkdown(result.Record.Note),
	})
}

// HandleAnalysis handles GET /analysis, the aggregate vector page.
func (h *Handlers) HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	data := AnalysisPageData{
		PageData: PageData{
			Title:   "Analysis",
			Version: h.renderer.version,
			Nav:     "analysis",
		},
		Categories: vector.Categories,
	}

	result, err := ops.Analyze(h.store, h.cfg)
	switch {
	case errors.Is(err, errors.ErrEmptyCollection):
		data.Empty = true
	case err != nil:
		h.renderer.renderError(w, r, err)
		return
	default:
		h.metrics.AnalysisRequests.Inc()
		data.Stats = result.Stats
		data.Items = result.Items
	}

	h.renderer.renderPage(w, "analysis", data)
}

// HandleAPIList handles GET /api/observations.
func (h *Handlers) HandleAPIList(w http.ResponseWriter, r *http.Request) {
	result, err := ops.List(h.store, h.cfg, ops.ListInput{
		Location: r.URL.Query().Get("location"),
		Limit:    parseIntParam(r, "limit", ops.DefaultListLimit),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

// HandleAPICreate handles POST /api/observations.
func (h *Handlers) HandleAPICreate(w http.ResponseWriter, r *http.Request) {
	var input ops.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid JSON body: "+err.Error()))
		return
	}

	result, err := ops.Record(h.store, h.cfg, input)
	if err != nil {
		if errors.Is(err, errors.ErrPersistenceFailed) {
			h.metrics.PersistenceFailures.Inc()
		}
		h.renderer.renderError(w, r, err)
		return
	}

	h.metrics.ObservationsRecorded.WithLabelValues(string(result.Category)).Inc()
	h.metrics.StoreSize.Set(float64(h.store.Len()))
	renderJSON(w, http.StatusCreated, result)
}

// HandleAPIFetch handles GET /api/observations/{id}.
func (h *Handlers) HandleAPIFetch(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Fetch(h.store, h.cfg, r.PathValue("id"))
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

// HandleAPIAnalysis handles GET /api/analysis.
func (h *Handlers) HandleAPIAnalysis(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Analyze(h.store, h.cfg)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	h.metrics.AnalysisRequests.Inc()
	renderJSON(w, http.StatusOK, result)
}

// HandleAPIGeoJSON handles GET /api/geojson.
func (h *Handlers) HandleAPIGeoJSON(w http.ResponseWriter, r *http.Request) {
	h.metrics.GeoJSONExports.Inc()
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(ops.ExportGeoJSON(h.store, h.cfg))
}

// HandleAPISites handles GET /api/sites.
func (h *Handlers) HandleAPISites(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, ops.Sites(h.cfg))
}

// HandleAPIPhotoUpload handles POST /api/photos. The body is the raw image;
// the extension comes from the filename query parameter.
func (h *Handlers) HandleAPIPhotoUpload(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("filename")
	if name == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("filename query parameter is required"))
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPhotoBytes))
	if err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("could not read photo body: "+err.Error()))
		return
	}

	ref, err := h.photos.Store(data, filepath.Ext(name))
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.metrics.PhotosStored.Inc()
	renderJSON(w, http.StatusCreated, map[string]string{"photo_ref": ref})
}

// HandlePhoto handles GET /photos/{ref}, serving a stored photo.
func (h *Handlers) HandlePhoto(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("ref")
	data, err := h.photos.Fetch(ref)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", photoContentType(ref))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func photoContentType(ref string) string {
	if strings.HasSuffix(strings.ToLower(ref), ".png") {
		return "image/png"
	}
	return "image/jpeg"
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
