package ops

import (
	"time"

	"github.com/knagasaki/spectra/internal/config"
	"github.com/knagasaki/spectra/internal/store"
	"github.com/knagasaki/spectra/internal/vector"
)

// GeoJSON types for the map layer. Only the Point geometry is ever emitted;
// coordinates follow the GeoJSON order [longitude, latitude].

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string            `json:"type"`
	Geometry   PointGeometry     `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type FeatureProperties struct {
	ID         string          `json:"id"`
	Location   string          `json:"location"`
	RecordedAt time.Time       `json:"recorded_at"`
	Magnitude  float64         `json:"magnitude"`
	Direction  float64         `json:"direction"`
	Category   vector.Category `json:"category"`
	// Authentic mirrors the original map's pin coloring: true when the
	// site's material authenticity is non-negative.
	Authentic bool `json:"authentic"`
}

// ExportGeoJSON renders the observation set as a GeoJSON FeatureCollection
// for the map layer. An empty collection exports as an empty collection;
// an empty map is meaningful where an empty aggregate is not.
func ExportGeoJSON(s *store.Store, cfg *config.Config) *FeatureCollection {
	records := s.All()

	features := make([]Feature, 0, len(records))
	for _, rec := range records {
		v := vector.Compute(rec)
		features = append(features, Feature{
			Type: "Feature",
			Geometry: PointGeometry{
				Type:        "Point",
				Coordinates: [2]float64{rec.Longitude, rec.Latitude},
			},
			Properties: FeatureProperties{
				ID:         rec.ID,
				Location:   rec.Location,
				RecordedAt: rec.RecordedAt,
				Magnitude:  v.Magnitude,
				Direction:  v.Direction,
				Category:   vector.Classify(v, cfg.Thresholds),
				Authentic:  rec.HardAuthenticity >= 0,
			},
		})
	}

	return &FeatureCollection{Type: "FeatureCollection", Features: features}
}
