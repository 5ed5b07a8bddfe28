package ops

import (
	"time"

	"github.com/knagasaki/spectra/internal/config"
	"github.com/knagasaki/spectra/internal/observation"
	"github.com/knagasaki/spectra/internal/store"
	"github.com/knagasaki/spectra/internal/vector"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Location string `json:"location,omitempty"` // optional filter, matched on the normalized label
	Limit    int    `json:"limit,omitempty"`    // default: 50, max: 500
}

// Summary is one observation in a listing, with its derived geometry.
type Summary struct {
	ID         string          `json:"id"`
	Location   string          `json:"location"`
	Latitude   float64         `json:"latitude"`
	Longitude  float64         `json:"longitude"`
	RecordedAt time.Time       `json:"recorded_at"`
	Magnitude  float64         `json:"magnitude"`
	Category   vector.Category `json:"category"`
	HasPhoto   bool            `json:"has_photo"`
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items []Summary `json:"items"`
	Total int       `json:"total"`
}

// List returns observation summaries in insertion order.
func List(s *store.Store, cfg *config.Config, input ListInput) (*ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	records := s.All()
	if input.Location != "" {
		key := observation.Normalize(input.Location)
		records = s.Query(func(r *observation.Record) bool {
			return observation.Normalize(r.Location) == key
		})
	}

	total := len(records)
	if len(records) > limit {
		records = records[:limit]
	}

	items := make([]Summary, 0, len(records))
	for _, rec := range records {
		v := vector.Compute(rec)
		items = append(items, Summary{
			ID:         rec.ID,
			Location:   rec.Location,
			Latitude:   rec.Latitude,
			Longitude:  rec.Longitude,
			RecordedAt: rec.RecordedAt,
			Magnitude:  v.Magnitude,
			Category:   vector.Classify(v, cfg.Thresholds),
			HasPhoto:   rec.PhotoRef != "",
		})
	}

	return &ListOutput{Items: items, Total: total}, nil
}
