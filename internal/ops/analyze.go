package ops

import (
	"github.com/knagasaki/spectra/internal/config"
	"github.com/knagasaki/spectra/internal/store"
	"github.com/knagasaki/spectra/internal/vector"
)

// VectorItem is one record's displacement in an analysis.
type VectorItem struct {
	ID       string          `json:"id"`
	Location string          `json:"location"`
	Vector   vector.Vector   `json:"vector"`
	Category vector.Category `json:"category"`
}

// AnalyzeOutput contains per-record vectors and collection-level statistics.
type AnalyzeOutput struct {
	Items []VectorItem          `json:"items"`
	Stats *vector.AggregateStats `json:"stats"`
}

// Analyze computes the Hard→Soft vector for every observation plus the
// aggregate statistics. Fails with EMPTY_COLLECTION when nothing has been
// recorded; an empty analysis is an error the caller must see, not a page
// of zeros.
func Analyze(s *store.Store, cfg *config.Config) (*AnalyzeOutput, error) {
	records := s.All()

	stats, err := vector.Aggregate(records, cfg.Thresholds)
	if err != nil {
		return nil, err
	}

	items := make([]VectorItem, 0, len(records))
	for _, rec := range records {
		v := vector.Compute(rec)
		items = append(items, VectorItem{
			ID:       rec.ID,
			Location: rec.Location,
			Vector:   v,
			Category: vector.Classify(v, cfg.Thresholds),
		})
	}

	return &AnalyzeOutput{Items: items, Stats: stats}, nil
}
