package ops

import (
	"strings"

	"github.com/knagasaki/spectra/internal/config"
	"github.com/knagasaki/spectra/internal/errors"
	"github.com/knagasaki/spectra/internal/observation"
	"github.com/knagasaki/spectra/internal/store"
	"github.com/knagasaki/spectra/internal/vector"
)

// FetchOutput contains a full observation with its derived geometry.
type FetchOutput struct {
	Record   observation.Record `json:"record"`
	Vector   vector.Vector      `json:"vector"`
	Category vector.Category    `json:"category"`
}

// Fetch retrieves an observation by id.
func Fetch(s *store.Store, cfg *config.Config, id string) (*FetchOutput, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	rec, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	v := vector.Compute(rec)
	return &FetchOutput{
		Record:   *rec, // copy, not pointer
		Vector:   v,
		Category: vector.Classify(v, cfg.Thresholds),
	}, nil
}
