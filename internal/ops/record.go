package ops

import (
	"strings"
	"time"

	"github.com/knagasaki/spectra/internal/config"
	"github.com/knagasaki/spectra/internal/errors"
	"github.com/knagasaki/spectra/internal/observation"
	"github.com/knagasaki/spectra/internal/photo"
	"github.com/knagasaki/spectra/internal/store"
	"github.com/knagasaki/spectra/internal/vector"
)

// RecordInput contains parameters for the Record operation.
type RecordInput struct {
	Location  string   `json:"location,omitempty"` // site label; defaults to Site when a preset is used
	Site      string   `json:"site,omitempty"`     // preset site name from config (optional)
	Latitude  *float64 `json:"latitude,omitempty"` // required unless resolved from Site
	Longitude *float64 `json:"longitude,omitempty"`

	HardAuthenticity float64 `json:"hard_authenticity"`
	HardEmotion      float64 `json:"hard_emotion"`
	SoftAuthenticity float64 `json:"soft_authenticity"`
	SoftEmotion      float64 `json:"soft_emotion"`

	Note     string `json:"note,omitempty"`
	PhotoRef string `json:"photo_ref,omitempty"` // reference from the photo store (optional)
}

// RecordOutput contains the result of the Record operation.
type RecordOutput struct {
	ID         string          `json:"id"`
	Location   string          `json:"location"`
	RecordedAt time.Time       `json:"recorded_at"`
	Vector     vector.Vector   `json:"vector"`
	Category   vector.Category `json:"category"`
}

// Record validates and appends one observation. The record only exists once
// the store has durably saved it; any validation or persistence failure
// leaves no state behind.
func Record(s *store.Store, cfg *config.Config, input RecordInput) (*RecordOutput, error) {
	location := input.Location
	latitude := input.Latitude
	longitude := input.Longitude

	if strings.TrimSpace(input.Site) != "" {
		site, ok := cfg.FindSite(input.Site)
		if !ok {
			return nil, errors.NewInvalidRequest("unknown site: " + input.Site)
		}
		if strings.TrimSpace(location) == "" {
			location = site.Name
		}
		if latitude == nil {
			latitude = &site.Latitude
		}
		if longitude == nil {
			longitude = &site.Longitude
		}
	}

	if latitude == nil || longitude == nil {
		return nil, errors.NewInvalidRequest("latitude and longitude are required (or name a preset site)")
	}

	if input.PhotoRef != "" {
		if err := photo.ValidateRef(input.PhotoRef); err != nil {
			return nil, err
		}
	}

	id, err := newULID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	rec, err := observation.New(id, clock.Now(), observation.Params{
		Location:         location,
		Latitude:         *latitude,
		Longitude:        *longitude,
		HardAuthenticity: input.HardAuthenticity,
		HardEmotion:      input.HardEmotion,
		SoftAuthenticity: input.SoftAuthenticity,
		SoftEmotion:      input.SoftEmotion,
		PhotoRef:         input.PhotoRef,
		Note:             input.Note,
	}, cfg.ScoreMin, cfg.ScoreMax)
	if err != nil {
		return nil, err
	}

	if err := s.Append(rec); err != nil {
		return nil, err
	}

	v := vector.Compute(rec)
	return &RecordOutput{
		ID:         rec.ID,
		Location:   rec.Location,
		RecordedAt: rec.RecordedAt,
		Vector:     v,
		Category:   vector.Classify(v, cfg.Thresholds),
	}, nil
}
