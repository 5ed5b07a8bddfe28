package observation

import (
	"time"

	"github.com/knagasaki/spectra/internal/errors"
)

// Record represents one field-visit observation. A record is immutable once
// appended to the store: corrections are recorded as new observations so the
// field log stays auditable.
type Record struct {
	// ID is a ULID that uniquely identifies this observation
	ID string

	// Location is the site label as entered in the field
	Location string

	// Latitude and Longitude are WGS-84 coordinates of the site
	Latitude  float64
	Longitude float64

	// HardAuthenticity and HardEmotion place the site in Hard space:
	// the material/environmental axis (replica↔original, harsh↔comfort)
	HardAuthenticity float64
	HardEmotion      float64

	// SoftAuthenticity and SoftEmotion place the site in Soft space:
	// the informational/experiential axis (fiction↔fact, painful↔fun)
	SoftAuthenticity float64
	SoftEmotion      float64

	// RecordedAt is the creation time, UTC at second precision
	RecordedAt time.Time

	// PhotoRef is an opaque reference into the photo store (optional)
	PhotoRef string

	// Note is free-text markdown commentary (optional)
	Note string
}

// Params carries the caller-supplied fields for constructing a Record.
// The id and timestamp are assigned by the operation layer, not the caller.
type Params struct {
	Location         string
	Latitude         float64
	Longitude        float64
	HardAuthenticity float64
	HardEmotion      float64
	SoftAuthenticity float64
	SoftEmotion      float64
	PhotoRef         string
	Note             string
}

// New constructs a validated Record. Construction is pure: no side effects,
// and a failed validation leaves nothing behind. Scores outside [min, max]
// are rejected, never clamped.
func New(id string, recordedAt time.Time, p Params, min, max float64) (*Record, error) {
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	if recordedAt.IsZero() {
		return nil, errors.NewInvalidRequest("recorded_at is required")
	}
	if Normalize(p.Location) == "" {
		return nil, errors.NewInvalidRequest("location is required")
	}

	if err := ValidateCoordinate("latitude", p.Latitude, MaxLatitude); err != nil {
		return nil, err
	}
	if err := ValidateCoordinate("longitude", p.Longitude, MaxLongitude); err != nil {
		return nil, err
	}

	scores := []struct {
		field string
		value float64
	}{
		{"hard_authenticity", p.HardAuthenticity},
		{"hard_emotion", p.HardEmotion},
		{"soft_authenticity", p.SoftAuthenticity},
		{"soft_emotion", p.SoftEmotion},
	}
	for _, s := range scores {
		if _, err := ValidateRange(s.field, s.value, min, max); err != nil {
			return nil, err
		}
	}

	return &Record{
		ID:               id,
		Location:         p.Location,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		HardAuthenticity: p.HardAuthenticity,
		HardEmotion:      p.HardEmotion,
		SoftAuthenticity: p.SoftAuthenticity,
		SoftEmotion:      p.SoftEmotion,
		RecordedAt:       recordedAt.UTC().Truncate(time.Second),
		PhotoRef:         p.PhotoRef,
		Note:             p.Note,
	}, nil
}
