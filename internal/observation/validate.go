package observation

import (
	"math"

	"github.com/knagasaki/spectra/internal/errors"
)

// Geographic bounds for coordinate validation.
const (
	MaxLatitude  = 90.0
	MaxLongitude = 180.0
)

// ValidateRange returns value unchanged when it lies within [min, max].
// Bounds are inclusive: a value exactly at min or max is valid.
// Every score field goes through this single check so the axes can never
// drift apart in what they accept.
func ValidateRange(field string, value, min, max float64) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.NewOutOfRange(field, value, min, max)
	}
	if value < min || value > max {
		return 0, errors.NewOutOfRange(field, value, min, max)
	}
	return value, nil
}

// ValidateCoordinate checks that value is a finite coordinate within ±bound.
func ValidateCoordinate(field string, value, bound float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.NewInvalidCoordinate(field, value)
	}
	if value < -bound || value > bound {
		return errors.NewInvalidCoordinate(field, value)
	}
	return nil
}
