// Package vector derives the Hard→Soft displacement geometry from
// observation records. Vectors are computed on demand and never persisted;
// reanalysis always starts from the records themselves.
package vector

import (
	"math"

	"github.com/knagasaki/spectra/internal/observation"
)

// Point is a position in the 2-D authenticity×emotion plane.
type Point struct {
	Authenticity float64 `json:"authenticity"`
	Emotion      float64 `json:"emotion"`
}

// Vector is the displacement from a record's Hard point to its Soft point.
type Vector struct {
	Origin   Point `json:"origin"`
	Terminus Point `json:"terminus"`

	// Magnitude is the Euclidean distance between origin and terminus.
	Magnitude float64 `json:"magnitude"`

	// Direction is the displacement angle in radians, counter-clockwise from
	// the positive authenticity axis, in (-π, π]. For the degenerate case
	// where origin equals terminus, Direction is 0 by convention rather than
	// whatever atan2(0, 0) happens to return.
	Direction float64 `json:"direction"`
}

// Compute derives the displacement vector for a record. It is a pure,
// deterministic function of the four score fields and never fails for a
// record that passed construction.
func Compute(rec *observation.Record) Vector {
	origin := Point{Authenticity: rec.HardAuthenticity, Emotion: rec.HardEmotion}
	terminus := Point{Authenticity: rec.SoftAuthenticity, Emotion: rec.SoftEmotion}

	da := terminus.Authenticity - origin.Authenticity
	de := terminus.Emotion - origin.Emotion

	direction := 0.0
	if da != 0 || de != 0 {
		direction = math.Atan2(de, da)
	}

	return Vector{
		Origin:    origin,
		Terminus:  terminus,
		Magnitude: math.Hypot(da, de),
		Direction: direction,
	}
}

// DeltaAuthenticity returns the authenticity component of the displacement.
func (v Vector) DeltaAuthenticity() float64 {
	return v.Terminus.Authenticity - v.Origin.Authenticity
}

// DeltaEmotion returns the emotion component of the displacement.
func (v Vector) DeltaEmotion() float64 {
	return v.Terminus.Emotion - v.Origin.Emotion
}
