package vector

import (
	"github.com/knagasaki/spectra/internal/config"
)

// Category is a qualitative reading of a Hard→Soft displacement.
type Category string

const (
	// CategoryNegligible: the displacement is too small to signify a shift.
	CategoryNegligible Category = "negligible"

	// CategorySoftDominant: the experience outscores the material site on
	// both sub-dimensions (the vector points into the upper-right quadrant).
	CategorySoftDominant Category = "soft-dominant"

	// CategoryHardDominant: the material site outscores the experience on
	// both sub-dimensions (the vector points into the lower-left quadrant).
	CategoryHardDominant Category = "hard-dominant"

	// CategoryBalanced: one sub-dimension gains while the other loses.
	CategoryBalanced Category = "balanced"
)

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryNegligible,
	CategorySoftDominant,
	CategoryHardDominant,
	CategoryBalanced,
}

// Classify maps a vector into a Category using configured thresholds.
// Magnitude at or below NegligibleMagnitude short-circuits to negligible;
// otherwise the quadrant of the displacement decides, with per-axis deltas
// within AxisTolerance treated as zero.
func Classify(v Vector, th config.Thresholds) Category {
	if v.Magnitude <= th.NegligibleMagnitude {
		return CategoryNegligible
	}

	da := snapToZero(v.DeltaAuthenticity(), th.AxisTolerance)
	de := snapToZero(v.DeltaEmotion(), th.AxisTolerance)

	switch {
	case da >= 0 && de >= 0:
		return CategorySoftDominant
	case da <= 0 && de <= 0:
		return CategoryHardDominant
	default:
		return CategoryBalanced
	}
}

func snapToZero(delta, tolerance float64) float64 {
	if delta >= -tolerance && delta <= tolerance {
		return 0
	}
	return delta
}
