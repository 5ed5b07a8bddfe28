package vector

import (
	"math"

	"github.com/knagasaki/spectra/internal/config"
	"github.com/knagasaki/spectra/internal/errors"
	"github.com/knagasaki/spectra/internal/observation"
)

// AggregateStats summarizes displacement geometry across a collection.
type AggregateStats struct {
	Count int `json:"count"`

	// MeanMagnitude is the arithmetic mean of per-record magnitudes.
	MeanMagnitude float64 `json:"mean_magnitude"`

	// MeanDirection is the circular mean of per-record directions, computed
	// by summing unit vectors rather than averaging angles, so directions
	// straddling the ±π boundary do not cancel into nonsense. It is 0 when
	// the resultant vanishes (directions in perfect opposition).
	MeanDirection float64 `json:"mean_direction"`

	// CircularVariance is 1 − R/n where R is the resultant length of the
	// summed unit vectors: 0 when all directions agree, approaching 1 as
	// they scatter.
	CircularVariance float64 `json:"circular_variance"`

	// CategoryCounts maps each category to the number of records in it.
	CategoryCounts map[Category]int `json:"category_counts"`
}

// resultantEpsilon guards the degenerate resultant: below this the mean
// direction is undefined and reported as 0 with variance 1.
const resultantEpsilon = 1e-12

// Aggregate computes summary statistics over a non-empty collection.
// An empty collection is an error, never a silent zero.
func Aggregate(records []*observation.Record, th config.Thresholds) (*AggregateStats, error) {
	if len(records) == 0 {
		return nil, errors.NewEmptyCollection()
	}

	counts := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		counts[c] = 0
	}

	var sumMagnitude, sumCos, sumSin float64
	for _, rec := range records {
		v := Compute(rec)
		sumMagnitude += v.Magnitude
		sumCos += math.Cos(v.Direction)
		sumSin += math.Sin(v.Direction)
		counts[Classify(v, th)]++
	}

	n := float64(len(records))
	resultant := math.Hypot(sumCos, sumSin)

	meanDirection := 0.0
	variance := 1.0
	if resultant > resultantEpsilon {
		meanDirection = math.Atan2(sumSin, sumCos)
		variance = max(1-resultant/n, 0)
	}

	return &AggregateStats{
		Count:            len(records),
		MeanMagnitude:    sumMagnitude / n,
		MeanDirection:    meanDirection,
		CircularVariance: variance,
		CategoryCounts:   counts,
	}, nil
}
