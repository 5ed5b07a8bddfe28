package vector

import (
	"math"
	"testing"

	"github.com/knagasaki/spectra/internal/errors"
	"github.com/knagasaki/spectra/internal/observation"
)

func TestAggregate_Empty(t *testing.T) {
	_, err := Aggregate(nil, testThresholds)
	if !errors.Is(err, errors.ErrEmptyCollection) {
		t.Errorf("want EMPTY_COLLECTION, got %v", err)
	}

	_, err = Aggregate([]*observation.Record{}, testThresholds)
	if !errors.Is(err, errors.ErrEmptyCollection) {
		t.Errorf("empty slice: want EMPTY_COLLECTION, got %v", err)
	}
}

func TestAggregate_SingleRecord(t *testing.T) {
	r := rec(t, 2, 3, 8, 7)
	v := Compute(r)

	stats, err := Aggregate([]*observation.Record{r}, testThresholds)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if stats.Count != 1 {
		t.Errorf("Count = %d, want 1", stats.Count)
	}
	// Mean magnitude over one record equals that record's magnitude exactly.
	if stats.MeanMagnitude != v.Magnitude {
		t.Errorf("MeanMagnitude = %v, want %v", stats.MeanMagnitude, v.Magnitude)
	}
	if math.Abs(stats.MeanDirection-v.Direction) > 1e-12 {
		t.Errorf("MeanDirection = %v, want %v", stats.MeanDirection, v.Direction)
	}
	if stats.CategoryCounts[CategorySoftDominant] != 1 {
		t.Errorf("CategoryCounts = %v, want one soft-dominant", stats.CategoryCounts)
	}
}

func TestAggregate_IdenticalVectors(t *testing.T) {
	a := rec(t, 2, 3, 8, 7)
	b := rec(t, 2, 3, 8, 7)
	v := Compute(a)

	stats, err := Aggregate([]*observation.Record{a, b}, testThresholds)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if stats.MeanMagnitude != v.Magnitude {
		t.Errorf("MeanMagnitude = %v, want %v", stats.MeanMagnitude, v.Magnitude)
	}
	if stats.CircularVariance > 1e-12 {
		t.Errorf("CircularVariance = %v, want 0 for identical directions", stats.CircularVariance)
	}
}

func TestAggregate_WraparoundNearPi(t *testing.T) {
	// Directions just either side of the ±π boundary: one at ~+177°, one at
	// ~-177°. A naive arithmetic mean of the angles lands near 0 (pointing
	// the opposite way); the circular mean must stay near ±π.
	a := rec(t, 10, 0, 0, 0.5)  // atan2(0.5, -10) ≈ +3.09
	b := rec(t, 10, 0, 0, -0.5) // atan2(-0.5, -10) ≈ -3.09

	stats, err := Aggregate([]*observation.Record{a, b}, testThresholds)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if math.Abs(math.Abs(stats.MeanDirection)-math.Pi) > 0.01 {
		t.Errorf("MeanDirection = %v, want ≈ ±π (wraparound-safe mean)", stats.MeanDirection)
	}
	if stats.CircularVariance > 0.01 {
		t.Errorf("CircularVariance = %v, want near 0 for nearly parallel directions", stats.CircularVariance)
	}
}

func TestAggregate_OpposedDirections(t *testing.T) {
	// Two equal-magnitude vectors in perfect opposition: the resultant
	// vanishes, so mean direction falls back to 0 and variance is 1.
	a := rec(t, 0, 0, 10, 0)
	b := rec(t, 10, 0, 0, 0)

	stats, err := Aggregate([]*observation.Record{a, b}, testThresholds)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if stats.MeanDirection != 0 {
		t.Errorf("MeanDirection = %v, want 0 for vanished resultant", stats.MeanDirection)
	}
	if stats.CircularVariance != 1 {
		t.Errorf("CircularVariance = %v, want 1", stats.CircularVariance)
	}
}

func TestAggregate_CategoryCounts(t *testing.T) {
	records := []*observation.Record{
		rec(t, 0, 0, 1, 1),    // negligible
		rec(t, 2, 3, 8, 7),    // soft-dominant
		rec(t, 30, 20, 10, 5), // hard-dominant
		rec(t, 0, 20, 30, 10), // balanced
		rec(t, 2, 3, 8, 7),    // soft-dominant
	}

	stats, err := Aggregate(records, testThresholds)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	want := map[Category]int{
		CategoryNegligible:   1,
		CategorySoftDominant: 2,
		CategoryHardDominant: 1,
		CategoryBalanced:     1,
	}
	for cat, n := range want {
		if stats.CategoryCounts[cat] != n {
			t.Errorf("CategoryCounts[%s] = %d, want %d", cat, stats.CategoryCounts[cat], n)
		}
	}
}
