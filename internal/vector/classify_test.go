package vector

import (
	"testing"

	"github.com/knagasaki/spectra/internal/config"
)

var testThresholds = config.Thresholds{NegligibleMagnitude: 5, AxisTolerance: 0}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want Category
	}{
		{
			name: "zero vector is negligible",
			v:    Compute(rec(t, 0, 0, 0, 0)),
			want: CategoryNegligible,
		},
		{
			name: "small shift below threshold is negligible",
			v:    Compute(rec(t, 0, 0, 3, 3)),
			want: CategoryNegligible,
		},
		{
			name: "magnitude exactly at threshold is negligible",
			v:    Compute(rec(t, 0, 0, 3, 4)), // magnitude 5
			want: CategoryNegligible,
		},
		{
			name: "both deltas positive is soft-dominant",
			v:    Compute(rec(t, 2, 3, 8, 7)),
			want: CategorySoftDominant,
		},
		{
			name: "both deltas negative is hard-dominant",
			v:    Compute(rec(t, 30, 20, 10, 5)),
			want: CategoryHardDominant,
		},
		{
			name: "mixed signs is balanced",
			v:    Compute(rec(t, 0, 20, 30, 10)),
			want: CategoryBalanced,
		},
		{
			name: "axis-aligned positive is soft-dominant",
			v:    Compute(rec(t, 0, 0, 10, 0)),
			want: CategorySoftDominant,
		},
		{
			name: "axis-aligned negative is hard-dominant",
			v:    Compute(rec(t, 0, 10, 0, 0)),
			want: CategoryHardDominant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.v, testThresholds); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify_ThresholdsAreConfiguration(t *testing.T) {
	v := Compute(rec(t, 0, 0, 6, 8)) // magnitude 10

	if got := Classify(v, config.Thresholds{NegligibleMagnitude: 5}); got != CategorySoftDominant {
		t.Errorf("with threshold 5: got %q, want soft-dominant", got)
	}
	if got := Classify(v, config.Thresholds{NegligibleMagnitude: 12}); got != CategoryNegligible {
		t.Errorf("with threshold 12: got %q, want negligible", got)
	}
}

func TestClassify_AxisTolerance(t *testing.T) {
	// Authenticity dips slightly while emotion rises: strictly mixed signs,
	// but tolerance snaps the small delta to zero.
	v := Compute(rec(t, 10, 0, 9.5, 20))

	if got := Classify(v, config.Thresholds{NegligibleMagnitude: 5, AxisTolerance: 0}); got != CategoryBalanced {
		t.Errorf("without tolerance: got %q, want balanced", got)
	}
	if got := Classify(v, config.Thresholds{NegligibleMagnitude: 5, AxisTolerance: 1}); got != CategorySoftDominant {
		t.Errorf("with tolerance 1: got %q, want soft-dominant", got)
	}
}
