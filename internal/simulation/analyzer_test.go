package simulation

import (
	"errors"
	"math"
	"testing"

	"github.com/yourusername/prop-sim/internal/models"
)

// sampleSet builds count samples with the given fraction strictly above line.
func sampleSet(count int, line, fractionOver float64) []float64 {
	samples := make([]float64, count)
	over := int(float64(count) * fractionOver)
	for i := 0; i < count; i++ {
		if i < over {
			samples[i] = line + 1
		} else {
			samples[i] = line - 1
		}
	}
	return samples
}

func TestAnalyzeProbabilityAndEV(t *testing.T) {
	samples := sampleSet(1000, 20.5, 0.6)
	analysis, err := Analyze(samples, 20.5, 2.0)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if math.Abs(analysis.ProbabilityOver-0.6) > 1e-12 {
		t.Errorf("probability over = %v, want 0.6", analysis.ProbabilityOver)
	}
	// EV = 0.6*2.0 - 0.4
	if math.Abs(analysis.ExpectedValue-0.8) > 1e-12 {
		t.Errorf("EV = %v, want 0.8", analysis.ExpectedValue)
	}
	if math.Abs(analysis.EdgePercentage-10) > 1e-12 {
		t.Errorf("edge = %v, want 10", analysis.EdgePercentage)
	}
	if analysis.Recommendation != models.GoodOver {
		t.Errorf("recommendation = %v, want GoodOver", analysis.Recommendation)
	}
}

func TestAnalyzeBoundsHold(t *testing.T) {
	for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1} {
		analysis, err := Analyze(sampleSet(1000, 10, frac), 10, 1.9091)
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		if analysis.ProbabilityOver < 0 || analysis.ProbabilityOver > 1 {
			t.Errorf("probability %v out of [0,1]", analysis.ProbabilityOver)
		}
		if analysis.EdgePercentage < -50 || analysis.EdgePercentage > 50 {
			t.Errorf("edge %v out of [-50,50]", analysis.EdgePercentage)
		}
	}
}

func TestAnalyzeEmptySamples(t *testing.T) {
	if _, err := Analyze(nil, 20.5, 2.0); !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestClassifyEdgeBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		edgePct float64
		want    models.Recommendation
	}{
		{"exactly 50", 50, models.VeryStrongOver},
		{"just below 50", 49.99, models.StrongOver},
		{"exactly 31", 31, models.StrongOver},
		{"just below 31", 30.99, models.GoodOver},
		{"exactly 10", 10, models.GoodOver},
		{"just below 10", 9.99, models.NoRecommendation},
		{"zero", 0, models.NoRecommendation},
		{"just above -10", -9.99, models.NoRecommendation},
		{"exactly -10", -10, models.GoodUnder},
		{"exactly -31", -31, models.StrongUnder},
		{"exactly -50", -50, models.VeryStrongUnder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyEdge(tt.edgePct); got != tt.want {
				t.Errorf("ClassifyEdge(%v) = %v, want %v", tt.edgePct, got, tt.want)
			}
		})
	}
}

func TestKellyFraction(t *testing.T) {
	// p=0.6, d=2.0: full Kelly = (1.2-1)/(2-1) = 0.2
	got := KellyFraction(0.6, 2.0, 1.0)
	if math.Abs(got-0.2) > 1e-12 {
		t.Errorf("full Kelly = %v, want 0.2", got)
	}

	quarter := KellyFraction(0.6, 2.0, 0.25)
	if math.Abs(quarter-0.05) > 1e-12 {
		t.Errorf("quarter Kelly = %v, want 0.05", quarter)
	}

	// Negative-edge bets never suggest a stake.
	if got := KellyFraction(0.4, 2.0, 1.0); got != 0 {
		t.Errorf("negative edge Kelly = %v, want 0", got)
	}
}

func TestSuggestStake(t *testing.T) {
	stake := SuggestStake(1000, 0.05)
	if stake.StringFixed(2) != "50.00" {
		t.Errorf("stake = %s, want 50.00", stake.StringFixed(2))
	}
	if !SuggestStake(0, 0.05).IsZero() {
		t.Error("zero bankroll must suggest zero stake")
	}
	if !SuggestStake(1000, 0).IsZero() {
		t.Error("zero Kelly must suggest zero stake")
	}
}
