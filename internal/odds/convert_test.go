package odds

import (
	"errors"
	"math"
	"testing"

	"github.com/yourusername/prop-sim/internal/models"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		american float64
		expected float64
		delta    float64
	}{
		{"Standard -110", -110, 1.9091, 0.0001},
		{"Underdog +150", 150, 2.5, 0.0001},
		{"Even money +100", 100, 2.0, 0.0001},
		{"Even money -100", -100, 2.0, 0.0001},
		{"Heavy favorite -300", -300, 1.3333, 0.0001},
		{"Big underdog +300", 300, 4.0, 0.0001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ToDecimal(tt.american)
			if err != nil {
				t.Fatalf("ToDecimal(%v) returned error: %v", tt.american, err)
			}
			if math.Abs(result-tt.expected) > tt.delta {
				t.Errorf("ToDecimal(%v) = %v, want %v", tt.american, result, tt.expected)
			}
		})
	}
}

func TestToDecimalZeroOdds(t *testing.T) {
	_, err := ToDecimal(0)
	if !errors.Is(err, models.ErrInvalidOdds) {
		t.Fatalf("expected ErrInvalidOdds, got %v", err)
	}
}

func TestToDecimalNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := ToDecimal(v); !errors.Is(err, models.ErrInvalidInput) {
			t.Errorf("ToDecimal(%v): expected ErrInvalidInput, got %v", v, err)
		}
	}
}

func TestImpliedProbability(t *testing.T) {
	tests := []struct {
		name     string
		american float64
		expected float64
	}{
		{"Favorite -150", -150, 0.6},
		{"Underdog +150", 150, 0.4},
		{"Even -100", -100, 0.5},
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ImpliedProbability(tt.american)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("ImpliedProbability(%v) = %v, want %v", tt.american, result, tt.expected)
			}
		})
	}
}
