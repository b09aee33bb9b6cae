package formulas

import (
	"math"
	"testing"
)

func TestCalculateReturns(t *testing.T) {
	returns := CalculateReturns([]float64{100, 110, 99})

	if len(returns) != 2 {
		t.Fatalf("Expected 2 returns, got %d", len(returns))
	}
	if math.Abs(returns[0]-0.10) > 1e-9 {
		t.Errorf("Expected 0.10, got %f", returns[0])
	}
	if math.Abs(returns[1]-(-0.10)) > 1e-9 {
		t.Errorf("Expected -0.10, got %f", returns[1])
	}
}

func TestCalculateReturnsShortSeries(t *testing.T) {
	if got := CalculateReturns([]float64{100}); len(got) != 0 {
		t.Errorf("Expected empty returns for single price, got %v", got)
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		want   float64
	}{
		{"up 50 percent", []float64{100, 120, 150}, 50},
		{"down 10 percent", []float64{100, 90}, -10},
		{"single point", []float64{100}, 0},
		{"zero start", []float64{0, 100}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentChange(tt.prices); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestAnnualizedVolatility(t *testing.T) {
	// Constant returns have zero deviation, so zero volatility.
	if got := AnnualizedVolatility([]float64{0.01, 0.01, 0.01}); got != 0 {
		t.Errorf("Expected 0 volatility, got %f", got)
	}

	if got := AnnualizedVolatility(nil); got != 0 {
		t.Errorf("Expected 0 for empty input, got %f", got)
	}

	// Volatility scales with sqrt(252) over the sample deviation.
	returns := []float64{0.02, -0.02, 0.02, -0.02}
	want := StdDev(returns) * math.Sqrt(252)
	if got := AnnualizedVolatility(returns); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, got)
	}
}
