package utils

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     float64
	}{
		{"money round down", 1.234, 2, 1.23},
		{"money round up", 1.236, 2, 1.24},
		{"float drift sum", 0.1 + 0.2, 2, 0.3},
		{"shares precision", 10.00004, 4, 10.0},
		{"shares round up", 3.33335, 4, 3.3334},
		{"negative amount", -5.678, 2, -5.68},
		{"zero decimals", 7.6, 0, 8},
		{"already exact", 100.25, 2, 100.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round(tt.value, tt.decimals)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Round(%v, %d) = %v, want %v", tt.value, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestRoundDriftAccumulation(t *testing.T) {
	// Summing 0.01 a thousand times drifts without rescaling; rounding the
	// running total after each step must keep it exact.
	total := 0.0
	for i := 0; i < 1000; i++ {
		total = RoundMoney(total + 0.01)
	}
	if total != 10.0 {
		t.Errorf("accumulated total = %v, want 10.0", total)
	}
}

func TestFormatEuro(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{9900, "€9,900.00"},
		{1234567.89, "€1,234,567.89"},
		{0, "€0.00"},
		{-45.5, "-€45.50"},
		{999.999, "€1,000.00"},
	}

	for _, tt := range tests {
		if got := FormatEuro(tt.amount); got != tt.want {
			t.Errorf("FormatEuro(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(4.2); got != "+4.20%" {
		t.Errorf("FormatPercent(4.2) = %q", got)
	}
	if got := FormatPercent(-1.5); got != "-1.50%" {
		t.Errorf("FormatPercent(-1.5) = %q", got)
	}
	if got := FormatPercent(0); got != "0.00%" {
		t.Errorf("FormatPercent(0) = %q", got)
	}
}
