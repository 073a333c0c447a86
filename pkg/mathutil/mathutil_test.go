package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number", -1.235, -1.24},
		{"Zero", 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSafeRatio(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{"Normal division", 50, 200, 0.25},
		{"Zero total", 50, 0, 0},
		{"Zero value", 0, 200, 0},
		{"Both zero", 0, 0, 0},
		{"Negative value", -50, 200, -0.25},
		{"Negative total", 50, -200, -0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SafeRatio(tt.value, tt.total)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("SafeRatio(%v, %v) = %v, expected %v", tt.value, tt.total, result, tt.expected)
			}
			if math.IsNaN(result) || math.IsInf(result, 0) {
				t.Errorf("SafeRatio(%v, %v) produced a non-finite value", tt.value, tt.total)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{"Quarter", 25, 100, 25},
		{"Whole", 100, 100, 100},
		{"Zero total yields zero", 42, 0, 0},
		{"Above hundred", 300, 200, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Percentage(tt.value, tt.total)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Percentage(%v, %v) = %v, expected %v", tt.value, tt.total, result, tt.expected)
			}
		})
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{"Six percent commission", 1500000, 6, 90000},
		{"Fractional rate", 21000000, 4.09, 858900},
		{"Zero rate", 1000, 0, 0},
		{"Zero value", 0, 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyPercentage(tt.value, tt.percentage)
			if math.Abs(result-tt.expected) > 1e-6 {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.percentage, result, tt.expected)
			}
		})
	}
}

func TestCeilAtLeast(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		min      int
		expected int
	}{
		{"Rounds up", 8.1, 3, 9},
		{"Exact integer", 12.0, 3, 12},
		{"Clamped to minimum", 1.2, 3, 3},
		{"Zero clamps", 0, 3, 3},
		{"Negative clamps", -4.5, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := CeilAtLeast(tt.val, tt.min); result != tt.expected {
				t.Errorf("CeilAtLeast(%v, %d) = %d, expected %d", tt.val, tt.min, result, tt.expected)
			}
		})
	}
}
