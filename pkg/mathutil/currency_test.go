package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{1.004, 1.00},
		{1.005, 1.01},
		{-1.004, -1.00},
		{1234.5678, 1234.57},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Round(tt.input); got != tt.expected {
			t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestCeilDollar(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{944.44, 945},
		{340.0, 340},
		{-0.5, 0},
	}

	for _, tt := range tests {
		if got := CeilDollar(tt.input); got != tt.expected {
			t.Errorf("CeilDollar(%v) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("0.005 should be within currency tolerance")
	}
	if IsZero(0.02) {
		t.Error("0.02 should not be within currency tolerance")
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		value    float64
		total    float64
		expected float64
	}{
		{80000, 400000, 20},
		{20000, 400000, 5},
		{100, 0, 0},
	}

	for _, tt := range tests {
		if got := CalculatePercentage(tt.value, tt.total); got != tt.expected {
			t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v",
				tt.value, tt.total, got, tt.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if got := Max(-5, 0); got != 0 {
		t.Errorf("Max(-5, 0) = %v, expected 0", got)
	}
	if got := Max(3, 2); got != 3 {
		t.Errorf("Max(3, 2) = %v, expected 3", got)
	}
}
