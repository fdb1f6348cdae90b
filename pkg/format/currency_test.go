package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "$0.00"},
		{1234.56, "$1,234.56"},
		{-1234.56, "-$1,234.56"},
		{999, "$999.00"},
		{1000000, "$1,000,000.00"},
		{158.333333, "$158.33"},
	}

	for _, tt := range tests {
		if got := Currency(tt.input); got != tt.expected {
			t.Errorf("Currency(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestWholeDollars(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{320000, "$320,000"},
		{2128.97, "$2,129"},
		{-500.4, "-$500"},
		{0, "$0"},
	}

	for _, tt := range tests {
		if got := WholeDollars(tt.input); got != tt.expected {
			t.Errorf("WholeDollars(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
