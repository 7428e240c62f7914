package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{amount: 0, expected: "$0.00"},
		{amount: 1540, expected: "$1,540.00"},
		{amount: 17590, expected: "$17,590.00"},
		{amount: 1234.56, expected: "$1,234.56"},
		{amount: -1234.56, expected: "-$1,234.56"},
		{amount: 500000, expected: "$500,000.00"},
	}

	for _, tt := range tests {
		if got := Currency(tt.amount); got != tt.expected {
			t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected string
	}{
		{ratio: 0.0725, expected: "7.25%"},
		{ratio: 0, expected: "0.00%"},
		{ratio: 1.0, expected: "100.00%"},
		{ratio: -0.013, expected: "-1.30%"},
	}

	for _, tt := range tests {
		if got := Percent(tt.ratio); got != tt.expected {
			t.Errorf("Percent(%v) = %q, expected %q", tt.ratio, got, tt.expected)
		}
	}
}

func TestMultiple(t *testing.T) {
	if got := Multiple(5.714); got != "5.71x" {
		t.Errorf("Multiple(5.714) = %q, expected 5.71x", got)
	}
}
