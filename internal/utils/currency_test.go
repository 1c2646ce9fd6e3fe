package utils

import (
	"testing"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{
			name:   "below one lakh uses grouped integer",
			amount: 50000,
			want:   "₹50,000",
		},
		{
			name:   "small amount needs no separator",
			amount: 500,
			want:   "₹500",
		},
		{
			name:   "zero",
			amount: 0,
			want:   "₹0",
		},
		{
			name:   "just below one lakh",
			amount: 99999,
			want:   "₹99,999",
		},
		{
			name:   "one lakh boundary",
			amount: 100000,
			want:   "₹1.0 L",
		},
		{
			name:   "mid-range lakhs",
			amount: 4550000,
			want:   "₹45.5 L",
		},
		{
			name:   "just below one crore rounds to 100.0 L",
			amount: 9999999,
			want:   "₹100.0 L",
		},
		{
			name:   "one crore boundary",
			amount: 10000000,
			want:   "₹1.0 Cr",
		},
		{
			name:   "mid-range crores",
			amount: 34000000,
			want:   "₹3.4 Cr",
		},
		{
			name:   "just below 100 crores keeps one decimal",
			amount: 999999999,
			want:   "₹100.0 Cr",
		},
		{
			name:   "100 crores drops the decimal",
			amount: 1000000000,
			want:   "₹100 Cr",
		},
		{
			name:   "very large amount",
			amount: 2500000000,
			want:   "₹250 Cr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINR(tt.amount); got != tt.want {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestInLakhs(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{50000, "₹0.5 Lakhs"},
		{2500000, "₹25.0 Lakhs"},
		{87960120, "₹879.6 Lakhs"},
	}

	for _, tt := range tests {
		if got := InLakhs(tt.amount); got != tt.want {
			t.Errorf("InLakhs(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{3.14159, 3.14},
		{2.5, 2.5},
		{1000000, 1000000},
		{87960119.999999996, 87960120},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{50000, "50,000"},
		{999999, "999,999"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.want {
			t.Errorf("groupThousands(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
