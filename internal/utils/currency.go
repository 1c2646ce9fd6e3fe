package utils

import (
	"fmt"
	"math"
	"strings"
)

// Magnitude thresholds for the Indian numbering convention
const (
	lakh  = 100000.0
	crore = 10000000.0
)

// FormatINR renders an amount in the Indian Lakhs/Crores convention:
// "₹8.8 Cr", "₹45.5 L", or a grouped integer like "₹50,000" below one lakh.
// Once the scaled value reaches 100 the decimal place is dropped.
func FormatINR(amount float64) string {
	switch {
	case amount >= crore:
		crores := amount / crore
		if crores >= 100 {
			return fmt.Sprintf("₹%.0f Cr", crores)
		}
		return fmt.Sprintf("₹%.1f Cr", crores)
	case amount >= lakh:
		lakhs := amount / lakh
		if lakhs >= 100 {
			return fmt.Sprintf("₹%.0f L", lakhs)
		}
		return fmt.Sprintf("₹%.1f L", lakhs)
	default:
		return "₹" + groupThousands(amount)
	}
}

// InLakhs renders the supplementary display string: the amount in lakhs at
// one decimal place regardless of magnitude, e.g. "₹879.6 Lakhs".
func InLakhs(amount float64) string {
	return fmt.Sprintf("₹%.1f Lakhs", amount/lakh)
}

// Round2 rounds to two decimals for response payloads
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// groupThousands renders a non-negative amount as an integer with thousands
// separators, e.g. 50000 -> "50,000".
func groupThousands(v float64) string {
	intPart := fmt.Sprintf("%.0f", v)

	if len(intPart) <= 3 {
		return intPart
	}

	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
