package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount), 2)
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// WholeDollars returns a currency string rounded to whole dollars, matching
// the wizard's display rule for large figures (e.g., "$320,000").
func WholeDollars(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(math.Round(amount)), 0)
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

func formatPositiveCurrency(value float64, decimals int) string {
	formatted := fmt.Sprintf("%.*f", decimals, value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	if len(parts) == 2 {
		return intPart + "." + parts[1]
	}
	return intPart
}
