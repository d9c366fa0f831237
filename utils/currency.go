package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency renders an amount with thousand separators and 2 decimals,
// e.g. 15000.5 -> "15,000.50". Used for the display strings in the dashboard
// stats payload.
func FormatCurrency(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	neg := strings.HasPrefix(formatted, "-")
	if neg {
		formatted = formatted[1:]
	}

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	out := strings.Join(result, ",") + "." + decimalPart
	if neg {
		out = "-" + out
	}
	return out
}
