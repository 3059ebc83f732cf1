package util

import (
	"fmt"
	"time"
)

// FormatNumber renders a count with K/M suffixes for compact display.
func FormatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	} else if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}

// FormatDuration renders a duration as "Xh Ym" or "Ym".
func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatBurnRate renders a tokens/minute rate.
func FormatBurnRate(rate float64) string {
	if rate < 1000 {
		return fmt.Sprintf("%.1f tokens/min", rate)
	} else if rate < 1000000 {
		return fmt.Sprintf("%.1fK tokens/min", rate/1000)
	}
	return fmt.Sprintf("%.1fM tokens/min", rate/1000000)
}

// FormatCurrency renders an amount as dollars with four decimal places;
// session costs at the flat per-token rate are routinely sub-cent.
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("$%.4f", amount)
}

// FormatCommaNumber renders an integer with thousands separators.
func FormatCommaNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, digit)
	}
	return string(result)
}
