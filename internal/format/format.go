// Package format renders counts, rates and durations for status output.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatRate formats a records-per-second rate with comma-separated
// thousands and one decimal place.
// Example: 1204.3 → "1,204.3 /s", 0 → "0 /s". Negative rates return "---".
func FormatRate(perSec float64) string {
	if perSec < 0 {
		return "---"
	}
	if perSec == 0 {
		return "0 /s"
	}
	return formatCommaFloat(perSec) + " /s"
}

// Rate returns n per elapsed second, or -1 when elapsed is not positive.
func Rate(n int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return -1
	}
	return float64(n) / elapsed.Seconds()
}

// FormatDuration formats an elapsed time for the timer line.
// Under a second it is whole milliseconds, under a minute seconds with
// two decimals, otherwise minutes and zero-padded seconds.
func FormatDuration(d time.Duration) string {
	switch {
	case d < 0:
		return "---"
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.2f s", d.Seconds())
	default:
		m := int64(d / time.Minute)
		s := int64((d % time.Minute) / time.Second)
		return fmt.Sprintf("%dm%02ds", m, s)
	}
}

// FormatNumber formats an integer with locale-style comma separators.
// Example: 12345678 → "12,345,678".
// Uses strconv.FormatInt directly to avoid abs64 overflow for math.MinInt64.
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		return "-" + insertCommas(s[1:])
	}
	return insertCommas(s)
}

// Plural returns "1 record" or "N records" with N comma-separated.
func Plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return FormatNumber(int64(n)) + " " + noun + "s"
}

func formatCommaFloat(f float64) string {
	formatted := fmt.Sprintf("%.1f", f)
	sign := ""
	if len(formatted) > 0 && formatted[0] == '-' {
		sign = "-"
		formatted = formatted[1:]
	}
	parts := strings.SplitN(formatted, ".", 2)
	intPart := insertCommas(parts[0])
	if len(parts) == 2 {
		return sign + intPart + "." + parts[1]
	}
	return sign + intPart
}

// insertCommas inserts comma separators into a digit string every 3 digits from the right.
func insertCommas(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var buf strings.Builder
	lead := n % 3
	if lead > 0 {
		buf.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(s[i : i+3])
	}
	return buf.String()
}
