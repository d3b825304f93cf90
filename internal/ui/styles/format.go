package styles

import "fmt"

// FormatPetalCount returns the petals-left indicator, e.g. "🌼 9/13".
// Returns empty string when total is 0.
func FormatPetalCount(left, total int) string {
	if total <= 0 {
		return ""
	}
	left = max(0, min(left, total))
	return fmt.Sprintf("\U0001F33C %d/%d", left, total)
}
