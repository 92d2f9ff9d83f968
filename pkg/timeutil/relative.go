// Package timeutil provides human-friendly time formatting helpers.
package timeutil

import (
	"fmt"
	"time"
)

// Relative renders t against now in the dashboard style: "just now",
// "12m ago", "3h ago", "5d ago", then the date for anything older than a
// week.
func Relative(now, t time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}
	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))
	switch {
	case minutes < 1:
		return "just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	default:
		return t.Format("Jan 2, 2006")
	}
}
