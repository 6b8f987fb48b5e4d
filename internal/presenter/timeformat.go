package presenter

import (
	"fmt"
	"time"
)

type ageUnits struct {
	minutes, hours, days string
}

var (
	verboseUnits = ageUnits{" minutes", " hours", " days"}
	compactUnits = ageUnits{"m", "h", "d"}
)

// FormatTimeSince formats the age of t as "5 minutes ago", "2.5 hours ago", or "3 days ago"
func FormatTimeSince(t time.Time) string {
	return formatAge(time.Since(t), verboseUnits)
}

// FormatTimeSinceCompact formats the age of t as "5m ago", "2.5h ago", or "3d ago"
func FormatTimeSinceCompact(t time.Time) string {
	return formatAge(time.Since(t), compactUnits)
}

func formatAge(d time.Duration, u ageUnits) string {
	switch {
	case d < time.Hour:
		return fmt.Sprintf("%.0f%s ago", d.Minutes(), u.minutes)
	case d < 24*time.Hour:
		return fmt.Sprintf("%.1f%s ago", d.Hours(), u.hours)
	default:
		return fmt.Sprintf("%.0f%s ago", d.Hours()/24, u.days)
	}
}
