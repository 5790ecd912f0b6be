package formaters

import (
	"fmt"
	"time"
)

// RoundAndFormatDuration renders the age of an RFC3339 timestamp in its
// largest unit. Timestamps that do not parse are returned untouched.
func RoundAndFormatDuration(timestamp string) string {
	if timestamp == "" || timestamp == "-" {
		return "-"
	}

	created, err := time.Parse(time.RFC3339Nano, timestamp)

	if err != nil || created.IsZero() {
		return timestamp
	}

	d := time.Since(created)

	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		if seconds > 0 {
			return fmt.Sprintf("%dm%ds", minutes, seconds)
		}
		return fmt.Sprintf("%dm", minutes)
	} else if d < 24*time.Hour {
		hours := int(d.Hours())
		return fmt.Sprintf("%dh", hours)
	} else {
		days := int(d.Hours()) / 24
		return fmt.Sprintf("%dd", days)
	}
}
