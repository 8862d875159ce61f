package timeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Ago renders how long before now t happened: "Just now" under an hour,
// then whole hours up to a day, then whole days.
func Ago(t, now time.Time) string {
	hours := int(now.Sub(t) / time.Hour)
	switch {
	case hours < 1:
		return "Just now"
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	default:
		return fmt.Sprintf("%dd ago", hours/24)
	}
}

// ParseClock parses a video length written as "m:ss" or "h:mm:ss".
func ParseClock(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("timeline: parse clock %q: want m:ss or h:mm:ss", s)
	}
	var total time.Duration
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("timeline: parse clock %q: bad field %q", s, p)
		}
		if i > 0 && n >= 60 {
			return 0, fmt.Errorf("timeline: parse clock %q: field %q out of range", s, p)
		}
		total = total*60 + time.Duration(n)
	}
	return total * time.Second, nil
}
