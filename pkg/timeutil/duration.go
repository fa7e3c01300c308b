// Package timeutil reads and writes the time-spent values attached to
// entries.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]*)`)
	unitMinutes    = map[string]int{
		"":        1,
		"m":       1,
		"min":     1,
		"mins":    1,
		"minute":  1,
		"minutes": 1,
		"h":       60,
		"hr":      60,
		"hrs":     60,
		"hour":    60,
		"hours":   60,
	}
)

// ParseMinutes reads a time spent such as "45", "45m", "1h30m" or "2h 15m"
// and returns it in whole minutes. A bare number is minutes.
func ParseMinutes(input string) (int, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, fmt.Errorf("time spent is required")
	}

	total := 0
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid time segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid time value %q: %w", matches[1], err)
		}
		scale, ok := unitMinutes[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported time unit %q", matches[2])
		}
		total += value * scale

		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}
	return total, nil
}

// FormatMinutes renders minutes as "45m" or "1h30m".
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, m)
	}
}
