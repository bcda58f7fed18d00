package utils

import (
	"fmt"
	"regexp"
	"strconv"
)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

var isoDuration = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:\d+(?:\.\d+)?S)?)?$`)

// ParseISODurationMinutes parses an ISO-8601 duration such as "PT7H5M" or
// "P1DT2H" into whole minutes. Seconds are dropped.
func ParseISODurationMinutes(duration string) (int64, bool) {
	match := isoDuration.FindStringSubmatch(duration)
	if match == nil || duration == "P" || duration == "PT" {
		return 0, false
	}

	var minutes int64
	for i, perUnit := range []int64{24 * 60, 60, 1} {
		if match[i+1] == "" {
			continue
		}

		n, err := strconv.ParseInt(match[i+1], 10, 64)
		if err != nil {
			return 0, false
		}

		minutes += n * perUnit
	}

	return minutes, true
}

// FormatISODuration renders an ISO-8601 duration the way ConvertMinutesToDuration
// does. Unparseable input is returned as is.
// Example: "PT7H5M" -> "7h 5m"
func FormatISODuration(duration string) string {
	minutes, ok := ParseISODurationMinutes(duration)
	if !ok {
		return duration
	}

	return ConvertMinutesToDuration(minutes)
}
