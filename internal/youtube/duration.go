package youtube

import (
	"fmt"
	"regexp"
	"strconv"
)

// DefaultDuration stands in when no exact duration is known or the metadata
// is malformed.
const DefaultDuration = "3:30"

var isoDurationRE = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// parseISODuration splits an ISO-8601 video duration ("PT3M30S") into its
// components. All components are optional and default to zero.
func parseISODuration(raw string) (hours, minutes, seconds int, ok bool) {
	m := isoDurationRE.FindStringSubmatch(raw)
	if m == nil {
		return 0, 0, 0, false
	}
	hours, _ = strconv.Atoi(m[1])
	minutes, _ = strconv.Atoi(m[2])
	seconds, _ = strconv.Atoi(m[3])
	return hours, minutes, seconds, true
}

// DecodeDuration converts an ISO-8601 video duration into a display string:
// "M:SS" when under an hour, "H:MM:SS" otherwise. Malformed input yields
// DefaultDuration.
func DecodeDuration(raw string) string {
	h, m, s, ok := parseISODuration(raw)
	if !ok {
		return DefaultDuration
	}
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
