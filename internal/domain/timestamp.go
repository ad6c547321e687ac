package domain

import (
	"fmt"
	"time"
)

// UnknownToken stands in for a feed timestamp that is absent or unparsable.
const UnknownToken = "unknown"

const compactLayout = "20060102_150405"

// FormatCompactTimestamp converts an ISO-8601 timestamp (trailing "Z"
// meaning UTC) to the filename-safe YYYYMMDD_HHMMSS form. It never fails:
// empty or malformed input degrades to [UnknownToken].
func FormatCompactTimestamp(ts string) string {
	if ts == "" {
		return UnknownToken
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return UnknownToken
	}
	return t.Format(compactLayout)
}

// SnapshotStem derives the image filename stem from both feed timestamps,
// e.g. "obs_20251112_214700__fc_20251112_223600". Each part degrades to
// [UnknownToken] independently.
func SnapshotStem(observationTime, forecastTime string) string {
	return fmt.Sprintf("obs_%s__fc_%s",
		FormatCompactTimestamp(observationTime),
		FormatCompactTimestamp(forecastTime))
}
