package util

import "time"

const ISO8601Layout = "2006-01-02T15:04:05.000Z"

// ISO8601 formats a millisecond timestamp, an empty string for a nil timestamp
func ISO8601(ms *int64) string {
	if ms == nil {
		return ""
	}

	return time.UnixMilli(*ms).UTC().Format(ISO8601Layout)
}
