package utils

import (
	"time"

	"github.com/gnomegl/productive-box/internal/models"
)

// SegmentForHour maps an hour of day (0-23) to its day segment.
func SegmentForHour(hour int) models.DaySegment {
	switch {
	case hour >= 6 && hour < 12:
		return models.Morning
	case hour >= 12 && hour < 18:
		return models.Daytime
	case hour >= 18 && hour < 24:
		return models.Evening
	default:
		return models.Night
	}
}

// SegmentOf buckets a commit instant by its local hour in loc. A nil loc means UTC.
func SegmentOf(commitTime time.Time, loc *time.Location) models.DaySegment {
	if loc == nil {
		loc = time.UTC
	}
	return SegmentForHour(commitTime.In(loc).Hour())
}

// ParseCommitTime parses a GitHub committedDate value.
func ParseCommitTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}
