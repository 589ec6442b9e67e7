package timeparse

import (
	"fmt"
	"time"
)

// timeLayouts are tried in order by ParseTime. The first two are read as UTC.
var timeLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
}

// ParseTime parses a timestamp in one of these forms:
//   - YYYY-MM-DD (midnight UTC)
//   - YYYY-MM-DD HH:MM:SS (UTC)
//   - RFC3339, e.g. 2018-10-27T10:00:00Z, in any zone
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, or RFC3339)", s)
}

// Between returns the whole seconds elapsed from start to end, dropping any
// sub-second remainder. It fails when end is before start.
func Between(start, end time.Time) (Period, error) {
	if end.Before(start) {
		return Period{}, fmt.Errorf("end %s is before start %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return FromStd(end.Sub(start)), nil
}
