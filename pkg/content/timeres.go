package content

import (
	"regexp"
	"strconv"
	"time"
)

var clockRe = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// TimeResolver converts partial locale-formatted time strings into absolute
// timestamps using a configured timezone.
type TimeResolver struct {
	loc *time.Location
	now func() time.Time
}

// NewTimeResolver creates a resolver for the given timezone
func NewTimeResolver(loc *time.Location) *TimeResolver {
	return &TimeResolver{loc: loc, now: time.Now}
}

// Resolve extracts the first HH:mm substring from raw and returns "today at
// HH:mm" in the resolver's timezone, converted to UTC. Returns nil when no
// valid clock value is present.
//
// Rollover rule: a 23:xx value observed while the local clock reads 0:xx is
// shifted back one day, correcting feeds that still report yesterday's items
// shortly after midnight.
func (r *TimeResolver) Resolve(raw string) *time.Time {
	m := clockRe.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return nil
	}

	nowLocal := r.now().In(r.loc)
	candidate := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), hour, minute, 0, 0, r.loc)

	if hour == 23 && nowLocal.Hour() == 0 {
		candidate = candidate.AddDate(0, 0, -1)
	}

	utc := candidate.UTC()
	return &utc
}
