package query

import (
	"strings"
	"time"

	"go-jobdash-backend/internal/domain"
)

// The scrapers emit deadlines in two shapes depending on the source board.
var deadlineLayouts = []string{"2006.01.02", "2006-01-02"}

// farFuture is the sort key for undated postings: always after real dates.
var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// ParseDeadline parses either accepted deadline format, truncated to the day.
func ParseDeadline(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsExpired reports whether the posting's deadline has passed relative to
// now. Postings with no deadline, or an unparseable one, never expire.
func IsExpired(j domain.Job, now time.Time) bool {
	deadline, ok := ParseDeadline(j.Deadline)
	if !ok {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return deadline.Before(today)
}

func deadlineKey(j domain.Job) time.Time {
	if t, ok := ParseDeadline(j.Deadline); ok {
		return t
	}
	return farFuture
}
