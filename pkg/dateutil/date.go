package dateutil

import "time"

// Layout is the calendar-date format used for watering histories and
// user-local dates sent by clients.
const Layout = "2006-01-02"

func Format(t time.Time) string {
	return t.Format(Layout)
}

func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

func IsValid(s string) bool {
	_, err := time.Parse(Layout, s)
	return err == nil
}

func Today() string {
	return Format(time.Now())
}

// ToDate strips the clock time, leaving the calendar date in UTC the
// same way Parse reads one.
func ToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextTimeOfDay returns the next occurrence of hour:minute after now.
func NextTimeOfDay(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}
