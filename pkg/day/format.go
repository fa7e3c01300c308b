package day

import "time"

const (
	layoutShort    = "Jan 2"
	layoutWeekday  = "Mon, Jan 2"
	layoutFullDate = "Monday, January 2"
	layoutClock    = "3:04 PM"
)

// Clock abstracts time retrieval so derivations are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the local wall-clock time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Label renders id as "Today", "Yesterday" or a short weekday date.
func Label(id string, now time.Time) string {
	switch id {
	case Today(now):
		return "Today"
	case Yesterday(now):
		return "Yesterday"
	}
	t, err := Parse(id, now.Location())
	if err != nil {
		return id
	}
	return t.Format(layoutWeekday)
}

// FullDate renders id as "Monday, January 2", reading the day in loc.
func FullDate(id string, loc *time.Location) string {
	t, err := Parse(id, loc)
	if err != nil {
		return id
	}
	return t.Format(layoutFullDate)
}

// Short renders t as "Jan 2".
func Short(t time.Time) string {
	return t.Format(layoutShort)
}

// ShortTime renders an epoch-millisecond timestamp as a local clock time.
func ShortTime(ms int64) string {
	return time.UnixMilli(ms).Local().Format(layoutClock)
}

// Weekday renders t as its abbreviated weekday, e.g. "Mon".
func Weekday(t time.Time) string {
	return t.Format("Mon")
}
