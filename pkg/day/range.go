package day

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Range is a named window of days relative to today.
type Range string

const (
	RangeToday     Range = "today"
	RangeYesterday Range = "yesterday"
	RangeLast7     Range = "last7"
	RangeThisWeek  Range = "thisWeek"
	RangeAll       Range = "all"
)

// AllRanges returns the supported ranges in display order.
func AllRanges() []Range {
	return []Range{
		RangeToday,
		RangeYesterday,
		RangeLast7,
		RangeThisWeek,
		RangeAll,
	}
}

var rangeAliases = map[string]Range{
	"today":     RangeToday,
	"t":         RangeToday,
	"yesterday": RangeYesterday,
	"y":         RangeYesterday,
	"last7":     RangeLast7,
	"7d":        RangeLast7,
	"week":      RangeLast7,
	"thisweek":  RangeThisWeek,
	"this-week": RangeThisWeek,
	"w":         RangeThisWeek,
	"all":       RangeAll,
	"any":       RangeAll,
}

// ParseRange converts user input, including short aliases such as "7d" or
// "y", into a Range.
func ParseRange(raw string) (Range, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return RangeLast7, nil
	}
	if r, ok := rangeAliases[key]; ok {
		return r, nil
	}
	return "", fmt.Errorf("day: unknown range %q", raw)
}

// Aliases lists the short spellings ParseRange accepts for r.
func Aliases(r Range) []string {
	out := make([]string, 0)
	for alias, target := range rangeAliases {
		if target == r && alias != strings.ToLower(string(r)) {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// Valid reports whether r is one of the named ranges.
func (r Range) Valid() bool {
	for _, candidate := range AllRanges() {
		if candidate == r {
			return true
		}
	}
	return false
}

// Label is the short human label used by filter listings.
func (r Range) Label() string {
	switch r {
	case RangeToday:
		return "Today"
	case RangeYesterday:
		return "Yesterday"
	case RangeLast7:
		return "Last 7"
	case RangeThisWeek:
		return "This week"
	case RangeAll:
		return "All"
	default:
		return string(r)
	}
}

// Bounds returns the inclusive first and last day of r relative to now. ok is
// false for RangeAll and unknown ranges, which have no bounds.
func (r Range) Bounds(now time.Time) (first, last string, ok bool) {
	switch r {
	case RangeToday:
		return Today(now), Today(now), true
	case RangeYesterday:
		return Yesterday(now), Yesterday(now), true
	case RangeLast7:
		return Shift(now, -6), Today(now), true
	case RangeThisWeek:
		monday, sunday := WeekRange(now)
		return Key(monday), Key(sunday), true
	default:
		return "", "", false
	}
}

// InRange reports whether the day identified by id falls within r, evaluated
// at day granularity relative to now. RangeAll accepts everything; an
// unparseable id or unknown range matches nothing else.
func InRange(id string, r Range, now time.Time) bool {
	if r == RangeAll {
		return true
	}
	if _, err := Parse(id, now.Location()); err != nil {
		return false
	}
	first, last, ok := r.Bounds(now)
	if !ok {
		return false
	}
	// canonical identifiers compare in calendar order
	return id >= first && id <= last
}
