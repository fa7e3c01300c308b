// Package stats derives totals and rankings from an entry snapshot. Every
// function is total: an empty collection gives zero values, never an error.
package stats

import (
	"sort"
	"time"

	"tableflip.dev/recall/pkg/day"
	"tableflip.dev/recall/pkg/entry"
)

// Totals is an entry count with the sum of their minutes.
type Totals struct {
	Count   int `json:"count"`
	Minutes int `json:"minutes"`
}

func (t *Totals) add(e entry.Entry) {
	t.Count++
	t.Minutes += e.MinutesOrZero()
}

// Today counts the entries attributed to the day containing now and sums
// their minutes, treating absent minutes as zero.
func Today(entries []entry.Entry, now time.Time) Totals {
	today := day.Today(now)
	var t Totals
	for _, e := range entries {
		if e.Day == today {
			t.add(e)
		}
	}
	return t
}

// Streak counts consecutive days with at least one entry, walking back from
// today. It is 0 when today has no entries.
func Streak(entries []entry.Entry, now time.Time) int {
	days := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		days[e.Day] = struct{}{}
	}
	streak := 0
	for {
		if _, ok := days[day.Shift(now, -streak)]; !ok {
			return streak
		}
		streak++
	}
}

// TagCount is a tag with the number of entries carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TagCounts ranks every tag by occurrence, highest first. Ties keep the order
// in which the tags were first seen.
func TagCounts(entries []entry.Entry) []TagCount {
	index := make(map[string]int)
	counts := make([]TagCount, 0)
	for _, e := range entries {
		for _, tag := range e.Tags {
			i, ok := index[tag]
			if !ok {
				i = len(counts)
				index[tag] = i
				counts = append(counts, TagCount{Tag: tag})
			}
			counts[i].Count++
		}
	}
	sort.SliceStable(counts, func(a, b int) bool {
		return counts[a].Count > counts[b].Count
	})
	return counts
}

// TopTags returns the names of the limit most used tags. A non-positive limit
// returns them all.
func TopTags(entries []entry.Entry, limit int) []string {
	counts := TagCounts(entries)
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	tags := make([]string, len(counts))
	for i, c := range counts {
		tags[i] = c.Tag
	}
	return tags
}

// Window returns the entries attributed to the week-scale window selected by
// mode: the Monday-start week containing now for RangeThisWeek, or today and
// the six days before it for RangeLast7. Any other mode is treated as
// RangeThisWeek.
func Window(entries []entry.Entry, mode day.Range, now time.Time) []entry.Entry {
	mode = WindowMode(mode)
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if day.InRange(e.Day, mode, now) {
			out = append(out, e)
		}
	}
	return out
}

// WindowMode normalizes mode to one of the two weekly windows.
func WindowMode(mode day.Range) day.Range {
	if mode == day.RangeLast7 {
		return day.RangeLast7
	}
	return day.RangeThisWeek
}

// TypeTotal is the count and minutes for one entry type.
type TypeTotal struct {
	Type    entry.Type `json:"type"`
	Count   int        `json:"count"`
	Minutes int        `json:"minutes"`
}

// Weekly partitions a weekly window by entry type.
type Weekly struct {
	Mode    day.Range   `json:"mode"`
	ByType  []TypeTotal `json:"byType"`
	Count   int         `json:"count"`
	Minutes int         `json:"minutes"`
}

// For returns the totals for t, zero when absent.
func (w Weekly) For(t entry.Type) TypeTotal {
	for _, tt := range w.ByType {
		if tt.Type == t {
			return tt
		}
	}
	return TypeTotal{Type: t}
}

// WeeklyTotals selects the window for mode and totals it per entry type. Every
// type is present in ByType, in entry.AllTypes order.
func WeeklyTotals(entries []entry.Entry, mode day.Range, now time.Time) Weekly {
	w := Weekly{Mode: WindowMode(mode)}
	types := entry.AllTypes()
	index := make(map[entry.Type]int, len(types))
	w.ByType = make([]TypeTotal, len(types))
	for i, t := range types {
		index[t] = i
		w.ByType[i] = TypeTotal{Type: t}
	}
	for _, e := range Window(entries, w.Mode, now) {
		i, ok := index[e.Type]
		if !ok {
			continue
		}
		w.ByType[i].Count++
		w.ByType[i].Minutes += e.MinutesOrZero()
		w.Count++
		w.Minutes += e.MinutesOrZero()
	}
	return w
}

// Point is one day of the momentum chart.
type Point struct {
	Day     string `json:"day"`
	Weekday string `json:"weekday"`
	Count   int    `json:"count"`
	Minutes int    `json:"minutes"`
}

// MomentumDays is the length of the momentum series.
const MomentumDays = 7

// Momentum returns per-day totals for today and the six days before it,
// oldest first.
func Momentum(entries []entry.Entry, now time.Time) []Point {
	points := make([]Point, MomentumDays)
	index := make(map[string]int, MomentumDays)
	for i := range points {
		d := day.AddDays(now, i-(MomentumDays-1))
		points[i] = Point{Day: day.Key(d), Weekday: day.Weekday(d)}
		index[points[i].Day] = i
	}
	for _, e := range entries {
		if i, ok := index[e.Day]; ok {
			points[i].Count++
			points[i].Minutes += e.MinutesOrZero()
		}
	}
	return points
}
