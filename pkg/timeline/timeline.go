// Package timeline selects entries matching a filter and arranges them into
// day groups for display.
package timeline

import (
	"sort"
	"strings"
	"time"

	"tableflip.dev/recall/pkg/day"
	"tableflip.dev/recall/pkg/entry"
)

// Matches reports whether e passes every criterion of f, with day ranges
// evaluated relative to now.
func Matches(e entry.Entry, f entry.Filters, now time.Time) bool {
	if f.Type != entry.Any && f.Type != "" && e.Type != f.Type {
		return false
	}
	if !day.InRange(e.Day, f.Range, now) {
		return false
	}
	if f.Tag != nil && !e.HasTag(*f.Tag) {
		return false
	}
	if f.Query != "" && !matchesQuery(e, strings.ToLower(f.Query)) {
		return false
	}
	return true
}

func matchesQuery(e entry.Entry, lower string) bool {
	if strings.Contains(strings.ToLower(e.Text), lower) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), lower) {
			return true
		}
	}
	return e.Detail != nil && strings.Contains(strings.ToLower(*e.Detail), lower)
}

// Filter returns the entries matching f, in their original order. The input
// is not modified.
func Filter(entries []entry.Entry, f entry.Filters, now time.Time) []entry.Entry {
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if Matches(e, f, now) {
			out = append(out, e)
		}
	}
	return out
}

// Group is one day of entries. Total is the size of the group before any
// Limit was applied, so Total-len(Entries) entries are hidden.
type Group struct {
	Day     string        `json:"day"`
	Entries []entry.Entry `json:"entries"`
	Total   int           `json:"total"`
}

// Hidden is the number of entries Limit dropped from the group.
func (g Group) Hidden() int {
	return g.Total - len(g.Entries)
}

// GroupByDay partitions entries by day. Groups are ordered most recent day
// first and entries within a group by CreatedAt descending; ties keep input
// order.
func GroupByDay(entries []entry.Entry) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	for _, e := range entries {
		i, ok := index[e.Day]
		if !ok {
			i = len(groups)
			index[e.Day] = i
			groups = append(groups, Group{Day: e.Day})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	for i := range groups {
		list := groups[i].Entries
		sort.SliceStable(list, func(a, b int) bool {
			return list[a].CreatedAt > list[b].CreatedAt
		})
		groups[i].Total = len(list)
	}
	// canonical YYYY-MM-DD identifiers sort lexicographically
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Day > groups[b].Day
	})
	return groups
}

// Limit keeps at most maxDays groups and maxPerDay entries per group. A
// non-positive limit means no limit. Nothing is reordered.
func Limit(groups []Group, maxDays, maxPerDay int) []Group {
	if maxDays > 0 && len(groups) > maxDays {
		groups = groups[:maxDays]
	}
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = g
		if maxPerDay > 0 && len(g.Entries) > maxPerDay {
			out[i].Entries = g.Entries[:maxPerDay]
		}
	}
	return out
}

// Count returns the number of entries across groups.
func Count(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Entries)
	}
	return n
}
