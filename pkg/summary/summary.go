// Package summary renders entry snapshots as ready-to-send text: the daily
// standup update and the weekly review.
package summary

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/recall/pkg/day"
	"tableflip.dev/recall/pkg/entry"
	"tableflip.dev/recall/pkg/stats"
)

const (
	// Placeholder stands in for an empty section.
	Placeholder = "- (none yet)"

	SnappyItems   = 2
	StandupItems  = 5
	ReviewItems   = 5
	ReviewTopTags = 5
)

// list renders up to limit entries as "- text" lines.
func list(entries []entry.Entry, limit int) string {
	if len(entries) == 0 {
		return Placeholder
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = "- " + e.Text
	}
	return strings.Join(lines, "\n")
}

func pick(entries []entry.Entry, keep func(entry.Entry) bool) []entry.Entry {
	out := make([]entry.Entry, 0)
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// StandupSections is the content of a standup update before rendering.
type StandupSections struct {
	Yesterday []entry.Entry `json:"yesterday"`
	Today     []entry.Entry `json:"today"`
	Blockers  []entry.Entry `json:"blockers"`
}

// StandupEntries selects what was done or noted yesterday, what is planned for
// today and the blockers of the last seven days. Collection order is kept and
// nothing is truncated.
func StandupEntries(entries []entry.Entry, now time.Time) StandupSections {
	today, yesterday := day.Today(now), day.Yesterday(now)
	return StandupSections{
		Yesterday: pick(entries, func(e entry.Entry) bool {
			return e.Day == yesterday && (e.Type == entry.Did || e.Type == entry.Note)
		}),
		Today: pick(entries, func(e entry.Entry) bool {
			return e.Day == today && e.Type == entry.Plan
		}),
		Blockers: pick(entries, func(e entry.Entry) bool {
			return e.Type == entry.Blocker && day.InRange(e.Day, day.RangeLast7, now)
		}),
	}
}

// Standup builds the standup update. Each section lists at most two entries
// when snappy and five otherwise.
func Standup(entries []entry.Entry, snappy bool, now time.Time) string {
	limit := StandupItems
	if snappy {
		limit = SnappyItems
	}
	s := StandupEntries(entries, now)
	var b strings.Builder
	fmt.Fprintf(&b, "Standup - %s", day.Short(now))
	fmt.Fprintf(&b, "\n\nYesterday:\n%s", list(s.Yesterday, limit))
	fmt.Fprintf(&b, "\n\nToday:\n%s", list(s.Today, limit))
	fmt.Fprintf(&b, "\n\nBlockers:\n%s", list(s.Blockers, limit))
	return b.String()
}

// WeekLabel describes the weekly window for mode, either
// "Last 7 days - Oct 9 to Oct 15" or "Week of Oct 12".
func WeekLabel(mode day.Range, now time.Time) string {
	if stats.WindowMode(mode) == day.RangeLast7 {
		return fmt.Sprintf("Last 7 days - %s to %s", day.Short(day.AddDays(now, -6)), day.Short(now))
	}
	monday, _ := day.WeekRange(now)
	return "Week of " + day.Short(monday)
}

// Review is the content of a weekly review before rendering.
type Review struct {
	Label     string        `json:"label"`
	Wins      []entry.Entry `json:"wins"`
	NextUp    []entry.Entry `json:"nextUp"`
	Blockers  []entry.Entry `json:"blockers"`
	Notes     int           `json:"notes"`
	Minutes   int           `json:"minutes"`
	FocusTags []string      `json:"focusTags"`
}

// WeeklyReviewData collects the weekly window for mode.
func WeeklyReviewData(entries []entry.Entry, mode day.Range, now time.Time) Review {
	window := stats.Window(entries, mode, now)
	totals := stats.WeeklyTotals(entries, mode, now)
	byType := func(t entry.Type) []entry.Entry {
		return pick(window, func(e entry.Entry) bool { return e.Type == t })
	}
	return Review{
		Label:     WeekLabel(mode, now),
		Wins:      byType(entry.Did),
		NextUp:    byType(entry.Plan),
		Blockers:  byType(entry.Blocker),
		Notes:     totals.For(entry.Note).Count,
		Minutes:   totals.Minutes,
		FocusTags: stats.TopTags(window, ReviewTopTags),
	}
}

// WeeklyReview builds the weekly review for the window selected by mode.
func WeeklyReview(entries []entry.Entry, mode day.Range, now time.Time) string {
	r := WeeklyReviewData(entries, mode, now)
	focus := strings.Join(r.FocusTags, ", ")
	if focus == "" {
		focus = "(none yet)"
	}
	lines := []string{
		fmt.Sprintf("Weekly Review (%s)", r.Label),
		"",
		"Wins:",
		list(r.Wins, ReviewItems),
		"",
		"Next up:",
		list(r.NextUp, ReviewItems),
		"",
		"Blockers:",
		list(r.Blockers, ReviewItems),
		"",
		fmt.Sprintf("Highlights: %d notes, %d minutes logged", r.Notes, r.Minutes),
		"Focus tags: " + focus,
	}
	return strings.Join(lines, "\n")
}
