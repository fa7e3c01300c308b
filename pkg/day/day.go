// Package day maps instants onto canonical calendar days and evaluates named
// relative day ranges. Everything here is pure; the current instant is always
// passed in by the caller.
package day

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the canonical day identifier format. Identifiers in this format
// sort lexicographically in calendar order.
const Layout = "2006-01-02"

// Key formats t as a day identifier using the calendar date of t's location.
func Key(t time.Time) string {
	return t.Format(Layout)
}

// Parse reads a day identifier as midnight in loc.
func Parse(id string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(Layout, strings.TrimSpace(id), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("day: invalid day %q: %w", id, err)
	}
	return t, nil
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays moves t by n calendar days, keeping it at the start of the day.
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, 0, n)
}

// Today returns the identifier of the day containing now.
func Today(now time.Time) string {
	return Key(now)
}

// Yesterday returns the identifier of the day before now.
func Yesterday(now time.Time) string {
	return Key(AddDays(now, -1))
}

// Shift returns the identifier n days away from the day containing now.
func Shift(now time.Time, n int) string {
	return Key(AddDays(now, n))
}

// WeekRange returns the Monday and Sunday of the week containing t, both at
// the start of their day.
func WeekRange(t time.Time) (time.Time, time.Time) {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // Sunday closes the week
	}
	monday := AddDays(t, -(wd - 1))
	return monday, monday.AddDate(0, 0, 6)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Resolve turns a day choice into an identifier. Blank and "today" mean the
// day containing now, "yesterday" the day before; anything else must be a
// YYYY-MM-DD identifier.
func Resolve(choice string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "", "today":
		return Today(now), nil
	case "yesterday":
		return Yesterday(now), nil
	}
	t, err := Parse(choice, now.Location())
	if err != nil {
		return "", err
	}
	return Key(t), nil
}
