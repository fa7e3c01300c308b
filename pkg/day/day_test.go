package day

import (
	"reflect"
	"testing"
	"time"
)

// Thursday.
var now = time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC)

func TestKey(t *testing.T) {
	if got := Key(now); got != "2026-10-15" {
		t.Fatalf("expected 2026-10-15, got %s", got)
	}
	late := time.Date(2026, 10, 15, 23, 59, 59, 0, time.UTC)
	if got := Key(late); got != "2026-10-15" {
		t.Fatalf("expected 2026-10-15 for late instant, got %s", got)
	}
}

func TestYesterdayAcrossMonth(t *testing.T) {
	first := time.Date(2026, 3, 1, 0, 10, 0, 0, time.UTC)
	if got := Yesterday(first); got != "2026-02-28" {
		t.Fatalf("expected 2026-02-28, got %s", got)
	}
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name   string
		at     time.Time
		monday string
		sunday string
	}{
		{"thursday", now, "2026-10-12", "2026-10-18"},
		{"monday", time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC), "2026-10-12", "2026-10-18"},
		{"sunday", time.Date(2026, 10, 18, 22, 0, 0, 0, time.UTC), "2026-10-12", "2026-10-18"},
		{"year boundary", time.Date(2027, 1, 1, 12, 0, 0, 0, time.UTC), "2026-12-28", "2027-01-03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, sunday := WeekRange(tt.at)
			if Key(monday) != tt.monday || Key(sunday) != tt.sunday {
				t.Fatalf("expected %s..%s, got %s..%s", tt.monday, tt.sunday, Key(monday), Key(sunday))
			}
		})
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		day  string
		r    Range
		want bool
	}{
		{"2026-10-15", RangeToday, true},
		{"2026-10-14", RangeToday, false},
		{"2026-10-14", RangeYesterday, true},
		{"2026-10-15", RangeYesterday, false},
		{"2026-10-09", RangeLast7, true},
		{"2026-10-08", RangeLast7, false},
		{"2026-10-16", RangeLast7, false},
		{"2026-10-12", RangeThisWeek, true},
		{"2026-10-18", RangeThisWeek, true},
		{"2026-10-11", RangeThisWeek, false},
		{"2026-10-19", RangeThisWeek, false},
		{"1999-01-01", RangeAll, true},
		{"garbage", RangeAll, true},
		{"garbage", RangeToday, false},
		{"2026-10-15", Range("fortnight"), false},
	}
	for _, tt := range tests {
		if got := InRange(tt.day, tt.r, now); got != tt.want {
			t.Errorf("InRange(%q, %q) = %v, want %v", tt.day, tt.r, got, tt.want)
		}
	}
}

func TestParseRange(t *testing.T) {
	tests := map[string]Range{
		"":          RangeLast7,
		"today":     RangeToday,
		" Y ":       RangeYesterday,
		"7d":        RangeLast7,
		"thisWeek":  RangeThisWeek,
		"this-week": RangeThisWeek,
		"all":       RangeAll,
	}
	for in, want := range tests {
		got, err := ParseRange(in)
		if err != nil {
			t.Fatalf("ParseRange(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseRange(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseRange("fortnight"); err == nil {
		t.Fatalf("expected error for unknown range")
	}
}

func TestLabel(t *testing.T) {
	if got := Label("2026-10-15", now); got != "Today" {
		t.Fatalf("expected Today, got %s", got)
	}
	if got := Label("2026-10-14", now); got != "Yesterday" {
		t.Fatalf("expected Yesterday, got %s", got)
	}
	if got := Label("2026-10-12", now); got != "Mon, Oct 12" {
		t.Fatalf("expected Mon, Oct 12, got %s", got)
	}
	if got := FullDate("2026-10-12", now.Location()); got != "Monday, October 12" {
		t.Fatalf("unexpected full date: %s", got)
	}
}

func TestFullDateFollowsClockZone(t *testing.T) {
	for _, loc := range []*time.Location{time.UTC, time.FixedZone("UTC+13", 13*3600), time.FixedZone("UTC-11", -11*3600)} {
		now := time.Date(2026, 10, 15, 0, 30, 0, 0, loc)
		if got := FullDate("2026-10-12", now.Location()); got != "Monday, October 12" {
			t.Errorf("%s: unexpected full date %s", loc, got)
		}
		if got := Label("2026-10-12", now); got != "Mon, Oct 12" {
			t.Errorf("%s: unexpected label %s", loc, got)
		}
	}
}

func TestAliases(t *testing.T) {
	if got := Aliases(RangeThisWeek); !reflect.DeepEqual(got, []string{"this-week", "w"}) {
		t.Fatalf("expected [this-week w], got %v", got)
	}
	for _, r := range AllRanges() {
		for _, alias := range Aliases(r) {
			if parsed, err := ParseRange(alias); err != nil || parsed != r {
				t.Fatalf("alias %q: expected %s, got %s %v", alias, r, parsed, err)
			}
		}
	}
}

func TestResolve(t *testing.T) {
	tests := map[string]string{
		"":           "2026-10-15",
		"Today":      "2026-10-15",
		"yesterday":  "2026-10-14",
		"2026-01-02": "2026-01-02",
	}
	for in, want := range tests {
		got, err := Resolve(in, now)
		if err != nil || got != want {
			t.Fatalf("Resolve(%q): expected %s, got %s %v", in, want, got, err)
		}
	}
	if _, err := Resolve("next tuesday", now); err == nil {
		t.Fatalf("expected an error for free text")
	}
}
