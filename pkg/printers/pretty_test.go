package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/recall/pkg/entry"
	"tableflip.dev/recall/pkg/stats"
	"tableflip.dev/recall/pkg/timeline"
)

var now = time.Date(2026, 10, 15, 14, 30, 0, 0, time.Local)

func init() {
	color.NoColor = true
}

func sample() []entry.Entry {
	detail := "Rolled back the migration and reran it against staging before lunch"
	mins := 45
	return []entry.Entry{
		{ID: "0123456789abcdef", Text: "Fixed login bug", Type: entry.Did, Tags: []string{"Code"}, Minutes: &mins, CreatedAt: now.UnixMilli(), Day: "2026-10-15"},
		{ID: "2", Text: "Plan release", Type: entry.Plan, CreatedAt: now.Add(-time.Hour).UnixMilli(), Day: "2026-10-15"},
		{ID: "3", Text: "Migration", Type: entry.Blocker, Detail: &detail, CreatedAt: now.UnixMilli(), Day: "2026-10-14"},
	}
}

func TestTimeline(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Now: now, Out: &buf}
	groups := timeline.GroupByDay(sample())
	pp.Timeline(timeline.Limit(groups, 0, 1), 3)

	out := buf.String()
	for _, want := range []string{
		"Today - 2 entries",
		"Yesterday - 1 entry",
		"Fixed login bug #Code 45m",
		"+1 more",
		"Showing 2 of 3 entries.",
		"Rolled back the migration",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Plan release") {
		t.Fatalf("expected truncated entry to be hidden:\n%s", out)
	}
}

func TestTimelineShowID(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Now: now, Out: &buf, ShowID: true}
	pp.Entries(sample()[0])
	if !strings.HasPrefix(buf.String(), "01234567  ") {
		t.Fatalf("expected short id prefix, got %q", buf.String())
	}
}

func TestTimelineEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Now: now, Out: &buf}
	pp.Timeline(nil, 0)
	if !strings.Contains(buf.String(), "nothing logged") {
		t.Fatalf("expected empty message, got %q", buf.String())
	}
}

func TestCardPlainWhenPiped(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Card("Standup", "Standup - Oct 15\n\nYesterday:\n- (none yet)")
	if got := buf.String(); got != "Standup - Oct 15\n\nYesterday:\n- (none yet)\n" {
		t.Fatalf("expected plain text, got %q", got)
	}
}

func TestMomentum(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Momentum(stats.Momentum(sample(), now))
	out := buf.String()
	if !strings.Contains(out, "Thu") || !strings.Contains(out, "▇") {
		t.Fatalf("expected bars, got:\n%s", out)
	}
}

func TestShort(t *testing.T) {
	if got := Short("abc"); got != "abc" {
		t.Fatalf("expected abc, got %s", got)
	}
	if got := Short("0123456789"); got != "01234567" {
		t.Fatalf("expected 01234567, got %s", got)
	}
}
