package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"tableflip.dev/recall/pkg/app"
	"tableflip.dev/recall/pkg/day"
	"tableflip.dev/recall/pkg/entry"
	"tableflip.dev/recall/pkg/stats"
	"tableflip.dev/recall/pkg/store"
	"tableflip.dev/recall/pkg/testutil"
)

func seeded(t *testing.T) *app.Service {
	t.Helper()
	clock := testutil.FixedClock()
	svc := app.Open(store.NewMemory(), app.WithClock(clock))
	thirty := 30
	for _, d := range []app.Draft{
		{Text: "a", Type: entry.Did, Tags: []string{"Code"}, Minutes: &thirty},
		{Text: "b", Type: entry.Note, Tags: []string{"Code", "Team"}},
		{Text: "c", Type: entry.Did, Tags: []string{"Team", "Infra"}, Day: day.Yesterday(clock.Now())},
	} {
		svc.AddEntry(d)
	}
	return svc
}

func TestStatsJSON(t *testing.T) {
	var buf bytes.Buffer
	s := Stats{Service: seeded(t), Mode: day.RangeLast7, JSON: true, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var r Report
	if err := json.Unmarshal(buf.Bytes(), &r); err != nil {
		t.Fatalf("expected json: %v", err)
	}
	if r.Today.Count != 2 || r.Today.Minutes != 30 || r.Streak != 2 {
		t.Fatalf("unexpected report %+v", r)
	}
	if len(r.Momentum) != stats.MomentumDays || r.Weekly.Count != 3 {
		t.Fatalf("unexpected momentum or weekly totals %+v", r)
	}
}

func TestStatsPretty(t *testing.T) {
	var buf bytes.Buffer
	s := Stats{Service: seeded(t), Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Week of Oct 12")) {
		t.Fatalf("expected weekly label, got:\n%s", buf.String())
	}
}

func TestTags(t *testing.T) {
	var buf bytes.Buffer
	tags := Tags{Service: seeded(t), Limit: 2, JSON: true, Out: &buf}
	if err := tags.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []stats.TagCount
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("expected json: %v", err)
	}
	if len(got) != 2 || got[0].Count != 2 || got[1].Count != 2 {
		t.Fatalf("unexpected ranking %+v", got)
	}
}
