// Command demo fills the configured recall store with a week of sample
// entries and prints the standup they produce.
package main

import (
	"fmt"
	"os"

	"tableflip.dev/recall/pkg/app"
	"tableflip.dev/recall/pkg/day"
	"tableflip.dev/recall/pkg/entry"
	"tableflip.dev/recall/pkg/logging"
	"tableflip.dev/recall/pkg/store"
	"tableflip.dev/recall/pkg/summary"
)

type sample struct {
	daysAgo int
	text    string
	typ     entry.Type
	tags    []string
	minutes int
}

var week = []sample{
	{6, "Paired on the billing export", entry.Did, []string{"billing"}, 90},
	{5, "Waiting on finance to confirm the CSV columns", entry.Blocker, []string{"billing"}, 0},
	{4, "Wrote the runbook for the nightly job", entry.Did, []string{"ops", "docs"}, 60},
	{3, "Retro: keep the Thursday demo", entry.Note, []string{"team"}, 0},
	{2, "Shipped the export behind a flag", entry.Did, []string{"billing"}, 120},
	{1, "Reviewed the auth migration PR", entry.Did, []string{"auth"}, 45},
	{1, "Staging certs expired again", entry.Blocker, []string{"ops"}, 0},
	{0, "Roll the export out to everyone", entry.Plan, []string{"billing"}, 0},
	{0, "Pair with Sam on the token refresh", entry.Plan, []string{"auth"}, 0},
}

func main() {
	cfg, err := store.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel()))

	p, err := store.Load(cfg)
	if err != nil {
		panic(err)
	}
	defer p.Close()

	svc := app.Open(p, app.WithNamespace(cfg.Namespace()), app.WithLogger(logger))
	now := svc.Now()
	for _, s := range week {
		d := app.Draft{
			Text: s.text,
			Type: s.typ,
			Tags: s.tags,
			Day:  day.Key(now.AddDate(0, 0, -s.daysAgo)),
		}
		if s.minutes > 0 {
			m := s.minutes
			d.Minutes = &m
		}
		if _, ok := svc.AddEntry(d); !ok {
			panic(fmt.Sprintf("sample %q was refused", s.text))
		}
	}

	fmt.Printf("Added %d entries to %s\n\n", len(week), p.Describe())
	fmt.Println(summary.Standup(svc.Entries(), false, now))
}
