// Package mcp provides the Model Context Protocol server integration for
// recall.
package mcp

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/recall/pkg/app"
	"tableflip.dev/recall/pkg/day"
	"tableflip.dev/recall/pkg/entry"
	"tableflip.dev/recall/pkg/stats"
	"tableflip.dev/recall/pkg/summary"
	"tableflip.dev/recall/pkg/timeline"
)

// Service adapts the entry store to tool and resource handlers: it parses
// loosely typed arguments and returns transport friendly values.
type Service struct {
	App *app.Service
}

// ErrEntryNotFound is returned when no entry has the requested id.
var ErrEntryNotFound = errors.New("entry not found")

// DefaultTopTags is used when top_tags is called without a limit.
const DefaultTopTags = 6

// NewService builds a service wrapper around the entry store.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

// AddEntryOptions captures the parameters used to create a new entry.
type AddEntryOptions struct {
	Text    string `json:"text"`
	Type    string `json:"type"`
	Tags    string `json:"tags"`
	Minutes *int   `json:"minutes"`
	Mood    *int   `json:"mood"`
	Detail  string `json:"detail"`
	Day     string `json:"day"`
}

// AddEntry validates opts and records the entry.
func (s *Service) AddEntry(opts AddEntryOptions) (entry.Entry, error) {
	if strings.TrimSpace(opts.Text) == "" {
		return entry.Entry{}, errors.New("text is required")
	}
	typ := entry.Note
	if strings.TrimSpace(opts.Type) != "" {
		var err error
		if typ, err = entry.ParseType(opts.Type); err != nil {
			return entry.Entry{}, err
		}
	}
	d, err := day.Resolve(opts.Day, s.App.Now())
	if err != nil {
		return entry.Entry{}, err
	}
	if opts.Mood != nil && (*opts.Mood < app.MinMood || *opts.Mood > app.MaxMood) {
		return entry.Entry{}, fmt.Errorf("mood must be between %d and %d", app.MinMood, app.MaxMood)
	}
	if opts.Minutes != nil && *opts.Minutes < 0 {
		return entry.Entry{}, errors.New("minutes must not be negative")
	}
	e, ok := s.App.AddEntry(app.Draft{
		Text:    opts.Text,
		Type:    typ,
		Tags:    entry.ParseTags(opts.Tags),
		Minutes: opts.Minutes,
		Mood:    opts.Mood,
		Detail:  opts.Detail,
		Day:     d,
	})
	if !ok {
		return entry.Entry{}, errors.New("entry was not recorded")
	}
	return e, nil
}

// RemoveEntry deletes the entry with id or a unique prefix of it.
func (s *Service) RemoveEntry(id string) (string, error) {
	full, err := s.App.Resolve(id)
	if err != nil {
		return "", err
	}
	if !s.App.RemoveEntry(full) {
		return "", fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return full, nil
}

// EntryByID fetches one entry.
func (s *Service) EntryByID(id string) (entry.Entry, error) {
	e, ok := s.App.Entry(strings.TrimSpace(id))
	if !ok {
		return entry.Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return e, nil
}

// FilterOptions are optional filter fields; blank values are left unchanged.
type FilterOptions struct {
	Query *string `json:"query"`
	Type  string  `json:"type"`
	Range string  `json:"range"`
	Tag   *string `json:"tag"`
}

func (o FilterOptions) patch() (entry.FiltersPatch, error) {
	p := entry.FiltersPatch{Query: o.Query, Tag: o.Tag}
	if strings.TrimSpace(o.Type) != "" {
		t, err := entry.ParseFilterType(o.Type)
		if err != nil {
			return p, err
		}
		p.Type = &t
	}
	if strings.TrimSpace(o.Range) != "" {
		r, err := day.ParseRange(o.Range)
		if err != nil {
			return p, err
		}
		p.Range = &r
	}
	return p, nil
}

// ListOptions narrows a timeline listing. Filters apply on top of the stored
// filters for this call only.
type ListOptions struct {
	FilterOptions
	Days   int `json:"days"`
	PerDay int `json:"per_day"`
}

// Listing is a grouped, possibly truncated timeline.
type Listing struct {
	Filters entry.Filters    `json:"filters"`
	Total   int              `json:"total"`
	Shown   int              `json:"shown"`
	Groups  []timeline.Group `json:"groups"`
}

// ListEntries returns the timeline for the stored filters merged with opts.
func (s *Service) ListEntries(opts ListOptions) (Listing, error) {
	p, err := opts.patch()
	if err != nil {
		return Listing{}, err
	}
	snap := s.App.Snapshot()
	f := snap.Filters.Merge(p)
	matches := timeline.Filter(snap.Entries, f, s.App.Now())
	groups := timeline.Limit(timeline.GroupByDay(matches), opts.Days, opts.PerDay)
	return Listing{
		Filters: f,
		Total:   len(matches),
		Shown:   timeline.Count(groups),
		Groups:  groups,
	}, nil
}

// SetFilters merges opts into the stored filters.
func (s *Service) SetFilters(opts FilterOptions) (entry.Filters, error) {
	p, err := opts.patch()
	if err != nil {
		return entry.Filters{}, err
	}
	return s.App.SetFilters(p), nil
}

// ClearFilters resets the stored filters.
func (s *Service) ClearFilters() entry.Filters {
	return s.App.ClearFilters()
}

// TodayStats is today's totals and the current streak.
type TodayStats struct {
	Day     string `json:"day"`
	Count   int    `json:"count"`
	Minutes int    `json:"minutes"`
	Streak  int    `json:"streak"`
}

func (s *Service) TodayStats() TodayStats {
	entries, now := s.App.Entries(), s.App.Now()
	t := stats.Today(entries, now)
	return TodayStats{
		Day:     day.Today(now),
		Count:   t.Count,
		Minutes: t.Minutes,
		Streak:  stats.Streak(entries, now),
	}
}

// TopTags ranks tags across all entries.
func (s *Service) TopTags(limit int) []stats.TagCount {
	if limit <= 0 {
		limit = DefaultTopTags
	}
	counts := stats.TagCounts(s.App.Entries())
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

func parseMode(raw string) (day.Range, error) {
	if strings.TrimSpace(raw) == "" {
		return day.RangeThisWeek, nil
	}
	r, err := day.ParseRange(raw)
	if err != nil {
		return "", err
	}
	if r != day.RangeThisWeek && r != day.RangeLast7 {
		return "", fmt.Errorf("mode must be %s or %s", day.RangeThisWeek, day.RangeLast7)
	}
	return r, nil
}

// WeeklyTotals is the per type breakdown of a weekly window.
type WeeklyTotals struct {
	Label string `json:"label"`
	stats.Weekly
}

func (s *Service) WeeklyTotals(mode string) (WeeklyTotals, error) {
	r, err := parseMode(mode)
	if err != nil {
		return WeeklyTotals{}, err
	}
	now := s.App.Now()
	return WeeklyTotals{
		Label:  summary.WeekLabel(r, now),
		Weekly: stats.WeeklyTotals(s.App.Entries(), r, now),
	}, nil
}

// Standup renders the standup update.
func (s *Service) Standup(snappy bool) string {
	return summary.Standup(s.App.Entries(), snappy, s.App.Now())
}

// WeeklyReview renders the weekly review.
func (s *Service) WeeklyReview(mode string) (string, summary.Review, error) {
	r, err := parseMode(mode)
	if err != nil {
		return "", summary.Review{}, err
	}
	entries, now := s.App.Entries(), s.App.Now()
	return summary.WeeklyReview(entries, r, now), summary.WeeklyReviewData(entries, r, now), nil
}

// State is everything but the entries.
type State struct {
	Filters     entry.Filters  `json:"filters"`
	Settings    entry.Settings `json:"settings"`
	StandupMode bool           `json:"standupMode"`
	Entries     int            `json:"entries"`
}

func (s *Service) State() State {
	snap := s.App.Snapshot()
	return State{
		Filters:     snap.Filters,
		Settings:    snap.Settings,
		StandupMode: snap.StandupMode,
		Entries:     len(snap.Entries),
	}
}
