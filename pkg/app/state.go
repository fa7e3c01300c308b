package app

import (
	"tableflip.dev/recall/pkg/entry"
	"tableflip.dev/recall/pkg/timeline"
)

// SetFilters shallow-merges p into the current filters and returns the result.
func (s *Service) SetFilters(p entry.FiltersPatch) entry.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Filters = s.state.Filters.Merge(p)
	s.persist()
	return s.state.Filters
}

// ToggleTag makes tag the active tag filter, or clears it when it already is.
func (s *Service) ToggleTag(tag string) entry.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := tag
	if s.state.Filters.TagValue() == tag {
		next = ""
	}
	s.state.Filters = s.state.Filters.Merge(entry.FiltersPatch{Tag: &next})
	s.persist()
	return s.state.Filters
}

// ClearFilters resets the filters to their defaults.
func (s *Service) ClearFilters() entry.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Filters = entry.DefaultFilters()
	s.persist()
	return s.state.Filters
}

// Filters returns the current filters.
func (s *Service) Filters() entry.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone().Filters
}

// SetSettings shallow-merges p into the current settings and returns the
// result.
func (s *Service) SetSettings(p entry.SettingsPatch) entry.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Settings = s.state.Settings.Merge(p)
	s.persist()
	return s.state.Settings
}

// Settings returns the current settings.
func (s *Service) Settings() entry.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Settings
}

// SetStandupMode toggles whether the standup digest is the default view.
func (s *Service) SetStandupMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.StandupMode = on
	s.persist()
}

// StandupMode reports whether standup mode is on.
func (s *Service) StandupMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.StandupMode
}

// Snapshot returns a deep copy of the whole state.
func (s *Service) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Timeline applies the current filters to the entries and groups the matches
// by day, newest first.
func (s *Service) Timeline() []timeline.Group {
	snap := s.Snapshot()
	return timeline.GroupByDay(timeline.Filter(snap.Entries, snap.Filters, s.clock.Now()))
}

// Reset drops every entry, filter and setting and erases the stored state.
// The in-memory reset stands even when the erase fails.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = DefaultState()
	if err := s.persistence.Erase(s.key); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("erase state")
	}
}
