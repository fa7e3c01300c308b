package app

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/recall/pkg/day"
	"tableflip.dev/recall/pkg/entry"
)

var (
	ErrNoEntry     = errors.New("app: no such entry")
	ErrAmbiguousID = errors.New("app: ambiguous entry id")
)

// Draft is the input for AddEntry.
type Draft struct {
	Text    string
	Type    entry.Type
	Tags    []string
	Minutes *int
	Mood    *int
	Detail  string
	// Day attributes the entry to a YYYY-MM-DD day; blank means today.
	Day string
}

const (
	MinMood = 1
	MaxMood = 5
)

// AddEntry records a new entry and returns it. Blank text or an unknown type
// is refused: nothing is stored and ok is false. Out of range minutes and mood
// values are dropped rather than stored.
func (s *Service) AddEntry(d Draft) (e entry.Entry, ok bool) {
	text := strings.TrimSpace(d.Text)
	if text == "" || !d.Type.Valid() {
		return entry.Entry{}, false
	}

	now := s.clock.Now()
	e = entry.Entry{
		ID:        s.ids.New(),
		Text:      text,
		Type:      d.Type,
		Tags:      entry.NormalizeTags(d.Tags),
		CreatedAt: now.UnixMilli(),
		Day:       strings.TrimSpace(d.Day),
	}
	if e.Day == "" {
		e.Day = day.Key(now)
	}
	if d.Minutes != nil && *d.Minutes >= 0 {
		m := *d.Minutes
		e.Minutes = &m
	}
	if d.Mood != nil && *d.Mood >= MinMood && *d.Mood <= MaxMood {
		m := *d.Mood
		e.Mood = &m
	}
	if detail := strings.TrimSpace(d.Detail); detail != "" {
		e.Detail = &detail
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]entry.Entry, 0, len(s.state.Entries)+1)
	entries = append(entries, e)
	s.state.Entries = append(entries, s.state.Entries...)
	s.persist()
	return e.Clone(), true
}

// RemoveEntry deletes the entry with the given id. It reports whether an entry
// was removed; a missing id is a no-op.
func (s *Service) RemoveEntry(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]entry.Entry, 0, len(s.state.Entries))
	for _, e := range s.state.Entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.state.Entries) {
		return false
	}
	s.state.Entries = kept
	s.persist()
	return true
}

// Entries returns a copy of all entries, newest insertion first.
func (s *Service) Entries() []entry.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := entry.CloneAll(s.state.Entries)
	if out == nil {
		out = []entry.Entry{}
	}
	return out
}

// Entry looks up a single entry by id.
func (s *Service) Entry(id string) (entry.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.state.Entries {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return entry.Entry{}, false
}

// Len returns the number of stored entries.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Entries)
}

// Resolve expands a unique id prefix, as shown by the CLI, into a full entry
// id. An exact match always wins.
func (s *Service) Resolve(prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", ErrNoEntry
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found []string
	for _, e := range s.state.Entries {
		if e.ID == prefix {
			return e.ID, nil
		}
		if strings.HasPrefix(e.ID, prefix) {
			found = append(found, e.ID)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNoEntry, prefix)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%w: %s matches %d entries", ErrAmbiguousID, prefix, len(found))
	}
}
