// Package app owns the entry collection together with the filter and settings
// state. It is the only writer; every other package works on the snapshots it
// hands out.
package app

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tableflip.dev/recall/pkg/day"
	"tableflip.dev/recall/pkg/entry"
	"tableflip.dev/recall/pkg/store"
)

// IDGenerator abstracts unique ID generation so tests are deterministic.
type IDGenerator interface {
	New() string
}

// UUIDGenerator produces random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }

// State is the persisted snapshot, stored as JSON under a single key.
type State struct {
	Entries     []entry.Entry  `json:"entries"`
	Filters     entry.Filters  `json:"filters"`
	StandupMode bool           `json:"standupMode"`
	Settings    entry.Settings `json:"settings"`
}

// DefaultState is the first-run state.
func DefaultState() State {
	return State{
		Entries:     []entry.Entry{},
		Filters:     entry.DefaultFilters(),
		StandupMode: false,
		Settings:    entry.DefaultSettings(),
	}
}

func (s State) clone() State {
	s.Entries = entry.CloneAll(s.Entries)
	if s.Entries == nil {
		s.Entries = []entry.Entry{}
	}
	if s.Filters.Tag != nil {
		tag := *s.Filters.Tag
		s.Filters.Tag = &tag
	}
	return s
}

// Service is the entry store. The in-memory state is authoritative: it is
// updated first and then written through to persistence on a best-effort
// basis.
type Service struct {
	persistence store.Persistence
	key         string
	clock       day.Clock
	ids         IDGenerator
	log         zerolog.Logger

	mu    sync.RWMutex
	state State
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock used for createdAt and today's day.
func WithClock(c day.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithIDGenerator sets the entry id source.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Service) { s.ids = g }
}

// WithLogger sets the logger used to report persistence trouble.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithNamespace sets the storage key the state is kept under.
func WithNamespace(key string) Option {
	return func(s *Service) {
		if strings.TrimSpace(key) != "" {
			s.key = key
		}
	}
}

// Open creates a Service and rehydrates it from p. It never fails: a nil,
// unavailable or corrupt store yields the default state.
func Open(p store.Persistence, opts ...Option) *Service {
	if p == nil {
		p = store.Nop{}
	}
	s := &Service{
		persistence: p,
		key:         store.DefaultNamespace,
		clock:       day.RealClock{},
		ids:         UUIDGenerator{},
		log:         zerolog.Nop(),
		state:       DefaultState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rehydrate()
	return s
}

func (s *Service) rehydrate() {
	data, err := s.persistence.Read(s.key)
	if errors.Is(err, store.ErrNotFound) {
		s.log.Debug().Str("key", s.key).Msg("no stored state, starting empty")
		return
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("storage unavailable, starting empty")
		return
	}
	st, err := decodeState(data)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("stored state unreadable, starting empty")
		return
	}
	s.state = st
	s.log.Debug().Str("key", s.key).Int("entries", len(st.Entries)).Msg("state rehydrated")
}

// decodeState parses a stored snapshot, filling anything missing with
// defaults.
func decodeState(data []byte) (State, error) {
	st := DefaultState()
	if err := json.Unmarshal(data, &st); err != nil {
		return DefaultState(), err
	}
	if st.Entries == nil {
		st.Entries = []entry.Entry{}
	}
	st.Filters = st.Filters.Sanitize()
	if st.Settings.VoiceLanguage == "" {
		st.Settings.VoiceLanguage = entry.DefaultVoiceLanguage
	}
	return st, nil
}

// persist writes the current state. Callers hold s.mu. Failures are logged
// and never undo the in-memory mutation.
func (s *Service) persist() {
	data, err := json.Marshal(s.state)
	if err != nil {
		s.log.Warn().Err(err).Msg("encode state")
		return
	}
	if err := s.persistence.Write(s.key, data); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("persist state")
	}
}

// Now returns the service clock's current instant.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}
