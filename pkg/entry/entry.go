package entry

import (
	"fmt"
	"strings"
)

// Type categorizes an entry for summaries.
type Type string

const (
	Did     Type = "did"
	Plan    Type = "plan"
	Blocker Type = "blocker"
	Note    Type = "note"

	// Any matches every type when used in Filters.
	Any Type = "all"
)

// AllTypes returns the closed set of entry types in display order.
func AllTypes() []Type {
	return []Type{Did, Plan, Blocker, Note}
}

var typeAliases = map[string]Type{
	"did":     Did,
	"done":    Did,
	"d":       Did,
	"plan":    Plan,
	"todo":    Plan,
	"p":       Plan,
	"blocker": Blocker,
	"blocked": Blocker,
	"b":       Blocker,
	"note":    Note,
	"n":       Note,
}

// ParseType converts a type name or alias into a Type.
func ParseType(raw string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if t, ok := typeAliases[key]; ok {
		return t, nil
	}
	return "", fmt.Errorf("entry: unknown type %q", raw)
}

// ParseFilterType is ParseType that also accepts "all" (or blank) as Any.
func ParseFilterType(raw string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" || key == string(Any) || key == "any" {
		return Any, nil
	}
	return ParseType(key)
}

// Valid reports whether t is one of the four entry types.
func (t Type) Valid() bool {
	switch t {
	case Did, Plan, Blocker, Note:
		return true
	}
	return false
}

// Label is the capitalized display name.
func (t Type) Label() string {
	switch t {
	case Did:
		return "Did"
	case Plan:
		return "Plan"
	case Blocker:
		return "Blocker"
	case Note:
		return "Note"
	case Any:
		return "All"
	}
	return string(t)
}

// Entry is one user-recorded observation. Entries are created by the store
// and never mutated afterwards.
type Entry struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Type    Type     `json:"type"`
	Tags    []string `json:"tags"`
	Minutes *int     `json:"minutes,omitempty"`
	Mood    *int     `json:"mood,omitempty"`
	Detail  *string  `json:"detail,omitempty"`
	// CreatedAt is epoch milliseconds. It orders entries within a day only.
	CreatedAt int64 `json:"createdAt"`
	// Day is the YYYY-MM-DD day the entry is attributed to, which may differ
	// from the day of CreatedAt.
	Day string `json:"day"`
}

// MinutesOrZero returns the logged minutes, treating absent as 0.
func (e Entry) MinutesOrZero() int {
	if e.Minutes == nil {
		return 0
	}
	return *e.Minutes
}

// HasTag reports whether tag is one of the entry's tags (exact match).
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can never alias store-owned state.
func (e Entry) Clone() Entry {
	out := e
	if e.Tags != nil {
		out.Tags = make([]string, len(e.Tags))
		copy(out.Tags, e.Tags)
	}
	if e.Minutes != nil {
		m := *e.Minutes
		out.Minutes = &m
	}
	if e.Mood != nil {
		m := *e.Mood
		out.Mood = &m
	}
	if e.Detail != nil {
		d := *e.Detail
		out.Detail = &d
	}
	return out
}

// CloneAll deep-copies a slice of entries.
func CloneAll(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Type, e.Text)
}
