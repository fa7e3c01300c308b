package entry

import (
	"strings"

	"tableflip.dev/recall/pkg/day"
)

// Filters is the persisted timeline query.
type Filters struct {
	Query string    `json:"query"`
	Type  Type      `json:"type"`
	Range day.Range `json:"range"`
	// Tag is nil when no tag filter is active.
	Tag *string `json:"tag"`
}

// DefaultFilters returns the reset state: everything from the last 7 days.
func DefaultFilters() Filters {
	return Filters{
		Query: "",
		Type:  Any,
		Range: day.RangeLast7,
		Tag:   nil,
	}
}

// TagValue returns the active tag or "".
func (f Filters) TagValue() string {
	if f.Tag == nil {
		return ""
	}
	return *f.Tag
}

// FiltersPatch is a partial update; nil fields are left unchanged. Setting
// Tag to a pointer to "" clears the tag filter.
type FiltersPatch struct {
	Query *string
	Type  *Type
	Range *day.Range
	Tag   *string
}

// Merge shallow-merges p into f.
func (f Filters) Merge(p FiltersPatch) Filters {
	if p.Query != nil {
		f.Query = *p.Query
	}
	if p.Type != nil {
		f.Type = *p.Type
	}
	if p.Range != nil {
		f.Range = *p.Range
	}
	if p.Tag != nil {
		tag := strings.TrimSpace(*p.Tag)
		if tag == "" {
			f.Tag = nil
		} else {
			f.Tag = &tag
		}
	}
	return f
}

// Sanitize replaces unknown type or range values, as found in hand edited or
// older state, with the defaults.
func (f Filters) Sanitize() Filters {
	def := DefaultFilters()
	if f.Type != Any && !f.Type.Valid() {
		f.Type = def.Type
	}
	if !f.Range.Valid() {
		f.Range = def.Range
	}
	if f.Tag != nil && strings.TrimSpace(*f.Tag) == "" {
		f.Tag = nil
	}
	return f
}

// Settings holds preferences that are orthogonal to entries.
type Settings struct {
	VoiceEnabled  bool   `json:"voiceEnabled"`
	VoiceLanguage string `json:"voiceLanguage"`
}

// DefaultVoiceLanguage is the recognition language used until changed.
const DefaultVoiceLanguage = "en-US"

// DefaultSettings returns first-run settings.
func DefaultSettings() Settings {
	return Settings{
		VoiceEnabled:  false,
		VoiceLanguage: DefaultVoiceLanguage,
	}
}

// SettingsPatch is a partial settings update; nil fields are left unchanged.
type SettingsPatch struct {
	VoiceEnabled  *bool
	VoiceLanguage *string
}

// Merge shallow-merges p into s.
func (s Settings) Merge(p SettingsPatch) Settings {
	if p.VoiceEnabled != nil {
		s.VoiceEnabled = *p.VoiceEnabled
	}
	if p.VoiceLanguage != nil {
		s.VoiceLanguage = *p.VoiceLanguage
	}
	return s
}
