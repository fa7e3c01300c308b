package entry

import (
	"reflect"
	"testing"

	"tableflip.dev/recall/pkg/day"
)

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" code ", "", "review", "code", "  ", "Code"})
	want := []string{"code", "review", "Code"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseTagsCapsAtMax(t *testing.T) {
	got := ParseTags("a, b,,c,d,e,f,g,a")
	want := []string{"a", "b", "c", "d", "e", "f"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := ParseTags(""); len(got) != 0 {
		t.Fatalf("expected no tags, got %v", got)
	}
}

func TestMergeTags(t *testing.T) {
	got := MergeTags([]string{"Build", "focus"}, []string{"Meeting", "Build"})
	want := []string{"Build", "focus", "Meeting"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseType(t *testing.T) {
	tests := map[string]Type{
		"did":     Did,
		" Done":   Did,
		"todo":    Plan,
		"BLOCKED": Blocker,
		"n":       Note,
	}
	for in, want := range tests {
		got, err := ParseType(in)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseType(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseType("all"); err == nil {
		t.Fatalf("expected all to be rejected as an entry type")
	}
	if got, err := ParseFilterType("all"); err != nil || got != Any {
		t.Fatalf("expected Any, got %q (%v)", got, err)
	}
}

func TestFiltersMerge(t *testing.T) {
	f := DefaultFilters()
	q := "bug"
	typ := Blocker
	tag := " infra "
	f = f.Merge(FiltersPatch{Query: &q, Type: &typ, Tag: &tag})
	if f.Query != "bug" || f.Type != Blocker || f.Range != day.RangeLast7 {
		t.Fatalf("unexpected filters %+v", f)
	}
	if f.TagValue() != "infra" {
		t.Fatalf("expected trimmed tag infra, got %q", f.TagValue())
	}

	r := day.RangeAll
	f = f.Merge(FiltersPatch{Range: &r})
	if f.Query != "bug" || f.Range != day.RangeAll {
		t.Fatalf("expected untouched query and new range, got %+v", f)
	}

	clear := ""
	f = f.Merge(FiltersPatch{Tag: &clear})
	if f.Tag != nil {
		t.Fatalf("expected tag cleared, got %q", *f.Tag)
	}
}

func TestFiltersSanitize(t *testing.T) {
	blank := " "
	f := Filters{Query: "x", Type: Type("chore"), Range: day.Range("fortnight"), Tag: &blank}.Sanitize()
	if f.Type != Any || f.Range != day.RangeLast7 || f.Tag != nil || f.Query != "x" {
		t.Fatalf("unexpected sanitized filters %+v", f)
	}
}

func TestSettingsMerge(t *testing.T) {
	s := DefaultSettings()
	on := true
	s = s.Merge(SettingsPatch{VoiceEnabled: &on})
	if !s.VoiceEnabled || s.VoiceLanguage != DefaultVoiceLanguage {
		t.Fatalf("unexpected settings %+v", s)
	}
	lang := "de-DE"
	s = s.Merge(SettingsPatch{VoiceLanguage: &lang})
	if !s.VoiceEnabled || s.VoiceLanguage != "de-DE" {
		t.Fatalf("unexpected settings %+v", s)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	m := 30
	d := "detail"
	e := Entry{ID: "1", Tags: []string{"a"}, Minutes: &m, Detail: &d}
	c := e.Clone()
	c.Tags[0] = "b"
	*c.Minutes = 45
	*c.Detail = "changed"
	if e.Tags[0] != "a" || *e.Minutes != 30 || *e.Detail != "detail" {
		t.Fatalf("clone aliased original: %+v", e)
	}
	if e.MinutesOrZero() != 30 || (Entry{}).MinutesOrZero() != 0 {
		t.Fatalf("unexpected MinutesOrZero")
	}
}
