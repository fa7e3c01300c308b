package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":         DefaultLevel,
		"debug":    zerolog.DebugLevel,
		" INFO ":   zerolog.InfoLevel,
		"error":    zerolog.ErrorLevel,
		"chatty":   DefaultLevel,
		"warn":     zerolog.WarnLevel,
		"disabled": zerolog.Disabled,
	}
	for raw, want := range tests {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q): expected %v, got %v", raw, want, got)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.WarnLevel)
	log.Debug().Msg("hidden")
	log.Warn().Str("key", "daily-recall").Msg("persist state")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug line to be filtered, got %q", out)
	}
	if !strings.Contains(out, "persist state") || !strings.Contains(out, "key=daily-recall") {
		t.Fatalf("expected warn line with fields, got %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no color when not a terminal, got %q", out)
	}
}
