package timeutil

import "testing"

func TestParseMinutes(t *testing.T) {
	tests := map[string]int{
		"45":        45,
		"45m":       45,
		"0":         0,
		"1h":        60,
		"1h30m":     90,
		"2h 15m":    135,
		" 90 mins ": 90,
		"1 hour":    60,
	}
	for in, want := range tests {
		got, err := ParseMinutes(in)
		if err != nil {
			t.Fatalf("ParseMinutes(%q) unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMinutes(%q) expected %d, got %d", in, want, got)
		}
	}
}

func TestParseMinutesInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1d", "-5", "1h-"} {
		if _, err := ParseMinutes(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := map[int]string{
		0:   "0m",
		-3:  "0m",
		45:  "45m",
		60:  "1h",
		90:  "1h30m",
		605: "10h5m",
	}
	for in, want := range tests {
		if got := FormatMinutes(in); got != want {
			t.Fatalf("FormatMinutes(%d) expected %s, got %s", in, want, got)
		}
	}
}
