// Package glyph maps entry types to the symbols used in terminal output.
package glyph

import "tableflip.dev/recall/pkg/entry"

type Glyph struct {
	Type    entry.Type
	Symbol  string
	Meaning string
}

func (g Glyph) String() string {
	return g.Symbol
}

// DefaultGlyphs returns one glyph per entry type, in entry.AllTypes order.
func DefaultGlyphs() []Glyph {
	return []Glyph{{
		Type:    entry.Did,
		Symbol:  "✘",
		Meaning: "done, counts as a win",
	}, {
		Type:    entry.Plan,
		Symbol:  "●",
		Meaning: "planned, shows up as next up",
	}, {
		Type:    entry.Blocker,
		Symbol:  "!",
		Meaning: "blocked, reported for seven days",
	}, {
		Type:    entry.Note,
		Symbol:  "⁃",
		Meaning: "note or highlight",
	}}
}

// For returns the glyph of t. Unknown types render as a blank symbol.
func For(t entry.Type) Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Type == t {
			return g
		}
	}
	return Glyph{Type: t, Symbol: " ", Meaning: string(t)}
}
