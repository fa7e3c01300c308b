package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/recall/pkg/entry"
	"tableflip.dev/recall/pkg/glyph"
	"tableflip.dev/recall/pkg/stats"
)

const barWidth = 20

// Overview prints today's totals and the streak.
func (pp *PrettyPrint) Overview(today stats.Totals, streak int) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Today"), fmt.Sprintf("%d entries, %d min", today.Count, today.Minutes))
	tbl.AddRow(bold.Sprint("Streak"), plural(streak, "day"))
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Momentum prints one bar per day scaled to the busiest day.
func (pp *PrettyPrint) Momentum(points []stats.Point) {
	pp.Title("Weekly Momentum")

	peak := 0
	for _, p := range points {
		if p.Count > peak {
			peak = p.Count
		}
	}
	bar := color.New(color.FgCyan)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, p := range points {
		n := 0
		if peak > 0 {
			n = p.Count * barWidth / peak
		}
		if p.Count > 0 && n == 0 {
			n = 1
		}
		tbl.AddRow(p.Weekday, bar.Sprint(strings.Repeat("▇", n))+f.Sprintf(" %d", p.Count), f.Sprintf("%d min", p.Minutes))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Weekly prints totals per entry type.
func (pp *PrettyPrint) Weekly(label string, w stats.Weekly) {
	pp.Title(label)
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("   Type"), bold.Sprint("Entries"), bold.Sprint("Minutes"))
	for _, t := range w.ByType {
		tbl.AddRow(glyph.For(t.Type).Symbol+" "+t.Type.Label(), t.Count, t.Minutes)
	}
	tbl.AddRow(bold.Sprint("Total"), w.Count, w.Minutes)
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Tags prints a tag ranking.
func (pp *PrettyPrint) Tags(counts []stats.TagCount) {
	if len(counts) == 0 {
		pp.none("no tags yet")
		return
	}
	bold := color.New(color.Bold)
	tags := color.New(color.FgCyan)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Tag"), bold.Sprint("Entries"))
	for _, c := range counts {
		tbl.AddRow(tags.Sprint("#"+c.Tag), c.Count)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Filters prints the persisted filter state.
func (pp *PrettyPrint) Filters(f entry.Filters) {
	bold := color.New(color.Bold)

	query := f.Query
	if query == "" {
		query = "(none)"
	}
	tag := f.TagValue()
	if tag == "" {
		tag = "(none)"
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Query"), query)
	tbl.AddRow(bold.Sprint("Type"), f.Type.Label())
	tbl.AddRow(bold.Sprint("Range"), f.Range.Label())
	tbl.AddRow(bold.Sprint("Tag"), tag)
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Settings prints preferences alongside standup mode.
func (pp *PrettyPrint) Settings(s entry.Settings, standup bool) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Voice input"), onOff(s.VoiceEnabled))
	tbl.AddRow(bold.Sprint("Voice language"), s.VoiceLanguage)
	tbl.AddRow(bold.Sprint("Standup mode"), onOff(standup))
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Legend prints the glyph for each entry type.
func (pp *PrettyPrint) Legend() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Glyph"), bold.Sprint("Type"), bold.Sprint("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(typeColor(g.Type).Sprint(g.Symbol), string(g.Type), g.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
