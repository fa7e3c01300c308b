package printers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/recall/pkg/day"
	"tableflip.dev/recall/pkg/entry"
	"tableflip.dev/recall/pkg/glyph"
	"tableflip.dev/recall/pkg/timeline"
	"tableflip.dev/recall/pkg/timeutil"
)

// ShortID is how many characters of an entry id are shown.
const ShortID = 8

const detailWidth = 72

type PrettyPrint struct {
	ShowID bool
	// Now anchors "Today" and "Yesterday" labels; zero means time.Now.
	Now time.Time
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", ShortID+2)
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now.IsZero() {
		return time.Now()
	}
	return pp.Now
}

// Terminal reports whether output goes to an interactive terminal.
func (pp *PrettyPrint) Terminal() bool {
	w := pp.Out
	if w == nil {
		w = os.Stdout
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Timeline prints day groups newest first. total is the number of matching
// entries before truncation; when fewer are shown a footer says so.
func (pp *PrettyPrint) Timeline(groups []timeline.Group, total int) {
	if len(groups) == 0 {
		pp.none("nothing logged for these filters")
		return
	}
	f := color.New(color.Faint)
	for _, g := range groups {
		pp.TitleWithCount(day.Label(g.Day, pp.now()), g.Total)
		pp.Entries(g.Entries...)
		if hidden := g.Hidden(); hidden > 0 {
			_, _ = f.Fprintf(pp.out(), "%s  +%d more\n", pp.indent(), hidden)
		}
		pp.NewLine()
	}
	if shown := timeline.Count(groups); shown < total {
		_, _ = f.Fprintf(pp.out(), "Showing %d of %d entries.\n", shown, total)
	}
}

func (pp *PrettyPrint) indent() string {
	if pp.ShowID {
		return spacing
	}
	return ""
}

func (pp *PrettyPrint) none(msg string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.out(), "%s %s\n\n", pp.indent(), msg)
}

// Entries prints one line per entry followed by its wrapped detail.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)
	tags := color.New(color.FgCyan)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Fprint(pp.out(), Short(e.ID))
			_, _ = y.Fprint(pp.out(), strings.Repeat(" ", len(spacing)-len(Short(e.ID))))
		}
		_, _ = f.Fprintf(pp.out(), "%8s ", day.ShortTime(e.CreatedAt))
		_, _ = typeColor(e.Type).Fprintf(pp.out(), "%s ", glyph.For(e.Type))
		_, _ = fmt.Fprint(pp.out(), e.Text)
		for _, t := range e.Tags {
			_, _ = tags.Fprintf(pp.out(), " #%s", t)
		}
		if e.Minutes != nil {
			_, _ = f.Fprintf(pp.out(), " %s", timeutil.FormatMinutes(*e.Minutes))
		}
		if e.Mood != nil {
			_, _ = f.Fprintf(pp.out(), " mood %d/5", *e.Mood)
		}
		_, _ = fmt.Fprintln(pp.out(), "")
		if e.Detail != nil {
			pad := uint(len(pp.indent()) + 11)
			_, _ = f.Fprintln(pp.out(), indent.String(wordwrap.String(*e.Detail, detailWidth), pad))
		}
	}
}

// Entry prints a single entry with its full date.
func (pp *PrettyPrint) Entry(e entry.Entry) {
	pp.Title(day.FullDate(e.Day, pp.Now.Location()))
	pp.Entries(e)
}

// Card prints a titled block of text. Terminals get a rounded border; piped
// output stays plain so it can be pasted as is.
func (pp *PrettyPrint) Card(title, body string) {
	if !pp.Terminal() {
		_, _ = fmt.Fprintln(pp.out(), body)
		return
	}
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")).Render(title)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("30")).
		Padding(0, 1).
		Render(heading + "\n\n" + body)
	_, _ = fmt.Fprintln(pp.out(), card)
}

// Short trims an id for display.
func Short(id string) string {
	if len(id) <= ShortID {
		return id
	}
	return id[:ShortID]
}

func typeColor(t entry.Type) *color.Color {
	switch t {
	case entry.Did:
		return color.New(color.FgGreen)
	case entry.Plan:
		return color.New(color.FgBlue)
	case entry.Blocker:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}
