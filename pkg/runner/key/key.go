// Package key provides the runner that prints the entry type legend.
package key

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/recall/pkg/day"
	"tableflip.dev/recall/pkg/printers"
)

// Key prints the glyph for each entry type and the named day ranges.
type Key struct {
	Out io.Writer
}

func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")

	pp := printers.PrettyPrint{Out: out}
	pp.Legend()
	_, _ = fmt.Fprintln(out, "")

	k.Ranges(out)
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Ranges renders the accepted --range values with their aliases.
func (k *Key) Ranges(out io.Writer) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Range"), bold.Sprint("Aliases"), bold.Sprint("Meaning"))
	for _, r := range day.AllRanges() {
		tbl.AddRow(string(r), strings.Join(day.Aliases(r), ", "), r.Label())
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}
