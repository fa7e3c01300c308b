// Package summary provides the runners that print and copy the standup update
// and the weekly review.
package summary

import (
	"context"
	"errors"
	"io"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"

	"tableflip.dev/recall/pkg/app"
	"tableflip.dev/recall/pkg/day"
	"tableflip.dev/recall/pkg/printers"
	"tableflip.dev/recall/pkg/summary"
)

// Clipboard receives copied text. It defaults to the system clipboard.
type Clipboard func(text string) error

type Standup struct {
	Service   *app.Service
	Snappy    bool
	Copy      bool
	Clipboard Clipboard
	JSON      bool
	Out       io.Writer
	// Err receives the copy status. Nothing is reported when nil.
	Err       io.Writer
}

func (n *Standup) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not build standup, no entry store")
	}

	entries, now := n.Service.Entries(), n.Service.Now()
	text := summary.Standup(entries, n.Snappy, now)
	if n.JSON {
		return printers.JSON(n.Out, map[string]any{
			"text":     text,
			"snappy":   n.Snappy,
			"sections": summary.StandupEntries(entries, now),
		})
	}

	pp := printers.PrettyPrint{Now: now, Out: n.Out}
	pp.Card("Standup Mode", text)
	return copyText(n.Copy, n.Clipboard, n.Err, text)
}

type Review struct {
	Service   *app.Service
	Mode      day.Range
	Copy      bool
	Clipboard Clipboard
	JSON      bool
	Out       io.Writer
	// Err receives the copy status. Nothing is reported when nil.
	Err       io.Writer
}

func (n *Review) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not build review, no entry store")
	}

	entries, now := n.Service.Entries(), n.Service.Now()
	text := summary.WeeklyReview(entries, n.Mode, now)
	if n.JSON {
		return printers.JSON(n.Out, map[string]any{
			"text":   text,
			"review": summary.WeeklyReviewData(entries, n.Mode, now),
		})
	}

	pp := printers.PrettyPrint{Now: now, Out: n.Out}
	pp.Card("Weekly Review", text)
	return copyText(n.Copy, n.Clipboard, n.Err, text)
}

func copyText(enabled bool, cb Clipboard, errOut io.Writer, text string) error {
	if !enabled {
		return nil
	}
	if cb == nil {
		cb = clipboard.WriteAll
	}
	if errOut == nil {
		errOut = io.Discard
	}
	f := color.New(color.Faint)
	if err := cb(text); err != nil {
		// the text is already on screen, so a missing clipboard is not fatal
		_, _ = f.Fprintf(errOut, "could not copy: %v\n", err)
		return nil
	}
	_, _ = f.Fprintln(errOut, "Copied")
	return nil
}
