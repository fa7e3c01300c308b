// Package info provides the runner that reports configuration and storage
// details.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/recall/pkg/app"
	"tableflip.dev/recall/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Service     *app.Service
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("RECALL_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "RECALL_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "RECALL_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if fc, ok := n.Config.(*store.FileConfig); ok && fc.Location != "" {
		_, _ = fmt.Fprintln(out, "Config.file:", fc.Location)
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.backend:", n.Config.Backend())
	_, _ = fmt.Fprintln(out, "Config.namespace:", n.Config.Namespace())
	_, _ = fmt.Fprintln(out, "Config.log_level:", n.Config.LogLevel())

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}
	_, _ = fmt.Fprintln(out, "Storage:", n.Persistence.Describe())

	_, _ = fmt.Fprintf(out, "Keys:\n")
	keys, err := n.Persistence.Keys(ctx)
	switch {
	case err != nil:
		_, _ = fmt.Fprintf(out, "  could not list keys: %v\n", err)
	case len(keys) == 0:
		_, _ = fmt.Fprintf(out, "  %s\n", "no stored state")
	}
	for _, k := range keys {
		_, _ = fmt.Fprintf(out, "  %s\n", k)
	}

	if n.Service != nil {
		_, _ = fmt.Fprintln(out, "Entries:", n.Service.Len())
	}
	return nil
}
