package printers

import (
	"encoding/json"
	"io"

	"github.com/fatih/color"
)

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	if w == nil {
		w = color.Output
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
