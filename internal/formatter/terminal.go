package formatter

import (
	"strings"

	"github.com/yildizm/NanoLab/internal/settings"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter renders records as trees using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(records ...settings.Record) ([]byte, error) {
	var b strings.Builder
	for i, rec := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(rec.Form + "\n")

		items := make([]termfmt.TreeItem, 0, len(rec.Entries))
		for j, e := range rec.Entries {
			items = append(items, termfmt.TreeItem{
				Label: e.Key,
				Value: e.Value,
				Last:  j == len(rec.Entries)-1,
			})
		}
		b.WriteString(termfmt.TreeViewWithOptions(items, f.opts))
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}
