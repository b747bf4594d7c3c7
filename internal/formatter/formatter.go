package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/NanoLab/internal/settings"
)

// Formatter renders saved settings records
type Formatter interface {
	Format(records ...settings.Record) ([]byte, error)
}

// Formats lists the accepted format names
var Formats = []string{"text", "json", "yaml", "csv", "markdown"}

// IsValid reports whether name is a known format
func IsValid(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// New returns the formatter registered under name
func New(name string, color bool) (Formatter, error) {
	switch strings.ToLower(name) {
	case "text", "":
		return NewTerminal(color), nil
	case "json":
		return NewJSON(), nil
	case "yaml":
		return NewYAML(), nil
	case "csv":
		return NewCSV(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (must be one of: %s)", name, strings.Join(Formats, ", "))
	}
}

// unionKeys returns every key across records, in first-seen order
func unionKeys(records []settings.Record) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, r := range records {
		for _, k := range r.Keys() {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}
