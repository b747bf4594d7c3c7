package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yildizm/NanoLab/internal/settings"
	"gopkg.in/yaml.v3"
)

// latestByForm keeps one record per form in first-seen order, holding the
// most recent values. JSON and YAML output key objects by form.
func latestByForm(records []settings.Record) []settings.Record {
	out := make([]settings.Record, 0, len(records))
	index := make(map[string]int, len(records))
	for _, r := range records {
		if i, ok := index[r.Form]; ok {
			out[i] = r
			continue
		}
		index[r.Form] = len(out)
		out = append(out, r)
	}
	return out
}

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// Format writes one object per form with entries in field order
func (f *jsonFormatter) Format(records ...settings.Record) ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, r := range latestByForm(records) {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := writeJSONString(&b, r.Form); err != nil {
			return nil, err
		}
		b.WriteString(":{")
		for j, e := range r.Entries {
			if j > 0 {
				b.WriteByte(',')
			}
			if err := writeJSONString(&b, e.Key); err != nil {
				return nil, err
			}
			b.WriteByte(':')
			if err := writeJSONString(&b, e.Value); err != nil {
				return nil, err
			}
		}
		b.WriteByte('}')
	}
	b.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, b.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("failed to marshal records to JSON: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeJSONString(b *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal records to JSON: %w", err)
	}
	b.Write(data)
	return nil
}

// yamlFormatter formats output as YAML
type yamlFormatter struct{}

// NewYAML creates a new YAML formatter
func NewYAML() Formatter {
	return &yamlFormatter{}
}

// Format writes one mapping per form with entries in field order
func (f *yamlFormatter) Format(records ...settings.Record) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, r := range latestByForm(records) {
		entries := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range r.Entries {
			entries.Content = append(entries.Content, yamlString(e.Key), yamlString(e.Value))
		}
		root.Content = append(root.Content, yamlString(r.Form), entries)
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal records to YAML: %w", err)
	}
	return data, nil
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// csvFormatter writes one row per record, one column per key
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(records ...settings.Record) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	keys := unionKeys(records)
	if err := writer.Write(append([]string{"form"}, keys...)); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, r := range records {
		values := r.Map()
		row := make([]string, 0, len(keys)+1)
		row = append(row, r.Form)
		for _, k := range keys {
			row = append(row, values[k])
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return b.Bytes(), nil
}

// markdownFormatter formats output as Markdown tables
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(records ...settings.Record) ([]byte, error) {
	var b strings.Builder
	b.WriteString("# NanoLab Settings\n")
	for _, r := range records {
		b.WriteString(fmt.Sprintf("\n## %s\n\n", r.Form))
		b.WriteString("| Setting | Value |\n")
		b.WriteString("|---------|-------|\n")
		for _, e := range r.Entries {
			b.WriteString(fmt.Sprintf("| %s | %s |\n", escapeMarkdown(e.Key), escapeMarkdown(e.Value)))
		}
	}
	return []byte(b.String()), nil
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
