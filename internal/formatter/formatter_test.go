package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/yildizm/NanoLab/internal/settings"
	"gopkg.in/yaml.v3"
)

func sampleRecords() []settings.Record {
	led := settings.NewLEDForm()
	_, _ = led.SetValue("duration", 12)
	_, _ = led.SetValue("frequency", 2)
	return []settings.Record{led.Save(), settings.NewWaterPumpForm().Save()}
}

func TestNewUnknownFormat(t *testing.T) {
	if _, err := New("xml", false); err == nil {
		t.Error("expected error for unknown format")
	}
	for _, name := range Formats {
		if _, err := New(name, false); err != nil {
			t.Errorf("New(%q) failed: %v", name, err)
		}
		if !IsValid(name) {
			t.Errorf("IsValid(%q) = false", name)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	data, err := NewJSON().Format(sampleRecords()...)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	var out map[string]map[string]string
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out["led"]["duration"] != "12" {
		t.Errorf("led duration = %q", out["led"]["duration"])
	}
	if out["water"]["summary"] == "" {
		t.Error("missing water summary")
	}
}

func TestYAMLFormat(t *testing.T) {
	data, err := NewYAML().Format(sampleRecords()...)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	var out map[string]map[string]string
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if out["led"]["color"] != "#ffffff" {
		t.Errorf("led color = %q", out["led"]["color"])
	}
}

func TestCSVFormat(t *testing.T) {
	data, err := NewCSV().Format(sampleRecords()...)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "form,duration,frequency,interval,color,summary") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "led,12,2,30,#ffffff,") {
		t.Errorf("unexpected led row %q", lines[1])
	}
	// water has no color column value
	if !strings.HasPrefix(lines[2], "water,30,2,6,,") {
		t.Errorf("unexpected water row %q", lines[2])
	}
}

func TestMarkdownFormat(t *testing.T) {
	data, err := NewMarkdown().Format(sampleRecords()...)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	out := string(data)
	for _, want := range []string{"## led", "## water", "| duration | 12 |", "\\|"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestStructuredFormatsKeepFieldOrder(t *testing.T) {
	tests := []struct {
		name   string
		format Formatter
		keys   []string
	}{
		{"json", NewJSON(), []string{`"led"`, `"duration"`, `"frequency"`, `"interval"`, `"color"`, `"summary"`, `"water"`}},
		{"yaml", NewYAML(), []string{"led:", "duration:", "frequency:", "interval:", "color:", "summary:", "water:"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.format.Format(sampleRecords()...)
			if err != nil {
				t.Fatalf("Format failed: %v", err)
			}
			out := string(data)
			last := -1
			for _, k := range tt.keys {
				i := strings.Index(out, k)
				if i <= last {
					t.Fatalf("%s out of order (at %d, previous key at %d):\n%s", k, i, last, out)
				}
				last = i
			}
		})
	}
}

func TestStructuredFormatsKeepLatestRecordPerForm(t *testing.T) {
	fan := settings.NewFanForm()
	first := fan.Save()
	_, _ = fan.SetValue("speed", 80)
	second := fan.Save()

	for name, f := range map[string]Formatter{"json": NewJSON(), "yaml": NewYAML()} {
		data, err := f.Format(first, second)
		if err != nil {
			t.Fatalf("%s: Format failed: %v", name, err)
		}
		if n := strings.Count(string(data), "speed"); n != 1 {
			t.Errorf("%s: speed appears %d times:\n%s", name, n, data)
		}
		if !strings.Contains(string(data), "80") {
			t.Errorf("%s: latest value missing:\n%s", name, data)
		}
	}
}
