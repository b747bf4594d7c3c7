package settings

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFieldSetClamps(t *testing.T) {
	tests := []struct {
		name        string
		in          int
		want        int
		wantClamped bool
	}{
		{"in range", 5, 5, false},
		{"at min", 1, 1, false},
		{"at max", 10, 10, false},
		{"below", -3, 1, true},
		{"above", 99, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Field{Name: "x", Min: 1, Max: 10, Value: 1}
			clamped := f.Set(tt.in)
			if f.Value != tt.want {
				t.Errorf("Value = %d, want %d", f.Value, tt.want)
			}
			if clamped != tt.wantClamped {
				t.Errorf("clamped = %v, want %v", clamped, tt.wantClamped)
			}
		})
	}
}

func TestFieldOutOfRange(t *testing.T) {
	f := Field{Name: "speed", Min: 0, Max: 100, Value: 50}
	f.Set(140)
	err := f.OutOfRange(140)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if want := "speed=140 outside [0, 100], using 100"; !strings.Contains(err.Error(), want) {
		t.Errorf("error = %q, want it to contain %q", err, want)
	}
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m"},
		{90, "1m 30s"},
		{360, "6m"},
		{3600, "1h"},
		{3725, "1h 2m 5s"},
		{3605, "1h 5s"},
	}

	for _, tt := range tests {
		if got := FormatHMS(tt.seconds); got != tt.want {
			t.Errorf("FormatHMS(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestLEDSummary(t *testing.T) {
	f := NewLEDForm()
	if _, err := f.SetValue("duration", 12); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if _, err := f.SetValue("frequency", 2); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}

	if !strings.Contains(f.Summary(), "24s") {
		t.Errorf("expected total 24 in summary, got %q", f.Summary())
	}
	if !strings.Contains(f.Summary(), "30 min") {
		t.Errorf("expected interval verbatim in summary, got %q", f.Summary())
	}
}

func TestWaterPumpSummary(t *testing.T) {
	f := NewWaterPumpForm()
	if _, err := f.SetValue("frequency", 4); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if _, err := f.SetValue("duration", 90); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}

	summary := f.Summary()
	if !strings.Contains(summary, "Total pumping: 6m |") {
		t.Errorf("expected 6m total, got %q", summary)
	}
	if strings.Contains(summary, "0s") || strings.Contains(summary, "0h") {
		t.Errorf("zero components should be omitted, got %q", summary)
	}
}

func TestSetValueRecomputesSynchronously(t *testing.T) {
	f := NewWaterPumpForm()
	before := f.Summary()
	if _, err := f.SetValue("duration", 600); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if f.Summary() == before {
		t.Error("summary not recomputed after SetValue")
	}
}

func TestSetValueClampsToRange(t *testing.T) {
	f := NewLEDForm()
	clamped, err := f.SetValue("duration", 1000)
	if err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if !clamped {
		t.Error("expected clamped=true")
	}
	if f.Value("duration") != 60 {
		t.Errorf("duration = %d, want 60", f.Value("duration"))
	}
}

func TestSetValueUnknownField(t *testing.T) {
	f := NewFanForm()
	_, err := f.SetValue("rpm", 3)
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestStep(t *testing.T) {
	f := NewFanForm()
	if err := f.Step("speed", 10); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if f.Value("speed") != 60 {
		t.Errorf("speed = %d, want 60", f.Value("speed"))
	}
	if err := f.Step("speed", -500); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if f.Summary() != "Fan off" {
		t.Errorf("summary = %q", f.Summary())
	}
}

func TestSaveRecord(t *testing.T) {
	f := NewLEDForm()
	if err := f.Color.SetHex("#FF8800"); err != nil {
		t.Fatalf("SetHex failed: %v", err)
	}
	rec := f.Save()

	if rec.Form != FormLED {
		t.Errorf("Form = %q", rec.Form)
	}
	want := []string{"duration", "frequency", "interval", "color", "summary"}
	keys := rec.Keys()
	if strings.Join(keys, ",") != strings.Join(want, ",") {
		t.Errorf("keys = %v, want %v", keys, want)
	}
	if v, _ := rec.Get("color"); v != "#ff8800" {
		t.Errorf("color = %q", v)
	}
	if v, _ := rec.Get("duration"); v != "10" {
		t.Errorf("duration = %q", v)
	}
	if rec.Map()["summary"] != f.Summary() {
		t.Error("summary entry does not match Summary()")
	}
}

func TestColorInvalidLeavesPrevious(t *testing.T) {
	c := NewColor()
	if err := c.SetHex("#00ff00"); err != nil {
		t.Fatalf("SetHex failed: %v", err)
	}

	for _, bad := range []string{"notacolor", "#12345", "#gggggg", "00ff00", "#00ff00ff", ""} {
		err := c.SetHex(bad)
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("SetHex(%q) error = %v, want ErrInvalidColor", bad, err)
		}
		if c.Hex() != "#00ff00" {
			t.Errorf("after SetHex(%q) color = %s", bad, c.Hex())
		}
	}
}

func TestColorAcceptedForms(t *testing.T) {
	tests := map[string]string{
		"#fff":    "#ffffff",
		"#ABCDEF": "#abcdef",
		" #123 ":  "#112233",
		"blue":    "#0000ff",
	}
	for in, want := range tests {
		c := NewColor()
		if err := c.SetHex(in); err != nil {
			t.Errorf("SetHex(%q) failed: %v", in, err)
			continue
		}
		if c.Hex() != want {
			t.Errorf("SetHex(%q) = %s, want %s", in, c.Hex(), want)
		}
	}
}

func TestColorRGBAndHelpers(t *testing.T) {
	c := NewColor()
	if err := c.SetHex("#f00"); err != nil {
		t.Fatalf("SetHex failed: %v", err)
	}
	if r, g, b := c.RGB(); r != 255 || g != 0 || b != 0 {
		t.Errorf("RGB = %d %d %d", r, g, b)
	}
	if c.NearestNamed().Name != "red" {
		t.Errorf("nearest = %s", c.NearestNamed().Name)
	}
	white := NewColor()
	if white.ContrastText() != "#000000" {
		t.Errorf("white contrast = %s", white.ContrastText())
	}
	if err := c.SetHex("#000000"); err != nil {
		t.Fatalf("SetHex failed: %v", err)
	}
	if c.ContrastText() != "#ffffff" {
		t.Errorf("black contrast = %s", c.ContrastText())
	}
}

func TestScheduleForm(t *testing.T) {
	s := NewScheduleForm(time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC))
	if _, err := s.SetValue("days", 10); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if s.Summary() != "Runs 10 days from 2026-03-01 to 2026-03-10" {
		t.Errorf("summary = %q", s.Summary())
	}

	if err := s.SetStart("not-a-date"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if s.Start().Format(DateLayout) != "2026-03-01" {
		t.Errorf("start changed to %s", s.Start().Format(DateLayout))
	}

	if err := s.SetStart("2026-12-30"); err != nil {
		t.Fatalf("SetStart failed: %v", err)
	}
	if v, _ := s.Save().Get("end"); v != "2027-01-08" {
		t.Errorf("end = %q", v)
	}

	s.ShiftStart(-1)
	if !strings.Contains(s.Summary(), "2026-12-29") {
		t.Errorf("summary after shift = %q", s.Summary())
	}
}

func TestCameraAndSensorSummaries(t *testing.T) {
	cam := NewCameraForm()
	if cam.Summary() != "12 captures over 12h | Exposure: 100 ms" {
		t.Errorf("camera summary = %q", cam.Summary())
	}
	sensor := NewSensorForm()
	if sensor.Summary() != "Sample every 15m | Average over 1h" {
		t.Errorf("sensor summary = %q", sensor.Summary())
	}
}

func TestFormsImplementSettings(t *testing.T) {
	var _ Settings = NewLEDForm()
	var _ Settings = NewWaterPumpForm()
	var _ Settings = NewScheduleForm(time.Now())
}
