package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yildizm/NanoLab/internal/config"
	"github.com/yildizm/NanoLab/internal/formatter"
	"github.com/yildizm/NanoLab/internal/logger"
	"github.com/yildizm/NanoLab/internal/nav"
	"github.com/yildizm/NanoLab/internal/settings"
	"github.com/yildizm/NanoLab/internal/sink"
)

var fixedNow = func() time.Time { return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC) }

func newTestState(t *testing.T, mutate func(*config.Config), out sink.Sink) *State {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Data.Seed = 1
	if mutate != nil {
		mutate(cfg)
	}
	s := New(Options{Config: cfg, Sink: out, Now: fixedNow})
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return s
}

func dispatch(t *testing.T, s *State, cmd Command) Result {
	t.Helper()
	res, err := s.Dispatch(context.Background(), cmd)
	if err != nil {
		t.Fatalf("Dispatch(%s) failed: %v", cmd.Kind, err)
	}
	return res
}

func TestInitRegistersEveryPage(t *testing.T) {
	s := newTestState(t, nil, nil)
	ids := s.Navigator().Registry().IDs()
	if len(ids) != len(nav.AllPageIDs()) {
		t.Fatalf("registered %d pages, want %d", len(ids), len(nav.AllPageIDs()))
	}
	if s.Navigator().CurrentID() != nav.PageWelcome {
		t.Errorf("start page = %s", s.Navigator().CurrentID())
	}
	if len(s.Navigator().History()) != 0 {
		t.Error("start page must not be recorded")
	}
	if s.Applied() != 1 {
		t.Errorf("Applied = %d after Init", s.Applied())
	}
	if s.CurrentPage().Visits() != 1 {
		t.Errorf("welcome visits = %d after Init", s.CurrentPage().Visits())
	}
}

func TestInitStartPageFromConfig(t *testing.T) {
	s := newTestState(t, func(c *config.Config) { c.UI.StartPage = "led"; c.UI.Theme = "dark" }, nil)
	if s.Navigator().CurrentID() != nav.PageLED {
		t.Errorf("start page = %s", s.Navigator().CurrentID())
	}
	if s.Theme().Name != "dark" {
		t.Errorf("theme = %s", s.Theme().Name)
	}
	if s.CurrentPage().Visits() != 1 {
		t.Errorf("led visits = %d", s.CurrentPage().Visits())
	}
	welcome, _ := s.Navigator().Registry().Lookup(nav.PageWelcome)
	if p := s.Navigator().Registry().Page(welcome).(*Page); p.Visits() != 1 {
		t.Errorf("welcome visits = %d, want 1 (entered then left)", p.Visits())
	}
}

func TestInitRejectsUnknownStartPage(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.StartPage = "attic"
	s := New(Options{Config: cfg})
	if err := s.Init(); !errors.Is(err, nav.ErrUnknownPage) {
		t.Errorf("expected ErrUnknownPage, got %v", err)
	}
}

func TestNavigationCommands(t *testing.T) {
	s := newTestState(t, nil, nil)
	welcome := s.CurrentPage()
	dispatch(t, s, welcome.Menu()[1].Command) // settings menu
	dispatch(t, s, Command{Kind: CmdNavigate, Target: nav.PageLED})

	res := dispatch(t, s, Command{Kind: CmdBack})
	if s.Navigator().CurrentID() != nav.PageSettingsMenu {
		t.Errorf("after back: %s", s.Navigator().CurrentID())
	}
	if res.Message != "Adjust NanoLab Settings" {
		t.Errorf("message = %q", res.Message)
	}
	dispatch(t, s, Command{Kind: CmdForward})
	if s.Navigator().CurrentID() != nav.PageLED {
		t.Errorf("after forward: %s", s.Navigator().CurrentID())
	}

	res = dispatch(t, s, Command{Kind: CmdForward})
	if res.Message != "Nothing to go forward to" {
		t.Errorf("message = %q", res.Message)
	}

	if _, err := s.Dispatch(context.Background(), Command{Kind: CmdNavigate, Target: "roof"}); !errors.Is(err, nav.ErrUnknownPage) {
		t.Errorf("expected ErrUnknownPage, got %v", err)
	}
}

func TestThemeLifecycle(t *testing.T) {
	s := newTestState(t, nil, nil)
	before := s.Applied()
	dispatch(t, s, Command{Kind: CmdToggleTheme})
	if s.Theme().Name != "dark" || s.Applied() != before+1 {
		t.Errorf("theme=%s applied=%d", s.Theme().Name, s.Applied())
	}
	dispatch(t, s, Command{Kind: CmdToggleTheme})
	if s.Theme().Name != "light" {
		t.Errorf("theme=%s", s.Theme().Name)
	}
	if err := s.SetTheme("sepia"); err == nil {
		t.Error("expected error for unknown theme")
	}
	if s.Theme().Name != "light" {
		t.Errorf("failed SetTheme changed theme to %s", s.Theme().Name)
	}
}

func TestFormCommandsUseCurrentPage(t *testing.T) {
	s := newTestState(t, nil, nil)
	dispatch(t, s, Command{Kind: CmdNavigate, Target: nav.PageWater})
	dispatch(t, s, Command{Kind: CmdSetValue, Field: "frequency", Value: 4})
	res := dispatch(t, s, Command{Kind: CmdSetValue, Field: "duration", Value: 90})
	if !strings.Contains(res.Message, "6m") {
		t.Errorf("summary = %q", res.Message)
	}

	res = dispatch(t, s, Command{Kind: CmdSetValue, Field: "duration", Value: 9999})
	if !errors.Is(res.Warning, settings.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange warning, got %v", res.Warning)
	}
	if res.Warning != nil && !strings.Contains(res.Warning.Error(), "duration=9999") {
		t.Errorf("warning = %q", res.Warning)
	}

	res = dispatch(t, s, Command{Kind: CmdSetValue, Field: "duration", Value: 60})
	if res.Warning != nil {
		t.Errorf("in-range value warned: %v", res.Warning)
	}

	dispatch(t, s, Command{Kind: CmdNavigate, Target: nav.PageAbout})
	if _, err := s.Dispatch(context.Background(), Command{Kind: CmdStep, Field: "duration", Value: 1}); !errors.Is(err, ErrNoForm) {
		t.Errorf("expected ErrNoForm, got %v", err)
	}
}

func TestSetColorInvalidKeepsPrevious(t *testing.T) {
	s := newTestState(t, nil, nil)
	dispatch(t, s, Command{Kind: CmdSetColor, Text: "#336699"})
	if _, err := s.Dispatch(context.Background(), Command{Kind: CmdSetColor, Text: "notacolor"}); !errors.Is(err, settings.ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
	if s.LED().Color.Hex() != "#336699" {
		t.Errorf("color = %s", s.LED().Color.Hex())
	}
}

func TestScheduleCommands(t *testing.T) {
	s := newTestState(t, nil, nil)
	if s.Schedule().Start().Format(settings.DateLayout) != "2026-05-01" {
		t.Errorf("start = %s", s.Schedule().Start())
	}
	dispatch(t, s, Command{Kind: CmdShiftStart, Target: nav.PageSchedule, Value: 2})
	if _, err := s.Dispatch(context.Background(), Command{Kind: CmdSetStart, Text: "tomorrow"}); !errors.Is(err, settings.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if s.Schedule().Start().Format(settings.DateLayout) != "2026-05-03" {
		t.Errorf("start = %s", s.Schedule().Start())
	}
}

func TestSaveAndComparison(t *testing.T) {
	var buf bytes.Buffer
	s := newTestState(t, nil, sink.NewWriterSink(&buf, formatter.NewCSV()))

	rows := s.Comparison()
	for _, r := range rows {
		if r.Saved != "-" || !r.Changed {
			t.Fatalf("unsaved row should show no saved value: %+v", r)
		}
	}

	dispatch(t, s, Command{Kind: CmdSave, Target: nav.PageFan})
	if !strings.Contains(buf.String(), "fan,50,15,2") {
		t.Errorf("sink output = %q", buf.String())
	}
	dispatch(t, s, Command{Kind: CmdSetValue, Target: nav.PageFan, Field: "speed", Value: 70})

	var speed ComparisonRow
	for _, r := range s.Comparison() {
		if r.Form == "fan" && r.Key == "speed" {
			speed = r
		}
	}
	if speed.Current != "70" || speed.Saved != "50" || !speed.Changed {
		t.Errorf("speed row = %+v", speed)
	}

	if _, err := s.Save(context.Background(), nav.PageWelcome); !errors.Is(err, ErrNoForm) {
		t.Errorf("expected ErrNoForm, got %v", err)
	}
}

func TestSendAll(t *testing.T) {
	s := newTestState(t, nil, nil)
	dispatch(t, s, Command{Kind: CmdNavigate, Target: nav.PageSettingsMenu})
	menu := s.CurrentPage().Menu()
	res := dispatch(t, s, menu[len(menu)-1].Command)

	if res.Message != "Sent 6 settings groups to your NanoLab" {
		t.Errorf("message = %q", res.Message)
	}
	if len(s.Saved()) != 6 {
		t.Errorf("saved %d records", len(s.Saved()))
	}
	for _, r := range s.Comparison() {
		if r.Changed {
			t.Errorf("row changed right after send: %+v", r)
		}
	}
}

type failingSink struct{}

func (failingSink) Emit(context.Context, ...settings.Record) error { return errors.New("device offline") }

func TestSinkFailuresAreLogged(t *testing.T) {
	var logs bytes.Buffer
	log := logger.New("test", nil)
	log.SetOutput(&logs)

	cfg := config.DefaultConfig()
	s := New(Options{Config: cfg, Sink: failingSink{}, Logger: log, Now: fixedNow})
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if _, err := s.Save(context.Background(), nav.PageFan); err == nil {
		t.Error("expected save error")
	}
	if _, err := s.SendAll(context.Background()); err == nil {
		t.Error("expected send error")
	}
	if _, err := s.Dispatch(context.Background(), Command{Kind: CmdSetValue, Target: nav.PageFan, Field: "speed", Value: -5}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	for _, want := range []string{
		"WARN [app] save failed [form=fan error=device offline]",
		"WARN [app] send failed [count=6 error=device offline]",
		"WARN [app] clamped speed [form=fan error=value out of range: speed=-5",
	} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log missing %q:\n%s", want, logs.String())
		}
	}
}

func TestRunExperiment(t *testing.T) {
	s := newTestState(t, func(c *config.Config) { c.Data.Samples = 50; c.Data.MaxValue = 20 }, nil)
	if s.Experiment().Data() != nil {
		t.Error("expected no data before first run")
	}
	dispatch(t, s, Command{Kind: CmdRunExperiment})
	data := s.Experiment().Data()
	if len(data) != 50 {
		t.Fatalf("expected 50 samples, got %d", len(data))
	}
	for _, v := range data {
		if v < 0 || v > 20 {
			t.Fatalf("sample %d out of range", v)
		}
	}
	lo, hi, mean := s.Experiment().Stats()
	if lo > hi || mean < float64(lo) || mean > float64(hi) {
		t.Errorf("inconsistent stats lo=%d hi=%d mean=%f", lo, hi, mean)
	}
}

func TestExperimentSeedIsReproducible(t *testing.T) {
	a := NewExperiment(10, 5, 99).Run()
	b := NewExperiment(10, 5, 99).Run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs differ at %d: %v vs %v", i, a, b)
		}
	}
}

func TestCommandKindString(t *testing.T) {
	if CmdSendAll.String() != "send-all" {
		t.Errorf("String = %s", CmdSendAll.String())
	}
	if CommandKind(100).String() != "command(100)" {
		t.Errorf("String = %s", CommandKind(100).String())
	}
}

type kindRenderer struct{}

func (kindRenderer) RenderMenu(p *Page) string       { return "menu:" + string(p.ID()) }
func (kindRenderer) RenderForm(p *Page) string       { return "form:" + p.Form().ID() }
func (kindRenderer) RenderData(p *Page) string       { return "data" }
func (kindRenderer) RenderInfo(p *Page) string       { return "info" }
func (kindRenderer) RenderStorage(p *Page) string    { return "storage" }
func (kindRenderer) RenderComparison(p *Page) string { return "comparison" }

func TestPageRenderDispatchesOnKind(t *testing.T) {
	s := newTestState(t, nil, nil)
	reg := s.Navigator().Registry()
	want := map[nav.PageID]string{
		nav.PageWelcome:            "menu:welcome",
		nav.PageSettingsMenu:       "menu:settings_menu",
		nav.PageData:               "data",
		nav.PageWater:              "form:water",
		nav.PageSchedule:           "form:schedule",
		nav.PageAbout:              "info",
		nav.PageStorage:            "storage",
		nav.PageSettingsComparison: "comparison",
	}
	for id, expected := range want {
		idx, err := reg.Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", id, err)
		}
		page := reg.Page(idx).(*Page)
		if got := page.Render(kindRenderer{}); got != expected {
			t.Errorf("%s rendered %q, want %q", id, got, expected)
		}
	}
}
