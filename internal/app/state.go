package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yildizm/NanoLab/internal/config"
	"github.com/yildizm/NanoLab/internal/logger"
	"github.com/yildizm/NanoLab/internal/nav"
	"github.com/yildizm/NanoLab/internal/settings"
	"github.com/yildizm/NanoLab/internal/sink"
)

// ErrNoForm is returned when a form command targets a page without a form
var ErrNoForm = errors.New("page has no settings form")

// Options configures a State
type Options struct {
	Config *config.Config
	Sink   sink.Sink
	Logger *logger.Logger
	Now    func() time.Time
}

// State is the whole control panel: navigation, forms, theme and the
// record sink. It is owned by the UI goroutine.
type State struct {
	cfg        *config.Config
	theme      Theme
	applied    int
	navigator  *nav.Navigator
	forms      map[nav.PageID]settings.Settings
	led        *settings.LEDForm
	schedule   *settings.ScheduleForm
	experiment *Experiment
	recorder   *sink.Recorder
	sink       sink.Sink
	log        *logger.Logger
	now        func() time.Time
}

// New creates an uninitialised State; call Init before use
func New(opts Options) *State {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	recorder := &sink.Recorder{}
	var out sink.Sink = recorder
	if opts.Sink != nil {
		out = sink.MultiSink{recorder, opts.Sink}
	}
	return &State{
		cfg:      cfg,
		recorder: recorder,
		sink:     out,
		log:      log.WithComponent("app"),
		now:      now,
	}
}

// Init builds forms and pages and shows the configured start page
func (s *State) Init() error {
	theme, err := ThemeByName(s.cfg.UI.Theme)
	if err != nil {
		theme = LightTheme
	}
	s.theme = theme

	s.led = settings.NewLEDForm()
	s.schedule = settings.NewScheduleForm(s.now())
	s.forms = map[nav.PageID]settings.Settings{
		nav.PageLED:      s.led,
		nav.PageWater:    settings.NewWaterPumpForm(),
		nav.PageFan:      settings.NewFanForm(),
		nav.PageCamera:   settings.NewCameraForm(),
		nav.PageSensor:   settings.NewSensorForm(),
		nav.PageSchedule: s.schedule,
	}

	seed := s.cfg.Data.Seed
	if seed == 0 {
		seed = s.now().UnixNano()
	}
	s.experiment = NewExperiment(s.cfg.Data.Samples, s.cfg.Data.MaxValue, seed)

	registry, err := nav.NewRegistry(s.buildPages()...)
	if err != nil {
		return fmt.Errorf("failed to build page registry: %w", err)
	}
	s.navigator, err = nav.NewNavigator(registry, s.log)
	if err != nil {
		return err
	}

	start := nav.PageID(s.cfg.UI.StartPage)
	if start == "" {
		start = nav.PageWelcome
	}
	if err := s.navigator.SwitchTo(start, false); err != nil {
		return fmt.Errorf("invalid start page: %w", err)
	}
	s.Apply()
	return nil
}

// Apply marks the current theme as applied; the renderer rebuilds its
// styles whenever Applied changes
func (s *State) Apply() {
	s.applied++
	s.log.Debug("applied theme %s", s.theme.Name)
}

// Applied returns a counter bumped by every Apply
func (s *State) Applied() int { return s.applied }

// Theme returns the active theme
func (s *State) Theme() Theme { return s.theme }

// ToggleTheme switches between light and dark
func (s *State) ToggleTheme() {
	s.theme = s.theme.Opposite()
	s.Apply()
}

// SetTheme selects a theme by name
func (s *State) SetTheme(name string) error {
	theme, err := ThemeByName(name)
	if err != nil {
		return err
	}
	s.theme = theme
	s.Apply()
	return nil
}

// Navigator returns the page navigator
func (s *State) Navigator() *nav.Navigator { return s.navigator }

// CurrentPage returns the displayed page
func (s *State) CurrentPage() *Page {
	p, _ := s.navigator.Current().(*Page)
	return p
}

// Form returns the settings form shown on id
func (s *State) Form(id nav.PageID) (settings.Settings, bool) {
	f, ok := s.forms[id]
	return f, ok
}

// LED returns the LED form
func (s *State) LED() *settings.LEDForm { return s.led }

// Schedule returns the schedule form
func (s *State) Schedule() *settings.ScheduleForm { return s.schedule }

// Experiment returns the data page experiment
func (s *State) Experiment() *Experiment { return s.experiment }

// Saved returns every record emitted this session
func (s *State) Saved() []settings.Record { return s.recorder.Records() }

// formOrder is the order forms appear in bulk operations
var formOrder = []nav.PageID{nav.PageLED, nav.PageWater, nav.PageFan, nav.PageCamera, nav.PageSensor, nav.PageSchedule}

// Save emits the record of the form on id
func (s *State) Save(ctx context.Context, id nav.PageID) (settings.Record, error) {
	form, ok := s.forms[id]
	if !ok {
		return settings.Record{}, fmt.Errorf("%w: %s", ErrNoForm, id)
	}
	rec := form.Save()
	if err := s.sink.Emit(ctx, rec); err != nil {
		s.log.WarnWithFields("save failed", []logger.Field{logger.F("form", id), logger.Err(err)})
		return rec, fmt.Errorf("failed to save %s: %w", id, err)
	}
	return rec, nil
}

// SendAll emits the records of every form in one batch
func (s *State) SendAll(ctx context.Context) ([]settings.Record, error) {
	records := make([]settings.Record, 0, len(formOrder))
	for _, id := range formOrder {
		records = append(records, s.forms[id].Save())
	}
	if err := s.sink.Emit(ctx, records...); err != nil {
		s.log.WarnWithFields("send failed", []logger.Field{logger.Count(len(records)), logger.Err(err)})
		return records, fmt.Errorf("failed to send settings: %w", err)
	}
	s.log.InfoWithFields("sent settings", []logger.Field{logger.Count(len(records))})
	return records, nil
}

// ComparisonRow pairs a current value with the last saved one
type ComparisonRow struct {
	Form    string
	Key     string
	Current string
	Saved   string
	Changed bool
}

// Comparison lists every form entry with its last saved value
func (s *State) Comparison() []ComparisonRow {
	var rows []ComparisonRow
	for _, id := range formOrder {
		current := s.forms[id].Save()
		saved, hasSaved := s.recorder.Last(current.Form)
		for _, e := range current.Entries {
			if e.Key == "summary" {
				continue
			}
			row := ComparisonRow{Form: current.Form, Key: e.Key, Current: e.Value, Saved: "-"}
			if hasSaved {
				if v, ok := saved.Get(e.Key); ok {
					row.Saved = v
				}
			}
			row.Changed = row.Saved != row.Current
			rows = append(rows, row)
		}
	}
	return rows
}

// Dispatch applies a command. Errors are recoverable: state is left as it
// was before the failing command.
func (s *State) Dispatch(ctx context.Context, cmd Command) (Result, error) {
	target := cmd.Target
	if target == "" {
		target = s.navigator.CurrentID()
	}

	switch cmd.Kind {
	case CmdNone:
		return Result{}, nil

	case CmdNavigate:
		if err := s.navigator.SwitchTo(cmd.Target, true); err != nil {
			return Result{}, err
		}
		return Result{Message: s.CurrentPage().Title()}, nil

	case CmdBack:
		if !s.navigator.GoBack() {
			return Result{Message: "Nothing to go back to"}, nil
		}
		return Result{Message: s.CurrentPage().Title()}, nil

	case CmdForward:
		if !s.navigator.GoForward() {
			return Result{Message: "Nothing to go forward to"}, nil
		}
		return Result{Message: s.CurrentPage().Title()}, nil

	case CmdToggleTheme:
		s.ToggleTheme()
		return Result{Message: "Theme: " + s.theme.Name}, nil

	case CmdSetValue, CmdStep:
		form, ok := s.forms[target]
		if !ok {
			return Result{}, fmt.Errorf("%w: %s", ErrNoForm, target)
		}
		if cmd.Kind == CmdStep {
			if err := form.Step(cmd.Field, cmd.Value); err != nil {
				return Result{}, err
			}
			return Result{Message: form.Summary()}, nil
		}
		clamped, err := form.SetValue(cmd.Field, cmd.Value)
		if err != nil {
			return Result{}, err
		}
		res := Result{Message: form.Summary()}
		if clamped {
			field, _ := form.Field(cmd.Field)
			res.Warning = field.OutOfRange(cmd.Value)
			s.log.WarnWithFields("clamped %s", []logger.Field{logger.F("form", target), logger.Err(res.Warning)}, cmd.Field)
		}
		return res, nil

	case CmdSetColor:
		if err := s.led.Color.SetHex(cmd.Text); err != nil {
			s.log.Debug("color rejected: %v", err)
			return Result{}, err
		}
		return Result{Message: "Color " + s.led.Color.Hex()}, nil

	case CmdSetStart:
		if err := s.schedule.SetStart(cmd.Text); err != nil {
			return Result{}, err
		}
		return Result{Message: s.schedule.Summary()}, nil

	case CmdShiftStart:
		s.schedule.ShiftStart(cmd.Value)
		return Result{Message: s.schedule.Summary()}, nil

	case CmdSave:
		rec, err := s.Save(ctx, target)
		if err != nil {
			return Result{}, err
		}
		return Result{Message: "Saved " + rec.Form}, nil

	case CmdSendAll:
		records, err := s.SendAll(ctx)
		if err != nil {
			return Result{}, err
		}
		return Result{Message: fmt.Sprintf("Sent %d settings groups to your NanoLab", len(records))}, nil

	case CmdRunExperiment:
		data := s.experiment.Run()
		return Result{Message: fmt.Sprintf("Collected %d samples", len(data))}, nil

	default:
		return Result{}, fmt.Errorf("unsupported command: %s", cmd.Kind)
	}
}
