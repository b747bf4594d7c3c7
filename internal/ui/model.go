package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/NanoLab/internal/app"
	"github.com/yildizm/NanoLab/internal/config"
	"github.com/yildizm/NanoLab/internal/emoji"
	"github.com/yildizm/NanoLab/internal/logger"
	"github.com/yildizm/NanoLab/internal/nav"
	"github.com/yildizm/NanoLab/internal/settings"
)

// inputMode is what the keyboard currently drives
type inputMode int

const (
	modeNormal inputMode = iota
	modeEditHex
	modeEditDate
	modePicker
	modeJump
)

// Options configures a Model
type Options struct {
	State      *app.State
	Loader     *config.Loader
	ConfigPath string
	Watcher    *config.Watcher
	Glyphs     emoji.Set
	Logger     *logger.Logger
}

// Model is the bubbletea model of the control panel. Every key press is
// translated into an app.Command and dispatched to the state.
type Model struct {
	ctx    context.Context
	state  *app.State
	keys   KeyMap
	help   help.Model
	input  textinput.Model
	glyphs emoji.Set
	log    *logger.Logger

	loader     *config.Loader
	configPath string
	watcher    *config.Watcher

	styles    Styles
	stylesFor int

	width    int
	height   int
	mode     inputMode
	cursor   int
	picker   int
	page     nav.PageID
	status   string
	failed   bool
	quitting bool
}

// NewModel creates a model over an initialised state
func NewModel(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	loader := opts.Loader
	if loader == nil {
		loader = config.NewLoader()
	}

	input := textinput.New()
	input.CharLimit = 24

	m := &Model{
		ctx:        context.Background(),
		state:      opts.State,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		input:      input,
		glyphs:     opts.Glyphs,
		log:        log.WithComponent("ui"),
		loader:     loader,
		configPath: opts.ConfigPath,
		watcher:    opts.Watcher,
		page:       opts.State.Navigator().CurrentID(),
	}
	m.syncStyles()
	return m
}

// Init starts listening for config changes when a watcher is set
func (m *Model) Init() tea.Cmd {
	return waitForConfigChange(m.watcher)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case configChangedMsg:
		m.reloadConfig()
		return m, waitForConfigChange(m.watcher)
	case configErrorMsg:
		m.setError(msg.err)
		return m, waitForConfigChange(m.watcher)
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeEditHex, modeEditDate:
		return m.handleInputKey(msg)
	case modePicker:
		return m.handlePickerKey(msg)
	case modeJump:
		return m.handleJumpKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Back):
		return m.dispatch(app.Command{Kind: app.CmdBack})
	case key.Matches(msg, m.keys.Forward):
		return m.dispatch(app.Command{Kind: app.CmdForward})
	case key.Matches(msg, m.keys.Theme):
		return m.dispatch(app.Command{Kind: app.CmdToggleTheme})
	case key.Matches(msg, m.keys.Jump):
		return m, m.startInput(modeJump, "", "page name")
	}

	page := m.state.CurrentPage()
	switch page.Kind() {
	case app.KindMenu:
		return m.handleMenuKey(page, msg)
	case app.KindForm:
		return m.handleFormKey(page, msg)
	case app.KindData:
		if key.Matches(msg, m.keys.Run, m.keys.Enter) {
			return m.dispatch(app.Command{Kind: app.CmdRunExperiment})
		}
	}
	return m, nil
}

// menuColumns is the grid width a menu page is laid out with
func menuColumns(page *app.Page) int {
	switch page.ID() {
	case nav.PageSettingsMenu:
		return 3
	case nav.PageWelcome:
		return len(page.Menu())
	default:
		return 1
	}
}

func (m *Model) handleMenuKey(page *app.Page, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := page.Menu()
	if len(items) == 0 {
		return m, nil
	}
	cols := menuColumns(page)

	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, len(items))
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, len(items))
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-cols, len(items))
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(cols, len(items))
	case key.Matches(msg, m.keys.Enter):
		return m.dispatch(items[m.cursor].Command)
	}
	return m, nil
}

func (m *Model) handleFormKey(page *app.Page, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := page.Form()
	fields := form.Fields()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, len(fields))
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, len(fields))
	case key.Matches(msg, m.keys.Left):
		return m.dispatch(app.Command{Kind: app.CmdStep, Field: fields[m.cursor].Name, Value: -1})
	case key.Matches(msg, m.keys.Right):
		return m.dispatch(app.Command{Kind: app.CmdStep, Field: fields[m.cursor].Name, Value: 1})
	case key.Matches(msg, m.keys.Save):
		return m.dispatch(app.Command{Kind: app.CmdSave})
	}

	switch page.ID() {
	case nav.PageLED:
		switch {
		case key.Matches(msg, m.keys.Edit):
			return m, m.startInput(modeEditHex, m.state.LED().Color.Hex(), "#rrggbb")
		case key.Matches(msg, m.keys.Picker):
			m.mode = modePicker
			m.picker = pickerIndex(m.state.LED().Color.NearestNamed())
		}
	case nav.PageSchedule:
		switch {
		case key.Matches(msg, m.keys.Edit):
			return m, m.startInput(modeEditDate, m.state.Schedule().Start().Format(settings.DateLayout), settings.DateLayout)
		case key.Matches(msg, m.keys.ShiftEarly):
			return m.dispatch(app.Command{Kind: app.CmdShiftStart, Value: -1})
		case key.Matches(msg, m.keys.ShiftLater):
			return m.dispatch(app.Command{Kind: app.CmdShiftStart, Value: 1})
		}
	}
	return m, nil
}

func (m *Model) startInput(mode inputMode, value, placeholder string) tea.Cmd {
	m.mode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.stopInput()
		m.setMessage("Edit cancelled")
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		kind := app.CmdSetColor
		if m.mode == modeEditDate {
			kind = app.CmdSetStart
		}
		text := m.input.Value()
		m.stopInput()
		return m.dispatch(app.Command{Kind: kind, Text: text})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.stopInput()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		matches := matchPages(m.state.Navigator().Registry(), m.input.Value())
		m.stopInput()
		if len(matches) == 0 {
			m.setMessage("No matching page")
			return m, nil
		}
		return m.dispatch(app.Command{Kind: app.CmdNavigate, Target: matches[0].ID()})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopInput() {
	m.mode = modeNormal
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = modeNormal
		m.setMessage("Color unchanged")
	case key.Matches(msg, m.keys.Up, m.keys.Left):
		m.picker = (m.picker - 1 + len(settings.Palette)) % len(settings.Palette)
	case key.Matches(msg, m.keys.Down, m.keys.Right):
		m.picker = (m.picker + 1) % len(settings.Palette)
	case key.Matches(msg, m.keys.Enter):
		m.mode = modeNormal
		return m.dispatch(app.Command{Kind: app.CmdSetColor, Text: settings.Palette[m.picker].Hex})
	}
	return m, nil
}

func pickerIndex(c settings.NamedColor) int {
	for i, p := range settings.Palette {
		if p.Hex == c.Hex {
			return i
		}
	}
	return 0
}

// dispatch runs a command against the state and updates the status line
func (m *Model) dispatch(cmd app.Command) (tea.Model, tea.Cmd) {
	m.log.Debug("dispatch %s", cmd.Kind)

	res, err := m.state.Dispatch(m.ctx, cmd)
	if err != nil {
		m.setError(err)
	} else {
		msg := res.Message
		if errors.Is(res.Warning, settings.ErrOutOfRange) {
			msg += " (clamped to range)"
		}
		m.setMessage(msg)
	}

	if current := m.state.Navigator().CurrentID(); current != m.page {
		m.page = current
		m.cursor = 0
		m.mode = modeNormal
	}
	m.syncStyles()
	return m, nil
}

func (m *Model) moveCursor(delta, n int) {
	m.cursor = max(0, min(n-1, m.cursor+delta))
}

func (m *Model) setMessage(msg string) {
	m.status = msg
	m.failed = false
}

func (m *Model) setError(err error) {
	m.log.Debug("command failed: %v", err)
	m.status = err.Error()
	m.failed = true
}

// syncStyles rebuilds the styles after the state applied a theme
func (m *Model) syncStyles() {
	if m.stylesFor == m.state.Applied() {
		return
	}
	m.styles = NewStyles(m.state.Theme())
	m.stylesFor = m.state.Applied()
}

// reloadConfig re-reads the config file and applies a changed theme
func (m *Model) reloadConfig() {
	cfg, err := m.loader.LoadConfig(m.configPath)
	if err != nil {
		m.setError(err)
		return
	}
	if cfg.UI.Theme != m.state.Theme().Name {
		if err := m.state.SetTheme(cfg.UI.Theme); err != nil {
			m.setError(err)
			return
		}
		m.syncStyles()
	}
	m.log.Info("config reloaded from %s", m.configPath)
	m.setMessage("Config reloaded")
}

// Status returns the status line text and whether it reports an error
func (m *Model) Status() (string, bool) { return m.status, m.failed }

// Cursor returns the selected menu item or form field
func (m *Model) Cursor() int { return m.cursor }

// Run starts the bubbletea program and blocks until it exits
func Run(ctx context.Context, m *Model, altScreen bool) error {
	m.ctx = ctx
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
