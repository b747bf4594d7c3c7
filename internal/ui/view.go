package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/yildizm/NanoLab/internal/app"
	"github.com/yildizm/NanoLab/internal/formatter"
	"github.com/yildizm/NanoLab/internal/nav"
	"github.com/yildizm/NanoLab/internal/settings"
	"github.com/yildizm/NanoLab/internal/ui/components"
)

const sliderWidth = 24

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	page := m.state.CurrentPage()
	title := m.styles.Title.Render(fmt.Sprintf("%s %s", m.glyphs.Get(string(page.ID())), page.Title()))

	sections := []string{m.renderToolbar(), title, page.Render(pageView{m: m})}
	switch m.mode {
	case modeEditHex, modeEditDate:
		sections = append(sections, m.styles.Panel.Render(m.input.View()+"\n"+m.styles.Muted.Render("enter apply • esc cancel")))
	case modePicker:
		sections = append(sections, m.renderPicker())
	case modeJump:
		sections = append(sections, m.renderJump())
	}
	if line := m.renderStatus(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, m.styles.Muted.Render(m.help.View(m.keys)))

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 && m.height > 0 {
		return m.styles.App.Width(m.width).Height(m.height).Render(view)
	}
	return m.styles.App.Render(view)
}

func (m *Model) renderToolbar() string {
	navigator := m.state.Navigator()
	tool := func(enabled bool, text string) string {
		if enabled {
			return m.styles.Tool.Render(text)
		}
		return m.styles.ToolOff.Render(text)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		tool(navigator.CanGoBack(), m.glyphs.Get("back")+" Back"),
		tool(navigator.CanGoForward(), "Forward "+m.glyphs.Get("forward")),
		tool(true, m.glyphs.Get("theme")+" Theme: "+m.state.Theme().Name),
	)
	return m.styles.Toolbar.Render(buttons)
}

// pageView implements app.PageRenderer over the model
type pageView struct {
	m *Model
}

func (v pageView) RenderMenu(p *app.Page) string { return v.m.renderMenu(p) }

func (v pageView) RenderForm(p *app.Page) string { return v.m.renderForm(p) }

func (v pageView) RenderData(*app.Page) string {
	run := v.m.styles.Button.Render("Run Experiment")
	return lipgloss.JoinVertical(lipgloss.Left, run, "", renderExperiment(v.m.state.Experiment(), v.m.width-4, v.m.styles))
}

func (v pageView) RenderInfo(p *app.Page) string {
	return v.m.styles.Label.Render(v.m.wrap(p.Body()))
}

func (v pageView) RenderStorage(*app.Page) string { return v.m.renderStorage() }

func (v pageView) RenderComparison(*app.Page) string { return v.m.renderComparison() }

func (m *Model) renderMenu(page *app.Page) string {
	items := page.Menu()
	cols := max(menuColumns(page), 1)

	var rows []string
	var row []string
	for i, item := range items {
		style := m.styles.Button
		if i == m.cursor {
			style = m.styles.Selected
		}
		row = append(row, style.Render(item.Label))
		if len(row) == cols || i == len(items)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderForm(page *app.Page) string {
	form := page.Form()
	var lines []string

	for i, field := range form.Fields() {
		slider := components.NewSlider(sliderWidth)
		slider.SetRange(field.Min, field.Max, field.Value)
		slider.Label = field.Label
		slider.Unit = field.Unit
		slider.Filled = m.styles.BarFilled
		slider.Empty = m.styles.BarEmpty
		slider.Caption = m.styles.Muted

		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		lines = append(lines, prefix+slider.Render())
	}

	switch page.ID() {
	case nav.PageLED:
		lines = append(lines, "", m.renderSwatch(m.state.LED().Color))
	case nav.PageSchedule:
		sched := m.state.Schedule()
		lines = append(lines, "", m.styles.Label.Render(fmt.Sprintf("  Start %s   End %s",
			sched.Start().Format(settings.DateLayout), sched.End().Format(settings.DateLayout))))
	}

	lines = append(lines, m.styles.Summary.Render(m.wrap(form.Summary())))
	return strings.Join(lines, "\n")
}

func (m *Model) renderSwatch(c *settings.Color) string {
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(c.ContrastText())).
		Padding(0, 1).
		Render(c.Hex())
	r, g, b := c.RGB()
	detail := fmt.Sprintf("(%s, rgb %d %d %d)", c.NearestNamed().Name, r, g, b)
	return fmt.Sprintf("  %-18s %s %s", "Color", swatch, m.styles.Muted.Render(detail))
}

func (m *Model) renderPicker() string {
	lines := []string{"Choose a color"}
	for i, c := range settings.Palette {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex)).Render("   ")
		prefix := "  "
		if i == m.picker {
			prefix = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%s %-10s %s", prefix, swatch, c.Name, c.Hex))
	}
	lines = append(lines, m.styles.Muted.Render("enter select • esc dismiss"))
	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderJump() string {
	lines := []string{m.input.View()}
	for i, p := range matchPages(m.state.Navigator().Registry(), m.input.Value()) {
		prefix := "  "
		if i == 0 {
			prefix = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", prefix, m.glyphs.Get(string(p.ID())), p.Title()))
	}
	lines = append(lines, m.styles.Muted.Render("enter go • esc cancel"))
	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}

// wrap word-wraps text to the window width once it is known
func (m *Model) wrap(text string) string {
	if m.width <= 8 {
		return text
	}
	return wordwrap.String(text, m.width-8)
}

func (m *Model) renderStorage() string {
	records := m.state.Saved()
	if len(records) == 0 {
		return m.styles.Muted.Render("No settings saved yet.")
	}
	out, err := formatter.NewTerminal(false).Format(records...)
	if err != nil {
		return m.styles.Error.Render(err.Error())
	}
	return m.styles.Label.Render(strings.TrimRight(string(out), "\n"))
}

func (m *Model) renderComparison() string {
	rows := m.state.Comparison()
	lines := []string{m.styles.Muted.Render(fmt.Sprintf("  %-10s %-12s %-14s %-14s", "FORM", "SETTING", "CURRENT", "SAVED"))}
	for _, r := range rows {
		mark := "  "
		style := m.styles.Label
		if r.Changed {
			mark = "* "
			style = style.Bold(true)
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%-10s %-12s %-14s %-14s", mark, r.Form, r.Key, r.Current, r.Saved)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.failed {
		return m.styles.Error.Render(m.glyphs.Get("error") + " " + m.status)
	}
	return m.styles.Status.Render(m.status)
}
