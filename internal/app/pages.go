package app

import (
	"github.com/yildizm/NanoLab/internal/logger"
	"github.com/yildizm/NanoLab/internal/nav"
	"github.com/yildizm/NanoLab/internal/settings"
)

// PageKind selects how a page is rendered
type PageKind int

const (
	KindMenu PageKind = iota
	KindForm
	KindData
	KindInfo
	KindStorage
	KindComparison
)

// Page is one screen of the control panel
type Page struct {
	id    nav.PageID
	title string
	kind  PageKind
	form  settings.Settings
	menu  []MenuItem
	body  string

	visits int
	log    *logger.Logger
}

// PageRenderer draws each page variant; Render picks the method matching
// the page kind
type PageRenderer interface {
	RenderMenu(p *Page) string
	RenderForm(p *Page) string
	RenderData(p *Page) string
	RenderInfo(p *Page) string
	RenderStorage(p *Page) string
	RenderComparison(p *Page) string
}

// MenuItem is a button on a menu page
type MenuItem struct {
	Label   string
	Command Command
}

// ID implements nav.Page
func (p *Page) ID() nav.PageID { return p.id }

// Title implements nav.Page
func (p *Page) Title() string { return p.title }

// Kind returns the render variant
func (p *Page) Kind() PageKind { return p.kind }

// Form returns the page's settings form, nil for non-form pages
func (p *Page) Form() settings.Settings { return p.form }

// Menu returns the page's buttons
func (p *Page) Menu() []MenuItem { return p.menu }

// Body returns static page text
func (p *Page) Body() string { return p.body }

// Visits counts how often the page was entered
func (p *Page) Visits() int { return p.visits }

// Render draws the page with r
func (p *Page) Render(r PageRenderer) string {
	switch p.kind {
	case KindMenu:
		return r.RenderMenu(p)
	case KindForm:
		return r.RenderForm(p)
	case KindData:
		return r.RenderData(p)
	case KindInfo:
		return r.RenderInfo(p)
	case KindStorage:
		return r.RenderStorage(p)
	case KindComparison:
		return r.RenderComparison(p)
	default:
		return ""
	}
}

// OnEnter implements nav.Page
func (p *Page) OnEnter() {
	p.visits++
	p.log.Debug("enter %s", p.id)
}

// OnLeave implements nav.Page
func (p *Page) OnLeave() {
	p.log.Debug("leave %s", p.id)
}

func navigate(id nav.PageID) Command {
	return Command{Kind: CmdNavigate, Target: id}
}

func (s *State) buildPages() []nav.Page {
	log := s.log.WithComponent("page")
	page := func(id nav.PageID, title string, kind PageKind) *Page {
		return &Page{id: id, title: title, kind: kind, log: log}
	}

	welcome := page(nav.PageWelcome, "Welcome to NanoLab", KindMenu)
	welcome.menu = []MenuItem{
		{Label: "Review Data", Command: navigate(nav.PageData)},
		{Label: "Adjust NanoLab Settings", Command: navigate(nav.PageSettingsMenu)},
		{Label: "About NanoLab", Command: navigate(nav.PageAbout)},
	}

	menu := page(nav.PageSettingsMenu, "Adjust NanoLab Settings", KindMenu)
	menu.menu = []MenuItem{
		{Label: "Data Results", Command: navigate(nav.PageData)},
		{Label: "Water Pump Settings", Command: navigate(nav.PageWater)},
		{Label: "LED Settings", Command: navigate(nav.PageLED)},
		{Label: "Fan Settings", Command: navigate(nav.PageFan)},
		{Label: "Camera Settings", Command: navigate(nav.PageCamera)},
		{Label: "Atmospheric Sensor", Command: navigate(nav.PageSensor)},
		{Label: "Schedule", Command: navigate(nav.PageSchedule)},
		{Label: "Compare Settings", Command: navigate(nav.PageSettingsComparison)},
		{Label: "Saved Settings", Command: navigate(nav.PageStorage)},
		{Label: "Send to your NanoLab", Command: Command{Kind: CmdSendAll}},
	}

	data := page(nav.PageData, "Data Results", KindData)

	formPage := func(id nav.PageID, form settings.Settings) *Page {
		p := page(id, form.Title(), KindForm)
		p.form = form
		return p
	}

	about := page(nav.PageAbout, "About NanoLab", KindInfo)
	about.body = "Auxora Nanolabs control panel.\n" +
		"Configure the LED, water pump, fan, camera and atmospheric sensor,\n" +
		"then send the settings to your NanoLab."

	storage := page(nav.PageStorage, "Saved Settings", KindStorage)
	comparison := page(nav.PageSettingsComparison, "Settings Comparison", KindComparison)

	return []nav.Page{
		welcome,
		menu,
		data,
		formPage(nav.PageWater, s.forms[nav.PageWater]),
		formPage(nav.PageLED, s.forms[nav.PageLED]),
		formPage(nav.PageFan, s.forms[nav.PageFan]),
		formPage(nav.PageCamera, s.forms[nav.PageCamera]),
		formPage(nav.PageSensor, s.forms[nav.PageSensor]),
		about,
		storage,
		formPage(nav.PageSchedule, s.forms[nav.PageSchedule]),
		comparison,
	}
}
