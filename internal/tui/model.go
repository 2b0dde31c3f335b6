package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/heatcal/internal/activity"
	"github.com/julianstephens/heatcal/internal/calendar"
	"github.com/julianstephens/heatcal/internal/constants"
	"github.com/julianstephens/heatcal/internal/grid"
	"github.com/julianstephens/heatcal/internal/logger"
	"github.com/julianstephens/heatcal/internal/models"
	"github.com/julianstephens/heatcal/internal/navigation"
	"github.com/julianstephens/heatcal/internal/storage"
	"github.com/julianstephens/heatcal/internal/tui/components/detail"
	"github.com/julianstephens/heatcal/internal/tui/components/monthview"
	"github.com/julianstephens/heatcal/internal/utils"
)

type ActivityFormModel struct {
	Description string
}

// Config is everything NewModel needs. With a nil Store the model shows Data
// and keeps added activities in memory only.
type Config struct {
	Store    storage.Provider
	Data     activity.Data
	Settings models.Settings
	Today    calendar.Date
	// Anchor is the first displayed day; zero means Today.
	Anchor         calendar.Date
	DarkBackground bool
	// Now stamps new entries; nil means time.Now.
	Now func() time.Time
}

type Model struct {
	store          storage.Provider
	nav            *navigation.Controller
	data           activity.Data
	loaded         bool
	loadedFrom     calendar.Date
	loadedTo       calendar.Date
	settings       models.Settings
	darkBackground bool
	theme          Theme
	styles         Styles
	today          calendar.Date
	now            func() time.Time
	state          constants.SessionState
	previousState  constants.SessionState
	keys           KeyMap
	help           help.Model
	month          monthview.Model
	detail         detail.Model
	form           *huh.Form
	activityForm   *ActivityFormModel
	status         string
	errMsg         string
	quitting       bool
	width          int
	height         int
}

func NewModel(cfg Config) (Model, error) {
	settings := cfg.Settings
	models.ApplyDefaultSettings(&settings)

	opts, err := utils.OptionsFromSettings(settings)
	if err != nil {
		return Model{}, err
	}

	anchor := cfg.Anchor
	if anchor == 0 {
		anchor = cfg.Today
	}

	data := cfg.Data
	if data == nil {
		data = activity.Data{}
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	theme := ResolveTheme(settings.Theme, cfg.DarkBackground)
	styles := NewStyles(theme)

	m := Model{
		store:          cfg.Store,
		nav:            navigation.New(anchor, opts),
		data:           data,
		settings:       settings,
		darkBackground: cfg.DarkBackground,
		theme:          theme,
		styles:         styles,
		today:          cfg.Today,
		now:            now,
		state:          constants.StateCalendar,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		month:          monthview.New(styles.Month),
		detail:         detail.New(0, 0, cfg.Store == nil),
	}
	m.refresh()
	return m, nil
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateDetail, constants.StateAddActivity:
		return []key.Binding{m.keys.Back, m.keys.Quit}
	}
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Grid returns the grid currently on screen.
func (m Model) Grid() grid.Grid {
	return m.month.Grid()
}

// Cursor returns the selected day.
func (m Model) Cursor() calendar.Date {
	return m.nav.Anchor()
}

// refresh rebuilds the grid for the current anchor and loads any activity
// the new window needs from the store.
func (m *Model) refresh() {
	g := m.nav.Grid(m.today)
	first := g.GridStart
	last := g.Cells[len(g.Cells)-1].Date

	if m.store != nil && (!m.loaded || first < m.loadedFrom || last > m.loadedTo) {
		entries, err := m.store.GetActivitiesInRange(first.Key(), last.Key(), false)
		if err != nil {
			logger.Error("Failed to load activities", "from", first.Key(), "to", last.Key(), "error", err)
			m.errMsg = "failed to load activities: " + err.Error()
		} else {
			m.data = activity.FromEntries(entries)
			m.loaded = true
			m.loadedFrom, m.loadedTo = first, last
		}
	}

	m.month.SetGrid(g)
	m.month.SetData(m.data)
	m.month.SetCursor(m.nav.Anchor())
}

// reload drops the loaded window so the next refresh queries the store.
func (m *Model) reload() {
	m.loaded = false
	m.refresh()
}

func (m *Model) applyTheme(name string) {
	m.settings.Theme = name
	m.theme = ResolveTheme(name, m.darkBackground)
	m.styles = NewStyles(m.theme)
	m.month.SetStyles(m.styles.Month)
}

// saveSettings persists the current display settings when a store is open.
func (m *Model) saveSettings() {
	m.settings = utils.ApplyOptions(m.settings, m.nav.Options())
	if m.store == nil {
		return
	}
	if err := m.store.SaveSettings(m.settings); err != nil {
		logger.Error("Failed to save settings", "error", err)
		m.errMsg = "failed to save settings: " + err.Error()
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	w := min(width-8, 60)
	h := max(height-12, 5)
	m.detail.SetSize(max(w, 20), h)
}
