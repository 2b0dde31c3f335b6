package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/heatcal/internal/calendar"
	"github.com/julianstephens/heatcal/internal/constants"
	"github.com/julianstephens/heatcal/internal/logger"
	"github.com/julianstephens/heatcal/internal/models"
	"github.com/julianstephens/heatcal/internal/tui/components/detail"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case constants.StateAddActivity:
		return m.updateAddActivity(msg)
	case constants.StateDetail:
		return m.updateDetail(msg)
	case constants.StateHelp:
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Back):
				m.help.ShowAll = false
				m.state = m.previousState
			}
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m.updateCalendar(keyMsg)
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	m.status = ""
	cursor := m.nav.Anchor()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.previousState = m.state
		m.state = constants.StateHelp
		m.help.ShowAll = true
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.nav.GoTo(cursor.AddDays(-1))
	case key.Matches(msg, m.keys.Right):
		m.nav.GoTo(cursor.AddDays(1))
	case key.Matches(msg, m.keys.Up):
		m.nav.GoTo(cursor.AddDays(-7))
	case key.Matches(msg, m.keys.Down):
		m.nav.GoTo(cursor.AddDays(7))
	case key.Matches(msg, m.keys.PrevMonth):
		m.nav.NavigateMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.nav.NavigateMonth(1)
	case key.Matches(msg, m.keys.PrevYear):
		m.nav.NavigateYear(-1)
	case key.Matches(msg, m.keys.NextYear):
		m.nav.NavigateYear(1)
	case key.Matches(msg, m.keys.Today):
		m.nav.GoTo(m.today)
	case key.Matches(msg, m.keys.System):
		sys := m.nav.ToggleSystem()
		m.saveSettings()
		m.status = "calendar: " + sys.Name()
	case key.Matches(msg, m.keys.Digits):
		digits := calendar.DigitsPersian
		if m.nav.Options().Digits == calendar.DigitsPersian {
			digits = calendar.DigitsLatin
		}
		m.nav.SetDigits(digits)
		m.saveSettings()
		m.status = "digits: " + string(digits)
	case key.Matches(msg, m.keys.Theme):
		m.applyTheme(NextThemeName(m.settings.Theme))
		m.saveSettings()
		m.status = "theme: " + m.settings.Theme
	case key.Matches(msg, m.keys.Enter):
		m.openDetail()
		m.state = constants.StateDetail
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.activityForm = &ActivityFormModel{}
		m.form = m.newActivityForm()
		m.state = constants.StateAddActivity
		return m, m.form.Init()
	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

func (m Model) newActivityForm() *huh.Form {
	day := m.nav.Anchor()
	title := fmt.Sprintf("Add activity on %s (%s)", calendar.Title(day, m.nav.Options()), day.Key())
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&m.activityForm.Description).
				Validate(func(s string) error {
					entry := models.ActivityEntry{Day: day.Key(), Description: s}
					return entry.Validate()
				}),
		),
	).WithShowHelp(true)
}

func (m Model) updateAddActivity(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateCalendar
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.addActivity(strings.TrimSpace(m.activityForm.Description)); err != nil {
			m.errMsg = err.Error()
		} else {
			m.status = "activity added"
		}
		m.state = constants.StateCalendar
		m.reload()
		return m, nil
	case huh.StateAborted:
		m.state = constants.StateCalendar
		return m, nil
	}
	return m, cmd
}

func (m *Model) addActivity(description string) error {
	day := m.nav.Anchor().Key()
	if m.store == nil {
		m.data.Add(day, description)
		return nil
	}

	entry := models.ActivityEntry{
		ID:          uuid.New().String(),
		Day:         day,
		Description: description,
		CreatedAt:   m.now(),
	}
	if err := m.store.AddActivity(entry); err != nil {
		logger.Error("Failed to add activity", "day", day, "error", err)
		return err
	}
	logger.Debug("Added activity", "id", entry.ID, "day", day)
	return nil
}

func (m *Model) openDetail() {
	day := m.nav.Anchor()
	title := calendar.DayNumber(day, m.nav.Options()) + " " + calendar.Title(day, m.nav.Options())

	if m.store == nil {
		descs := m.data.Lookup(day.Key()).Descriptions
		entries := make([]models.ActivityEntry, len(descs))
		for i, d := range descs {
			entries[i] = models.ActivityEntry{Day: day.Key(), Description: d}
		}
		m.detail.SetDay(title, entries)
		return
	}

	entries, err := m.store.GetActivitiesInRange(day.Key(), day.Key(), true)
	if err != nil {
		logger.Error("Failed to load day", "day", day.Key(), "error", err)
		m.errMsg = "failed to load activities: " + err.Error()
	}
	m.detail.SetDay(title, entries)
}

func (m Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Enter):
			m.state = constants.StateCalendar
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
	case detail.DeleteActivityMsg:
		if err := m.store.DeleteActivity(msg.ID); err != nil {
			m.errMsg = "failed to delete activity: " + err.Error()
		}
		m.openDetail()
		m.reload()
		return m, nil
	case detail.RestoreActivityMsg:
		if err := m.store.RestoreActivity(msg.ID); err != nil {
			m.errMsg = "failed to restore activity: " + err.Error()
		}
		m.openDetail()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}
