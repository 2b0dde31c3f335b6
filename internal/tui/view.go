package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/heatcal/internal/constants"
	"github.com/julianstephens/heatcal/internal/tui/components/monthview"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateDetail:
		content = m.viewModal(m.detail.View())
	case constants.StateAddActivity:
		content = m.viewModal(m.form.View())
	default:
		content = m.viewCalendar()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewCalendar() string {
	cal := lipgloss.JoinVertical(
		lipgloss.Left,
		m.month.View(),
		"",
		monthview.Legend(m.styles.Month),
	)
	return m.styles.Doc.Render(cal)
}

func (m Model) viewModal(body string) string {
	box := m.styles.Modal.Render(body)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

func (m Model) viewStatus() string {
	if m.errMsg != "" {
		return m.styles.Error.Render("  " + m.errMsg)
	}

	opts := m.nav.Options()
	line := fmt.Sprintf("  %s · theme %s", opts.System.Name(), m.settings.Theme)
	if m.settings.Theme == constants.ThemeAuto {
		line += " (" + m.theme.Name + ")"
	}
	if m.store == nil {
		line += " · read-only"
	}
	if m.status != "" {
		return m.styles.Subtitle.Render(line) + "  " + m.styles.Status.Render(m.status)
	}
	return m.styles.Subtitle.Render(line)
}
