// Package detail lists the activities recorded on one day.
package detail

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/heatcal/internal/models"
)

type DeleteActivityMsg struct {
	ID string
}

type RestoreActivityMsg struct {
	ID string
}

type Item struct {
	Entry models.ActivityEntry
}

func (i Item) Title() string {
	if i.Entry.IsDeleted() {
		return "[DELETED] " + i.Entry.Description
	}
	return i.Entry.Description
}

func (i Item) Description() string {
	if i.Entry.IsDeleted() {
		return "can restore with 'r'"
	}
	if i.Entry.CreatedAt.IsZero() {
		return "from activity file"
	}
	return "added " + i.Entry.CreatedAt.Local().Format("15:04")
}

func (i Item) FilterValue() string { return i.Entry.Description }

type KeyMap struct {
	Delete  key.Binding
	Restore key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
	}
}

type Model struct {
	list     list.Model
	keys     KeyMap
	readOnly bool
}

// New builds the list. A read-only list has no persisted entries to delete.
func New(width, height int, readOnly bool) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	keys := DefaultKeyMap()
	if !readOnly {
		l.AdditionalShortHelpKeys = func() []key.Binding {
			return []key.Binding{keys.Delete, keys.Restore}
		}
	}

	return Model{list: l, keys: keys, readOnly: readOnly}
}

// SetDay replaces the list contents with the entries of day.
func (m *Model) SetDay(title string, entries []models.ActivityEntry) {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("%s · %d", title, countLive(entries))
	m.list.ResetSelected()
}

func countLive(entries []models.ActivityEntry) int {
	n := 0
	for _, e := range entries {
		if !e.IsDeleted() {
			n++
		}
	}
	return n
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Len() int { return len(m.list.Items()) }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.readOnly {
		switch {
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok && !i.Entry.IsDeleted() && i.Entry.ID != "" {
				return m, func() tea.Msg { return DeleteActivityMsg{ID: i.Entry.ID} }
			}
		case key.Matches(msg, m.keys.Restore):
			if i, ok := m.list.SelectedItem().(Item); ok && i.Entry.IsDeleted() {
				return m, func() tea.Msg { return RestoreActivityMsg{ID: i.Entry.ID} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return m.list.Title + "\n\n  No activity recorded."
	}
	return m.list.View()
}
