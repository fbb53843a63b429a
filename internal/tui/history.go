package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runner/internal/service"
)

// HistoryModel lists previously generated plans
type HistoryModel struct {
	svc     *service.PlanService
	entries []service.HistoryEntry
	cursor  int
	loading bool
	err     error
	status  string
}

// NewHistoryModel creates a new history model
func NewHistoryModel(svc *service.PlanService) HistoryModel {
	return HistoryModel{
		svc:     svc,
		loading: true,
	}
}

// Init loads the saved plans
func (m HistoryModel) Init() tea.Cmd {
	return loadHistory(m.svc)
}

// selected returns the entry under the cursor
func (m HistoryModel) selected() (service.HistoryEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return service.HistoryEntry{}, false
	}
	return m.entries[m.cursor], true
}

// Update handles messages
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.entries = msg.entries
		if m.cursor >= len(m.entries) {
			m.cursor = max(len(m.entries)-1, 0)
		}

	case planDeletedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render("Delete failed: " + msg.err.Error())
			return m, nil
		}
		m.status = successStyle.Render("Plan deleted")
		return m, loadHistory(m.svc)

	case planLoadedMsg:
		// Successful loads are handled by the app
		if msg.err != nil {
			m.status = errorStyle.Render("Could not open plan: " + msg.err.Error())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			if e, ok := m.selected(); ok {
				return m, openSavedPlan(m.svc, e.ID)
			}
		case "d":
			if e, ok := m.selected(); ok {
				return m, deleteSavedPlan(m.svc, e.ID)
			}
		case "r":
			m.loading = true
			return m, loadHistory(m.svc)
		}
	}
	return m, nil
}

// View renders the history list
func (m HistoryModel) View() string {
	if m.loading {
		return "\n  Loading saved plans..."
	}

	if errors.Is(m.err, service.ErrHistoryDisabled) {
		return mutedStyle.Render("\n  Plan history is disabled. Set history.enabled in ~/.runner/config.json to keep generated plans.")
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	title := cardTitleStyle.Render("Saved Plans")
	if len(m.entries) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No saved plans yet. Press '1' to create one."))
	}

	rows := []string{title}
	for i, e := range m.entries {
		text := fmt.Sprintf("%-52s  %s", e.Title(), e.Age)
		if i == m.cursor {
			rows = append(rows, tableSelectedStyle.Render(text))
		} else {
			rows = append(rows, tableRowStyle.Render(text))
		}
	}

	footer := statusStyle.Render("j/k: move  enter: open  d: delete  r: refresh")
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)), footer)
}
