package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runner/internal/config"
	"runner/internal/plan"
	"runner/internal/service"
)

type formField int

const (
	fieldDistance formField = iota
	fieldCurrentPace
	fieldTargetPace
	fieldDays
	fieldCount
)

// FormModel collects the race distance, paces and weekly training days
type FormModel struct {
	svc         *service.PlanService
	distances   []plan.RaceDistance
	distanceIdx int
	current     textinput.Model
	target      textinput.Model
	days        int
	focus       formField
	generating  bool
	err         error
}

// NewFormModel creates a form pre-filled from the configured defaults
func NewFormModel(svc *service.PlanService, defaults config.DefaultsConfig) FormModel {
	m := FormModel{
		svc:       svc,
		distances: plan.Distances(),
		current:   newPaceInput("6:00"),
		target:    newPaceInput("5:30"),
		days:      plan.ClampTrainingDays(defaults.TrainingDays),
	}

	if d, err := plan.ParseDistance(defaults.Distance); err == nil {
		for i, candidate := range m.distances {
			if candidate == d {
				m.distanceIdx = i
			}
		}
	}
	m.current.SetValue(defaults.CurrentPace)
	m.target.SetValue(defaults.TargetPace)

	return m
}

func newPaceInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 5
	ti.Width = 6
	ti.Prompt = ""
	return ti
}

// Init initializes the form
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Editing reports whether a pace field has focus, so letter and digit keys belong to the form
func (m FormModel) Editing() bool {
	return m.focus == fieldCurrentPace || m.focus == fieldTargetPace
}

// Request builds a service request from the current field values
func (m FormModel) Request() service.Request {
	return service.Request{
		Distance:     string(m.distances[m.distanceIdx]),
		CurrentPace:  m.current.Value(),
		TargetPace:   m.target.Value(),
		TrainingDays: m.days,
	}
}

// failed records a rejected submission
func (m FormModel) failed(err error) FormModel {
	m.generating = false
	m.err = err
	return m
}

// done clears submission state after a plan opens
func (m FormModel) done() FormModel {
	m.generating = false
	m.err = nil
	return m
}

// Update handles messages
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "tab", "down":
		return m.setFocus((m.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case "left", "h":
		if !m.Editing() {
			m.step(-1)
			return m, nil
		}
	case "right", "l":
		if !m.Editing() {
			m.step(1)
			return m, nil
		}
	case "enter":
		if m.generating {
			return m, nil
		}
		m.generating = true
		m.err = nil
		return m, generatePlan(m.svc, m.Request())
	}

	if !m.Editing() {
		return m, nil
	}
	// Pace fields only take digits and a colon
	if keyMsg.Type == tea.KeyRunes && !isPaceInput(keyMsg.Runes) {
		return m, nil
	}
	return m.updateInputs(msg)
}

func (m FormModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.current, cmd = m.current.Update(msg)
	cmds = append(cmds, cmd)
	m.target, cmd = m.target.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m FormModel) setFocus(f formField) (tea.Model, tea.Cmd) {
	m.focus = f
	m.current.Blur()
	m.target.Blur()

	switch f {
	case fieldCurrentPace:
		return m, m.current.Focus()
	case fieldTargetPace:
		return m, m.target.Focus()
	}
	return m, nil
}

// step moves the focused selector by delta, wrapping for distance and clamping for days
func (m *FormModel) step(delta int) {
	switch m.focus {
	case fieldDistance:
		n := len(m.distances)
		m.distanceIdx = (m.distanceIdx + delta + n) % n
	case fieldDays:
		m.days = plan.ClampTrainingDays(m.days + delta)
	}
}

func isPaceInput(runes []rune) bool {
	for _, r := range runes {
		if (r < '0' || r > '9') && r != ':' {
			return false
		}
	}
	return true
}

// View renders the form
func (m FormModel) View() string {
	title := cardTitleStyle.Render("Create Your Training Plan")

	distance := m.distances[m.distanceIdx]
	info, _ := distance.Info()

	rows := []string{
		m.renderField(fieldDistance, "Race distance",
			"‹ "+workoutStyle.Render(distanceLabel(info))+" ›"),
		m.renderField(fieldCurrentPace, "Current pace", m.current.View()+mutedStyle.Render(" /km")),
		m.renderField(fieldTargetPace, "Target pace", m.target.View()+mutedStyle.Render(" /km")),
		m.renderField(fieldDays, "Training days", m.renderDayOptions()),
		"",
		mutedStyle.Render("We'll tailor quality vs. easy to match your availability."),
		mutedStyle.Render("We prioritize your long run and tempo day; intervals/extra easy runs"),
		mutedStyle.Render("are removed first when you pick fewer days."),
	}

	if m.generating {
		rows = append(rows, "", mutedStyle.Render("Generating plan..."))
	} else if m.err != nil {
		rows = append(rows, "", errorStyle.Render(formError(m.err)))
	}

	card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinVertical(lipgloss.Left, rows...)))
	help := statusStyle.Render("tab/↑↓: move between fields  ←/→: change selection  enter: generate plan")

	return lipgloss.JoinVertical(lipgloss.Left, card, help)
}

func (m FormModel) renderField(f formField, label, value string) string {
	labelStyle := fieldLabelStyle
	marker := "  "
	if m.focus == f {
		labelStyle = fieldFocusedLabelStyle
		marker = helpKeyStyle.Render("▸ ")
	}
	return marker + labelStyle.Render(label) + value
}

func (m FormModel) renderDayOptions() string {
	var options []string
	for d := plan.MinTrainingDays; d <= plan.MaxTrainingDays; d++ {
		label := strconv.Itoa(d) + "x"
		if d == m.days {
			options = append(options, optionSelectedStyle.Render(label))
		} else {
			options = append(options, optionStyle.Render(label))
		}
	}
	return strings.Join(options, " ")
}

// distanceLabel is the selector text: "5K 5 km / 3.1 mi, 8 week plan"
func distanceLabel(info plan.DistanceInfo) string {
	return fmt.Sprintf("%s %s / %s mi, %d week plan",
		info.Name, plan.FormatKm(info.Km), strconv.FormatFloat(info.Miles, 'f', -1, 64), info.Weeks)
}

func formError(err error) string {
	switch {
	case errors.Is(err, service.ErrZeroPace):
		return "Enter both paces to generate a plan."
	case errors.Is(err, plan.ErrInvalidPace):
		return "Paces look like 6:00 (minutes:seconds per km)."
	default:
		return "Error: " + err.Error()
	}
}
