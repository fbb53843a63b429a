package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"runner/internal/plan"
	"runner/internal/service"
)

// PlanModel shows a generated plan as collapsible week cards
type PlanModel struct {
	svc       *service.PlanService
	plan      *plan.TrainingPlan
	units     Units
	expanded  map[int]bool // keyed by week number
	cursor    int          // index into plan.Weeks
	offsets   []int        // first content line of each week card
	exportDir string
	viewport  viewport.Model
	status    string
	width     int
	height    int
	ready     bool
}

// NewPlanModel creates a plan view with week 1 expanded
func NewPlanModel(svc *service.PlanService, p *plan.TrainingPlan, units Units, width, height int) PlanModel {
	m := PlanModel{
		svc:       svc,
		plan:      p,
		units:     units,
		expanded:  map[int]bool{1: true},
		exportDir: ".",
		width:     width,
		height:    height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, max(height-2, 1)) // Reserve space for footer
		m.ready = true
		m.refresh()
	}

	return m
}

// Init initializes the plan view
func (m PlanModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-2, 1))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-2, 1)
		}
		m.refresh()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = errorStyle.Render("Export failed: " + msg.err.Error())
		} else {
			m.status = successStyle.Render("Exported to " + msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refresh()
				m.scrollToCursor()
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.plan.Weeks)-1 {
				m.cursor++
				m.refresh()
				m.scrollToCursor()
			}
			return m, nil
		case "enter", " ":
			week := m.plan.Weeks[m.cursor].Week
			m.expanded[week] = !m.expanded[week]
			m.refresh()
			return m, nil
		case "e":
			for _, w := range m.plan.Weeks {
				m.expanded[w.Week] = true
			}
			m.refresh()
			return m, nil
		case "c":
			clear(m.expanded)
			m.refresh()
			return m, nil
		case "x":
			path := filepath.Join(m.exportDir, exportFilename(m.plan))
			m.status = mutedStyle.Render("Exporting...")
			return m, exportPlan(m.svc, m.plan, path)
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-renders the content
func (m *PlanModel) refresh() {
	if !m.ready {
		return
	}
	content, offsets := m.renderContent()
	m.offsets = offsets
	m.viewport.SetContent(content)
}

// scrollToCursor scrolls the selected week into view
func (m *PlanModel) scrollToCursor() {
	if !m.ready {
		return
	}
	top := m.offsets[m.cursor]
	bottom := top + lipgloss.Height(m.renderWeek(m.cursor)) - 1
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(min(top, bottom-m.viewport.Height+1))
	}
}

// View renders the plan view
func (m PlanModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k: select week  enter: expand/collapse  e/c: expand/collapse all  x: export  n: new plan")
	if m.status != "" {
		footer = statusStyle.Render("  " + m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m PlanModel) renderContent() (string, []int) {
	sections := []string{
		m.renderHeader(),
		m.renderChart(),
		titleStyle.Render("Weekly Schedule"),
	}

	line := 0
	for _, s := range sections {
		line += lipgloss.Height(s)
	}

	offsets := make([]int, len(m.plan.Weeks))
	for i := range m.plan.Weeks {
		card := m.renderWeek(i)
		offsets[i] = line
		line += lipgloss.Height(card)
		sections = append(sections, card)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...), offsets
}

func (m PlanModel) renderHeader() string {
	info := m.plan.Info()
	title := cardTitleStyle.Render(fmt.Sprintf("%s Training Plan", info.Name))

	wrap := max(m.width-8, 40)
	summary := lipgloss.NewStyle().Width(wrap).Render(m.plan.Summary)

	metrics := lipgloss.JoinVertical(lipgloss.Left,
		RenderMetric("Current Pace", plan.FormatPace(m.plan.CurrentPace)),
		RenderMetric("Target Pace", plan.FormatPace(m.plan.TargetPace)),
		RenderMetric("Duration", fmt.Sprintf("%d weeks", len(m.plan.Weeks))),
		RenderMetric("Training Days", fmt.Sprintf("%d days/week", m.plan.TrainingDays)),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, summary, "", metrics))
}

func (m PlanModel) renderChart() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Weekly Mileage (%s)", m.units.DistanceLabel()))

	data := m.units.ConvertMileage(m.plan.WeeklyMileage())
	if len(data) < 2 {
		return ""
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(min(60, max(m.width-16, 20))),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("weeks 1-%d", len(data))),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m PlanModel) renderWeek(i int) string {
	week := m.plan.Weeks[i]
	open := m.expanded[week.Week]

	arrow := "▸"
	if open {
		arrow = "▾"
	}
	header := fmt.Sprintf("%s %s  %s  %s",
		arrow,
		workoutStyle.Render(fmt.Sprintf("Week %d", week.Week)),
		RenderPhaseBadge(week.Phase),
		mutedStyle.Render(m.units.FormatMileage(week.MileageKm)),
	)

	style := cardStyle
	if i == m.cursor {
		style = selectedCardStyle
	}
	if !open {
		return style.Render(header)
	}

	lines := []string{header, ""}
	for _, d := range week.Days {
		lines = append(lines, renderDay(d))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func renderDay(d plan.TrainingDay) string {
	name := workoutStyle
	switch {
	case d.IsRaceDay():
		name = raceDayStyle
	case d.Type == plan.DayRest:
		name = restWorkoutStyle
	}

	line := dayNameStyle.Render(d.Day) + name.Render(d.Workout)
	if d.Pace != "" {
		line += "  " + paceBadgeStyle.Render(d.Pace)
	}
	if d.Distance != "" {
		line += "  " + mutedStyle.Render(d.Distance)
	}

	desc := mutedStyle.Render(strings.Repeat(" ", 11) + d.Description)
	return line + "\n" + desc
}

// exportFilename is e.g. "half-training-plan.json"
func exportFilename(p *plan.TrainingPlan) string {
	return fmt.Sprintf("%s-training-plan.json", p.Distance)
}
