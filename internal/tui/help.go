package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runner/internal/plan"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	// Navigation section
	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "New plan form"},
		{"2", "Current plan"},
		{"3", "Saved plans"},
		{"?", "Help (this screen)"},
		{"q", "Quit (outside pace fields)"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	formSection := m.renderSection("Plan Form", []keyHelp{
		{"tab / down", "Next field"},
		{"shift+tab / up", "Previous field"},
		{"left / right", "Change distance or training days"},
		{"enter", "Generate plan"},
	})
	sections = append(sections, formSection)

	planSection := m.renderSection("Plan View", []keyHelp{
		{"j / k", "Select week"},
		{"enter / space", "Expand or collapse week"},
		{"e", "Expand all weeks"},
		{"c", "Collapse all weeks"},
		{"pgup / pgdn", "Scroll"},
		{"x", "Export plan as JSON"},
		{"n", "Create a new plan"},
	})
	sections = append(sections, planSection)

	historySection := m.renderSection("Saved Plans", []keyHelp{
		{"enter", "Open plan"},
		{"d", "Delete plan"},
		{"r", "Refresh list"},
	})
	sections = append(sections, historySection)

	sections = append(sections, m.renderGlossary())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionTitleStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderGlossary() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionTitleStyle.Render("Phases and Day Types"))
	lines = append(lines, "")

	terms := []struct {
		name string
		desc string
	}{
		{RenderPhaseBadge(plan.PhaseBase), "First quarter. One quality session, mostly easy mileage."},
		{RenderPhaseBadge(plan.PhaseBuild), "Mileage climbs and a second quality session appears."},
		{RenderPhaseBadge(plan.PhasePeak), "Highest mileage with intervals and tempo at near-goal pace."},
		{RenderPhaseBadge(plan.PhaseTaper), "Mileage drops to 60% so you arrive at race day fresh."},
		{helpKeyStyle.Render("Easy / Long"), "Zone 2 effort. About 80% of each week's volume."},
		{helpKeyStyle.Render("Quality"), "Intervals or tempo, run faster than your current week pace."},
		{helpKeyStyle.Render("Recovery"), "Very easy Sunday miles after the long run."},
		{helpKeyStyle.Render("Rest"), "Days dropped to fit your weekly training-day budget."},
	}

	for _, term := range terms {
		lines = append(lines, "  "+term.name)
		lines = append(lines, "  "+mutedStyle.Render(term.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
