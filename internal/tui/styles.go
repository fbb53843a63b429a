package tui

import (
	"github.com/charmbracelet/lipgloss"

	"runner/internal/plan"
)

// Colors
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	roseColor      = lipgloss.Color("#F43F5E")
	skyColor       = lipgloss.Color("#0EA5E9")
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	textColor      = lipgloss.Color("#F9FAFB") // Light gray
)

// Styles
var (
	// App chrome
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(primaryColor).
			Padding(0, 1).
			MarginBottom(1)

	// Navigation
	navStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginBottom(1)

	navActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	navInactiveStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// Cards and boxes
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 2)

	selectedCardStyle = cardStyle.
				BorderForeground(primaryColor)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Metrics
	metricLabelStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Width(16)

	metricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(textColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Form
	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(16)

	fieldFocusedLabelStyle = fieldLabelStyle.
				Bold(true).
				Foreground(primaryColor)

	optionStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	optionSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(textColor).
				Background(primaryColor).
				Padding(0, 1)

	// Plan
	dayNameStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(11)

	workoutStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	restWorkoutStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	raceDayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(roseColor)

	paceBadgeStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	// Table
	tableRowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	tableSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Background(primaryColor).
				Foreground(textColor).
				Padding(0, 1)

	// Status
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	successStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// Help
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(secondaryColor)
)

// phaseColors matches each phase with its badge color
var phaseColors = map[plan.Phase]lipgloss.Color{
	plan.PhaseBase:  secondaryColor,
	plan.PhaseBuild: warningColor,
	plan.PhasePeak:  roseColor,
	plan.PhaseTaper: skyColor,
}

// Helper functions

// RenderMetric renders a label and value on one line
func RenderMetric(label, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		metricLabelStyle.Render(label),
		metricValueStyle.Render(value),
	)
}

// RenderPhaseBadge renders a phase name in its phase color
func RenderPhaseBadge(phase plan.Phase) string {
	color, ok := phaseColors[phase]
	if !ok {
		color = mutedColor
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Render("[" + string(phase) + "]")
}

// RenderKeyHelp renders a key binding help item
func RenderKeyHelp(key, desc string) string {
	return helpKeyStyle.Render(key) + " " + helpDescStyle.Render(desc)
}
