package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runner/internal/config"
	"runner/internal/plan"
	"runner/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenForm Screen = iota
	ScreenPlan
	ScreenHistory
	ScreenHelp
)

// chromeHeight is the space taken by the header, nav and footer
const chromeHeight = 6

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	form     FormModel
	planView PlanModel
	hasPlan  bool
	history  HistoryModel
	help     HelpModel

	svc   *service.PlanService
	units Units

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App starting on the plan form
func NewApp(svc *service.PlanService, cfg *config.Config) *App {
	return &App{
		screen:  ScreenForm,
		svc:     svc,
		units:   NewUnits(cfg.Display),
		form:    NewFormModel(svc, cfg.Defaults),
		history: NewHistoryModel(svc),
		help:    NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.form.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// Pace fields own printable keys
		if a.screen != ScreenForm || !a.form.Editing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				a.switchTo(ScreenForm)
				return a, nil
			case "2":
				if a.hasPlan {
					a.switchTo(ScreenPlan)
				}
				return a, nil
			case "3":
				a.switchTo(ScreenHistory)
				a.history = NewHistoryModel(a.svc)
				return a, a.history.Init()
			case "n":
				if a.screen == ScreenPlan {
					a.switchTo(ScreenForm)
					return a, nil
				}
			case "?":
				if a.screen != ScreenHelp {
					a.prevScreen = a.screen
					a.switchTo(ScreenHelp)
				}
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.switchTo(a.prevScreen)
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.hasPlan {
			m, cmd := a.planView.Update(a.contentSize())
			a.planView = m.(PlanModel)
			return a, cmd
		}
		return a, nil

	case planGeneratedMsg:
		a.status = ""
		if msg.err != nil {
			a.form = a.form.failed(msg.err)
			return a, nil
		}
		a.openPlan(msg.result.Plan)
		if msg.result.ID != "" {
			a.status = "Plan saved to history"
		}
		return a, nil

	case planLoadedMsg:
		a.status = ""
		if msg.err == nil {
			a.openPlan(msg.plan)
			a.status = "Opened saved plan"
			return a, nil
		}
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenForm:
		var m tea.Model
		m, cmd = a.form.Update(msg)
		a.form = m.(FormModel)
	case ScreenPlan:
		var m tea.Model
		m, cmd = a.planView.Update(msg)
		a.planView = m.(PlanModel)
	case ScreenHistory:
		var m tea.Model
		m, cmd = a.history.Update(msg)
		a.history = m.(HistoryModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// switchTo changes screen and drops the previous screen's status line
func (a *App) switchTo(s Screen) {
	a.screen = s
	a.status = ""
}

func (a *App) openPlan(p *plan.TrainingPlan) {
	size := a.contentSize()
	a.planView = NewPlanModel(a.svc, p, a.units, size.Width, size.Height)
	a.hasPlan = true
	a.form = a.form.done()
	a.screen = ScreenPlan
}

// contentSize is the window minus app chrome
func (a *App) contentSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: a.width, Height: max(a.height-chromeHeight, 0)}
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenForm:
		content = a.form.View()
	case ScreenPlan:
		content = a.planView.View()
	case ScreenHistory:
		content = a.history.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Runner Training Plan Generator")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "New Plan", ScreenForm},
		{"2", "Plan", ScreenPlan},
		{"3", "History", ScreenHistory},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}
