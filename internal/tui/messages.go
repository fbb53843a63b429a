package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"runner/internal/plan"
	"runner/internal/service"
)

// planGeneratedMsg carries the result of a form submission
type planGeneratedMsg struct {
	result *service.Result
	err    error
}

// planLoadedMsg carries a plan reopened from history
type planLoadedMsg struct {
	plan *plan.TrainingPlan
	err  error
}

type historyLoadedMsg struct {
	entries []service.HistoryEntry
	err     error
}

type planDeletedMsg struct {
	id  string
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

func generatePlan(svc *service.PlanService, req service.Request) tea.Cmd {
	return func() tea.Msg {
		res, err := svc.Generate(context.Background(), req)
		return planGeneratedMsg{result: res, err: err}
	}
}

func loadHistory(svc *service.PlanService) tea.Cmd {
	return func() tea.Msg {
		entries, err := svc.History(context.Background())
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func openSavedPlan(svc *service.PlanService, id string) tea.Cmd {
	return func() tea.Msg {
		p, err := svc.Load(context.Background(), id)
		return planLoadedMsg{plan: p, err: err}
	}
}

func deleteSavedPlan(svc *service.PlanService, id string) tea.Cmd {
	return func() tea.Msg {
		return planDeletedMsg{id: id, err: svc.Delete(context.Background(), id)}
	}
}

func exportPlan(svc *service.PlanService, p *plan.TrainingPlan, path string) tea.Cmd {
	return func() tea.Msg {
		return exportDoneMsg{path: path, err: svc.Export(p, path)}
	}
}
