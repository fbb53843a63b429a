package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"runner/internal/export"
	"runner/internal/plan"
	"runner/internal/store"
)

// ErrZeroPace is returned when either pace is 0:00
var ErrZeroPace = errors.New("pace must be greater than 0:00")

// PlanService is the boundary between raw user input and the plan generator
type PlanService struct {
	store        *store.DB // nil disables history
	logger       *slog.Logger
	historyLimit int
}

// NewPlanService creates a plan service. db may be nil to disable history.
func NewPlanService(db *store.DB, logger *slog.Logger, historyLimit int) *PlanService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &PlanService{store: db, logger: logger, historyLimit: historyLimit}
}

// HistoryEnabled reports whether generated plans are persisted
func (s *PlanService) HistoryEnabled() bool {
	return s.store != nil
}

// Request is unvalidated form input
type Request struct {
	Distance     string
	CurrentPace  string
	TargetPace   string
	TrainingDays int
}

// Result is a generated plan plus its history ID, empty when not saved
type Result struct {
	Plan *plan.TrainingPlan
	ID   string
}

// Generate validates req, builds the plan and records it in history
func (s *PlanService) Generate(ctx context.Context, req Request) (*Result, error) {
	distance, err := plan.ParseDistance(req.Distance)
	if err != nil {
		return nil, err
	}

	current, err := plan.ParsePace(req.CurrentPace)
	if err != nil {
		return nil, fmt.Errorf("current pace: %w", err)
	}
	target, err := plan.ParsePace(req.TargetPace)
	if err != nil {
		return nil, fmt.Errorf("target pace: %w", err)
	}
	if current.IsZero() {
		return nil, fmt.Errorf("current pace: %w", ErrZeroPace)
	}
	if target.IsZero() {
		return nil, fmt.Errorf("target pace: %w", ErrZeroPace)
	}

	days := plan.ClampTrainingDays(req.TrainingDays)
	if days != req.TrainingDays {
		s.logger.Warn("training days out of range, clamped",
			"requested", req.TrainingDays, "using", days)
	}

	p := plan.GenerateTrainingPlan(distance, current, target, days)
	s.logger.Info("generated plan",
		"distance", distance, "weeks", len(p.Weeks), "days", days,
		"current", p.CurrentPace.String(), "target", p.TargetPace.String())

	result := &Result{Plan: &p}
	if s.store == nil {
		return result, nil
	}

	id, err := s.save(ctx, &p)
	if err != nil {
		// History is best effort; the plan is still usable
		s.logger.Error("saving plan to history", "error", err)
		return result, nil
	}
	result.ID = id
	return result, nil
}

func (s *PlanService) save(ctx context.Context, p *plan.TrainingPlan) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding plan: %w", err)
	}

	rec := &store.PlanRecord{
		Distance:     string(p.Distance),
		CurrentPace:  plan.PaceToSeconds(p.CurrentPace),
		TargetPace:   plan.PaceToSeconds(p.TargetPace),
		TrainingDays: p.TrainingDays,
		Summary:      p.Summary,
		PlanJSON:     data,
	}
	if err := s.store.SavePlan(ctx, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Export writes p to path, choosing the format from the extension
func (s *PlanService) Export(p *plan.TrainingPlan, path string) error {
	if err := export.WriteFile(path, p); err != nil {
		s.logger.Error("exporting plan", "path", path, "error", err)
		return fmt.Errorf("exporting plan: %w", err)
	}
	s.logger.Info("exported plan", "path", path, "distance", p.Distance)
	return nil
}
