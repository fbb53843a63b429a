package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"runner/internal/plan"
)

// ErrHistoryDisabled is returned by history operations when no store is configured
var ErrHistoryDisabled = errors.New("plan history is disabled")

// HistoryEntry is one saved plan as shown in the history list
type HistoryEntry struct {
	ID           string
	Distance     plan.RaceDistance
	CurrentPace  plan.Pace
	TargetPace   plan.Pace
	TrainingDays int
	Summary      string
	CreatedAt    time.Time
	Age          string // "3 hours ago"
}

// Title is a one-line description of the saved plan
func (e HistoryEntry) Title() string {
	name := string(e.Distance)
	if info, ok := e.Distance.Info(); ok {
		name = info.Name
	}
	return fmt.Sprintf("%s%s%s → %s%s%d days/week",
		name, titleSeparator,
		plan.FormatPace(e.CurrentPace), plan.FormatPace(e.TargetPace),
		titleSeparator, e.TrainingDays)
}

// History returns saved plans, newest first, up to the configured limit
func (s *PlanService) History(ctx context.Context) ([]HistoryEntry, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}

	records, err := s.store.ListPlans(ctx, s.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, HistoryEntry{
			ID:           r.ID,
			Distance:     plan.RaceDistance(r.Distance),
			CurrentPace:  plan.SecondsToPace(float64(r.CurrentPace)),
			TargetPace:   plan.SecondsToPace(float64(r.TargetPace)),
			TrainingDays: r.TrainingDays,
			Summary:      r.Summary,
			CreatedAt:    r.CreatedAt,
			Age:          humanize.Time(r.CreatedAt),
		})
	}
	return entries, nil
}

// Load restores a saved plan exactly as it was generated
func (s *PlanService) Load(ctx context.Context, id string) (*plan.TrainingPlan, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}

	rec, err := s.store.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	var p plan.TrainingPlan
	if err := json.Unmarshal(rec.PlanJSON, &p); err != nil {
		return nil, fmt.Errorf("decoding saved plan %s: %w", id, err)
	}
	return &p, nil
}

// Delete removes a saved plan
func (s *PlanService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return ErrHistoryDisabled
	}
	if err := s.store.DeletePlan(ctx, id); err != nil {
		return err
	}
	s.logger.Info("deleted plan", "id", id)
	return nil
}
