package store

import "time"

// PlanRecord is a saved plan plus the inputs that produced it
type PlanRecord struct {
	ID           string    `db:"id"`
	Distance     string    `db:"distance"`
	CurrentPace  int       `db:"current_pace"` // seconds per km
	TargetPace   int       `db:"target_pace"`  // seconds per km
	TrainingDays int       `db:"training_days"`
	Summary      string    `db:"summary"`
	PlanJSON     []byte    `db:"plan_json"`
	CreatedAt    time.Time `db:"created_at"`
}
