package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrPlanNotFound is returned when a saved plan doesn't exist
var ErrPlanNotFound = errors.New("plan not found")

// createdAtLayout is fixed-width UTC so created_at sorts lexically
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

// SavePlan inserts a plan record, assigning an ID and timestamp when unset
func (db *DB) SavePlan(ctx context.Context, p *PlanRecord) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO plans (
			id, distance, current_pace, target_pace, training_days, summary, plan_json, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID, p.Distance, p.CurrentPace, p.TargetPace, p.TrainingDays, p.Summary,
		string(p.PlanJSON), p.CreatedAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

// GetPlan retrieves a single saved plan by ID
func (db *DB) GetPlan(ctx context.Context, id string) (*PlanRecord, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, distance, current_pace, target_pace, training_days, summary, plan_json, created_at
		FROM plans
		WHERE id = ?
	`, id)

	return scanPlan(row)
}

// ListPlans returns saved plans, newest first. limit <= 0 returns all.
func (db *DB) ListPlans(ctx context.Context, limit int) ([]PlanRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, distance, current_pace, target_pace, training_days, summary, plan_json, created_at
		FROM plans
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPlans(rows)
}

// CountPlans returns the number of saved plans
func (db *DB) CountPlans(ctx context.Context) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM plans`).Scan(&n)
	return n, err
}

// DeletePlan removes a saved plan
func (db *DB) DeletePlan(ctx context.Context, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanPlanFields(s scanner) (*PlanRecord, error) {
	var p PlanRecord
	var planJSON, createdAt string

	if err := s.Scan(
		&p.ID, &p.Distance, &p.CurrentPace, &p.TargetPace, &p.TrainingDays,
		&p.Summary, &planJSON, &createdAt,
	); err != nil {
		return nil, err
	}

	p.PlanJSON = []byte(planJSON)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(createdAtLayout, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, parseErr)
	}

	return &p, nil
}

// scanPlan scans a single plan from a row
func scanPlan(row *sql.Row) (*PlanRecord, error) {
	p, err := scanPlanFields(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	return p, err
}

// scanPlans scans multiple plans from rows
func scanPlans(rows *sql.Rows) ([]PlanRecord, error) {
	var plans []PlanRecord

	for rows.Next() {
		p, err := scanPlanFields(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *p)
	}

	return plans, rows.Err()
}
