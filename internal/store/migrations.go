package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Generated plans; plan_json holds the full TrainingPlan
		`CREATE TABLE IF NOT EXISTS plans (
			id TEXT PRIMARY KEY,
			distance TEXT NOT NULL,
			current_pace INTEGER NOT NULL,
			target_pace INTEGER NOT NULL,
			training_days INTEGER NOT NULL,
			summary TEXT NOT NULL,
			plan_json TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_plans_created_at ON plans(created_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
