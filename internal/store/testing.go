package store

import (
	"database/sql"
	"fmt"
)

// NewTestDB creates an in-memory database with migrations applied.
// This is only intended for use in tests.
func NewTestDB() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening test database: %w", err)
	}
	// Every pooled connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	if err := migrate(sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return &DB{sqlDB}, nil
}
