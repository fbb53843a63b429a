package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

// setupTestDB creates an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewTestDB()
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func testRecord(distance string, createdAt time.Time) *PlanRecord {
	return &PlanRecord{
		Distance:     distance,
		CurrentPace:  360,
		TargetPace:   330,
		TrainingDays: 5,
		Summary:      "This 8-week plan takes you from 6:00/km to 5:30/km",
		PlanJSON:     []byte(`{"distance":"` + distance + `"}`),
		CreatedAt:    createdAt,
	}
}

func TestSavePlanAssignsIDAndTime(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	rec := testRecord("5k", time.Time{})
	if err := db.SavePlan(ctx, rec); err != nil {
		t.Fatalf("SavePlan() error = %v", err)
	}

	if rec.ID == "" {
		t.Error("SavePlan() did not assign an ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("SavePlan() did not assign CreatedAt")
	}

	got, err := db.GetPlan(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetPlan() error = %v", err)
	}
	if got.Distance != "5k" {
		t.Errorf("Distance = %q, want 5k", got.Distance)
	}
	if got.CurrentPace != 360 || got.TargetPace != 330 {
		t.Errorf("paces = %d/%d, want 360/330", got.CurrentPace, got.TargetPace)
	}
	if got.TrainingDays != 5 {
		t.Errorf("TrainingDays = %d, want 5", got.TrainingDays)
	}
	if string(got.PlanJSON) != `{"distance":"5k"}` {
		t.Errorf("PlanJSON = %s", got.PlanJSON)
	}
	if !got.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, rec.CreatedAt)
	}
}

func TestGetPlanNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetPlan(context.Background(), "missing")
	if !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("GetPlan() error = %v, want ErrPlanNotFound", err)
	}
}

func TestListPlansNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, d := range []string{"5k", "10k", "half"} {
		if err := db.SavePlan(ctx, testRecord(d, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("SavePlan(%s) error = %v", d, err)
		}
	}
	// Sub-second timestamps must still sort correctly
	if err := db.SavePlan(ctx, testRecord("full", base.Add(2*time.Hour+500*time.Millisecond))); err != nil {
		t.Fatalf("SavePlan(full) error = %v", err)
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"all", 0, []string{"full", "half", "10k", "5k"}},
		{"limited", 2, []string{"full", "half"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plans, err := db.ListPlans(ctx, tt.limit)
			if err != nil {
				t.Fatalf("ListPlans() error = %v", err)
			}
			if len(plans) != len(tt.want) {
				t.Fatalf("len(ListPlans()) = %d, want %d", len(plans), len(tt.want))
			}
			for i, want := range tt.want {
				if plans[i].Distance != want {
					t.Errorf("plans[%d].Distance = %q, want %q", i, plans[i].Distance, want)
				}
			}
		})
	}

	n, err := db.CountPlans(ctx)
	if err != nil {
		t.Fatalf("CountPlans() error = %v", err)
	}
	if n != 4 {
		t.Errorf("CountPlans() = %d, want 4", n)
	}
}

func TestDeletePlan(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	rec := testRecord("10k", time.Now())
	if err := db.SavePlan(ctx, rec); err != nil {
		t.Fatalf("SavePlan() error = %v", err)
	}

	if err := db.DeletePlan(ctx, rec.ID); err != nil {
		t.Fatalf("DeletePlan() error = %v", err)
	}
	if _, err := db.GetPlan(ctx, rec.ID); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("GetPlan() after delete error = %v, want ErrPlanNotFound", err)
	}
	if err := db.DeletePlan(ctx, rec.ID); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("second DeletePlan() error = %v, want ErrPlanNotFound", err)
	}
}

func TestOpenPathCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "plans.db")

	db, err := OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath() error = %v", err)
	}
	defer db.Close()

	if err := db.SavePlan(context.Background(), testRecord("5k", time.Now())); err != nil {
		t.Fatalf("SavePlan() error = %v", err)
	}

	// Reopening runs migrations again without error
	db2, err := OpenPath(path)
	if err != nil {
		t.Fatalf("second OpenPath() error = %v", err)
	}
	defer db2.Close()

	n, err := db2.CountPlans(context.Background())
	if err != nil || n != 1 {
		t.Errorf("CountPlans() = %d, %v, want 1", n, err)
	}
}
