package service_test

import (
	"testing"
	"time"

	"github.com/manu2699/nutri-track/internal/service"
)

func TestDaySummary(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	cat := newTestCatalog(t)
	user := createTestProfile(t, db)

	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.Local)
	track := func(foodID string, qty float64, hour int) {
		t.Helper()
		if _, err := service.TrackFood(db, cat, service.TrackFoodInput{
			UserID:   user,
			FoodID:   foodID,
			Quantity: qty,
			EatenAt:  time.Date(2026, 8, 20, hour, 0, 0, 0, time.Local),
		}); err != nil {
			t.Fatalf("track %s: %v", foodID, err)
		}
	}
	track("boiled_egg", 2, 8)                // breakfast, 156 kcal
	track("chicken_breast_grilled", 200, 13) // lunch, 330 kcal
	if _, err := service.AddWater(db, user, 500, day.Add(10*time.Hour)); err != nil {
		t.Fatalf("add water: %v", err)
	}
	track("samosa", 1, 8)
	// Another day's intake must not leak in.
	if _, err := service.TrackFood(db, cat, service.TrackFoodInput{
		UserID:   user,
		FoodID:   "samosa",
		Quantity: 1,
		EatenAt:  day.AddDate(0, 0, 1).Add(9 * time.Hour),
	}); err != nil {
		t.Fatalf("track next-day samosa: %v", err)
	}

	status, err := service.DaySummary(db, user, day)
	if err != nil {
		t.Fatalf("day summary: %v", err)
	}
	if status.Date != "2026-08-20" {
		t.Fatalf("date = %q, want 2026-08-20", status.Date)
	}
	// 156 + 330 + 262 from the same-day samosa.
	if status.Aggregate.Total.Calories != 748 {
		t.Fatalf("total calories = %v, want 748", status.Aggregate.Total.Calories)
	}
	if status.WaterMl != 500 {
		t.Fatalf("water = %v, want 500", status.WaterMl)
	}
	if !status.HasTargets {
		t.Fatal("profile exists, targets should be set")
	}
	if status.TargetCalories != 1684 || status.TargetProteinG != 84 {
		t.Fatalf("targets = %d kcal / %dg, want 1684 / 84", status.TargetCalories, status.TargetProteinG)
	}
	if status.RemainingCalories != 1684-748 {
		t.Fatalf("remaining calories = %v, want %v", status.RemainingCalories, 1684-748)
	}
}

func TestDaySummaryWithoutProfile(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	status, err := service.DaySummary(db, 7, time.Now())
	if err != nil {
		t.Fatalf("day summary: %v", err)
	}
	if status.HasTargets {
		t.Fatal("no profile, no targets")
	}
	if status.Aggregate.Total.Calories != 0 {
		t.Fatalf("empty day total = %v, want 0", status.Aggregate.Total.Calories)
	}
}

func TestProgressReport(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	cat := newTestCatalog(t)
	user := createTestProfile(t, db)

	track := func(foodID string, day, hour int) {
		t.Helper()
		if _, err := service.TrackFood(db, cat, service.TrackFoodInput{
			UserID:   user,
			FoodID:   foodID,
			Quantity: 1,
			EatenAt:  time.Date(2026, 8, day, hour, 0, 0, 0, time.Local),
		}); err != nil {
			t.Fatalf("track %s: %v", foodID, err)
		}
	}
	track("idli", 18, 8)
	track("banana", 18, 17)
	track("samosa", 20, 17)

	from := time.Date(2026, 8, 18, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 8, 20, 0, 0, 0, 0, time.Local)
	records, err := service.ProgressReport(db, user, from, to)
	if err != nil {
		t.Fatalf("progress report: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 day records, got %d", len(records))
	}
	if records[0].Date != "2026-08-18" || records[1].Date != "2026-08-20" {
		t.Fatalf("dates = %q, %q", records[0].Date, records[1].Date)
	}
	// idli 58 + banana 105.
	if records[0].Aggregate.Total.Calories != 163 {
		t.Fatalf("2026-08-18 calories = %v, want 163", records[0].Aggregate.Total.Calories)
	}

	if _, err := service.ProgressReport(db, user, to, from); err == nil {
		t.Fatal("inverted range should error")
	}
}
