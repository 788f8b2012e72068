package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/manu2699/nutri-track/internal/model"
)

// DayStatus is one day's intake measured against the profile's personalized
// targets (BMR for calories, computed protein requirement).
type DayStatus struct {
	Date              string         `json:"date"`
	Aggregate         DailyAggregate `json:"aggregate"`
	Entries           []model.TrackingEntry `json:"entries"`
	WaterMl           float64        `json:"water_ml"`
	TargetCalories    int            `json:"target_calories,omitempty"`
	TargetProteinG    int            `json:"target_protein_g,omitempty"`
	RemainingCalories float64        `json:"remaining_calories,omitempty"`
	RemainingProteinG float64        `json:"remaining_protein_g,omitempty"`
	HasTargets        bool           `json:"has_targets"`
}

// DaySummary aggregates a user's tracked intake for one local calendar day.
func DaySummary(db *sql.DB, userID int64, date time.Time) (*DayStatus, error) {
	start := beginningOfDay(date)
	entries, err := entriesForRange(db, userID, start, start.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	status := &DayStatus{
		Date:      start.Format("2006-01-02"),
		Aggregate: AggregateDay(entries),
		Entries:   entries,
	}
	for _, e := range entries {
		status.WaterMl += e.WaterMl
	}

	profile, err := GetProfile(db, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		status.HasTargets = true
		status.TargetCalories = profile.BMR
		status.TargetProteinG = profile.ProteinRequiredG
		status.RemainingCalories = float64(profile.BMR) - status.Aggregate.Total.Calories
		status.RemainingProteinG = float64(profile.ProteinRequiredG) - status.Aggregate.Total.ProteinG
	}
	return status, nil
}

// ProgressReport aggregates a user's tracked intake per day across an
// inclusive date range, ascending. Days without entries are omitted.
func ProgressReport(db *sql.DB, userID int64, from, to time.Time) ([]ProgressRecord, error) {
	if from.After(to) {
		return nil, fmt.Errorf("from date must be <= to date")
	}
	start := beginningOfDay(from)
	end := beginningOfDay(to).Add(24 * time.Hour)

	entries, err := entriesForRange(db, userID, start, end)
	if err != nil {
		return nil, err
	}
	return AggregateRange(entries, from, to), nil
}
