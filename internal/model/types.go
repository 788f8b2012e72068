package model

import "time"

type UserProfile struct {
	ID               int64
	Name             string
	Age              int
	Email            string
	Gender           string
	WeightKg         float64
	HeightCm         float64
	Region           string
	BodyFatPct       float64
	BMI              float64
	BMR              int
	ProteinRequiredG int
	ActivityLevel    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TrackingEntry is a logged intake carrying a snapshot of the scaled
// nutrient values at the time of logging. Catalog edits never rewrite
// history.
type TrackingEntry struct {
	ID        int64
	UserID    int64
	FoodID    string
	MealSlot  string
	EatenAt   time.Time
	Consumed  float64
	Scale     string
	Calories  float64
	ProteinG  float64
	CarbsG    float64
	FatG      float64
	FiberG    float64
	SugarG    float64
	WaterMl   float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
