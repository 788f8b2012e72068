package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/manu2699/nutri-track/internal/catalog"
	"github.com/manu2699/nutri-track/internal/model"
)

type TrackFoodInput struct {
	UserID   int64
	FoodID   string
	Quantity float64
	MealSlot string
	EatenAt  time.Time
}

type UpdateTrackingInput struct {
	ID       int64
	Quantity float64
	MealSlot string
	EatenAt  time.Time
}

type TrackingFilter struct {
	Date     string
	FromDate string
	ToDate   string
	Slot     string
	Limit    int
}

// TrackFood scales the referenced catalog food to the consumed quantity and
// persists the result as a snapshot row. The stored values never change when
// the catalog does.
func TrackFood(db *sql.DB, cat *catalog.Catalog, in TrackFoodInput) (int64, error) {
	if in.UserID <= 0 {
		return 0, fmt.Errorf("user id must be > 0")
	}
	if in.Quantity <= 0 {
		return 0, fmt.Errorf("consumed quantity must be > 0")
	}
	food := cat.Lookup(strings.TrimSpace(in.FoodID))
	if food == nil {
		return 0, fmt.Errorf("food %q not found in catalog", in.FoodID)
	}
	if in.EatenAt.IsZero() {
		in.EatenAt = time.Now()
	}
	if strings.TrimSpace(in.MealSlot) == "" {
		in.MealSlot = ClassifySlot(in.EatenAt)
	}

	scaled, err := ScaleIntake(food, in.Quantity)
	if err != nil {
		return 0, err
	}
	snap := snapshotProfile(scaled)

	res, err := db.Exec(`
INSERT INTO trackings(user_id, food_id, meal_slot, eaten_at, consumed, scale, calories, protein_g, carbs_g, fat_g, fiber_g, sugar_g)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, in.UserID, food.ID, in.MealSlot, formatTimestamp(in.EatenAt), in.Quantity, food.Measurement, snap.Calories, snap.ProteinG, snap.CarbsG, snap.FatG, snap.FiberG, snap.SugarG)
	if err != nil {
		return 0, fmt.Errorf("insert tracking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted tracking id: %w", err)
	}
	return id, nil
}

// UpdateTracking re-scales the original catalog food to a new quantity and
// rewrites the snapshot. Slot and time update only when set.
func UpdateTracking(db *sql.DB, cat *catalog.Catalog, in UpdateTrackingInput) error {
	if in.ID <= 0 {
		return fmt.Errorf("tracking id must be > 0")
	}
	if in.Quantity <= 0 {
		return fmt.Errorf("consumed quantity must be > 0")
	}

	var foodID string
	var eatenAtRaw, slot string
	err := db.QueryRow(`SELECT IFNULL(food_id, ''), eaten_at, meal_slot FROM trackings WHERE id = ?`, in.ID).
		Scan(&foodID, &eatenAtRaw, &slot)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("tracking %d not found", in.ID)
		}
		return fmt.Errorf("load tracking %d: %w", in.ID, err)
	}
	if foodID == "" {
		return fmt.Errorf("tracking %d has no catalog reference", in.ID)
	}
	food := cat.Lookup(foodID)
	if food == nil {
		return fmt.Errorf("food %q no longer in catalog", foodID)
	}

	if strings.TrimSpace(in.MealSlot) == "" {
		in.MealSlot = slot
	}
	if in.EatenAt.IsZero() {
		eatenAt, perr := time.Parse(time.RFC3339, eatenAtRaw)
		if perr != nil {
			return fmt.Errorf("parse eaten_at for tracking %d: %w", in.ID, perr)
		}
		in.EatenAt = eatenAt
	}

	scaled, err := ScaleIntake(food, in.Quantity)
	if err != nil {
		return err
	}
	snap := snapshotProfile(scaled)

	res, err := db.Exec(`
UPDATE trackings
SET meal_slot = ?, eaten_at = ?, consumed = ?, calories = ?, protein_g = ?, carbs_g = ?, fat_g = ?, fiber_g = ?, sugar_g = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, in.MealSlot, formatTimestamp(in.EatenAt), in.Quantity, snap.Calories, snap.ProteinG, snap.CarbsG, snap.FatG, snap.FiberG, snap.SugarG, in.ID)
	if err != nil {
		return fmt.Errorf("update tracking %d: %w", in.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for tracking %d: %w", in.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("tracking %d not found", in.ID)
	}
	return nil
}

func DeleteTracking(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("tracking id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM trackings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete tracking %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for tracking %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("tracking %d not found", id)
	}
	return nil
}

// AddWater logs a water-only tracking row in millilitres.
func AddWater(db *sql.DB, userID int64, ml float64, at time.Time) (int64, error) {
	if userID <= 0 {
		return 0, fmt.Errorf("user id must be > 0")
	}
	if ml <= 0 {
		return 0, fmt.Errorf("water amount must be > 0")
	}
	if at.IsZero() {
		at = time.Now()
	}
	res, err := db.Exec(`
INSERT INTO trackings(user_id, meal_slot, eaten_at, scale, water_ml)
VALUES(?, ?, ?, 'ml', ?)
`, userID, ClassifySlot(at), formatTimestamp(at), ml)
	if err != nil {
		return 0, fmt.Errorf("insert water tracking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted tracking id: %w", err)
	}
	return id, nil
}

// ListTrackings returns a user's tracking rows, newest first.
func ListTrackings(db *sql.DB, userID int64, f TrackingFilter) ([]model.TrackingEntry, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("user id must be > 0")
	}
	if strings.TrimSpace(f.Date) != "" && (strings.TrimSpace(f.FromDate) != "" || strings.TrimSpace(f.ToDate) != "") {
		return nil, fmt.Errorf("--date cannot be combined with --from or --to")
	}

	query := selectTrackings + ` WHERE user_id = ?`
	args := []any{userID}

	if strings.TrimSpace(f.Date) != "" {
		start, end, err := dayBounds(f.Date)
		if err != nil {
			return nil, err
		}
		query += ` AND eaten_at >= ? AND eaten_at < ?`
		args = append(args, start, end)
	}
	if strings.TrimSpace(f.FromDate) != "" {
		from, err := parseDateStart(f.FromDate)
		if err != nil {
			return nil, err
		}
		query += ` AND eaten_at >= ?`
		args = append(args, from)
	}
	if strings.TrimSpace(f.ToDate) != "" {
		to, err := parseDateEndExclusive(f.ToDate)
		if err != nil {
			return nil, err
		}
		query += ` AND eaten_at < ?`
		args = append(args, to)
	}
	if strings.TrimSpace(f.Slot) != "" {
		query += ` AND meal_slot = ?`
		args = append(args, strings.TrimSpace(f.Slot))
	}

	query += ` ORDER BY eaten_at DESC`
	if f.Limit <= 0 {
		f.Limit = 50
	}
	query += ` LIMIT ?`
	args = append(args, f.Limit)

	return queryTrackings(db, query, args...)
}

const selectTrackings = `
SELECT id, user_id, IFNULL(food_id, ''), meal_slot, eaten_at, consumed, scale, calories, protein_g, carbs_g, fat_g, fiber_g, sugar_g, water_ml
FROM trackings`

// entriesForRange loads every tracking row for a user in [from, to),
// ascending, for aggregation.
func entriesForRange(db *sql.DB, userID int64, from, to time.Time) ([]model.TrackingEntry, error) {
	query := selectTrackings + ` WHERE user_id = ? AND eaten_at >= ? AND eaten_at < ? ORDER BY eaten_at ASC`
	return queryTrackings(db, query, userID, formatTimestamp(from), formatTimestamp(to))
}

func queryTrackings(db *sql.DB, query string, args ...any) ([]model.TrackingEntry, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query trackings: %w", err)
	}
	defer rows.Close()

	entries := make([]model.TrackingEntry, 0)
	for rows.Next() {
		var e model.TrackingEntry
		var eatenAtRaw string
		if err := rows.Scan(&e.ID, &e.UserID, &e.FoodID, &e.MealSlot, &eatenAtRaw, &e.Consumed, &e.Scale, &e.Calories, &e.ProteinG, &e.CarbsG, &e.FatG, &e.FiberG, &e.SugarG, &e.WaterMl); err != nil {
			return nil, fmt.Errorf("scan tracking: %w", err)
		}
		eatenAt, err := time.Parse(time.RFC3339, eatenAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse eaten_at for tracking %d: %w", e.ID, err)
		}
		e.EatenAt = eatenAt
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trackings: %w", err)
	}
	return entries, nil
}

// trackingSnapshot is the denormalized view of a scaled profile destined for
// a trackings row. Unknown nutrients collapse to zero here, and only here:
// in a ScaledProfile nil still means "unknown".
type trackingSnapshot struct {
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
	FiberG   float64
	SugarG   float64
}

func snapshotProfile(p ScaledProfile) trackingSnapshot {
	snap := trackingSnapshot{Calories: p.Calories}
	if p.Nutrients == nil {
		return snap
	}
	snap.ProteinG = valueOrZero(p.Nutrients.Proteins)
	snap.CarbsG = valueOrZero(p.Nutrients.Carbs)
	snap.FatG = valueOrZero(p.Nutrients.TotalFats)
	snap.FiberG = valueOrZero(p.Nutrients.Fiber)
	snap.SugarG = valueOrZero(p.Nutrients.Sugar)
	return snap
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func dayBounds(date string) (string, string, error) {
	start, err := parseDateStart(date)
	if err != nil {
		return "", "", err
	}
	t, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return "", "", fmt.Errorf("parse RFC3339 %q: %w", start, err)
	}
	return start, t.Add(24 * time.Hour).Format(time.RFC3339), nil
}

func parseDateStart(value string) (string, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t.Format(time.RFC3339), nil
}

func parseDateEndExclusive(value string) (string, error) {
	start, err := parseDateStart(value)
	if err != nil {
		return "", err
	}
	t, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return "", fmt.Errorf("parse end date %q: %w", value, err)
	}
	return t.Add(24 * time.Hour).Format(time.RFC3339), nil
}
