package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/manu2699/nutri-track/internal/model"
)

type CreateProfileInput struct {
	Name          string
	Age           int
	Email         string
	Gender        string
	WeightKg      float64
	HeightCm      float64
	BodyFatPct    *float64
	ActivityLevel string
	Region        string
}

// UpdateProfileInput carries optional field updates; nil fields keep their
// stored value. Derived targets are recomputed only when weight, height,
// body fat or activity level change.
type UpdateProfileInput struct {
	ID            int64
	Name          *string
	Age           *int
	Email         *string
	WeightKg      *float64
	HeightCm      *float64
	BodyFatPct    *float64
	ActivityLevel *string
	Region        *string
}

// derivedTargets recomputes every derived profile field from biometrics.
// BMR and protein requirement always derive from lean body mass; they are
// never set independently.
func derivedTargets(weightKg, heightCm, bodyFatPct float64, activityLevel string) (bmi float64, bmr, proteinG int, err error) {
	bmi = BMI(weightKg, heightCm)
	lbm := LeanBodyMass(weightKg, bodyFatPct)
	bmr = BMR(lbm)
	proteinG, err = ProteinRequired(lbm, activityLevel)
	if err != nil {
		return 0, 0, 0, err
	}
	return bmi, bmr, proteinG, nil
}

func CreateProfile(db *sql.DB, in CreateProfileInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, fmt.Errorf("profile name is required")
	}
	if in.Age <= 0 {
		return 0, fmt.Errorf("age must be > 0")
	}
	if in.WeightKg <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	if in.HeightCm <= 0 {
		return 0, fmt.Errorf("height must be > 0")
	}
	gender := NormalizeGender(in.Gender)
	if gender != GenderMale && gender != GenderFemale {
		return 0, &DomainError{Field: "gender", Value: in.Gender}
	}
	activity := NormalizeActivityLevel(in.ActivityLevel)

	bmi := BMI(in.WeightKg, in.HeightCm)
	var bodyFat float64
	if in.BodyFatPct != nil {
		if *in.BodyFatPct < 0 || *in.BodyFatPct > 100 {
			return 0, fmt.Errorf("body-fat must be between 0 and 100")
		}
		bodyFat = *in.BodyFatPct
	} else {
		estimated, err := EstimateBodyFat(bmi, in.Age, gender)
		if err != nil {
			return 0, err
		}
		bodyFat = estimated
	}

	_, bmr, proteinG, err := derivedTargets(in.WeightKg, in.HeightCm, bodyFat, activity)
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(`
INSERT INTO users(name, age, email, gender, weight_kg, height_cm, body_fat_pct, bmi, bmr, protein_required, activity_level, region)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, in.Name, in.Age, strings.TrimSpace(in.Email), gender, in.WeightKg, in.HeightCm, bodyFat, bmi, bmr, proteinG, activity, strings.TrimSpace(in.Region))
	if err != nil {
		return 0, fmt.Errorf("insert profile: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted profile id: %w", err)
	}
	return id, nil
}

// GetProfile returns the stored profile, or nil when the user does not
// exist.
func GetProfile(db *sql.DB, userID int64) (*model.UserProfile, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("user id must be > 0")
	}
	var p model.UserProfile
	err := db.QueryRow(`
SELECT id, name, age, IFNULL(email, ''), gender, weight_kg, height_cm, IFNULL(body_fat_pct, 0), bmi, bmr, protein_required, activity_level, region
FROM users
WHERE id = ?
`, userID).Scan(&p.ID, &p.Name, &p.Age, &p.Email, &p.Gender, &p.WeightKg, &p.HeightCm, &p.BodyFatPct, &p.BMI, &p.BMR, &p.ProteinRequiredG, &p.ActivityLevel, &p.Region)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile %d: %w", userID, err)
	}
	return &p, nil
}

func ListProfiles(db *sql.DB) ([]model.UserProfile, error) {
	rows, err := db.Query(`
SELECT id, name, age, IFNULL(email, ''), gender, weight_kg, height_cm, IFNULL(body_fat_pct, 0), bmi, bmr, protein_required, activity_level, region
FROM users
ORDER BY id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]model.UserProfile, 0)
	for rows.Next() {
		var p model.UserProfile
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.Email, &p.Gender, &p.WeightKg, &p.HeightCm, &p.BodyFatPct, &p.BMI, &p.BMR, &p.ProteinRequiredG, &p.ActivityLevel, &p.Region); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return profiles, nil
}

func UpdateProfile(db *sql.DB, in UpdateProfileInput) error {
	current, err := GetProfile(db, in.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("profile %d not found", in.ID)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return fmt.Errorf("profile name is required")
		}
		current.Name = name
	}
	if in.Age != nil {
		if *in.Age <= 0 {
			return fmt.Errorf("age must be > 0")
		}
		current.Age = *in.Age
	}
	if in.Email != nil {
		current.Email = strings.TrimSpace(*in.Email)
	}
	if in.Region != nil {
		current.Region = strings.TrimSpace(*in.Region)
	}

	recompute := false
	if in.WeightKg != nil {
		if *in.WeightKg <= 0 {
			return fmt.Errorf("weight must be > 0")
		}
		current.WeightKg = *in.WeightKg
		recompute = true
	}
	if in.HeightCm != nil {
		if *in.HeightCm <= 0 {
			return fmt.Errorf("height must be > 0")
		}
		current.HeightCm = *in.HeightCm
		recompute = true
	}
	if in.BodyFatPct != nil {
		if *in.BodyFatPct < 0 || *in.BodyFatPct > 100 {
			return fmt.Errorf("body-fat must be between 0 and 100")
		}
		current.BodyFatPct = *in.BodyFatPct
		recompute = true
	}
	if in.ActivityLevel != nil {
		current.ActivityLevel = NormalizeActivityLevel(*in.ActivityLevel)
		recompute = true
	}

	if recompute {
		bmi, bmr, proteinG, err := derivedTargets(current.WeightKg, current.HeightCm, current.BodyFatPct, current.ActivityLevel)
		if err != nil {
			return err
		}
		current.BMI = bmi
		current.BMR = bmr
		current.ProteinRequiredG = proteinG
	}

	res, err := db.Exec(`
UPDATE users
SET name = ?, age = ?, email = ?, weight_kg = ?, height_cm = ?, body_fat_pct = ?, bmi = ?, bmr = ?, protein_required = ?, activity_level = ?, region = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, current.Name, current.Age, current.Email, current.WeightKg, current.HeightCm, current.BodyFatPct, current.BMI, current.BMR, current.ProteinRequiredG, current.ActivityLevel, current.Region, in.ID)
	if err != nil {
		return fmt.Errorf("update profile %d: %w", in.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for profile %d: %w", in.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("profile %d not found", in.ID)
	}
	return nil
}

func DeleteProfile(db *sql.DB, userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("user id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("delete profile %d: %w", userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for profile %d: %w", userID, err)
	}
	if affected == 0 {
		return fmt.Errorf("profile %d not found", userID)
	}
	return nil
}

// formatTimestamp is the storage format for explicit timestamps.
func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
