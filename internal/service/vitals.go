package service

import (
	"math"
	"strings"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	ActivitySedentary        = "sedentary"
	ActivityLightlyActive    = "lightly active"
	ActivityModeratelyActive = "moderately active"
	ActivityActive           = "active"
	ActivityVeryActive       = "very active"
)

// proteinFactors maps activity level to grams of protein per kg of lean body
// mass per day. This is the single source of truth for valid activity levels.
var proteinFactors = map[string]float64{
	ActivitySedentary:        1.2,
	ActivityLightlyActive:    1.375,
	ActivityModeratelyActive: 1.55,
	ActivityActive:           1.75,
	ActivityVeryActive:       2.0,
}

// NormalizeActivityLevel folds "Lightly Active", "lightly_active" and friends
// onto the canonical lowercase form. The result is not guaranteed to be a
// known level; ProteinRequired rejects unknown ones.
func NormalizeActivityLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	level = strings.ReplaceAll(level, "_", " ")
	level = strings.ReplaceAll(level, "-", " ")
	return strings.Join(strings.Fields(level), " ")
}

// NormalizeGender lowercases and trims a gender value. Validation happens at
// the points of use.
func NormalizeGender(gender string) string {
	return strings.ToLower(strings.TrimSpace(gender))
}

// BMI computes body mass index from weight in kg and height in cm, rounded
// to two decimals.
func BMI(weightKg, heightCm float64) float64 {
	return round2(weightKg / math.Pow(heightCm/100, 2))
}

// BMICategory buckets a BMI value into the standard WHO ranges.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// EstimateBodyFat approximates body-fat percentage from BMI, age and gender
// using the Deurenberg piecewise formula (adult vs minor split at 18).
func EstimateBodyFat(bmi float64, age int, gender string) (float64, error) {
	var bodyFat float64
	switch NormalizeGender(gender) {
	case GenderMale:
		if age >= 18 {
			bodyFat = 1.2*bmi + 0.23*float64(age) - 16.2
		} else {
			bodyFat = 1.51*bmi - 0.7*float64(age) - 2.2
		}
	case GenderFemale:
		if age >= 18 {
			bodyFat = 1.2*bmi + 0.23*float64(age) - 5.4
		} else {
			bodyFat = 1.51*bmi - 0.7*float64(age) + 1.4
		}
	default:
		return 0, &DomainError{Field: "gender", Value: gender}
	}
	return round2(bodyFat), nil
}

// LeanBodyMass is body weight minus estimated fat mass, in kg.
func LeanBodyMass(weightKg, bodyFatPct float64) float64 {
	return weightKg * (1 - bodyFatPct/100)
}

// BMR computes basal metabolic rate (kcal/day) from lean body mass using the
// Katch-McArdle formula.
func BMR(leanBodyMassKg float64) int {
	return int(math.Round(370 + 21.6*leanBodyMassKg))
}

// ProteinRequired computes the minimum daily protein in grams for a lean
// body mass and activity level. Unknown activity levels fail with
// *DomainError rather than falling back to sedentary.
func ProteinRequired(leanBodyMassKg float64, activityLevel string) (int, error) {
	factor, ok := proteinFactors[NormalizeActivityLevel(activityLevel)]
	if !ok {
		return 0, &DomainError{Field: "activity level", Value: activityLevel}
	}
	return int(math.Round(leanBodyMassKg * factor)), nil
}

// ActivityLevels lists the recognized activity levels from least to most
// active.
func ActivityLevels() []string {
	return []string{
		ActivitySedentary,
		ActivityLightlyActive,
		ActivityModeratelyActive,
		ActivityActive,
		ActivityVeryActive,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
