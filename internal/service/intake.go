package service

import (
	"math"
	"strings"

	"github.com/manu2699/nutri-track/internal/catalog"
)

// per100Units are units whose reference nutrient values are recorded per 100
// of the unit (mass in grams, volume in millilitres).
var per100Units = map[string]bool{
	"g":  true,
	"gm": true,
	"ml": true,
}

// perUnitUnits are count-based servings; reference values apply to one whole
// serving.
var perUnitUnits = map[string]bool{
	"piece":  true,
	"pieces": true,
	"tbsp":   true,
	"tsp":    true,
}

// ScaledProfile is a food's nutrient values recomputed for an actually
// consumed quantity. Nil nutrient fields mean "unknown", never zero.
// Descriptive catalog fields (search keys, notes) are deliberately absent:
// a scaled profile is a consumption fact, not a catalog entry.
type ScaledProfile struct {
	FoodID      string
	ItemName    string
	Measurement string
	Consumed    float64
	Calories    float64
	Nutrients   *catalog.Nutrients
}

// ScaleIntake converts a food's per-reference-serving values into values for
// the consumed quantity. Mass/volume servings scale by quantity/100 with the
// result truncated (floor) so intake is never overstated; count-based
// servings scale by the quantity directly, untruncated. Unknown serving
// units fail with *UnsupportedUnitError.
func ScaleIntake(food *catalog.Food, consumedQuantity float64) (ScaledProfile, error) {
	return scaleIntake(food, consumedQuantity, false)
}

// ScaleIntakeCompat behaves like ScaleIntake but reproduces the historical
// handling of unknown serving units: values pass through unscaled instead of
// failing. Only useful when replaying rows logged by old builds.
func ScaleIntakeCompat(food *catalog.Food, consumedQuantity float64) (ScaledProfile, error) {
	return scaleIntake(food, consumedQuantity, true)
}

func scaleIntake(food *catalog.Food, consumedQuantity float64, legacyPassthrough bool) (ScaledProfile, error) {
	m, err := ParseMeasurement(food.Measurement)
	if err != nil {
		return ScaledProfile{}, err
	}

	profile := ScaledProfile{
		FoodID:      food.ID,
		ItemName:    food.ItemName,
		Measurement: food.Measurement,
		Consumed:    consumedQuantity,
	}

	unit := strings.ToLower(strings.TrimSpace(m.Unit))
	switch {
	case per100Units[unit]:
		scale := func(ref float64) float64 { return math.Floor(consumedQuantity / 100 * ref) }
		profile.Calories = scale(food.Calories)
		profile.Nutrients = scaleNutrients(food.Nutrients, scale)
	case perUnitUnits[unit]:
		scale := func(ref float64) float64 { return consumedQuantity * ref }
		profile.Calories = scale(food.Calories)
		profile.Nutrients = scaleNutrients(food.Nutrients, scale)
	default:
		if !legacyPassthrough {
			return ScaledProfile{}, &UnsupportedUnitError{Unit: m.Unit}
		}
		identity := func(ref float64) float64 { return ref }
		profile.Calories = food.Calories
		profile.Nutrients = scaleNutrients(food.Nutrients, identity)
	}
	return profile, nil
}

// scaleNutrients applies scale to every known nutrient value. Nil inputs
// stay nil in the output so "unknown" survives scaling.
func scaleNutrients(src *catalog.Nutrients, scale func(float64) float64) *catalog.Nutrients {
	if src == nil {
		return nil
	}
	out := &catalog.Nutrients{}
	fields := []struct {
		src *float64
		dst **float64
	}{
		{src.TotalFats, &out.TotalFats},
		{src.SaturatedFats, &out.SaturatedFats},
		{src.UnSaturatedFats, &out.UnSaturatedFats},
		{src.Sugar, &out.Sugar},
		{src.Carbs, &out.Carbs},
		{src.Proteins, &out.Proteins},
		{src.Sodium, &out.Sodium},
		{src.Potassium, &out.Potassium},
		{src.Magnesium, &out.Magnesium},
		{src.VitaminA, &out.VitaminA},
		{src.VitaminC, &out.VitaminC},
		{src.VitaminD, &out.VitaminD},
		{src.Fiber, &out.Fiber},
		{src.Calcium, &out.Calcium},
		{src.Iron, &out.Iron},
	}
	for _, f := range fields {
		if f.src == nil {
			continue
		}
		v := scale(*f.src)
		*f.dst = &v
	}
	return out
}
