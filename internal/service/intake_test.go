package service_test

import (
	"errors"
	"testing"

	"github.com/manu2699/nutri-track/internal/catalog"
	"github.com/manu2699/nutri-track/internal/service"
)

func TestScaleIntakePer100Floors(t *testing.T) {
	t.Parallel()
	cat := newTestCatalog(t)

	// 165 kcal per 100gm; 250gm is 412.5, floored to 412.
	chicken := mustLookup(t, cat, "chicken_breast_grilled")
	scaled, err := service.ScaleIntake(chicken, 250)
	if err != nil {
		t.Fatalf("scale chicken: %v", err)
	}
	if scaled.Calories != 412 {
		t.Fatalf("expected 412 kcal, got %v", scaled.Calories)
	}
	if scaled.Nutrients == nil || scaled.Nutrients.Proteins == nil {
		t.Fatal("expected scaled protein value")
	}
	// 31g per 100gm -> floor(77.5) = 77.
	if *scaled.Nutrients.Proteins != 77 {
		t.Fatalf("expected 77g protein, got %v", *scaled.Nutrients.Proteins)
	}
	if scaled.Consumed != 250 || scaled.Measurement != "100gm" {
		t.Fatalf("profile should echo consumption context, got %+v", scaled)
	}
}

func TestScaleIntakePerUnitDoesNotFloor(t *testing.T) {
	t.Parallel()
	cat := newTestCatalog(t)

	egg := mustLookup(t, cat, "boiled_egg")
	scaled, err := service.ScaleIntake(egg, 3)
	if err != nil {
		t.Fatalf("scale eggs: %v", err)
	}
	if scaled.Calories != 234 {
		t.Fatalf("expected 234 kcal for 3 eggs, got %v", scaled.Calories)
	}

	// Fractional counts keep their fractional values.
	ghee := mustLookup(t, cat, "ghee")
	scaled, err = service.ScaleIntake(ghee, 1.5)
	if err != nil {
		t.Fatalf("scale ghee: %v", err)
	}
	if scaled.Calories != 168 {
		t.Fatalf("expected 168 kcal for 1.5 tbsp ghee, got %v", scaled.Calories)
	}
	if scaled.Nutrients.TotalFats == nil || *scaled.Nutrients.TotalFats != 1.5*12.7 {
		t.Fatalf("expected unfloored fat value, got %+v", scaled.Nutrients.TotalFats)
	}
}

func TestScaleIntakePreservesUnknownNutrients(t *testing.T) {
	t.Parallel()
	cat := newTestCatalog(t)

	// Chicken has no recorded fiber, carbs or sugar.
	chicken := mustLookup(t, cat, "chicken_breast_grilled")
	scaled, err := service.ScaleIntake(chicken, 200)
	if err != nil {
		t.Fatalf("scale chicken: %v", err)
	}
	if scaled.Nutrients.Fiber != nil {
		t.Fatalf("unknown fiber must stay nil, got %v", *scaled.Nutrients.Fiber)
	}
	if scaled.Nutrients.Carbs != nil || scaled.Nutrients.Sugar != nil {
		t.Fatal("unknown carbs and sugar must stay nil")
	}
	if scaled.Nutrients.Sodium == nil || *scaled.Nutrients.Sodium != 148 {
		t.Fatalf("known sodium should scale, got %+v", scaled.Nutrients.Sodium)
	}
}

func TestScaleIntakeUnsupportedUnit(t *testing.T) {
	t.Parallel()

	food := &catalog.Food{
		ID:          "mystery",
		ItemName:    "Mystery Food",
		Calories:    120,
		Measurement: "1cup",
		Nutrients:   &catalog.Nutrients{Proteins: fptr(5)},
	}

	_, err := service.ScaleIntake(food, 2)
	if err == nil {
		t.Fatal("expected error for unsupported unit")
	}
	var unitErr *service.UnsupportedUnitError
	if !errors.As(err, &unitErr) {
		t.Fatalf("expected *UnsupportedUnitError, got %T", err)
	}
	if unitErr.Unit != "cup" {
		t.Fatalf("expected unit cup, got %q", unitErr.Unit)
	}

	// Compat mode reproduces the old passthrough: reference values come back
	// unchanged regardless of quantity.
	scaled, err := service.ScaleIntakeCompat(food, 2)
	if err != nil {
		t.Fatalf("compat scale: %v", err)
	}
	if scaled.Calories != 120 {
		t.Fatalf("compat mode should pass calories through, got %v", scaled.Calories)
	}
	if scaled.Nutrients.Proteins == nil || *scaled.Nutrients.Proteins != 5 {
		t.Fatalf("compat mode should pass nutrients through, got %+v", scaled.Nutrients.Proteins)
	}
}

func TestScaleIntakeRejectsMalformedReferenceServing(t *testing.T) {
	t.Parallel()

	food := &catalog.Food{ID: "broken", ItemName: "Broken", Calories: 100, Measurement: "gm"}
	_, err := service.ScaleIntake(food, 100)
	if err == nil {
		t.Fatal("expected error for malformed reference serving")
	}
	var formatErr *service.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *FormatError, got %T", err)
	}
}

func TestScaleIntakeNilNutrients(t *testing.T) {
	t.Parallel()

	food := &catalog.Food{ID: "plain", ItemName: "Plain", Calories: 50, Measurement: "100gm"}
	scaled, err := service.ScaleIntake(food, 200)
	if err != nil {
		t.Fatalf("scale: %v", err)
	}
	if scaled.Calories != 100 {
		t.Fatalf("expected 100 kcal, got %v", scaled.Calories)
	}
	if scaled.Nutrients != nil {
		t.Fatal("nil reference nutrients should stay nil")
	}
}
