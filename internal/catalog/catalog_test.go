package catalog_test

import (
	"testing"

	"github.com/manu2699/nutri-track/internal/catalog"
)

func TestLoadCatalog(t *testing.T) {
	t.Parallel()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if cat.Len() == 0 {
		t.Fatalf("expected embedded foods")
	}
	if len(cat.Regions()) == 0 {
		t.Fatalf("expected frequent-food regions")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	food := cat.Lookup("white_rice_cooked")
	if food == nil {
		t.Fatalf("expected white_rice_cooked in catalog")
	}
	if food.ItemName != "White Rice (cooked)" {
		t.Fatalf("unexpected item name %q", food.ItemName)
	}
	if food.Measurement != "100gm" {
		t.Fatalf("unexpected measurement %q", food.Measurement)
	}
	if food.Nutrients == nil || food.Nutrients.Proteins == nil {
		t.Fatalf("expected protein value for rice")
	}

	if cat.Lookup("no_such_food") != nil {
		t.Fatalf("expected nil for unknown id")
	}
}

func TestEveryFoodHasParsableMeasurement(t *testing.T) {
	t.Parallel()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	for _, f := range cat.All() {
		if f.Measurement == "" {
			t.Fatalf("food %s has empty measurement", f.ID)
		}
	}
}

func TestFrequentIDsUnknownRegion(t *testing.T) {
	t.Parallel()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if ids := cat.FrequentIDs("atlantis", "breakfast"); ids != nil {
		t.Fatalf("expected nil for unknown region, got %v", ids)
	}
}

func TestSearchMatchesNameAndKeys(t *testing.T) {
	t.Parallel()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	results := cat.Search("dosa")
	if len(results) == 0 {
		t.Fatalf("expected results for dosa")
	}
	if results[0].ID != "dosa_plain" {
		t.Fatalf("expected dosa_plain ranked first, got %s", results[0].ID)
	}

	// "dahi" only exists as a search key on curd.
	results = cat.Search("dahi")
	found := false
	for _, f := range results {
		if f.ID == "curd" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected curd to match search key dahi")
	}
}

func TestSearchIsStableAcrossCalls(t *testing.T) {
	t.Parallel()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	first := cat.Search("rice")
	second := cat.Search("rice")
	if len(first) == 0 {
		t.Fatalf("expected results for rice")
	}
	if len(first) != len(second) {
		t.Fatalf("result count changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("ranking changed between calls at %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestSearchShortQuery(t *testing.T) {
	t.Parallel()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if results := cat.Search("a"); results != nil {
		t.Fatalf("expected no results for single-char query")
	}
}
