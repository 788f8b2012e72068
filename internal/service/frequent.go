package service

import "github.com/manu2699/nutri-track/internal/catalog"

// FrequentFoods resolves the frequently eaten foods for a region and meal
// slot to display names. Late-night borrows dinner's list; brunch combines
// breakfast and lunch, breakfast first. Unknown regions resolve to an empty
// list, and ids missing from the catalog are dropped. Never errors.
func FrequentFoods(cat *catalog.Catalog, region, slot string) []string {
	var ids []string
	switch slot {
	case SlotLateNight:
		ids = cat.FrequentIDs(region, SlotDinner)
	case SlotBrunch:
		ids = append(ids, cat.FrequentIDs(region, SlotBreakfast)...)
		ids = append(ids, cat.FrequentIDs(region, SlotLunch)...)
	default:
		ids = cat.FrequentIDs(region, slot)
	}

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		food := cat.Lookup(id)
		if food == nil {
			continue
		}
		names = append(names, food.ItemName)
	}
	return names
}
