// Package catalog holds the read-only food reference data the rest of the
// application scales and tracks against. The data ships embedded in the
// binary; lookups never touch the database.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed foods.json frequents.json
var dataFS embed.FS

// Nutrients carries per-reference-serving amounts. A nil field means the
// value is unknown for this food, which is different from zero.
type Nutrients struct {
	TotalFats       *float64 `json:"totalFats"`
	SaturatedFats   *float64 `json:"saturatedFats"`
	UnSaturatedFats *float64 `json:"unSaturatedFats"`
	Sugar           *float64 `json:"sugar"`
	Carbs           *float64 `json:"carbs"`
	Proteins        *float64 `json:"proteins"`
	Sodium          *float64 `json:"sodium"`
	Potassium       *float64 `json:"potassium"`
	Magnesium       *float64 `json:"magnesium"`
	VitaminA        *float64 `json:"vitaminA"`
	VitaminC        *float64 `json:"vitaminC"`
	VitaminD        *float64 `json:"vitaminD"`
	Fiber           *float64 `json:"fiber"`
	Calcium         *float64 `json:"calcium"`
	Iron            *float64 `json:"iron"`
}

// Food is one catalog entry. Calories and nutrient values are recorded per
// one reference serving (Measurement, e.g. "100gm" or "1piece").
type Food struct {
	ID          string     `json:"id"`
	ItemName    string     `json:"itemName"`
	Calories    float64    `json:"calories"`
	Measurement string     `json:"calorieMeasurement"`
	Nutrients   *Nutrients `json:"nutrients"`
	Taste       string     `json:"taste"`
	Region      []string   `json:"region"`
	MealTypes   []string   `json:"mealType"`
	IsVeg       bool       `json:"isVeg"`
	IsVegan     bool       `json:"isVegan"`
	Description string     `json:"description"`
	Note        string     `json:"note,omitempty"`
	SearchKeys  []string   `json:"searchKeys,omitempty"`
}

// RegionSlots maps a meal slot name to the region's frequently eaten food ids.
type RegionSlots map[string][]string

type Catalog struct {
	foods     map[string]*Food
	ordered   []*Food
	frequents map[string]RegionSlots
	search    searchCorpus
}

// Load parses the embedded catalog data. It is cheap enough to call once at
// startup; the returned Catalog is immutable and safe for concurrent reads.
func Load() (*Catalog, error) {
	rawFoods, err := dataFS.ReadFile("foods.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded foods: %w", err)
	}
	foods := map[string]*Food{}
	if err := json.Unmarshal(rawFoods, &foods); err != nil {
		return nil, fmt.Errorf("parse foods.json: %w", err)
	}
	for id, f := range foods {
		if f.ID == "" {
			f.ID = id
		}
	}

	rawFrequents, err := dataFS.ReadFile("frequents.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded frequents: %w", err)
	}
	frequents := map[string]RegionSlots{}
	if err := json.Unmarshal(rawFrequents, &frequents); err != nil {
		return nil, fmt.Errorf("parse frequents.json: %w", err)
	}

	ordered := make([]*Food, 0, len(foods))
	for _, f := range foods {
		ordered = append(ordered, f)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	return &Catalog{
		foods:     foods,
		ordered:   ordered,
		frequents: frequents,
		search:    buildSearchCorpus(ordered),
	}, nil
}

// Lookup returns the food with the given id, or nil when the catalog has no
// such entry.
func (c *Catalog) Lookup(id string) *Food {
	return c.foods[id]
}

// All returns every catalog entry in stable id order.
func (c *Catalog) All() []*Food {
	return c.ordered
}

func (c *Catalog) Len() int {
	return len(c.ordered)
}

// FrequentIDs returns the raw region table entry for a slot. Unknown regions
// and slots yield nil.
func (c *Catalog) FrequentIDs(region, slot string) []string {
	slots, ok := c.frequents[region]
	if !ok {
		return nil
	}
	return slots[slot]
}

// Regions lists the regions with frequent-food tables, sorted.
func (c *Catalog) Regions() []string {
	out := make([]string, 0, len(c.frequents))
	for region := range c.frequents {
		out = append(out, region)
	}
	sort.Strings(out)
	return out
}
