package service

import (
	"sort"
	"time"

	"github.com/manu2699/nutri-track/internal/model"
)

// MealTotals is the summed intake for one meal slot (or a whole day).
type MealTotals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
}

func (t *MealTotals) add(e model.TrackingEntry) {
	t.Calories += e.Calories
	t.ProteinG += e.ProteinG
	t.FatG += e.FatG
	t.FiberG += e.FiberG
}

// DailyAggregate groups one day's tracking entries by meal slot. The slot is
// a pass-through grouping key: entries with non-standard slot values keep
// their literal slot.
type DailyAggregate struct {
	BySlot map[string]MealTotals `json:"by_slot"`
	Total  MealTotals            `json:"total"`
}

// ProgressRecord is one calendar day inside a progress range: its aggregate
// plus the entries that produced it.
type ProgressRecord struct {
	Date      string               `json:"date"`
	Aggregate DailyAggregate       `json:"aggregate"`
	Entries   []model.TrackingEntry `json:"entries"`
}

// AggregateDay sums calories, protein, fat and fiber per meal slot and in
// total. Pure function of its input: the same entries always produce the
// same aggregate.
func AggregateDay(entries []model.TrackingEntry) DailyAggregate {
	agg := DailyAggregate{BySlot: map[string]MealTotals{}}
	for _, e := range entries {
		slotTotals := agg.BySlot[e.MealSlot]
		slotTotals.add(e)
		agg.BySlot[e.MealSlot] = slotTotals
		agg.Total.add(e)
	}
	return agg
}

// AggregateRange buckets entries by local calendar day and aggregates each
// bucket. Days inside [from, to] with no entries are omitted; records come
// back in ascending date order.
func AggregateRange(entries []model.TrackingEntry, from, to time.Time) []ProgressRecord {
	start := beginningOfDay(from)
	end := beginningOfDay(to).Add(24 * time.Hour)

	byDay := map[string][]model.TrackingEntry{}
	for _, e := range entries {
		at := e.EatenAt.Local()
		if at.Before(start) || !at.Before(end) {
			continue
		}
		day := at.Format("2006-01-02")
		byDay[day] = append(byDay[day], e)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	records := make([]ProgressRecord, 0, len(days))
	for _, day := range days {
		records = append(records, ProgressRecord{
			Date:      day,
			Aggregate: AggregateDay(byDay[day]),
			Entries:   byDay[day],
		})
	}
	return records
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
