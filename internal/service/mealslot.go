package service

import "time"

const (
	SlotBreakfast = "breakfast"
	SlotBrunch    = "brunch"
	SlotLunch     = "lunch"
	SlotSnacks    = "snacks"
	SlotDinner    = "dinner"
	SlotLateNight = "late-night"
)

// MealSlots lists the standard slots in display order.
func MealSlots() []string {
	return []string{SlotBreakfast, SlotBrunch, SlotLunch, SlotSnacks, SlotDinner, SlotLateNight}
}

// ClassifySlot maps a timestamp to the meal slot its local hour falls in.
// Every hour of the day maps to exactly one slot.
func ClassifySlot(t time.Time) string {
	hour := t.Local().Hour()
	switch {
	case hour >= 5 && hour < 11:
		return SlotBreakfast
	case hour == 11:
		return SlotBrunch
	case hour >= 12 && hour < 16:
		return SlotLunch
	case hour >= 18 && hour < 23:
		return SlotDinner
	case hour >= 23 || hour < 4:
		return SlotLateNight
	default:
		return SlotSnacks
	}
}
