package service_test

import (
	"testing"
	"time"

	"github.com/manu2699/nutri-track/internal/service"
)

func TestClassifySlot(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hour int
		want string
	}{
		{5, service.SlotBreakfast},
		{8, service.SlotBreakfast},
		{10, service.SlotBreakfast},
		{11, service.SlotBrunch},
		{12, service.SlotLunch},
		{15, service.SlotLunch},
		{16, service.SlotSnacks},
		{17, service.SlotSnacks},
		{18, service.SlotDinner},
		{22, service.SlotDinner},
		{23, service.SlotLateNight},
		{0, service.SlotLateNight},
		{3, service.SlotLateNight},
		{4, service.SlotSnacks},
	}
	for _, tc := range cases {
		at := time.Date(2026, 8, 20, tc.hour, 30, 0, 0, time.Local)
		if got := service.ClassifySlot(at); got != tc.want {
			t.Fatalf("hour %d classified as %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestClassifySlotCoversEveryHour(t *testing.T) {
	t.Parallel()

	known := map[string]bool{}
	for _, slot := range service.MealSlots() {
		known[slot] = true
	}
	for hour := 0; hour < 24; hour++ {
		at := time.Date(2026, 8, 20, hour, 0, 0, 0, time.Local)
		slot := service.ClassifySlot(at)
		if !known[slot] {
			t.Fatalf("hour %d mapped to unknown slot %q", hour, slot)
		}
	}
}
