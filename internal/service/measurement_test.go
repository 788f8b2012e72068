package service_test

import (
	"errors"
	"testing"

	"github.com/manu2699/nutri-track/internal/service"
)

func TestParseMeasurement(t *testing.T) {
	t.Parallel()

	cases := []struct {
		descriptor string
		quantity   float64
		unit       string
	}{
		{"100gm", 100, "gm"},
		{"1piece", 1, "piece"},
		{"2.5tbsp", 2.5, "tbsp"},
		{"250ml", 250, "ml"},
		{"0.5tsp", 0.5, "tsp"},
	}
	for _, tc := range cases {
		m, err := service.ParseMeasurement(tc.descriptor)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.descriptor, err)
		}
		if m.Quantity != tc.quantity || m.Unit != tc.unit {
			t.Fatalf("parse %q: got %+v, want quantity %v unit %q", tc.descriptor, m, tc.quantity, tc.unit)
		}
	}
}

func TestParseMeasurementRejectsMalformedDescriptors(t *testing.T) {
	t.Parallel()

	for _, descriptor := range []string{
		"",
		"gm100",
		"100",
		"gm",
		"100 gm",
		"-50gm",
		"1.2.3gm",
		"100gm extra",
		"0gm",
		"0piece",
	} {
		_, err := service.ParseMeasurement(descriptor)
		if err == nil {
			t.Fatalf("expected error for %q", descriptor)
		}
		var formatErr *service.FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("expected *FormatError for %q, got %T", descriptor, err)
		}
		if formatErr.Descriptor != descriptor {
			t.Fatalf("error should carry the descriptor %q, got %q", descriptor, formatErr.Descriptor)
		}
	}
}
