package service

import (
	"regexp"
	"strconv"
)

var measurementPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)([a-zA-Z]+)$`)

// Measurement is a parsed reference-serving descriptor such as "100gm" or
// "1piece".
type Measurement struct {
	Quantity float64
	Unit     string
}

// ParseMeasurement splits a serving descriptor into its magnitude and unit
// tag. There is no partial parsing: anything that does not match
// <number><unit>, or carries a zero magnitude, fails with *FormatError.
func ParseMeasurement(descriptor string) (Measurement, error) {
	m := measurementPattern.FindStringSubmatch(descriptor)
	if m == nil {
		return Measurement{}, &FormatError{Descriptor: descriptor}
	}
	quantity, err := strconv.ParseFloat(m[1], 64)
	if err != nil || quantity <= 0 {
		return Measurement{}, &FormatError{Descriptor: descriptor}
	}
	return Measurement{Quantity: quantity, Unit: m[2]}, nil
}
