package service

import "fmt"

// FormatError reports a reference-serving descriptor that does not match the
// <number><unit> shape. It is never defaulted away.
type FormatError struct {
	Descriptor string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid measurement %q: expected <number><unit>, e.g. 100gm", e.Descriptor)
}

// DomainError reports a value outside a closed enumeration, such as an
// unknown gender or activity level.
type DomainError struct {
	Field string
	Value string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("unrecognized %s %q", e.Field, e.Value)
}

// UnsupportedUnitError reports a reference-serving unit the intake scaler has
// no rule for. The historical behavior was to silently pass values through
// unscaled; see ScaleIntakeCompat for that mode.
type UnsupportedUnitError struct {
	Unit string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unsupported serving unit %q", e.Unit)
}
