package richtext

import (
	"errors"
	"fmt"
)

// Sentinel errors for the richtext package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("richtext: empty font data")

	// ErrNilMetrics is returned when a Font is constructed without a
	// metrics provider.
	ErrNilMetrics = errors.New("richtext: nil metrics provider")

	// ErrFamilyFull is returned when registering more fonts than a Family
	// can address.
	ErrFamilyFull = errors.New("richtext: family already holds 16 fonts")
)

// UnknownFamilyError is returned when a family font name cannot be resolved.
type UnknownFamilyError struct {
	Name string
}

func (e *UnknownFamilyError) Error() string {
	return fmt.Sprintf("richtext: unknown family font %q", e.Name)
}
