package metatext

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidOptions    = errors.New("invalid options")
	ErrUnexpectedValue   = errors.New("unexpected value")
	ErrDecode            = errors.New("decode failed")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Default color tags. Tags are embedded verbatim and never closed; the
// display layer applies a color until the next tag or the end of the line.
const (
	DefaultLabelColor     = "<textcolor=#98f733>"
	DefaultValueColor     = "<textcolor=#ffffff>"
	DefaultHeaderColor    = "<textcolor=#ff6a00>"
	DefaultSeparatorColor = "<textcolor=#444444>"
)

// Entry is a single label with the values displayed next to it.
type Entry struct {
	Label  string
	Values []Value
}

// NewEntry returns an Entry for label with the given values.
func NewEntry(label string, values ...Value) Entry {
	return Entry{Label: label, Values: values}
}

// Options controls the layout of a report.
type Options struct {
	// MaxLines is the number of rows per column. Must be positive.
	MaxLines int

	// MinSpaceFromValue is the minimum number of spacer characters between
	// the longest label of a column and its values.
	MinSpaceFromValue int

	// Spacer fills the gap between a label and its value.
	Spacer rune

	// SpaceBetweenColumns is the width reserved between two column blocks.
	// The separator glyph is centered in it.
	SpaceBetweenColumns int

	// ColumnSeparator is drawn between columns.
	ColumnSeparator string

	// LabelColor, ValueColor and SeparatorColor are markup tags written
	// before labels, values and column separators. Empty means no tag.
	LabelColor     string
	ValueColor     string
	SeparatorColor string

	// Logger receives debug output about the computed layout. The zero
	// value discards everything.
	Logger logr.Logger
}

// DefaultOptions returns the layout used by the info overlays.
func DefaultOptions() Options {
	return Options{
		MaxLines:            24,
		MinSpaceFromValue:   3,
		Spacer:              '.',
		SpaceBetweenColumns: 3,
		ColumnSeparator:     "|",
		LabelColor:          DefaultLabelColor,
		ValueColor:          DefaultValueColor,
		SeparatorColor:      DefaultSeparatorColor,
	}
}

// Validate reports whether o can be used to render a report.
func (o Options) Validate() error {
	switch {
	case o.MaxLines <= 0:
		return fmt.Errorf("%w: max lines must be positive, got %d", ErrInvalidOptions, o.MaxLines)
	case o.MinSpaceFromValue < 0:
		return fmt.Errorf("%w: min space from value must not be negative, got %d", ErrInvalidOptions, o.MinSpaceFromValue)
	case o.SpaceBetweenColumns < 0:
		return fmt.Errorf("%w: space between columns must not be negative, got %d", ErrInvalidOptions, o.SpaceBetweenColumns)
	case o.Spacer == 0:
		return fmt.Errorf("%w: spacer is not set", ErrInvalidOptions)
	}
	return nil
}
