package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidOptions is returned (wrapped) when a scale preset, notation or
// format string cannot be parsed.
var ErrInvalidOptions = errors.New("invalid render options")

// Scale selects the y-axis transform and tick density.
type Scale string

const (
	ScaleNone     Scale = "none"
	ScaleStandard Scale = "standard"
	ScaleFine     Scale = "fine"
	ScaleWide     Scale = "wide"
)

// ParseScale parses a scale preset name.
func ParseScale(s string) (Scale, error) {
	switch Scale(strings.ToLower(strings.TrimSpace(s))) {
	case ScaleNone, "":
		return ScaleNone, nil
	case ScaleStandard:
		return ScaleStandard, nil
	case ScaleFine:
		return ScaleFine, nil
	case ScaleWide:
		return ScaleWide, nil
	}
	return "", fmt.Errorf("%w: unknown scale preset %q (want none, standard, fine or wide)", ErrInvalidOptions, s)
}

// Notation selects how y-axis tick labels are written.
type Notation string

const (
	NotationScientific Notation = "s"
	NotationDecimal    Notation = "d"
)

// ParseNotation parses a notation selector.
func ParseNotation(s string) (Notation, error) {
	switch Notation(strings.ToLower(strings.TrimSpace(s))) {
	case NotationScientific, "":
		return NotationScientific, nil
	case NotationDecimal:
		return NotationDecimal, nil
	}
	return "", fmt.Errorf("%w: unknown notation %q (want s or d)", ErrInvalidOptions, s)
}

// String spells the notation out for summaries.
func (n Notation) String() string {
	if n == NotationDecimal {
		return "decimal"
	}
	return "scientific"
}

// Format is the output image encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// FormatForPath picks the output format from a filename extension.
// Everything that is not .svg renders as PNG.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return FormatSVG
	}
	return FormatPNG
}

// Options configure one chart rendering.
type Options struct {
	Scale    Scale
	Notation Notation
	DPI      int
	Format   Format
}

// DefaultDPI matches the CLI default.
const DefaultDPI = 300

func (o Options) withDefaults() Options {
	if o.Scale == "" {
		o.Scale = ScaleNone
	}
	if o.Notation == "" {
		o.Notation = NotationScientific
	}
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
	if o.Format == "" {
		o.Format = FormatPNG
	}
	return o
}
