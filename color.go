package cuberobot

import (
	"fmt"
	"strings"
)

// Color represents a facelet color.
type Color byte

const (
	NoColor Color = iota
	White
	Red
	Yellow
	Green
	Orange
	Blue
)

// Colors lists the six recognized facelet colors.
var Colors = []Color{White, Red, Yellow, Green, Orange, Blue}

var colorInfo = map[Color]struct {
	label byte
	hex   string
	name  string
}{
	White:  {'w', "#ffffff", "white"},
	Red:    {'r', "#ff0000", "red"},
	Yellow: {'y', "#ffff00", "yellow"},
	Green:  {'g', "#00ff00", "green"},
	Orange: {'o', "#ff8000", "orange"},
	Blue:   {'b', "#0000ff", "blue"},
}

// Label returns the one-letter cube-state label (w, r, y, g, o, b).
func (c Color) Label() byte {
	if info, ok := colorInfo[c]; ok {
		return info.label
	}
	return '?'
}

// Hex returns the palette hex string, e.g. "#ff8000".
func (c Color) Hex() string {
	return colorInfo[c].hex
}

// Name returns the lower-case color name.
func (c Color) Name() string {
	if info, ok := colorInfo[c]; ok {
		return info.name
	}
	return "none"
}

func (c Color) String() string {
	return string(c.Label())
}

// Valid reports whether c is one of the six recognized colors.
func (c Color) Valid() bool {
	_, ok := colorInfo[c]
	return ok
}

// ColorFromLabel maps a cube-state label back to its color.
func ColorFromLabel(label byte) (Color, error) {
	for c, info := range colorInfo {
		if info.label == label {
			return c, nil
		}
	}
	return NoColor, fmt.Errorf("%w: label %q", ErrUnknownColor, label)
}

// ParseColor accepts a palette hex string ("#FF8000"), a label ("o") or a
// name ("orange"), case-insensitively. Anything else is ErrUnknownColor.
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return NoColor, fmt.Errorf("%w: empty", ErrUnknownColor)
	}

	if len(v) == 1 {
		return ColorFromLabel(v[0])
	}

	for c, info := range colorInfo {
		if v == info.hex || v == info.name {
			return c, nil
		}
	}

	return NoColor, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// ParseColors parses a list of color strings, stopping at the first error.
func ParseColors(values []string) ([]Color, error) {
	colors := make([]Color, len(values))
	for i, v := range values {
		c, err := ParseColor(v)
		if err != nil {
			return nil, fmt.Errorf("facelet %d: %w", i+1, err)
		}
		colors[i] = c
	}
	return colors, nil
}
