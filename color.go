package metatext

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// TextColor returns the markup tag that switches the display color to c.
func TextColor(c colorful.Color) string {
	return "<textcolor=" + c.Clamped().Hex() + ">"
}

// ParseTextColor returns the markup tag for a "#rrggbb" or "#rgb" color.
func ParseTextColor(hex string) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("%w: color %q: %s", ErrInvalidOptions, hex, err)
	}
	return TextColor(c), nil
}

func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}
