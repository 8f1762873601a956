// Package colour provides the colour type and conversions used for icon drawing.
package colour

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB represents an opaque colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// White is the default glyph colour.
var White = RGB{R: 0xff, G: 0xff, B: 0xff}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#0a66c2").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// NRGBA returns the colour as a fully opaque color.NRGBA.
func (rgb RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff}
}

// RGBA implements color.Color.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return rgb.NRGBA().RGBA()
}

// ToRGB converts a color.Color to RGB, dropping alpha.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255].
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ParseHex parses a hex colour string into an RGB struct.
// Supports formats: #RRGGBB, RRGGBB, #RGB, RGB.
func ParseHex(hex string) (RGB, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour length: expected 6 characters, got %d", len(hex))
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid red component: %w", err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid green component: %w", err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid blue component: %w", err)
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for package-level constants.
func MustParseHex(hex string) RGB {
	rgb, err := ParseHex(hex)
	if err != nil {
		panic(fmt.Sprintf("colour: %q: %v", hex, err))
	}
	return rgb
}
