// Package icon generates placeholder square PNG icons.
//
// Each icon is a solid background with either a short centred label (for
// sizes at or above Config.TextThreshold) or a centred filled circle.
package icon

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/placeicon/internal/colour"
)

// Default values for the placeholder icon set.
const (
	DefaultBackground    = "#0A66C2"
	DefaultForeground    = "#FFFFFF"
	DefaultText          = "AI"
	DefaultTextThreshold = 32
	DefaultFontPath      = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
	DefaultOutputDir     = "."
)

// DefaultSizes are the icon sizes a browser extension manifest expects, in generation order.
var DefaultSizes = []int{16, 48, 128}

// ErrInvalidSize is returned for sizes that cannot produce a drawable icon.
var ErrInvalidSize = errors.New("invalid icon size")

// Config holds the fixed parameters of an icon run.
type Config struct {
	// Sizes lists the square pixel sizes to generate, in order.
	Sizes []int

	// Background fills the whole canvas.
	Background colour.RGB

	// Foreground is used for the label and the circle.
	Foreground colour.RGB

	// Text is drawn on icons whose size is at least TextThreshold.
	Text string

	// TextThreshold is the smallest size that gets a text label instead of a circle.
	TextThreshold int

	// FontPath is the preferred TrueType/OpenType font. A missing or invalid
	// file falls back to a built-in face.
	FontPath string

	// OutputDir receives the generated files.
	OutputDir string
}

// DefaultConfig returns the configuration of the placeholder icon set.
func DefaultConfig() Config {
	return Config{
		Sizes:         append([]int(nil), DefaultSizes...),
		Background:    colour.MustParseHex(DefaultBackground),
		Foreground:    colour.MustParseHex(DefaultForeground),
		Text:          DefaultText,
		TextThreshold: DefaultTextThreshold,
		FontPath:      DefaultFontPath,
		OutputDir:     DefaultOutputDir,
	}
}

// Validate checks the configuration for values that would fail every icon.
// Low foreground/background contrast is only logged.
func (c Config) Validate(logger hclog.Logger) error {
	if len(c.Sizes) == 0 {
		return errors.New("no icon sizes configured")
	}
	for _, size := range c.Sizes {
		if size <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidSize, size)
		}
	}
	if c.Text == "" {
		return errors.New("icon text cannot be empty")
	}

	if ratio := colour.ContrastRatio(c.Foreground, c.Background); ratio < colour.MinLargeTextContrast {
		loggerOrNull(logger).Warn("low contrast between foreground and background",
			"foreground", c.Foreground.Hex(),
			"background", c.Background.Hex(),
			"ratio", ratio)
	}

	return nil
}

func loggerOrNull(logger hclog.Logger) hclog.Logger {
	if logger == nil {
		return hclog.NewNullLogger()
	}
	return logger
}
