package icon

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// FaceSource records which face LoadFace ended up with.
type FaceSource string

const (
	// FacePreferred is the font read from Config.FontPath.
	FacePreferred FaceSource = "preferred"
	// FaceBuiltin is the embedded Go Bold face.
	FaceBuiltin FaceSource = "builtin"
	// FaceBitmap is the fixed 7x13 bitmap face, used only if Go Bold cannot be parsed.
	FaceBitmap FaceSource = "bitmap"
)

// LoadFace returns a face for the font at path, sized to px pixels.
// It never fails: a missing, unreadable or invalid font file falls back to
// the embedded Go Bold face, and that to basicfont.Face7x13.
// The caller owns the returned face and should Close it.
func LoadFace(path string, px int, logger hclog.Logger) (font.Face, FaceSource) {
	logger = loggerOrNull(logger)

	face, err := openFace(path, px)
	if err == nil {
		logger.Debug("loaded font", "path", path, "size", px)
		return face, FacePreferred
	}
	logger.Debug("preferred font unavailable, using built-in face", "path", path, "error", err)

	face, err = parseFace(gobold.TTF, px)
	if err == nil {
		return face, FaceBuiltin
	}
	logger.Debug("built-in face unavailable, using bitmap face", "error", err)

	return basicfont.Face7x13, FaceBitmap
}

func openFace(path string, px int) (font.Face, error) {
	if path == "" {
		return nil, fmt.Errorf("no font path configured")
	}

	data, err := os.ReadFile(path) // #nosec G304 - font path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}

	return parseFace(data, px)
}

func parseFace(data []byte, px int) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	// 72 DPI makes the point size equal to the pixel size.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	return face, nil
}
