package icon

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-hclog"
)

// Generator draws and writes individual icons.
type Generator struct {
	cfg      Config
	logger   hclog.Logger
	reporter *Reporter
}

// NewGenerator creates a Generator. A nil logger discards log output and a
// nil reporter suppresses console notices.
func NewGenerator(cfg Config, logger hclog.Logger, reporter *Reporter) *Generator {
	return &Generator{
		cfg:      cfg,
		logger:   loggerOrNull(logger),
		reporter: reporter,
	}
}

// Filename returns the conventional file name for an icon of the given size.
func Filename(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// Render draws an icon of the given size in memory.
func (g *Generator) Render(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	img := newCanvas(size, g.cfg.Background)

	if size >= g.cfg.TextThreshold {
		fontSize := size / 3
		if fontSize <= 0 {
			return nil, fmt.Errorf("%w: %d is too small for text", ErrInvalidSize, size)
		}

		face, source := LoadFace(g.cfg.FontPath, fontSize, g.logger)
		defer face.Close()

		g.logger.Debug("drawing text", "size", size, "font_size", fontSize, "face", source)
		drawCentredText(img, face, g.cfg.Text, g.cfg.Foreground)
		return img, nil
	}

	margin := size / 4
	g.logger.Debug("drawing circle", "size", size, "margin", margin)
	fillEllipse(img, image.Rect(margin, margin, size-margin, size-margin), g.cfg.Foreground)

	return img, nil
}

// CreateIcon renders an icon of the given size and writes it to filename as PNG,
// replacing any existing file.
func (g *Generator) CreateIcon(size int, filename string) error {
	img, err := g.Render(size)
	if err != nil {
		return err
	}

	if err := writePNG(filename, img); err != nil {
		return err
	}

	g.logger.Debug("wrote icon", "path", filename, "size", size)
	g.reporter.Created(filename)

	return nil
}

// writePNG encodes img as PNG regardless of the file extension.
func writePNG(filename string, img image.Image) error {
	file, err := os.Create(filename) // #nosec G304 - output path is derived from configuration
	if err != nil {
		return fmt.Errorf("failed to create icon file: %w", err)
	}

	if err := imaging.Encode(file, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode icon %s: %w", filename, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write icon file: %w", err)
	}

	return nil
}
