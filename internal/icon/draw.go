package icon

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/jmylchreest/placeicon/internal/colour"
)

// kappa is the control point distance for approximating a quarter ellipse with a cubic Bézier.
const kappa = 0.5522847498

// newCanvas allocates a square opaque canvas filled with bg.
func newCanvas(size int, bg colour.RGB) *image.NRGBA {
	return imaging.New(size, size, bg.NRGBA())
}

// fillEllipse draws an anti-aliased filled ellipse inscribed in r.
func fillEllipse(dst *image.NRGBA, r image.Rectangle, fg colour.RGB) {
	cx := float32(r.Min.X+r.Max.X) / 2
	cy := float32(r.Min.Y+r.Max.Y) / 2
	rx := float32(r.Dx()) / 2
	ry := float32(r.Dy()) / 2
	kx, ky := rx*kappa, ry*kappa

	b := dst.Bounds()
	var z vector.Rasterizer
	z.Reset(b.Dx(), b.Dy())

	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()

	z.Draw(dst, b, image.NewUniform(fg.NRGBA()), image.Point{})
}

// textBox measures text in face and returns its ink bounds relative to the dot.
func textBox(face font.Face, text string) (bounds fixed.Rectangle26_6, width, height int) {
	bounds, _ = font.BoundString(face, text)
	width = (bounds.Max.X - bounds.Min.X).Ceil()
	height = (bounds.Max.Y - bounds.Min.Y).Ceil()
	return bounds, width, height
}

// drawCentredText draws text so that its ink bounding box sits in the middle of dst.
func drawCentredText(dst *image.NRGBA, face font.Face, text string, fg colour.RGB) {
	size := dst.Bounds().Dx()
	bounds, w, h := textBox(face, text)

	// Top-left of the ink box.
	x := (size - w) / 2
	y := (size - h) / 2

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg.NRGBA()),
		Face: face,
		Dot:  fixed.P(x-bounds.Min.X.Floor(), y-bounds.Min.Y.Floor()),
	}
	d.DrawString(text)
}
