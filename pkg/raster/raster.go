// Package raster provides the offscreen drawing surface used by room
// detection. Obstacle shapes (walls, opening closures) are painted black on
// a white canvas, then read back as a grayscale buffer. The surface lives
// entirely within a single call - created, drawn to, read, discarded.
package raster

import (
	"image"

	"github.com/fogleman/gg"
)

// Bitmap is an in-memory 2D canvas with obstacle-painting primitives.
type Bitmap struct {
	width  int
	height int
	dc     *gg.Context
}

// New creates a white width x height canvas.
func New(width, height int) *Bitmap {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	return &Bitmap{width: width, height: height, dc: dc}
}

// Width returns the canvas width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the canvas height in pixels.
func (b *Bitmap) Height() int { return b.height }

// StrokeLine paints a thick black line with round end caps. The caps keep
// wall corners sealed: two strokes meeting at a corner overlap in a disc
// instead of leaving a notch the flood fill could leak through.
func (b *Bitmap) StrokeLine(x1, y1, x2, y2, thickness float64) {
	b.dc.SetLineWidth(thickness)
	b.dc.SetLineCapRound()
	b.dc.DrawLine(x1, y1, x2, y2)
	b.dc.Stroke()
}

// FillRotatedRect paints a black rectangle of size w x h centered on
// (cx, cy), rotated by rotationDeg degrees about its center.
func (b *Bitmap) FillRotatedRect(cx, cy, w, h, rotationDeg float64) {
	b.dc.Push()
	b.dc.RotateAbout(gg.Radians(rotationDeg), cx, cy)
	b.dc.DrawRectangle(cx-w/2, cy-h/2, w, h)
	b.dc.Fill()
	b.dc.Pop()
}

// FillCircle paints a black disc centered on (cx, cy).
func (b *Bitmap) FillCircle(cx, cy, r float64) {
	b.dc.DrawCircle(cx, cy, r)
	b.dc.Fill()
}

// Luminance reads back the whole canvas as a row-major grayscale buffer
// using the Rec. 601 weights. White (open floor) is 255, painted obstacles
// are near 0.
func (b *Bitmap) Luminance() []uint8 {
	img := b.dc.Image()
	out := make([]uint8, b.width*b.height)

	// gg contexts are backed by *image.RGBA; index the raster directly.
	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < b.height; y++ {
			row := rgba.PixOffset(rgba.Rect.Min.X, rgba.Rect.Min.Y+y)
			for x := 0; x < b.width; x++ {
				p := rgba.Pix[row+x*4 : row+x*4+3]
				out[y*b.width+x] = luma(p[0], p[1], p[2])
			}
		}
		return out
	}

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			out[y*b.width+x] = luma(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		}
	}
	return out
}

// Image returns the underlying image, for rendering or debugging dumps.
func (b *Bitmap) Image() image.Image { return b.dc.Image() }

func luma(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}
