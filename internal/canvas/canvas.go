package canvas

import (
	"image"
	"image/color"
)

var (
	// WallColor marks obstacle pixels (ARGB 0xFF00FF00).
	WallColor = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	// Background is the cleared canvas colour.
	Background = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Canvas is a paintable RGBA pixel buffer shared by the brush and the robot
// sensors.
type Canvas struct {
	img *image.RGBA
}

// New allocates a width x height canvas filled with Background.
func New(width, height int) *Canvas {
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	c.Clear()
	return c
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) inBounds(x, y int) bool {
	w, h := c.Size()
	return x >= 0 && x < w && y >= 0 && y < h
}

// At returns the pixel colour at x, y, or Background outside the canvas.
func (c *Canvas) At(x, y int) color.RGBA {
	if !c.inBounds(x, y) {
		return Background
	}
	return c.img.RGBAAt(x, y)
}

// IsWall reports whether the pixel at x, y carries WallColor.
func (c *Canvas) IsWall(x, y int) bool {
	return c.inBounds(x, y) && c.At(x, y) == WallColor
}

// Set writes a single pixel, ignoring coordinates outside the canvas.
func (c *Canvas) Set(x, y int, clr color.RGBA) {
	if !c.inBounds(x, y) {
		return
	}
	c.img.SetRGBA(x, y, clr)
}

// Clear fills the whole canvas with Background.
func (c *Canvas) Clear() {
	pix := c.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = Background.R
		pix[i+1] = Background.G
		pix[i+2] = Background.B
		pix[i+3] = Background.A
	}
}

// Pix exposes the raw RGBA bytes in row-major order for uploading to the
// screen. Callers must not retain it across canvas writes.
func (c *Canvas) Pix() []byte {
	return c.img.Pix
}
