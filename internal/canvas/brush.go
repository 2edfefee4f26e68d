package canvas

import (
	"image"
	"image/color"
	"sync"
)

var (
	footprintMu    sync.Mutex
	footprintCache = map[int][]image.Point{}
)

// footprint returns the offsets of every pixel within radius of the origin.
func footprint(radius int) []image.Point {
	footprintMu.Lock()
	defer footprintMu.Unlock()
	if fp, ok := footprintCache[radius]; ok {
		return fp
	}
	fp := precomputeFootprint(radius)
	footprintCache[radius] = fp
	return fp
}

func precomputeFootprint(radius int) []image.Point {
	if radius < 0 {
		return nil
	}
	points := make([]image.Point, 0, (2*radius+1)*(2*radius+1))
	r2 := radius * radius
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= r2 {
				points = append(points, image.Point{X: x, Y: y})
			}
		}
	}
	return points
}

// Paint fills a disc of radius pixels centred on x, y, clipped to the canvas.
func (c *Canvas) Paint(x, y, radius int, clr color.RGBA) {
	for _, off := range footprint(radius) {
		c.Set(x+off.X, y+off.Y, clr)
	}
}

// PaintWall paints a disc of WallColor.
func (c *Canvas) PaintWall(x, y, radius int) {
	c.Paint(x, y, radius, WallColor)
}

// Erase paints a disc of Background.
func (c *Canvas) Erase(x, y, radius int) {
	c.Paint(x, y, radius, Background)
}

// PaintStroke paints discs along the segment from (x0, y0) to (x1, y1) so fast
// mouse drags leave a continuous line.
func (c *Canvas) PaintStroke(x0, y0, x1, y1, radius int, clr color.RGBA) {
	WalkLine(x0, y0, x1, y1, func(x, y int) {
		c.Paint(x, y, radius, clr)
	})
}
