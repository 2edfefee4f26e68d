package canvas

import (
	"image"
	"math/rand"
)

// WallOptions controls random wall generation.
type WallOptions struct {
	Segments          int
	MinLen            int
	MaxLen            int
	ThicknessVariance int
	// Keep is a point no wall pixel may come closer to than KeepRadius.
	Keep       image.Point
	KeepRadius int
}

// DefaultWallOptions mirrors the level density of a 900x900 arena.
func DefaultWallOptions() WallOptions {
	return WallOptions{
		Segments:          12,
		MinLen:            60,
		MaxLen:            260,
		ThicknessVariance: 3,
	}
}

// GenerateWalls scatters random horizontal and vertical wall segments over c
// and returns the number of pixels painted.
func GenerateWalls(c *Canvas, rng *rand.Rand, opts WallOptions) int {
	w, h := c.Size()
	if w < 5 || h < 5 {
		return 0
	}
	painted := 0
	for s := 0; s < opts.Segments; s++ {
		lengthRange := opts.MaxLen - opts.MinLen + 1
		if lengthRange <= 0 {
			lengthRange = 1
		}
		length := opts.MinLen + rng.Intn(lengthRange)
		thickness := 1
		if opts.ThicknessVariance > 0 {
			thickness += rng.Intn(opts.ThicknessVariance + 1)
		}
		horizontal := rng.Intn(2) == 0
		x := rng.Intn(w-4) + 2
		y := rng.Intn(h-4) + 2
		dx, dy := 0, 1
		if horizontal {
			dx, dy = 1, 0
		}
		perpX, perpY := dy, dx
		cx, cy := x, y
		for l := 0; l < length; l++ {
			if cx <= 1 || cx >= w-1 || cy <= 1 || cy >= h-1 {
				break
			}
			for t := -thickness; t <= thickness; t++ {
				if c.trySetWall(cx+perpX*t, cy+perpY*t, opts) {
					painted++
				}
			}
			cx += dx
			cy += dy
		}
	}
	return painted
}

// trySetWall paints one wall pixel unless it is on the border or inside the
// keep-out radius.
func (c *Canvas) trySetWall(x, y int, opts WallOptions) bool {
	w, h := c.Size()
	if x <= 1 || x >= w-1 || y <= 1 || y >= h-1 {
		return false
	}
	dx := x - opts.Keep.X
	dy := y - opts.Keep.Y
	if dx*dx+dy*dy < opts.KeepRadius*opts.KeepRadius {
		return false
	}
	if c.IsWall(x, y) {
		return false
	}
	c.Set(x, y, WallColor)
	return true
}
