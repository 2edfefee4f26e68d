package robot

import (
	"image"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Pose is the robot's top-left position in canvas space and its heading in
// degrees. Orientation accumulates without wrapping.
type Pose struct {
	Position    r2.Vec
	Orientation float64
}

// TopLeft returns the floored integer corner used to place the sprite.
func (p Pose) TopLeft() image.Point {
	return image.Point{
		X: int(math.Floor(p.Position.X)),
		Y: int(math.Floor(p.Position.Y)),
	}
}

// Center returns the body centre for a robot of the given geometry.
func (p Pose) Center(geo Geometry) r2.Vec {
	return r2.Add(p.Position, r2.Vec{X: geo.Width / 2, Y: geo.Height / 2})
}

// Sensors holds the three proximity readings for a single tick.
type Sensors struct {
	Forward bool
	Left    bool
	Right   bool
}

// Any reports whether at least one sensor is triggered.
func (s Sensors) Any() bool {
	return s.Forward || s.Left || s.Right
}

// Geometry describes the fixed robot body and sensor layout.
type Geometry struct {
	Width     float64
	Height    float64
	RayLength int
	// SideAngle is the offset of the right sensor from the heading; the left
	// sensor mirrors it.
	SideAngle float64
	TurnStep  float64
}

const (
	DefaultSize      = 80
	DefaultRayLength = 200
	DefaultSideAngle = 90
	DefaultTurnStep  = 4
)

// DefaultGeometry returns the 80x80 body with 200-step rays.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:     DefaultSize,
		Height:    DefaultSize,
		RayLength: DefaultRayLength,
		SideAngle: DefaultSideAngle,
		TurnStep:  DefaultTurnStep,
	}
}

// HeadingVector returns (sin, cos) of deg. Callers add X and subtract Y, so
// 0 degrees points up the screen.
func HeadingVector(deg float64) r2.Vec {
	rad := deg * math.Pi / 180
	return r2.Vec{X: math.Sin(rad), Y: math.Cos(rad)}
}

// screenStep converts a heading vector into a screen-space displacement.
func screenStep(v r2.Vec) r2.Vec {
	return r2.Vec{X: v.X, Y: -v.Y}
}

// NormalizeDegrees maps deg into [0, 360) for display.
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
