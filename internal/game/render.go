package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"robotmaze/internal/canvas"
	"robotmaze/internal/robot"
)

var (
	forwardTraceColor = color.RGBA{R: 255, A: 255}
	leftTraceColor    = color.RGBA{B: 255, A: 255}
	rightTraceColor   = color.RGBA{R: 255, G: 140, A: 255}
	headingColor      = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// Draw renders the canvas, the sensor traces, the robot and the optional
// debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.canvas.Pix())

	t := g.ctrl.Last()
	drawTrace(screen, t.Forward, forwardTraceColor)
	drawTrace(screen, t.Left, leftTraceColor)
	drawTrace(screen, t.Right, rightTraceColor)

	g.drawRobot(screen)

	if g.cfg.Debug {
		g.drawHeading(screen)
		ebitenutil.DebugPrint(screen, debugText(g.ctrl.Pose(), t.Sensors, g.ctrl.Autopilot(), ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// drawTrace plots the samples a sensor took before it was blocked.
func drawTrace(screen *ebiten.Image, r robot.Ray, clr color.Color) {
	for _, p := range r.Points {
		screen.Set(p.X, p.Y, clr)
	}
}

// drawRobot places the sprite at the floored top-left corner, scaled to the
// robot body and rotated clockwise about its centre.
func (g *Game) drawRobot(screen *ebiten.Image) {
	geo := g.ctrl.Geometry()
	pose := g.ctrl.Pose()
	b := g.sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(geo.Width/float64(b.Dx()), geo.Height/float64(b.Dy()))
	op.GeoM.Translate(-geo.Width/2, -geo.Height/2)
	op.GeoM.Rotate(robot.NormalizeDegrees(pose.Orientation) * math.Pi / 180)
	op.GeoM.Translate(geo.Width/2, geo.Height/2)
	tl := pose.TopLeft()
	op.GeoM.Translate(float64(tl.X), float64(tl.Y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.sprite, op)
}

// drawHeading draws a short line from the body centre along the heading.
func (g *Game) drawHeading(screen *ebiten.Image) {
	geo := g.ctrl.Geometry()
	pose := g.ctrl.Pose()
	c := pose.Center(geo)
	v := robot.HeadingVector(pose.Orientation)
	reach := math.Max(geo.Width, geo.Height) * 0.75
	drawLine(screen, int(c.X), int(c.Y), int(c.X+v.X*reach), int(c.Y-v.Y*reach), headingColor)
}

func debugText(p robot.Pose, s robot.Sensors, autopilot bool, fps, tps float64) string {
	return fmt.Sprintf("FPS: %.1f TPS: %.1f\nPose: (%.1f, %.1f) %.1f deg\nSensors: F=%t L=%t R=%t\nAutopilot: %t (P)",
		fps, tps, p.Position.X, p.Position.Y, robot.NormalizeDegrees(p.Orientation),
		s.Forward, s.Left, s.Right, autopilot)
}

// drawLine plots a line segment clipped to the screen.
func drawLine(screen *ebiten.Image, x0, y0, x1, y1 int, clr color.Color) {
	b := screen.Bounds()
	canvas.WalkLine(x0, y0, x1, y1, func(x, y int) {
		if image.Pt(x, y).In(b) {
			screen.Set(x, y, clr)
		}
	})
}
