package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"robotmaze/internal/canvas"
	"robotmaze/internal/robot"
)

// keyTracker remembers the last direction key pressed until that key is
// released.
type keyTracker struct {
	current robot.Input
}

func (k *keyTracker) update(pressed, released []robot.Input) robot.Input {
	for _, in := range released {
		if in == k.current {
			k.current = robot.InputNone
		}
	}
	for _, in := range pressed {
		if in != robot.InputNone {
			k.current = in
		}
	}
	return k.current
}

// keyInput maps arrow keys and WASD onto robot inputs.
func keyInput(k ebiten.Key) robot.Input {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return robot.InputUp
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return robot.InputDown
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return robot.InputLeft
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return robot.InputRight
	default:
		return robot.InputNone
	}
}

func keysToInputs(keys []ebiten.Key) []robot.Input {
	var out []robot.Input
	for _, k := range keys {
		if in := keyInput(k); in != robot.InputNone {
			out = append(out, in)
		}
	}
	return out
}

func justPressedInputs() []robot.Input {
	return keysToInputs(inpututil.AppendJustPressedKeys(nil))
}

func justReleasedInputs() []robot.Input {
	return keysToInputs(inpututil.AppendJustReleasedKeys(nil))
}

func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// handleHotkeys processes the canvas and robot control keys.
func (g *Game) handleHotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.canvas.Clear()
		g.log.Info("canvas cleared")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset(g.start)
		g.keys = keyTracker{}
		g.log.Info("robot reset")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.generateWalls()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.ctrl.SetAutopilot(!g.ctrl.Autopilot())
		g.log.Info("autopilot toggled", zap.Bool("on", g.ctrl.Autopilot()))
	}
}

// brushState joins successive cursor samples into strokes.
type brushState struct {
	down bool
	last image.Point
}

// stroke paints from the previous cursor sample to p, or a single dab when the
// button was just pressed.
func (b *brushState) stroke(c *canvas.Canvas, p image.Point, radius int, paint bool) {
	clr := canvas.WallColor
	if !paint {
		clr = canvas.Background
	}
	switch {
	case b.down:
		c.PaintStroke(b.last.X, b.last.Y, p.X, p.Y, radius, clr)
	case paint:
		c.PaintWall(p.X, p.Y, radius)
	default:
		c.Erase(p.X, p.Y, radius)
	}
	b.down = true
	b.last = p
}

func (b *brushState) release() { b.down = false }

// handleBrush paints walls with the left button and erases with the right.
func (g *Game) handleBrush() {
	paint := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	erase := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !paint && !erase {
		g.brush.release()
		return
	}
	x, y := ebiten.CursorPosition()
	g.brush.stroke(g.canvas, image.Point{X: x, Y: y}, g.cfg.Walls.BrushRadius, paint)
}
