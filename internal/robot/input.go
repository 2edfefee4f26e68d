package robot

import "gonum.org/v1/gonum/spatial/r2"

// Input is the single key currently held, if any.
type Input uint8

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
)

func (i Input) String() string {
	switch i {
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	default:
		return "none"
	}
}

// applyInput moves along heading for up/down and turns one degree for
// left/right. heading is the unit vector computed at the start of the tick.
func applyInput(p Pose, in Input, heading r2.Vec) Pose {
	step := screenStep(heading)
	switch in {
	case InputUp:
		p.Position = r2.Add(p.Position, step)
	case InputDown:
		p.Position = r2.Sub(p.Position, step)
	case InputLeft:
		p.Orientation--
	case InputRight:
		p.Orientation++
	}
	return p
}
