package robot

import "gonum.org/v1/gonum/spatial/r2"

// Tick is everything one simulation step produced.
type Tick struct {
	Pose    Pose
	Sensors Sensors
	Forward Ray
	Left    Ray
	Right   Ray
}

// Controller owns the robot pose and advances it once per frame.
type Controller struct {
	geo       Geometry
	pose      Pose
	autopilot bool
	last      Tick
}

// NewController returns a controller at start with the autopilot enabled.
func NewController(geo Geometry, start Pose) *Controller {
	return &Controller{
		geo:       geo,
		pose:      start,
		autopilot: true,
	}
}

func (c *Controller) Geometry() Geometry { return c.geo }

func (c *Controller) Pose() Pose { return c.pose }

// Reset puts the robot back at p and forgets the previous tick.
func (c *Controller) Reset(p Pose) {
	c.pose = p
	c.last = Tick{}
}

func (c *Controller) Autopilot() bool { return c.autopilot }

// SetAutopilot toggles the obstacle policy. Sensors are still cast while it
// is off.
func (c *Controller) SetAutopilot(on bool) { c.autopilot = on }

// Last returns the result of the most recent Tick.
func (c *Controller) Last() Tick { return c.last }

// Tick casts the sensors from the current pose, applies the key input and
// then the obstacle policy.
func (c *Controller) Tick(in Input, s Surface) Tick {
	heading := HeadingVector(c.pose.Orientation)
	normal := HeadingVector(c.pose.Orientation + c.geo.SideAngle)
	fwdStep := screenStep(heading)
	rightStep := screenStep(normal)
	leftStep := r2.Scale(-1, rightStep)

	center := c.pose.Center(c.geo)
	t := Tick{
		Forward: CastRay(s, center, fwdStep, c.geo.RayLength),
		Right:   CastRay(s, center, rightStep, c.geo.RayLength),
		Left:    CastRay(s, center, leftStep, c.geo.RayLength),
	}
	t.Sensors = Sensors{
		Forward: t.Forward.Blocked(),
		Left:    t.Left.Blocked(),
		Right:   t.Right.Blocked(),
	}

	pose := applyInput(c.pose, in, heading)
	if c.autopilot {
		st := Steer(t.Sensors, c.geo.TurnStep)
		if st.Advance {
			pose.Position = r2.Add(pose.Position, fwdStep)
		}
		pose.Orientation += st.Turn
	}

	c.pose = pose
	t.Pose = pose
	c.last = t
	return t
}
