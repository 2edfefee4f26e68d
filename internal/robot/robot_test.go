package robot

import (
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

type gridSurface struct {
	w, h  int
	walls map[image.Point]bool
}

func newGridSurface(w, h int) *gridSurface {
	return &gridSurface{w: w, h: h, walls: make(map[image.Point]bool)}
}

func (g *gridSurface) Size() (int, int) { return g.w, g.h }

func (g *gridSurface) IsWall(x, y int) bool {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		panic("IsWall called out of bounds")
	}
	return g.walls[image.Point{X: x, Y: y}]
}

func (g *gridSurface) wall(x, y int) { g.walls[image.Point{X: x, Y: y}] = true }

const tol = 1e-9

func TestHeadingVector(t *testing.T) {
	for _, deg := range []float64{0, 1, 45, 90, 135, 180, 270, 359, 360, 725, -30, -450} {
		v := HeadingVector(deg)
		rad := deg * math.Pi / 180
		assert.InDelta(t, math.Sin(rad), v.X, tol, "deg %v", deg)
		assert.InDelta(t, math.Cos(rad), v.Y, tol, "deg %v", deg)
		assert.InDelta(t, 1, r2.Norm(v), tol, "deg %v", deg)
	}
}

func TestTickClearCanvasAt45Degrees(t *testing.T) {
	s := newGridSurface(900, 900)
	c := NewController(DefaultGeometry(), Pose{Position: r2.Vec{X: 450, Y: 450}, Orientation: 45})

	got := c.Tick(InputNone, s)

	if diff := cmp.Diff(Sensors{}, got.Sensors); diff != "" {
		t.Fatalf("sensors mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 450+math.Sqrt2/2, got.Pose.Position.X, tol)
	assert.InDelta(t, 450-math.Sqrt2/2, got.Pose.Position.Y, tol)
	assert.Equal(t, 45.0, got.Pose.Orientation)
	for _, r := range []Ray{got.Forward, got.Left, got.Right} {
		assert.Equal(t, -1, r.Hit)
		assert.Len(t, r.Points, DefaultRayLength)
	}
	assert.Equal(t, got, c.Last())
	assert.Equal(t, got.Pose, c.Pose())
}

func TestTickWallAheadTurns(t *testing.T) {
	s := newGridSurface(600, 600)
	s.wall(300, 200)
	start := Pose{Position: r2.Vec{X: 260, Y: 260}}

	c := NewController(DefaultGeometry(), start)
	got := c.Tick(InputNone, s)

	require.True(t, got.Sensors.Forward)
	assert.False(t, got.Sensors.Left)
	assert.False(t, got.Sensors.Right)
	assert.Equal(t, 99, got.Forward.Hit)
	assert.Len(t, got.Forward.Points, 99)
	assert.Equal(t, image.Point{X: 300, Y: 201}, got.Forward.Points[98])
	assert.Equal(t, 4.0, got.Pose.Orientation)
	assert.Equal(t, start.Position, got.Pose.Position)
}

func TestTickWallAheadKeepsInputMovement(t *testing.T) {
	s := newGridSurface(600, 600)
	s.wall(300, 200)
	c := NewController(DefaultGeometry(), Pose{Position: r2.Vec{X: 260, Y: 260}})

	got := c.Tick(InputUp, s)

	assert.True(t, got.Sensors.Forward)
	assert.Equal(t, 4.0, got.Pose.Orientation)
	assert.InDelta(t, 260, got.Pose.Position.X, tol)
	assert.InDelta(t, 259, got.Pose.Position.Y, tol)
}

func TestTickTurnIgnoresSideSensors(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
	}{
		{"forward only", false, false},
		{"forward and left", true, false},
		{"forward and right", false, true},
		{"all three", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newGridSurface(600, 600)
			s.wall(300, 150)
			if tt.left {
				s.wall(150, 300)
			}
			if tt.right {
				s.wall(450, 300)
			}
			c := NewController(DefaultGeometry(), Pose{Position: r2.Vec{X: 260, Y: 260}, Orientation: 720})
			got := c.Tick(InputNone, s)

			want := Sensors{Forward: true, Left: tt.left, Right: tt.right}
			if diff := cmp.Diff(want, got.Sensors); diff != "" {
				t.Fatalf("sensors mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, 724.0, got.Pose.Orientation)
		})
	}
}

func TestTickOutOfBoundsIsObstacle(t *testing.T) {
	s := newGridSurface(300, 300)
	c := NewController(DefaultGeometry(), Pose{Position: r2.Vec{X: 110, Y: 10}})

	got := c.Tick(InputNone, s)

	require.True(t, got.Sensors.Forward)
	assert.Equal(t, 50, got.Forward.Hit)
	require.Len(t, got.Forward.Points, 50)
	assert.Equal(t, image.Point{X: 150, Y: 0}, got.Forward.Points[49])
	for _, p := range got.Forward.Points {
		assert.GreaterOrEqual(t, p.Y, 0)
	}
}

func TestTickStraightLineWhenClear(t *testing.T) {
	s := newGridSurface(2000, 2000)
	c := NewController(DefaultGeometry(), Pose{Position: r2.Vec{X: 500, Y: 900}, Orientation: 90})

	for i := 1; i <= 50; i++ {
		got := c.Tick(InputNone, s)
		require.False(t, got.Sensors.Any(), "tick %d", i)
		assert.Equal(t, 90.0, got.Pose.Orientation)
		assert.InDelta(t, 500+float64(i), got.Pose.Position.X, 1e-6)
		assert.InDelta(t, 900, got.Pose.Position.Y, 1e-6)
	}
}

func TestTickInputUsesStartHeading(t *testing.T) {
	tests := []struct {
		name    string
		in      Input
		wantPos r2.Vec
		wantDeg float64
	}{
		{"none", InputNone, r2.Vec{X: 500, Y: 499}, 0},
		{"up", InputUp, r2.Vec{X: 500, Y: 498}, 0},
		{"down", InputDown, r2.Vec{X: 500, Y: 500}, 0},
		{"left", InputLeft, r2.Vec{X: 500, Y: 499}, -1},
		{"right", InputRight, r2.Vec{X: 500, Y: 499}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newGridSurface(1200, 1200)
			c := NewController(DefaultGeometry(), Pose{Position: r2.Vec{X: 500, Y: 500}})
			got := c.Tick(tt.in, s)
			assert.InDelta(t, tt.wantPos.X, got.Pose.Position.X, tol)
			assert.InDelta(t, tt.wantPos.Y, got.Pose.Position.Y, tol)
			assert.Equal(t, tt.wantDeg, got.Pose.Orientation)
		})
	}
}

func TestTickAutopilotOff(t *testing.T) {
	s := newGridSurface(600, 600)
	s.wall(300, 200)
	start := Pose{Position: r2.Vec{X: 260, Y: 260}}
	c := NewController(DefaultGeometry(), start)
	c.SetAutopilot(false)
	require.False(t, c.Autopilot())

	got := c.Tick(InputNone, s)
	assert.True(t, got.Sensors.Forward, "sensors are still cast")
	assert.Equal(t, start, got.Pose)

	got = c.Tick(InputRight, s)
	assert.Equal(t, 1.0, got.Pose.Orientation)
}

func TestReset(t *testing.T) {
	s := newGridSurface(900, 900)
	c := NewController(DefaultGeometry(), Pose{Position: r2.Vec{X: 400, Y: 400}})
	c.Tick(InputUp, s)

	home := Pose{Position: r2.Vec{X: 10, Y: 20}, Orientation: 30}
	c.Reset(home)
	assert.Equal(t, home, c.Pose())
	assert.Equal(t, Tick{}, c.Last())
}

func TestSteer(t *testing.T) {
	for _, fwd := range []bool{false, true} {
		for _, left := range []bool{false, true} {
			for _, right := range []bool{false, true} {
				got := Steer(Sensors{Forward: fwd, Left: left, Right: right}, 4)
				if fwd {
					assert.Equal(t, Steering{Turn: 4}, got)
				} else {
					assert.Equal(t, Steering{Advance: true}, got)
				}
			}
		}
	}
}

func TestCastRayZeroSteps(t *testing.T) {
	r := CastRay(newGridSurface(10, 10), r2.Vec{X: 5, Y: 5}, r2.Vec{X: 1}, 0)
	assert.False(t, r.Blocked())
	assert.Empty(t, r.Points)
}

func TestCastRayNegativeFractionIsOutside(t *testing.T) {
	r := CastRay(newGridSurface(10, 10), r2.Vec{X: 0.2, Y: 5}, r2.Vec{X: -0.5}, 5)
	assert.Equal(t, 0, r.Hit)
	assert.Empty(t, r.Points)
}

func TestPoseTopLeftFloors(t *testing.T) {
	p := Pose{Position: r2.Vec{X: -0.5, Y: 3.9}}
	assert.Equal(t, image.Point{X: -1, Y: 3}, p.TopLeft())
}

func TestNormalizeDegrees(t *testing.T) {
	assert.InDelta(t, 10, NormalizeDegrees(370), tol)
	assert.InDelta(t, 350, NormalizeDegrees(-10), tol)
	assert.InDelta(t, 0, NormalizeDegrees(720), tol)
}

func TestInputString(t *testing.T) {
	assert.Equal(t, "up", InputUp.String())
	assert.Equal(t, "none", Input(42).String())
}
