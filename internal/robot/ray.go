package robot

import (
	"image"

	"gonum.org/v1/gonum/spatial/r2"
)

// Surface is the pixel grid the sensors read. IsWall is only called for
// coordinates inside [0, w) x [0, h).
type Surface interface {
	Size() (w, h int)
	IsWall(x, y int) bool
}

// Ray is the trace of one sensor for one tick.
type Ray struct {
	// Points are the samples taken while the sensor was still clear.
	Points []image.Point
	// Hit is the zero-based step that touched a wall or left the surface, or
	// -1 when the whole ray stayed clear.
	Hit int
}

// Blocked reports whether the ray touched a wall or the surface edge.
func (r Ray) Blocked() bool { return r.Hit >= 0 }

// CastRay walks steps samples from origin, adding dir after each one, and
// stops at the first sample that is outside s or on a wall. dir is already in
// screen space.
func CastRay(s Surface, origin, dir r2.Vec, steps int) Ray {
	ray := Ray{Hit: -1}
	if steps <= 0 {
		return ray
	}
	w, h := s.Size()
	ray.Points = make([]image.Point, 0, steps)
	pos := origin
	for i := 0; i < steps; i++ {
		pos = r2.Add(pos, dir)
		if pos.X < 0 || pos.Y < 0 || pos.X >= float64(w) || pos.Y >= float64(h) {
			ray.Hit = i
			break
		}
		x, y := int(pos.X), int(pos.Y)
		if s.IsWall(x, y) {
			ray.Hit = i
			break
		}
		ray.Points = append(ray.Points, image.Point{X: x, Y: y})
	}
	return ray
}
