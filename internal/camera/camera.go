// Package camera converts between world space and the fixed-size pixel grid.
package camera

import (
	"math"

	"curvescope/internal/geom"
)

// ZoomFactor is applied once per zoom action.
const ZoomFactor = 0.9

// Camera looks at the world from Pos with Scale pixels per world unit.
type Camera struct {
	Scale   float64
	Pos     geom.Point
	Pointer geom.Point

	Width, Height int

	// Factor is the zoom multiplier, ZoomFactor when zero.
	Factor float64
	// MinScale and MaxScale bound Scale when positive.
	MinScale, MaxScale float64
}

// New returns a camera centred on the origin.
func New(width, height int, scale float64) *Camera {
	return &Camera{Scale: scale, Width: width, Height: height}
}

func (c *Camera) half() geom.Point {
	return geom.Point{X: float64(c.Width / 2), Y: float64(c.Height / 2)}
}

// WorldToScreen maps p to integer pixel coordinates.
func (c *Camera) WorldToScreen(p geom.Point) geom.IntPoint {
	d := geom.Translate(p, geom.Scale(c.Pos, -1))
	return geom.ToInt(geom.Translate(geom.Scale(d, c.Scale), c.half()))
}

// ScreenToWorld maps pixel coordinates back to world space.
func (c *Camera) ScreenToWorld(s geom.IntPoint) geom.Point {
	p := geom.Point{X: float64(s.X), Y: float64(s.Y)}
	d := geom.Translate(p, geom.Scale(c.half(), -1))
	return geom.Translate(c.Pos, geom.Scale(d, 1/c.Scale))
}

// DeviceToScreen converts host pointer coordinates, whose y axis grows
// downwards, into the internal up-direction.
func (c *Camera) DeviceToScreen(x, y float64) geom.IntPoint {
	return geom.IntPoint{X: int64(int32(x)), Y: int64(float64(c.Height) - y)}
}

// UpdatePointer recomputes the world pointer from a device position.
func (c *Camera) UpdatePointer(x, y float64) {
	c.Pointer = c.ScreenToWorld(c.DeviceToScreen(x, y))
}

func (c *Camera) factor() float64 {
	if c.Factor <= 0 || c.Factor >= 1 {
		return ZoomFactor
	}
	return c.Factor
}

// ZoomIn enlarges the view by one step.
func (c *Camera) ZoomIn() { c.setScale(c.Scale / c.factor()) }

// ZoomOut shrinks the view by one step.
func (c *Camera) ZoomOut() { c.setScale(c.Scale * c.factor()) }

func (c *Camera) setScale(s float64) {
	if c.MinScale > 0 && s < c.MinScale {
		s = c.MinScale
	}
	if c.MaxScale > 0 && s > c.MaxScale {
		s = c.MaxScale
	}
	if s <= 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return
	}
	c.Scale = s
}

// Pan moves the camera by dx, dy pixels' worth of world units.
func (c *Camera) Pan(dx, dy float64) {
	c.Pos = geom.Translate(c.Pos, geom.Scale(geom.Point{X: dx, Y: dy}, 1/c.Scale))
}

// Contains reports whether pixel s lies on the screen.
func (c *Camera) Contains(s geom.IntPoint) bool {
	return s.X >= 0 && s.Y >= 0 && s.X < int64(c.Width) && s.Y < int64(c.Height)
}
