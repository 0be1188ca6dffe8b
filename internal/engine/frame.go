package engine

import (
	"math"

	"curvescope/internal/camera"
	"curvescope/internal/geom"
	"curvescope/internal/scene"
)

// crosshair is the half-length of the pointer cross-hair arms, in pixels.
const crosshair = 8

// minGridSpacing is the smallest grid spacing, in pixels, that is drawn.
const minGridSpacing = 1.0

// FrameStats summarises one rendered frame.
type FrameStats struct {
	Drawn   int
	Culled  int
	Samples int
}

// ObjectVisible reports whether the object's bounds overlap the screen.
// An object with empty bounds is never visible.
func ObjectVisible(cam *camera.Camera, o *scene.Object) bool {
	if geom.IsEmpty(o.BBox) {
		return false
	}
	lo := cam.WorldToScreen(geom.Translate(o.Pos, geom.Min(o.BBox)))
	hi := cam.WorldToScreen(geom.Translate(o.Pos, geom.Max(o.BBox)))
	if lo.X >= int64(cam.Width) || lo.Y >= int64(cam.Height) {
		return false
	}
	if hi.X < 0 || hi.Y < 0 {
		return false
	}
	return true
}

// gridLines returns the screen positions of the grid lines along one axis
// of the given length. The first line is phase-locked to the camera.
func gridLines(pos, scale, unit float64, length int) []int64 {
	spacing := unit * scale
	if !(spacing >= minGridSpacing) || math.IsInf(spacing, 0) {
		return nil
	}
	var out []int64
	for v := math.Mod(pos*-scale+float64(length/2), spacing); v < float64(length); v += spacing {
		out = append(out, int64(v))
	}
	return out
}

// GridLinesX returns the screen x of every vertical grid line.
func (s *State) GridLinesX() []int64 {
	c := s.Camera
	return gridLines(c.Pos.X, c.Scale, s.GridUnit, c.Width)
}

// GridLinesY returns the screen y of every horizontal grid line.
func (s *State) GridLinesY() []int64 {
	c := s.Camera
	return gridLines(c.Pos.Y, c.Scale, s.GridUnit, c.Height)
}

// RenderFrame redraws the whole canvas: background, grid, cross-hair and
// every visible object in store order.
func (s *State) RenderFrame() FrameStats {
	cv, cam := s.Canvas, s.Camera
	cv.Fill(s.Palette.Background)

	top, right := int64(cv.Height-1), int64(cv.Width-1)
	for _, x := range s.GridLinesX() {
		cv.DrawLine(geom.IntPoint{X: x, Y: 0}, geom.IntPoint{X: x, Y: top}, s.Palette.Grid)
	}
	for _, y := range s.GridLinesY() {
		cv.DrawLine(geom.IntPoint{X: 0, Y: y}, geom.IntPoint{X: right, Y: y}, s.Palette.Grid)
	}

	p := cam.WorldToScreen(cam.Pointer)
	cv.DrawLine(geom.IntPoint{X: p.X - crosshair, Y: p.Y}, geom.IntPoint{X: p.X + crosshair, Y: p.Y}, s.Palette.Pointer)
	cv.DrawLine(geom.IntPoint{X: p.X, Y: p.Y - crosshair}, geom.IntPoint{X: p.X, Y: p.Y + crosshair}, s.Palette.Pointer)

	var st FrameStats
	for _, o := range s.Store.All() {
		if !ObjectVisible(cam, o) {
			st.Culled++
			continue
		}
		st.Samples += cv.DrawShape(cam, o.Shape, o.Scale, o.Pos, o.Colour)
		st.Drawn++
	}
	return st
}
