package raster

import (
	"math"

	"curvescope/internal/camera"
	"curvescope/internal/geom"
)

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// DrawLine draws from a to b with a DDA. One pixel is written per step,
// starting one step after a and ending on b. A zero-length line writes a.
func (cv *Canvas) DrawLine(a, b geom.IntPoint, c geom.Colour) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		cv.SetPixel(a, c)
		return
	}
	xstep := float64(dx) / float64(steps)
	ystep := float64(dy) / float64(steps)
	x, y := float64(a.X), float64(a.Y)
	for i := int64(0); i < steps; i++ {
		x += xstep
		y += ystep
		cv.SetPixel(geom.ToInt(geom.Point{X: x, Y: y}), c)
	}
}

// DrawCurve samples the curve, scaled by scale and moved by translate,
// and plots each sample as a single pixel. The parameter step is
// 0.5/cam.Scale, so sampling density follows the zoom level.
func (cv *Canvas) DrawCurve(cam *camera.Camera, cu geom.Curve, scale float64, translate geom.Point, c geom.Colour) int {
	step := 0.5 / cam.Scale
	if !(step > 0) || math.IsInf(step, 0) || 1+step == 1 {
		return 0
	}
	w := cu.Transform(scale, translate)
	n := 0
	for t := 0.0; t <= 1; t += step {
		cv.SetPixel(cam.WorldToScreen(w.At(t)), c)
		n++
	}
	return n
}

// DrawShape draws every curve of s with the same parameters. It returns
// the number of samples plotted.
func (cv *Canvas) DrawShape(cam *camera.Camera, s *geom.Shape, scale float64, translate geom.Point, c geom.Colour) int {
	n := 0
	for i := 0; i < s.Len(); i++ {
		n += cv.DrawCurve(cam, s.Curves[i], scale, translate, c)
	}
	return n
}
