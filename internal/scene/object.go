// Package scene holds placed object instances and the store that owns them.
package scene

import "curvescope/internal/geom"

// bboxStep is the parameter step used when sampling curves for bounds.
const bboxStep = 0.01

// Object is one placed instance of a shared shape.
type Object struct {
	Shape  *geom.Shape
	Scale  float64
	Colour geom.Colour
	Pos    geom.Point

	// BBox is in local coordinates scaled by Scale; Pos is added at query time.
	BBox geom.BBox
}

// NewObject builds an object and computes its bounds.
func NewObject(s *geom.Shape, scale float64, colour geom.Colour) Object {
	o := Object{Shape: s, Scale: scale, Colour: colour}
	o.PrecomputeBBox()
	return o
}

// PrecomputeBBox samples every curve of the shape and caches its bounds.
// It must be called again whenever Shape or Scale change.
func (o *Object) PrecomputeBBox() {
	b := geom.EmptyBBox()
	for i := 0; i < o.Shape.Len(); i++ {
		c := o.Shape.Curves[i].Transform(o.Scale, geom.Point{})
		for t := 0.0; t <= 1; t += bboxStep {
			b = geom.Extend(b, c.At(t))
		}
	}
	o.BBox = b
}

// WorldBBox returns the bounds translated to the object's position.
func (o *Object) WorldBBox() geom.BBox {
	lo := geom.Translate(o.Pos, geom.Min(o.BBox))
	hi := geom.Translate(o.Pos, geom.Max(o.BBox))
	return geom.BBox{LLx: lo.X, LLy: lo.Y, URx: hi.X, URy: hi.Y}
}

// Contains reports whether p lies strictly inside the object's bounds.
func (o *Object) Contains(p geom.Point) bool {
	b := o.WorldBBox()
	return p.X > b.LLx && p.X < b.URx && p.Y > b.LLy && p.Y < b.URy
}
