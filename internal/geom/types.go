package geom

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a world-space coordinate.
type Point = vec.Vec2

// IntPoint is a screen-space pixel coordinate.
type IntPoint struct {
	X, Y int64
}

// BBox is an axis-aligned box, LL is the minimum corner and UR the maximum.
type BBox = rect.Rect

// EmptyBBox returns the sentinel box that every min/max accumulation starts from.
func EmptyBBox() BBox {
	return BBox{
		LLx: math.Inf(1),
		LLy: math.Inf(1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
}

// IsEmpty reports whether b has not accumulated any point.
func IsEmpty(b BBox) bool {
	return !(b.LLx <= b.URx && b.LLy <= b.URy)
}

// Min returns the lower-left corner of b.
func Min(b BBox) Point { return Point{X: b.LLx, Y: b.LLy} }

// Max returns the upper-right corner of b.
func Max(b BBox) Point { return Point{X: b.URx, Y: b.URy} }

// Extend grows b so that it contains p.
func Extend(b BBox, p Point) BBox {
	if p.X < b.LLx {
		b.LLx = p.X
	}
	if p.X > b.URx {
		b.URx = p.X
	}
	if p.Y < b.LLy {
		b.LLy = p.Y
	}
	if p.Y > b.URy {
		b.URy = p.Y
	}
	return b
}
