package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKernel(t *testing.T) {
	assert.Equal(t, Point{X: 3, Y: -6}, Scale(Point{X: 1, Y: -2}, 3))
	assert.Equal(t, Point{X: 1.5, Y: 0}, Translate(Point{X: 1, Y: -2}, Point{X: 0.5, Y: 2}))

	tests := []struct {
		in   Point
		want IntPoint
	}{
		{Point{X: 1.9, Y: 2.1}, IntPoint{X: 1, Y: 2}},
		{Point{X: -1.9, Y: -0.5}, IntPoint{X: -1, Y: 0}},
		{Point{X: 0, Y: 1079.999}, IntPoint{X: 0, Y: 1079}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToInt(tt.in), "ToInt(%v)", tt.in)
	}
}

func TestCurveAt(t *testing.T) {
	c := Curve{From: Point{X: 1, Y: 0}, To: Point{X: 0, Y: 1}, Control: Point{X: 1, Y: 1}}
	assert.Equal(t, c.From, c.At(0))
	assert.Equal(t, c.To, c.At(1))

	mid := c.At(0.5)
	assert.InDelta(t, 0.75, mid.X, 1e-12)
	assert.InDelta(t, 0.75, mid.Y, 1e-12)
}

func TestCurveTransform(t *testing.T) {
	c := Curve{From: Point{X: 1, Y: 0}, To: Point{X: 0, Y: 1}, Control: Point{X: 1, Y: 1}}
	d := c.Transform(2, Point{X: 10, Y: -10})
	assert.Equal(t, Point{X: 12, Y: -10}, d.From)
	assert.Equal(t, Point{X: 10, Y: -8}, d.To)
	assert.Equal(t, Point{X: 12, Y: -8}, d.Control)
}

func TestBBox(t *testing.T) {
	b := EmptyBBox()
	assert.True(t, IsEmpty(b))
	assert.True(t, math.IsInf(b.LLx, 1))

	b = Extend(b, Point{X: 1, Y: 2})
	assert.False(t, IsEmpty(b))
	b = Extend(b, Point{X: -1, Y: 5})
	assert.Equal(t, Point{X: -1, Y: 2}, Min(b))
	assert.Equal(t, Point{X: 1, Y: 5}, Max(b))
}

func TestShapeLen(t *testing.T) {
	var s *Shape
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 6, DefaultShape().Len())
}

func TestColour(t *testing.T) {
	c := Colour(0xFF282011)
	r, g, b, a := c.Components()
	assert.Equal(t, [4]uint8{0x11, 0x20, 0x28, 0xFF}, [4]uint8{r, g, b, a})
	assert.Equal(t, c, RGBA(0x11, 0x20, 0x28, 0xFF))
	assert.Equal(t, c, FromColor(c.NRGBA()))
}
