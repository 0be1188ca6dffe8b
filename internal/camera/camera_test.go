package camera

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"curvescope/internal/geom"
)

func TestWorldToScreen(t *testing.T) {
	c := New(2160, 1440, 67.5)
	assert.Equal(t, geom.IntPoint{X: 1080, Y: 720}, c.WorldToScreen(geom.Point{}))
	assert.Equal(t, geom.IntPoint{X: 1147, Y: 652}, c.WorldToScreen(geom.Point{X: 1, Y: -1}))

	c.Pos = geom.Point{X: 2, Y: 0}
	assert.Equal(t, geom.IntPoint{X: 945, Y: 720}, c.WorldToScreen(geom.Point{}))
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, scale := range []float64{0.5, 1, 67.5, 300, 4000} {
		c := New(2160, 1440, scale)
		c.Pos = geom.Point{X: r.Float64()*20 - 10, Y: r.Float64()*20 - 10}
		for i := 0; i < 200; i++ {
			p := geom.Point{
				X: c.Pos.X + (r.Float64()-0.5)*2160/scale,
				Y: c.Pos.Y + (r.Float64()-0.5)*1440/scale,
			}
			q := c.ScreenToWorld(c.WorldToScreen(p))
			tol := 1/scale + 1e-9
			assert.InDelta(t, p.X, q.X, tol, "scale %v x", scale)
			assert.InDelta(t, p.Y, q.Y, tol, "scale %v y", scale)
		}
	}
}

func TestUpdatePointerFlipsY(t *testing.T) {
	c := New(2160, 1440, 67.5)
	c.UpdatePointer(1080, 720)
	assert.Equal(t, geom.Point{}, c.Pointer)

	// device y grows downwards, world y grows upwards
	c.UpdatePointer(1080, 720-67.5*2)
	assert.InDelta(t, 2, c.Pointer.Y, 1/67.5)
	assert.InDelta(t, 0, c.Pointer.X, 1e-12)
}

func TestZoom(t *testing.T) {
	c := New(100, 100, 10)
	c.ZoomIn()
	assert.InDelta(t, 10/0.9, c.Scale, 1e-12)
	c.ZoomOut()
	assert.InDelta(t, 10, c.Scale, 1e-12)

	c.MinScale, c.MaxScale = 5, 11
	c.ZoomIn()
	c.ZoomIn()
	assert.Equal(t, 11.0, c.Scale)
	for i := 0; i < 20; i++ {
		c.ZoomOut()
	}
	assert.Equal(t, 5.0, c.Scale)
}

func TestPan(t *testing.T) {
	c := New(100, 100, 4)
	c.Pan(-1, 0)
	assert.Equal(t, geom.Point{X: -0.25, Y: 0}, c.Pos)
	c.Pan(0, 1)
	assert.Equal(t, geom.Point{X: -0.25, Y: 0.25}, c.Pos)

	// one pan step moves any world point by one pixel
	before := c.WorldToScreen(geom.Point{X: 3, Y: 3})
	c.Pan(1, 0)
	after := c.WorldToScreen(geom.Point{X: 3, Y: 3})
	assert.Equal(t, int64(-1), after.X-before.X)
}

func TestContains(t *testing.T) {
	c := New(10, 5, 1)
	assert.True(t, c.Contains(geom.IntPoint{X: 0, Y: 0}))
	assert.True(t, c.Contains(geom.IntPoint{X: 9, Y: 4}))
	assert.False(t, c.Contains(geom.IntPoint{X: 10, Y: 0}))
	assert.False(t, c.Contains(geom.IntPoint{X: 0, Y: -1}))
	assert.False(t, math.IsNaN(c.Scale))
}
