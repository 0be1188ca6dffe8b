package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curvescope/internal/config"
	"curvescope/internal/geom"
	"curvescope/internal/scene"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	return NewState(config.Default(), nil)
}

func smallState(t *testing.T) *State {
	t.Helper()
	cfg := config.Default()
	cfg.Width, cfg.Height = 200, 100
	cfg.InitialScale = 20
	return NewState(cfg, nil)
}

func TestClickInsertThenRemove(t *testing.T) {
	s := newTestState(t)
	require.Equal(t, 67.5, s.Camera.Scale)

	s.PointerMoved(1080, 720)
	assert.Equal(t, geom.Point{}, s.Pointer())

	act, i, err := s.PointerDown(ButtonLeft)
	require.NoError(t, err)
	assert.Equal(t, ActionInserted, act)
	assert.Equal(t, 0, i)
	require.Equal(t, 1, s.Store.Len())
	assert.Equal(t, geom.Point{}, s.Store.At(0).Pos)

	act, i, err = s.PointerDown(ButtonRight)
	require.NoError(t, err)
	assert.Equal(t, ActionRemoved, act)
	assert.Equal(t, 0, i)
	assert.Equal(t, 0, s.Store.Len())

	act, _, err = s.PointerDown(ButtonRight)
	require.NoError(t, err)
	assert.Equal(t, ActionNone, act)
}

func TestRemoveFirstInsertedOfOverlap(t *testing.T) {
	s := newTestState(t)
	s.PointerMoved(1100, 700)

	s.Template.Colour = 1
	_, _, err := s.PointerDown(ButtonLeft)
	require.NoError(t, err)
	s.Template.Colour = 2
	_, _, err = s.PointerDown(ButtonLeft)
	require.NoError(t, err)

	act, i, err := s.PointerDown(ButtonRight)
	require.NoError(t, err)
	assert.Equal(t, ActionRemoved, act)
	assert.Equal(t, 0, i)
	require.Equal(t, 1, s.Store.Len())
	assert.Equal(t, geom.Colour(2), s.Store.At(0).Colour)
}

func TestInsertStoreFull(t *testing.T) {
	cfg := config.Default()
	cfg.MaxObjects = 1
	s := NewState(cfg, nil)
	_, _, err := s.PointerDown(ButtonLeft)
	require.NoError(t, err)
	act, _, err := s.PointerDown(ButtonLeft)
	assert.True(t, errors.Is(err, scene.ErrStoreFull))
	assert.Equal(t, ActionNone, act)
}

func TestZoomFiresOncePerHold(t *testing.T) {
	s := newTestState(t)
	start := s.Camera.Scale

	s.ApplyKeys(Keys{ZoomIn: true})
	assert.InDelta(t, start/0.9, s.Camera.Scale, 1e-9)
	for i := 0; i < 5; i++ {
		s.ApplyKeys(Keys{ZoomIn: true})
	}
	assert.InDelta(t, start/0.9, s.Camera.Scale, 1e-9)

	s.ApplyKeys(Keys{})
	s.ApplyKeys(Keys{ZoomOut: true})
	assert.InDelta(t, start, s.Camera.Scale, 1e-9)

	// switching keys without a release does not fire either
	s.ApplyKeys(Keys{ZoomIn: true})
	assert.InDelta(t, start, s.Camera.Scale, 1e-9)
}

func TestZoomUpdatesPointer(t *testing.T) {
	s := newTestState(t)
	s.PointerMoved(1080+135, 720)
	require.InDelta(t, 2, s.Pointer().X, 1e-9)

	s.ApplyKeys(Keys{ZoomOut: true})
	assert.InDelta(t, 2/0.9, s.Pointer().X, 1e-3)
}

func TestPanPerFrame(t *testing.T) {
	s := newTestState(t)
	scale := s.Camera.Scale
	for i := 0; i < 10; i++ {
		s.ApplyKeys(Keys{Right: true, Up: true})
	}
	assert.InDelta(t, 10/scale, s.Camera.Pos.X, 1e-9)
	assert.InDelta(t, 10/scale, s.Camera.Pos.Y, 1e-9)
	assert.InDelta(t, 10/scale, s.Pointer().X, 1/scale)

	s.ApplyKeys(Keys{Left: true, Right: true})
	assert.InDelta(t, 10/scale, s.Camera.Pos.X, 1e-9)

	s.ApplyKeys(Keys{Down: true})
	assert.InDelta(t, 9/scale, s.Camera.Pos.Y, 1e-9)
}

func TestResetAndClear(t *testing.T) {
	s := newTestState(t)
	require.NoError(t, s.Seed(5))
	assert.Equal(t, 5, s.Store.Len())
	s.Clear()
	assert.Equal(t, 0, s.Store.Len())

	s.ApplyKeys(Keys{ZoomIn: true, Left: true})
	s.ResetCamera()
	assert.Equal(t, 67.5, s.Camera.Scale)
	assert.Equal(t, geom.Point{}, s.Camera.Pos)
}

func TestObjectVisible(t *testing.T) {
	s := smallState(t)
	o := s.Template
	// half-width of the screen is 5 world units, the object reaches 0.5
	tests := []struct {
		name string
		pos  geom.Point
		want bool
	}{
		{"centre", geom.Point{}, true},
		{"overlaps right edge", geom.Point{X: 5.2}, true},
		{"past right edge", geom.Point{X: 5.6}, false},
		{"past left edge", geom.Point{X: -5.6}, false},
		{"past top edge", geom.Point{Y: 3}, false},
		{"past bottom edge", geom.Point{Y: -3.1}, false},
		{"overlaps bottom edge", geom.Point{Y: -2.6}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o.Pos = tt.pos
			assert.Equal(t, tt.want, ObjectVisible(s.Camera, &o))
		})
	}

	empty := scene.NewObject(&geom.Shape{}, 1, 0)
	assert.False(t, ObjectVisible(s.Camera, &empty))
}

func TestGridPeriodic(t *testing.T) {
	s := smallState(t)
	spacing := s.GridUnit * s.Camera.Scale

	xs := s.GridLinesX()
	require.NotEmpty(t, xs)
	for i := 1; i < len(xs); i++ {
		assert.InDelta(t, spacing, float64(xs[i]-xs[i-1]), 1)
	}
	assert.Contains(t, xs, int64(100), "a line passes through the world origin")

	// a small pan shifts every line left by the same amount
	s.Camera.Pos.X = 0.25
	shifted := s.GridLinesX()
	assert.Contains(t, shifted, int64(95))

	ys := s.GridLinesY()
	assert.Contains(t, ys, int64(50))
}

func TestGridSkippedWhenTooDense(t *testing.T) {
	s := smallState(t)
	s.Camera.Scale = 0.1
	assert.Empty(t, s.GridLinesX())
	assert.Empty(t, s.GridLinesY())
}

func TestRenderFrame(t *testing.T) {
	s := smallState(t)
	s.PointerMoved(20, 20)
	_, _, err := s.PointerDown(ButtonLeft)
	require.NoError(t, err)
	s.PointerMoved(100, 50)

	st := s.RenderFrame()
	assert.Equal(t, 1, st.Drawn)
	assert.Equal(t, 0, st.Culled)
	assert.NotZero(t, st.Samples)

	counts := map[geom.Colour]int{}
	for _, c := range s.Canvas.Pix {
		counts[c]++
	}
	assert.NotZero(t, counts[s.Palette.Background])
	assert.NotZero(t, counts[s.Palette.Grid])
	assert.NotZero(t, counts[s.Palette.Object])
	// both cross-hair arms are 16 pixels long; the grid does not cover them
	// because it is drawn first
	assert.GreaterOrEqual(t, counts[s.Palette.Pointer], 16)

	s.Camera.Pos = geom.Point{X: 100}
	st = s.RenderFrame()
	assert.Equal(t, 0, st.Drawn)
	assert.Equal(t, 1, st.Culled)
	for _, c := range s.Canvas.Pix {
		assert.NotEqual(t, s.Palette.Object, c)
	}
}
