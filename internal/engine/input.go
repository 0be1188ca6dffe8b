package engine

import (
	"curvescope/internal/geom"
)

// Keys is the set of keys held during one frame.
type Keys struct {
	ZoomOut, ZoomIn       bool
	Left, Right, Up, Down bool
}

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota + 1
	ButtonRight
)

// Action reports what a pointer press did.
type Action int

const (
	ActionNone Action = iota
	ActionInserted
	ActionRemoved
)

func (a Action) String() string {
	switch a {
	case ActionInserted:
		return "inserted"
	case ActionRemoved:
		return "removed"
	default:
		return "none"
	}
}

// ApplyKeys applies one frame of held keys. Zoom fires once per key hold:
// it is suppressed while any zoom key was already held on the previous
// frame. Each held direction pans by one pixel per frame, so motion
// speed depends on the frame rate.
func (s *State) ApplyKeys(k Keys) {
	if k.ZoomOut && !s.zoomLatched {
		s.Camera.ZoomOut()
	}
	if k.ZoomIn && !s.zoomLatched {
		s.Camera.ZoomIn()
	}
	s.zoomLatched = k.ZoomOut || k.ZoomIn

	var dx, dy float64
	if k.Left {
		dx--
	}
	if k.Right {
		dx++
	}
	if k.Down {
		dy--
	}
	if k.Up {
		dy++
	}
	if k.Left || k.Right || k.Up || k.Down {
		s.Camera.Pan(dx, dy)
	}
	if s.zoomLatched || k.Left || k.Right || k.Up || k.Down {
		s.updatePointer()
	}
}

// PointerMoved records the device pointer position, in host coordinates
// with y growing downwards.
func (s *State) PointerMoved(x, y float64) {
	s.deviceX, s.deviceY = x, y
	s.updatePointer()
}

// PointerDown handles a button press at the current pointer. The left
// button stamps the template, the right button removes the first object
// under the pointer. The returned index is the affected store index.
func (s *State) PointerDown(b Button) (Action, int, error) {
	p := s.Camera.Pointer
	switch b {
	case ButtonLeft:
		o := s.Template
		o.Pos = p
		i, err := s.Store.Insert(o)
		if err != nil {
			s.Log.Error("insert failed", "err", err, "objects", s.Store.Len())
			return ActionNone, -1, err
		}
		s.Log.Debug("object inserted", "index", i, "x", p.X, "y", p.Y)
		return ActionInserted, i, nil
	case ButtonRight:
		i := s.Store.HitTest(p)
		if i < 0 || !s.Store.Remove(i) {
			return ActionNone, -1, nil
		}
		s.Log.Debug("object removed", "index", i, "x", p.X, "y", p.Y)
		return ActionRemoved, i, nil
	}
	return ActionNone, -1, nil
}

// Clear removes every object.
func (s *State) Clear() {
	n := s.Store.Len()
	s.Store.Reset()
	s.Log.Debug("scene cleared", "objects", n)
}

// ResetCamera returns to the start position and zoom.
func (s *State) ResetCamera() {
	s.Camera.Pos = geom.Point{}
	s.Camera.Scale = s.initialScale
	s.updatePointer()
}

// Seed places n template objects in a row centred on the origin, spaced
// twice the template's width apart.
func (s *State) Seed(n int) error {
	step := 2 * (s.Template.BBox.URx - s.Template.BBox.LLx)
	if geom.IsEmpty(s.Template.BBox) || step <= 0 {
		step = 1
	}
	start := -step * float64(n-1) / 2
	for i := 0; i < n; i++ {
		o := s.Template
		o.Pos = geom.Point{X: start + step*float64(i)}
		if _, err := s.Store.Insert(o); err != nil {
			return err
		}
	}
	return nil
}
