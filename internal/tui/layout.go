package tui

const (
	headerHeight = 1
	footerHeight = 2
)

// canvasSize returns the canvas area in cells for the current window.
func (m Model) canvasSize() (int, int) {
	w := max(10, m.width)
	h := max(4, m.height-headerHeight-footerHeight)
	return w, h
}

// deviceXY maps a terminal cell to a position on the fixed-size pixel
// buffer, in host coordinates with y growing downwards. The cell centre
// is used. ok is false outside the canvas.
func (m Model) deviceXY(cx, cy int) (x, y float64, ok bool) {
	if m.mapW <= 0 || m.mapH <= 0 {
		return 0, 0, false
	}
	cy -= headerHeight
	if cx < 0 || cy < 0 || cx >= m.mapW || cy >= m.mapH {
		return 0, 0, false
	}
	x = (float64(cx) + 0.5) * float64(m.cfg.Width) / float64(m.mapW)
	y = (float64(cy) + 0.5) * float64(m.cfg.Height) / float64(m.mapH)
	return x, y, true
}
