package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"curvescope/internal/engine"
)

// frameMsg drives one iteration of the render loop.
type frameMsg time.Time

func (m Model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps <= 0 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.mapW, m.mapH = m.canvasSize()
	case frameMsg:
		return m.frame(time.Time(msg))
	case tea.KeyMsg:
		if k, ok := m.keys.heldFor(msg); ok {
			m.held.press(k, time.Now())
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			n := m.state.Store.Len()
			m.state.Clear()
			m.status = fmt.Sprintf("cleared %d objects", n)
		case key.Matches(msg, m.keys.Reset):
			m.state.ResetCamera()
			m.status = "view reset"
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
		}
	case tea.MouseMsg:
		x, y, ok := m.deviceXY(msg.X, msg.Y)
		m.hovering = ok
		if !ok {
			return m, nil
		}
		m.hoverX, m.hoverY = x, y
		m.state.PointerMoved(x, y)
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		var b engine.Button
		switch msg.Button {
		case tea.MouseButtonLeft:
			b = engine.ButtonLeft
		case tea.MouseButtonRight:
			b = engine.ButtonRight
		default:
			return m, nil
		}
		act, i, err := m.state.PointerDown(b)
		if err != nil {
			m.err = err
			m.status = "fatal: " + err.Error()
			return m, tea.Quit
		}
		if act != engine.ActionNone {
			m.status = fmt.Sprintf("%s object %d  objects: %d", act, i, m.state.Store.Len())
		}
	}
	return m, nil
}

// frame applies the held keys, renders the scene and schedules the next
// frame. Motion is per frame, not per unit of time.
func (m Model) frame(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastFrame.IsZero() {
		m.frameTime = now.Sub(m.lastFrame)
	}
	m.lastFrame = now
	m.frames++

	m.state.ApplyKeys(m.held.snapshot(now, m.hold))
	m.stats = m.state.RenderFrame()
	if m.mapW > 0 && m.mapH > 0 {
		m.canvas = m.renderCanvas(m.mapW, m.mapH)
	}
	return m, m.tick()
}
