package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"curvescope/internal/engine"
)

type keyMap struct {
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Clear   key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ZoomIn:  key.NewBinding(key.WithKeys("=", "+"), key.WithHelp("+/-", "zoom")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_")),
		Left:    key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("↑↓←→", "pan")),
		Right:   key.NewBinding(key.WithKeys("right", "d")),
		Up:      key.NewBinding(key.WithKeys("up", "w")),
		Down:    key.NewBinding(key.WithKeys("down", "s")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Reset:   key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset view")),
		Help:    key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.ZoomIn, k.Clear, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type heldKey int

const (
	heldZoomOut heldKey = iota
	heldZoomIn
	heldLeft
	heldRight
	heldUp
	heldDown
)

// heldKeys approximates key state from a terminal that only reports
// presses: a key counts as held while its last press or auto-repeat is
// younger than the hold window.
type heldKeys map[heldKey]time.Time

func (h heldKeys) press(k heldKey, now time.Time) { h[k] = now }

func (h heldKeys) isHeld(k heldKey, now time.Time, window time.Duration) bool {
	t, ok := h[k]
	return ok && now.Sub(t) <= window
}

func (h heldKeys) snapshot(now time.Time, window time.Duration) engine.Keys {
	for k, t := range h {
		if now.Sub(t) > window {
			delete(h, k)
		}
	}
	return engine.Keys{
		ZoomOut: h.isHeld(heldZoomOut, now, window),
		ZoomIn:  h.isHeld(heldZoomIn, now, window),
		Left:    h.isHeld(heldLeft, now, window),
		Right:   h.isHeld(heldRight, now, window),
		Up:      h.isHeld(heldUp, now, window),
		Down:    h.isHeld(heldDown, now, window),
	}
}

// heldFor maps a key press to the held key it refreshes.
func (k keyMap) heldFor(msg tea.KeyMsg) (heldKey, bool) {
	switch {
	case key.Matches(msg, k.ZoomIn):
		return heldZoomIn, true
	case key.Matches(msg, k.ZoomOut):
		return heldZoomOut, true
	case key.Matches(msg, k.Left):
		return heldLeft, true
	case key.Matches(msg, k.Right):
		return heldRight, true
	case key.Matches(msg, k.Up):
		return heldUp, true
	case key.Matches(msg, k.Down):
		return heldDown, true
	}
	return 0, false
}
