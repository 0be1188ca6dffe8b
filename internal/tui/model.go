package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"curvescope/internal/config"
	"curvescope/internal/engine"
)

type Model struct {
	width  int
	height int

	helpVisible bool

	status string

	// Scene
	state *engine.State
	cfg   config.Config

	// Input
	keys keyMap
	help help.Model
	held heldKeys
	hold time.Duration

	// last rendered canvas size in cells
	mapW int
	mapH int
	// braille rendering of the last frame
	canvas string
	styles *styleCache

	// hover state
	hovering bool
	hoverX   float64
	hoverY   float64

	// diagnostics
	frames    int
	lastFrame time.Time
	frameTime time.Duration
	stats     engine.FrameStats

	// err is fatal; the program quits once it is set
	err error
}

// New builds the host around an already configured scene state.
func New(cfg config.Config, st *engine.State) Model {
	m := Model{
		helpVisible: true,
		status:      "curvescope ready",
		state:       st,
		cfg:         cfg,
		keys:        defaultKeyMap(),
		help:        help.New(),
		held:        heldKeys{},
		hold:        cfg.Hold(),
		styles:      newStyleCache(st.Palette.Background),
	}
	m.help.ShortSeparator = "  "
	return m
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// State returns the scene state driven by the model.
func (m Model) State() *engine.State { return m.state }

func (m Model) Init() tea.Cmd { return m.tick() }
