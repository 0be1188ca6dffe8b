// Package engine ties the camera, object store and canvas together: it
// applies input to them and renders one frame at a time.
//
// Everything runs on one goroutine. A State must not be shared between
// goroutines.
package engine

import (
	"io"
	"log/slog"

	"curvescope/internal/camera"
	"curvescope/internal/config"
	"curvescope/internal/geom"
	"curvescope/internal/raster"
	"curvescope/internal/scene"
)

// State is the whole application state.
type State struct {
	Camera   *camera.Camera
	Store    *scene.Store
	Canvas   *raster.Canvas
	Palette  config.Palette
	Template scene.Object
	GridUnit float64

	Log *slog.Logger

	// last device pointer position, in host coordinates
	deviceX, deviceY float64
	// set while a zoom key was held on the previous frame
	zoomLatched bool

	initialScale float64
}

// NewState builds the state described by cfg.
func NewState(cfg config.Config, log *slog.Logger) *State {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cam := camera.New(cfg.Width, cfg.Height, cfg.InitialScale)
	cam.Factor = cfg.ZoomFactor
	cam.MinScale, cam.MaxScale = cfg.MinScale, cfg.MaxScale

	pal := cfg.Palette()
	s := &State{
		Camera:       cam,
		Store:        scene.NewStore(cfg.MaxObjects),
		Canvas:       raster.NewCanvas(cfg.Width, cfg.Height),
		Palette:      pal,
		Template:     scene.NewObject(cfg.Shape(), cfg.Template.Scale, pal.Object),
		GridUnit:     cfg.GridUnit,
		Log:          log,
		initialScale: cfg.InitialScale,
	}
	s.Store.OnGrow = func(oldCap, newCap int) {
		s.Log.Debug("object store grown", "from", oldCap, "to", newCap)
	}
	s.deviceX, s.deviceY = float64(cfg.Width)/2, float64(cfg.Height)/2
	cam.UpdatePointer(s.deviceX, s.deviceY)
	return s
}

// Pointer returns the current world-space pointer.
func (s *State) Pointer() geom.Point { return s.Camera.Pointer }

func (s *State) updatePointer() {
	s.Camera.UpdatePointer(s.deviceX, s.deviceY)
}
