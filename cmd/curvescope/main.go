package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"curvescope/internal/config"
	"curvescope/internal/engine"
	"curvescope/internal/tui"
)

func main() {
	var (
		cfgPath       = flag.StringP("config", "c", "", "TOML settings file")
		snapshot      = flag.String("snapshot", "", "render one frame to this image file (.png, .bmp, .tiff) and exit")
		snapshotWidth = flag.Int("snapshot-width", 0, "scale the snapshot to this width")
		debugLog      = flag.String("debug", "", "write debug logs to this file")
		seed          = flag.Int("objects", 0, "place this many objects at startup")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}

	logger, closeLog, err := newLogger(*debugLog)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()
	logger.Info("starting", "width", cfg.Width, "height", cfg.Height, "scale", cfg.InitialScale, "config", *cfgPath)

	st := engine.NewState(cfg, logger)
	if err := st.Seed(*seed); err != nil {
		log.Fatal(err)
	}

	if *snapshot != "" {
		stats := st.RenderFrame()
		if err := st.Canvas.Save(*snapshot, *snapshotWidth); err != nil {
			log.Fatal(err)
		}
		logger.Info("snapshot written", "path", *snapshot, "drawn", stats.Drawn, "culled", stats.Culled)
		fmt.Printf("wrote %s (%d objects drawn)\n", *snapshot, stats.Drawn)
		return
	}

	m := tui.New(cfg, st)
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if err != nil {
		log.Fatal(err)
	}
	if fm, ok := final.(tui.Model); ok && fm.Err() != nil {
		logger.Error("stopped", "err", fm.Err())
		log.Fatal(fm.Err())
	}
}

// newLogger logs to path through bubbletea's file logger, or nowhere when
// path is empty. The terminal belongs to the UI.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(path, "curvescope")
	if err != nil {
		return nil, nil, err
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { f.Close() }, nil
}
