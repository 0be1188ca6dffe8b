// Package config holds the viewer settings and loads them from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	toml "github.com/pelletier/go-toml/v2"

	"curvescope/internal/geom"
)

// Config is the full set of tunables. The zero value is not usable;
// start from Default.
type Config struct {
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	GridUnit     float64 `toml:"grid_unit"`
	ZoomFactor   float64 `toml:"zoom_factor"`
	InitialScale float64 `toml:"initial_scale"`
	MinScale     float64 `toml:"min_scale"`
	MaxScale     float64 `toml:"max_scale"`
	MaxObjects   int     `toml:"max_objects"`
	FPS          int     `toml:"fps"`
	HoldWindow   string  `toml:"hold_window"`

	Colours  Colours  `toml:"colours"`
	Template Template `toml:"template"`
}

// Colours are hex strings such as "#112028".
type Colours struct {
	Background string `toml:"background"`
	Grid       string `toml:"grid"`
	Pointer    string `toml:"pointer"`
}

// Template describes the shape stamped on every click.
type Template struct {
	Scale  float64      `toml:"scale"`
	Colour string       `toml:"colour"`
	Curves []CurveEntry `toml:"curve"`
}

// CurveEntry is one quadratic Bezier segment as written in the file.
type CurveEntry struct {
	From    [2]float64 `toml:"from"`
	To      [2]float64 `toml:"to"`
	Control [2]float64 `toml:"control"`
}

// Default returns the reference settings: a 2160x1440 buffer showing 32
// world units across.
func Default() Config {
	return Config{
		Width:        2160,
		Height:       1440,
		GridUnit:     1,
		ZoomFactor:   0.9,
		InitialScale: 2160.0 / 32,
		MinScale:     0.05,
		MaxScale:     1e6,
		MaxObjects:   1 << 20,
		FPS:          30,
		HoldWindow:   "600ms",
		Colours: Colours{
			Background: "#112028",
			Grid:       "#707075",
			Pointer:    "#ffff00",
		},
		Template: Template{
			Scale:  0.5,
			Colour: "#a0a0a0",
		},
	}
}

// Load reads path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks ranges and colour strings.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", c.Width, c.Height))
	}
	if c.GridUnit <= 0 {
		errs = append(errs, fmt.Errorf("grid_unit %v must be positive", c.GridUnit))
	}
	if c.ZoomFactor <= 0 || c.ZoomFactor >= 1 {
		errs = append(errs, fmt.Errorf("zoom_factor %v must be in (0, 1)", c.ZoomFactor))
	}
	if c.InitialScale <= 0 {
		errs = append(errs, fmt.Errorf("initial_scale %v must be positive", c.InitialScale))
	}
	if c.MinScale < 0 || (c.MaxScale > 0 && c.MaxScale < c.MinScale) {
		errs = append(errs, fmt.Errorf("scale range [%v, %v] is invalid", c.MinScale, c.MaxScale))
	}
	if c.MaxObjects < 0 {
		errs = append(errs, fmt.Errorf("max_objects %d must not be negative", c.MaxObjects))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", c.FPS))
	}
	if _, err := time.ParseDuration(c.HoldWindow); err != nil {
		errs = append(errs, fmt.Errorf("hold_window: %w", err))
	}
	if c.Template.Scale <= 0 {
		errs = append(errs, fmt.Errorf("template.scale %v must be positive", c.Template.Scale))
	}
	for name, s := range map[string]string{
		"colours.background": c.Colours.Background,
		"colours.grid":       c.Colours.Grid,
		"colours.pointer":    c.Colours.Pointer,
		"template.colour":    c.Template.Colour,
	} {
		if _, err := ParseColour(s); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ParseColour parses a hex colour into an opaque packed colour.
func ParseColour(s string) (geom.Colour, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, err
	}
	r, g, b := c.RGB255()
	return geom.RGBA(r, g, b, 0xFF), nil
}

// Hold returns the parsed hold window.
func (c Config) Hold() time.Duration {
	d, err := time.ParseDuration(c.HoldWindow)
	if err != nil {
		return 600 * time.Millisecond
	}
	return d
}

// Palette is the resolved set of frame colours.
type Palette struct {
	Background, Grid, Pointer, Object geom.Colour
}

// Palette resolves the colour strings. Invalid entries fall back to the
// defaults; Validate reports them.
func (c Config) Palette() Palette {
	def := Default()
	pick := func(s, fallback string) geom.Colour {
		if col, err := ParseColour(s); err == nil {
			return col
		}
		col, _ := ParseColour(fallback)
		return col
	}
	return Palette{
		Background: pick(c.Colours.Background, def.Colours.Background),
		Grid:       pick(c.Colours.Grid, def.Colours.Grid),
		Pointer:    pick(c.Colours.Pointer, def.Colours.Pointer),
		Object:     pick(c.Template.Colour, def.Template.Colour),
	}
}

// Shape builds the template shape, the built-in one when no curves are
// configured.
func (c Config) Shape() *geom.Shape {
	if len(c.Template.Curves) == 0 {
		return geom.DefaultShape()
	}
	s := &geom.Shape{Curves: make([]geom.Curve, len(c.Template.Curves))}
	for i, e := range c.Template.Curves {
		s.Curves[i] = geom.Curve{
			From:    geom.Point{X: e.From[0], Y: e.From[1]},
			To:      geom.Point{X: e.To[0], Y: e.To[1]},
			Control: geom.Point{X: e.Control[0], Y: e.Control[1]},
		}
	}
	return s
}
