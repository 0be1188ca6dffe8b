package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"curvescope/internal/geom"
	"curvescope/internal/raster"
)

type brailleBuf struct {
	w, h int            // in cells
	m    [][]uint8       // per-cell 8-bit mask
	col  [][]geom.Colour // per-cell ink
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	col := make([][]geom.Colour, h)
	for i := range m {
		m[i] = make([]uint8, w)
		col[i] = make([]geom.Colour, w)
	}
	return &brailleBuf{w: w, h: h, m: m, col: col}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, c geom.Colour) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.col[cy][cx] = c
}

// brailleFromMask lights one micro-pixel per lit mask entry.
func brailleFromMask(mask *raster.Mask, w, h int) *brailleBuf {
	b := newBrailleBuf(w, h)
	for my := 0; my < mask.H; my++ {
		for mx := 0; mx < mask.W; mx++ {
			if mask.Set(mx, my) {
				b.setPixel(mx, my, mask.Colour(mx, my))
			}
		}
	}
	return b
}

// hexColour formats a packed colour for lipgloss.
func hexColour(c geom.Colour) string {
	r, g, b, _ := c.Components()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}

// styleCache holds one style per ink colour.
type styleCache struct {
	bg     lipgloss.Color
	styles map[geom.Colour]lipgloss.Style
}

func newStyleCache(bg geom.Colour) *styleCache {
	return &styleCache{bg: lipgloss.Color(hexColour(bg)), styles: map[geom.Colour]lipgloss.Style{}}
}

func (s *styleCache) get(c geom.Colour) lipgloss.Style {
	st, ok := s.styles[c]
	if !ok {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(hexColour(c))).Background(s.bg)
		s.styles[c] = st
	}
	return st
}

// toLines renders each row, merging runs of cells that share a colour
// into a single styled span.
func (b *brailleBuf) toLines(styles *styleCache) []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		run := make([]rune, 0, b.w)
		var runCol geom.Colour
		flush := func() {
			if len(run) > 0 {
				sb.WriteString(styles.get(runCol).Render(string(run)))
				run = run[:0]
			}
		}
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			r := ' '
			c := runCol
			if mask != 0 {
				r = rune(0x2800 + int(mask))
				c = b.col[y][x]
			}
			if c != runCol && len(run) > 0 {
				flush()
			}
			runCol = c
			run = append(run, r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

// renderCanvas turns the current frame into w x h braille cells.
func (m Model) renderCanvas(w, h int) string {
	mask := m.state.Canvas.Downsample(w*2, h*4, m.state.Palette.Background)
	lines := brailleFromMask(mask, w, h).toLines(m.styles)
	return strings.Join(lines, "\n")
}
