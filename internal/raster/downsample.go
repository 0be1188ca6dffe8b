package raster

import "curvescope/internal/geom"

// Mask is a coarse view of a canvas: a micro-pixel is lit when any pixel
// of its source block differs from the background. Rows are top-down.
type Mask struct {
	W, H int
	Lit  []bool
	Col  []geom.Colour
}

// Set reports whether the micro-pixel at x, y is lit.
func (m *Mask) Set(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.Lit[y*m.W+x]
}

// Colour returns the last non-background colour seen in the block.
func (m *Mask) Colour(x, y int) geom.Colour {
	return m.Col[y*m.W+x]
}

// Downsample reduces the canvas to a w x h mask, applying the vertical
// flip on the way.
func (cv *Canvas) Downsample(w, h int, bg geom.Colour) *Mask {
	if w <= 0 || h <= 0 {
		return &Mask{}
	}
	m := &Mask{W: w, H: h, Lit: make([]bool, w*h), Col: make([]geom.Colour, w*h)}
	for y := 0; y < cv.Height; y++ {
		my := (cv.Height - 1 - y) * h / cv.Height
		row := cv.Pix[y*cv.Width : (y+1)*cv.Width]
		for x, c := range row {
			if c == bg {
				continue
			}
			i := my*w + x*w/cv.Width
			m.Lit[i] = true
			m.Col[i] = c
		}
	}
	return m
}
