// Package raster is the software renderer. It is the only code that
// writes pixels.
package raster

import (
	"image"

	"curvescope/internal/geom"
)

// Canvas is a fixed-size row-major pixel buffer. Row 0 is the bottom row;
// Image flips it once for presentation.
type Canvas struct {
	Width, Height int
	Pix           []geom.Colour
}

// NewCanvas allocates a w x h buffer.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{Width: w, Height: h, Pix: make([]geom.Colour, w*h)}
}

// Fill sets every pixel to c.
func (cv *Canvas) Fill(c geom.Colour) {
	for i := range cv.Pix {
		cv.Pix[i] = c
	}
}

// InBounds reports whether p addresses a pixel of the buffer.
func (cv *Canvas) InBounds(p geom.IntPoint) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < int64(cv.Width) && p.Y < int64(cv.Height)
}

// SetPixel writes c at p. Writes outside the buffer are dropped.
func (cv *Canvas) SetPixel(p geom.IntPoint, c geom.Colour) {
	if !cv.InBounds(p) {
		return
	}
	cv.Pix[p.Y*int64(cv.Width)+p.X] = c
}

// At returns the pixel at x, y in internal (bottom-up) coordinates.
func (cv *Canvas) At(x, y int) geom.Colour {
	return cv.Pix[y*cv.Width+x]
}

// Image copies the buffer into an RGBA image with the vertical flip
// applied, top row first.
func (cv *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cv.Width, cv.Height))
	for y := 0; y < cv.Height; y++ {
		src := cv.Pix[(cv.Height-1-y)*cv.Width : (cv.Height-y)*cv.Width]
		dst := img.Pix[y*img.Stride:]
		for x, c := range src {
			r, g, b, a := c.Components()
			dst[4*x] = r
			dst[4*x+1] = g
			dst[4*x+2] = b
			dst[4*x+3] = a
		}
	}
	return img
}
