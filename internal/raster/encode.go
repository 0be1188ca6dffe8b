package raster

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format is an image file format for snapshots.
type Format int

const (
	PNG Format = iota
	BMP
	TIFF
)

// ErrUnknownFormat is returned for file extensions with no encoder.
var ErrUnknownFormat = errors.New("raster: unknown image format")

// FormatFromExt maps a file extension such as ".png" to a Format.
func FormatFromExt(ext string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("%q: %w", ext, ErrUnknownFormat)
}

// Resize scales img to the given width, keeping the aspect ratio.
// A non-positive width or the image's own width returns img unchanged.
func Resize(img image.Image, width int) image.Image {
	b := img.Bounds()
	if width <= 0 || width == b.Dx() {
		return img
	}
	height := max(1, b.Dy()*width/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("format %d: %w", f, ErrUnknownFormat)
	}
}

// Save writes the presented frame to filename, inferring the format from
// its extension and scaling it to width when width is positive.
func (cv *Canvas) Save(filename string, width int) error {
	f, err := FormatFromExt(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if err := Encode(bw, Resize(cv.Image(), width), f); err != nil {
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return file.Close()
}
