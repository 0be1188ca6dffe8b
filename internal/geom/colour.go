package geom

import "image/color"

// Colour is a packed RGBA8888 value. Read as a little-endian uint32 the
// bytes R, G, B, A in memory become 0xAABBGGRR.
type Colour uint32

// RGBA packs four 8-bit channels.
func RGBA(r, g, b, a uint8) Colour {
	return Colour(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// Components unpacks the channels.
func (c Colour) Components() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// NRGBA converts c to a standard library colour.
func (c Colour) NRGBA() color.NRGBA {
	r, g, b, a := c.Components()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// FromColor packs any image colour.
func FromColor(col color.Color) Colour {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}
