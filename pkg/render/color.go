package render

import "image/color"

// Pixel is a packed 0x00RRGGBB color. Alpha is implicitly opaque.
type Pixel uint32

// Named colors.
const (
	Black  Pixel = 0x000000
	White  Pixel = 0xFFFFFF
	Yellow Pixel = 0xFFFF64
	Red    Pixel = 0xFF0000
	Green  Pixel = 0x00FF00
	Blue   Pixel = 0x0000FF
)

// Pack packs three channels into a Pixel.
//
// Each channel is masked to its low 8 bits, so out-of-range values wrap
// (256 becomes 0, -1 becomes 255) rather than clamp.
func Pack(r, g, b int) Pixel {
	return Pixel((r&0xFF)<<16 | (g&0xFF)<<8 | b&0xFF)
}

// Unpack splits a Pixel into its red, green and blue channels.
func (p Pixel) Unpack() (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// RGBA converts the pixel to an opaque color.RGBA.
func (p Pixel) RGBA() color.RGBA {
	r, g, b := p.Unpack()
	return color.RGBA{r, g, b, 255}
}

// FromRGBA packs a color.RGBA, dropping alpha.
func FromRGBA(c color.RGBA) Pixel {
	return Pack(int(c.R), int(c.G), int(c.B))
}

// Gray returns a grayscale pixel for an intensity in [0, 1].
// The channel value is truncated, not rounded.
func Gray(intensity float64) Pixel {
	v := int(255 * intensity)
	return Pack(v, v, v)
}
