// Package render implements a flat-shaded scanline triangle rasterizer with a
// depth buffer, plus the presenters that hand finished frames to a host.
package render

import "image"

// Index returns the buffer position of (x, y) in a row-major buffer of the
// given width. It performs no bounds checking.
func Index(x, y, width int) int {
	return x + y*width
}

// Framebuffer is a fixed-size row-major array of packed colors.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Pixel
}

// NewFramebuffer creates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Pixel, width*height),
	}
}

// Clear overwrites every pixel with c.
func (fb *Framebuffer) Clear(c Pixel) {
	n := len(fb.Pixels)
	if n == 0 {
		return
	}
	fb.Pixels[0] = c
	for i := 1; i < n; i *= 2 {
		copy(fb.Pixels[i:], fb.Pixels[:i])
	}
}

// InBounds reports whether (x, y) addresses a pixel of the framebuffer.
func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// SetPixel sets the pixel at (x, y). Out-of-range writes are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c Pixel) {
	if !fb.InBounds(x, y) {
		return
	}
	fb.Pixels[Index(x, y, fb.Width)] = c
}

// GetPixel returns the pixel at (x, y), or Black when out of range.
func (fb *Framebuffer) GetPixel(x, y int) Pixel {
	if !fb.InBounds(x, y) {
		return Black
	}
	return fb.Pixels[Index(x, y, fb.Width)]
}

// ToImage unpacks the framebuffer into a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	return PixelsToImage(fb.Pixels, fb.Width, fb.Height)
}

// PixelsToImage unpacks a row-major pixel slice into an opaque image.RGBA.
func PixelsToImage(pixels []Pixel, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, p := range pixels {
		if i >= width*height {
			break
		}
		o := i * 4
		img.Pix[o+0], img.Pix[o+1], img.Pix[o+2] = p.Unpack()
		img.Pix[o+3] = 255
	}
	return img
}
