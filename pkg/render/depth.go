package render

import "math"

// DepthBuffer holds one depth value per pixel, same layout as Framebuffer.
// Larger values are nearer to the viewer.
type DepthBuffer struct {
	Width  int
	Height int
	Values []float64
}

// NewDepthBuffer creates a depth buffer cleared to negative infinity.
func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}
	d.Reset()
	return d
}

// Clear overwrites every slot with v.
func (d *DepthBuffer) Clear(v float64) {
	n := len(d.Values)
	if n == 0 {
		return
	}
	d.Values[0] = v
	for i := 1; i < n; i *= 2 {
		copy(d.Values[i:], d.Values[:i])
	}
}

// Reset clears the buffer to negative infinity, so the first fragment at any
// pixel always passes the depth test.
func (d *DepthBuffer) Reset() {
	d.Clear(math.Inf(-1))
}

// At returns the depth at (x, y), or negative infinity when out of range.
func (d *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return math.Inf(-1)
	}
	return d.Values[Index(x, y, d.Width)]
}
