package render

import "github.com/taigrr/scanline/pkg/math3d"

// ScreenPoint is a vertex in raster space. X and Y are in pixels, Z is the
// model-space depth carried through for interpolation.
type ScreenPoint struct {
	X, Y, Z float64
}

// Project maps a model-space vertex, expected in roughly [-1, 1] on x and y,
// into raster space. The y axis is inverted.
//
// The viewport height scales both axes, so the image is square regardless of
// the framebuffer width. Depth passes through unchanged.
func Project(v math3d.Vec3, viewportHeight int) ScreenPoint {
	h := float64(viewportHeight)
	return ScreenPoint{
		X: (v.X + 1) / 2 * h,
		Y: h - (v.Y+1)/2*h,
		Z: v.Z,
	}
}
