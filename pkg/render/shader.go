package render

import "github.com/taigrr/scanline/pkg/math3d"

// DefaultLight is a light pointing into the screen. Faces wound
// counter-clockwise in model space face it.
var DefaultLight = math3d.V3(0, 0, -1)

// FlatShader computes one color per triangle from its face normal.
type FlatShader struct {
	// Light is the light direction. It is used as given, not normalized.
	Light math3d.Vec3

	// BackFace is the color used for faces turned away from the light.
	BackFace Pixel
}

// NewFlatShader returns a shader with the default light and a red back-face
// sentinel.
func NewFlatShader() FlatShader {
	return FlatShader{Light: DefaultLight, BackFace: Red}
}

// Shade returns the color of the triangle (v0, v1, v2) and its light
// intensity.
//
// The normal is (v2-v0) x (v1-v0). Faces with intensity <= 0 get BackFace but
// are still rasterized. Lit faces are gray with the channel value truncated
// from 255*intensity. A collinear triangle has a zero normal and therefore
// zero intensity.
func (s FlatShader) Shade(v0, v1, v2 math3d.Vec3) (Pixel, float64) {
	n := v2.Sub(v0).Cross(v1.Sub(v0)).Normalize()
	intensity := n.Dot(s.Light)
	if intensity <= 0 {
		return s.BackFace, intensity
	}
	return Gray(intensity), intensity
}
