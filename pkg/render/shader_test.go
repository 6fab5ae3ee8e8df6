package render

import (
	"math"
	"testing"

	"github.com/taigrr/scanline/pkg/math3d"
)

func TestFlatShader(t *testing.T) {
	tests := []struct {
		name          string
		v0, v1, v2    math3d.Vec3
		wantColor     Pixel
		wantIntensity float64
	}{
		{
			name:          "facing the light",
			v0:            math3d.V3(-1, -1, 0),
			v1:            math3d.V3(1, -1, 0),
			v2:            math3d.V3(0, 1, 0),
			wantColor:     White,
			wantIntensity: 1,
		},
		{
			name:          "facing away",
			v0:            math3d.V3(-1, -1, 0),
			v1:            math3d.V3(0, 1, 0),
			v2:            math3d.V3(1, -1, 0),
			wantColor:     Red,
			wantIntensity: -1,
		},
		{
			name:          "tilted",
			v0:            math3d.V3(0, 0, 0),
			v1:            math3d.V3(1, 0, 0),
			v2:            math3d.V3(0, 1, 1),
			wantColor:     Pack(180, 180, 180),
			wantIntensity: math.Sqrt2 / 2,
		},
		{
			name:          "edge on",
			v0:            math3d.V3(0, 0, 0),
			v1:            math3d.V3(1, 0, 0),
			v2:            math3d.V3(0, 0, 1),
			wantColor:     Red,
			wantIntensity: 0,
		},
		{
			name:          "collinear",
			v0:            math3d.V3(0, 0, 0),
			v1:            math3d.V3(1, 1, 1),
			v2:            math3d.V3(2, 2, 2),
			wantColor:     Red,
			wantIntensity: 0,
		},
	}

	s := NewFlatShader()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, intensity := s.Shade(tc.v0, tc.v1, tc.v2)
			if c != tc.wantColor {
				t.Errorf("color = %#06x, want %#06x", c, tc.wantColor)
			}
			if math.Abs(intensity-tc.wantIntensity) > 1e-9 {
				t.Errorf("intensity = %v, want %v", intensity, tc.wantIntensity)
			}
		})
	}
}

func TestFlatShaderCustomSentinel(t *testing.T) {
	s := FlatShader{Light: math3d.V3(0, 0, 1), BackFace: Yellow}

	// Lit from behind, the front face becomes the back face.
	c, _ := s.Shade(math3d.V3(-1, -1, 0), math3d.V3(1, -1, 0), math3d.V3(0, 1, 0))
	if c != Yellow {
		t.Errorf("color = %#06x, want sentinel %#06x", c, Yellow)
	}
}
