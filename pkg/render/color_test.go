package render

import (
	"image/color"
	"testing"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	for r := range 256 {
		for g := range 256 {
			for b := range 256 {
				gr, gg, gb := Pack(r, g, b).Unpack()
				if int(gr) != r || int(gg) != g || int(gb) != b {
					t.Fatalf("Unpack(Pack(%d, %d, %d)) = (%d, %d, %d)", r, g, b, gr, gg, gb)
				}
			}
		}
	}
}

func TestPackMasksChannels(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    Pixel
	}{
		{"white", 255, 255, 255, White},
		{"overflow wraps", 256, 0, 0, Black},
		{"negative wraps", -1, 0, 0, Red},
		{"high bits dropped", 0x1FF, 0x100, 0x2FF, Pack(255, 0, 255)},
		{"yellow", 255, 255, 100, Yellow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Pack(tc.r, tc.g, tc.b); got != tc.want {
				t.Errorf("Pack(%d, %d, %d) = %#06x, want %#06x", tc.r, tc.g, tc.b, got, tc.want)
			}
		})
	}
}

func TestGrayTruncates(t *testing.T) {
	tests := []struct {
		intensity float64
		want      uint8
	}{
		{1, 255},
		{0.5, 127},
		{0.999, 254},
		{0.0039, 0},
	}

	for _, tc := range tests {
		r, g, b := Gray(tc.intensity).Unpack()
		if r != tc.want || g != tc.want || b != tc.want {
			t.Errorf("Gray(%v) = (%d, %d, %d), want %d", tc.intensity, r, g, b, tc.want)
		}
	}
}

func TestPixelRGBA(t *testing.T) {
	want := color.RGBA{0x12, 0x34, 0x56, 255}
	p := Pixel(0x123456)
	if got := p.RGBA(); got != want {
		t.Errorf("RGBA() = %v, want %v", got, want)
	}
	if got := FromRGBA(want); got != p {
		t.Errorf("FromRGBA() = %#06x, want %#06x", got, p)
	}
}
