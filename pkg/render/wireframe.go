package render

// Wireframe palette thresholds. The high threshold is tested against one
// draw; if it fails, a second draw is tested against the mid threshold.
const (
	wireHighThreshold = 0.66
	wireMidThreshold  = 0.5
)

// Wireframe colors.
var (
	WireHigh = White
	WireMid  = Green
	WireLow  = Blue
)

// wireColor picks a wireframe color from uniform draws in [0, 1). It takes
// one draw for white and a fresh one to choose between green and blue.
func wireColor(next func() float64) Pixel {
	if next() > wireHighThreshold {
		return WireHigh
	}
	if next() > wireMidThreshold {
		return WireMid
	}
	return WireLow
}

// DrawWireTriangle outlines a projected triangle with three segments.
func (fb *Framebuffer) DrawWireTriangle(tri [3]ScreenPoint, c Pixel) {
	fb.DrawSegment(tri[0], tri[1], c)
	fb.DrawSegment(tri[1], tri[2], c)
	fb.DrawSegment(tri[2], tri[0], c)
}
