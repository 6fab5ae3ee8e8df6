package render

import "math"

// DrawLine draws a segment between two integer points with Bresenham's
// algorithm.
//
// Steep lines are walked along y by swapping the axes, and endpoints are
// ordered so the walk always advances in +x of the (possibly swapped) space.
// Every integer step of the major axis gets exactly one write. Writes that fall
// outside the framebuffer are dropped.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Pixel) {
	steep := false
	if abs(x0-x1) < abs(y0-y1) {
		steep = true
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	derror := abs(dy) * 2
	errAcc := 0
	yinc := 1
	if y1 < y0 {
		yinc = -1
	}

	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			fb.SetPixel(y, x, c)
		} else {
			fb.SetPixel(x, y, c)
		}
		errAcc += derror
		if errAcc > dx {
			y += yinc
			errAcc -= dx * 2
		}
	}
}

// DrawSegment rounds two screen points to the nearest pixel and draws the line
// between them.
func (fb *Framebuffer) DrawSegment(a, b ScreenPoint, c Pixel) {
	fb.DrawLine(roundHalfUp(a.X), roundHalfUp(a.Y), roundHalfUp(b.X), roundHalfUp(b.Y), c)
}

// roundHalfUp rounds to the nearest integer with ties going toward +Inf.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
