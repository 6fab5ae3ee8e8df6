package render

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
)

// FillTriangle fills a triangle with a single color using scanline
// decomposition and a strict greater-than depth test.
//
// The vertices are sorted by y and the triangle is split at the middle vertex
// into a bottom and a top half that share the long edge. Each integer scanline
// covers the pixels from ceil(left) to floor(right). Depth is interpolated with
// barycentric weights computed against the triangle as given, and a fragment is
// written only when it is nearer (larger z) than what the depth buffer holds.
//
// Triangles whose three y coordinates are equal are skipped. Rows and spans are
// clamped to the buffers on both sides, in floating point before any integer
// conversion, so no write ever leaves them and far-off vertices still fill
// the visible part.
func FillTriangle(tri [3]ScreenPoint, c Pixel, depth *DepthBuffer, fb *Framebuffer) {
	p0, p1, p2 := tri[0], tri[1], tri[2]
	if p0.Y == p1.Y && p1.Y == p2.Y {
		return
	}

	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	if p0.Y > p2.Y {
		p0, p2 = p2, p0
	}
	if p1.Y > p2.Y {
		p1, p2 = p2, p1
	}

	s := spanFiller{
		tri:    tri,
		color:  c,
		depth:  depth,
		fb:     fb,
		width:  min(fb.Width, depth.Width),
		height: min(fb.Height, depth.Height),
	}

	// rows are limited to [-1, height] before conversion so huge
	// coordinates cannot overflow int
	lo, hi := -1.0, float64(s.height)
	topStart := ceilIn(p1.Y, lo, hi)
	if p1.Y > p0.Y {
		s.fillHalf(p0, p2, p0, p1, ceilIn(p0.Y, lo, hi), floorIn(p1.Y, lo, hi))
		// the bottom half already owns the scanline through p1
		topStart = floorIn(p1.Y, lo, hi) + 1
	}
	if p2.Y > p1.Y {
		s.fillHalf(p0, p2, p1, p2, topStart, floorIn(p2.Y, lo, hi))
	}
}

// ceilIn returns ceil(v) with v first limited to [lo, hi].
func ceilIn(v, lo, hi float64) int {
	return int(math.Ceil(min(max(v, lo), hi)))
}

// floorIn returns floor(v) with v first limited to [lo, hi].
func floorIn(v, lo, hi float64) int {
	return int(math.Floor(min(max(v, lo), hi)))
}

// spanFiller carries the per-triangle state shared by both halves.
type spanFiller struct {
	tri    [3]ScreenPoint
	color  Pixel
	depth  *DepthBuffer
	fb     *Framebuffer
	width  int
	height int
}

// fillHalf walks scanlines yStart..yEnd between the long edge (l0, l1) and the
// short edge (s0, s1).
func (s *spanFiller) fillHalf(l0, l1, s0, s1 ScreenPoint, yStart, yEnd int) {
	longH := l1.Y - l0.Y
	shortH := s1.Y - s0.Y
	if longH == 0 || shortH == 0 {
		return
	}

	yStart = max(yStart, 0)
	yEnd = min(yEnd, s.height-1)

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)
		xa := l0.X + (l1.X-l0.X)*(fy-l0.Y)/longH
		xb := s0.X + (s1.X-s0.X)*(fy-s0.Y)/shortH
		if xa > xb {
			xa, xb = xb, xa
		}

		if xa >= float64(s.width) || xb < 0 {
			continue
		}
		left := max(ceilIn(xa, -1, float64(s.width)), 0)
		right := min(floorIn(xb, -1, float64(s.width)), s.width-1)

		for x := left; x <= right; x++ {
			s.plot(x, y)
		}
	}
}

// plot interpolates depth at (x, y) and writes the fragment if it is nearer.
func (s *spanFiller) plot(x, y int) {
	bc, ok := barycentric(s.tri[0], s.tri[1], s.tri[2], float64(x), float64(y))
	if !ok {
		return
	}

	z := bc.X*s.tri[0].Z + bc.Y*s.tri[1].Z + bc.Z*s.tri[2].Z
	di := Index(x, y, s.depth.Width)
	if z > s.depth.Values[di] {
		s.depth.Values[di] = z
		s.fb.Pixels[Index(x, y, s.fb.Width)] = s.color
	}
}

// barycentric returns the weights (w, u, v) of point (px, py) for vertices
// p0, p1 and p2, solved with a 2D cross product. ok is false when the
// projected triangle is collinear.
func barycentric(p0, p1, p2 ScreenPoint, px, py float64) (bc math3d.Vec3, ok bool) {
	u := math3d.V3(p2.X-p0.X, p1.X-p0.X, p0.X-px).
		Cross(math3d.V3(p2.Y-p0.Y, p1.Y-p0.Y, p0.Y-py))
	if math.Abs(u.Z) < 1e-12 {
		return math3d.Vec3{}, false
	}
	return math3d.V3(1-(u.X+u.Y)/u.Z, u.Y/u.Z, u.X/u.Z), true
}
