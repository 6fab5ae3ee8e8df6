package render

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"time"

	"github.com/taigrr/scanline/pkg/math3d"
)

// MeshSource is the geometry a Renderer draws. Vertices are expected in
// roughly [-1, 1] on x and y.
type MeshSource interface {
	VertexCount() int
	TriangleCount() int
	GetVertex(i int) math3d.Vec3
	GetFace(i int) [3]int
}

// Mode selects how faces are drawn.
type Mode int

const (
	// ModeFilled fills faces with flat shading and depth testing.
	ModeFilled Mode = iota
	// ModeWireframe draws face edges only, without depth testing.
	ModeWireframe
)

func (m Mode) String() string {
	switch m {
	case ModeFilled:
		return "filled"
	case ModeWireframe:
		return "wireframe"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "filled" or "wireframe".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "filled", "fill", "solid":
		return ModeFilled, nil
	case "wireframe", "wire", "lines":
		return ModeWireframe, nil
	}
	return ModeFilled, fmt.Errorf("unknown render mode %q", s)
}

// State is the lifecycle state of a Renderer.
type State int32

const (
	StateIdle State = iota
	StateDrawing
)

func (s State) String() string {
	if s == StateDrawing {
		return "drawing"
	}
	return "idle"
}

// FrameStats describes the last completed frame.
type FrameStats struct {
	Faces      int           // faces rasterized
	BackFacing int           // faces drawn with the back-face color
	Skipped    int           // faces skipped for bad indices
	DrawTime   time.Duration // clear and rasterize
	TotalTime  time.Duration // DrawTime plus presentation
}

// Renderer owns a framebuffer and depth buffer and turns a mesh into a frame.
// The buffers are allocated once and cleared at the start of every draw.
//
// A Renderer is meant to be driven from one goroutine. DrawFrame rejects
// overlapping calls with ErrDrawInProgress instead of blocking.
type Renderer struct {
	fb    *Framebuffer
	depth *DepthBuffer

	presenter  Presenter
	background Pixel
	shader     FlatShader
	mode       Mode
	seed       uint64

	state atomic.Int32
	stats FrameStats
}

// NewRenderer creates a renderer with a width x height target.
func NewRenderer(width, height int, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		fb:         NewFramebuffer(width, height),
		depth:      NewDepthBuffer(width, height),
		presenter:  o.presenter,
		background: o.background,
		shader:     o.shader,
		mode:       o.mode,
		seed:       o.seed,
	}
}

// DrawFrame clears both buffers, draws every face of mesh in order and hands
// the result to the presenter.
//
// Faces that index outside the vertex range are skipped. The rest of the
// frame is still drawn and presented, and the call then returns a
// *MalformedMeshError listing the skipped faces. If presentation also fails,
// both errors are joined into one. Calling DrawFrame while a draw is running
// returns ErrDrawInProgress and leaves the buffers alone.
func (r *Renderer) DrawFrame(mesh MeshSource) error {
	if !r.state.CompareAndSwap(int32(StateIdle), int32(StateDrawing)) {
		return ErrDrawInProgress
	}
	defer r.state.Store(int32(StateIdle))

	start := time.Now()
	r.fb.Clear(r.background)
	r.depth.Reset()

	var stats FrameStats
	var bad []int
	vertexCount := mesh.VertexCount()
	rng := rand.New(rand.NewPCG(r.seed, r.seed))

	for i := range mesh.TriangleCount() {
		face := mesh.GetFace(i)
		if !faceInRange(face, vertexCount) {
			bad = append(bad, i)
			continue
		}

		v0 := mesh.GetVertex(face[0])
		v1 := mesh.GetVertex(face[1])
		v2 := mesh.GetVertex(face[2])
		tri := [3]ScreenPoint{
			Project(v0, r.fb.Height),
			Project(v1, r.fb.Height),
			Project(v2, r.fb.Height),
		}

		if r.mode == ModeWireframe {
			r.fb.DrawWireTriangle(tri, wireColor(rng.Float64))
			stats.Faces++
			continue
		}

		c, intensity := r.shader.Shade(v0, v1, v2)
		if intensity <= 0 {
			stats.BackFacing++
		}
		FillTriangle(tri, c, r.depth, r.fb)
		stats.Faces++
	}
	stats.Skipped = len(bad)
	stats.DrawTime = time.Since(start)

	presentErr := r.presenter.Present(r.fb.Pixels, r.fb.Width, r.fb.Height)
	stats.TotalTime = time.Since(start)
	r.stats = stats

	log := Logger()
	log.Debug("frame drawn",
		"mode", r.mode,
		"faces", stats.Faces,
		"back_facing", stats.BackFacing,
		"skipped", stats.Skipped,
		"draw", stats.DrawTime,
		"total", stats.TotalTime,
	)

	var errs []error
	if presentErr != nil {
		log.Warn("present failed", "err", presentErr)
		errs = append(errs, fmt.Errorf("present frame: %w", presentErr))
	}
	if len(bad) > 0 {
		log.Warn("skipped malformed faces", "count", len(bad), "vertices", vertexCount)
		errs = append(errs, &MalformedMeshError{Faces: bad, VertexCount: vertexCount})
	}
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

// Resize reallocates the buffers. It fails with ErrDrawInProgress during a
// draw.
func (r *Renderer) Resize(width, height int) error {
	if !r.state.CompareAndSwap(int32(StateIdle), int32(StateDrawing)) {
		return ErrDrawInProgress
	}
	defer r.state.Store(int32(StateIdle))

	if width == r.fb.Width && height == r.fb.Height {
		return nil
	}
	r.fb = NewFramebuffer(width, height)
	r.depth = NewDepthBuffer(width, height)
	return nil
}

// State returns the current lifecycle state.
func (r *Renderer) State() State { return State(r.state.Load()) }

// Stats returns the statistics of the last completed frame.
func (r *Renderer) Stats() FrameStats { return r.stats }

// Framebuffer returns the color target. Its contents are those of the last
// frame until the next draw.
func (r *Renderer) Framebuffer() *Framebuffer { return r.fb }

// Depth returns the depth target.
func (r *Renderer) Depth() *DepthBuffer { return r.depth }

// Mode returns the current drawing mode.
func (r *Renderer) Mode() Mode { return r.mode }

// SetMode switches between filled and wireframe drawing for later frames.
func (r *Renderer) SetMode(m Mode) { r.mode = m }

// SetBackground changes the clear color for later frames.
func (r *Renderer) SetBackground(c Pixel) { r.background = c }

// Shader returns the flat shader in use.
func (r *Renderer) Shader() FlatShader { return r.shader }

func faceInRange(face [3]int, vertexCount int) bool {
	for _, idx := range face {
		if idx < 0 || idx >= vertexCount {
			return false
		}
	}
	return true
}
