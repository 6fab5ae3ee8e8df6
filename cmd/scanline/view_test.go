package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/scanline/pkg/models"
	"github.com/taigrr/scanline/pkg/render"
)

// fakeScreen is an in-memory terminal that counts Display calls.
type fakeScreen struct {
	uv.ScreenBuffer
	displays int
}

func (f *fakeScreen) Display() error {
	f.displays++
	return nil
}

// rowText joins the contents of one screen row.
func (f *fakeScreen) rowText(row, cols int) string {
	var sb strings.Builder
	for col := range cols {
		if c := f.CellAt(col, row); c != nil {
			sb.WriteString(c.Content)
		}
	}
	return sb.String()
}

func newTestViewer(t *testing.T, cols, rows int) (*viewer, *fakeScreen) {
	t.Helper()
	mesh, err := models.LoadOBJ("testdata/triangle.obj")
	require.NoError(t, err)

	scr := &fakeScreen{ScreenBuffer: uv.NewScreenBuffer(cols, rows)}
	pres := render.NewTerminalPresenter(scr, cols, rows)
	w, h := pres.FramebufferSize()
	r := render.NewRenderer(w, h, render.WithPresenter(pres))
	return newViewer("testdata/triangle.obj", mesh, r, pres, 60, time.Now()), scr
}

func key(s string) uv.KeyPressEvent {
	r := []rune(s)[0]
	return uv.KeyPressEvent{Code: r, Text: s}
}

func TestViewerQuitKeys(t *testing.T) {
	v, _ := newTestViewer(t, 20, 10)
	for _, ev := range []uv.KeyPressEvent{
		key("q"),
		{Code: uv.KeyEscape},
		{Code: 'c', Mod: uv.ModCtrl},
	} {
		assert.True(t, v.Handle(ev), "key %v should quit", ev)
	}
	assert.False(t, v.Handle(key("r")))
	assert.False(t, v.Handle(uv.KeyPressEvent{Code: 'c'}))
}

func TestViewerWireframeToggle(t *testing.T) {
	v, _ := newTestViewer(t, 20, 10)
	v.dirty = false

	v.Handle(key("x"))
	assert.Equal(t, render.ModeWireframe, v.r.Mode())
	assert.True(t, v.dirty)

	v.Handle(key("x"))
	assert.Equal(t, render.ModeFilled, v.r.Mode())
}

func TestViewerSpinKeys(t *testing.T) {
	tests := []struct {
		name       string
		ev         uv.KeyPressEvent
		pitch, yaw float64
	}{
		{"w", key("w"), -1, 0},
		{"up", uv.KeyPressEvent{Code: uv.KeyUp}, -1, 0},
		{"s", key("s"), 1, 0},
		{"down", uv.KeyPressEvent{Code: uv.KeyDown}, 1, 0},
		{"a", key("a"), 0, -1},
		{"left", uv.KeyPressEvent{Code: uv.KeyLeft}, 0, -1},
		{"d", key("d"), 0, 1},
		{"right", uv.KeyPressEvent{Code: uv.KeyRight}, 0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, _ := newTestViewer(t, 20, 10)
			v.Handle(tc.ev)
			assert.InDelta(t, tc.pitch*v.nudge, v.spin.Pitch.Velocity, 1e-12)
			assert.InDelta(t, tc.yaw*v.nudge, v.spin.Yaw.Velocity, 1e-12)
			assert.True(t, v.spin.Moving())
		})
	}
}

func TestViewerRandomSpinAndReset(t *testing.T) {
	v, _ := newTestViewer(t, 20, 10)
	v.Handle(uv.KeyPressEvent{Code: uv.KeySpace, Text: " "})
	require.True(t, v.spin.Moving())
	for _, axis := range []spinAxis{v.spin.Pitch, v.spin.Yaw, v.spin.Roll} {
		assert.LessOrEqual(t, axis.Velocity, 0.75)
		assert.GreaterOrEqual(t, axis.Velocity, -0.75)
	}

	v.spin.Step()
	v.dirty = false
	v.Handle(key("0"))
	assert.False(t, v.spin.Moving())
	assert.Zero(t, v.spin.Yaw.Angle)
	assert.True(t, v.dirty)
}

func TestViewerTickDrawsOnlyWhenNeeded(t *testing.T) {
	v, scr := newTestViewer(t, 20, 10)
	now := time.Now()

	require.NoError(t, v.Tick(now))
	assert.Equal(t, 1, scr.displays, "first tick draws")

	require.NoError(t, v.Tick(now))
	assert.Equal(t, 1, scr.displays, "idle tick does not draw")

	v.Handle(key("r"))
	require.NoError(t, v.Tick(now))
	assert.Equal(t, 2, scr.displays, "r redraws")

	v.Handle(key("d"))
	require.NoError(t, v.Tick(now))
	assert.Equal(t, 3, scr.displays, "spinning draws")
	assert.NotZero(t, v.spin.Yaw.Angle)
}

func TestViewerStatusLine(t *testing.T) {
	v, scr := newTestViewer(t, 60, 10)
	require.NoError(t, v.Tick(time.Now()))
	assert.NotContains(t, scr.rowText(9, 60), "triangle.obj")

	v.Handle(uv.KeyPressEvent{Code: '?', Text: "?"})
	require.NoError(t, v.Tick(time.Now()))
	row := scr.rowText(9, 60)
	assert.Contains(t, row, "triangle.obj")
	assert.Contains(t, row, "filled")

	v.Handle(uv.KeyPressEvent{Code: '?', Text: "?"})
	require.NoError(t, v.Tick(time.Now()))
	assert.NotContains(t, scr.rowText(9, 60), "triangle.obj")
}

func TestViewerResize(t *testing.T) {
	v, _ := newTestViewer(t, 20, 10)
	v.dirty = false

	v.Handle(uv.WindowSizeEvent{Width: 40, Height: 6})
	fb := v.r.Framebuffer()
	assert.Equal(t, 12, fb.Width)
	assert.Equal(t, 12, fb.Height)
	assert.True(t, v.dirty)
}

func TestViewerReload(t *testing.T) {
	v, _ := newTestViewer(t, 20, 10)
	original := v.mesh

	v.load = func(string) (*models.Mesh, error) {
		return nil, errors.New("half written")
	}
	v.dirty = false
	v.Handle(reloadEvent{})
	assert.Same(t, original, v.mesh, "failed reload keeps the mesh")
	assert.False(t, v.dirty)

	cube, err := models.LoadOBJ("../../pkg/models/testdata/cube.obj")
	require.NoError(t, err)
	v.load = func(string) (*models.Mesh, error) { return cube, nil }
	v.Handle(reloadEvent{})
	assert.Same(t, cube, v.mesh)
	assert.Equal(t, 12, v.status.faces)
	assert.True(t, v.dirty)
}

func TestViewerDrawDoesNotMutateMesh(t *testing.T) {
	v, _ := newTestViewer(t, 20, 10)
	before := v.mesh.Clone()

	v.Handle(key("d"))
	for range 5 {
		require.NoError(t, v.Tick(time.Now()))
	}
	assert.Equal(t, before.Vertices, v.mesh.Vertices)
}
