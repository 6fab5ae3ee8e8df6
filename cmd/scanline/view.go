package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/taigrr/scanline/pkg/models"
	"github.com/taigrr/scanline/pkg/render"
)

const (
	// torque sets the spin of one key press: torque/fps radians per frame.
	torque = 3.0
	// watchDelay collapses the burst of events an editor save produces.
	watchDelay = 100 * time.Millisecond
)

func (a *app) viewCommand() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "view <model>",
		Short: "View a model in the terminal",
		Long: `Open an interactive terminal viewer. Each cell shows two pixels with a
half block, so the frame is twice as tall as the terminal.

Controls: w/a/s/d or arrows spin, space random spin, 0 reset, r redraw,
x wireframe, ? status line, q or esc quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.view(cmd.Context(), args[0], watch)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "reload and redraw when the model file changes")
	return cmd
}

func (a *app) view(ctx context.Context, path string, watch bool) error {
	mesh, err := a.loadModel(path)
	if err != nil {
		return err
	}

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()
	if err := term.Resize(width, height); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}

	pres := render.NewTerminalPresenter(term, width, height)
	fbWidth, fbHeight := pres.FramebufferSize()
	r, err := a.newRenderer(fbWidth, fbHeight, pres)
	if err != nil {
		return err
	}

	v := newViewer(path, mesh, r, pres, a.cfg.FPS, time.Now())
	v.load = a.loadModel

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if watch {
		fw, err := newFileWatcher(path, watchDelay)
		if err != nil {
			return err
		}
		defer fw.Close()
		go fw.Run(ctx, term.SendEvent)
	}

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-term.Events():
			if ev, ok := ev.(uv.WindowSizeEvent); ok {
				term.Erase()
				if err := term.Resize(ev.Width, ev.Height); err != nil {
					return fmt.Errorf("resize terminal: %w", err)
				}
			}
			if v.Handle(ev) {
				return nil
			}

		case now := <-ticker.C:
			if err := v.Tick(now); err != nil {
				return err
			}
		}
	}
}

// viewer is the state of the terminal viewer. It is driven from a single
// goroutine: events and frame ticks are handled in turn.
type viewer struct {
	path   string
	mesh   *models.Mesh
	r      *render.Renderer
	pres   *render.TerminalPresenter
	spin   *spin
	status *status
	load   func(path string) (*models.Mesh, error)

	// nudge is the angular velocity one key press adds.
	nudge      float64
	showStatus bool
	dirty      bool
}

func newViewer(path string, mesh *models.Mesh, r *render.Renderer, pres *render.TerminalPresenter, fps int, now time.Time) *viewer {
	return &viewer{
		path:   path,
		mesh:   mesh,
		r:      r,
		pres:   pres,
		spin:   newSpin(fps),
		status: newStatus(filepath.Base(path), mesh.TriangleCount(), now),
		load:   models.Load,
		nudge:  torque / float64(fps),
		dirty:  true,
	}
}

// Handle applies one event and reports whether the viewer should quit.
func (v *viewer) Handle(ev uv.Event) (quit bool) {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		v.resize(ev.Width, ev.Height)
	case uv.KeyPressEvent:
		return v.handleKey(ev)
	case reloadEvent:
		v.reload()
	}
	return false
}

func (v *viewer) handleKey(ev uv.KeyPressEvent) (quit bool) {
	switch {
	case ev.MatchString("q", "esc", "ctrl+c"):
		return true
	case ev.MatchString("r"):
		v.dirty = true
	case ev.MatchString("x"):
		if v.r.Mode() == render.ModeWireframe {
			v.r.SetMode(render.ModeFilled)
		} else {
			v.r.SetMode(render.ModeWireframe)
		}
		v.dirty = true
	case ev.MatchString("w", "up"):
		v.spin.Push(-v.nudge, 0, 0)
	case ev.MatchString("s", "down"):
		v.spin.Push(v.nudge, 0, 0)
	case ev.MatchString("a", "left"):
		v.spin.Push(0, -v.nudge, 0)
	case ev.MatchString("d", "right"):
		v.spin.Push(0, v.nudge, 0)
	case ev.MatchString("space"):
		v.spin.Push(
			(rand.Float64()-0.5)*1.5,
			(rand.Float64()-0.5)*1.5,
			(rand.Float64()-0.5)*1.5,
		)
	case ev.MatchString("0"):
		v.spin.Reset()
		v.dirty = true
	case ev.MatchString("?", "shift+/"):
		v.showStatus = !v.showStatus
		v.dirty = true
	}
	return false
}

func (v *viewer) resize(cols, rows int) {
	v.pres.Resize(cols, rows)
	w, h := v.pres.FramebufferSize()
	if err := v.r.Resize(w, h); err != nil {
		render.Logger().Warn("resize failed", "err", err)
		return
	}
	v.dirty = true
}

// reload reads the model again. On failure the current mesh stays.
func (v *viewer) reload() {
	mesh, err := v.load(v.path)
	if err != nil {
		render.Logger().Warn("reload failed", "path", v.path, "err", err)
		return
	}
	v.mesh = mesh
	v.status.SetModel(filepath.Base(v.path), mesh.TriangleCount())
	v.dirty = true
}

// Tick advances the spin and draws a frame if anything changed.
func (v *viewer) Tick(now time.Time) error {
	if v.spin.Moving() {
		v.spin.Step()
		v.dirty = true
	}
	if !v.dirty {
		return nil
	}
	return v.draw(now)
}

func (v *viewer) draw(now time.Time) error {
	v.dirty = false
	if v.showStatus {
		cols, _ := v.pres.Size()
		v.pres.SetOverlay(uv.NewStyledString(v.status.Line(cols, v.r.Mode(), v.r.Stats())))
	} else {
		v.pres.SetOverlay(nil)
	}

	err := v.r.DrawFrame(v.mesh.Transformed(v.spin.Matrix()))
	var malformed *render.MalformedMeshError
	if err != nil && !errors.As(err, &malformed) {
		return err
	}
	v.status.Frame(now)
	return nil
}
