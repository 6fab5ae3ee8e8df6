package main

import (
	"errors"
	"image"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/taigrr/scanline/pkg/models"
	"github.com/taigrr/scanline/pkg/render"
)

// minWindowScale keeps the default 100x100 frame from opening a tiny window.
const minWindowScale = 4

func (a *app) windowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "window <model>",
		Short: "Show a model in a desktop window",
		Long: `Open a desktop window showing one frame of the model at the configured
framebuffer size. Press r to redraw, x to toggle wireframe, esc or q to close.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.window(args[0])
		},
	}
}

func (a *app) window(path string) error {
	mesh, err := a.loadModel(path)
	if err != nil {
		return err
	}

	g := &windowGame{mesh: mesh, dirty: true}
	g.r, err = a.newRenderer(a.cfg.Width, a.cfg.Height, g)
	if err != nil {
		return err
	}

	scale := max(a.cfg.Scale, minWindowScale)
	ebiten.SetWindowTitle("scanline - " + filepath.Base(path))
	ebiten.SetWindowSize(a.cfg.Width*scale, a.cfg.Height*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(a.cfg.FPS)

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// windowGame hosts a Renderer in an ebiten window. Frames are drawn in Update
// only when requested; Draw uploads the last presented frame.
type windowGame struct {
	r    *render.Renderer
	mesh *models.Mesh

	dirty bool
	frame *image.RGBA
	fresh bool
	img   *ebiten.Image
}

// Present implements render.Presenter by keeping a copy of the frame for the
// next Draw.
func (g *windowGame) Present(pixels []render.Pixel, width, height int) error {
	g.frame = render.PixelsToImage(pixels, width, height)
	g.fresh = true
	return nil
}

func (g *windowGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		if g.r.Mode() == render.ModeWireframe {
			g.r.SetMode(render.ModeFilled)
		} else {
			g.r.SetMode(render.ModeWireframe)
		}
		g.dirty = true
	}
	return g.redraw()
}

// redraw draws a frame if one was requested. A malformed mesh is logged by
// the renderer and does not stop the window.
func (g *windowGame) redraw() error {
	if !g.dirty {
		return nil
	}
	g.dirty = false
	err := g.r.DrawFrame(g.mesh)
	var malformed *render.MalformedMeshError
	if err != nil && !errors.As(err, &malformed) {
		return err
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}
	b := g.frame.Bounds()
	if g.img == nil || g.img.Bounds().Dx() != b.Dx() || g.img.Bounds().Dy() != b.Dy() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
		g.fresh = true
	}
	if g.fresh {
		g.img.WritePixels(g.frame.Pix)
		g.fresh = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.r.Framebuffer()
	return fb.Width, fb.Height
}
