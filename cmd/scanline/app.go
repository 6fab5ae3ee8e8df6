package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/taigrr/scanline/pkg/config"
	"github.com/taigrr/scanline/pkg/models"
	"github.com/taigrr/scanline/pkg/render"
)

// app holds the state shared by every command: resolved config and the log
// file, if any.
type app struct {
	configPath string
	logPath    string
	logLevel   string
	flags      config.Flags

	cfg     config.Config
	logFile *os.File
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "scanline",
		Short: "Flat-shaded software rasterizer for OBJ and glTF meshes",
		Long: `scanline draws triangle meshes with a scanline rasterizer, one flat-shaded
color per face, and shows the result in the terminal, in a window or in an
image file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "TOML or YAML config file")
	pf.StringVar(&a.logPath, "log", "", "write logs to this file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.IntVar(&a.flags.Width, "width", 0, "framebuffer width (default 100)")
	pf.IntVar(&a.flags.Height, "height", 0, "framebuffer height (default 100)")
	pf.StringVar(&a.flags.Background, "bg", "", "background color, name or #rrggbb (default black)")
	pf.StringVar(&a.flags.BackFace, "backface", "", "color for faces turned away from the light (default red)")
	pf.StringVar(&a.flags.Mode, "mode", "", "filled or wireframe")
	pf.IntVar(&a.flags.FPS, "fps", 0, "target FPS for the viewer (default 60)")
	pf.BoolVar(&a.flags.Fit, "fit", false, "center the model and scale it into [-1, 1]")
	pf.Uint64Var(&a.flags.Seed, "seed", 0, "seed for the wireframe palette")
	pf.IntVar(&a.flags.Scale, "scale", 0, "pixel upscale factor for images and the window")

	root.AddCommand(
		a.viewCommand(),
		a.renderCommand(),
		a.windowCommand(),
	)
	return root
}

// setup loads the config file, applies flag overrides and installs the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.flags.FitSet = cmd.Flags().Changed("fit")
	a.flags.SeedSet = cmd.Flags().Changed("seed")

	var cfg config.Config
	if a.configPath != "" {
		var err error
		cfg, err = config.Load(a.configPath)
		if err != nil {
			return err
		}
	}
	cfg.Resolve(a.flags)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.cfg = cfg

	if a.logPath == "" {
		return nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	a.logFile = f
	render.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return nil
}

func (a *app) close() {
	if a.logFile == nil {
		return
	}
	render.SetLogger(nil)
	a.logFile.Close()
	a.logFile = nil
}

// loadModel reads a model and fits it into the unit cube when configured.
func (a *app) loadModel(path string) (*models.Mesh, error) {
	mesh, err := models.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	if a.cfg.Fit {
		mesh = mesh.FitUnit()
	}
	render.Logger().Info(fmt.Sprintf("loaded %d vertices and %d faces", mesh.VertexCount(), mesh.TriangleCount()),
		"model", filepath.Base(path),
	)
	return mesh, nil
}

// newRenderer builds a renderer from the resolved config.
func (a *app) newRenderer(width, height int, p render.Presenter) (*render.Renderer, error) {
	opts, err := a.cfg.RendererOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, render.WithPresenter(p))
	return render.NewRenderer(width, height, opts...), nil
}
