package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taigrr/scanline/pkg/export"
	"github.com/taigrr/scanline/pkg/render"
)

func (a *app) renderCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render <model>",
		Short: "Render one frame to an image file",
		Example: `  scanline render head.obj -o head.png
  scanline render ship.glb --fit --scale 4 -o ship.webp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderFile(cmd, args[0], out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "out.png", "output image (.png, .webp, .bmp, .tga)")
	return cmd
}

func (a *app) renderFile(cmd *cobra.Command, modelPath, out string) error {
	if _, err := export.FormatFromPath(out); err != nil {
		return err
	}
	mesh, err := a.loadModel(modelPath)
	if err != nil {
		return err
	}

	p := export.NewPresenter(out, a.cfg.Scale)
	r, err := a.newRenderer(a.cfg.Width, a.cfg.Height, p)
	if err != nil {
		return err
	}

	// A malformed mesh still produces a frame; report it and keep the file.
	var malformed *render.MalformedMeshError
	if err := r.DrawFrame(mesh); errors.As(err, &malformed) {
		cmd.PrintErrln("warning:", err)
	} else if err != nil {
		return err
	}

	stats := r.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d faces, %d back-facing, %v)\n",
		out, stats.Faces, stats.BackFacing, stats.TotalTime.Round(time.Microsecond))
	return nil
}
