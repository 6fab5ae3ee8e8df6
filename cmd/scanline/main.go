// scanline - flat-shaded software rasterizer
// Render OBJ and glTF meshes to the terminal, a window or an image file.
//
// Viewer controls:
//
//	W/S, Up/Down     - Pitch
//	A/D, Left/Right  - Yaw
//	Space            - Apply random impulse
//	0                - Reset orientation
//	R                - Redraw
//	X                - Toggle wireframe mode
//	?                - Toggle status line (file, faces, FPS, mode, draw time)
//	Q/Esc            - Quit
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	err := fang.Execute(ctx, a.command(), fang.WithVersion(version))
	a.close()
	if err != nil {
		os.Exit(1)
	}
}
