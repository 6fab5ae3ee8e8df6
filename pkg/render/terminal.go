package render

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// halfBlock is drawn with fg = top pixel and bg = bottom pixel, so one cell
// shows two framebuffer rows.
const halfBlock = "▀"

// Draw paints the framebuffer on a screen as half-block cells. It implements
// uv.Drawable. The framebuffer height should be twice the area height.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1
		if topY >= fb.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: halfBlock,
				Width:   1,
				Style: uv.Style{
					Fg: fb.GetPixel(x, topY).RGBA(),
					Bg: fb.GetPixel(x, botY).RGBA(),
				},
			})
		}
	}
}

// TerminalScreen is the part of *uv.Terminal a TerminalPresenter needs.
type TerminalScreen interface {
	uv.Screen
	Display() error
}

// TerminalPresenter presents frames on a terminal using half-block cells.
type TerminalPresenter struct {
	scr     TerminalScreen
	cols    int
	rows    int
	overlay uv.Drawable
}

// NewTerminalPresenter creates a presenter for a cols x rows terminal.
func NewTerminalPresenter(scr TerminalScreen, cols, rows int) *TerminalPresenter {
	return &TerminalPresenter{scr: scr, cols: cols, rows: rows}
}

// FramebufferSize returns the framebuffer dimensions for the terminal. The
// height fills every row and the width is capped at the height, since the
// projected image is square.
func (p *TerminalPresenter) FramebufferSize() (width, height int) {
	return min(p.cols, p.rows*2), p.rows * 2
}

// Size returns the terminal dimensions in cells.
func (p *TerminalPresenter) Size() (cols, rows int) {
	return p.cols, p.rows
}

// Resize updates the terminal dimensions.
func (p *TerminalPresenter) Resize(cols, rows int) {
	p.cols, p.rows = cols, rows
}

// SetOverlay sets a drawable painted over the last terminal row after each
// frame. Pass nil to remove it.
func (p *TerminalPresenter) SetOverlay(d uv.Drawable) {
	p.overlay = d
}

// Present draws the frame centered horizontally, blanks the columns on either
// side and flushes the terminal.
func (p *TerminalPresenter) Present(pixels []Pixel, width, height int) error {
	x0 := max((p.cols-width)/2, 0)
	for row := range p.rows {
		for col := range p.cols {
			if col < x0 || col >= x0+width {
				p.scr.SetCell(col, row, nil)
			}
		}
	}

	fb := &Framebuffer{Width: width, Height: height, Pixels: pixels}
	fb.Draw(p.scr, uv.Rect(x0, 0, p.cols-x0, p.rows))
	if p.overlay != nil && p.rows > 0 {
		p.overlay.Draw(p.scr, uv.Rect(0, p.rows-1, p.cols, 1))
	}
	return p.scr.Display()
}
