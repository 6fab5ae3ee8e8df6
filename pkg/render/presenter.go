package render

// Presenter hands a finished frame to the outside world.
//
// pixels is the renderer's own framebuffer storage, row-major, width*height
// long. It is only valid until the next draw, so implementations copy what
// they need before returning.
type Presenter interface {
	Present(pixels []Pixel, width, height int) error
}

// PresenterFunc adapts a plain function to Presenter.
type PresenterFunc func(pixels []Pixel, width, height int) error

// Present calls f.
func (f PresenterFunc) Present(pixels []Pixel, width, height int) error {
	return f(pixels, width, height)
}

// discard is the presenter used when none is configured.
type discard struct{}

func (discard) Present([]Pixel, int, int) error { return nil }
