package render

// Option configures a Renderer during creation.
//
// Example:
//
//	r := render.NewRenderer(100, 100,
//	    render.WithBackground(render.Black),
//	    render.WithPresenter(p),
//	)
type Option func(*options)

type options struct {
	presenter  Presenter
	background Pixel
	shader     FlatShader
	mode       Mode
	seed       uint64
}

func defaultOptions() options {
	return options{
		presenter:  discard{},
		background: Black,
		shader:     NewFlatShader(),
		mode:       ModeFilled,
	}
}

// WithPresenter sets where finished frames go. A nil presenter discards them.
func WithPresenter(p Presenter) Option {
	return func(o *options) {
		if p == nil {
			p = discard{}
		}
		o.presenter = p
	}
}

// WithBackground sets the color the framebuffer is cleared to.
func WithBackground(c Pixel) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithShader replaces the default flat shader.
func WithShader(s FlatShader) Option {
	return func(o *options) {
		o.shader = s
	}
}

// WithMode selects filled or wireframe drawing.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithSeed sets the seed of the wireframe palette stream.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}
