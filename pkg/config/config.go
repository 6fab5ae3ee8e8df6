// Package config loads renderer settings from TOML or YAML files and merges
// them with command-line overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/render"
)

// Default values.
const (
	DefaultWidth      = 100
	DefaultHeight     = 100
	DefaultBackground = "black"
	DefaultBackFace   = "red"
	DefaultMode       = "filled"
	DefaultFPS        = 60
	DefaultScale      = 1
)

// Config holds render settings.
type Config struct {
	// Framebuffer size for headless renders and the window host. The
	// terminal viewer sizes itself to the terminal.
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// Colors are "#rrggbb", "#rgb" or a name such as "black".
	Background string `toml:"background" yaml:"background"`
	BackFace   string `toml:"back_face" yaml:"back_face"`

	// Light direction. The zero vector selects the default (0, 0, -1).
	Light [3]float64 `toml:"light" yaml:"light"`

	Mode  string `toml:"mode" yaml:"mode"`
	FPS   int    `toml:"fps" yaml:"fps"`
	Fit   bool   `toml:"fit" yaml:"fit"`
	Seed  uint64 `toml:"seed" yaml:"seed"`
	Scale int    `toml:"scale" yaml:"scale"`
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file setting alone.
type Flags struct {
	Width      int
	Height     int
	Background string
	BackFace   string
	Mode       string
	FPS        int
	Fit        bool
	Seed       uint64
	Scale      int

	// FitSet and SeedSet mark Fit and Seed as given on the command line, so
	// false and 0 override the file too.
	FitSet  bool
	SeedSet bool
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Resolve(Flags{})
	return c
}

// Load reads a TOML (.toml) or YAML (.yaml, .yml) config file.
// Fields not set in the file keep their zero values. Unknown keys are an
// error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
		if errors.Is(err, io.EOF) {
			// empty document
			err = nil
		}
	default:
		return Config{}, fmt.Errorf("config: %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies flag overrides, then fills empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.BackFace != "" {
		c.BackFace = flags.BackFace
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Fit || flags.FitSet {
		c.Fit = flags.Fit
	}
	if flags.Seed != 0 || flags.SeedSet {
		c.Seed = flags.Seed
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}

	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Background == "" {
		c.Background = DefaultBackground
	}
	if c.BackFace == "" {
		c.BackFace = DefaultBackFace
	}
	if c.Light == [3]float64{} {
		c.Light = [3]float64{render.DefaultLight.X, render.DefaultLight.Y, render.DefaultLight.Z}
	}
	if c.Mode == "" {
		c.Mode = DefaultMode
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.Scale <= 0 {
		c.Scale = DefaultScale
	}
}

// Validate checks that colors and mode parse.
func (c Config) Validate() error {
	var errs []error
	if _, err := ParseColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if _, err := ParseColor(c.BackFace); err != nil {
		errs = append(errs, fmt.Errorf("back_face: %w", err))
	}
	if _, err := render.ParseMode(c.Mode); err != nil {
		errs = append(errs, fmt.Errorf("mode: %w", err))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", c.Width, c.Height))
	}
	return errors.Join(errs...)
}

// LightVec returns the light direction.
func (c Config) LightVec() math3d.Vec3 {
	return math3d.V3(c.Light[0], c.Light[1], c.Light[2])
}

// Shader builds the flat shader described by the config.
func (c Config) Shader() (render.FlatShader, error) {
	back, err := ParseColor(c.BackFace)
	if err != nil {
		return render.FlatShader{}, fmt.Errorf("back_face: %w", err)
	}
	return render.FlatShader{Light: c.LightVec(), BackFace: back}, nil
}

// RendererOptions converts the config into renderer options.
func (c Config) RendererOptions() ([]render.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	bg, _ := ParseColor(c.Background)
	shader, _ := c.Shader()
	mode, _ := render.ParseMode(c.Mode)
	return []render.Option{
		render.WithBackground(bg),
		render.WithShader(shader),
		render.WithMode(mode),
		render.WithSeed(c.Seed),
	}, nil
}

var namedColors = map[string]render.Pixel{
	"black":  render.Black,
	"white":  render.White,
	"yellow": render.Yellow,
	"red":    render.Red,
	"green":  render.Green,
	"blue":   render.Blue,
}

// ParseColor parses a color name or a "#rgb" / "#rrggbb" hex string.
func ParseColor(s string) (render.Pixel, error) {
	s = strings.TrimSpace(s)
	if p, ok := namedColors[strings.ToLower(s)]; ok {
		return p, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return render.Pack(int(r), int(g), int(b)), nil
}
