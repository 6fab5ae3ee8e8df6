// Package export writes rendered frames to image files.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/taigrr/scanline/pkg/render"
)

// ErrUnsupportedFormat is returned for file extensions with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format is an output image encoding.
type Format int

const (
	PNG Format = iota
	WebP
	BMP
	TGA
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case WebP:
		return "webp"
	case BMP:
		return "bmp"
	case TGA:
		return "tga"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".webp":
		return WebP, nil
	case ".bmp":
		return BMP, nil
	case ".tga":
		return TGA, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
}

// Encode writes img to w in the given format. WebP output is lossless.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case BMP:
		return bmp.Encode(w, img)
	case TGA:
		return tga.Encode(w, img)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// Save encodes img to path, choosing the format by extension and creating
// parent directories as needed.
func Save(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := Encode(out, img, f); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return out.Close()
}

// Upscale enlarges img by an integer factor with nearest-neighbor sampling,
// so every framebuffer pixel becomes a factor x factor block. A factor of 1
// or less returns img unchanged.
func Upscale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Presenter saves every presented frame to an image file.
//
// If Path contains a printf verb (for example "frame-%03d.png") each frame
// gets its own file numbered from zero. Otherwise the file is overwritten.
type Presenter struct {
	Path  string
	Scale int

	frames int
}

// NewPresenter creates a presenter writing to path with the given upscale
// factor.
func NewPresenter(path string, scale int) *Presenter {
	return &Presenter{Path: path, Scale: scale}
}

// Present implements render.Presenter.
func (p *Presenter) Present(pixels []render.Pixel, width, height int) error {
	path := p.Path
	if strings.Contains(path, "%") {
		path = fmt.Sprintf(path, p.frames)
	}

	img := Upscale(render.PixelsToImage(pixels, width, height), p.Scale)
	if err := Save(path, img); err != nil {
		return err
	}
	p.frames++

	render.Logger().Info("frame saved", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

// Frames returns the number of frames saved so far.
func (p *Presenter) Frames() int { return p.frames }
