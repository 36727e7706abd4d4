package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/alexisbeaulieu97/typepreview/internal/fonts"
)

// RenderOptions controls the exported image geometry.
type RenderOptions struct {
	Width   int
	Height  int
	DPI     float64
	Padding int
}

// DefaultRenderOptions returns the geometry used when none is configured.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Width: 800, Height: 400, DPI: 72, Padding: 24}
}

func (o RenderOptions) withDefaults() RenderOptions {
	def := DefaultRenderOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.DPI <= 0 {
		o.DPI = def.DPI
	}
	if o.Padding < 0 || o.Padding*2 >= o.Width {
		o.Padding = def.Padding
	}
	return o
}

// Background picks a backdrop that keeps the text colour legible: light
// colours get a dark backdrop, dark colours a white one.
func Background(swatch colorful.Color) color.RGBA {
	l, _, _ := swatch.Lab()
	if l > 0.7 {
		return color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF}
	}
	return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
}

// Rasterize draws text with style into an RGBA image, word-wrapped to the
// padded width and centred both ways. Lines that overflow the height are clipped.
func Rasterize(text string, style Style, faces fonts.FaceSource, opts RenderOptions) (*image.RGBA, error) {
	if faces == nil {
		return nil, fmt.Errorf("rasterize: nil face source")
	}
	opts = opts.withDefaults()

	face, err := faces.Face(style.Font, style.Weight, style.Slant, style.SizePt, opts.DPI)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	bg := Background(style.Color.Colorful())
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	maxWidth := fixed.I(opts.Width - 2*opts.Padding)
	lines := wrap(text, face, maxWidth)

	metrics := face.Metrics()
	lineHeight := metrics.Height
	blockHeight := lineHeight.Mul(fixed.I(len(lines)))
	top := (fixed.I(opts.Height) - blockHeight) / 2

	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: style.Color.RGB},
		Face: face,
	}
	for i, line := range lines {
		width := drawer.MeasureString(line)
		drawer.Dot = fixed.Point26_6{
			X: (fixed.I(opts.Width) - width) / 2,
			Y: top + lineHeight.Mul(fixed.I(i)) + metrics.Ascent,
		}
		drawer.DrawString(line)
	}
	return img, nil
}

// Render rasterises the preview and encodes it as PNG into w.
func Render(w io.Writer, text string, style Style, faces fonts.FaceSource, opts RenderOptions) error {
	img, err := Rasterize(text, style, faces, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// wrap splits text on newlines, then greedily packs words into lines no
// wider than maxWidth. A single word wider than maxWidth gets its own line.
func wrap(text string, face font.Face, maxWidth fixed.Int26_6) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if font.MeasureString(face, candidate) <= maxWidth {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = word
		}
		lines = append(lines, current)
	}
	return lines
}
