package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"

	"github.com/alexisbeaulieu97/typepreview/internal/customization"
	"github.com/alexisbeaulieu97/typepreview/internal/fonts"
)

func defaultStyle(t *testing.T) (Style, *fonts.Catalog) {
	t.Helper()
	catalog := fonts.NewCatalog()
	style, err := Derive(customization.DefaultValues(), catalog)
	require.NoError(t, err)
	return style, catalog
}

func TestRenderProducesPNGOfRequestedSize(t *testing.T) {
	t.Parallel()

	style, catalog := defaultStyle(t)

	var buf bytes.Buffer
	err := Render(&buf, customization.DefaultText, style, catalog, RenderOptions{Width: 320, Height: 120})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 320, 120), img.Bounds())
}

func TestRasterizeDrawsTextInSwatchColor(t *testing.T) {
	t.Parallel()

	style, catalog := defaultStyle(t)
	img, err := Rasterize("Hello", style, catalog, RenderOptions{Width: 300, Height: 100})
	require.NoError(t, err)

	bg := Background(style.Color.Colorful())
	require.Equal(t, bg, img.RGBAAt(0, 0))

	var inked int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == style.Color.RGB {
				inked++
			}
		}
	}
	require.Greater(t, inked, 0, "expected fully covered glyph pixels in the text colour")
}

func TestRasterizeDefaultsGeometry(t *testing.T) {
	t.Parallel()

	style, catalog := defaultStyle(t)
	img, err := Rasterize("x", style, catalog, RenderOptions{})
	require.NoError(t, err)

	def := DefaultRenderOptions()
	require.Equal(t, def.Width, img.Bounds().Dx())
	require.Equal(t, def.Height, img.Bounds().Dy())
}

func TestRasterizeRequiresFaceSource(t *testing.T) {
	t.Parallel()

	style, _ := defaultStyle(t)
	_, err := Rasterize("x", style, nil, RenderOptions{})
	require.Error(t, err)
}

func TestBackgroundContrast(t *testing.T) {
	t.Parallel()

	black, ok := customization.LookupColor("Black")
	require.True(t, ok)
	require.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, Background(black.Colorful()))

	light := customization.Swatch{Name: "Light", RGB: color.RGBA{R: 0xF5, G: 0xF5, B: 0xF5, A: 0xFF}}
	require.Equal(t, color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF}, Background(light.Colorful()))
}

func TestWrap(t *testing.T) {
	t.Parallel()

	style, catalog := defaultStyle(t)
	face, err := catalog.Face(style.Font, style.Weight, style.Slant, 20, 72)
	require.NoError(t, err)
	defer face.Close()

	require.Equal(t, []string{"one two three"}, wrap("one two three", face, fixed.I(10000)))
	require.Equal(t, []string{"one", "two", "three"}, wrap("one two three", face, fixed.I(1)))
	require.Equal(t, []string{"a", "", "b"}, wrap("a\n\nb", face, fixed.I(10000)))
	require.Equal(t, []string{""}, wrap("", face, fixed.I(10000)))
}
