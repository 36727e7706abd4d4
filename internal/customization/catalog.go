package customization

import (
	"image/color"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// Swatch is a named palette entry.
type Swatch struct {
	Name string
	RGB  color.RGBA
}

// Colorful converts the swatch for colour-space arithmetic.
func (s Swatch) Colorful() colorful.Color {
	c, _ := colorful.MakeColor(s.RGB)
	return c
}

// Hex returns the swatch colour as #rrggbb.
func (s Swatch) Hex() string {
	return s.Colorful().Hex()
}

// The font list and palette are shared, read-only tables for the life of the process.
// Accessors hand out copies so no caller can alter them.
var (
	fontFamilies = []string{"Pacifico", "Roboto", "Lobster", "Oswald", "Lato", "Montserrat"}

	palette = []Swatch{
		{Name: "Indigo", RGB: color.RGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF}},
		{Name: "Red", RGB: color.RGBA{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF}},
		{Name: "Green", RGB: color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}},
		{Name: "Blue", RGB: color.RGBA{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF}},
		{Name: "Orange", RGB: color.RGBA{R: 0xFF, G: 0x98, B: 0x00, A: 0xFF}},
		{Name: "Purple", RGB: color.RGBA{R: 0x9C, G: 0x27, B: 0xB0, A: 0xFF}},
		{Name: "Teal", RGB: color.RGBA{R: 0x00, G: 0x96, B: 0x88, A: 0xFF}},
		{Name: "Black", RGB: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}},
	}
)

// FontFamilies returns the selectable font family names in display order.
func FontFamilies() []string {
	return append([]string(nil), fontFamilies...)
}

// Palette returns the selectable colours in display order.
func Palette() []Swatch {
	return append([]Swatch(nil), palette...)
}

// ColorNames returns the palette names in display order.
func ColorNames() []string {
	names := make([]string, len(palette))
	for i, swatch := range palette {
		names[i] = swatch.Name
	}
	return names
}

// HasFontFamily reports whether name is in the font list.
func HasFontFamily(name string) bool {
	return slices.Contains(fontFamilies, name)
}

// LookupColor returns the palette entry with the given name.
func LookupColor(name string) (Swatch, bool) {
	for _, swatch := range palette {
		if swatch.Name == name {
			return swatch, true
		}
	}
	return Swatch{}, false
}
