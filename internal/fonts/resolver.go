// Package fonts resolves font family names into style descriptors and
// rasterisable faces.
//
// The catalog does not ship the named families' outlines. Every family
// renders with the bundled Go font of the matching weight and slant, and the
// descriptor records both the requested family and the glyph source.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/alexisbeaulieu97/typepreview/internal/customization"
	apperrors "github.com/alexisbeaulieu97/typepreview/pkg/errors"
)

// Category is the generic class a family falls back to.
type Category string

const (
	CategoryScript    Category = "script"
	CategorySansSerif Category = "sans-serif"
	CategoryDisplay   Category = "display"
)

// Descriptor is the resolved, renderer-independent description of a family.
type Descriptor struct {
	Family   string
	Category Category
	// Source names the outlines actually used to draw glyphs.
	Source string
}

// String renders the descriptor for display, e.g. "Roboto (sans-serif)".
func (d Descriptor) String() string {
	if d.Category == "" {
		return d.Family
	}
	return fmt.Sprintf("%s (%s)", d.Family, d.Category)
}

// Resolver turns a family name into a Descriptor.
type Resolver interface {
	Resolve(family string) (Descriptor, error)
}

// FaceSource produces faces for a resolved descriptor.
type FaceSource interface {
	Face(desc Descriptor, weight customization.Weight, style customization.Style, sizePt, dpi float64) (font.Face, error)
}

const goFontSource = "Go"

var categories = map[string]Category{
	"Pacifico":   CategoryScript,
	"Lobster":    CategoryScript,
	"Roboto":     CategorySansSerif,
	"Lato":       CategorySansSerif,
	"Montserrat": CategorySansSerif,
	"Oswald":     CategoryDisplay,
}

type variant struct {
	weight customization.Weight
	style  customization.Style
}

// Catalog resolves the families of the customization font list. Parsed
// outlines are cached; Catalog is safe for concurrent use.
type Catalog struct {
	mu       sync.Mutex
	families map[string]Descriptor
	parsed   map[variant]*opentype.Font
}

var (
	_ Resolver   = (*Catalog)(nil)
	_ FaceSource = (*Catalog)(nil)
)

// NewCatalog builds a catalog covering customization.FontFamilies.
func NewCatalog() *Catalog {
	c := &Catalog{
		families: make(map[string]Descriptor),
		parsed:   make(map[variant]*opentype.Font),
	}
	for _, name := range customization.FontFamilies() {
		category, ok := categories[name]
		if !ok {
			category = CategorySansSerif
		}
		c.families[name] = Descriptor{Family: name, Category: category, Source: goFontSource}
	}
	return c
}

// Resolve returns the descriptor for family.
func (c *Catalog) Resolve(family string) (Descriptor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	desc, ok := c.families[family]
	if !ok {
		return Descriptor{}, apperrors.NewResolveError(family, fmt.Errorf("family not in catalog"))
	}
	return desc, nil
}

// Families lists the descriptors in font list order.
func (c *Catalog) Families() []Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Descriptor, 0, len(c.families))
	for _, name := range customization.FontFamilies() {
		if desc, ok := c.families[name]; ok {
			out = append(out, desc)
		}
	}
	return out
}

// Face returns a face for desc at the given size. Unknown weights and styles
// fall back to the regular outline.
func (c *Catalog) Face(desc Descriptor, weight customization.Weight, style customization.Style, sizePt, dpi float64) (font.Face, error) {
	if sizePt <= 0 {
		return nil, apperrors.NewResolveError(desc.Family, fmt.Errorf("invalid size %g", sizePt))
	}
	if dpi <= 0 {
		dpi = 72
	}

	f, err := c.outline(variant{weight: weight, style: style})
	if err != nil {
		return nil, apperrors.NewResolveError(desc.Family, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, apperrors.NewResolveError(desc.Family, fmt.Errorf("create face: %w", err))
	}
	return face, nil
}

func (c *Catalog) outline(v variant) (*opentype.Font, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.parsed[v]; ok {
		return f, nil
	}

	f, err := opentype.Parse(ttfFor(v))
	if err != nil {
		return nil, fmt.Errorf("parse %s/%s outline: %w", v.weight, v.style, err)
	}
	c.parsed[v] = f
	return f, nil
}

func ttfFor(v variant) []byte {
	bold := v.weight == customization.WeightBold
	italic := v.style == customization.StyleItalic
	switch {
	case bold && italic:
		return gobolditalic.TTF
	case bold:
		return gobold.TTF
	case italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}
