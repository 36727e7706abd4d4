package preview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/typepreview/internal/customization"
	"github.com/alexisbeaulieu97/typepreview/internal/fonts"
	apperrors "github.com/alexisbeaulieu97/typepreview/pkg/errors"
)

// Style is the merged typographic description the preview is drawn with.
type Style struct {
	Font   fonts.Descriptor
	SizePt float64
	Weight customization.Weight
	Slant  customization.Style
	Color  customization.Swatch
}

// Derive resolves the family and colour references in v into a Style.
func Derive(v customization.Values, resolver fonts.Resolver) (Style, error) {
	if resolver == nil {
		return Style{}, fmt.Errorf("derive style: nil resolver")
	}
	desc, err := resolver.Resolve(v.FontFamily)
	if err != nil {
		return Style{}, err
	}
	swatch, ok := customization.LookupColor(v.Color)
	if !ok {
		return Style{}, apperrors.NewValidationError("color", fmt.Sprintf("unknown color %q", v.Color), nil)
	}
	return Style{
		Font:   desc,
		SizePt: v.FontSize,
		Weight: v.Weight,
		Slant:  v.Style,
		Color:  swatch,
	}, nil
}

// Bold reports whether the style uses the bold weight.
func (s Style) Bold() bool { return s.Weight == customization.WeightBold }

// Italic reports whether the style uses the italic slant.
func (s Style) Italic() bool { return s.Slant == customization.StyleItalic }

// Summary describes the style in one line, e.g. "Pacifico (script) · 32pt · bold · Indigo".
func (s Style) Summary() string {
	summary := fmt.Sprintf("%s · %gpt", s.Font, s.SizePt)
	if s.Bold() {
		summary += " · bold"
	}
	if s.Italic() {
		summary += " · italic"
	}
	return summary + " · " + s.Color.Name
}

// Lipgloss applies weight, slant and colour to a terminal style. Terminals
// have a single cell size, so SizePt and the family are not expressible here.
func (s Style) Lipgloss() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(s.Bold()).
		Italic(s.Italic()).
		Foreground(lipgloss.Color(s.Color.Hex()))
}
