package customization

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/typepreview/pkg/errors"
)

const (
	// MinFontSize is the smallest size the size control offers.
	MinFontSize = 10.0
	// MaxFontSize is the largest size the size control offers.
	MaxFontSize = 80.0

	DefaultText       = "Welcome to GFG!"
	DefaultFontSize   = 32.0
	DefaultFontFamily = "Pacifico"
	DefaultColor      = "Indigo"
)

// Weight is the font weight of the preview.
type Weight string

// Style is the font slant of the preview.
type Style string

const (
	WeightNormal Weight = "normal"
	WeightBold   Weight = "bold"

	StyleNormal Style = "normal"
	StyleItalic Style = "italic"
)

// Values is a plain snapshot of every customization field.
type Values struct {
	Text       string  `yaml:"text"`
	FontSize   float64 `yaml:"size" validate:"gte=10,lte=80"`
	Weight     Weight  `yaml:"weight" validate:"oneof=normal bold"`
	Style      Style   `yaml:"style" validate:"oneof=normal italic"`
	Color      string  `yaml:"color" validate:"palette_color"`
	FontFamily string  `yaml:"font" validate:"font_family"`
}

// DefaultValues returns the values the application starts with.
func DefaultValues() Values {
	return Values{
		Text:       DefaultText,
		FontSize:   DefaultFontSize,
		Weight:     WeightNormal,
		Style:      StyleNormal,
		Color:      DefaultColor,
		FontFamily: DefaultFontFamily,
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the shared validator with the catalog tags registered:
// font_family accepts names from the font list, palette_color names from the palette.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("font_family", func(fl validator.FieldLevel) bool {
			return HasFontFamily(fl.Field().String())
		})

		_ = v.RegisterValidation("palette_color", func(fl validator.FieldLevel) bool {
			_, ok := LookupColor(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks that every field lies within its domain.
func (v Values) Validate() error {
	if err := Validator().Struct(v); err != nil {
		return ConvertValidationError(err)
	}
	return nil
}

// ConvertValidationError turns the first validator failure into a ValidationError.
func ConvertValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewValidationError("", err.Error(), err)
	}

	fe := verrs[0]
	field := fe.Field()
	var message string
	switch fe.Tag() {
	case "gte", "lte":
		message = fmt.Sprintf("must be between %g and %g, got %v", MinFontSize, MaxFontSize, fe.Value())
	case "oneof":
		message = fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	case "font_family":
		message = fmt.Sprintf("unknown font family %q (available: %s)", fe.Value(), strings.Join(fontFamilies, ", "))
	case "palette_color":
		message = fmt.Sprintf("unknown color %q (available: %s)", fe.Value(), strings.Join(ColorNames(), ", "))
	default:
		message = fmt.Sprintf("failed %q validation", fe.Tag())
	}
	return apperrors.NewValidationError(field, message, err)
}

// ClampFontSize confines size to [MinFontSize, MaxFontSize].
func ClampFontSize(size float64) float64 {
	switch {
	case size < MinFontSize:
		return MinFontSize
	case size > MaxFontSize:
		return MaxFontSize
	default:
		return size
	}
}
