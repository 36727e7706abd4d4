package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/typepreview/internal/customization"
	apperrors "github.com/alexisbeaulieu97/typepreview/pkg/errors"
)

// ValidateConfig performs schema validation and checks the merged preview values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	// Shares the catalog-aware tags (font_family, palette_color).
	v := customization.Validator()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Preview.Text != nil && strings.ContainsRune(*cfg.Preview.Text, '\x00') {
		return apperrors.NewValidationError("preview.text", "must not contain NUL bytes", nil)
	}

	return nil
}

// Validate checks export geometry supplied outside a config file, such as
// command-line flags. Zero means unset.
func (e ExportSettings) Validate() error {
	if err := customization.Validator().Struct(e); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		switch ve.Tag() {
		case "font_family":
			msg = fmt.Sprintf("unknown font family %q (available: %s)", ve.Value(), strings.Join(customization.FontFamilies(), ", "))
		case "palette_color":
			msg = fmt.Sprintf("unknown color %q (available: %s)", ve.Value(), strings.Join(customization.ColorNames(), ", "))
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", field, ve.Param())
		case "min":
			msg = fmt.Sprintf("%s must be at least %s, got %v", field, ve.Param(), ve.Value())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s, got %v", field, ve.Param(), ve.Value())
		}
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.preview.size" into "preview.size" and
// "ExportSettings.width" into "width".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
