package config

import (
	"github.com/alexisbeaulieu97/typepreview/internal/customization"
	"github.com/alexisbeaulieu97/typepreview/internal/preview"
)

// Config represents the typepreview configuration document. Every section is optional.
type Config struct {
	Log     LogSettings     `yaml:"log"`
	Preview PreviewSettings `yaml:"preview"`
	Export  ExportSettings  `yaml:"export"`
}

// LogSettings controls where and how verbosely the application logs.
type LogSettings struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	// File receives log output while the interface owns the terminal.
	File  string `yaml:"file"`
	Human bool   `yaml:"human"`
}

// PreviewSettings overrides the startup customization values.
type PreviewSettings struct {
	Text   *string  `yaml:"text"`
	Size   *float64 `yaml:"size" validate:"omitempty,gte=10,lte=80"`
	Font   string   `yaml:"font" validate:"omitempty,font_family"`
	Color  string   `yaml:"color" validate:"omitempty,palette_color"`
	Bold   bool     `yaml:"bold"`
	Italic bool     `yaml:"italic"`
}

// ExportSettings controls PNG export geometry and destination.
type ExportSettings struct {
	Width  int    `yaml:"width" validate:"omitempty,min=64,max=8192"`
	Height int    `yaml:"height" validate:"omitempty,min=64,max=8192"`
	Dir    string `yaml:"dir"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Log: LogSettings{Level: "info"}}
}

// Values merges the preview overrides onto the default customization values.
func (c *Config) Values() customization.Values {
	v := customization.DefaultValues()
	if c == nil {
		return v
	}
	p := c.Preview
	if p.Text != nil {
		v.Text = *p.Text
	}
	if p.Size != nil {
		v.FontSize = *p.Size
	}
	if p.Font != "" {
		v.FontFamily = p.Font
	}
	if p.Color != "" {
		v.Color = p.Color
	}
	if p.Bold {
		v.Weight = customization.WeightBold
	}
	if p.Italic {
		v.Style = customization.StyleItalic
	}
	return v
}

// RenderOptions returns the export geometry with unset fields defaulted.
func (c *Config) RenderOptions() preview.RenderOptions {
	opts := preview.DefaultRenderOptions()
	if c == nil {
		return opts
	}
	if c.Export.Width > 0 {
		opts.Width = c.Export.Width
	}
	if c.Export.Height > 0 {
		opts.Height = c.Export.Height
	}
	return opts
}
