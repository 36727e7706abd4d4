package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/typepreview/internal/customization"
	apperrors "github.com/alexisbeaulieu97/typepreview/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `log:
  level: debug
  file: /tmp/typepreview.log
preview:
  text: "Hi"
  size: 48
  font: Roboto
  color: Teal
  bold: true
export:
  width: 640
  height: 240
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "debug", cfg.Log.Level)
				require.Equal(t, "/tmp/typepreview.log", cfg.Log.File)

				v := cfg.Values()
				require.Equal(t, "Hi", v.Text)
				require.Equal(t, 48.0, v.FontSize)
				require.Equal(t, "Roboto", v.FontFamily)
				require.Equal(t, "Teal", v.Color)
				require.Equal(t, customization.WeightBold, v.Weight)
				require.Equal(t, customization.StyleNormal, v.Style)

				opts := cfg.RenderOptions()
				require.Equal(t, 640, opts.Width)
				require.Equal(t, 240, opts.Height)
			},
		},
		{
			name:     "empty file yields defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "info", cfg.Log.Level)
				require.Equal(t, customization.DefaultValues(), cfg.Values())
			},
		},
		{
			name:     "empty text override is kept",
			contents: "preview:\n  text: \"\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "", cfg.Values().Text)
			},
		},
		{
			name:     "malformed yaml reports line",
			contents: "log:\n  level: [debug\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Greater(t, parseErr.Line, 0)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: "preview:\n  colour: Red\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "size out of range",
			contents: "preview:\n  size: 96\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "preview.size", validationErr.Field)
			},
		},
		{
			name:     "unknown font",
			contents: "preview:\n  font: Papyrus\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "preview.font", validationErr.Field)
				require.Contains(t, validationErr.Message, "Pacifico")
			},
		},
		{
			name:     "unknown color",
			contents: "preview:\n  color: Magenta\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "preview.color", validationErr.Field)
			},
		},
		{
			name:     "bad log level",
			contents: "log:\n  level: loud\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log.level", validationErr.Field)
			},
		},
		{
			name:     "export too small",
			contents: "export:\n  width: 10\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "export.width", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := ParseConfig(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadWithoutPathFallsBackToDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestNilConfigHelpers(t *testing.T) {
	t.Parallel()

	var cfg *Config
	require.Equal(t, customization.DefaultValues(), cfg.Values())
	require.Equal(t, 800, cfg.RenderOptions().Width)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, ValidateConfig(nil), &validationErr)
}

func TestExportSettingsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings ExportSettings
		field    string
	}{
		{name: "unset", settings: ExportSettings{}},
		{name: "in range", settings: ExportSettings{Width: 64, Height: 8192}},
		{name: "too wide", settings: ExportSettings{Width: 4000000000}, field: "width"},
		{name: "negative height", settings: ExportSettings{Height: -1}, field: "height"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.settings.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
}
