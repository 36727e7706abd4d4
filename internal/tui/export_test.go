package tui

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/typepreview/internal/customization"
	"github.com/alexisbeaulieu97/typepreview/internal/fonts"
	"github.com/alexisbeaulieu97/typepreview/internal/preview"
	apperrors "github.com/alexisbeaulieu97/typepreview/pkg/errors"
)

func TestExportFileWritesPNG(t *testing.T) {
	t.Parallel()

	catalog := fonts.NewCatalog()
	style, err := preview.Derive(customization.DefaultValues(), catalog)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "preview.png")
	err = ExportFile(path, "Hi", style, catalog, preview.RenderOptions{Width: 200, Height: 100})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 200, cfg.Width)
	require.Equal(t, 100, cfg.Height)
}

func TestExportFileWithoutFaces(t *testing.T) {
	t.Parallel()

	err := ExportFile(filepath.Join(t.TempDir(), "x.png"), "Hi", preview.Style{}, nil, preview.RenderOptions{})
	var renderErr *apperrors.RenderError
	require.ErrorAs(t, err, &renderErr)
}

func TestExportFileWritesNothingOnRenderFailure(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	path := filepath.Join(dir, "bad.png")
	err := ExportFile(path, "Hi", preview.Style{SizePt: 0}, fonts.NewCatalog(), preview.RenderOptions{})
	var renderErr *apperrors.RenderError
	require.ErrorAs(t, err, &renderErr)
	require.NoFileExists(t, path)
	require.NoDirExists(t, dir)
}
