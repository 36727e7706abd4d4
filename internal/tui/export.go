package tui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/typepreview/internal/customization"
	"github.com/alexisbeaulieu97/typepreview/internal/fonts"
	"github.com/alexisbeaulieu97/typepreview/internal/preview"
	apperrors "github.com/alexisbeaulieu97/typepreview/pkg/errors"
)

// exportCmd renders a snapshot of the preview to a timestamped PNG in dir.
// It runs off the UI goroutine and never touches the live state.
func exportCmd(values customization.Values, style preview.Style, faces fonts.FaceSource, opts preview.RenderOptions, dir string) tea.Cmd {
	return func() tea.Msg {
		name := fmt.Sprintf("typepreview-%s.png", time.Now().Format("20060102-150405.000"))
		path := filepath.Join(dir, name)
		if err := ExportFile(path, values.Text, style, faces, opts); err != nil {
			return ExportFailedMsg{Err: err}
		}
		return ExportDoneMsg{Path: path}
	}
}

// ExportFile renders text with style into a PNG at path, creating parent
// directories. Nothing is written unless rendering succeeds.
func ExportFile(path, text string, style preview.Style, faces fonts.FaceSource, opts preview.RenderOptions) error {
	if faces == nil {
		return apperrors.NewRenderError(path, fmt.Errorf("no face source configured"))
	}

	var buf bytes.Buffer
	if err := preview.Render(&buf, text, style, faces, opts); err != nil {
		return apperrors.NewRenderError(path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperrors.NewRenderError(path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return apperrors.NewRenderError(path, err)
	}
	return nil
}
