package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const bannerTimeout = 4 * time.Second

// ExportDoneMsg reports a successful PNG export.
type ExportDoneMsg struct {
	Path string
}

// ExportFailedMsg reports a failed PNG export.
type ExportFailedMsg struct {
	Err error
}

// ClearBannerMsg dismisses the status banner.
type ClearBannerMsg struct{}

func clearBannerAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return ClearBannerMsg{} })
}
