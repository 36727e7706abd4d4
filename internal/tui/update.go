package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/typepreview/internal/customization"
)

// Update handles Bubble Tea messages. Control input is translated into
// state setter calls; the state observer refreshes the derived style.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ExportDoneMsg:
		m.banner = "Exported " + msg.Path
		m.bannerError = false
		m.log.WithFields(map[string]any{"path": msg.Path}).Info("preview exported")
		return m, clearBannerAfter(bannerTimeout)

	case ExportFailedMsg:
		m.banner = "Export failed: " + msg.Err.Error()
		m.bannerError = true
		m.log.Error(msg.Err, "preview export failed")
		return m, clearBannerAfter(bannerTimeout)

	case ClearBannerMsg:
		m.banner = ""
		m.bannerError = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	if m.focus == focusText {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.menuOpen() {
		return m.handleMenuKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.setFocus(m.focus - 1)
		return m, nil
	case key.Matches(msg, m.keys.Export):
		return m, m.export()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	switch m.focus {
	case focusText:
		return m.handleTextKeys(msg)
	case focusSize:
		return m.handleSizeKeys(msg)
	case focusFont, focusColor:
		return m.handleSelectKeys(msg)
	case focusBold, focusItalic:
		return m.handleToggleKeys(msg)
	}
	return m, nil
}

// export snapshots the preview for rendering. A style that failed to derive
// is reported rather than exporting the last good one.
func (m Model) export() tea.Cmd {
	if err := m.derived.err; err != nil {
		return func() tea.Msg { return ExportFailedMsg{Err: err} }
	}
	return exportCmd(m.state.Snapshot(), m.derived.style, m.faces, m.renderOpts, m.exportDir)
}

func (m Model) handleTextKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.input.Value() != m.state.Text() {
		m.input.SetValue(m.state.Text())
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.state.SetText(after)
	}
	return m, cmd
}

func (m Model) handleSizeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.state.FontSize()
	next := current
	switch {
	case key.Matches(msg, m.keys.Increase):
		next = m.slider.Increment(current)
	case key.Matches(msg, m.keys.Decrease):
		next = m.slider.Decrement(current)
	case key.Matches(msg, m.keys.PageUp):
		next = m.slider.PageUp(current)
	case key.Matches(msg, m.keys.PageDown):
		next = m.slider.PageDown(current)
	case key.Matches(msg, m.keys.Min):
		next = m.slider.Min()
	case key.Matches(msg, m.keys.Max):
		next = m.slider.Max()
	}
	m.state.SetFontSize(next)
	return m, nil
}

func (m Model) handleSelectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Activate):
		if m.focus == focusFont {
			m.fontMenu.Open(m.state.FontFamily())
		} else {
			m.colorMenu.Open(m.state.Color())
		}
	case key.Matches(msg, m.keys.Increase):
		m.cycleSelection(1)
	case key.Matches(msg, m.keys.Decrease):
		m.cycleSelection(-1)
	}
	return m, nil
}

func (m *Model) cycleSelection(delta int) {
	if m.focus == focusFont {
		if next, ok := step(m.fontMenu.Next, m.fontMenu.Prev, m.state.FontFamily(), delta); ok {
			m.state.SetFontFamily(next)
		}
		return
	}
	if next, ok := step(m.colorMenu.Next, m.colorMenu.Prev, m.state.Color(), delta); ok {
		m.state.SetColor(next)
	}
}

func step(next, prev func(string) (string, bool), current string, delta int) (string, bool) {
	if delta > 0 {
		return next(current)
	}
	return prev(current)
}

func (m Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	menu := &m.fontMenu
	if m.colorMenu.IsOpen() {
		menu = &m.colorMenu
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		menu.MoveUp()
	case key.Matches(msg, m.keys.Down):
		menu.MoveDown()
	case key.Matches(msg, m.keys.Close):
		menu.Close()
	case key.Matches(msg, m.keys.Activate):
		selected, ok := menu.Select()
		if !ok {
			return m, nil
		}
		if menu == &m.fontMenu {
			m.state.SetFontFamily(selected)
		} else {
			m.state.SetColor(selected)
		}
	}
	return m, nil
}

func (m Model) handleToggleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Activate):
		if m.focus == focusBold {
			m.state.ToggleBold()
		} else {
			m.state.ToggleItalic()
		}
	}
	return m, nil
}

// Bold reports whether the bold toggle is on.
func (m Model) Bold() bool { return m.state.Weight() == customization.WeightBold }

// Italic reports whether the italic toggle is on.
func (m Model) Italic() bool { return m.state.Style() == customization.StyleItalic }
