package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/typepreview/internal/tui/components"
)

const minPreviewWidth = 24

// View renders the preview followed by one control per customization field.
func (m Model) View() string {
	sections := []string{
		titleStyle.Render("typepreview"),
		m.renderPreview(),
		sectionStyle.Render("Customize"),
		m.renderControls(),
	}

	if m.banner != "" {
		style := successBannerStyle
		if m.bannerError {
			style = errorBannerStyle
		}
		sections = append(sections, style.Render(m.banner))
	}

	sections = append(sections, helpStyle.Render(m.help.ShortHelpView(m.keys.helpFor(m.focus, m.menuOpen()))))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderPreview() string {
	width := m.width - 4
	if width < minPreviewWidth {
		width = minPreviewWidth
	}

	if m.derived.err != nil {
		return previewBoxStyle.Width(width).Render(errorBannerStyle.Render(m.derived.err.Error()))
	}

	style := m.derived.style
	body := style.Lipgloss().Render(m.state.Text())
	box := previewBoxStyle.Width(width).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, box, summaryStyle.Render(style.Summary()))
}

func (m Model) renderControls() string {
	var textLine string
	if m.focus == focusText {
		input := m.input
		if input.Value() != m.state.Text() {
			input.SetValue(m.state.Text())
		}
		textLine = components.Label("Text", true) + input.View()
	} else {
		textLine = components.Label("Text", false) + m.state.Text()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		textLine,
		m.slider.View("Size", m.state.FontSize(), m.focus == focusSize),
		m.fontMenu.View("Font", m.state.FontFamily(), m.focus == focusFont),
		m.colorMenu.View("Color", m.state.Color(), m.focus == focusColor),
		m.toggle.View("Bold", m.Bold(), m.focus == focusBold),
		m.toggle.View("Italic", m.Italic(), m.focus == focusItalic),
	)
}
