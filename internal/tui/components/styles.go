package components

import "github.com/charmbracelet/lipgloss"

var (
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(8)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Width(8)
	valueStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	mutedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	menuStyle         = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("99")).
				PaddingLeft(1).
				PaddingRight(1).
				MarginLeft(10)
)

// Label renders a control label, highlighted when the control has focus.
func Label(text string, focused bool) string {
	marker := "  "
	style := labelStyle
	if focused {
		marker = cursorStyle.Render("▸ ")
		style = focusedLabelStyle
	}
	return marker + style.Render(text)
}
