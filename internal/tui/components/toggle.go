package components

// Toggle renders an on/off switch. It holds no value of its own.
type Toggle struct{}

// View renders the switch in the given state.
func (Toggle) View(label string, on, focused bool) string {
	mark := mutedStyle.Render("[ ] off")
	if on {
		mark = cursorStyle.Render("[x]") + valueStyle.Render(" on")
	}
	return Label(label, focused) + mark
}
