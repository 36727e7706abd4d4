package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Increase  key.Binding
	Decrease  key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Min       key.Binding
	Max       key.Binding
	Up        key.Binding
	Down      key.Binding
	Activate  key.Binding
	Close     key.Binding
	Export    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Increase:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "larger")),
		Decrease:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "smaller")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "+5")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "-5")),
		Min:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "min")),
		Max:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "max")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Activate:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Export:    key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export png")),
		Quit:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// scopeTo adjusts bindings that depend on focus: "q" quits everywhere
// except in the text box, where it is typed.
func (k *keyMap) scopeTo(f focus) {
	if f == focusText {
		k.Quit.SetKeys("esc")
		return
	}
	k.Quit.SetKeys("esc", "q")
}

// helpFor returns the bindings worth showing for the focused control.
func (k keyMap) helpFor(f focus, menuOpen bool) []key.Binding {
	if menuOpen {
		return []key.Binding{k.Up, k.Down, k.Activate, k.Close}
	}
	common := []key.Binding{k.Next, k.Export, k.Quit}
	switch f {
	case focusSize:
		return append([]key.Binding{k.Decrease, k.Increase, k.PageUp, k.PageDown}, common...)
	case focusFont, focusColor:
		return append([]key.Binding{k.Activate, k.Decrease, k.Increase}, common...)
	case focusBold, focusItalic:
		return append([]key.Binding{k.Activate}, common...)
	default:
		return common
	}
}
