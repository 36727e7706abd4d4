package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Decorator renders an option label, e.g. with a colour sample.
type Decorator func(option string) string

// Dropdown selects one value from a fixed option list. Selection always
// yields an element of the list it was built with.
type Dropdown struct {
	options  []string
	open     bool
	cursor   int
	decorate Decorator
}

// NewDropdown constructs a closed dropdown over options.
func NewDropdown(options []string, decorate Decorator) Dropdown {
	return Dropdown{options: append([]string(nil), options...), decorate: decorate}
}

// Options returns the selectable values in order.
func (d Dropdown) Options() []string {
	return append([]string(nil), d.options...)
}

// IsOpen reports whether the option menu is showing.
func (d Dropdown) IsOpen() bool { return d.open }

// Open shows the menu with the cursor on current.
func (d *Dropdown) Open(current string) {
	if len(d.options) == 0 {
		return
	}
	d.open = true
	d.cursor = 0
	for i, option := range d.options {
		if option == current {
			d.cursor = i
			break
		}
	}
}

// Close hides the menu without selecting.
func (d *Dropdown) Close() { d.open = false }

// MoveUp moves the cursor up with wrapping.
func (d *Dropdown) MoveUp() {
	if len(d.options) == 0 {
		return
	}
	d.cursor--
	if d.cursor < 0 {
		d.cursor = len(d.options) - 1
	}
}

// MoveDown moves the cursor down with wrapping.
func (d *Dropdown) MoveDown() {
	if len(d.options) == 0 {
		return
	}
	d.cursor++
	if d.cursor >= len(d.options) {
		d.cursor = 0
	}
}

// Select closes the menu and returns the highlighted option.
func (d *Dropdown) Select() (string, bool) {
	if !d.open || len(d.options) == 0 {
		return "", false
	}
	d.open = false
	return d.options[d.cursor], true
}

// Next returns the option after current, wrapping; unknown current maps to the first option.
func (d Dropdown) Next(current string) (string, bool) {
	return d.offset(current, 1)
}

// Prev returns the option before current, wrapping.
func (d Dropdown) Prev(current string) (string, bool) {
	return d.offset(current, -1)
}

func (d Dropdown) offset(current string, delta int) (string, bool) {
	n := len(d.options)
	if n == 0 {
		return "", false
	}
	for i, option := range d.options {
		if option == current {
			return d.options[((i+delta)%n+n)%n], true
		}
	}
	return d.options[0], true
}

// View renders the closed control and, when open, the option menu beneath it.
func (d Dropdown) View(label, current string, focused bool) string {
	head := Label(label, focused) + valueStyle.Render(d.render(current)) + mutedStyle.Render(" ▾")
	if !d.open {
		return head
	}

	lines := make([]string, len(d.options))
	for i, option := range d.options {
		prefix := "  "
		if i == d.cursor {
			prefix = cursorStyle.Render("› ")
		}
		lines[i] = prefix + d.render(option)
	}
	return lipgloss.JoinVertical(lipgloss.Left, head, menuStyle.Render(strings.Join(lines, "\n")))
}

func (d Dropdown) render(option string) string {
	if d.decorate == nil {
		return option
	}
	return d.decorate(option)
}
