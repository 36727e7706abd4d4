package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/typepreview/internal/customization"
	"github.com/alexisbeaulieu97/typepreview/internal/fonts"
	"github.com/alexisbeaulieu97/typepreview/internal/logger"
	"github.com/alexisbeaulieu97/typepreview/internal/preview"
	"github.com/alexisbeaulieu97/typepreview/internal/tui/components"
)

type focus int

const (
	focusText focus = iota
	focusSize
	focusFont
	focusColor
	focusBold
	focusItalic
	focusCount
)

// Options configures the collaborators a Model renders with.
type Options struct {
	// Resolver maps family names to descriptors. Defaults to fonts.NewCatalog.
	Resolver fonts.Resolver
	// Faces rasterises PNG exports. Defaults to Resolver when it also implements FaceSource.
	Faces     fonts.FaceSource
	Logger    *logger.Logger
	Render    preview.RenderOptions
	ExportDir string
}

// derived is the style recomputed by the state observer. It lives behind a
// pointer so the observer closure and every copy of Model share it.
type derived struct {
	style    preview.Style
	err      error
	revision int
}

// Model is the Bubble Tea model of the preview screen. It reads all values
// from the customization state and writes user input back through its setters.
type Model struct {
	state    *customization.State
	resolver fonts.Resolver
	faces    fonts.FaceSource
	log      *logger.Logger
	derived  *derived
	sub      customization.Subscription

	keys  keyMap
	help  help.Model
	focus focus

	input      textinput.Model
	slider     components.Slider
	fontMenu   components.Dropdown
	colorMenu  components.Dropdown
	toggle     components.Toggle
	renderOpts preview.RenderOptions
	exportDir  string

	banner      string
	bannerError bool
	width       int
	height      int
}

// NewModel constructs the preview screen bound to state and subscribes to its changes.
func NewModel(state *customization.State, opts Options) Model {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = fonts.NewCatalog()
	}
	faces := opts.Faces
	if faces == nil {
		if fs, ok := resolver.(fonts.FaceSource); ok {
			faces = fs
		}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	if faces == nil {
		log.Warn("resolver provides no glyph faces; png export is unavailable")
	}
	exportDir := opts.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "Type something…"
	input.Width = 40
	input.SetValue(state.Text())
	input.Focus()

	m := Model{
		state:      state,
		resolver:   resolver,
		faces:      faces,
		log:        log,
		derived:    &derived{},
		keys:       defaultKeyMap(),
		help:       help.New(),
		focus:      focusText,
		input:      input,
		slider:     components.NewSlider(customization.MinFontSize, customization.MaxFontSize, 1, 5),
		fontMenu:   components.NewDropdown(customization.FontFamilies(), nil),
		colorMenu:  components.NewDropdown(customization.ColorNames(), swatchLabel),
		renderOpts: opts.Render,
		exportDir:  exportDir,
		width:      80,
		height:     24,
	}

	m.keys.scopeTo(m.focus)
	m.derived.recompute(state, resolver)
	d, r, l := m.derived, resolver, log
	m.sub = state.Subscribe(func(change customization.Change) {
		l.DebugFields("customization changed", map[string]any{
			"field": string(change.Field),
			"old":   change.Old,
			"new":   change.New,
		})
		d.recompute(state, r)
		if d.err != nil {
			l.Error(d.err, "derive preview style")
		}
	})

	return m
}

// Init starts the Bubble Tea program.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Close detaches the model from the state.
func (m Model) Close() {
	if m.sub != nil {
		m.sub.Unsubscribe()
	}
}

// Style returns the most recently derived preview style.
func (m Model) Style() preview.Style {
	return m.derived.style
}

// Revision counts how many times the preview style has been recomputed.
func (m Model) Revision() int {
	return m.derived.revision
}

func (d *derived) recompute(state *customization.State, resolver fonts.Resolver) {
	style, err := preview.Derive(state.Snapshot(), resolver)
	d.revision++
	d.err = err
	if err == nil {
		d.style = style
	}
}

func (m *Model) setFocus(f focus) {
	m.fontMenu.Close()
	m.colorMenu.Close()
	m.focus = ((f % focusCount) + focusCount) % focusCount
	m.keys.scopeTo(m.focus)
	if m.focus == focusText {
		m.input.Focus()
		m.input.CursorEnd()
		return
	}
	m.input.Blur()
}

func (m Model) menuOpen() bool {
	return m.fontMenu.IsOpen() || m.colorMenu.IsOpen()
}

func swatchLabel(name string) string {
	swatch, ok := customization.LookupColor(name)
	if !ok {
		return name
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(swatch.Hex())).Render("●") + " " + name
}
