package customization

// Field identifies which customization value changed.
type Field string

const (
	FieldText       Field = "text"
	FieldFontSize   Field = "size"
	FieldWeight     Field = "weight"
	FieldStyle      Field = "style"
	FieldColor      Field = "color"
	FieldFontFamily Field = "font"
)

// Change describes a single field mutation delivered to observers.
type Change struct {
	Field Field
	Old   any
	New   any
}

// Observer is invoked synchronously, on the setter's call stack, after a field changes.
type Observer func(Change)

// Subscription represents a registered observer. Unsubscribe may be called more than once.
type Subscription interface {
	Unsubscribe()
}

// State holds the live customization values and pushes change notifications
// to its observers. Setters do not validate: callers supply in-domain values.
// State is owned by the UI goroutine and is not safe for concurrent use.
type State struct {
	values    Values
	observers []observerEntry
	nextID    int
}

type observerEntry struct {
	id       int
	observer Observer
}

// NewState creates a State starting from the supplied values.
func NewState(initial Values) *State {
	return &State{values: initial}
}

// NewDefaultState creates a State holding DefaultValues.
func NewDefaultState() *State {
	return NewState(DefaultValues())
}

// Subscribe registers an observer for every subsequent change.
func (s *State) Subscribe(observer Observer) Subscription {
	if s == nil || observer == nil {
		return noopSubscription{}
	}
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observerEntry{id: id, observer: observer})

	return subscription{
		cancel: func() {
			for i, entry := range s.observers {
				if entry.id == id {
					s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
					break
				}
			}
		},
	}
}

// Observers returns the number of registered observers.
func (s *State) Observers() int {
	return len(s.observers)
}

// Snapshot returns a copy of the current values.
func (s *State) Snapshot() Values {
	return s.values
}

// Apply sets every field from v, notifying once per field that actually changed.
func (s *State) Apply(v Values) {
	s.SetText(v.Text)
	s.SetFontSize(v.FontSize)
	s.SetWeight(v.Weight)
	s.SetStyle(v.Style)
	s.SetColor(v.Color)
	s.SetFontFamily(v.FontFamily)
}

// Text returns the preview text.
func (s *State) Text() string { return s.values.Text }

// SetText replaces the preview text. Any string is accepted.
func (s *State) SetText(text string) {
	if s.values.Text == text {
		return
	}
	old := s.values.Text
	s.values.Text = text
	s.notify(Change{Field: FieldText, Old: old, New: text})
}

// FontSize returns the preview size in points.
func (s *State) FontSize() float64 { return s.values.FontSize }

// SetFontSize stores size as given; bounding it is the caller's job.
func (s *State) SetFontSize(size float64) {
	if s.values.FontSize == size {
		return
	}
	old := s.values.FontSize
	s.values.FontSize = size
	s.notify(Change{Field: FieldFontSize, Old: old, New: size})
}

// Weight returns the font weight.
func (s *State) Weight() Weight { return s.values.Weight }

// SetWeight sets the font weight.
func (s *State) SetWeight(weight Weight) {
	if s.values.Weight == weight {
		return
	}
	old := s.values.Weight
	s.values.Weight = weight
	s.notify(Change{Field: FieldWeight, Old: old, New: weight})
}

// ToggleBold flips the weight between normal and bold.
func (s *State) ToggleBold() {
	if s.values.Weight == WeightBold {
		s.SetWeight(WeightNormal)
		return
	}
	s.SetWeight(WeightBold)
}

// Style returns the font slant.
func (s *State) Style() Style { return s.values.Style }

// SetStyle sets the font slant.
func (s *State) SetStyle(style Style) {
	if s.values.Style == style {
		return
	}
	old := s.values.Style
	s.values.Style = style
	s.notify(Change{Field: FieldStyle, Old: old, New: style})
}

// ToggleItalic flips the style between normal and italic.
func (s *State) ToggleItalic() {
	if s.values.Style == StyleItalic {
		s.SetStyle(StyleNormal)
		return
	}
	s.SetStyle(StyleItalic)
}

// Color returns the palette name of the preview colour.
func (s *State) Color() string { return s.values.Color }

// SetColor selects a palette colour by name.
func (s *State) SetColor(name string) {
	if s.values.Color == name {
		return
	}
	old := s.values.Color
	s.values.Color = name
	s.notify(Change{Field: FieldColor, Old: old, New: name})
}

// FontFamily returns the selected family name.
func (s *State) FontFamily() string { return s.values.FontFamily }

// SetFontFamily selects a family from the font list by name.
func (s *State) SetFontFamily(family string) {
	if s.values.FontFamily == family {
		return
	}
	old := s.values.FontFamily
	s.values.FontFamily = family
	s.notify(Change{Field: FieldFontFamily, Old: old, New: family})
}

func (s *State) notify(change Change) {
	// Copy so an observer may unsubscribe while being notified.
	observers := append([]observerEntry(nil), s.observers...)
	for _, entry := range observers {
		entry.observer(change)
	}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}
