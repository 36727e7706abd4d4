package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Slider renders a bounded numeric value as a bar and computes adjustments.
// It never returns a value outside [Min, Max].
type Slider struct {
	bar    progress.Model
	min    float64
	max    float64
	step   float64
	coarse float64
}

// NewSlider creates a slider over [min, max] with the given fine and coarse steps.
func NewSlider(min, max, step, coarse float64) Slider {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return Slider{bar: bar, min: min, max: max, step: step, coarse: coarse}
}

func (s Slider) Min() float64 { return s.min }
func (s Slider) Max() float64 { return s.max }

// Clamp confines value to the slider bounds.
func (s Slider) Clamp(value float64) float64 {
	return math.Max(s.min, math.Min(s.max, value))
}

// Increment moves one fine step up.
func (s Slider) Increment(value float64) float64 { return s.Clamp(value + s.step) }

// Decrement moves one fine step down.
func (s Slider) Decrement(value float64) float64 { return s.Clamp(value - s.step) }

// PageUp moves one coarse step up.
func (s Slider) PageUp(value float64) float64 { return s.Clamp(value + s.coarse) }

// PageDown moves one coarse step down.
func (s Slider) PageDown(value float64) float64 { return s.Clamp(value - s.coarse) }

// Ratio maps value onto [0, 1] for rendering.
func (s Slider) Ratio(value float64) float64 {
	if s.max <= s.min {
		return 0
	}
	return (s.Clamp(value) - s.min) / (s.max - s.min)
}

// View renders the slider for the provided value.
func (s Slider) View(label string, value float64, focused bool) string {
	reading := valueStyle.Render(fmt.Sprintf("%3gpt", value))
	bounds := mutedStyle.Render(fmt.Sprintf("%g–%g", s.min, s.max))
	return lipgloss.JoinHorizontal(lipgloss.Left,
		Label(label, focused), reading, " ", s.bar.ViewAs(s.Ratio(value)), " ", bounds)
}
