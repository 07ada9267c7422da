package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider picks a value in [Min, Max] by dragging along its bar.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
}

// NewSlider returns a slider with the value clamped into range.
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	s := &Slider{
		Label: label,
		Min:   min,
		Max:   max,
		X:     x,
		Y:     y,
		W:     w,
		H:     10,
	}
	s.Set(value)
	return s
}

// Set clamps v into [Min, Max] and stores it.
func (s *Slider) Set(v float64) {
	s.Value = max(s.Min, min(v, s.Max))
}

// Ratio is the position of Value along the bar, in [0, 1].
func (s *Slider) Ratio() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Update moves the value to the pointer while the button is held over the
// bar. It reports whether the value changed.
func (s *Slider) Update(in Input) bool {
	if !in.Pressed || !in.Over(s.X, s.Y, s.W, s.H) || s.W <= 0 {
		return false
	}
	old := s.Value
	s.Set(s.Min + (in.X-s.X)/s.W*(s.Max-s.Min))
	return s.Value != old
}

// Draw renders the bar and the current value.
func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*s.Ratio()), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.3g", s.Value), int(s.X+s.W)-40, int(s.Y)-15)
}

// Height implements Widget: label line plus bar.
func (s *Slider) Height() float64 { return s.H + 25 }

// SetY implements Widget.
func (s *Slider) SetY(y float64) { s.Y = y }
