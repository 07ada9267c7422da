// Package ui holds the small immediate-mode widgets drawn over the arena:
// sliders, checkboxes and buttons grouped in a scrollable panel.
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Input is the pointer state widgets react to, sampled once per frame.
type Input struct {
	X, Y    float64
	Pressed bool    // left button held
	WheelY  float64 // wheel delta this frame
}

// PollInput samples ebiten's pointer state.
func PollInput() Input {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return Input{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		WheelY:  wy,
	}
}

// Over reports whether the pointer is inside the rectangle.
func (in Input) Over(x, y, w, h float64) bool {
	return in.X >= x && in.X <= x+w && in.Y >= y && in.Y <= y+h
}
