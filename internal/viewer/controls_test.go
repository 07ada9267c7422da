package viewer

import (
	"image/color"
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestFramerate(t *testing.T) {
	f := NewFramerate(config.NewDefaultConfig().Viewer)
	assert.Equal(t, 25, f.Current)

	assert.Equal(t, 30, f.Faster())
	for range 20 {
		f.Faster()
	}
	assert.Equal(t, 60, f.Current, "capped at the maximum")

	assert.Equal(t, 25, f.Reset())
	for range 10 {
		f.Slower()
	}
	assert.Equal(t, 1, f.Current, "floored at the minimum")
	assert.Equal(t, 6, f.Faster())
}

func TestWheelRotation(t *testing.T) {
	assert.Equal(t, 1, wheelRotation(0.5))
	assert.Equal(t, -1, wheelRotation(-3))
	assert.Equal(t, 0, wheelRotation(0))
}

func TestStatusLines(t *testing.T) {
	tests := []struct {
		name      string
		framerate int
		tick      uint64
		total     int
		paused    bool
		want      []string
	}{
		{"bounded", 25, 10, 1000, false, []string{"FPS: 25, t = 10/1000"}},
		{"paused", 5, 3, 1000, true, []string{"FPS: 5, t = 3/1000", "-Paused-"}},
		{"unbounded", 60, 42, 0, false, []string{"FPS: 60, t = 42"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusLines(tt.framerate, tt.tick, tt.total, tt.paused))
		})
	}
}

func TestOrientationColor(t *testing.T) {
	tests := []struct {
		name        string
		orientation float64
		want        color.RGBA
	}{
		{"right is red", 0, color.RGBA{R: 255, A: 255}},
		{"one third turn is green", 2 * math.Pi / 3, color.RGBA{G: 255, A: 255}},
		{"half turn is cyan", math.Pi, color.RGBA{G: 255, B: 255, A: 255}},
		{"two thirds turn is blue", 4 * math.Pi / 3, color.RGBA{B: 255, A: 255}},
		{"full turn wraps", 2 * math.Pi, color.RGBA{R: 255, A: 255}},
		{"negative wraps", -2 * math.Pi / 3, color.RGBA{B: 255, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrientationColor(tt.orientation))
		})
	}
}
