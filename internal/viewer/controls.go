package viewer

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/internal/config"
	"github.com/lucasb-eyer/go-colorful"
)

// Controls is the keyboard and mouse-button state for one frame.
type Controls struct {
	TogglePause    bool // space
	Step           bool // n, only honoured while paused
	Slower         bool // s
	Faster         bool // f
	ResetFramerate bool // d
	ToggleZones    bool // z
	ToggleColors   bool // c
	// Rotate is +1 (left arrow) or -1 (right arrow) while held.
	Rotate int
	// PressStarted is true on the frame the left button goes down.
	PressStarted bool
}

// PollControls samples the keyboard through inpututil.
func PollControls() Controls {
	c := Controls{
		TogglePause:    inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Step:           inpututil.IsKeyJustPressed(ebiten.KeyN),
		Slower:         inpututil.IsKeyJustPressed(ebiten.KeyS),
		Faster:         inpututil.IsKeyJustPressed(ebiten.KeyF),
		ResetFramerate: inpututil.IsKeyJustPressed(ebiten.KeyD),
		ToggleZones:    inpututil.IsKeyJustPressed(ebiten.KeyZ),
		ToggleColors:   inpututil.IsKeyJustPressed(ebiten.KeyC),
		PressStarted:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		c.Rotate++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		c.Rotate--
	}
	return c
}

// Framerate is the tick rate of the viewer, moved in fixed steps within bounds.
type Framerate struct {
	Current int
	Default int
	Min     int
	Max     int
	Step    int
}

// NewFramerate starts at the configured framerate.
func NewFramerate(cfg config.ViewerConfig) *Framerate {
	return &Framerate{
		Current: cfg.Framerate,
		Default: cfg.Framerate,
		Min:     cfg.MinFramerate,
		Max:     cfg.MaxFramerate,
		Step:    cfg.FramerateStep,
	}
}

func (f *Framerate) Slower() int {
	f.Current = max(f.Current-f.Step, f.Min)
	return f.Current
}

func (f *Framerate) Faster() int {
	f.Current = min(f.Current+f.Step, f.Max)
	return f.Current
}

func (f *Framerate) Reset() int {
	f.Current = f.Default
	return f.Current
}

// wheelRotation turns a wheel delta into one rotation step: up turns
// counter-clockwise, down clockwise.
func wheelRotation(wheelY float64) int {
	switch {
	case wheelY > 0:
		return 1
	case wheelY < 0:
		return -1
	}
	return 0
}

// statusLines is the text drawn over the top padding.
func statusLines(framerate int, tick uint64, total int, paused bool) []string {
	t := fmt.Sprintf("%d", tick)
	if total > 0 {
		t = fmt.Sprintf("%d/%d", tick, total)
	}
	lines := []string{fmt.Sprintf("FPS: %d, t = %s", framerate, t)}
	if paused {
		lines = append(lines, "-Paused-")
	}
	return lines
}

// OrientationColor maps a heading to a fully saturated hue, so agents
// flying the same way share a color.
func OrientationColor(orientation float64) color.RGBA {
	hue := math.Mod(orientation*180/math.Pi, 360)
	// fold negative angles, and keep 360 itself out of range
	hue = math.Mod(hue+360, 360)
	r, g, b := colorful.Hsv(hue, 1, 1).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
