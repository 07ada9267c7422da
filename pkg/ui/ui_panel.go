package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
	labelOffset   = 15.0
	scrollSpeed   = 20.0
)

// Widget is anything the panel can lay out.
type Widget interface {
	// Update reacts to the pointer and reports whether the widget's value changed.
	Update(in Input) bool
	Draw(screen *ebiten.Image)
	Height() float64
	SetY(y float64)
}

type entry struct {
	label  string
	widget Widget
	y      float64 // top of the entry after the last layout
}

// Section groups consecutive widgets under a header.
type Section struct {
	Title   string
	entries []entry
}

// UIPanel is a scrollable column of sections drawn over the arena.
type UIPanel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Visible       bool
	ScrollOffset  float64

	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []*Section
	open     bool
}

// NewUIPanel creates a visible, empty panel.
func NewUIPanel(x, y, width, height float64) *UIPanel {
	return &UIPanel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       "Configuration",
		Visible:     true,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection starts a new section; widgets added next belong to it.
func (p *UIPanel) AddSection(title string) {
	p.sections = append(p.sections, &Section{Title: title})
	p.open = true
}

// EndSection closes the current section; widgets added before the next
// AddSection go to an untitled one.
func (p *UIPanel) EndSection() {
	p.open = false
}

func (p *UIPanel) add(label string, w Widget) {
	if !p.open {
		p.AddSection("")
	}
	s := p.sections[len(p.sections)-1]
	s.entries = append(s.entries, entry{label: label, widget: w})
	p.layout()
}

// AddSlider appends a slider to the current section.
func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.add(label, s)
	return s
}

// AddCheckbox appends a checkbox to the current section.
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.add(label, c)
	return c
}

// AddButton appends a full-width button to the current section.
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, 0, p.Width-20, 18, label, onClick)
	p.add("", b)
	return b
}

// Contains reports whether a point lies on the visible panel, so callers
// can keep pointer input meant for the panel away from the arena.
func (p *UIPanel) Contains(x, y float64) bool {
	return p.Visible && x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height
}

// Update scrolls when the wheel turns over the panel and forwards the
// pointer to every widget. It reports whether any value changed.
func (p *UIPanel) Update(in Input) bool {
	if !p.Visible {
		return false
	}
	if in.WheelY != 0 && p.Contains(in.X, in.Y) {
		maxScroll := max(p.contentHeight()-p.Height+40, 0)
		p.ScrollOffset = max(0, min(p.ScrollOffset-in.WheelY*scrollSpeed, maxScroll))
		p.layout()
	}

	changed := false
	for _, s := range p.sections {
		for _, e := range s.entries {
			if p.visibleY(e.y) && e.widget.Update(in) {
				changed = true
			}
		}
	}
	return changed
}

// layout positions every widget for the current scroll offset.
func (p *UIPanel) layout() {
	y := p.Y + titleHeight - p.ScrollOffset
	for _, s := range p.sections {
		y += sectionHeight
		for i := range s.entries {
			e := &s.entries[i]
			e.y = y
			e.widget.SetY(y + labelOffset)
			y += e.widget.Height()
		}
	}
}

func (p *UIPanel) visibleY(y float64) bool {
	return y >= p.Y+titleHeight && y <= p.Y+p.Height
}

func (p *UIPanel) contentHeight() float64 {
	h := titleHeight
	for _, s := range p.sections {
		h += sectionHeight
		for _, e := range s.entries {
			h += e.widget.Height()
		}
	}
	return h
}

// Draw renders the panel and the widgets that fit in it.
func (p *UIPanel) Draw(screen *ebiten.Image) {
	if !p.Visible {
		return
	}
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	y := p.Y + titleHeight - p.ScrollOffset
	for _, s := range p.sections {
		if s.Title != "" && p.visibleY(y) {
			vector.FillRect(screen, float32(p.X+5), float32(y), float32(p.Width-10), 20, color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, s.Title, int(p.X+10), int(y+5))
		}
		y += sectionHeight
		for _, e := range s.entries {
			if p.visibleY(y) {
				if e.label != "" {
					ebitenutil.DebugPrintAt(screen, e.label, int(p.X+10), int(y))
				}
				e.widget.Draw(screen)
			}
			y += e.widget.Height()
		}
	}
}
