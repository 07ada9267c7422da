package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliderClampsAndFollowsPointer(t *testing.T) {
	s := NewSlider(0, 0, 100, "s_att", 0, 10, 42)
	assert.Equal(t, 10.0, s.Value)
	assert.Equal(t, 1.0, s.Ratio())

	assert.False(t, s.Update(Input{X: 25, Y: 5}), "released pointer must not move the slider")
	assert.True(t, s.Update(Input{X: 25, Y: 5, Pressed: true}))
	assert.InDelta(t, 2.5, s.Value, 1e-12)

	assert.False(t, s.Update(Input{X: 25, Y: 50, Pressed: true}), "pointer below the bar")
	assert.False(t, s.Update(Input{X: 25, Y: 5, Pressed: true}), "same value is not a change")
}

func TestSliderDegenerateRange(t *testing.T) {
	s := NewSlider(0, 0, 100, "fixed", 3, 3, 7)
	assert.Equal(t, 3.0, s.Value)
	assert.Equal(t, 0.0, s.Ratio())
}

func TestCheckboxTogglesOncePerPress(t *testing.T) {
	c := NewCheckbox(10, 10, "zones", false)
	press := Input{X: 15, Y: 15, Pressed: true}

	assert.True(t, c.Update(press))
	assert.True(t, c.Value)
	assert.False(t, c.Update(press), "holding must not toggle again")
	assert.True(t, c.Value)

	assert.False(t, c.Update(Input{X: 15, Y: 15}))
	assert.True(t, c.Update(press))
	assert.False(t, c.Value)

	assert.False(t, c.Update(Input{}))
	assert.False(t, c.Update(Input{X: 100, Y: 100, Pressed: true}), "press outside the box")
	assert.False(t, c.Value)
}

func TestButtonFiresOncePerPress(t *testing.T) {
	clicks := 0
	b := NewButton(0, 0, 50, 20, "reset", func() { clicks++ })
	press := Input{X: 10, Y: 10, Pressed: true}

	assert.True(t, b.Update(press))
	assert.False(t, b.Update(press))
	assert.False(t, b.Update(Input{X: 10, Y: 10}))
	assert.True(t, b.Update(press))
	assert.Equal(t, 2, clicks)

	nop := NewButton(0, 0, 50, 20, "nop", nil)
	assert.True(t, nop.Update(press), "a nil handler still reports the click")
}

func TestPanelLayout(t *testing.T) {
	p := NewUIPanel(0, 0, 200, 400)
	p.AddSection("Forces")
	s := p.AddSlider("s_att", 0, 10, 5)
	c := p.AddCheckbox("zones", false)
	p.AddSection("Run")
	b := p.AddButton("pause", nil)

	assert.Equal(t, titleHeight+sectionHeight+labelOffset, s.Y)
	assert.Equal(t, s.Y+s.Height(), c.Y)
	assert.Equal(t, c.Y+c.Height()+sectionHeight, b.Y)
	assert.Equal(t, 10.0, s.X)
	assert.Equal(t, 180.0, s.W)
}

func TestPanelWidgetsWithoutSection(t *testing.T) {
	p := NewUIPanel(0, 0, 200, 400)
	c := p.AddCheckbox("zones", false)
	require.Len(t, p.sections, 1)
	assert.Empty(t, p.sections[0].Title)
	assert.Equal(t, titleHeight+sectionHeight+labelOffset, c.Y)
}

func TestPanelContains(t *testing.T) {
	p := NewUIPanel(600, 10, 200, 300)
	assert.True(t, p.Contains(600, 10))
	assert.True(t, p.Contains(700, 200))
	assert.False(t, p.Contains(599, 200))
	assert.False(t, p.Contains(700, 311))

	p.Visible = false
	assert.False(t, p.Contains(700, 200), "hidden panel takes no input")
}

func TestPanelUpdateForwardsInput(t *testing.T) {
	p := NewUIPanel(0, 0, 200, 400)
	c := p.AddCheckbox("zones", false)

	assert.True(t, p.Update(Input{X: c.X + 1, Y: c.Y + 1, Pressed: true}))
	assert.True(t, c.Value)
	assert.False(t, p.Update(Input{X: c.X + 1, Y: c.Y + 1, Pressed: true}))

	p.Visible = false
	assert.False(t, p.Update(Input{}))
}

func TestPanelScrollsOnlyUnderPointer(t *testing.T) {
	p := NewUIPanel(0, 0, 200, 100)
	p.AddSection("Forces")
	var sliders []*Slider
	for range 8 {
		sliders = append(sliders, p.AddSlider("s", 0, 1, 0))
	}
	top := sliders[0].Y

	p.Update(Input{X: 500, Y: 50, WheelY: -1})
	assert.Zero(t, p.ScrollOffset, "wheel away from the panel")

	p.Update(Input{X: 50, Y: 50, WheelY: -1})
	assert.Equal(t, scrollSpeed, p.ScrollOffset)
	assert.Equal(t, top-scrollSpeed, sliders[0].Y)

	p.Update(Input{X: 50, Y: 50, WheelY: 5})
	assert.Zero(t, p.ScrollOffset, "scroll never goes above the top")

	p.Update(Input{X: 50, Y: 50, WheelY: -1000})
	assert.Equal(t, p.contentHeight()-p.Height+40, p.ScrollOffset)
}

func TestPanelEndSection(t *testing.T) {
	p := NewUIPanel(0, 0, 200, 400)
	p.AddSection("Forces")
	p.AddSlider("s_att", 0, 1, 0)
	p.EndSection()
	p.AddCheckbox("zones", false)

	require.Len(t, p.sections, 2)
	assert.Equal(t, "Forces", p.sections[0].Title)
	assert.Empty(t, p.sections[1].Title)
}
