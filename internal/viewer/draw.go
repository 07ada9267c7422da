package viewer

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

var (
	backgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	wallColor       = color.RGBA{A: 255}
	agentColor      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	selectedColor   = color.RGBA{R: 173, G: 216, B: 230, A: 255}

	// zone rings are drawn faint so the flock stays readable
	attractionZoneColor = color.NRGBA{R: 50, G: 150, B: 50, A: 30}
	repulsionZoneColor  = color.NRGBA{R: 255, A: 30}
	alignmentZoneColor  = color.NRGBA{R: 190, G: 175, B: 50, A: 30}
)

const zoneStroke = 3

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(backgroundColor)
	g.drawWalls(screen)

	// 1. Draw all agents from the last known snapshot
	agents := g.lastState.GetAgents()
	if g.widgetShowZones.Value {
		for _, a := range agents {
			g.drawZones(screen, a)
		}
	}
	for _, a := range agents {
		g.drawAgent(screen, a)
	}
	for _, a := range agents {
		if a.GetManualControl() {
			g.drawAgentStats(screen, a)
		}
	}

	// 2. Status line and UI Panel
	pad := g.cfg.Simulation.Padding
	status := statusLines(g.framerate.Current, g.lastState.GetTick(), g.cfg.Run.Ticks, g.paused)
	g.printDark(screen, strings.Join(status, "\n"), pad, 2)
	g.panel.Draw(screen)

	// Display timing breakdown below the arena
	msg := fmt.Sprintf("TPS: %.1f  Update: %.2fms  Draw: %.2fms", ebiten.ActualTPS(), g.updateAvg, g.drawAvg)
	_, h := g.arenaSize()
	g.printDark(screen, msg, pad, h-pad/2-8)
}

func (g *Game) drawWalls(screen *ebiten.Image) {
	a := g.arena
	minX, minY, maxX, maxY := float32(a.MinX), float32(a.MinY), float32(a.MaxX), float32(a.MaxY)
	vector.StrokeLine(screen, minX, minY, minX, maxY, 1, wallColor, false)
	vector.StrokeLine(screen, minX, minY, maxX, minY, 1, wallColor, false)
	vector.StrokeLine(screen, maxX, minY, maxX, maxY, 1, wallColor, false)
	vector.StrokeLine(screen, minX, maxY, maxX, maxY, 1, wallColor, false)
}

func center(a *pb.AgentState) (float32, float32) {
	r := a.GetRadius()
	return float32(a.GetPosition().GetX() + r), float32(a.GetPosition().GetY() + r)
}

func (g *Game) drawZones(screen *ebiten.Image, a *pb.AgentState) {
	cx, cy := center(a)
	in := g.cfg.Simulation.Interaction
	vector.StrokeCircle(screen, cx, cy, float32(in.Attraction.Range), zoneStroke, attractionZoneColor, true)
	vector.StrokeCircle(screen, cx, cy, float32(in.Repulsion.Range), zoneStroke, repulsionZoneColor, true)
	vector.StrokeCircle(screen, cx, cy, float32(in.Alignment.Range), zoneStroke, alignmentZoneColor, true)
}

// drawAgent draws a disc with a line from its center along the heading.
func (g *Game) drawAgent(screen *ebiten.Image, a *pb.AgentState) {
	clr := agentColor
	switch {
	case a.GetManualControl():
		clr = selectedColor
	case g.widgetColorByOrientation.Value:
		clr = OrientationColor(a.GetOrientation())
	}
	cx, cy := center(a)
	r := a.GetRadius()
	vector.FillCircle(screen, cx, cy, float32(r), clr, true)

	tip := geometry.HeadingVector(a.GetOrientation()).Mul(r)
	vector.StrokeLine(screen, cx, cy, cx+float32(tip.X), cy+float32(tip.Y), 3, backgroundColor, true)
}

func (g *Game) drawAgentStats(screen *ebiten.Image, a *pb.AgentState) {
	r := a.GetRadius()
	msg := fmt.Sprintf("ID: %d\nori.: %.2f", a.GetId(), a.GetOrientation())
	g.printDark(screen, msg, a.GetPosition().GetX()+2*r, a.GetPosition().GetY()+2*r)
}

// printDark draws debug text in black. ebitenutil prints white, so the text
// goes through a scratch layer tinted on the way to the screen.
func (g *Game) printDark(screen *ebiten.Image, msg string, x, y float64) {
	if g.textLayer == nil {
		g.textLayer = ebiten.NewImage(320, 48)
	}
	g.textLayer.Clear()
	ebitenutil.DebugPrint(g.textLayer, msg)
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.Scale(0, 0, 0, 1)
	op.GeoM.Translate(x, y)
	screen.DrawImage(g.textLayer, op)
}
