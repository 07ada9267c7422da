// Package viewer is the interactive ebiten window: it drives a WorldActor
// tick by tick, draws its snapshots and turns mouse and keyboard input into
// manual overrides and parameter changes.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/internal/config"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

const (
	panelWidth  = 240.0
	askTimeout  = time.Second
	snapshotBuf = 10
)

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.WorldSnapshot
	lastState  *pb.WorldSnapshot

	cfg    *config.Config
	arena  behavior.Arena
	logger *zap.Logger

	// UI Controls
	panel                    *ui.UIPanel
	widgetAttraction         *ui.Slider
	widgetRepulsion          *ui.Slider
	widgetAlignment          *ui.Slider
	widgetShowZones          *ui.Checkbox
	widgetColorByOrientation *ui.Checkbox

	framerate *Framerate
	strengths [3]float64 // last values sent to the world
	paused    bool
	stepOnce  bool
	sent      uint64 // ticks requested so far
	grabbing  bool
	panelHeld bool // current press started on the panel
	lastLog   uint64
	textLayer *ebiten.Image

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// NewGame spawns a WorldActor for world on system and builds the window
// state around it.
func NewGame(ctx context.Context, cfg *config.Config, system actor.ActorSystem, world *simulation.World, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	snapshotCh := make(chan *pb.WorldSnapshot, snapshotBuf)
	worldPID, err := simulation.SpawnWorld(ctx, system, world, snapshotCh)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  world.Snapshot().ToProto(),
		cfg:        cfg,
		arena:      world.Arena(),
		logger:     logger.Named("viewer"),
		framerate:  NewFramerate(cfg.Viewer),
	}
	g.buildPanel(world.Config().Interaction)
	return g, nil
}

func (g *Game) buildPanel(in behavior.Interaction) {
	w, h := g.arenaSize()
	panel := ui.NewUIPanel(w, 0, panelWidth, h)
	panel.Title = "Flocking"
	panel.Visible = g.cfg.Viewer.ShowPanel

	panel.AddSection("Strengths")
	g.widgetAttraction = panel.AddSlider("Attraction", 0, sliderMax(in.Attraction.Strength), in.Attraction.Strength)
	g.widgetRepulsion = panel.AddSlider("Repulsion", 0, sliderMax(in.Repulsion.Strength), in.Repulsion.Strength)
	g.widgetAlignment = panel.AddSlider("Alignment", 0, sliderMax(in.Alignment.Strength), in.Alignment.Strength)
	panel.EndSection()

	panel.AddSection("Visualization")
	g.widgetShowZones = panel.AddCheckbox("Show zones (z)", g.cfg.Viewer.ShowZones)
	g.widgetColorByOrientation = panel.AddCheckbox("Color by orientation (c)", g.cfg.Viewer.ColorByOrientation)
	panel.EndSection()

	panel.AddSection("Run")
	panel.AddButton("Pause / resume (space)", func() { g.paused = !g.paused })
	panel.AddButton("Step (n)", func() { g.stepOnce = true })
	panel.AddButton("Release agents", func() { g.tell(&pb.ReleaseAgents{}) })
	panel.EndSection()

	g.panel = panel
	g.strengths = g.currentStrengths()
}

// sliderMax leaves room to quadruple a strength, and at least 1.
func sliderMax(v float64) float64 {
	return max(1, 4*math.Abs(v))
}

func (g *Game) currentStrengths() [3]float64 {
	return [3]float64{g.widgetAttraction.Value, g.widgetRepulsion.Value, g.widgetAlignment.Value}
}

// arenaSize is the arena plus its padding on both sides.
func (g *Game) arenaSize() (float64, float64) {
	s := g.cfg.Simulation
	return s.Width + 2*s.Padding, s.Height + 2*s.Padding
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()
	return g.update(ui.PollInput(), PollControls())
}

// update is one frame of game logic, fed with sampled input.
func (g *Game) update(in ui.Input, c Controls) error {
	// 1. Panel first, so a click on a widget never reaches the arena
	if c.PressStarted {
		g.panelHeld = g.panel.Contains(in.X, in.Y)
	}
	panelIn := in
	if !g.panelHeld {
		// a drag that started in the arena must not move sliders
		panelIn.Pressed = false
	}
	g.panel.Update(panelIn)
	if s := g.currentStrengths(); s != g.strengths {
		g.strengths = s
		g.tell(&pb.SetStrengths{Attraction: s[0], Repulsion: s[1], Alignment: s[2]})
	}

	g.handleKeys(c)
	g.handlePointer(in, c)

	// 2. Retrieve Latest State (Non-blocking)
	g.drainSnapshots()
	limit := uint64(max(g.cfg.Run.Ticks, 0))
	if limit > 0 && g.sent >= limit && g.lastState.GetTick() < limit {
		// the push for the last tick may have been dropped
		g.refresh()
	}
	g.logProgress()
	if limit > 0 && g.lastState.GetTick() >= limit {
		g.logger.Info("Run complete", zap.Uint64("tick", g.lastState.GetTick()), zap.String("run_id", g.lastState.GetRunId()))
		return ebiten.Termination
	}

	// 3. Trigger Simulation Step
	if (!g.paused || g.stepOnce) && (limit == 0 || g.sent < limit) {
		g.tell(&pb.Tick{})
		g.sent++
	}
	g.stepOnce = false
	return nil
}

func (g *Game) handleKeys(c Controls) {
	if c.TogglePause {
		g.paused = !g.paused
	}
	if c.Step && g.paused {
		g.stepOnce = true
	}
	switch {
	case c.Slower:
		ebiten.SetTPS(g.framerate.Slower())
	case c.Faster:
		ebiten.SetTPS(g.framerate.Faster())
	case c.ResetFramerate:
		ebiten.SetTPS(g.framerate.Reset())
	}
	if c.ToggleZones {
		g.widgetShowZones.Value = !g.widgetShowZones.Value
	}
	if c.ToggleColors {
		g.widgetColorByOrientation.Value = !g.widgetColorByOrientation.Value
	}
}

// handlePointer drags and rotates the agents under the cursor. A wheel turn
// without a press rotates them in place and lets them go again.
func (g *Game) handlePointer(in ui.Input, c Controls) {
	onPanel := g.panel.Contains(in.X, in.Y)
	rotation := c.Rotate
	if !onPanel {
		rotation += wheelRotation(in.WheelY)
	}
	cursor := &pb.Vector2D{X: in.X, Y: in.Y}

	switch {
	case in.Pressed && !g.panelHeld:
		g.grabbing = true
		g.tell(&pb.GrabAt{Cursor: cursor, Rotation: int32(rotation)})
	case g.grabbing:
		g.grabbing = false
		g.tell(&pb.ReleaseAgents{})
	case rotation != 0 && !onPanel && !in.Pressed:
		g.tell(&pb.GrabAt{Cursor: cursor, Rotation: int32(rotation)})
		g.tell(&pb.ReleaseAgents{})
	}
}

func (g *Game) drainSnapshots() {
	for {
		select {
		case snap := <-g.snapshotCh:
			g.lastState = snap
		default:
			return
		}
	}
}

// refresh asks the world for its state directly.
func (g *Game) refresh() {
	resp, err := actor.Ask(g.ctx, g.worldPID, &pb.GetSnapshot{}, askTimeout)
	if err != nil {
		g.logger.Warn("Snapshot request failed", zap.Error(err))
		return
	}
	if snap, ok := resp.(*pb.WorldSnapshot); ok {
		g.lastState = snap
	}
}

func (g *Game) logProgress() {
	every := g.cfg.Run.LogEvery
	tick := g.lastState.GetTick()
	if every == 0 || tick == g.lastLog || tick%every != 0 {
		return
	}
	g.lastLog = tick
	g.logger.Info("Simulation progress",
		zap.Uint64("tick", tick),
		zap.Float64("fps", ebiten.ActualFPS()),
		zap.Float64("tps", ebiten.ActualTPS()),
		zap.Int("framerate", g.framerate.Current),
	)
}

func (g *Game) tell(msg proto.Message) {
	if err := actor.Tell(g.ctx, g.worldPID, msg); err != nil {
		g.logger.Warn("Message to world failed", zap.String("message", fmt.Sprintf("%T", msg)), zap.Error(err))
	}
}

func (g *Game) Layout(w, h int) (int, int) {
	aw, ah := g.arenaSize()
	if g.panel.Visible {
		aw += panelWidth
	}
	return int(aw), int(ah)
}

// Run opens the window and blocks until it is closed or the run reaches
// its tick limit.
func Run(ctx context.Context, cfg *config.Config, world *simulation.World, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	system, err := simulation.StartActorSystem(ctx, "FlockingWorld", cfg.Logger.Level == "debug")
	if err != nil {
		return err
	}
	defer func() {
		if err := system.Stop(ctx); err != nil {
			logger.Warn("Actor system stop failed", zap.Error(err))
		}
	}()

	game, err := NewGame(ctx, cfg, system, world, logger)
	if err != nil {
		return err
	}
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(int(float64(w)*cfg.Viewer.Scale), int(float64(h)*cfg.Viewer.Scale))
	ebiten.SetWindowTitle("Flocking")
	ebiten.SetTPS(cfg.Viewer.Framerate)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("viewer stopped: %w", err)
	}
	return nil
}
