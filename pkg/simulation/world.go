// Package simulation orchestrates a population of agents over discrete ticks
// and exposes the run to observers: snapshots, manual overrides and an
// actor front-end for concurrent callers.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
	"go.uber.org/zap"
)

// ErrUnknownAgent is returned when an override names an id that is not in the world.
var ErrUnknownAgent = errors.New("unknown agent")

// World owns the agents of one run. It is not safe for concurrent use;
// WorldActor serialises access when several goroutines need it.
type World struct {
	cfg    Config
	arena  behavior.Arena
	policy behavior.BoundaryPolicy
	grid   *behavior.Grid
	wander *behavior.Wander

	agents []behavior.Agent
	index  map[int]int // agent id -> slice index
	tick   uint64

	// scratch reused across ticks
	frozen []behavior.Agent
	deltas []behavior.Delta

	runID    string
	logger   *zap.Logger
	logEvery uint64
}

// Option customises a World at construction.
type Option func(*World)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(w *World) { w.runID = id }
}

// WithLogEvery emits a debug summary every n ticks; 0 disables it.
func WithLogEvery(n uint64) Option {
	return func(w *World) { w.logEvery = n }
}

// NewWorld validates cfg and places cfg.AgentCount agents at seeded
// uniform-random positions and orientations, at rest.
// A nil cfg means DefaultConfig().
func NewWorld(cfg *Config, opts ...Option) (*World, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)^0x9e3779b97f4a7c15))
	r := cfg.AgentRadius
	agents := make([]behavior.Agent, cfg.AgentCount)
	for i := range agents {
		agents[i] = behavior.Agent{
			ID: i,
			// The bounding square may overlap the padding band; only the
			// center is guaranteed to be inside the arena.
			Position: geometry.Vector2D{
				X: cfg.Padding - r + rng.Float64()*cfg.Width,
				Y: cfg.Padding - r + rng.Float64()*cfg.Height,
			},
			Orientation: rng.Float64() * geometry.TwoPi,
			Radius:      r,
			Interaction: cfg.Interaction,
		}
	}
	return newWorld(cfg, agents, opts)
}

// NewWorldWithAgents builds a world around an explicit population, for
// scripted scenarios and tests. Agents with a zero Interaction inherit the
// config's; ids must be unique and radii positive.
func NewWorldWithAgents(cfg *Config, agents []behavior.Agent, opts ...Option) (*World, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	own := make([]behavior.Agent, len(agents))
	copy(own, agents)
	seen := make(map[int]struct{}, len(own))
	var errs []error
	for i := range own {
		a := &own[i]
		if _, dup := seen[a.ID]; dup {
			errs = append(errs, &ConfigError{Field: fmt.Sprintf("agents[%d].id", i), Reason: fmt.Sprintf("duplicates id %d", a.ID)})
		}
		seen[a.ID] = struct{}{}
		if !(a.Radius > 0) {
			errs = append(errs, &ConfigError{Field: fmt.Sprintf("agents[%d].radius", i), Reason: "must be > 0"})
		}
		if a.Interaction == (behavior.Interaction{}) {
			a.Interaction = cfg.Interaction
		}
		a.Orientation = geometry.NormalizeAngle(a.Orientation)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return newWorld(cfg, own, opts)
}

func newWorld(cfg *Config, agents []behavior.Agent, opts []Option) (*World, error) {
	arena := cfg.Arena()
	policy, err := behavior.NewBoundaryPolicy(cfg.BoundaryMode, arena)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	maxRadius := 0.0
	index := make(map[int]int, len(agents))
	for i, a := range agents {
		index[a.ID] = i
		maxRadius = max(maxRadius, a.Radius)
	}

	w := &World{
		cfg:    *cfg,
		arena:  arena,
		policy: policy,
		grid:   behavior.NewGrid(behavior.CellSizeFor(maxRadius)),
		agents: agents,
		index:  index,
		frozen: make([]behavior.Agent, len(agents)),
		deltas: make([]behavior.Delta, len(agents)),
		runID:  uuid.NewString(),
		logger: zap.NewNop(),
	}
	if cfg.WanderStrength != 0 {
		w.wander = behavior.NewWander(cfg.WanderStrength, cfg.WanderScale, cfg.Seed)
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With(zap.String("run_id", w.runID))

	w.logger.Info("World created",
		zap.Int("agents", len(agents)),
		zap.Stringer("boundary_mode", cfg.BoundaryMode),
		zap.String("update_order", string(cfg.UpdateOrder)),
		zap.Bool("collisions", cfg.Collisions),
		zap.Int64("seed", cfg.Seed),
	)
	return w, nil
}

// Config returns a copy of the run configuration.
func (w *World) Config() Config { return w.cfg }

// Arena returns the interaction region.
func (w *World) Arena() behavior.Arena { return w.arena }

// Policy returns the boundary policy in force.
func (w *World) Policy() behavior.BoundaryPolicy { return w.policy }

// Tick returns the number of completed steps.
func (w *World) Tick() uint64 { return w.tick }

// RunID identifies this run in logs and snapshots.
func (w *World) RunID() string { return w.runID }

// Len returns the population size.
func (w *World) Len() int { return len(w.agents) }

// Agents returns a copy of the agents in world order.
func (w *World) Agents() []behavior.Agent {
	out := make([]behavior.Agent, len(w.agents))
	copy(out, w.agents)
	return out
}

// Agent returns a copy of the agent with the given id.
func (w *World) Agent(id int) (behavior.Agent, bool) {
	i, ok := w.index[id]
	if !ok {
		return behavior.Agent{}, false
	}
	return w.agents[i], true
}

// Snapshot returns the read-only view of the world after the last completed tick.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   w.tick,
		RunID:  w.runID,
		Agents: make([]AgentSnapshot, len(w.agents)),
	}
	for i, a := range w.agents {
		s.Agents[i] = snapshotOf(a)
	}
	return s
}

// Run steps the world ticks times, or until ctx is done when ticks <= 0.
// onTick, if set, receives the snapshot after every step. Cancellation is
// checked between ticks and inside the force phase; a cancelled tick leaves
// the world exactly as the previous one did.
func (w *World) Run(ctx context.Context, ticks int, onTick func(Snapshot)) error {
	for i := 0; ticks <= 0 || i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.StepContext(ctx); err != nil {
			return err
		}
		if onTick != nil {
			onTick(w.Snapshot())
		}
	}
	return nil
}

// Grab puts agent id under manual control: it is moved to pos (its
// upper-left corner), rotated by rotation*OverrideTurnStep and excluded from
// integration until released. It still acts on its neighbours.
func (w *World) Grab(id int, pos geometry.Vector2D, rotation int) error {
	i, ok := w.index[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownAgent, id)
	}
	w.grab(&w.agents[i], pos, rotation)
	return nil
}

func (w *World) grab(a *behavior.Agent, pos geometry.Vector2D, rotation int) {
	a.Position = pos
	a.Orientation = geometry.NormalizeAngle(a.Orientation + float64(rotation)*w.cfg.OverrideTurnStep)
	a.ManualOverride = true
}

// GrabAt grabs every agent whose bounding square contains cursor, centring
// it on the cursor and applying the rotation, and releases every other
// agent. It returns the ids now under manual control.
func (w *World) GrabAt(cursor geometry.Vector2D, rotation int) []int {
	var grabbed []int
	for i := range w.agents {
		a := &w.agents[i]
		if !a.Contains(cursor) {
			a.ManualOverride = false
			continue
		}
		w.grab(a, cursor.Sub(geometry.Vector2D{X: a.Radius, Y: a.Radius}), rotation)
		grabbed = append(grabbed, a.ID)
	}
	return grabbed
}

// Release hands agent id back to the physics from the next tick on.
func (w *World) Release(id int) error {
	i, ok := w.index[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownAgent, id)
	}
	w.agents[i].ManualOverride = false
	return nil
}

// SetStrengths replaces the attraction, repulsion and alignment strengths
// of every agent, keeping ranges and steepness. It applies from the next tick.
func (w *World) SetStrengths(attraction, repulsion, alignment float64) error {
	var errs []error
	for _, s := range []struct {
		field string
		v     float64
	}{
		{"interaction.attraction.strength", attraction},
		{"interaction.repulsion.strength", repulsion},
		{"interaction.alignment.strength", alignment},
	} {
		if math.IsNaN(s.v) || math.IsInf(s.v, 0) {
			errs = append(errs, &ConfigError{Field: s.field, Reason: "must be a finite number"})
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	set := func(in *behavior.Interaction) {
		in.Attraction.Strength = attraction
		in.Repulsion.Strength = repulsion
		in.Alignment.Strength = alignment
	}
	set(&w.cfg.Interaction)
	for i := range w.agents {
		set(&w.agents[i].Interaction)
	}
	w.logger.Info("Strengths updated",
		zap.Float64("attraction", attraction),
		zap.Float64("repulsion", repulsion),
		zap.Float64("alignment", alignment),
	)
	return nil
}

// ReleaseAll clears every manual override.
func (w *World) ReleaseAll() {
	for i := range w.agents {
		w.agents[i].ManualOverride = false
	}
}
