package simulation

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// centeredAt builds an agent whose circle is centred on (cx, cy); the
// interaction is left zero so the world fills it from the config.
func centeredAt(id int, cx, cy, r, orientation float64) behavior.Agent {
	return behavior.Agent{
		ID:          id,
		Position:    geometry.Vector2D{X: cx - r, Y: cy - r},
		Orientation: orientation,
		Radius:      r,
	}
}

func mustWorld(t *testing.T, cfg *Config, agents ...behavior.Agent) *World {
	t.Helper()
	w, err := NewWorldWithAgents(cfg, agents, WithRunID(t.Name()))
	require.NoError(t, err)
	return w
}

func TestNewWorldPlacement(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AgentCount = 50
	w, err := NewWorld(cfg)
	require.NoError(t, err)

	require.Equal(t, 50, w.Len())
	assert.NotEmpty(t, w.RunID())
	assert.Zero(t, w.Tick())

	arena := w.Arena()
	for i, a := range w.Agents() {
		assert.Equal(t, i, a.ID)
		assert.True(t, arena.Contains(a.Center()), "agent %d center %v outside arena", a.ID, a.Center())
		assert.GreaterOrEqual(t, a.Orientation, 0.0)
		assert.Less(t, a.Orientation, geometry.TwoPi)
		assert.Zero(t, a.Velocity)
		assert.Equal(t, cfg.AgentRadius, a.Radius)
		assert.Equal(t, cfg.Interaction, a.Interaction)
		assert.False(t, a.ManualOverride)
	}
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DT = 0
	_, err := NewWorld(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewWorldWithAgents(t *testing.T) {
	t.Run("zero interaction inherits the config", func(t *testing.T) {
		custom := behavior.Interaction{Repulsion: behavior.Force{Strength: 1, Range: 10}}
		b := centeredAt(2, 200, 200, 5, 0)
		b.Interaction = custom
		w := mustWorld(t, DefaultConfig(), centeredAt(1, 100, 100, 10, 0), b)

		a, ok := w.Agent(1)
		require.True(t, ok)
		assert.Equal(t, DefaultConfig().Interaction, a.Interaction)
		b, ok = w.Agent(2)
		require.True(t, ok)
		assert.Equal(t, custom, b.Interaction)
	})

	t.Run("orientation is normalised", func(t *testing.T) {
		w := mustWorld(t, DefaultConfig(), centeredAt(1, 100, 100, 10, -math.Pi/2))
		a, _ := w.Agent(1)
		assert.InDelta(t, 3*math.Pi/2, a.Orientation, 1e-12)
	})

	t.Run("caller slice is not aliased", func(t *testing.T) {
		agents := []behavior.Agent{centeredAt(1, 100, 100, 10, 0)}
		w := mustWorld(t, DefaultConfig(), agents...)
		agents[0].Position.X = -1000
		a, _ := w.Agent(1)
		assert.Equal(t, 90.0, a.Position.X)
	})

	t.Run("duplicate ids and bad radii are rejected", func(t *testing.T) {
		_, err := NewWorldWithAgents(DefaultConfig(), []behavior.Agent{
			centeredAt(1, 100, 100, 10, 0),
			centeredAt(1, 200, 100, 10, 0),
			centeredAt(3, 300, 100, 0, 0),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "agents[1].id", cfgErr.Field)
		assert.Contains(t, err.Error(), "agents[2].radius")
	})
}

func TestStepIncrementsTick(t *testing.T) {
	w, err := NewWorld(DefaultConfig())
	require.NoError(t, err)
	for i := 1; i <= 5; i++ {
		w.Step()
		assert.Equal(t, uint64(i), w.Tick())
		assert.Equal(t, uint64(i), w.Snapshot().Tick)
	}
}

func TestStepEmptyWorld(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AgentCount = 0
	w, err := NewWorld(cfg)
	require.NoError(t, err)
	w.Step()
	assert.Equal(t, uint64(1), w.Tick())
	assert.Empty(t, w.Snapshot().Agents)
}

func TestStepInvariants(t *testing.T) {
	for _, mode := range []behavior.BoundaryMode{behavior.BounceBack, behavior.Infinite} {
		for _, order := range []UpdateOrder{OrderSnapshot, OrderInPlace} {
			for _, collisions := range []bool{false, true} {
				name := mode.String() + "/" + string(order)
				if collisions {
					name += "/collisions"
				}
				t.Run(name, func(t *testing.T) {
					cfg := DefaultConfig()
					cfg.AgentCount = 40
					cfg.BoundaryMode = mode
					cfg.UpdateOrder = order
					cfg.Collisions = collisions
					w, err := NewWorld(cfg)
					require.NoError(t, err)

					maxSpeed := cfg.VelocityLimit
					if collisions {
						maxSpeed = max(maxSpeed, cfg.Collision.BoostSpeed, cfg.Collision.BaseSpeed)
					}
					arena := w.Arena()
					for tick := 0; tick < 300; tick++ {
						w.Step()
						for _, a := range w.Agents() {
							require.True(t, a.Position.IsFinite(), "tick %d agent %d position %v", tick, a.ID, a.Position)
							require.GreaterOrEqual(t, a.Orientation, 0.0)
							require.Less(t, a.Orientation, geometry.TwoPi)
							require.GreaterOrEqual(t, a.Velocity, 0.0)
							require.LessOrEqual(t, a.Velocity, maxSpeed)
							require.True(t, arena.Contains(a.Center()),
								"tick %d agent %d center %v outside %+v", tick, a.ID, a.Center(), arena)
						}
					}
				})
			}
		}
	}
}

func TestTwoAgentRepulsion(t *testing.T) {
	// Facing away from each other, 20 apart between centers.
	agents := []behavior.Agent{
		{ID: 0, Position: geometry.Vector2D{X: 100, Y: 100}, Orientation: math.Pi, Radius: 10},
		{ID: 1, Position: geometry.Vector2D{X: 120, Y: 100}, Orientation: 0, Radius: 10},
	}
	distanceAfterTick := func(cfg *Config) float64 {
		w := mustWorld(t, cfg, agents...)
		w.Step()
		a, _ := w.Agent(0)
		b, _ := w.Agent(1)
		return a.Center().Sub(b.Center()).Len()
	}

	withRepulsion := distanceAfterTick(DefaultConfig())

	control := DefaultConfig()
	control.Interaction.Repulsion.Strength = 0
	without := distanceAfterTick(control)

	assert.Greater(t, withRepulsion, 20.0)
	assert.Greater(t, withRepulsion, without, "repulsion must separate the pair further than the control run")
}

func TestToroidalWrap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoundaryMode = behavior.Infinite
	arena := cfg.Arena()

	// A lone agent feels no force and keeps its speed.
	a := centeredAt(7, arena.MaxX-0.5, 200, 10, 0)
	a.Velocity = 1
	w := mustWorld(t, cfg, a)

	w.Step()

	got, _ := w.Agent(7)
	assert.InDelta(t, arena.MinX+got.Radius, got.Position.X, 1e-9)
	assert.Equal(t, 0.0, got.Orientation, "wrapping never turns the agent")
	assert.Equal(t, 1.0, got.Velocity)
}

func TestCollisionKickExceedsVelocityLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Collisions = true

	// Both already at the limit, so integration keeps them at exactly
	// base speed and the overlap boosts them.
	a := centeredAt(0, 200, 200, 10, 0)
	b := centeredAt(1, 205, 200, 10, 0)
	a.Velocity, b.Velocity = 1, 1
	w := mustWorld(t, cfg, a, b)

	w.Step()

	bound := max(cfg.VelocityLimit, cfg.Collision.BoostSpeed, cfg.Collision.BaseSpeed)
	for _, s := range w.Snapshot().Agents {
		assert.Equal(t, cfg.Collision.BoostSpeed, s.Velocity, "agent %d", s.ID)
		assert.Greater(t, s.Velocity, cfg.VelocityLimit)
		assert.LessOrEqual(t, s.Velocity, bound)
	}
}

func TestBounceBackClampsAtWall(t *testing.T) {
	cfg := DefaultConfig()
	arena := cfg.Arena()

	a := centeredAt(3, arena.MaxX-0.5, 200, 10, math.Pi/8)
	a.Velocity = 1
	w := mustWorld(t, cfg, a)

	w.Step()

	got, _ := w.Agent(3)
	assert.Equal(t, arena.MaxX-got.Radius-1, got.Position.X)
	assert.InDelta(t, math.Pi/8+math.Pi/2, got.Orientation, 1e-12)
}

func TestSeedDeterminism(t *testing.T) {
	run := func(seed int64, workers int) []behavior.Agent {
		cfg := DefaultConfig()
		cfg.Seed = seed
		cfg.AgentCount = 100
		cfg.Workers = workers
		cfg.Collisions = true
		w, err := NewWorld(cfg)
		require.NoError(t, err)
		require.NoError(t, w.Run(context.Background(), 150, nil))
		return w.Agents()
	}

	first := run(7, 1)
	if diff := cmp.Diff(first, run(7, 1)); diff != "" {
		t.Errorf("same seed produced different trajectories (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first, run(7, 4)); diff != "" {
		t.Errorf("worker count changed the result (-1 worker +4 workers):\n%s", diff)
	}
	assert.NotEmpty(t, cmp.Diff(first, run(8, 1)), "different seeds should not coincide")
}

func TestSnapshotOrderIsIndependentOfAgentOrder(t *testing.T) {
	agents := []behavior.Agent{
		centeredAt(0, 100, 100, 10, 0),
		centeredAt(1, 125, 100, 10, math.Pi/2),
		centeredAt(2, 110, 130, 10, math.Pi),
		centeredAt(3, 300, 300, 10, 3*math.Pi/2),
	}
	reversed := slices.Clone(agents)
	slices.Reverse(reversed)

	forward := mustWorld(t, DefaultConfig(), agents...)
	backward := mustWorld(t, DefaultConfig(), reversed...)
	for range 20 {
		forward.Step()
		backward.Step()
	}

	byID := cmpopts.SortSlices(func(a, b behavior.Agent) bool { return a.ID < b.ID })
	approx := cmpopts.EquateApprox(0, 1e-9)
	if diff := cmp.Diff(forward.Agents(), backward.Agents(), byID, approx); diff != "" {
		t.Errorf("agent order leaked into the result (-forward +backward):\n%s", diff)
	}
}

func TestInPlaceOrderSeesMovedNeighbours(t *testing.T) {
	agents := []behavior.Agent{
		centeredAt(0, 110, 110, 10, math.Pi),
		centeredAt(1, 130, 110, 10, 0),
	}
	snapshotCfg := DefaultConfig()
	inPlaceCfg := DefaultConfig()
	inPlaceCfg.UpdateOrder = OrderInPlace

	snap := mustWorld(t, snapshotCfg, agents...)
	inPlace := mustWorld(t, inPlaceCfg, agents...)
	snap.Step()
	inPlace.Step()

	a0, _ := snap.Agent(0)
	b0, _ := inPlace.Agent(0)
	assert.Equal(t, a0, b0, "the first agent sees the same world in both orders")

	a1, _ := snap.Agent(1)
	b1, _ := inPlace.Agent(1)
	assert.NotEqual(t, a1, b1, "the second agent reads its neighbour after it moved")
}

func TestStepContextCancelledLeavesWorldUntouched(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	for _, order := range []UpdateOrder{OrderSnapshot, OrderInPlace} {
		t.Run(string(order), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.AgentCount = 200
			cfg.Workers = 4
			cfg.UpdateOrder = order
			w, err := NewWorld(cfg)
			require.NoError(t, err)
			before := w.Agents()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			err = w.StepContext(ctx)

			assert.ErrorIs(t, err, context.Canceled)
			assert.Zero(t, w.Tick())
			assert.Equal(t, before, w.Agents())
		})
	}
}

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	t.Run("bounded", func(t *testing.T) {
		w, err := NewWorld(DefaultConfig())
		require.NoError(t, err)
		var seen []uint64
		err = w.Run(context.Background(), 3, func(s Snapshot) { seen = append(seen, s.Tick) })
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 2, 3}, seen)
	})

	t.Run("unbounded until cancelled", func(t *testing.T) {
		w, err := NewWorld(DefaultConfig())
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		err = w.Run(ctx, 0, func(s Snapshot) {
			if s.Tick == 5 {
				cancel()
			}
		})
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, uint64(5), w.Tick())
	})
}

func TestGrabAndRelease(t *testing.T) {
	w := mustWorld(t, DefaultConfig(),
		centeredAt(0, 110, 110, 10, 0),
		centeredAt(1, 140, 110, 10, 0),
	)

	target := geometry.Vector2D{X: 200, Y: 250}
	require.NoError(t, w.Grab(0, target, 2))

	grabbed, _ := w.Agent(0)
	assert.True(t, grabbed.ManualOverride)
	assert.Equal(t, target, grabbed.Position)
	assert.InDelta(t, 2*DefaultConfig().OverrideTurnStep, grabbed.Orientation, 1e-12)

	for range 10 {
		w.Step()
	}
	held, _ := w.Agent(0)
	assert.Equal(t, grabbed, held, "a grabbed agent is not integrated")
	other, _ := w.Agent(1)
	assert.Greater(t, other.Velocity, 0.0, "a grabbed agent still acts on its neighbours")
	assert.True(t, w.Snapshot().Agents[0].ManualControl)

	require.NoError(t, w.Release(0))
	w.Step()
	released, _ := w.Agent(0)
	assert.False(t, released.ManualOverride)
	assert.NotEqual(t, held.Position, released.Position)
}

func TestGrabUnknownAgent(t *testing.T) {
	w := mustWorld(t, DefaultConfig(), centeredAt(0, 110, 110, 10, 0))
	assert.ErrorIs(t, w.Grab(42, geometry.Vector2D{}, 0), ErrUnknownAgent)
	assert.ErrorIs(t, w.Release(42), ErrUnknownAgent)
}

func TestGrabAt(t *testing.T) {
	w := mustWorld(t, DefaultConfig(),
		centeredAt(0, 110, 110, 10, 0),
		centeredAt(1, 300, 300, 10, 0),
	)
	require.NoError(t, w.Grab(1, geometry.Vector2D{X: 290, Y: 290}, 0))

	cursor := geometry.Vector2D{X: 105, Y: 112}
	ids := w.GrabAt(cursor, -1)
	assert.Equal(t, []int{0}, ids)

	a, _ := w.Agent(0)
	assert.True(t, a.ManualOverride)
	assert.Equal(t, cursor, a.Center())
	assert.InDelta(t, geometry.TwoPi-DefaultConfig().OverrideTurnStep, a.Orientation, 1e-12)

	b, _ := w.Agent(1)
	assert.False(t, b.ManualOverride, "agents away from the cursor are released")

	assert.Empty(t, w.GrabAt(geometry.Vector2D{X: 0, Y: 0}, 0))
	a, _ = w.Agent(0)
	assert.False(t, a.ManualOverride)
}

func TestWorldLoggerOption(t *testing.T) {
	cfg := DefaultConfig()
	w, err := NewWorld(cfg, WithLogger(nil), WithLogEvery(1), WithRunID("fixed"))
	require.NoError(t, err)
	w.Step()
	assert.Equal(t, "fixed", w.RunID())
	assert.Equal(t, "fixed", w.Snapshot().RunID)
	assert.Equal(t, behavior.BounceBack, w.Policy().Mode())
	assert.Equal(t, *cfg, w.Config())
}

func TestSetStrengths(t *testing.T) {
	w := mustWorld(t, DefaultConfig(),
		centeredAt(0, 110, 110, 10, math.Pi),
		centeredAt(1, 130, 110, 10, 0),
	)
	require.NoError(t, w.SetStrengths(0.5, 0, 1))

	for _, a := range w.Agents() {
		assert.Equal(t, 0.5, a.Interaction.Attraction.Strength)
		assert.Equal(t, 0.0, a.Interaction.Repulsion.Strength)
		assert.Equal(t, 1.0, a.Interaction.Alignment.Strength)
		assert.Equal(t, DefaultConfig().Interaction.Repulsion.Range, a.Interaction.Repulsion.Range, "ranges are kept")
	}
	assert.Equal(t, 0.0, w.Config().Interaction.Repulsion.Strength)

	err := w.SetStrengths(math.NaN(), 1, math.Inf(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	a, _ := w.Agent(0)
	assert.Equal(t, 0.5, a.Interaction.Attraction.Strength, "a rejected update changes nothing")
}
