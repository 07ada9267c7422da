package simulation

import (
	"context"
	"runtime"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/behavior"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// minChunk keeps tiny populations on a single goroutine.
const minChunk = 32

// Step advances the world by one tick:
//
//  1. every agent not under manual control gets a turn/speed delta from the
//     forces of all other agents,
//  2. the deltas are integrated and the boundary policy applied,
//  3. overlapping pairs are resolved if collisions are enabled,
//  4. the tick counter is incremented.
//
// With OrderSnapshot (the default) phase 1 reads a frozen copy of the
// pre-tick state, so the result does not depend on agent order.
func (w *World) Step() {
	// Only cancellation can fail a step.
	_ = w.StepContext(context.Background())
}

// StepContext is Step with cancellation of the force phase. On error the
// world is left untouched.
func (w *World) StepContext(ctx context.Context) error {
	switch w.cfg.UpdateOrder {
	case OrderInPlace:
		if err := ctx.Err(); err != nil {
			return err
		}
		w.stepInPlace()
	default:
		if err := w.computeDeltas(ctx); err != nil {
			return err
		}
		w.applyDeltas()
	}

	collisions := 0
	if w.cfg.Collisions {
		collisions = behavior.ResolveCollisions(w.agents, w.grid, w.policy, w.cfg.Collision)
	}
	w.tick++

	if w.logEvery > 0 && w.tick%w.logEvery == 0 {
		w.logTick(collisions)
	}
	return nil
}

// computeDeltas fills w.deltas from a frozen copy of the agents. Each worker
// owns a disjoint index range of w.deltas.
func (w *World) computeDeltas(ctx context.Context) error {
	copy(w.frozen, w.agents)
	n := len(w.frozen)
	if n == 0 {
		return ctx.Err()
	}

	workers := w.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := max((n+workers-1)/workers, minChunk)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				w.deltas[i] = w.deltaFor(w.frozen[i], w.frozen)
			}
			return nil
		})
	}
	return g.Wait()
}

func (w *World) deltaFor(a behavior.Agent, neighbours []behavior.Agent) behavior.Delta {
	if a.ManualOverride {
		return behavior.Delta{}
	}
	force := behavior.NetForce(a, neighbours, w.policy)
	d := behavior.Steer(a, force)
	return w.wander.Apply(a, w.tick, d)
}

func (w *World) applyDeltas() {
	for i := range w.agents {
		w.advance(&w.agents[i], w.deltas[i])
	}
}

// stepInPlace reproduces the legacy sequential update: each agent reads
// neighbours that may already have moved during this tick.
func (w *World) stepInPlace() {
	for i := range w.agents {
		w.advance(&w.agents[i], w.deltaFor(w.agents[i], w.agents))
	}
}

func (w *World) advance(a *behavior.Agent, d behavior.Delta) {
	if a.ManualOverride {
		return
	}
	behavior.Integrate(a, d, w.cfg.DT, w.cfg.VelocityLimit)
	w.policy.Apply(a)
}

func (w *World) logTick(collisions int) {
	var speed float64
	overridden := 0
	for _, a := range w.agents {
		speed += a.Velocity
		if a.ManualOverride {
			overridden++
		}
	}
	if len(w.agents) > 0 {
		speed /= float64(len(w.agents))
	}
	w.logger.Debug("tick",
		zap.Uint64("tick", w.tick),
		zap.Float64("mean_speed", speed),
		zap.Int("overridden", overridden),
		zap.Int("collisions", collisions),
	)
}
