package behavior

import (
	"github.com/aquilax/go-perlin"
)

// Perlin parameters: persistence 2, frequency multiplier 2, three octaves.
const (
	wanderAlpha   = 2.0
	wanderBeta    = 2.0
	wanderOctaves = 3
)

// Wander adds a smooth random heading drift to the steering of each agent.
// The drift for an agent is sampled from a 2D Perlin field along the
// (agent, time) plane, so it is continuous over ticks and reproducible for
// a given seed. A zero Strength leaves the physics untouched.
//
// The noise tables are read-only after construction; Turn is safe to call
// from concurrent force workers.
type Wander struct {
	Strength float64
	// Scale is how fast the field is traversed per tick.
	Scale float64
	field *perlin.Perlin
}

// NewWander returns a drift generator seeded with seed.
func NewWander(strength, scale float64, seed int64) *Wander {
	return &Wander{
		Strength: strength,
		Scale:    scale,
		field:    perlin.NewPerlin(wanderAlpha, wanderBeta, wanderOctaves, seed),
	}
}

// Enabled reports whether the generator contributes anything.
func (w *Wander) Enabled() bool {
	return w != nil && w.Strength != 0
}

// Turn returns the extra turn (radians per unit dt) for agent id at tick.
func (w *Wander) Turn(id int, tick uint64) float64 {
	if !w.Enabled() {
		return 0
	}
	// Offset the agent axis by half a lattice step: Perlin noise is zero
	// on integer lattice points.
	x := float64(id) + 0.5
	y := float64(tick)*w.Scale + 0.5
	return w.Strength * w.field.Noise2D(x, y)
}

// Apply adds the drift for a at tick to d.
func (w *Wander) Apply(a Agent, tick uint64, d Delta) Delta {
	d.Turn += w.Turn(a.ID, tick)
	return d
}
