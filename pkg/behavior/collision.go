package behavior

import (
	"math"
	"slices"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// CollisionResponse is the coarse impulse applied to an agent that overlaps
// another: a fixed turn away from the contact and a speed kick.
type CollisionResponse struct {
	Turn       float64 `json:"turn" yaml:"turn" mapstructure:"turn"`
	BaseSpeed  float64 `json:"base_speed" yaml:"base_speed" mapstructure:"base_speed"`
	BoostSpeed float64 `json:"boost_speed" yaml:"boost_speed" mapstructure:"boost_speed"`
}

// DefaultCollisionResponse turns by Pi/8 and kicks 1 -> 1.5, anything else -> 1.
func DefaultCollisionResponse() CollisionResponse {
	return CollisionResponse{Turn: math.Pi / 8, BaseSpeed: 1, BoostSpeed: 1.5}
}

// Collides reports whether the circles of two distinct agents overlap,
// measured under the policy's topology.
func Collides(a, b Agent, policy BoundaryPolicy) bool {
	if a.ID == b.ID {
		return false
	}
	sum := a.Radius + b.Radius
	return policy.Delta(a.Center(), b.Center()).LenSqr() < sum*sum
}

// Resolve corrects other after it was found overlapping ref.
// ref is never modified. The agents are not pushed apart here; separation
// comes from repulsion over the following ticks.
func Resolve(ref Agent, other *Agent, policy BoundaryPolicy, resp CollisionResponse) {
	d := policy.Delta(ref.Position, other.Position)
	theta := geometry.NormalizeAngle(math.Atan2(d.Y, d.X) + other.Orientation)

	if theta >= 0 && theta <= math.Pi {
		other.Orientation = geometry.NormalizeAngle(other.Orientation - resp.Turn)
	} else {
		other.Orientation = geometry.NormalizeAngle(other.Orientation + resp.Turn)
	}

	// Exact comparison on purpose: only an agent sitting at the base speed
	// gets the boost, everything else is reset to base.
	if other.Velocity == resp.BaseSpeed {
		other.Velocity = resp.BoostSpeed
	} else {
		other.Velocity = resp.BaseSpeed
	}
}

// ResolveCollisions runs one collision pass over agents, in slice order.
// For each reference agent every overlapping candidate from the grid is
// corrected against the reference's current state. With three or more
// mutually overlapping circles the outcome depends on that order.
// It returns the number of corrections applied.
func ResolveCollisions(agents []Agent, grid *Grid, policy BoundaryPolicy, resp CollisionResponse) int {
	grid.Rebuild(agents)
	n := 0
	var candidates []int
	for i := range agents {
		candidates = nearby(grid, policy, agents[i].Center(), candidates[:0])
		for _, j := range candidates {
			if j == i || !Collides(agents[i], agents[j], policy) {
				continue
			}
			Resolve(agents[i], &agents[j], policy, resp)
			n++
		}
	}
	return n
}

// nearby appends the grid candidates around p. On a torus the images of p
// across the seams it is close to are searched as well, so pairs touching
// through a wall are found.
func nearby(g *Grid, policy BoundaryPolicy, p geometry.Vector2D, dst []int) []int {
	t, ok := policy.(Toroidal)
	if !ok {
		return g.Nearby(p, dst)
	}
	reach := g.CellSize()
	var xs, ys [3]float64
	nx := seamShifts(&xs, p.X, t.Arena.MinX, t.Arena.MaxX, reach)
	ny := seamShifts(&ys, p.Y, t.Arena.MinY, t.Arena.MaxY, reach)
	if nx == 1 && ny == 1 {
		return g.Nearby(p, dst)
	}

	start := len(dst)
	for _, dx := range xs[:nx] {
		for _, dy := range ys[:ny] {
			dst = g.Nearby(geometry.Vector2D{X: p.X + dx, Y: p.Y + dy}, dst)
		}
	}
	found := dst[start:]
	slices.Sort(found)
	return append(dst[:start], slices.Compact(found)...)
}

// seamShifts fills out with 0 and the offsets that map v onto its image
// past each wall closer than reach, returning how many were written.
func seamShifts(out *[3]float64, v, lo, hi, reach float64) int {
	n := 1
	out[0] = 0
	if v-lo < reach {
		out[n] = hi - lo
		n++
	}
	if hi-v < reach {
		out[n] = lo - hi
		n++
	}
	return n
}
