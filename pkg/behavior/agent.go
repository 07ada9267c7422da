// Package behavior holds the per-agent physics of the flock: the pairwise
// force field, steering, integration, wall handling and collision response.
//
// Everything here is a pure function of its arguments or mutates only the
// agent it is handed; orchestration across a whole population lives in
// package simulation.
package behavior

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// Force describes one gated interaction: how strong it is and at which
// distance (Range) the sigmoid gate switches, and how sharply (Steepness).
type Force struct {
	Strength  float64 `json:"strength" yaml:"strength" mapstructure:"strength"`
	Range     float64 `json:"range" yaml:"range" mapstructure:"range"`
	Steepness float64 `json:"steepness" yaml:"steepness" mapstructure:"steepness"`
}

// Gate returns the sigmoid weight of this force at distance dist.
func (f Force) Gate(dist float64) float64 {
	return geometry.SigmoidThreshold(dist, f.Range, f.Steepness)
}

// Interaction groups the three forces an agent responds to.
type Interaction struct {
	Attraction Force `json:"attraction" yaml:"attraction" mapstructure:"attraction"`
	Repulsion  Force `json:"repulsion" yaml:"repulsion" mapstructure:"repulsion"`
	Alignment  Force `json:"alignment" yaml:"alignment" mapstructure:"alignment"`
}

// Agent is one circular member of the flock.
// Position is the upper-left corner of the agent's bounding square, so the
// circle's center is Position + (Radius, Radius).
type Agent struct {
	ID             int
	Position       geometry.Vector2D
	Orientation    float64 // radians, kept in [0, 2Pi)
	Velocity       float64 // forward speed along Orientation
	Radius         float64
	Interaction    Interaction
	ManualOverride bool
}

// Center returns the center of the agent's circle.
func (a Agent) Center() geometry.Vector2D {
	return a.Position.Add(geometry.Vector2D{X: a.Radius, Y: a.Radius})
}

// Heading returns the unit vector the agent faces, in screen space.
func (a Agent) Heading() geometry.Vector2D {
	return geometry.HeadingVector(a.Orientation)
}

// VelocityVector returns Velocity * Heading.
func (a Agent) VelocityVector() geometry.Vector2D {
	return a.Heading().Mul(a.Velocity)
}

// Contains reports whether p lies inside the agent's bounding square,
// the hit box used for pointer grabs.
func (a Agent) Contains(p geometry.Vector2D) bool {
	size := 2 * a.Radius
	return p.X >= a.Position.X && p.X < a.Position.X+size &&
		p.Y >= a.Position.Y && p.Y < a.Position.Y+size
}

// Delta is the change an agent wants to apply during one tick.
type Delta struct {
	Turn  float64 // radians, signed
	Speed float64 // always >= 0
}

// Integrate advances a by one tick.
//
// Heading and speed changes are scaled by dt but the displacement is not:
// the agent moves by its full post-update velocity every tick. This matches
// the reference behaviour of the model and is not a consistent Euler step.
// Boundary handling is left to the caller.
func Integrate(a *Agent, d Delta, dt, limit float64) {
	a.Orientation = geometry.NormalizeAngle(a.Orientation + dt*d.Turn)

	a.Velocity += dt * d.Speed
	if math.Abs(a.Velocity) > limit {
		a.Velocity = limit
	}

	a.Position.X += a.Velocity * math.Cos(a.Orientation)
	a.Position.Y -= a.Velocity * math.Sin(a.Orientation)
}
