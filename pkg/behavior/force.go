package behavior

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// NetForce returns the resultant attraction, repulsion and alignment force on
// a from every other agent of neighbours (a itself is skipped by ID).
//
// Displacements are measured between circle centers through the policy, so a
// toroidal arena sees neighbours across the wrap. Each contribution is gated
// by the sigmoid of its own range, then
//
//	F = s_att*Σatt - s_rep*Σrep + s_alg*Σalg
//
// where attraction and repulsion sum displacements and alignment sums
// velocity differences (neighbour minus self).
func NetForce(a Agent, neighbours []Agent, policy BoundaryPolicy) geometry.Vector2D {
	var att, rep, alg geometry.Vector2D

	center := a.Center()
	ownVel := a.VelocityVector()
	in := a.Interaction

	for i := range neighbours {
		b := &neighbours[i]
		if b.ID == a.ID {
			continue
		}
		d := policy.Delta(center, b.Center())
		dist := d.Len()
		dv := b.VelocityVector().Sub(ownVel)

		att = att.Add(d.Mul(in.Attraction.Gate(dist)))
		rep = rep.Add(d.Mul(in.Repulsion.Gate(dist)))
		alg = alg.Add(dv.Mul(in.Alignment.Gate(dist)))
	}

	return att.Mul(in.Attraction.Strength).
		Sub(rep.Mul(in.Repulsion.Strength)).
		Add(alg.Mul(in.Alignment.Strength))
}

// Steer converts a net force into the turn and speed increments for a.
//
// The closed angle between the heading and the force, taken in [0, 2Pi), is
// remapped so the agent turns toward the force on screen: angles in (0, Pi)
// become -closed, the others 2Pi - closed. A degenerate force (zero length,
// undefined angle or already aligned) never turns the agent.
func Steer(a Agent, force geometry.Vector2D) Delta {
	if !force.IsFinite() || force.IsZero() {
		return Delta{}
	}
	d := Delta{Speed: force.Len()}

	angle := geometry.AngleBetween(a.Heading(), force)
	if math.IsNaN(angle) {
		return d
	}
	closed := geometry.NormalizeAngle(angle)
	switch {
	case closed == 0:
	case closed < math.Pi:
		d.Turn = -closed
	default:
		d.Turn = geometry.TwoPi - closed
	}
	return d
}
