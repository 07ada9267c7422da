package behavior

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

const tol = 1e-9

// defaultInteraction mirrors the homogeneous setup used by the simulation defaults.
func defaultInteraction() Interaction {
	return Interaction{
		Attraction: Force{Strength: 0.02, Range: 200, Steepness: -0.5},
		Repulsion:  Force{Strength: 5, Range: 50, Steepness: -0.5},
		Alignment:  Force{Strength: 8, Range: 150, Steepness: -0.5},
	}
}

// agentAt builds an agent whose circle is centred on (cx, cy).
func agentAt(id int, cx, cy, r, orientation float64) Agent {
	return Agent{
		ID:          id,
		Position:    geometry.Vector2D{X: cx - r, Y: cy - r},
		Orientation: orientation,
		Radius:      r,
		Interaction: defaultInteraction(),
	}
}

func deg(d float64) float64 { return d * math.Pi / 180 }
