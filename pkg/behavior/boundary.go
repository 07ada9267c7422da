package behavior

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// ErrUnknownBoundaryMode is returned when a boundary mode name is not recognised.
var ErrUnknownBoundaryMode = errors.New("unknown boundary mode")

// BoundaryMode selects what happens when an agent's center leaves the arena.
type BoundaryMode int

const (
	// BounceBack clamps the agent inside the walls and turns it away.
	BounceBack BoundaryMode = iota
	// Infinite wraps the agent to the opposite wall (toroidal arena).
	Infinite
)

var boundaryModeNames = map[BoundaryMode]string{
	BounceBack: "bounce_back",
	Infinite:   "infinite",
}

// String implements fmt.Stringer.
func (m BoundaryMode) String() string {
	if s, ok := boundaryModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("BoundaryMode(%d)", int(m))
}

// ParseBoundaryMode maps "bounce_back" or "infinite" (case insensitive) to a mode.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range boundaryModeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBoundaryMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m BoundaryMode) MarshalText() ([]byte, error) {
	s, ok := boundaryModeNames[m]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBoundaryMode, int(m))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so config decoders
// (json, viper via mapstructure hooks) accept the names directly.
func (m *BoundaryMode) UnmarshalText(text []byte) error {
	parsed, err := ParseBoundaryMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Arena is the interaction region. Walls are tested against agent centers.
type Arena struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewArena builds the arena [pad, pad+width] x [pad, pad+height].
func NewArena(width, height, padding float64) Arena {
	return Arena{
		MinX: padding,
		MaxX: padding + width,
		MinY: padding,
		MaxY: padding + height,
	}
}

// Width returns the horizontal extent of the arena.
func (r Arena) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of the arena.
func (r Arena) Height() float64 { return r.MaxY - r.MinY }

// Contains reports whether p lies within the arena, walls included.
func (r Arena) Contains(p geometry.Vector2D) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// BoundaryPolicy is the wall strategy chosen once per run.
type BoundaryPolicy interface {
	Mode() BoundaryMode
	// Apply fixes the agent's position (and orientation, for reflective walls)
	// after integration.
	Apply(a *Agent)
	// Delta is the displacement from one center to another under the
	// policy's topology.
	Delta(from, to geometry.Vector2D) geometry.Vector2D
}

// NewBoundaryPolicy returns the policy for mode.
func NewBoundaryPolicy(mode BoundaryMode, arena Arena) (BoundaryPolicy, error) {
	switch mode {
	case BounceBack:
		return Reflective{Arena: arena}, nil
	case Infinite:
		return Toroidal{Arena: arena}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBoundaryMode, int(mode))
	}
}

// Reflective keeps agents inside the arena. On each wall crossing the agent
// is put back against the wall and its heading is rotated a quarter turn
// away from the wall, picked by the quadrant it was heading in.
type Reflective struct {
	Arena Arena
}

// Mode implements BoundaryPolicy.
func (Reflective) Mode() BoundaryMode { return BounceBack }

// Delta implements BoundaryPolicy with plain subtraction.
func (Reflective) Delta(from, to geometry.Vector2D) geometry.Vector2D {
	return to.Sub(from)
}

// Apply implements BoundaryPolicy. Walls are checked independently, so a
// corner crossing applies two corrections in the same call. The far walls
// keep an extra unit of inset so the agent does not re-trigger next tick.
func (p Reflective) Apply(a *Agent) {
	const quarter = math.Pi / 2
	r := a.Radius

	if a.Center().X < p.Arena.MinX {
		a.Position.X = p.Arena.MinX - r
		theta := a.Orientation
		switch {
		case theta >= quarter && theta < math.Pi:
			a.Orientation = geometry.NormalizeAngle(theta - quarter)
		case theta >= math.Pi && theta <= 3*quarter:
			a.Orientation = geometry.NormalizeAngle(theta + quarter)
		}
	}

	if a.Center().X > p.Arena.MaxX {
		a.Position.X = p.Arena.MaxX - r - 1
		theta := a.Orientation
		switch {
		case theta >= 3*quarter && theta < geometry.TwoPi:
			a.Orientation = geometry.NormalizeAngle(theta - quarter)
		case theta >= 0 && theta <= quarter:
			a.Orientation = geometry.NormalizeAngle(theta + quarter)
		}
	}

	if a.Center().Y < p.Arena.MinY {
		a.Position.Y = p.Arena.MinY - r
		theta := a.Orientation
		switch {
		case theta >= quarter && theta <= math.Pi:
			a.Orientation = geometry.NormalizeAngle(theta + quarter)
		case theta >= 0 && theta < quarter:
			a.Orientation = geometry.NormalizeAngle(theta - quarter)
		}
	}

	if a.Center().Y > p.Arena.MaxY {
		a.Position.Y = p.Arena.MaxY - r - 1
		theta := a.Orientation
		switch {
		case theta >= 3*quarter && theta <= geometry.TwoPi:
			a.Orientation = geometry.NormalizeAngle(theta + quarter)
		case theta >= math.Pi && theta < 3*quarter:
			a.Orientation = geometry.NormalizeAngle(theta - quarter)
		}
	}
}

// Toroidal wraps agents to the opposite wall and measures distances with
// the minimum-image convention, each axis using its own arena length.
type Toroidal struct {
	Arena Arena
}

// Mode implements BoundaryPolicy.
func (Toroidal) Mode() BoundaryMode { return Infinite }

// Delta implements BoundaryPolicy.
func (p Toroidal) Delta(from, to geometry.Vector2D) geometry.Vector2D {
	return geometry.ToroidalDelta(from, to, p.Arena.Width(), p.Arena.Height())
}

// Apply implements BoundaryPolicy. Orientation is never touched.
func (p Toroidal) Apply(a *Agent) {
	r := a.Radius
	c := a.Center()
	switch {
	case c.X > p.Arena.MaxX:
		a.Position.X = p.Arena.MinX + r
	case c.X < p.Arena.MinX:
		a.Position.X = p.Arena.MaxX - r
	}
	switch {
	case c.Y > p.Arena.MaxY:
		a.Position.Y = p.Arena.MinY + r
	case c.Y < p.Arena.MinY:
		a.Position.Y = p.Arena.MaxY - r
	}
}
