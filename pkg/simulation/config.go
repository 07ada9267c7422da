package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/behavior"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError reports one invalid field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidConfig) match.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// UpdateOrder selects how a tick applies the agents' deltas.
type UpdateOrder string

const (
	// OrderSnapshot computes every delta against the pre-tick state, then applies them all.
	OrderSnapshot UpdateOrder = "snapshot"
	// OrderInPlace computes and applies agent by agent, so later agents see
	// already-moved neighbours. Kept for comparison with legacy runs.
	OrderInPlace UpdateOrder = "in_place"
)

// Config is the immutable description of one run.
type Config struct {
	Seed int64 `json:"seed" yaml:"seed" mapstructure:"seed"`

	// Population and arena
	AgentCount  int     `json:"agent_count" yaml:"agent_count" mapstructure:"agent_count"`
	Width       float64 `json:"width" yaml:"width" mapstructure:"width"`
	Height      float64 `json:"height" yaml:"height" mapstructure:"height"`
	Padding     float64 `json:"padding" yaml:"padding" mapstructure:"padding"`
	AgentRadius float64 `json:"agent_radius" yaml:"agent_radius" mapstructure:"agent_radius"`

	// Forces, shared by every agent
	Interaction behavior.Interaction `json:"interaction" yaml:"interaction" mapstructure:"interaction"`

	// Integration
	DT            float64 `json:"dt" yaml:"dt" mapstructure:"dt"`
	VelocityLimit float64 `json:"velocity_limit" yaml:"velocity_limit" mapstructure:"velocity_limit"`

	BoundaryMode behavior.BoundaryMode      `json:"boundary_mode" yaml:"boundary_mode" mapstructure:"boundary_mode"`
	Collisions   bool                       `json:"collisions" yaml:"collisions" mapstructure:"collisions"`
	Collision    behavior.CollisionResponse `json:"collision" yaml:"collision" mapstructure:"collision"`

	// OverrideTurnStep is the rotation applied per wheel notch or key press
	// to a grabbed agent.
	OverrideTurnStep float64 `json:"override_turn_step" yaml:"override_turn_step" mapstructure:"override_turn_step"`

	UpdateOrder UpdateOrder `json:"update_order" yaml:"update_order" mapstructure:"update_order"`
	// Workers bounds the force goroutines; 0 means GOMAXPROCS.
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`

	WanderStrength float64 `json:"wander_strength" yaml:"wander_strength" mapstructure:"wander_strength"`
	WanderScale    float64 `json:"wander_scale" yaml:"wander_scale" mapstructure:"wander_scale"`
}

// DefaultConfig returns the reference parameter set: ten agents in a
// 500x500 arena, long-range weak attraction, short-range strong repulsion,
// mid-range alignment.
func DefaultConfig() *Config {
	return &Config{
		Seed:        42,
		AgentCount:  10,
		Width:       500,
		Height:      500,
		Padding:     30,
		AgentRadius: 10,
		Interaction: behavior.Interaction{
			Attraction: behavior.Force{Strength: 0.02, Range: 200, Steepness: -0.5},
			Repulsion:  behavior.Force{Strength: 5, Range: 50, Steepness: -0.5},
			Alignment:  behavior.Force{Strength: 8, Range: 150, Steepness: -0.5},
		},
		DT:               0.01,
		VelocityLimit:    1,
		BoundaryMode:     behavior.BounceBack,
		Collisions:       false,
		Collision:        behavior.DefaultCollisionResponse(),
		OverrideTurnStep: 0.1,
		UpdateOrder:      OrderSnapshot,
		Workers:          0,
		WanderStrength:   0,
		WanderScale:      0.05,
	}
}

// Arena returns the interaction region described by the config.
func (c *Config) Arena() behavior.Arena {
	return behavior.NewArena(c.Width, c.Height, c.Padding)
}

// Validate checks every field and returns all problems joined together.
// Each problem is a *ConfigError, so errors.Is(err, ErrInvalidConfig) holds.
func (c *Config) Validate() error {
	var errs []error
	bad := func(field, reason string) {
		errs = append(errs, &ConfigError{Field: field, Reason: reason})
	}
	finite := func(field string, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad(field, "must be a finite number")
			return false
		}
		return true
	}

	if c.AgentCount < 0 {
		bad("agent_count", "must be >= 0")
	}
	if finite("agent_radius", c.AgentRadius) && c.AgentRadius <= 0 {
		bad("agent_radius", "must be > 0")
	}
	if finite("padding", c.Padding) && c.Padding < 0 {
		bad("padding", "must be >= 0")
	}
	if finite("width", c.Width) && c.Width <= 2*c.Padding {
		bad("width", fmt.Sprintf("must be > 2*padding (%g)", 2*c.Padding))
	}
	if finite("height", c.Height) && c.Height <= 2*c.Padding {
		bad("height", fmt.Sprintf("must be > 2*padding (%g)", 2*c.Padding))
	}

	forces := []struct {
		name string
		f    behavior.Force
	}{
		{"interaction.attraction", c.Interaction.Attraction},
		{"interaction.repulsion", c.Interaction.Repulsion},
		{"interaction.alignment", c.Interaction.Alignment},
	}
	for _, f := range forces {
		finite(f.name+".strength", f.f.Strength)
		finite(f.name+".steepness", f.f.Steepness)
		if finite(f.name+".range", f.f.Range) && f.f.Range <= 0 {
			bad(f.name+".range", "must be > 0")
		}
	}

	if finite("dt", c.DT) && c.DT <= 0 {
		bad("dt", "must be > 0")
	}
	if finite("velocity_limit", c.VelocityLimit) && c.VelocityLimit <= 0 {
		bad("velocity_limit", "must be > 0")
	}
	if _, err := behavior.NewBoundaryPolicy(c.BoundaryMode, c.Arena()); err != nil {
		bad("boundary_mode", err.Error())
	}
	finite("collision.turn", c.Collision.Turn)
	if finite("collision.base_speed", c.Collision.BaseSpeed) && c.Collision.BaseSpeed < 0 {
		bad("collision.base_speed", "must be >= 0")
	}
	if finite("collision.boost_speed", c.Collision.BoostSpeed) && c.Collision.BoostSpeed < 0 {
		bad("collision.boost_speed", "must be >= 0")
	}
	finite("override_turn_step", c.OverrideTurnStep)
	switch c.UpdateOrder {
	case OrderSnapshot, OrderInPlace:
	default:
		bad("update_order", fmt.Sprintf("must be %q or %q, got %q", OrderSnapshot, OrderInPlace, c.UpdateOrder))
	}
	if c.Workers < 0 {
		bad("workers", "must be >= 0")
	}
	finite("wander_strength", c.WanderStrength)
	if finite("wander_scale", c.WanderScale) && c.WanderScale < 0 {
		bad("wander_scale", "must be >= 0")
	}

	return errors.Join(errs...)
}

// LoadConfig reads a JSON config file, validates it against the embedded
// schema and then against Validate. Fields missing from the file keep their
// DefaultConfig value.
func LoadConfig(configFile string) (*Config, error) {
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	if err := ValidateJSON(b); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
