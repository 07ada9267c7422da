package simulation

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/behavior"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.NoError(t, ValidateStruct(cfg))

	arena := cfg.Arena()
	assert.Equal(t, 30.0, arena.MinX)
	assert.Equal(t, 530.0, arena.MaxX)
	assert.Equal(t, 500.0, arena.Height())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"negative agent count", func(c *Config) { c.AgentCount = -1 }, "agent_count"},
		{"zero radius", func(c *Config) { c.AgentRadius = 0 }, "agent_radius"},
		{"NaN radius", func(c *Config) { c.AgentRadius = math.NaN() }, "agent_radius"},
		{"negative padding", func(c *Config) { c.Padding = -1 }, "padding"},
		{"width eaten by padding", func(c *Config) { c.Width = 60 }, "width"},
		{"infinite height", func(c *Config) { c.Height = math.Inf(1) }, "height"},
		{"zero repulsion range", func(c *Config) { c.Interaction.Repulsion.Range = 0 }, "interaction.repulsion.range"},
		{"NaN alignment strength", func(c *Config) { c.Interaction.Alignment.Strength = math.NaN() }, "interaction.alignment.strength"},
		{"zero dt", func(c *Config) { c.DT = 0 }, "dt"},
		{"negative velocity limit", func(c *Config) { c.VelocityLimit = -1 }, "velocity_limit"},
		{"unknown boundary mode", func(c *Config) { c.BoundaryMode = behavior.BoundaryMode(9) }, "boundary_mode"},
		{"negative boost", func(c *Config) { c.Collision.BoostSpeed = -1 }, "collision.boost_speed"},
		{"unknown update order", func(c *Config) { c.UpdateOrder = "random" }, "update_order"},
		{"negative workers", func(c *Config) { c.Workers = -2 }, "workers"},
		{"negative wander scale", func(c *Config) { c.WanderScale = -0.1 }, "wander_scale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestConfigValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DT = 0
	cfg.Workers = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dt must be > 0")
	assert.Contains(t, err.Error(), "workers must be >= 0")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flocking.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"seed": 7,
		"agent_count": 25,
		"boundary_mode": "infinite",
		"collisions": true,
		"update_order": "in_place",
		"interaction": {
			"repulsion": { "strength": 3, "range": 40, "steepness": -1 }
		}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 25, cfg.AgentCount)
	assert.Equal(t, behavior.Infinite, cfg.BoundaryMode)
	assert.True(t, cfg.Collisions)
	assert.Equal(t, OrderInPlace, cfg.UpdateOrder)
	assert.Equal(t, behavior.Force{Strength: 3, Range: 40, Steepness: -1}, cfg.Interaction.Repulsion)

	def := DefaultConfig()
	assert.Equal(t, def.Interaction.Attraction, cfg.Interaction.Attraction, "missing forces keep their defaults")
	assert.Equal(t, def.Width, cfg.Width)
	assert.Equal(t, def.DT, cfg.DT)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"unknown field", `{"agents": 10}`, true},
		{"bad boundary mode", `{"boundary_mode": "wrap"}`, true},
		{"non positive dt", `{"dt": 0}`, true},
		{"fractional agent count", `{"agent_count": 2.5}`, true},
		{"padding larger than arena", `{"width": 50, "padding": 30}`, true},
		{"malformed json", `{"seed": `, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidConfig), "error: %v", err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidConfig)
	})
}
