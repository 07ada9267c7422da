// Package config loads the application configuration: the simulation
// parameters plus everything around them (logging, viewer, run length).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/simulation"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment override, e.g. FLOCKING_SIMULATION_AGENT_COUNT.
const EnvPrefix = "FLOCKING"

// Config is the root of the application configuration.
type Config struct {
	Simulation simulation.Config `mapstructure:"simulation" yaml:"simulation" json:"simulation"`
	Logger     LoggerConfig      `mapstructure:"logger" yaml:"logger" json:"logger"`
	Viewer     ViewerConfig      `mapstructure:"viewer" yaml:"viewer" json:"viewer"`
	Run        RunConfig         `mapstructure:"run" yaml:"run" json:"run"`
}

// LoggerConfig holds the zap and log rotation settings.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level" json:"level"`
	Format      string `mapstructure:"format" yaml:"format" json:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source" json:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name" json:"service_name"`
	Color       bool   `mapstructure:"color" yaml:"color" json:"color"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file" json:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" json:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" json:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" json:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress" json:"compress"`
}

// ViewerConfig drives the interactive window.
type ViewerConfig struct {
	// Framerate is the number of ticks per second; s/f change it by
	// FramerateStep within [MinFramerate, MaxFramerate], d restores it.
	Framerate          int     `mapstructure:"framerate" yaml:"framerate" json:"framerate"`
	MinFramerate       int     `mapstructure:"min_framerate" yaml:"min_framerate" json:"min_framerate"`
	MaxFramerate       int     `mapstructure:"max_framerate" yaml:"max_framerate" json:"max_framerate"`
	FramerateStep      int     `mapstructure:"framerate_step" yaml:"framerate_step" json:"framerate_step"`
	ShowZones          bool    `mapstructure:"show_zones" yaml:"show_zones" json:"show_zones"`
	ColorByOrientation bool    `mapstructure:"color_by_orientation" yaml:"color_by_orientation" json:"color_by_orientation"`
	ShowPanel          bool    `mapstructure:"show_panel" yaml:"show_panel" json:"show_panel"`
	Scale              float64 `mapstructure:"scale" yaml:"scale" json:"scale"`
}

// RunConfig bounds a run.
type RunConfig struct {
	// Ticks stops the run after that many steps; 0 runs until interrupted.
	Ticks int `mapstructure:"ticks" yaml:"ticks" json:"ticks"`
	// LogEvery emits a tick summary at debug level; 0 disables it.
	LogEvery uint64 `mapstructure:"log_every" yaml:"log_every" json:"log_every"`
	// SnapshotEvery logs a full snapshot in headless mode; 0 disables it.
	SnapshotEvery int `mapstructure:"snapshot_every" yaml:"snapshot_every" json:"snapshot_every"`
}

// SetDefaults registers every key with its default so that environment
// variables are picked up for all of them.
func SetDefaults(v *viper.Viper) {
	sim := simulation.DefaultConfig()

	// -- Simulation --
	v.SetDefault("simulation.seed", sim.Seed)
	v.SetDefault("simulation.agent_count", sim.AgentCount)
	v.SetDefault("simulation.width", sim.Width)
	v.SetDefault("simulation.height", sim.Height)
	v.SetDefault("simulation.padding", sim.Padding)
	v.SetDefault("simulation.agent_radius", sim.AgentRadius)
	setForceDefaults(v, "simulation.interaction.attraction", sim.Interaction.Attraction.Strength, sim.Interaction.Attraction.Range, sim.Interaction.Attraction.Steepness)
	setForceDefaults(v, "simulation.interaction.repulsion", sim.Interaction.Repulsion.Strength, sim.Interaction.Repulsion.Range, sim.Interaction.Repulsion.Steepness)
	setForceDefaults(v, "simulation.interaction.alignment", sim.Interaction.Alignment.Strength, sim.Interaction.Alignment.Range, sim.Interaction.Alignment.Steepness)
	v.SetDefault("simulation.dt", sim.DT)
	v.SetDefault("simulation.velocity_limit", sim.VelocityLimit)
	v.SetDefault("simulation.boundary_mode", sim.BoundaryMode.String())
	v.SetDefault("simulation.collisions", sim.Collisions)
	v.SetDefault("simulation.collision.turn", sim.Collision.Turn)
	v.SetDefault("simulation.collision.base_speed", sim.Collision.BaseSpeed)
	v.SetDefault("simulation.collision.boost_speed", sim.Collision.BoostSpeed)
	v.SetDefault("simulation.override_turn_step", sim.OverrideTurnStep)
	v.SetDefault("simulation.update_order", string(sim.UpdateOrder))
	v.SetDefault("simulation.workers", sim.Workers)
	v.SetDefault("simulation.wander_strength", sim.WanderStrength)
	v.SetDefault("simulation.wander_scale", sim.WanderScale)

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "flocking")
	v.SetDefault("logger.color", true)
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Viewer --
	v.SetDefault("viewer.framerate", 25)
	v.SetDefault("viewer.min_framerate", 1)
	v.SetDefault("viewer.max_framerate", 60)
	v.SetDefault("viewer.framerate_step", 5)
	v.SetDefault("viewer.show_zones", false)
	v.SetDefault("viewer.color_by_orientation", false)
	v.SetDefault("viewer.show_panel", true)
	v.SetDefault("viewer.scale", 1.0)

	// -- Run --
	v.SetDefault("run.ticks", 1000)
	v.SetDefault("run.log_every", 100)
	v.SetDefault("run.snapshot_every", 0)
}

func setForceDefaults(v *viper.Viper, key string, strength, rng, steepness float64) {
	v.SetDefault(key+".strength", strength)
	v.SetDefault(key+".range", rng)
	v.SetDefault(key+".steepness", steepness)
}

// NewDefaultConfig returns the configuration made of defaults only.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		panic(fmt.Sprintf("failed to decode default config: %v", err))
	}
	return cfg
}

// Load reads configFile (any format viper knows) or, when empty, looks for
// flocking.{yaml,json,toml,...} in the working directory. A missing
// default file is not an error. FLOCKING_* environment variables override
// both. The result is checked against the simulation schema and Validate.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("flocking")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := simulation.ValidateStruct(&cfg.Simulation); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.UnmarshalExact(&cfg, hook); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the sections that the simulation schema does not cover,
// then the simulation itself.
func (c *Config) Validate() error {
	var errs []error
	bad := func(field, reason string) {
		errs = append(errs, &simulation.ConfigError{Field: field, Reason: reason})
	}

	if _, err := zapcore.ParseLevel(c.Logger.Level); err != nil {
		bad("logger.level", fmt.Sprintf("unknown level %q", c.Logger.Level))
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		bad("logger.format", fmt.Sprintf("must be console or json, got %q", c.Logger.Format))
	}
	if c.Logger.LogFile != "" && c.Logger.MaxSize <= 0 {
		bad("logger.max_size", "must be > 0 when log_file is set")
	}

	vw := c.Viewer
	if vw.MinFramerate < 1 {
		bad("viewer.min_framerate", "must be >= 1")
	}
	if vw.MaxFramerate < vw.MinFramerate {
		bad("viewer.max_framerate", "must be >= min_framerate")
	}
	if vw.Framerate < vw.MinFramerate || vw.Framerate > vw.MaxFramerate {
		bad("viewer.framerate", fmt.Sprintf("must be within [%d, %d]", vw.MinFramerate, vw.MaxFramerate))
	}
	if vw.FramerateStep < 1 {
		bad("viewer.framerate_step", "must be >= 1")
	}
	if !(vw.Scale > 0) {
		bad("viewer.scale", "must be > 0")
	}

	if c.Run.Ticks < 0 {
		bad("run.ticks", "must be >= 0")
	}
	if c.Run.SnapshotEvery < 0 {
		bad("run.snapshot_every", "must be >= 0")
	}

	if err := c.Simulation.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
