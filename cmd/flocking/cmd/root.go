// Package cmd holds the flocking command line: the interactive viewer, a
// headless runner and config tooling.
package cmd

import (
	"context"
	"fmt"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/internal/config"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/internal/observability"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/simulation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRootCommand builds a fresh command tree, so tests never share flag or
// viper state.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:          "flocking",
		Short:        "Flocking runs a Vicsek-style collective motion simulation.",
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./flocking.yaml)")
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	run := newRunCmd(a)
	root.RunE = run.RunE
	root.AddCommand(run, newHeadlessCmd(a), newValidateCmd(a), newVersionCmd())
	return root
}

// Execute runs the command line with ctx; cancelling ctx stops a run.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// initialize loads the configuration and sets up logging. Logs go to the
// command's error stream.
func (a *app) initialize(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	observability.Initialize(cfg.Logger, zapcore.AddSync(cmd.ErrOrStderr()))
	a.logger = observability.GetLogger()
	a.logger.Debug("Configuration loaded",
		zap.String("version", Version),
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.String("command", cmd.Name()),
	)
	return nil
}

// newWorld builds the world described by the loaded configuration.
func (a *app) newWorld() (*simulation.World, error) {
	return simulation.NewWorld(&a.cfg.Simulation,
		simulation.WithLogger(a.logger.Named("world")),
		simulation.WithLogEvery(a.cfg.Run.LogEvery),
	)
}
