package cmd

import (
	"github.com/lao-tseu-is-alive/go-flocking-simulation/internal/viewer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the simulation window (default)",
		Long: `Open the simulation window.

Keys: space pause, n single step while paused, s/f slower/faster, d default
framerate, z interaction zones, c color by orientation. Drag agents with the
left button and rotate them with the wheel or the arrow keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			world, err := a.newWorld()
			if err != nil {
				return err
			}
			a.logger.Info("Starting viewer",
				zap.String("run_id", world.RunID()),
				zap.Int("agents", world.Len()),
				zap.Int("ticks", a.cfg.Run.Ticks),
			)
			return viewer.Run(cmd.Context(), a.cfg, world, a.logger)
		},
	}
}
