package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/simulation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
)

func newHeadlessCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the simulation without a window and log a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runHeadless(cmd.Context())
		},
	}
	flags := cmd.Flags()
	flags.Int("ticks", 1000, "number of ticks to run, 0 runs until interrupted")
	flags.Int("snapshot-every", 0, "log a full snapshot every N ticks, 0 disables it")
	_ = a.v.BindPFlag("run.ticks", flags.Lookup("ticks"))
	_ = a.v.BindPFlag("run.snapshot_every", flags.Lookup("snapshot-every"))
	return cmd
}

func (a *app) runHeadless(ctx context.Context) error {
	world, err := a.newWorld()
	if err != nil {
		return err
	}
	logger := a.logger.With(zap.String("run_id", world.RunID()))
	ticks, every := a.cfg.Run.Ticks, a.cfg.Run.SnapshotEvery
	logger.Info("Starting headless run", zap.Int("agents", world.Len()), zap.Int("ticks", ticks))

	start := time.Now()
	err = world.Run(ctx, ticks, func(s simulation.Snapshot) {
		if every <= 0 || s.Tick%uint64(every) != 0 {
			return
		}
		raw, err := protojson.Marshal(s.ToProto())
		if err != nil {
			logger.Warn("Snapshot encoding failed", zap.Uint64("tick", s.Tick), zap.Error(err))
			return
		}
		logger.Info("Snapshot", zap.Uint64("tick", s.Tick), zap.ByteString("state", raw))
	})
	elapsed := time.Since(start)

	interrupted := errors.Is(err, context.Canceled)
	if err != nil && !interrupted {
		return fmt.Errorf("headless run failed: %w", err)
	}

	final := world.Snapshot()
	speed, overridden := summarize(final)
	tps := 0.0
	if elapsed > 0 {
		tps = float64(final.Tick) / elapsed.Seconds()
	}
	logger.Info("Run complete",
		zap.Uint64("tick", final.Tick),
		zap.Bool("interrupted", interrupted),
		zap.Duration("elapsed", elapsed),
		zap.Float64("ticks_per_second", tps),
		zap.Float64("mean_speed", speed),
		zap.Int("overridden", overridden),
	)
	return nil
}

// summarize returns the mean speed and the number of agents under manual control.
func summarize(s simulation.Snapshot) (float64, int) {
	if len(s.Agents) == 0 {
		return 0, 0
	}
	sum, overridden := 0.0, 0
	for _, a := range s.Agents {
		sum += a.Velocity
		if a.ManualControl {
			overridden++
		}
	}
	return sum / float64(len(s.Agents)), overridden
}
