package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/cmd/flocking/cmd"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/internal/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()
	observability.Sync()
	if err != nil {
		os.Exit(1)
	}
}
