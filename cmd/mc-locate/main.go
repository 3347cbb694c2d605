package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/steviee/mc-locate/internal/cli"
)

// Version information (set by ldflags during build)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	BuiltBy   = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(Version, Commit, BuildTime, BuiltBy)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if logger := cli.GetLogger(); logger != nil {
			logger.Error("command failed", "error", err)
		}
		os.Exit(1)
	}
}
