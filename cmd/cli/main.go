package main

import (
	"context"
	"os"
	"os/signal"

	"orderimport/cmd"
	"orderimport/internal/adapters/in/cli"
)

var version = "dev"

func main() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	logger := cmd.NewLogger(os.Stderr, level, os.Getenv("LOG_FORMAT"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(cmd.NewCLIDependencies(logger, version))
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
