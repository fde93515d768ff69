package commands

import (
	"log/slog"
	"os"
)

// Global carries shared state into subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command definition.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Apply ApplyCmd `cmd:"" default:"withargs" help:"Apply site-config.yaml to the project files"`
	Init  InitCmd  `cmd:"" help:"Write a starter site-config.yaml with schema defaults"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
