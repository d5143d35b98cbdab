package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dusk-indust/mergefile/internal/logging"
	"github.com/dusk-indust/mergefile/internal/mcptools"
)

// runServe exposes the merger as an MCP tool on stdio. Status lines go to
// stderr since stdout carries the protocol.
func runServe(flags cliFlags, stderr io.Writer) error {
	cfg, err := loadConfig(flags.Config)
	if err != nil {
		return err
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := logging.New(stderr, flags.Verbose || cfg.Verbose)
	svc := mcptools.NewMergeService(root, *cfg, logger)
	return mcptools.RunMergeMCPServerStdio(ctx, mcptools.NewMergeMCPServer(svc))
}
