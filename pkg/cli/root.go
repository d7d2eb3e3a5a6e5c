/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/pop-os/pop-support/pkg/logging"
)

const (
	name           = "pop-support"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the root command against os.Args and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Pop!_OS support log collector",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `Collects hardware, kernel, package, and log diagnostics from this machine
into a single compressed archive that can be attached to a support request.

generate-logs - collect diagnostics and print the archive path
info          - show the host identity recorded in systeminfo.txt
manifest      - list every source that generate-logs acquires`,
		Flags: []cli.Flag{
			logLevelFlag(),
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateLogsCmd(),
			infoCmd(),
			manifestCmd(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			commandLister(ctx, cmd)
			return nil
		},
	}
}

// commandLister prints the visible subcommands of cmd.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	w := cmd.Writer
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "Usage: %s <command> [options]\n\nCommands:\n", cmd.Name)
	for _, sub := range cmd.Commands {
		if sub.Hidden {
			continue
		}
		fmt.Fprintf(w, "  %-15s %s\n", sub.Name, sub.Usage)
	}
}
