/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/pop-os/pop-support/pkg/collector"
	"github.com/pop-os/pop-support/pkg/defaults"
	"github.com/pop-os/pop-support/pkg/oci"
	"github.com/pop-os/pop-support/pkg/snapshotter"
)

func generateLogsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate-logs",
		EnableShellCompletion: true,
		Usage:                 "Collect diagnostics into a support archive",
		ArgsUsage:             "[BASE]",
		Description: `Collect diagnostics from this machine and pack them into
BASE/pop-support_<unix-time>.tar.xz. BASE defaults to the home directory.

Collected sources include:
  - Disk usage, block devices, and fstab
  - Kernel ring buffer and the system journal since yesterday
  - DMI decode table, PCI and USB device listings
  - Sensor readings, power state, and uptime
  - APT sources and history logs, syslog, and the X server log
  - Failed systemd units
  - Host identity (systeminfo.txt)

Sources that are missing on this machine are skipped. On success a single
line "PATH <archive>" is printed to stdout.

# Examples

Write the archive to the home directory:
  pop-support generate-logs

Write to /tmp and push to a registry:
  pop-support generate-logs /tmp --push oci://ghcr.io/example/support-logs`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "Upper bound for the whole collection",
				Value:   defaults.CollectTimeout,
				Sources: cli.EnvVars("POP_SUPPORT_TIMEOUT"),
			},
			&cli.DurationFlag{
				Name:    "source-timeout",
				Usage:   "Upper bound for each individual source",
				Value:   defaults.SourceTimeout,
				Sources: cli.EnvVars("POP_SUPPORT_SOURCE_TIMEOUT"),
			},
			&cli.IntFlag{
				Name:    "parallelism",
				Usage:   "Maximum number of sources acquired at once (0 = unbounded)",
				Sources: cli.EnvVars("POP_SUPPORT_PARALLELISM"),
			},
			&cli.StringSliceFlag{
				Name:  "systemd-state",
				Usage: "Unit states listed in the systemd report (can be repeated)",
				Value: []string{"failed"},
			},
			&cli.StringFlag{
				Name:    "push",
				Usage:   "Also push the archive to an OCI registry (oci://registry/repository[:tag])",
				Sources: cli.EnvVars("POP_SUPPORT_PUSH"),
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use HTTP instead of HTTPS for the registry connection",
			},
			&cli.BoolFlag{
				Name:  "insecure-tls",
				Usage: "Skip TLS certificate verification for the registry connection",
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "Write Prometheus metrics for the run to this file",
				Sources: cli.EnvVars("POP_SUPPORT_METRICS_FILE"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			base, err := resolveBase(cmd.Args().First())
			if err != nil {
				return err
			}

			// Fail fast on a bad push target before spending minutes collecting
			var target *oci.Reference
			if raw := cmd.String("push"); raw != "" {
				if target, err = oci.ParseTarget(raw); err != nil {
					return err
				}
			}

			if path := cmd.String("metrics-file"); path != "" {
				defer writeMetrics(path)
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			c := &snapshotter.Collector{
				Factory: collector.NewDefaultFactory(
					collector.WithSystemDStates(cmd.StringSlice("systemd-state")),
				),
				SourceTimeout: cmd.Duration("source-timeout"),
				Parallelism:   int(cmd.Int("parallelism")),
			}

			res, err := c.Run(ctx, base)
			if err != nil {
				return fmt.Errorf("failed to generate logs: %w", err)
			}

			printPath(stdout(cmd), res.ArchivePath)

			if target == nil {
				return nil
			}

			pushed, err := oci.PushArchive(ctx, oci.PushOptions{
				ArchivePath: res.ArchivePath,
				Reference:   target,
				PlainHTTP:   cmd.Bool("plain-http"),
				InsecureTLS: cmd.Bool("insecure-tls"),
				Annotations: map[string]string{
					"org.opencontainers.image.version": version,
					"com.system76.pop-support.run-id":  res.RunID,
				},
			})
			if err != nil {
				return fmt.Errorf("archive written to %s but push failed: %w", res.ArchivePath, err)
			}
			slog.Info("archive pushed",
				"reference", pushed.Reference,
				"digest", pushed.Digest)
			return nil
		},
	}
}

// printPath emits the machine-readable result line.
func printPath(w io.Writer, path string) {
	fmt.Fprintf(w, "PATH %s\n", path)
}

func stdout(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

func writeMetrics(path string) {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		slog.Warn("failed to write metrics file", "path", path, "error", err)
	}
}
