/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/pop-os/pop-support/pkg/collector"
	"github.com/pop-os/pop-support/pkg/serializer"
)

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Show host identity",
		Description: `Show the hardware model, OS release, and kernel identity of this machine.
With --text the output matches the systeminfo.txt file inside a support archive.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "text",
				Usage: "Print the systeminfo.txt rendering instead of structured output",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			info := collector.NewDefaultFactory().CreateHostInfoCollector().Fetch(ctx)

			if cmd.Bool("text") {
				_, err := fmt.Fprint(stdout(cmd), info.Text())
				return err
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, info)
		},
	}
}
