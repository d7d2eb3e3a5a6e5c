/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pop-os/pop-support/pkg/collector"
	"github.com/pop-os/pop-support/pkg/serializer"
	"github.com/pop-os/pop-support/pkg/source"
)

func manifestCmd() *cli.Command {
	return &cli.Command{
		Name:  "manifest",
		Usage: "List the sources collected by generate-logs",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			manifest := manifestTable(collector.NewDefaultFactory().CreateManifest())

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, manifest)
		},
	}
}

// manifestTable renders descriptors one per row in table format.
type manifestTable []source.Descriptor

func (m manifestTable) TableHeader() []string {
	return []string{"ID", "KIND", "ORIGIN", "DESTINATION"}
}

func (m manifestTable) TableRows() [][]string {
	rows := make([][]string, 0, len(m))
	for _, d := range m {
		rows = append(rows, []string{d.ID, string(d.Kind), origin(d), d.Destination})
	}
	return rows
}

// origin describes where a source reads from.
func origin(d source.Descriptor) string {
	switch d.Kind {
	case source.KindCommand:
		return strings.Join(append([]string{d.Program()}, d.Args...), " ")
	case source.KindProbe:
		return "(in-process)"
	default:
		return d.Origin
	}
}
