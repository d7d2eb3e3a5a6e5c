/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	apperrors "github.com/pop-os/pop-support/pkg/errors"
	"github.com/pop-os/pop-support/pkg/logging"
	"github.com/pop-os/pop-support/pkg/serializer"
)

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level (debug, info, warn, error)",
		Value:   "info",
		Sources: cli.EnvVars(logging.EnvLogLevel),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}

// resolveBase returns the absolute archive destination directory. An empty
// argument selects the invoking user's home directory.
func resolveBase(arg string) (string, error) {
	base := strings.TrimSpace(arg)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "no base path given and home directory is unknown", err)
		}
		base = home
	}

	abs, err := filepath.Abs(base)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to resolve base path", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "base path is not accessible", err)
	}
	if !info.IsDir() {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, "base path is not a directory",
			map[string]any{"path": abs})
	}
	return abs, nil
}
