// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package archive

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/pop-os/pop-support/pkg/defaults"
	"github.com/pop-os/pop-support/pkg/errors"

	"k8s.io/utils/exec"
)

const (
	// Prefix is the leading component of every archive file name.
	Prefix = "pop-support"

	// Extension is the suffix of every archive file name.
	Extension = ".tar.xz"

	// DefaultCommand is the archiver program resolved from PATH.
	DefaultCommand = "tar"
)

// Name returns the archive path for a run started at now, rooted at base.
// Two runs in the same second produce the same name.
func Name(base string, now time.Time) string {
	name := fmt.Sprintf("%s_%d%s", Prefix, now.Unix(), Extension)
	p := filepath.Join(base, name)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// Archiver packs a staging directory into an xz-compressed tar archive
// using the system tar program.
type Archiver struct {
	// Exec runs the archiver. Defaults to the host executor.
	Exec exec.Interface

	// Command is the archiver program. Defaults to tar.
	Command string

	// Now returns the wall clock used to name the archive.
	Now func() time.Time

	// Timeout bounds the archiver run. Zero uses the package default.
	Timeout time.Duration
}

// NewArchiver returns an Archiver with production dependencies.
func NewArchiver() *Archiver {
	return &Archiver{
		Exec:    exec.New(),
		Command: DefaultCommand,
		Now:     time.Now,
		Timeout: defaults.ArchiveTimeout,
	}
}

// Archive writes the named entries of staging into a new archive under base
// and returns its absolute path. Entries are relative to staging and are
// stored with their permissions preserved.
func (a *Archiver) Archive(ctx context.Context, staging string, entries []string, base string) (string, error) {
	if staging == "" {
		return "", errors.New(errors.ErrCodeInvalidRequest, "staging directory is required")
	}
	if len(entries) == 0 {
		return "", errors.New(errors.ErrCodeArchival, "nothing to archive")
	}

	ex := a.Exec
	if ex == nil {
		ex = exec.New()
	}
	command := a.Command
	if command == "" {
		command = DefaultCommand
	}
	now := a.Now
	if now == nil {
		now = time.Now
	}
	timeout := a.Timeout
	if timeout == 0 {
		timeout = defaults.ArchiveTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	path := Name(base, now())

	args := make([]string, 0, len(entries)+3)
	args = append(args, "-C", staging, "-Jpcf", path)
	args = append(args, entries...)

	slog.Debug("creating archive",
		slog.String("path", path),
		slog.Int("entries", len(entries)))

	var stderr bytes.Buffer
	cmd := ex.CommandContext(ctx, command, args...)
	cmd.SetStderr(&stderr)
	if err := cmd.Run(); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeArchival, "failed to create archive", err,
			map[string]any{
				"path":   path,
				"stderr": strings.TrimSpace(stderr.String()),
			})
	}

	return path, nil
}
