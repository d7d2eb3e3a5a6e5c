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

package source

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/utils/exec"

	"github.com/pop-os/pop-support/pkg/defaults"
	apperrors "github.com/pop-os/pop-support/pkg/errors"
)

// Acquirer runs individual sources into a staging root. It is safe for
// concurrent use; every call writes only beneath its destination.
type Acquirer struct {
	// Exec runs command sources. Defaults to the host executor.
	Exec exec.Interface

	// Timeout bounds each source. Zero means defaults.SourceTimeout;
	// a negative value disables the bound.
	Timeout time.Duration

	// CopyParallelism limits concurrent child copies inside one directory
	// source. Zero means unbounded.
	CopyParallelism int
}

// NewAcquirer returns an Acquirer using the host executor.
func NewAcquirer() *Acquirer {
	return &Acquirer{Exec: exec.New()}
}

// Acquire runs d to completion and reports its outcome. It never returns an
// error directly: every failure is recorded on the Outcome.
func (a *Acquirer) Acquire(ctx context.Context, d Descriptor, stagingRoot string) Outcome {
	start := time.Now()
	out := Outcome{ID: d.ID, Kind: d.Kind}

	timeout := a.Timeout
	if timeout == 0 {
		timeout = defaults.SourceTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	slog.Debug("acquiring source", "source_id", d.ID, "kind", d.Kind)

	dest, err := SafeJoin(stagingRoot, d.Destination)
	if err == nil {
		switch d.Kind {
		case KindCommand:
			err = a.runCommand(ctx, d, dest)
			if err == nil {
				out.Files = 1
			}
		case KindFile:
			err = a.copyFile(ctx, d.Origin, dest)
			if err == nil {
				out.Files = 1
			}
		case KindDirectory:
			out.Files, err = a.copyDirectory(ctx, d.Origin, dest)
		case KindProbe:
			err = a.runProbe(ctx, d, dest)
			if err == nil {
				out.Files = 1
			}
		default:
			err = apperrors.New(apperrors.ErrCodeInvalidRequest, fmt.Sprintf("unknown source kind %q", d.Kind))
		}
	}

	if err != nil && ctx.Err() != nil && stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = apperrors.WrapWithContext(apperrors.ErrCodeTimeout, "source timed out", err,
			map[string]any{"source": d.ID, "timeout": timeout.String()})
	}

	out.Err = err
	out.Success = err == nil
	out.Duration = time.Since(start)
	return out
}

func (a *Acquirer) executor() exec.Interface {
	if a.Exec == nil {
		return exec.New()
	}
	return a.Exec
}

// runCommand streams the program's stdout into dest. Stdin is empty and
// stderr is discarded. Output captured before a non-zero exit is kept; if the
// program cannot be started at all, dest is removed.
func (a *Acquirer) runCommand(ctx context.Context, d Descriptor, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), defaults.StagingDirPerm); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeStagingIO, "failed to create destination directory", err)
	}

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaults.StagingFilePerm)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeStagingIO,
			fmt.Sprintf("failed to create output file for %s", d.ID), err)
	}
	defer f.Close()

	slog.Debug("fetching command output", "source_id", d.ID, "command", d.Program(), "args", d.Args)

	cmd := a.executor().CommandContext(ctx, d.Program(), d.Args...)
	cmd.SetStdin(nil)
	cmd.SetStdout(f)
	cmd.SetStderr(nil)

	if err := cmd.Start(); err != nil {
		_ = f.Close()
		_ = os.Remove(dest)
		return apperrors.WrapWithContext(apperrors.ErrCodeSourceUnavailable,
			fmt.Sprintf("failed to start %s", d.Program()), err,
			map[string]any{"source": d.ID})
	}

	if err := cmd.Wait(); err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeSourceUnavailable,
			fmt.Sprintf("%s exited in failure", d.Program()), err,
			map[string]any{"source": d.ID, "args": d.Args})
	}

	return nil
}

// copyDirectory copies each direct-child regular file of origin into dest
// concurrently. A missing or unreadable origin yields zero files and no error.
// A failing child does not stop its siblings; child errors are joined.
func (a *Acquirer) copyDirectory(ctx context.Context, origin, dest string) (int, error) {
	entries, err := os.ReadDir(origin)
	if err != nil {
		slog.Debug("directory source unavailable, nothing to copy", "origin", origin, "error", err)
		return 0, nil
	}

	var (
		copied atomic.Int64
		errs   = make([]error, len(entries))
		g      errgroup.Group
	)
	if a.CopyParallelism > 0 {
		g.SetLimit(a.CopyParallelism)
	}

	for i, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		src := filepath.Join(origin, entry.Name())
		dst := filepath.Join(dest, entry.Name())
		g.Go(func() error {
			if err := a.copyFile(ctx, src, dst); err != nil {
				errs[i] = err
				return nil
			}
			copied.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return int(copied.Load()), stderrors.Join(errs...)
}

// runProbe writes the probe's output to dest atomically.
func (a *Acquirer) runProbe(ctx context.Context, d Descriptor, dest string) error {
	return writeAtomic(dest, func(f *os.File) error {
		if err := d.Probe(ctx, f); err != nil {
			return apperrors.WrapWithContext(apperrors.ErrCodeSourceUnavailable,
				"probe failed", err, map[string]any{"source": d.ID})
		}
		return nil
	})
}
