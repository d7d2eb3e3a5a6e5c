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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pop-os/pop-support/pkg/defaults"
	apperrors "github.com/pop-os/pop-support/pkg/errors"
)

// PartialSuffix marks a destination that is still being written.
const PartialSuffix = ".partial"

// copyFile streams a regular file at origin to dest. The destination appears
// only after the copy completes.
func (a *Acquirer) copyFile(ctx context.Context, origin, dest string) error {
	info, err := os.Stat(origin)
	if err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeSourceUnavailable,
			"failed to open source", err, map[string]any{"origin": origin})
	}
	if !info.Mode().IsRegular() {
		return apperrors.NewWithContext(apperrors.ErrCodeSourceUnavailable,
			"source is not a regular file", map[string]any{"origin": origin})
	}

	src, err := os.Open(origin)
	if err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeSourceUnavailable,
			"failed to open source", err, map[string]any{"origin": origin})
	}
	defer src.Close()

	return writeAtomic(dest, func(f *os.File) error {
		if _, err := io.Copy(f, &contextReader{ctx: ctx, r: src}); err != nil {
			return apperrors.WrapWithContext(apperrors.ErrCodeSourceUnavailable,
				"failed to copy", err, map[string]any{"origin": origin})
		}
		return nil
	})
}

// writeAtomic creates dest's parents, lets fill write a sibling temp file, and
// renames it into place. On any failure the temp file is removed and dest is
// left absent.
func writeAtomic(dest string, fill func(f *os.File) error) error {
	// Sibling directory-copy tasks may race to create the same parent.
	if err := os.MkdirAll(filepath.Dir(dest), defaults.StagingDirPerm); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeStagingIO, "failed to create destination directory", err)
	}

	tmp := dest + PartialSuffix
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaults.StagingFilePerm)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeStagingIO, fmt.Sprintf("failed to create %s", dest), err)
	}

	if err := fill(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return apperrors.Wrap(apperrors.ErrCodeStagingIO, fmt.Sprintf("failed to flush %s", dest), err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return apperrors.Wrap(apperrors.ErrCodeStagingIO, fmt.Sprintf("failed to finalize %s", dest), err)
	}
	return nil
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
