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
	"path/filepath"
	"time"

	apperrors "github.com/pop-os/pop-support/pkg/errors"
)

// Kind selects how a source is acquired.
type Kind string

const (
	// KindCommand captures the stdout of an external program.
	KindCommand Kind = "command"
	// KindFile copies a single regular file.
	KindFile Kind = "file"
	// KindDirectory copies the direct-child regular files of a directory.
	KindDirectory Kind = "directory"
	// KindProbe runs an in-process function that writes the artifact.
	KindProbe Kind = "probe"
)

// ProbeFunc writes one artifact to w. It must honor ctx.
type ProbeFunc func(ctx context.Context, w io.Writer) error

// Descriptor declares one diagnostic source. Descriptors are immutable once
// the manifest is built.
type Descriptor struct {
	// ID names the source in logs and metrics.
	ID string `json:"id" yaml:"id"`

	// Kind selects the acquisition strategy.
	Kind Kind `json:"kind" yaml:"kind"`

	// Command is the program to run for KindCommand. Defaults to ID.
	Command string `json:"command,omitempty" yaml:"command,omitempty"`

	// Args are passed to Command unchanged.
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`

	// Origin is the absolute path read by KindFile and KindDirectory.
	Origin string `json:"origin,omitempty" yaml:"origin,omitempty"`

	// Destination is the path relative to the staging root.
	Destination string `json:"destination" yaml:"destination"`

	// Probe produces the artifact for KindProbe.
	Probe ProbeFunc `json:"-" yaml:"-"`
}

// Program returns the executable for a command source.
func (d Descriptor) Program() string {
	if d.Command != "" {
		return d.Command
	}
	return d.ID
}

// Outcome records the result of one acquisition. It is used for logging and
// metrics only; a failed outcome never affects sibling sources.
type Outcome struct {
	ID       string        `json:"id" yaml:"id"`
	Kind     Kind          `json:"kind" yaml:"kind"`
	Success  bool          `json:"success" yaml:"success"`
	Files    int           `json:"files" yaml:"files"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Err      error         `json:"-" yaml:"-"`
}

// Status returns a short label for metrics: success, timeout, or error code.
func (o Outcome) Status() string {
	if o.Success {
		return "success"
	}
	switch apperrors.CodeOf(o.Err) {
	case apperrors.ErrCodeTimeout:
		return "timeout"
	case apperrors.ErrCodeStagingIO:
		return "staging_io"
	default:
		return "unavailable"
	}
}

// SafeJoin joins rel under root, rejecting absolute paths and any path that
// would escape root.
func SafeJoin(root, rel string) (string, error) {
	if rel == "" || !filepath.IsLocal(rel) {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"destination must be a relative path inside the staging root",
			map[string]any{"destination": rel})
	}
	return filepath.Join(root, rel), nil
}

// Validate checks a manifest before any acquisition starts.
func Validate(manifest []Descriptor) error {
	ids := make(map[string]struct{}, len(manifest))
	dests := make(map[string]string, len(manifest))

	for i, d := range manifest {
		if d.ID == "" {
			return apperrors.New(apperrors.ErrCodeInvalidRequest, fmt.Sprintf("source %d has no id", i))
		}
		if _, dup := ids[d.ID]; dup {
			return apperrors.New(apperrors.ErrCodeInvalidRequest, fmt.Sprintf("duplicate source id %q", d.ID))
		}
		ids[d.ID] = struct{}{}

		if _, err := SafeJoin("/", d.Destination); err != nil {
			return fmt.Errorf("source %q: %w", d.ID, err)
		}
		clean := filepath.Clean(d.Destination)
		if other, dup := dests[clean]; dup {
			return apperrors.New(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("sources %q and %q share destination %q", other, d.ID, clean))
		}
		dests[clean] = d.ID

		switch d.Kind {
		case KindCommand:
			if d.Program() == "" {
				return apperrors.New(apperrors.ErrCodeInvalidRequest, fmt.Sprintf("source %q has no command", d.ID))
			}
		case KindFile, KindDirectory:
			if !filepath.IsAbs(d.Origin) {
				return apperrors.New(apperrors.ErrCodeInvalidRequest,
					fmt.Sprintf("source %q origin %q must be absolute", d.ID, d.Origin))
			}
		case KindProbe:
			if d.Probe == nil {
				return apperrors.New(apperrors.ErrCodeInvalidRequest, fmt.Sprintf("source %q has no probe", d.ID))
			}
		default:
			return apperrors.New(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("source %q has unknown kind %q", d.ID, d.Kind))
		}
	}

	return nil
}
