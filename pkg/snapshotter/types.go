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

package snapshotter

import (
	"context"
	"time"

	"github.com/pop-os/pop-support/pkg/source"
)

// HostInfoSourceID identifies the host identity record among run outcomes.
const HostInfoSourceID = "systeminfo"

// Snapshotter runs one collection and packages the result.
type Snapshotter interface {
	Run(ctx context.Context, base string) (*Result, error)
}

// Acquirer runs a single source into the staging root.
type Acquirer interface {
	Acquire(ctx context.Context, d source.Descriptor, stagingRoot string) source.Outcome
}

// Archiver packs the named staging entries into an archive under base.
type Archiver interface {
	Archive(ctx context.Context, staging string, entries []string, base string) (string, error)
}

// Result describes a completed collection run.
type Result struct {
	// RunID correlates the log records of one run.
	RunID string `json:"runId" yaml:"runId"`

	// ArchivePath is the absolute path of the produced archive.
	ArchivePath string `json:"archivePath" yaml:"archivePath"`

	// Entries are the staging entries packed into the archive.
	Entries []string `json:"entries" yaml:"entries"`

	// Outcomes holds one record per source, host info first.
	Outcomes []source.Outcome `json:"outcomes" yaml:"outcomes"`

	// Duration is the wall time of the run.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Failed returns the outcomes of sources that did not succeed.
func (r *Result) Failed() []source.Outcome {
	var failed []source.Outcome
	for _, o := range r.Outcomes {
		if !o.Success {
			failed = append(failed, o)
		}
	}
	return failed
}
