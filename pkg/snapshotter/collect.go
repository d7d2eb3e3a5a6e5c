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
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pop-os/pop-support/pkg/archive"
	"github.com/pop-os/pop-support/pkg/collector"
	"github.com/pop-os/pop-support/pkg/errors"
	"github.com/pop-os/pop-support/pkg/source"
)

const stagingPattern = "pop-support-*"

var _ Snapshotter = (*Collector)(nil)

// Collector stages every source of the manifest concurrently, then archives
// whatever landed in the staging area. Individual source failures are logged
// and never fail the run.
type Collector struct {
	// Factory provides the manifest and host info fetcher. If nil, the default factory is used.
	Factory collector.Factory

	// Acquirer runs each source. If nil, a source.Acquirer with SourceTimeout is used.
	Acquirer Acquirer

	// Archiver packs the staging area. If nil, archive.NewArchiver is used.
	Archiver Archiver

	// SourceTimeout bounds each source when the default Acquirer is used.
	SourceTimeout time.Duration

	// Parallelism limits concurrently running sources. Zero means unbounded.
	Parallelism int

	// TempDir is the parent of the staging directory. Empty means os.TempDir.
	TempDir string
}

// Collect runs a collection and returns the archive path.
func (c *Collector) Collect(ctx context.Context, base string) (string, error) {
	res, err := c.Run(ctx, base)
	if err != nil {
		return "", err
	}
	return res.ArchivePath, nil
}

// Run executes one collection run rooted at base. The staging directory is
// removed on every return path.
func (c *Collector) Run(ctx context.Context, base string) (*Result, error) {
	start := time.Now()
	res := &Result{RunID: uuid.NewString()}
	log := slog.With(slog.String("run_id", res.RunID))

	defer func() {
		res.Duration = time.Since(start)
		collectionDuration.Observe(res.Duration.Seconds())
	}()

	fail := func(err error) (*Result, error) {
		collectionTotal.WithLabelValues(string(errors.CodeOf(err))).Inc()
		log.Error("collection failed", slog.String("error", err.Error()))
		return nil, err
	}

	factory := c.Factory
	if factory == nil {
		factory = collector.NewDefaultFactory()
	}

	sources := make([]source.Descriptor, 0, 32)
	sources = append(sources, hostInfoSource(factory.CreateHostInfoCollector()))
	sources = append(sources, factory.CreateManifest()...)
	if err := source.Validate(sources); err != nil {
		return fail(err)
	}

	staging, err := os.MkdirTemp(c.TempDir, stagingPattern)
	if err != nil {
		return fail(errors.Wrap(errors.ErrCodeStagingIO, "failed to create staging directory", err))
	}
	defer func() {
		if rerr := os.RemoveAll(staging); rerr != nil {
			log.Warn("failed to remove staging directory",
				slog.String("path", staging),
				slog.String("error", rerr.Error()))
		}
	}()

	log.Debug("starting collection",
		slog.String("staging", staging),
		slog.Int("sources", len(sources)))

	res.Outcomes = c.acquireAll(ctx, sources, staging)

	for _, o := range res.Outcomes {
		sourceDuration.WithLabelValues(o.ID).Observe(o.Duration.Seconds())
		sourceTotal.WithLabelValues(o.ID, o.Status()).Inc()
		if o.Success {
			log.Debug("source collected",
				slog.String("source_id", o.ID),
				slog.String("kind", string(o.Kind)),
				slog.Int("files", o.Files),
				slog.Duration("duration", o.Duration))
			continue
		}
		log.Warn("source unavailable",
			slog.String("source_id", o.ID),
			slog.String("kind", string(o.Kind)),
			slog.String("status", o.Status()),
			slog.Duration("duration", o.Duration),
			slog.Any("error", o.Err))
	}

	if err := ctx.Err(); err != nil {
		return fail(errors.Wrap(errors.ErrCodeTimeout, "collection interrupted", err))
	}

	res.Entries, err = stagedEntries(staging)
	if err != nil {
		return fail(err)
	}

	arch := c.Archiver
	if arch == nil {
		arch = archive.NewArchiver()
	}
	res.ArchivePath, err = arch.Archive(ctx, staging, res.Entries, base)
	if err != nil {
		return fail(err)
	}

	collectionTotal.WithLabelValues("success").Inc()
	archiveEntries.Set(float64(len(res.Entries)))

	log.Info("collection complete",
		slog.String("path", res.ArchivePath),
		slog.Int("entries", len(res.Entries)),
		slog.Int("failed", len(res.Failed())),
		slog.Duration("duration", time.Since(start)))

	return res, nil
}

// acquireAll runs every source to a terminal state. One source failing
// never cancels another.
func (c *Collector) acquireAll(ctx context.Context, sources []source.Descriptor, staging string) []source.Outcome {
	acq := c.Acquirer
	if acq == nil {
		acq = &source.Acquirer{Timeout: c.SourceTimeout}
	}

	outcomes := make([]source.Outcome, len(sources))

	var g errgroup.Group
	if c.Parallelism > 0 {
		g.SetLimit(c.Parallelism)
	}
	for i, d := range sources {
		g.Go(func() error {
			outcomes[i] = acq.Acquire(ctx, d, staging)
			return nil
		})
	}
	// acquirers report through outcomes only
	_ = g.Wait()

	return outcomes
}

// stagedEntries lists the top-level names present in staging.
func stagedEntries(staging string) ([]string, error) {
	des, err := os.ReadDir(staging)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStagingIO, "failed to enumerate staging directory", err)
	}
	entries := make([]string, 0, len(des))
	for _, de := range des {
		if strings.HasSuffix(de.Name(), source.PartialSuffix) {
			continue
		}
		entries = append(entries, de.Name())
	}
	return entries, nil
}

// hostInfoSource renders the host identity record into systeminfo.txt.
func hostInfoSource(hi collector.HostInfoCollector) source.Descriptor {
	return source.Descriptor{
		ID:          HostInfoSourceID,
		Kind:        source.KindProbe,
		Destination: source.HostInfoDestination,
		Probe: func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, hi.Fetch(ctx).Text())
			return err
		},
	}
}
