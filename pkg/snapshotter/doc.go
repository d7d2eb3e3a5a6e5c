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

// Package snapshotter runs a complete support-bundle collection.
//
// # Overview
//
// A run creates a private staging directory, acquires the host identity
// record and every manifest source concurrently, enumerates what actually
// landed in staging, and packs those entries into a single archive. The
// staging directory is removed on every return path.
//
//	c := &snapshotter.Collector{
//	    Factory:     collector.NewDefaultFactory(),
//	    Parallelism: 8,
//	}
//
//	res, err := c.Run(ctx, os.Getenv("HOME"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("PATH", res.ArchivePath)
//
// # Failure Model
//
// Sources fail independently. A missing program, absent file, non-zero exit,
// or per-source timeout is recorded on the source outcome and logged at warn
// level; siblings keep running and already-written files stay in place.
//
// Run returns an error only when:
//   - The manifest is invalid (INVALID_REQUEST)
//   - The staging directory cannot be created or listed (STAGING_IO)
//   - The context ends before archival (TIMEOUT)
//   - The archiver fails (ARCHIVAL)
//
// # Metrics
//
// Prometheus collectors registered on the default registry:
//
//	popsupport_collection_duration_seconds
//	popsupport_collection_total{status}
//	popsupport_source_duration_seconds{source}
//	popsupport_source_total{source,status}
//	popsupport_archive_entries
package snapshotter
