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

package defaults

import "time"

// Source timeouts for individual diagnostic acquisitions.
const (
	// SourceTimeout bounds a single command or copy source. A source that
	// exceeds it is recorded as a timeout outcome and its siblings continue.
	SourceTimeout = 2 * time.Minute

	// HostInfoTimeout bounds the identity reads and uname calls.
	HostInfoTimeout = 10 * time.Second

	// ProbeTimeout bounds in-process probes such as the D-Bus unit listing.
	ProbeTimeout = 15 * time.Second
)

// Run timeouts for the whole collection.
const (
	// CollectTimeout is the default upper bound for one generate-logs run,
	// including archival.
	CollectTimeout = 10 * time.Minute

	// ArchiveTimeout bounds the tar/xz packaging step.
	ArchiveTimeout = 5 * time.Minute
)

// Registry timeouts for the optional archive upload.
const (
	// PushTimeout is the default total timeout for an OCI push.
	PushTimeout = 5 * time.Minute

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake with a registry.
	HTTPTLSHandshakeTimeout = 10 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading registry response headers.
	HTTPResponseHeaderTimeout = 30 * time.Second
)

// File permissions for collection outputs.
const (
	// StagingDirPerm is used for subdirectories created under the staging root.
	StagingDirPerm = 0o755

	// StagingFilePerm is used for files written into the staging root.
	StagingFilePerm = 0o644
)
