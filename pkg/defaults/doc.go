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

// Package defaults provides centralized configuration constants for pop-support.
//
// This package defines timeout values and file permissions used across the
// codebase. Centralizing these values ensures consistency and makes tuning easier.
//
// # Timeout Categories
//
//   - Source timeouts: For individual command, copy, and probe acquisitions
//   - Run timeouts: For a complete generate-logs run and its archival step
//   - Registry timeouts: For the optional OCI upload of the archive
//
// # Usage
//
//	import "github.com/pop-os/pop-support/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.SourceTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - Sources: 2m default; a slow journal query must not stall the whole run
//   - Runs: 10m, which leaves room for the slowest source plus archival
package defaults
