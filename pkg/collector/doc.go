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

// Package collector assembles the diagnostic inputs of a support bundle.
//
// # Overview
//
// A collection run needs two things: the host identity record written to
// systeminfo.txt, and the manifest of sources (commands, file copies,
// directory copies, and in-process probes) acquired into the staging area.
// The Factory interface abstracts both so the snapshotter can be tested with
// synthetic manifests and a fixed identity.
//
//	type Factory interface {
//	    CreateHostInfoCollector() HostInfoCollector
//	    CreateManifest() []source.Descriptor
//	}
//
// # Subpackages
//
//   - file: bounded readers for DMI attributes and os-release
//   - hostinfo: vendor classification and identity composition
//   - systemd: failed unit listing over D-Bus
//
// # Usage
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithSystemDStates([]string{"failed"}),
//	)
//	manifest := factory.CreateManifest()
//	info := factory.CreateHostInfoCollector().Fetch(ctx)
package collector
