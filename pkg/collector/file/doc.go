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

// Package file provides small-file readers for host identity data.
//
// The parser reads files that the kernel and the distribution expose as plain
// text: single-value DMI attributes and KEY=VALUE files such as /etc/os-release.
// Every read is bounded by a maximum size and validated as UTF-8.
//
// # Usage
//
// Read a single DMI attribute:
//
//	p := file.NewParser()
//	vendor, err := p.ReadValue("/sys/devices/virtual/dmi/id/sys_vendor")
//
// Look up the first PRETTY_NAME in os-release:
//
//	name, ok, err := p.Lookup("/etc/os-release", "PRETTY_NAME")
//
// Lookup returns the first match only and strips one layer of quotes.
//
// # Error Handling
//
// Errors are wrapped with the path:
//
//	_, err := p.ReadValue("/nonexistent")
//	// Error: failed to read file "/nonexistent": no such file or directory
//
// Callers in this module treat every error as an empty value.
package file
