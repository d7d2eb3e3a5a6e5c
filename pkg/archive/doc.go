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

// Package archive packs a staged support bundle into a compressed tarball.
//
// Archives are named pop-support_<unix-seconds>.tar.xz and written to a base
// directory, normally the invoking user's home. Packing delegates to the
// system tar program with xz compression and permission preservation:
//
//	tar -C <staging> -Jpcf <base>/pop-support_<ts>.tar.xz <entries...>
//
// Usage:
//
//	a := archive.NewArchiver()
//	path, err := a.Archive(ctx, staging, []string{"dmesg", "systeminfo.txt"}, home)
package archive
