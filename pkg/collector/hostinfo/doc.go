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

// Package hostinfo reads the hardware, OS, and kernel identity of the host.
//
// Identity comes from DMI attributes (sys_vendor, product_*/board_*), the
// PRETTY_NAME key of os-release, and uname -r / -v. All reads run concurrently
// and each is best-effort: Fetch never returns an error, and a field whose
// source is missing is left empty.
//
// Vendors listed in the vendor table report their product_* attributes; any
// other vendor falls back to board_* attributes, which are usually more
// meaningful on custom-built machines.
package hostinfo
