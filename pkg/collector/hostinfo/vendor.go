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

package hostinfo

import "strings"

// Vendor identifies a hardware vendor with first-party support tooling.
type Vendor string

const (
	// VendorSystem76 is reported for machines whose sys_vendor is "System76".
	VendorSystem76 Vendor = "system76"
)

// knownVendors maps the exact DMI sys_vendor string to its tag.
var knownVendors = map[string]Vendor{
	"System76": VendorSystem76,
}

// GuessVendor classifies a DMI sys_vendor value. The comparison is
// case-sensitive after trimming surrounding whitespace.
func GuessVendor(sysVendor string) (Vendor, bool) {
	v, ok := knownVendors[strings.TrimSpace(sysVendor)]
	return v, ok
}

// String implements fmt.Stringer.
func (v Vendor) String() string {
	return string(v)
}
