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

package source

// HostInfoDestination is the staging name of the host identity text file.
const HostInfoDestination = "systeminfo.txt"

// DefaultManifest returns the fixed set of diagnostic sources collected on
// every run. A fresh slice is returned so callers may append to it.
func DefaultManifest() []Descriptor {
	return []Descriptor{
		// Commands
		{ID: "df", Kind: KindCommand, Args: []string{"-h"}, Destination: "df"},
		{ID: "dmesg", Kind: KindCommand, Destination: "dmesg"},
		{ID: "dmidecode", Kind: KindCommand, Destination: "dmidecode"},
		{ID: "journalctl", Kind: KindCommand, Args: []string{"--since", "yesterday"}, Destination: "journalctl"},
		{ID: "lsblk", Kind: KindCommand, Args: []string{"-f"}, Destination: "lsblk"},
		{ID: "lspci", Kind: KindCommand, Args: []string{"-vv"}, Destination: "lspci"},
		{ID: "lsusb", Kind: KindCommand, Args: []string{"-vv"}, Destination: "lsusb"},
		{ID: "sensors", Kind: KindCommand, Destination: "sensors"},
		{ID: "upower", Kind: KindCommand, Args: []string{"-d"}, Destination: "upower"},
		{ID: "uptime", Kind: KindCommand, Destination: "uptime"},

		// Package repository configuration
		{ID: "apt-sources-list-d", Kind: KindDirectory, Origin: "/etc/apt/sources.list.d", Destination: "apt/sources.list.d"},
		{ID: "apt-sources-list", Kind: KindFile, Origin: "/etc/apt/sources.list", Destination: "apt/sources.list"},

		// Filesystem table
		{ID: "fstab", Kind: KindFile, Origin: "/etc/fstab", Destination: "fstab"},

		// Package manager history, current and first rotation
		{ID: "apt-history", Kind: KindFile, Origin: "/var/log/apt/history.log", Destination: "apt/history.log"},
		{ID: "apt-history-rotated", Kind: KindFile, Origin: "/var/log/apt/history.log.1.gz", Destination: "apt/history-rotated.log"},
		{ID: "apt-term", Kind: KindFile, Origin: "/var/log/apt/term.log", Destination: "apt/term.log"},
		{ID: "apt-term-rotated", Kind: KindFile, Origin: "/var/log/apt/term.log.1.gz", Destination: "apt/term-rotated.log"},

		// System and X server logs
		{ID: "syslog", Kind: KindFile, Origin: "/var/log/syslog", Destination: "syslog.log"},
		{ID: "xorg", Kind: KindFile, Origin: "/var/log/Xorg.0.log", Destination: "Xorg.0.log"},
	}
}
