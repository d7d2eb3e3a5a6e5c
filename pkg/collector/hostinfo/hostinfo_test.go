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

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noHostStat(context.Context) (*host.InfoStat, error) {
	return nil, errors.New("unavailable")
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
}

// fakeUname writes a shell script standing in for uname.
func fakeUname(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	path := filepath.Join(t.TempDir(), "uname")
	script := `#!/bin/sh
case "$1" in
  -r) echo "6.2.6-76060206-generic" ;;
  -v) echo "#202303130630~1689015125~22.04~ab2190e SMP PREEMPT_DYNAMIC Mon J" ;;
esac
`
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestGuessVendor(t *testing.T) {
	tests := []struct {
		in     string
		want   Vendor
		wantOK bool
	}{
		{"System76", VendorSystem76, true},
		{"  System76\n", VendorSystem76, true},
		{"system76", "", false},
		{"LENOVO", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := GuessVendor(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModelAndVersion(t *testing.T) {
	tests := []struct {
		name                  string
		vendor, model, version string
		want                  string
	}{
		{"all parts", "System76", "Oryx Pro", "oryp6", "System76 Oryx Pro (oryp6)"},
		{"no version", "System76", "Oryx Pro", "", "System76 Oryx Pro"},
		{"name equals vendor", "QEMU", "QEMU", "pc-q35", "QEMU (pc-q35)"},
		{"vendor only", "Dell Inc.", "", "", "Dell Inc."},
		{"nothing", "", "", "", ""},
		{"whitespace trimmed", " ASUSTeK ", " PRIME X570-P\n", " Rev X.0x ", "ASUSTeK PRIME X570-P (Rev X.0x)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModelAndVersion(tt.vendor, tt.model, tt.version))
		})
	}
}

func TestFetch_AllSourcesAbsent(t *testing.T) {
	f := &Fetcher{
		DMIRoot:        t.TempDir(),
		OSReleasePaths: []string{filepath.Join(t.TempDir(), "missing")},
		UnameCommand:   "/nonexistent/uname",
		HostStat:       noHostStat,
	}

	info := f.Fetch(context.Background())

	assert.Equal(t, Info{}, info)
}

func TestFetch_KnownVendorUsesProductFiles(t *testing.T) {
	dmi := t.TempDir()
	writeFiles(t, dmi, map[string]string{
		"sys_vendor":      "System76\n",
		"product_name":    "Oryx Pro\n",
		"product_version": "oryp6\n",
		"board_name":      "Oryx Pro Board\n",
		"board_version":   "oryp6-board\n",
	})
	etc := t.TempDir()
	writeFiles(t, etc, map[string]string{
		"os-release": "NAME=\"Pop!_OS\"\nPRETTY_NAME=\"Pop!_OS 22.04 LTS\"\nPRETTY_NAME=\"ignored\"\n",
	})

	f := &Fetcher{
		DMIRoot:        dmi,
		OSReleasePaths: []string{filepath.Join(etc, "os-release")},
		UnameCommand:   fakeUname(t),
		HostStat: func(context.Context) (*host.InfoStat, error) {
			return &host.InfoStat{Hostname: "pop-os", KernelArch: "x86_64"}, nil
		},
	}

	info := f.Fetch(context.Background())

	assert.Equal(t, VendorSystem76, info.Vendor)
	assert.Equal(t, "System76 Oryx Pro (oryp6)", info.ModelAndVersion)
	assert.Equal(t, "Pop!_OS 22.04 LTS", info.OperatingSystem)
	assert.Equal(t, "6.2.6-76060206-generic", info.KernelVersion)
	assert.Equal(t, "#202303130630~1689015125~22.04~ab2190e", info.KernelRevision)
	assert.Equal(t, "pop-os", info.Hostname)
	assert.Equal(t, "x86_64", info.Architecture)
}

func TestFetch_UnknownVendorUsesBoardFiles(t *testing.T) {
	dmi := t.TempDir()
	writeFiles(t, dmi, map[string]string{
		"sys_vendor":      "Micro-Star International Co., Ltd.\n",
		"product_name":    "To be filled by O.E.M.\n",
		"product_version": "1.0\n",
		"board_name":      "MAG B550 TOMAHAWK (MS-7C91)\n",
		"board_version":   "2.0\n",
	})

	f := &Fetcher{
		DMIRoot:        dmi,
		OSReleasePaths: []string{filepath.Join(t.TempDir(), "missing")},
		UnameCommand:   "/nonexistent/uname",
		HostStat:       noHostStat,
	}

	info := f.Fetch(context.Background())

	assert.Empty(t, info.Vendor)
	assert.Equal(t, "Micro-Star International Co., Ltd. MAG B550 TOMAHAWK (MS-7C91) (2.0)", info.ModelAndVersion)
	assert.Empty(t, info.OperatingSystem)
	assert.Empty(t, info.KernelVersion)
}

func TestFetch_OSReleaseFallback(t *testing.T) {
	lib := t.TempDir()
	writeFiles(t, lib, map[string]string{"os-release": "PRETTY_NAME='Fedora Linux 39'\n"})

	f := &Fetcher{
		DMIRoot: t.TempDir(),
		OSReleasePaths: []string{
			filepath.Join(t.TempDir(), "os-release"),
			filepath.Join(lib, "os-release"),
		},
		UnameCommand: "/nonexistent/uname",
		HostStat:     noHostStat,
	}

	assert.Equal(t, "Fedora Linux 39", f.Fetch(context.Background()).OperatingSystem)
}

func TestInfo_Text(t *testing.T) {
	info := Info{
		ModelAndVersion: "System76 Oryx Pro (oryp6)",
		OperatingSystem: "Pop!_OS 22.04 LTS",
		KernelVersion:   "6.2.6-76060206-generic",
		KernelRevision:  "#202303130630",
	}

	want := "Model: System76 Oryx Pro (oryp6)\n" +
		"OS Version: Pop!_OS 22.04 LTS\n" +
		"Kernel Version: 6.2.6-76060206-generic\n" +
		"Kernel Revision: #202303130630\n"
	assert.Equal(t, want, info.Text())

	info.Hostname = "pop-os"
	info.Architecture = "x86_64"
	assert.Equal(t, want+"Hostname: pop-os\nArchitecture: x86_64\n", info.Text())
}
