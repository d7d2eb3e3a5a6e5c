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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/sync/errgroup"
	"k8s.io/utils/exec"

	"github.com/pop-os/pop-support/pkg/collector/file"
	"github.com/pop-os/pop-support/pkg/defaults"
)

var (
	dmiRootDefault          = "/sys/devices/virtual/dmi/id"
	filePathReleasePrimary  = "/etc/os-release"
	filePathReleaseFallback = "/usr/lib/os-release"
	keyPrettyName           = "PRETTY_NAME"
)

// Info summarizes hardware, OS, and kernel identity for a support bundle.
// Any field that could not be read is left empty.
type Info struct {
	Vendor          Vendor `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	ModelAndVersion string `json:"model" yaml:"model"`
	OperatingSystem string `json:"os" yaml:"os"`
	KernelVersion   string `json:"kernelVersion" yaml:"kernelVersion"`
	KernelRevision  string `json:"kernelRevision" yaml:"kernelRevision"`
	Hostname        string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Architecture    string `json:"architecture,omitempty" yaml:"architecture,omitempty"`
}

// Text renders the record as the systeminfo.txt artifact.
func (i Info) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Model: %s\n", i.ModelAndVersion)
	fmt.Fprintf(&b, "OS Version: %s\n", i.OperatingSystem)
	fmt.Fprintf(&b, "Kernel Version: %s\n", i.KernelVersion)
	fmt.Fprintf(&b, "Kernel Revision: %s\n", i.KernelRevision)
	if i.Hostname != "" {
		fmt.Fprintf(&b, "Hostname: %s\n", i.Hostname)
	}
	if i.Architecture != "" {
		fmt.Fprintf(&b, "Architecture: %s\n", i.Architecture)
	}
	return b.String()
}

// HostStatFunc returns platform details that have no stable file source.
type HostStatFunc func(ctx context.Context) (*host.InfoStat, error)

// Fetcher reads host identity. The zero value reads from the live system.
type Fetcher struct {
	// DMIRoot is the directory holding sys_vendor, product_name, etc.
	DMIRoot string

	// OSReleasePaths are tried in order; the first existing file is used.
	OSReleasePaths []string

	// Exec runs uname. Defaults to the host executor.
	Exec exec.Interface

	// UnameCommand is the uname binary name or path.
	UnameCommand string

	// HostStat supplies hostname and architecture. Defaults to gopsutil.
	HostStat HostStatFunc

	// Timeout bounds the whole fetch.
	Timeout time.Duration
}

// NewFetcher returns a Fetcher bound to the live system.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

func (f *Fetcher) withDefaults() Fetcher {
	c := *f
	if c.DMIRoot == "" {
		c.DMIRoot = dmiRootDefault
	}
	if len(c.OSReleasePaths) == 0 {
		c.OSReleasePaths = []string{filePathReleasePrimary, filePathReleaseFallback}
	}
	if c.Exec == nil {
		c.Exec = exec.New()
	}
	if c.UnameCommand == "" {
		c.UnameCommand = "uname"
	}
	if c.HostStat == nil {
		c.HostStat = host.InfoWithContext
	}
	if c.Timeout <= 0 {
		c.Timeout = defaults.HostInfoTimeout
	}
	return c
}

// Fetch reads every identity source concurrently. It never fails: a source
// that cannot be read contributes an empty value to its field.
func (f *Fetcher) Fetch(ctx context.Context) Info {
	c := f.withDefaults()

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	parser := file.NewParser()
	dmi := func(name string) string {
		v, err := parser.ReadValue(filepath.Join(c.DMIRoot, name))
		if err != nil {
			slog.Debug("dmi attribute unavailable", "name", name, "error", err)
			return ""
		}
		return v
	}

	var (
		sysVendor, productName, productVersion string
		boardName, boardVersion                string
		osName, kernelRelease, kernelRevision  string
		stat                                   *host.InfoStat
	)

	var g errgroup.Group
	g.Go(func() error { sysVendor = dmi("sys_vendor"); return nil })
	g.Go(func() error { productName = dmi("product_name"); return nil })
	g.Go(func() error { productVersion = dmi("product_version"); return nil })
	g.Go(func() error { boardName = dmi("board_name"); return nil })
	g.Go(func() error { boardVersion = dmi("board_version"); return nil })
	g.Go(func() error {
		osName = c.operatingSystem(parser)
		return nil
	})
	g.Go(func() error {
		kernelRelease = strings.TrimSpace(c.uname(ctx, "-r"))
		return nil
	})
	g.Go(func() error {
		if fields := strings.Fields(c.uname(ctx, "-v")); len(fields) > 0 {
			kernelRevision = fields[0]
		}
		return nil
	})
	g.Go(func() error {
		s, err := c.HostStat(ctx)
		if err != nil {
			slog.Debug("host stat unavailable", "error", err)
			return nil
		}
		stat = s
		return nil
	})
	_ = g.Wait()

	info := Info{
		OperatingSystem: osName,
		KernelVersion:   kernelRelease,
		KernelRevision:  kernelRevision,
	}

	name, version := boardName, boardVersion
	if vendor, ok := GuessVendor(sysVendor); ok {
		info.Vendor = vendor
		name, version = productName, productVersion
	}
	info.ModelAndVersion = ModelAndVersion(sysVendor, name, version)

	if stat != nil {
		info.Hostname = stat.Hostname
		info.Architecture = stat.KernelArch
	}

	return info
}

// ModelAndVersion composes "vendor [name] [(version)]". The name is omitted
// when empty or equal to the vendor; the version when empty.
func ModelAndVersion(vendor, name, version string) string {
	vendor = strings.TrimSpace(vendor)
	name = strings.TrimSpace(name)
	version = strings.TrimSpace(version)

	parts := make([]string, 0, 3)
	if vendor != "" {
		parts = append(parts, vendor)
	}
	if name != "" && name != vendor {
		parts = append(parts, name)
	}
	if version != "" {
		parts = append(parts, "("+version+")")
	}
	return strings.Join(parts, " ")
}

// operatingSystem returns PRETTY_NAME from the first os-release file that exists.
func (f *Fetcher) operatingSystem(parser *file.Parser) string {
	for _, path := range f.OSReleasePaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		value, _, err := parser.Lookup(path, keyPrettyName)
		if err != nil {
			slog.Debug("os release unreadable", "path", path, "error", err)
			return ""
		}
		return value
	}
	return ""
}

func (f *Fetcher) uname(ctx context.Context, flag string) string {
	out, err := f.Exec.CommandContext(ctx, f.UnameCommand, flag).Output()
	if err != nil {
		slog.Debug("uname failed", "flag", flag, "error", err)
		return ""
	}
	return string(out)
}
