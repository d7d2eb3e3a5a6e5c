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

package collector

import (
	"context"

	"github.com/pop-os/pop-support/pkg/collector/hostinfo"
	"github.com/pop-os/pop-support/pkg/collector/systemd"
	"github.com/pop-os/pop-support/pkg/source"
)

// SystemDUnitsSourceID names the probe that lists systemd units.
const SystemDUnitsSourceID = "systemd-failed-units"

// HostInfoCollector returns the identity record of the current host.
type HostInfoCollector interface {
	Fetch(ctx context.Context) hostinfo.Info
}

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateHostInfoCollector() HostInfoCollector
	CreateManifest() []source.Descriptor
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithSystemDStates sets the unit states listed by the systemd probe.
func WithSystemDStates(states []string) Option {
	return func(f *DefaultFactory) {
		f.SystemDStates = states
	}
}

// WithSystemD enables or disables the systemd probe.
func WithSystemD(enabled bool) Option {
	return func(f *DefaultFactory) {
		f.SystemD = enabled
	}
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	SystemD       bool
	SystemDStates []string
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		SystemD:       true,
		SystemDStates: []string{"failed"},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateHostInfoCollector creates a host identity fetcher for the live system.
func (f *DefaultFactory) CreateHostInfoCollector() HostInfoCollector {
	return hostinfo.NewFetcher()
}

// CreateManifest returns the fixed source manifest, plus the systemd probe
// when enabled.
func (f *DefaultFactory) CreateManifest() []source.Descriptor {
	manifest := source.DefaultManifest()
	if !f.SystemD {
		return manifest
	}

	sd := &systemd.Collector{States: f.SystemDStates}
	return append(manifest, source.Descriptor{
		ID:          SystemDUnitsSourceID,
		Kind:        source.KindProbe,
		Destination: SystemDUnitsSourceID,
		Probe:       sd.Collect,
	})
}
