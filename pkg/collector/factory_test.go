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
	"testing"

	"github.com/pop-os/pop-support/pkg/collector/hostinfo"
	"github.com/pop-os/pop-support/pkg/source"
)

func TestDefaultFactory_CreateHostInfoCollector(t *testing.T) {
	col := NewDefaultFactory().CreateHostInfoCollector()
	if col == nil {
		t.Fatal("Expected non-nil collector")
	}
	if _, ok := col.(*hostinfo.Fetcher); !ok {
		t.Fatalf("Expected *hostinfo.Fetcher, got %T", col)
	}
}

func TestDefaultFactory_CreateManifest(t *testing.T) {
	tests := []struct {
		name      string
		opts      []Option
		wantProbe bool
	}{
		{name: "default includes systemd probe", wantProbe: true},
		{name: "systemd disabled", opts: []Option{WithSystemD(false)}, wantProbe: false},
		{name: "custom states", opts: []Option{WithSystemDStates([]string{"failed", "activating"})}, wantProbe: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manifest := NewDefaultFactory(tt.opts...).CreateManifest()

			if err := source.Validate(manifest); err != nil {
				t.Fatalf("manifest should validate: %v", err)
			}

			found := false
			for _, d := range manifest {
				if d.ID == SystemDUnitsSourceID {
					found = true
					if d.Kind != source.KindProbe || d.Probe == nil {
						t.Errorf("expected probe source, got %+v", d)
					}
				}
			}
			if found != tt.wantProbe {
				t.Errorf("systemd probe present = %v, want %v", found, tt.wantProbe)
			}

			base := len(source.DefaultManifest())
			want := base
			if tt.wantProbe {
				want++
			}
			if len(manifest) != want {
				t.Errorf("manifest has %d sources, want %d", len(manifest), want)
			}
		})
	}
}

func TestNewDefaultFactory_Options(t *testing.T) {
	f := NewDefaultFactory(WithSystemDStates([]string{"activating"}))
	if len(f.SystemDStates) != 1 || f.SystemDStates[0] != "activating" {
		t.Errorf("expected [activating], got %v", f.SystemDStates)
	}
	if !f.SystemD {
		t.Error("expected systemd probe enabled by default")
	}
}
