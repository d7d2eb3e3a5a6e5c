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

package systemd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/coreos/go-systemd/v22/dbus"

	apperrors "github.com/pop-os/pop-support/pkg/errors"
)

type fakeLister struct {
	units  []dbus.UnitStatus
	err    error
	states []string
	closed bool
}

func (f *fakeLister) ListUnitsFilteredContext(_ context.Context, states []string) ([]dbus.UnitStatus, error) {
	f.states = states
	return f.units, f.err
}

func (f *fakeLister) Close() { f.closed = true }

func TestCollector_Collect(t *testing.T) {
	lister := &fakeLister{units: []dbus.UnitStatus{
		{Name: "zz.service", LoadState: "loaded", ActiveState: "failed", SubState: "failed", Description: "Last"},
		{Name: "aa.service", LoadState: "loaded", ActiveState: "failed", SubState: "failed", Description: "First"},
	}}
	c := &Collector{Connect: func(context.Context) (UnitLister, error) { return lister, nil }}

	var buf bytes.Buffer
	if err := c.Collect(context.TODO(), &buf); err != nil {
		t.Fatalf("Collect() unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "UNIT") {
		t.Errorf("expected header first, got %q", out)
	}
	if strings.Index(out, "aa.service") > strings.Index(out, "zz.service") {
		t.Errorf("expected units sorted by name, got %q", out)
	}
	if !strings.Contains(out, "2 units") {
		t.Errorf("expected unit count, got %q", out)
	}
	if !lister.closed {
		t.Error("expected connection to be closed")
	}
	if len(lister.states) != 1 || lister.states[0] != "failed" {
		t.Errorf("expected default failed filter, got %v", lister.states)
	}
}

func TestCollector_Collect_CustomStates(t *testing.T) {
	lister := &fakeLister{}
	c := &Collector{
		States:  []string{"failed", "activating"},
		Connect: func(context.Context) (UnitLister, error) { return lister, nil },
	}

	var buf bytes.Buffer
	if err := c.Collect(context.TODO(), &buf); err != nil {
		t.Fatalf("Collect() unexpected error: %v", err)
	}
	if len(lister.states) != 2 {
		t.Errorf("expected custom states, got %v", lister.states)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) != 4 || !strings.HasPrefix(lines[0], "UNIT") || lines[1] != "" || lines[2] != "0 units" || lines[3] != "" {
		t.Errorf("expected header, blank line and \"0 units\", got %q", buf.String())
	}
}

func TestCollector_Collect_ConnectError(t *testing.T) {
	c := &Collector{Connect: func(context.Context) (UnitLister, error) {
		return nil, errors.New("no bus")
	}}

	err := c.Collect(context.TODO(), &bytes.Buffer{})
	if !apperrors.IsCode(err, apperrors.ErrCodeUnavailable) {
		t.Errorf("expected %s, got %v", apperrors.ErrCodeUnavailable, err)
	}
}

func TestCollector_Collect_ListError(t *testing.T) {
	lister := &fakeLister{err: errors.New("access denied")}
	c := &Collector{Connect: func(context.Context) (UnitLister, error) { return lister, nil }}

	err := c.Collect(context.TODO(), &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !lister.closed {
		t.Error("expected connection to be closed on error")
	}
}

func TestCollector_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	var buf bytes.Buffer
	if err := (&Collector{}).Collect(context.TODO(), &buf); err != nil {
		t.Skipf("systemd not reachable: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "UNIT") {
		t.Errorf("expected header, got %q", buf.String())
	}
}
