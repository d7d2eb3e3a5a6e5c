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
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"text/tabwriter"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/pop-os/pop-support/pkg/defaults"
	apperrors "github.com/pop-os/pop-support/pkg/errors"
)

var (
	// Unit states listed by default.
	defaultStates = []string{"failed"}
)

// UnitLister is the subset of the systemd D-Bus connection the collector uses.
type UnitLister interface {
	ListUnitsFilteredContext(ctx context.Context, states []string) ([]dbus.UnitStatus, error)
	Close()
}

// ConnectFunc opens a connection to systemd.
type ConnectFunc func(ctx context.Context) (UnitLister, error)

func connectSystem(ctx context.Context) (UnitLister, error) {
	conn, err := dbus.NewSystemdConnectionContext(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Collector lists systemd units in the requested states over D-Bus.
type Collector struct {
	// States filters units by active or sub state. Defaults to "failed".
	States []string

	// Connect opens the D-Bus connection. Defaults to the system bus.
	Connect ConnectFunc
}

// Collect writes one line per matching unit to w:
//
//	UNIT              LOAD    ACTIVE  SUB     DESCRIPTION
//	foo.service       loaded  failed  failed  Foo Daemon
//
// When no unit matches, only the header row is written, followed by a
// blank line and "0 units".
func (c *Collector) Collect(ctx context.Context, w io.Writer) error {
	slog.Debug("collecting systemd units")

	states := c.States
	if len(states) == 0 {
		states = defaultStates
	}
	connect := c.Connect
	if connect == nil {
		connect = connectSystem
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.ProbeTimeout)
	defer cancel()

	conn, err := connect(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to connect to systemd", err)
	}
	defer conn.Close()

	units, err := conn.ListUnitsFilteredContext(ctx, states)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to list units", err)
	}

	sort.Slice(units, func(i, j int) bool { return units[i].Name < units[j].Name })

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "UNIT\tLOAD\tACTIVE\tSUB\tDESCRIPTION")
	for _, u := range units {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.Name, u.LoadState, u.ActiveState, u.SubState, u.Description)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write units: %w", err)
	}

	_, err = fmt.Fprintf(w, "\n%d units\n", len(units))
	return err
}
