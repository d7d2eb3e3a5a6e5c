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

// Package systemd lists systemd units over D-Bus.
//
// The collector backs the systemd-failed-units source: it asks the system
// manager for units in the failed state and renders them as a table, so a
// support engineer sees at a glance which services did not come up.
//
// # Usage
//
//	c := &systemd.Collector{}
//	if err := c.Collect(ctx, os.Stdout); err != nil {
//	    // D-Bus unavailable; the source is recorded as unavailable
//	}
//
// Other states can be requested, e.g. []string{"failed", "activating"}.
package systemd
