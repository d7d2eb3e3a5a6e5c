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

// Package serializer writes host info, manifests, and run results in
// multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented output
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Aligned columns for terminal viewing
//   - Values implementing Tabular render their own rows
//   - Other values are flattened into FIELD/VALUE pairs keyed by json tag
//
// # Usage
//
//	format, err := serializer.ParseFormat("yaml")
//	if err != nil {
//		return err
//	}
//	w := serializer.NewStdoutWriter(format)
//	defer w.Close()
//	return w.Serialize(ctx, info)
//
// File output falls back to stdout when the file cannot be created:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "manifest.json")
//	defer w.Close()
package serializer
