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

// Package oci uploads support archives to OCI-compliant registries.
//
// An archive is pushed as a single-layer OCI 1.1 artifact using ORAS, so
// support staff can pull it with any ORAS-aware client instead of receiving
// the file by hand. Registry credentials come from the Docker config when
// present.
//
// # Usage
//
//	ref, err := oci.ParseTarget("oci://ghcr.io/pop-os/support-logs")
//	if err != nil {
//	    return err
//	}
//	res, err := oci.PushArchive(ctx, oci.PushOptions{
//	    ArchivePath: "/home/user/pop-support_1700000000.tar.xz",
//	    Reference:   ref,
//	})
//	fmt.Println(res.Reference, res.Digest)
//
// A target without a tag is tagged from the archive name, here
// pop-support_1700000000.
package oci
