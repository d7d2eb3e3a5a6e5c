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

package oci

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/pop-os/pop-support/pkg/errors"
)

// URIScheme is the URI scheme for OCI registry targets (e.g., "oci://ghcr.io/org/repo:tag").
const URIScheme = "oci://"

// tagPattern is the OCI distribution tag grammar.
var tagPattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]{0,127}$`)

// Reference is a parsed OCI registry target.
type Reference struct {
	// Registry is the OCI registry host (e.g., "ghcr.io", "localhost:5000").
	Registry string
	// Repository is the image repository path (e.g., "pop-os/support").
	Repository string
	// Tag is the image tag. Empty means the caller applies a default.
	Tag string
}

// ParseTarget parses an oci://registry/repository[:tag] target.
func ParseTarget(target string) (*Reference, error) {
	trimmed := strings.TrimSpace(target)
	if !strings.HasPrefix(trimmed, URIScheme) {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"push target must use the oci:// scheme", map[string]any{"target": target})
	}

	ref, err := reference.ParseNormalizedNamed(strings.TrimPrefix(trimmed, URIScheme))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid OCI reference", err)
	}
	if _, ok := ref.(reference.Digested); ok {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "digest references cannot be pushed to")
	}

	r := &Reference{
		Registry:   reference.Domain(ref),
		Repository: reference.Path(ref),
	}
	if tagged, ok := ref.(reference.Tagged); ok {
		r.Tag = tagged.Tag()
	}
	if r.Registry == "" || r.Repository == "" {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"registry and repository are required", map[string]any{"target": target})
	}
	return r, nil
}

// String returns the reference in oci:// form.
func (r *Reference) String() string {
	return URIScheme + r.ImageReference()
}

// ImageReference returns the Docker-style image reference (without oci:// scheme).
func (r *Reference) ImageReference() string {
	if r.Tag == "" {
		return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
	}
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}

// WithTag returns a copy of the reference with the specified tag.
func (r *Reference) WithTag(tag string) *Reference {
	c := *r
	c.Tag = tag
	return &c
}

// DefaultTag derives a tag from an archive file name, so
// /home/u/pop-support_1700000000.tar.xz is tagged pop-support_1700000000.
func DefaultTag(archivePath string) string {
	name := filepath.Base(archivePath)
	if i := strings.Index(name, "."); i > 0 {
		name = name[:i]
	}
	if !tagPattern.MatchString(name) {
		return "latest"
	}
	return name
}
