/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package oci

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	"github.com/pop-os/pop-support/pkg/defaults"
	apperrors "github.com/pop-os/pop-support/pkg/errors"
)

const (
	// ArtifactType is the media type of a pushed support bundle.
	ArtifactType = "application/vnd.pop-os.support.logs.v1"

	// ArchiveMediaType is the layer media type of the xz-compressed tarball.
	ArchiveMediaType = "application/x-xz"
)

// PushOptions configures an archive push.
type PushOptions struct {
	// ArchivePath is the support archive to push.
	ArchivePath string
	// Reference is the destination. An empty tag is derived from the archive name.
	Reference *Reference
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
	// Annotations are added to the artifact manifest.
	Annotations map[string]string
}

// PushResult contains the result of a successful OCI push.
type PushResult struct {
	// Digest is the SHA256 digest of the pushed manifest.
	Digest string
	// Reference is the full image reference (registry/repository:tag).
	Reference string
}

// PushArchive uploads a support archive to an OCI registry as a single-layer
// artifact, using Docker credentials when available.
func PushArchive(ctx context.Context, opts PushOptions) (*PushResult, error) {
	if opts.Reference == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "OCI reference is required")
	}
	ref := opts.Reference
	if ref.Tag == "" {
		ref = ref.WithTag(DefaultTag(opts.ArchivePath))
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.PushTimeout)
	defer cancel()

	repo, err := remote.NewRepository(ref.Registry + "/" + ref.Repository)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to initialize remote repository", err)
	}
	repo.PlainHTTP = opts.PlainHTTP
	repo.Client = createAuthClient(opts.PlainHTTP, opts.InsecureTLS)

	slog.Info("pushing support archive",
		"reference", ref.ImageReference(),
		"archive", opts.ArchivePath)

	desc, err := push(ctx, opts.ArchivePath, ref.Tag, opts.Annotations, repo)
	if err != nil {
		return nil, err
	}

	slog.Info("support archive pushed",
		"reference", ref.ImageReference(),
		"digest", desc.Digest.String())

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: ref.ImageReference(),
	}, nil
}

// push packs the archive into a local file store and copies it to dst.
func push(ctx context.Context, archivePath, tag string, annotations map[string]string, dst oras.Target) (ociv1.Descriptor, error) {
	abs, err := filepath.Abs(archivePath)
	if err != nil {
		return ociv1.Descriptor{}, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to resolve archive path", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return ociv1.Descriptor{}, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "archive not found", err)
	}
	if !info.Mode().IsRegular() {
		return ociv1.Descriptor{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"archive is not a regular file", map[string]any{"path": abs})
	}

	fs, err := file.New(filepath.Dir(abs))
	if err != nil {
		return ociv1.Descriptor{}, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create file store", err)
	}
	defer func() { _ = fs.Close() }()

	layer, err := fs.Add(ctx, filepath.Base(abs), ArchiveMediaType, abs)
	if err != nil {
		return ociv1.Descriptor{}, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to add archive to store", err)
	}

	manifestAnnotations := map[string]string{
		ociv1.AnnotationVendor: "System76",
	}
	for k, v := range annotations {
		manifestAnnotations[k] = v
	}

	manifestDesc, err := oras.PackManifest(ctx, fs, oras.PackManifestVersion1_1, ArtifactType, oras.PackManifestOptions{
		Layers:              []ociv1.Descriptor{layer},
		ManifestAnnotations: manifestAnnotations,
	})
	if err != nil {
		return ociv1.Descriptor{}, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to pack manifest", err)
	}

	if err := fs.Tag(ctx, manifestDesc, tag); err != nil {
		return ociv1.Descriptor{}, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to tag manifest in local store", err)
	}

	desc, err := oras.Copy(ctx, fs, tag, dst, tag, oras.DefaultCopyOptions)
	if err != nil {
		return ociv1.Descriptor{}, apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to push artifact to registry", err)
	}
	return desc, nil
}

// createAuthClient creates an HTTP client with optional TLS configuration
// and Docker credential support.
func createAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, err := credentials.NewStoreFromDocker(credentials.StoreOptions{})
	if err != nil {
		slog.Debug("docker credentials unavailable", "error", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSHandshakeTimeout = defaults.HTTPTLSHandshakeTimeout
	transport.ResponseHeaderTimeout = defaults.HTTPResponseHeaderTimeout
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		} else {
			transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
		}
	}

	client := &auth.Client{
		Client: &http.Client{Transport: transport},
		Cache:  auth.NewCache(),
	}
	if credStore != nil {
		client.Credential = credentials.Credential(credStore)
	}
	return client
}
