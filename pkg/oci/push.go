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
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/memory"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	"github.com/mchmarny/sysmind/pkg/defaults"
	apperrors "github.com/mchmarny/sysmind/pkg/errors"
)

const (
	// ArtifactType identifies sysmind documents in a registry.
	ArtifactType = "application/vnd.sysmind.snapshot"

	// MediaTypeJSON is the layer media type for JSON documents.
	MediaTypeJSON = "application/json"
	// MediaTypeYAML is the layer media type for YAML documents.
	MediaTypeYAML = "application/yaml"
	// MediaTypeText is the layer media type for table output.
	MediaTypeText = "text/plain"
)

// PushOptions configures a push.
type PushOptions struct {
	// Reference is the destination.
	Reference *Reference
	// Content is the document to publish.
	Content []byte
	// FileName is recorded as the layer title annotation.
	FileName string
	// MediaType of the layer; defaults to MediaTypeJSON.
	MediaType string
	// Annotations are added to the manifest.
	Annotations map[string]string
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
}

// PushResult describes a pushed artifact.
type PushResult struct {
	// Digest is the manifest digest.
	Digest string
	// Reference is registry/repository:tag.
	Reference string
}

// Pack stores the document and its manifest in store and tags the manifest
// with the reference tag. It returns the manifest descriptor.
func Pack(ctx context.Context, store oras.Target, opts PushOptions) (ociv1.Descriptor, error) {
	if opts.Reference == nil {
		return ociv1.Descriptor{}, apperrors.New(apperrors.ErrCodeInvalidRequest, "OCI reference is required")
	}
	if opts.Reference.Tag == "" {
		return ociv1.Descriptor{}, apperrors.New(apperrors.ErrCodeInvalidRequest, "tag is required to push OCI artifact")
	}
	if len(opts.Content) == 0 {
		return ociv1.Descriptor{}, apperrors.New(apperrors.ErrCodeInvalidRequest, "nothing to push")
	}

	mediaType := opts.MediaType
	if mediaType == "" {
		mediaType = MediaTypeJSON
	}

	layer, err := oras.PushBytes(ctx, store, mediaType, opts.Content)
	if err != nil {
		return ociv1.Descriptor{}, fmt.Errorf("failed to store document: %w", err)
	}
	if opts.FileName != "" {
		layer.Annotations = map[string]string{ociv1.AnnotationTitle: opts.FileName}
	}

	manifest, err := oras.PackManifest(ctx, store, oras.PackManifestVersion1_1, ArtifactType,
		oras.PackManifestOptions{
			Layers:              []ociv1.Descriptor{layer},
			ManifestAnnotations: opts.Annotations,
		})
	if err != nil {
		return ociv1.Descriptor{}, fmt.Errorf("failed to pack manifest: %w", err)
	}

	if err := store.Tag(ctx, manifest, opts.Reference.Tag); err != nil {
		return ociv1.Descriptor{}, fmt.Errorf("failed to tag manifest: %w", err)
	}
	return manifest, nil
}

// Push publishes a single document to the registry named by opts.Reference.
func Push(ctx context.Context, opts PushOptions) (*PushResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.OCIPushTimeout)
	defer cancel()

	store := memory.New()
	if _, err := Pack(ctx, store, opts); err != nil {
		return nil, err
	}

	repo, err := remote.NewRepository(opts.Reference.Repo())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to initialize remote repository", err)
	}
	repo.PlainHTTP = opts.PlainHTTP
	repo.Client = createAuthClient(opts.PlainHTTP, opts.InsecureTLS)

	desc, err := Copy(ctx, store, repo, opts.Reference.Tag)
	if err != nil {
		return nil, err
	}

	slog.Info("OCI artifact pushed",
		"reference", opts.Reference.ImageReference(),
		"digest", desc.Digest.String())

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: opts.Reference.ImageReference(),
	}, nil
}

// Copy copies the tagged artifact from src to dst.
func Copy(ctx context.Context, src oras.ReadOnlyTarget, dst oras.Target, tag string) (ociv1.Descriptor, error) {
	desc, err := oras.Copy(ctx, src, tag, dst, tag, oras.DefaultCopyOptions)
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
		slog.Debug("docker credential store unavailable", "error", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
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
