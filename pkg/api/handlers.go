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

package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mchmarny/sysmind/pkg/defaults"
	apperrors "github.com/mchmarny/sysmind/pkg/errors"
	"github.com/mchmarny/sysmind/pkg/header"
	"github.com/mchmarny/sysmind/pkg/logging"
	"github.com/mchmarny/sysmind/pkg/serializer"
	"github.com/mchmarny/sysmind/pkg/server"
	"github.com/mchmarny/sysmind/pkg/snapshotter"
	"github.com/mchmarny/sysmind/pkg/sysctl"
)

const (
	// TunablesAPIVersion is the apiVersion of tunable list documents.
	TunablesAPIVersion = "sysmind.dev/v1alpha1"

	maxBodyBytes = 64 << 10
)

// TunableStore is the subset of *sysctl.Store the handlers use.
type TunableStore interface {
	Filter(patterns ...string) []sysctl.Entry
	Get(name string) (string, error)
	Set(ctx context.Context, name, value string)
	Sync(ctx context.Context)
	WriteThrough() bool
	ConfigPath() string
}

// SnapshotFunc builds a host snapshot.
type SnapshotFunc func(ctx context.Context) *snapshotter.Snapshot

// Handler serves the application routes.
type Handler struct {
	Snapshot SnapshotFunc
	Store    TunableStore
	ReadOnly bool
	Version  string
	Logger   *slog.Logger
}

// TunableList is the GET /v1/tunables document.
type TunableList struct {
	header.Header `json:",inline" yaml:",inline"`

	ConfigPath   string         `json:"configPath" yaml:"configPath"`
	WriteThrough bool           `json:"writeThrough" yaml:"writeThrough"`
	Count        int            `json:"count" yaml:"count"`
	Entries      []sysctl.Entry `json:"entries" yaml:"entries"`
}

// SetRequest is the PUT /v1/tunables/{name} body.
type SetRequest struct {
	Value *string `json:"value"`
}

// SetResponse acknowledges a write.
type SetResponse struct {
	sysctl.Entry `json:",inline"`

	// WriteThrough reports whether the persist sequence ran.
	WriteThrough bool `json:"writeThrough"`
}

// SyncResponse acknowledges a sync.
type SyncResponse struct {
	Status     string `json:"status"`
	ConfigPath string `json:"configPath"`
}

// Routes returns the ServeMux patterns served by h.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /v1/snapshot":        h.handleSnapshot,
		"GET /v1/tunables":        h.handleListTunables,
		"GET /v1/tunables/{name}": h.handleGetTunable,
		"PUT /v1/tunables/{name}": h.handleSetTunable,
		"POST /v1/sync":           h.handleSync,
	}
}

func (h *Handler) logger() *slog.Logger {
	return logging.OrDefault(h.Logger)
}

func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.SnapshotTimeout)
	defer cancel()

	snap := h.Snapshot(ctx)
	w.Header().Set("Cache-Control", "no-store")
	serializer.Respond(w, r, http.StatusOK, snap)
}

func (h *Handler) handleListTunables(w http.ResponseWriter, r *http.Request) {
	patterns := r.URL.Query()["filter"]
	entries := h.Store.Filter(patterns...)

	list := TunableList{
		ConfigPath:   h.Store.ConfigPath(),
		WriteThrough: h.Store.WriteThrough(),
		Count:        len(entries),
		Entries:      entries,
	}
	list.Init(header.KindTunables, TunablesAPIVersion, h.Version)

	serializer.Respond(w, r, http.StatusOK, list)
}

func (h *Handler) handleGetTunable(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	value, err := h.Store.Get(name)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to read tunable", map[string]any{"name": name})
		return
	}

	serializer.Respond(w, r, http.StatusOK, sysctl.Entry{Name: name, Value: value})
}

func (h *Handler) handleSetTunable(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if h.ReadOnly {
		server.WriteError(w, r, http.StatusForbidden, apperrors.ErrCodeForbidden,
			"tunable writes are disabled", false, map[string]any{"name": name})
		return
	}

	if !sysctl.ValidName(name) {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"invalid tunable name", false, map[string]any{"name": name})
		return
	}

	var req SetRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"request body must be {\"value\": \"...\"}", false, map[string]any{"error": err.Error()})
		return
	}
	if req.Value == nil {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"value is required", false, nil)
		return
	}

	value := strings.TrimSpace(*req.Value)
	if !sysctl.ValidValue(value) {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"value must be a single line", false, map[string]any{"name": name})
		return
	}

	h.Store.Set(r.Context(), name, value)
	h.logger().Info("tunable set via api",
		"name", name,
		"value", value,
		"requestID", server.RequestIDFromRequest(r))

	serializer.RespondJSON(w, http.StatusOK, SetResponse{
		Entry:        sysctl.Entry{Name: name, Value: value},
		WriteThrough: h.Store.WriteThrough(),
	})
}

func (h *Handler) handleSync(w http.ResponseWriter, r *http.Request) {
	if h.ReadOnly {
		server.WriteError(w, r, http.StatusForbidden, apperrors.ErrCodeForbidden,
			"tunable writes are disabled", false, nil)
		return
	}

	if h.Store.WriteThrough() {
		server.WriteError(w, r, http.StatusConflict, apperrors.ErrCodeInvalidRequest,
			"sync is only valid when write-through is disabled", false,
			map[string]any{"configPath": h.Store.ConfigPath()})
		return
	}

	h.Store.Sync(r.Context())

	serializer.RespondJSON(w, http.StatusOK, SyncResponse{
		Status:     "synced",
		ConfigPath: h.Store.ConfigPath(),
	})
}
