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

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/mchmarny/sysmind/pkg/errors"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code apperrors.ErrorCode
		want int
	}{
		{"invalid request", apperrors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{"forbidden", apperrors.ErrCodeForbidden, http.StatusForbidden},
		{"not found", apperrors.ErrCodeNotFound, http.StatusNotFound},
		{"unsupported", apperrors.ErrCodeUnsupported, http.StatusNotImplemented},
		{"method not allowed", apperrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{"rate limit", apperrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{"unavailable", apperrors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{"timeout", apperrors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{"internal", apperrors.ErrCodeInternal, http.StatusInternalServerError},
		{"unknown defaults to internal", apperrors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusFromCode(tt.code); got != tt.want {
				t.Fatalf("HTTPStatusFromCode(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestMergeDetails(t *testing.T) {
	if got := mergeDetails(); got != nil {
		t.Errorf("expected nil for no maps, got %#v", got)
	}
	if got := mergeDetails(nil, map[string]any{}); got != nil {
		t.Errorf("expected nil for empty maps, got %#v", got)
	}

	got := mergeDetails(
		map[string]any{"tunable": "vm.swappiness", "source": "ctx"},
		nil,
		map[string]any{"source": "extra", "error": "boom"},
	)
	want := map[string]any{"tunable": "vm.swappiness", "source": "extra", "error": "boom"}
	if len(got) != len(want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %#v, want %#v", k, got[k], v)
		}
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestWriteError_UsesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/v1/tunables/vm.swappiness", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest, "value is required",
		false, map[string]any{"tunable": "vm.swappiness"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	resp := decodeError(t, w)
	if resp.RequestID != "req-123" || resp.Code != "INVALID_REQUEST" || resp.Retryable {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Details["tunable"] != "vm.swappiness" {
		t.Errorf("unexpected details: %v", resp.Details)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected timestamp")
	}
}

func TestWriteError_GeneratesRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusNotFound,
		apperrors.ErrCodeNotFound, "missing", false, nil)

	if resp := decodeError(t, w); resp.RequestID == "" {
		t.Error("expected generated request ID")
	}
}

func TestWriteErrorFromErr(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantCode      apperrors.ErrorCode
		wantMessage   string
		wantRetryable bool
		wantDetails   map[string]any
	}{
		{
			name: "wrapped unknown tunable",
			err: fmt.Errorf("get: %w", apperrors.Wrap(apperrors.ErrCodeNotFound, "unknown tunable",
				errors.New("vm.nope")).With("name", "vm.nope")),
			wantStatus:  http.StatusNotFound,
			wantCode:    apperrors.ErrCodeNotFound,
			wantMessage: "unknown tunable",
			wantDetails: map[string]any{"name": "vm.nope", "error": "vm.nope", "op": "get"},
		},
		{
			name:        "read-only daemon",
			err:         apperrors.New(apperrors.ErrCodeForbidden, "tunable writes are disabled"),
			wantStatus:  http.StatusForbidden,
			wantCode:    apperrors.ErrCodeForbidden,
			wantMessage: "tunable writes are disabled",
			wantDetails: map[string]any{"op": "get"},
		},
		{
			name:          "sysctl unavailable",
			err:           apperrors.Wrap(apperrors.ErrCodeUnavailable, "run sysctl", errors.New("executable file not found")),
			wantStatus:    http.StatusServiceUnavailable,
			wantCode:      apperrors.ErrCodeUnavailable,
			wantMessage:   "run sysctl",
			wantRetryable: true,
			wantDetails:   map[string]any{"error": "executable file not found", "op": "get"},
		},
		{
			name:          "plain error",
			err:           errors.New("boom"),
			wantStatus:    http.StatusInternalServerError,
			wantCode:      apperrors.ErrCodeInternal,
			wantMessage:   "fallback",
			wantRetryable: true,
			wantDetails:   map[string]any{"error": "boom", "op": "get"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteErrorFromErr(w, httptest.NewRequest(http.MethodGet, "/", nil), tt.err,
				"fallback", map[string]any{"op": "get"})

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			resp := decodeError(t, w)
			if resp.Code != string(tt.wantCode) || resp.Message != tt.wantMessage {
				t.Errorf("got %s %q, want %s %q", resp.Code, resp.Message, tt.wantCode, tt.wantMessage)
			}
			if resp.Retryable != tt.wantRetryable {
				t.Errorf("retryable = %v, want %v", resp.Retryable, tt.wantRetryable)
			}
			if len(resp.Details) != len(tt.wantDetails) {
				t.Fatalf("details = %v, want %v", resp.Details, tt.wantDetails)
			}
			for k, v := range tt.wantDetails {
				if resp.Details[k] != v {
					t.Errorf("details[%s] = %v, want %v", k, resp.Details[k], v)
				}
			}
		})
	}
}
