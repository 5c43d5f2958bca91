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

package serializer

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRespondJSON_EncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]any{"ch": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRespond_Negotiation(t *testing.T) {
	tests := []struct {
		name     string
		accept   string
		wantType string
	}{
		{name: "no accept", accept: "", wantType: "application/json"},
		{name: "json", accept: "application/json", wantType: "application/json"},
		{name: "yaml", accept: "application/yaml", wantType: "application/yaml"},
		{name: "text yaml", accept: "text/yaml; charset=utf-8", wantType: "application/yaml"},
		{name: "yaml preferred", accept: "application/x-yaml, application/json", wantType: "application/yaml"},
		{name: "json preferred", accept: "application/json, application/yaml", wantType: "application/json"},
		{name: "wildcard", accept: "*/*", wantType: "application/json"},
		{name: "garbage", accept: ";;;", wantType: "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/tunables", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rec := httptest.NewRecorder()

			Respond(rec, req, http.StatusOK, map[string]string{"name": "vm.swappiness"})

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantType, rec.Header().Get("Content-Type"))

			var got map[string]string
			if tt.wantType == "application/yaml" {
				assert.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &got))
			} else {
				assert.JSONEq(t, `{"name":"vm.swappiness"}`, rec.Body.String())
				return
			}
			assert.Equal(t, "vm.swappiness", got["name"])
		})
	}
}
