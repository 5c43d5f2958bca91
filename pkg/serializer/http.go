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
	"log/slog"
	"mime"
	"net/http"
	"strings"
)

const (
	contentTypeJSON = "application/json"
	contentTypeYAML = "application/yaml"
)

// Respond writes data in the format the request's Accept header prefers.
// application/yaml and text/yaml select YAML; anything else gets JSON.
func Respond(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	if r != nil && acceptsYAML(r.Header.Get("Accept")) {
		respond(w, statusCode, FormatYAML, contentTypeYAML, data)
		return
	}
	respond(w, statusCode, FormatJSON, contentTypeJSON, data)
}

// RespondJSON writes a JSON response with the given status code and data.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	respond(w, statusCode, FormatJSON, contentTypeJSON, data)
}

// respond encodes before writing headers so a failed encode never produces
// a partial success response.
func respond(w http.ResponseWriter, statusCode int, format Format, contentType string, data any) {
	body, err := Encode(format, data)
	if err != nil {
		slog.Error("response encoding failed", "format", format, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		// connection is gone
		slog.Warn("response write failed", "error", err)
	}
}

// acceptsYAML reports whether the first listed media type is YAML.
func acceptsYAML(accept string) bool {
	for _, part := range strings.Split(accept, ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mt {
		case contentTypeYAML, "text/yaml", "application/x-yaml":
			return true
		default:
			return false
		}
	}
	return false
}
