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

package windows

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mchmarny/sysmind/pkg/platform"
)

const powershell = "powershell"

func runPowerShell(ctx context.Context, r platform.Runner, script string) ([]byte, error) {
	return r.Run(ctx, powershell, "-NoProfile", "-NonInteractive", "-Command", script)
}

// parseCSV returns one map per data row keyed by header name. Rows whose
// column count differs from the header are skipped.
func parseCSV(data []byte) ([]map[string]string, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\ufeff")))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return []map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	var rows []map[string]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Debug("skipping malformed csv row", slog.String("error", err.Error()))
			continue
		}
		if len(rec) != len(header) {
			slog.Debug("skipping csv row with wrong column count",
				slog.Int("want", len(header)),
				slog.Int("got", len(rec)))
			continue
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			row[strings.TrimSpace(h)] = strings.TrimSpace(rec[i])
		}
		rows = append(rows, row)
	}

	return rows, nil
}
