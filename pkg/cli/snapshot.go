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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/sysmind/pkg/checksum"
	"github.com/mchmarny/sysmind/pkg/collector"
	"github.com/mchmarny/sysmind/pkg/defaults"
	"github.com/mchmarny/sysmind/pkg/oci"
	"github.com/mchmarny/sysmind/pkg/serializer"
	"github.com/mchmarny/sysmind/pkg/snapshotter"
)

func snapshotCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture host snapshot",
		Description: `Capture a snapshot of the current host including:
  - OS family, kernel, distribution and hostname
  - CPU, memory, swap and mounts
  - Network interfaces and connections
  - Processes, services and PCI/USB devices
  - Hosts file and resolver configuration

Facts that cannot be collected are reported as null or empty.

# Examples

  sysmind snapshot --format json --output snapshot.json
  sysmind snapshot --output cm://default/sysmind-snapshot
  sysmind snapshot --output oci://ghcr.io/acme/snapshots:node-1
  sysmind snapshot --summary`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "primary-interface",
				Usage:   "override the platform's primary network interface",
				Sources: cli.EnvVars("SYSMIND_PRIMARY_INTERFACE"),
			},
			&cli.BoolFlag{
				Name:  "checksum",
				Usage: "write a SHA256SUMS manifest next to a file output",
			},
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "print a human-readable summary instead of the full snapshot",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			target := cmd.String("output")
			if cmd.Bool("checksum") && !isFileTarget(target) {
				return fmt.Errorf("--checksum requires a file --output, got %q", target)
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.SnapshotTimeout)
			defer cancel()

			primary := a.cfg.Snapshot.PrimaryInterface
			if cmd.IsSet("primary-interface") {
				primary = cmd.String("primary-interface")
			}

			ns := snapshotter.NodeSnapshotter{
				Version:          version,
				Factory:          &collector.DefaultFactory{Runner: a.runner, Logger: a.logger},
				PrimaryInterface: primary,
				Logger:           a.logger,
			}

			if cmd.Bool("summary") {
				b, err := serializer.Encode(serializer.FormatTable, snapshotter.Summarize(ns.Snapshot(ctx)))
				if err != nil {
					return err
				}
				_, err = a.out.Write(b)
				return err
			}

			ns.Serializer = serializer.NewFileWriterOrStdout(outFormat, target)
			err = ns.Measure(ctx)
			if cerr := serializer.Close(ns.Serializer); cerr != nil {
				slog.Warn("failed to close serializer", "error", cerr)
			}
			if err != nil {
				return fmt.Errorf("snapshot failed: %w", err)
			}

			if cmd.Bool("checksum") {
				path, err := checksum.WriteSums(ctx, filepath.Dir(target), []string{target})
				if err != nil {
					return err
				}
				slog.Info("checksums written", "path", path)
			}
			return nil
		},
	}
}

func isFileTarget(target string) bool {
	t := strings.TrimSpace(target)
	return t != "" && !strings.HasPrefix(t, serializer.ConfigMapURIScheme) && !oci.IsURI(t)
}
