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
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/sysmind/pkg/serializer"
	"github.com/mchmarny/sysmind/pkg/sysctl"
)

var errUsage = errors.New("invalid usage")

func sysctlCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:                  "sysctl",
		EnableShellCompletion: true,
		Usage:                 "Read and write kernel tunables",
		Commands: []*cli.Command{
			sysctlListCmd(a),
			sysctlGetCmd(a),
			sysctlSetCmd(a),
			sysctlSyncCmd(a),
		},
	}
}

// newStore loads the tunable store using the config file settings, with
// command flags taking precedence.
func (a *app) newStore(ctx context.Context, cmd *cli.Command, writeThrough bool) *sysctl.Store {
	path := a.cfg.Sysctl.ConfigPath
	if cmd.IsSet("config-path") {
		path = cmd.String("config-path")
	}

	backup := a.cfg.Sysctl.Backup
	if cmd.Bool("no-backup") {
		backup = false
	}

	return sysctl.New(ctx,
		sysctl.WithConfigPath(path),
		sysctl.WithWriteThrough(writeThrough),
		sysctl.WithBackup(backup),
		sysctl.WithBinary(a.cfg.Sysctl.Binary),
		sysctl.WithRunner(a.runner),
		sysctl.WithLogger(a.logger),
	)
}

func sysctlListCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List tunables, optionally filtered by name patterns",
		Description: `Patterns match exact names or contain * wildcards:

  sysmind sysctl list --filter 'net.ipv4.*' --filter '*.swappiness'`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "filter",
				Usage: "name pattern (can be repeated)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Usage:   "output format (json, yaml); default is sysctl.conf lines",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store := a.newStore(ctx, cmd, false)
			entries := store.Filter(cmd.StringSlice("filter")...)

			if f := cmd.String("format"); f != "" {
				outFormat, err := parseOutputFormat(cmd)
				if err != nil {
					return err
				}
				b, err := serializer.Encode(outFormat, entries)
				if err != nil {
					return err
				}
				_, err = a.out.Write(b)
				return err
			}

			var sb strings.Builder
			for _, e := range entries {
				fmt.Fprintf(&sb, "%s = %s\n", e.Name, e.Value)
			}
			_, err := fmt.Fprint(a.out, sb.String())
			return err
		},
	}
}

func sysctlGetCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print the value of one tunable",
		ArgsUsage: "NAME",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("%w: get requires exactly one NAME", errUsage)
			}
			store := a.newStore(ctx, cmd, false)
			v, err := store.Get(cmd.Args().First())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, v)
			return err
		},
	}
}

func sysctlSetCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Set one tunable and persist it",
		ArgsUsage: "NAME VALUE",
		Description: `Updates the in-memory value, then backs up the config file, rewrites it
and applies the value to the running kernel. Failures in any step are
logged and do not undo earlier steps.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-write-through",
				Usage: "only update the in-memory value; skip backup, rewrite and apply",
			},
			&cli.BoolFlag{
				Name:  "no-backup",
				Usage: "do not back up the config file before rewriting it",
			},
			configPathFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("%w: set requires NAME and VALUE", errUsage)
			}
			key, value := cmd.Args().Get(0), strings.TrimSpace(cmd.Args().Get(1))
			if !sysctl.ValidName(key) {
				return fmt.Errorf("%w: invalid tunable name %q", errUsage, key)
			}
			if !sysctl.ValidValue(value) {
				return fmt.Errorf("%w: value must be a single line", errUsage)
			}

			writeThrough := a.cfg.Sysctl.WriteThrough
			if cmd.Bool("no-write-through") {
				writeThrough = false
			}

			store := a.newStore(ctx, cmd, writeThrough)
			store.Set(ctx, key, value)

			_, err := fmt.Fprintf(a.out, "%s = %s\n", key, value)
			return err
		},
	}
}

func sysctlSyncCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Rewrite the config file from the live tunable listing",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-backup",
				Usage: "do not back up the config file before rewriting it",
			},
			configPathFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store := a.newStore(ctx, cmd, false)
			store.Sync(ctx)
			_, err := fmt.Fprintf(a.out, "synced %d tunables to %s\n", store.Len(), store.ConfigPath())
			return err
		},
	}
}
