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

	"github.com/urfave/cli/v3"
)

func serveCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API in the foreground",
		Description: `Serves snapshots and tunables over HTTP:

  GET  /v1/snapshot
  GET  /v1/tunables[?filter=PATTERN]
  GET  /v1/tunables/{name}
  PUT  /v1/tunables/{name}   (requires --allow-writes)
  POST /v1/sync              (requires --allow-writes)`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "port to listen on",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.BoolFlag{
				Name:  "allow-writes",
				Usage: "enable PUT and sync endpoints",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := *a.cfg
			if cmd.IsSet("port") {
				cfg.Server.Port = int(cmd.Int("port"))
			}
			if cmd.IsSet("allow-writes") {
				cfg.Server.ReadOnly = !cmd.Bool("allow-writes")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return a.serve(ctx, &cfg)
		},
	}
}
