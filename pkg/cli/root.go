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
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/sysmind/pkg/api"
	"github.com/mchmarny/sysmind/pkg/config"
	"github.com/mchmarny/sysmind/pkg/logging"
	"github.com/mchmarny/sysmind/pkg/platform"
)

const (
	name           = "sysmind"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// app carries the state shared by all commands after the root Before hook
// has run.
type app struct {
	out    io.Writer
	runner platform.Runner
	cfg    *config.Config
	logger *slog.Logger
	serve  func(ctx context.Context, cfg *config.Config) error
}

func newApp() *app {
	a := &app{out: os.Stdout}
	a.serve = a.serveAPI
	return a
}

// serveAPI runs the daemon with the logger configured by --log-level.
func (a *app) serveAPI(ctx context.Context, cfg *config.Config) error {
	return api.NewServer(ctx, cfg, a.logger).Run(ctx)
}

// Execute runs the CLI with os.Args. This is called by main.main().
func Execute(ctx context.Context) error {
	return newRootCmd(newApp()).Run(ctx, os.Args)
}

func newRootCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "host snapshot and kernel tunable tool",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Writer:                a.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "config file (default is $HOME/.sysmind.yaml)",
				Sources: cli.EnvVars("SYSMIND_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error; default info)",
				Sources: cli.EnvVars("SYSMIND_LOG_LEVEL", "LOG_LEVEL"),
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			snapshotCmd(a),
			sysctlCmd(a),
			serveCmd(a),
		},
	}
}

// before loads configuration and configures slog once flags are parsed so
// --log-level takes effect before any command executes.
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
	a.logger = slog.Default()

	if a.runner == nil {
		a.runner = platform.NewExecRunner(cfg.Snapshot.CommandTimeout)
	}

	a.logger.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"config", cfg.Path)

	return ctx, nil
}
