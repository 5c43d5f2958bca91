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
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/mchmarny/sysmind/pkg/collector"
	"github.com/mchmarny/sysmind/pkg/config"
	"github.com/mchmarny/sysmind/pkg/logging"
	"github.com/mchmarny/sysmind/pkg/platform"
	"github.com/mchmarny/sysmind/pkg/server"
	"github.com/mchmarny/sysmind/pkg/snapshotter"
	"github.com/mchmarny/sysmind/pkg/sysctl"
)

const (
	name           = "sysmindd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/mchmarny/sysmind/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the daemon and blocks until shutdown.
// A nil cfg loads configuration from the default locations.
func Serve(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		loaded, err := config.Load("")
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"config", cfg.Path,
		"readOnly", cfg.Server.ReadOnly,
	)

	s := NewServer(ctx, cfg, slog.Default())
	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

// NewServer builds the store, snapshotter and HTTP server described by cfg.
func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) *server.Server {
	h := NewHandler(ctx, cfg, logger)

	sc := server.NewConfig()
	sc.Name = name
	sc.Version = version
	sc.Port = cfg.Server.Port
	sc.RateLimit = rate.Limit(cfg.Server.RateLimit)
	sc.RateLimitBurst = cfg.Server.RateLimitBurst
	if cfg.Server.ShutdownTimeout > 0 {
		sc.ShutdownTimeout = cfg.Server.ShutdownTimeout
	}

	return server.New(
		server.WithConfig(sc),
		server.WithHandler(h.Routes()),
		server.WithLogger(logger),
	)
}

// NewHandler builds the handler for cfg, loading the tunable store.
func NewHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger) *Handler {
	runner := platform.NewExecRunner(cfg.Snapshot.CommandTimeout)

	store := sysctl.New(ctx,
		sysctl.WithConfigPath(cfg.Sysctl.ConfigPath),
		sysctl.WithWriteThrough(cfg.Sysctl.WriteThrough),
		sysctl.WithBackup(cfg.Sysctl.Backup),
		sysctl.WithBinary(cfg.Sysctl.Binary),
		sysctl.WithRunner(runner),
		sysctl.WithLogger(logger),
	)

	ns := &snapshotter.NodeSnapshotter{
		Version:          version,
		Factory:          &collector.DefaultFactory{Runner: runner, Logger: logger},
		PrimaryInterface: cfg.Snapshot.PrimaryInterface,
		Logger:           logger,
	}

	return &Handler{
		Snapshot: ns.Snapshot,
		Store:    store,
		ReadOnly: cfg.Server.ReadOnly,
		Version:  version,
		Logger:   logger,
	}
}
