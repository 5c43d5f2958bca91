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

package sysctl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mchmarny/sysmind/pkg/checksum"
	"github.com/mchmarny/sysmind/pkg/collector/file"
	"github.com/mchmarny/sysmind/pkg/defaults"
	apperrors "github.com/mchmarny/sysmind/pkg/errors"
	"github.com/mchmarny/sysmind/pkg/logging"
	"github.com/mchmarny/sysmind/pkg/platform"
)

// ErrUnknownKey is returned by Get for names not present in the store.
var ErrUnknownKey = errors.New("unknown tunable")

const (
	stepBackup  = "backup"
	stepRewrite = "rewrite"
	stepApply   = "apply"

	statusSuccess = "success"
	statusFailure = "failure"
	statusSkipped = "skipped"

	fallbackBinary = "sysctl"
	backupSuffix   = ".bkp"
)

// Entry is one tunable.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Store holds kernel tunables in platform enumeration order.
type Store struct {
	mu     sync.Mutex
	names  []string
	values map[string]string

	configPath   string
	binary       string
	writeThrough bool
	backup       bool
	runner       platform.Runner
	logger       *slog.Logger
	now          func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithConfigPath sets the persisted configuration file.
func WithConfigPath(path string) Option {
	return func(s *Store) {
		s.configPath = path
	}
}

// WithWriteThrough sets whether every Set runs the persist sequence.
func WithWriteThrough(enabled bool) Option {
	return func(s *Store) {
		s.writeThrough = enabled
	}
}

// WithBackup sets whether the configuration file is copied before rewrite.
func WithBackup(enabled bool) Option {
	return func(s *Store) {
		s.backup = enabled
	}
}

// WithBinary sets the sysctl executable.
func WithBinary(path string) Option {
	return func(s *Store) {
		s.binary = path
	}
}

// WithRunner sets the command runner.
func WithRunner(r platform.Runner) Option {
	return func(s *Store) {
		s.runner = r
	}
}

// WithLogger sets the logger. Use logging.Discard() to silence the store.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithClock sets the time source used for backup names.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// DefaultBinary returns /sbin/sysctl when it exists, otherwise "sysctl" for
// PATH lookup.
func DefaultBinary() string {
	if fi, err := os.Stat(defaults.SysctlBinary); err == nil && !fi.IsDir() {
		return defaults.SysctlBinary
	}
	return fallbackBinary
}

// New creates a store and loads it from the platform listing command.
func New(ctx context.Context, opts ...Option) *Store {
	s := &Store{
		values:       make(map[string]string),
		configPath:   defaults.SysctlConfigPath,
		writeThrough: true,
		backup:       true,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.binary == "" {
		s.binary = DefaultBinary()
	}
	if s.runner == nil {
		s.runner = platform.NewExecRunner(defaults.CommandTimeout)
	}
	s.logger = logging.OrDefault(s.logger)

	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	out, err := s.runner.Run(ctx, s.binary, "-a")
	if err != nil {
		tunablesLoaded.Set(0)
		s.logger.Error("tunable listing unavailable, store is empty",
			slog.String("binary", s.binary),
			slog.String("error", err.Error()))
		return
	}

	for _, kv := range ParseListing(string(out)) {
		if _, ok := s.values[kv.Key]; !ok {
			s.names = append(s.names, kv.Key)
		}
		s.values[kv.Key] = kv.Value
	}

	tunablesLoaded.Set(float64(len(s.names)))
	s.logger.Info("tunables loaded",
		slog.Int("count", len(s.names)),
		slog.Bool("writeThrough", s.writeThrough))
}

// ParseListing parses sysctl -a output. Linux prints "name = value", macOS
// prints "name: value"; whichever separator occurs first splits the line.
// Lines with neither separator or with an empty name are skipped.
func ParseListing(out string) []file.Pair {
	lines := file.NewParser(file.WithSkipComments(false)).Lines(out)

	pairs := make([]file.Pair, 0, len(lines))
	for _, line := range lines {
		i := strings.IndexAny(line, "=:")
		if i < 0 {
			slog.Debug("skipping tunable line without separator", slog.String("line", line))
			continue
		}
		name := strings.TrimSpace(line[:i])
		if name == "" {
			continue
		}
		pairs = append(pairs, file.Pair{
			Key:   name,
			Value: strings.TrimSpace(line[i+1:]),
		})
	}
	return pairs
}

// Get returns the value of name or an error wrapping ErrUnknownKey.
func (s *Store) Get(name string) (string, error) {
	v, ok := s.Lookup(name)
	if !ok {
		return "", apperrors.Wrap(apperrors.ErrCodeNotFound,
			fmt.Sprintf("tunable %q not found", name), ErrUnknownKey)
	}
	return v, nil
}

// Lookup returns the value of name and whether it exists.
func (s *Store) Lookup(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[name]
	return v, ok
}

// Contains reports whether name exists.
func (s *Store) Contains(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Set stores value under name. New names are appended to the enumeration
// order. With write-through enabled the persist sequence runs before Set
// returns; its failures are logged, never returned.
//
// A name rejected by ValidName or a value rejected by ValidValue would
// corrupt the configuration file, so Set logs it and changes nothing.
func (s *Store) Set(ctx context.Context, name, value string) {
	if !ValidName(name) || !ValidValue(value) {
		s.logger.Error("tunable write rejected: name or value cannot be persisted",
			slog.String("name", name),
			slog.String("value", value))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value

	if !s.writeThrough {
		s.logger.Debug("tunable updated in memory", slog.String("name", name))
		return
	}

	s.backupConfig()
	s.rewriteConfig()
	s.apply(ctx, name, value)
}

// Sync backs up and rewrites the configuration file from the whole mapping
// without touching the running kernel. It is a logged no-op when
// write-through is enabled.
func (s *Store) Sync(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeThrough {
		s.logger.Error("sync ignored: write-through is enabled and every write already persisted",
			slog.String("path", s.configPath))
		return
	}

	s.backupConfig()
	s.rewriteConfig()
}

func (s *Store) backupConfig() {
	if !s.backup {
		tunableWrites.WithLabelValues(stepBackup, statusSkipped).Inc()
		return
	}

	if _, err := os.Stat(s.configPath); err != nil {
		tunableWrites.WithLabelValues(stepBackup, statusSkipped).Inc()
		if os.IsNotExist(err) {
			s.logger.Info("no configuration file to back up", slog.String("path", s.configPath))
			return
		}
		s.logger.Error("failed to stat configuration file",
			slog.String("path", s.configPath),
			slog.String("error", err.Error()))
		return
	}

	dst := BackupPath(s.configPath, s.now())
	if err := copyFile(s.configPath, dst); err != nil {
		tunableWrites.WithLabelValues(stepBackup, statusFailure).Inc()
		s.logger.Error("failed to back up configuration file",
			slog.String("path", s.configPath),
			slog.String("backup", dst),
			slog.String("error", err.Error()))
		return
	}

	tunableWrites.WithLabelValues(stepBackup, statusSuccess).Inc()

	attrs := []any{slog.String("backup", dst)}
	if sum, err := checksum.File(dst); err == nil {
		attrs = append(attrs, slog.String("sha256", sum))
	}
	s.logger.Info("configuration file backed up", attrs...)
}

func (s *Store) rewriteConfig() {
	if err := os.WriteFile(s.configPath, []byte(s.render()), 0o644); err != nil {
		tunableWrites.WithLabelValues(stepRewrite, statusFailure).Inc()
		s.logger.Error("failed to rewrite configuration file",
			slog.String("path", s.configPath),
			slog.String("error", err.Error()))
		return
	}

	tunableWrites.WithLabelValues(stepRewrite, statusSuccess).Inc()
	s.logger.Info("configuration file rewritten",
		slog.String("path", s.configPath),
		slog.Int("entries", len(s.names)))
}

func (s *Store) apply(ctx context.Context, name, value string) {
	if _, err := s.runner.Run(ctx, s.binary, "-w", name+"="+value); err != nil {
		tunableWrites.WithLabelValues(stepApply, statusFailure).Inc()
		s.logger.Error("failed to apply tunable to running kernel",
			slog.String("name", name),
			slog.String("value", value),
			slog.String("error", err.Error()))
		return
	}

	tunableWrites.WithLabelValues(stepApply, statusSuccess).Inc()
	s.logger.Info("tunable applied", slog.String("name", name), slog.String("value", value))
}

// BackupPath returns the backup file name for path at t.
func BackupPath(path string, t time.Time) string {
	return fmt.Sprintf("%s.%d%s", path, t.Unix(), backupSuffix)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// render serializes every entry as "name = value" lines. Callers hold s.mu.
func (s *Store) render() string {
	var b strings.Builder
	for _, n := range s.names {
		b.WriteString(n)
		b.WriteString(" = ")
		b.WriteString(s.values[n])
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the store in configuration file format.
func (s *Store) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render()
}

// Names returns tunable names in enumeration order.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Entries returns every tunable in enumeration order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, 0, len(s.names))
	for _, n := range s.names {
		out = append(out, Entry{Name: n, Value: s.values[n]})
	}
	return out
}

// Len returns the number of tunables.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.names)
}

// WriteThrough reports whether Set persists immediately.
func (s *Store) WriteThrough() bool {
	return s.writeThrough
}

// ConfigPath returns the persisted configuration file.
func (s *Store) ConfigPath() string {
	return s.configPath
}
