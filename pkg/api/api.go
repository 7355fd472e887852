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
	"os"
	"strconv"
	"strings"

	"github.com/NVIDIA/people/pkg/logging"
	"github.com/NVIDIA/people/pkg/person"
	"github.com/NVIDIA/people/pkg/server"
)

const (
	name           = "peopled"
	versionDefault = "dev"

	// EnvStoreBackend selects the person store backend (memory or memdb).
	EnvStoreBackend = "STORE_BACKEND"
	// EnvSeedData controls whether the store starts with the seed people.
	EnvSeedData = "SEED_DATA"

	// PersonRoutePrefix is where the person resource is mounted.
	PersonRoutePrefix = "/person"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/people/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Options override the environment configuration. Zero values keep
// whatever the environment (or its defaults) says.
type Options struct {
	// Port overrides PORT when > 0.
	Port int
	// Backend overrides STORE_BACKEND when non-empty.
	Backend string
	// Seed overrides SEED_DATA when non-nil.
	Seed *bool
	// LogLevel overrides LOG_LEVEL when non-empty.
	LogLevel string
}

// Serve starts the API server and blocks until ctx is cancelled or the
// process is signalled. Configuration comes from the environment.
func Serve(ctx context.Context) error {
	return ServeWithOptions(ctx, Options{})
}

// ServeWithOptions is Serve with explicit overrides.
func ServeWithOptions(ctx context.Context, opts Options) error {
	if opts.LogLevel != "" {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, opts.LogLevel)
	} else {
		logging.SetDefaultStructuredLogger(name, version)
	}
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s, err := NewServer(opts)
	if err != nil {
		slog.Error("failed to configure server", "error", err)
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewServer builds the store and a server with the person routes mounted,
// without starting it.
func NewServer(opts Options) (*server.Server, error) {
	store, err := newStore(opts)
	if err != nil {
		return nil, err
	}

	cfg := server.NewConfig()
	if opts.Port > 0 {
		cfg.Port = opts.Port
	}

	h := person.NewHandler(store)

	return server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(version),
		server.WithRoutes(PersonRoutePrefix, h.Routes),
	), nil
}

func newStore(opts Options) (person.Store, error) {
	backendName := opts.Backend
	if backendName == "" {
		backendName = os.Getenv(EnvStoreBackend)
	}
	backend, err := person.ParseBackend(backendName)
	if err != nil {
		return nil, err
	}

	seed := seedFromEnv()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	var items []person.Person
	if seed {
		items = person.Seed()
	}

	store, err := person.NewStore(backend, items...)
	if err != nil {
		return nil, err
	}

	slog.Info("store initialized",
		"backend", string(backend),
		"seeded", seed,
		"count", len(items),
	)
	return store, nil
}

// seedFromEnv reads SEED_DATA, defaulting to true when unset or invalid.
func seedFromEnv() bool {
	v := strings.TrimSpace(os.Getenv(EnvSeedData))
	if v == "" {
		return true
	}
	seed, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("ignoring invalid environment value", "name", EnvSeedData, "value", v)
		return true
	}
	return seed
}
