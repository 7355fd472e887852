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

package server

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/people/pkg/defaults"
)

// Environment variables read by NewConfig.
const (
	EnvPort               = "PORT"
	EnvShutdownTimeout    = "SHUTDOWN_TIMEOUT_SECONDS"
	EnvRateLimit          = "RATE_LIMIT"
	EnvRateLimitBurst     = "RATE_LIMIT_BURST"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Routes mounts application sub-routers by path prefix. Every route
	// registered here runs behind the full middleware chain.
	Routes map[string]func(chi.Router)

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// CORS
	CORSAllowedOrigins []string

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with defaults, overridden by environment
// variables where set. Malformed values are logged and ignored.
func NewConfig() *Config {
	cfg := &Config{
		Name:               "server",
		Version:            "undefined",
		Routes:             map[string]func(chi.Router){},
		Address:            "",
		Port:               defaults.ServerPort,
		RateLimit:          defaults.RateLimit,
		RateLimitBurst:     defaults.RateLimitBurst,
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        defaults.ServerReadTimeout,
		ReadHeaderTimeout:  defaults.ServerReadHeaderTimeout,
		WriteTimeout:       defaults.ServerWriteTimeout,
		IdleTimeout:        defaults.ServerIdleTimeout,
		ShutdownTimeout:    defaults.ServerShutdownTimeout,
	}

	if port, ok := envInt(EnvPort); ok && port >= 0 && port <= 65535 {
		cfg.Port = port
	}

	// Allow customization of shutdown timeout to match K8s eviction grace period
	if seconds, ok := envInt(EnvShutdownTimeout); ok && seconds > 0 {
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}

	if v := strings.TrimSpace(os.Getenv(EnvRateLimit)); v != "" {
		if limit, err := strconv.ParseFloat(v, 64); err == nil && limit > 0 {
			cfg.RateLimit = rate.Limit(limit)
		} else {
			slog.Warn("ignoring invalid environment value", "name", EnvRateLimit, "value", v)
		}
	}

	if burst, ok := envInt(EnvRateLimitBurst); ok && burst > 0 {
		cfg.RateLimitBurst = burst
	}

	if v := strings.TrimSpace(os.Getenv(EnvCORSAllowedOrigins)); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.CORSAllowedOrigins = origins
		}
	}

	return cfg
}

func envInt(name string) (int, bool) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring invalid environment value", "name", name, "value", v)
		return 0, false
	}
	return n, true
}
