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
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestNewConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		cfg := NewConfig()

		if cfg.Address != "" {
			t.Errorf("expected empty address, got %s", cfg.Address)
		}

		if cfg.Port != 8080 {
			t.Errorf("expected port 8080, got %d", cfg.Port)
		}

		if cfg.RateLimit != 100 {
			t.Errorf("expected rate limit 100, got %v", cfg.RateLimit)
		}

		if cfg.RateLimitBurst != 200 {
			t.Errorf("expected rate limit burst 200, got %d", cfg.RateLimitBurst)
		}

		if cfg.ReadTimeout != 10*time.Second {
			t.Errorf("expected read timeout 10s, got %v", cfg.ReadTimeout)
		}

		if cfg.WriteTimeout != 30*time.Second {
			t.Errorf("expected write timeout 30s, got %v", cfg.WriteTimeout)
		}

		if cfg.IdleTimeout != 120*time.Second {
			t.Errorf("expected idle timeout 120s, got %v", cfg.IdleTimeout)
		}

		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
		}

		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Errorf("expected wildcard CORS origin, got %v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("custom port from environment", func(t *testing.T) {
		t.Setenv(EnvPort, "9090")

		if cfg := NewConfig(); cfg.Port != 9090 {
			t.Errorf("expected port 9090 from env, got %d", cfg.Port)
		}
	})

	t.Run("invalid port from environment uses default", func(t *testing.T) {
		t.Setenv(EnvPort, "invalid")

		if cfg := NewConfig(); cfg.Port != 8080 {
			t.Errorf("expected default port 8080 for invalid env, got %d", cfg.Port)
		}
	})

	t.Run("out of range port uses default", func(t *testing.T) {
		t.Setenv(EnvPort, "70000")

		if cfg := NewConfig(); cfg.Port != 8080 {
			t.Errorf("expected default port 8080 for out of range env, got %d", cfg.Port)
		}
	})

	t.Run("shutdown timeout from environment", func(t *testing.T) {
		t.Setenv(EnvShutdownTimeout, "5")

		if cfg := NewConfig(); cfg.ShutdownTimeout != 5*time.Second {
			t.Errorf("expected shutdown timeout 5s, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("rate limit from environment", func(t *testing.T) {
		t.Setenv(EnvRateLimit, "2.5")
		t.Setenv(EnvRateLimitBurst, "7")

		cfg := NewConfig()
		if cfg.RateLimit != rate.Limit(2.5) {
			t.Errorf("expected rate limit 2.5, got %v", cfg.RateLimit)
		}
		if cfg.RateLimitBurst != 7 {
			t.Errorf("expected burst 7, got %d", cfg.RateLimitBurst)
		}
	})

	t.Run("non-positive rate limit ignored", func(t *testing.T) {
		t.Setenv(EnvRateLimit, "0")
		t.Setenv(EnvRateLimitBurst, "-1")

		cfg := NewConfig()
		if cfg.RateLimit != 100 || cfg.RateLimitBurst != 200 {
			t.Errorf("expected defaults, got limit=%v burst=%d", cfg.RateLimit, cfg.RateLimitBurst)
		}
	})

	t.Run("cors origins from environment", func(t *testing.T) {
		t.Setenv(EnvCORSAllowedOrigins, " https://a.example , ,https://b.example")

		cfg := NewConfig()
		want := []string{"https://a.example", "https://b.example"}
		if len(cfg.CORSAllowedOrigins) != len(want) {
			t.Fatalf("expected %v, got %v", want, cfg.CORSAllowedOrigins)
		}
		for i := range want {
			if cfg.CORSAllowedOrigins[i] != want[i] {
				t.Errorf("origin %d: expected %s, got %s", i, want[i], cfg.CORSAllowedOrigins[i])
			}
		}
	})
}
