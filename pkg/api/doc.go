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

// Package api wires the people service together and runs it.
//
// Serve configures structured logging, selects and seeds the person store,
// mounts the person routes under /person and delegates the HTTP lifecycle
// to pkg/server.
//
// # Usage
//
//	if err := api.Serve(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET  /person/      - List every stored person
//   - GET  /person/{id}  - Fetch one person; 404 with an empty body if absent
//   - POST /person/      - Insert or replace a person (JSON or YAML body)
//
// System Endpoints (no rate limiting):
//   - GET /        - Service info
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl -X POST http://localhost:8080/person/ \
//	  -H "Content-Type: application/json" \
//	  -d '{"id":4,"name":"New"}'
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - STORE_BACKEND: memory or memdb (default: memory)
//   - SEED_DATA: preload the three seed people (default: true)
//
// See pkg/server for rate limit, CORS and shutdown settings.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/people/pkg/api.version=1.0.0'"
package api
