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

// Package server provides the HTTP server shared by the people services.
//
// The server owns everything that is not application specific: routing,
// the middleware chain, health and readiness probes, Prometheus metrics,
// CORS, structured error responses and graceful shutdown. Applications
// mount their routes with WithRoutes and receive the middleware chain
// for free.
//
// # Usage
//
//	h := person.NewHandler(store)
//	s := server.New(
//	    server.WithName("peopled"),
//	    server.WithVersion(version),
//	    server.WithRoutes("/person", h.Routes),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Middleware
//
// Routes mounted with WithRoutes run behind, outermost first:
//
//	metrics -> version -> request ID -> panic recovery -> rate limit -> logging
//
// System endpoints (/, /health, /ready, /metrics) bypass the chain so
// probes are never rate limited.
//
// # Observability
//
// Request ID Tracking:
//
//	All requests accept an optional X-Request-Id header (UUID format).
//	If not provided, or not a UUID, the server generates one.
//	The request ID is returned in the X-Request-Id response header
//	and included in all error responses for tracing.
//
// Rate Limiting:
//
//	Response headers indicate rate limit status:
//	  X-RateLimit-Limit: Requests allowed per second
//	  X-RateLimit-Remaining: Tokens left in the bucket
//	  X-RateLimit-Reset: Unix timestamp when the bucket refills
//
//	When rate limited, returns 429 with Retry-After header.
//
// # Error Handling
//
// Errors produced by the server return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "Person id must be an integer",
//	  "details": {"id": "abc"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// # Configuration
//
// NewConfig reads PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT,
// RATE_LIMIT_BURST and CORS_ALLOWED_ORIGINS from the environment.
package server
