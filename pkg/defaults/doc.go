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

// Package defaults provides centralized configuration constants for the
// people service.
//
// # Categories
//
//   - Server timeouts: HTTP server configuration and graceful shutdown
//   - Server limits: rate limiting and request body size
//   - HTTP client timeouts: outbound requests made by pkg/client and the CLI
//
// # Usage
//
//	srv := &http.Server{
//	    ReadTimeout:       defaults.ServerReadTimeout,
//	    ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
//	}
//
// Environment variables read by pkg/server and pkg/api override some of these
// values at runtime; the constants here are the fallbacks.
package defaults
