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

// Package logging provides structured logging utilities for the people
// service and CLI.
//
// It wraps log/slog with a JSON handler on stderr, module and version
// attributes on every record, LOG_LEVEL handling, and source locations for
// debug output.
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("peopled", version)
//	    slog.Info("server starting", "port", 8080)
//	}
//
// Setting an explicit level (the CLI does this from --log-level):
//
//	logging.SetDefaultStructuredLoggerWithLevel("people", version, "debug")
//
// # Log Levels
//
// Supported levels (case-insensitive): debug, info (default), warn/warning,
// error. Unknown values fall back to info.
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "peopled",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
package logging
