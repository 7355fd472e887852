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

// Package cli implements the people command line.
//
// # Commands
//
// serve - Run the API server:
//
//	people serve [--port 8080] [--store memory|memdb] [--seed=false]
//
// list - List every person:
//
//	people list [--server URL] [--format json|yaml|table] [--output FILE]
//
// get - Fetch one person:
//
//	people get --id 1
//
// create - Create or replace a person:
//
//	people create --id 4 --name "New"
//	people create --file person.yaml
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (default: info)
//	--debug        Shorthand for --log-level=debug
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL      Default for --log-level
//	PEOPLE_SERVER  Default for --server (default: http://localhost:8080)
//
// serve also honors the server environment variables documented in pkg/api.
package cli
