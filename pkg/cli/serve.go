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

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/people/pkg/api"
	"github.com/NVIDIA/people/pkg/person"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the people API server",
		Description: `Starts the HTTP server exposing the person resource under /person.
Flags override the corresponding environment variables (PORT, STORE_BACKEND,
SEED_DATA). The server stops gracefully on SIGINT or SIGTERM.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Usage: "port to listen on (default: $PORT or 8080)",
			},
			&cli.StringFlag{
				Name: "store",
				Usage: fmt.Sprintf("store backend (supported values: %s)",
					person.SupportedBackends()),
			},
			&cli.BoolFlag{
				Name:  "seed",
				Value: true,
				Usage: "preload the seed people",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := api.Options{
				Port:     cmd.Int("port"),
				Backend:  cmd.String("store"),
				LogLevel: logLevel(cmd),
			}
			if cmd.IsSet("seed") {
				seed := cmd.Bool("seed")
				opts.Seed = &seed
			}
			if opts.Backend != "" {
				if _, err := person.ParseBackend(opts.Backend); err != nil {
					return err
				}
			}

			return api.ServeWithOptions(ctx, opts)
		},
	}
}
