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

	"github.com/NVIDIA/people/pkg/client"
	"github.com/NVIDIA/people/pkg/person"
	"github.com/NVIDIA/people/pkg/serializer"
)

func newClient(cmd *cli.Command) (*client.Client, error) {
	return client.New(cmd.String("server"),
		client.WithUserAgent(fmt.Sprintf("%s/%s", name, version)))
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List every person stored on the server",
		Flags: []cli.Flag{
			serverFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}

			people, err := c.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list people: %w", err)
			}

			return writeOutput(ctx, cmd, people)
		},
	}
}

func getCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get a single person by id",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "id",
				Usage:    "person id",
				Required: true,
			},
			serverFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}

			p, err := c.Get(ctx, cmd.Int("id"))
			if err != nil {
				return fmt.Errorf("failed to get person: %w", err)
			}

			return writeOutput(ctx, cmd, p)
		},
	}
}

func createCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create or replace a person",
		Description: `Stores a person on the server. An existing person with the same id is
replaced. The person is taken from --id and --name, or from a JSON or YAML
file given with --file.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "id",
				Usage: "person id",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "person name",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "path to a JSON or YAML person document",
			},
			serverFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p, err := personFromCmd(cmd)
			if err != nil {
				return err
			}

			c, err := newClient(cmd)
			if err != nil {
				return err
			}

			if err := c.Create(ctx, *p); err != nil {
				return fmt.Errorf("failed to create person: %w", err)
			}

			return writeOutput(ctx, cmd, p)
		},
	}
}

// personFromCmd builds the person from --file, or from --id and --name.
func personFromCmd(cmd *cli.Command) (*person.Person, error) {
	if path := cmd.String("file"); path != "" {
		if cmd.IsSet("id") || cmd.IsSet("name") {
			return nil, fmt.Errorf("--file cannot be combined with --id or --name")
		}
		p, err := serializer.FromFile[person.Person](path)
		if err != nil {
			return nil, fmt.Errorf("failed to load person from %q: %w", path, err)
		}
		return p, nil
	}

	if !cmd.IsSet("id") {
		return nil, fmt.Errorf("--id is required unless --file is given")
	}
	return &person.Person{
		ID:   cmd.Int("id"),
		Name: cmd.String("name"),
	}, nil
}
