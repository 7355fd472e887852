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
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/people/pkg/person"
	"github.com/NVIDIA/people/pkg/server"
)

func newPeopleServer(t *testing.T) (*httptest.Server, *person.MemoryStore) {
	t.Helper()
	store := person.NewMemoryStore(person.Seed()...)
	h := person.NewHandler(store)
	ts := httptest.NewServer(server.New(server.WithRoutes("/person", h.Routes)).Handler())
	t.Cleanup(ts.Close)
	return ts, store
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	root := newRootCmd()
	root.Writer = io.Discard
	root.ErrWriter = io.Discard
	return root.Run(context.Background(), append([]string{name}, args...))
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return b
}

func TestListCommand(t *testing.T) {
	ts, _ := newPeopleServer(t)
	out := filepath.Join(t.TempDir(), "people.json")

	require.NoError(t, run(t, "list", "--server", ts.URL, "--output", out))

	var people []person.Person
	require.NoError(t, json.Unmarshal(readFile(t, out), &people))
	assert.ElementsMatch(t, person.Seed(), people)
}

func TestListCommandServerFromEnv(t *testing.T) {
	ts, _ := newPeopleServer(t)
	t.Setenv(EnvServer, ts.URL)
	out := filepath.Join(t.TempDir(), "people.yaml")

	require.NoError(t, run(t, "list", "--format", "yaml", "--output", out))

	var people []person.Person
	require.NoError(t, yaml.Unmarshal(readFile(t, out), &people))
	assert.Len(t, people, 3)
}

func TestListCommandTable(t *testing.T) {
	ts, _ := newPeopleServer(t)
	out := filepath.Join(t.TempDir(), "people.txt")

	require.NoError(t, run(t, "list", "--server", ts.URL, "--format", "table", "--output", out))

	text := string(readFile(t, out))
	assert.Contains(t, text, "ID")
	assert.Contains(t, text, "NAME")
	assert.Contains(t, text, "Some cool name #2")
}

func TestGetCommand(t *testing.T) {
	ts, _ := newPeopleServer(t)

	t.Run("found", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "person.json")
		require.NoError(t, run(t, "get", "--server", ts.URL, "--id", "2", "--output", out))

		var p person.Person
		require.NoError(t, json.Unmarshal(readFile(t, out), &p))
		assert.Equal(t, person.Person{ID: 2, Name: "Some cool name #2"}, p)
	})

	t.Run("not found", func(t *testing.T) {
		err := run(t, "get", "--server", ts.URL, "--id", "99")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NOT_FOUND")
	})

	t.Run("missing id", func(t *testing.T) {
		assert.Error(t, run(t, "get", "--server", ts.URL))
	})

	t.Run("bad format", func(t *testing.T) {
		err := run(t, "get", "--server", ts.URL, "--id", "1", "--format", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})
}

func TestCreateCommand(t *testing.T) {
	t.Run("from flags", func(t *testing.T) {
		ts, store := newPeopleServer(t)
		out := filepath.Join(t.TempDir(), "created.json")

		require.NoError(t, run(t, "create", "--server", ts.URL, "--id", "4", "--name", "New", "--output", out))

		p, found, err := store.Get(4)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "New", p.Name)

		var echoed person.Person
		require.NoError(t, json.Unmarshal(readFile(t, out), &echoed))
		assert.Equal(t, p, echoed)
	})

	t.Run("from file overwrites", func(t *testing.T) {
		ts, store := newPeopleServer(t)
		dir := t.TempDir()
		in := filepath.Join(dir, "person.yaml")
		require.NoError(t, os.WriteFile(in, []byte("id: 1\nname: Renamed\n"), 0o600))

		require.NoError(t, run(t, "create", "--server", ts.URL, "--file", in,
			"--output", filepath.Join(dir, "out.json")))

		p, _, err := store.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", p.Name)
	})

	t.Run("server unreachable", func(t *testing.T) {
		ts, _ := newPeopleServer(t)
		url := ts.URL
		ts.Close()

		err := run(t, "create", "--server", url, "--id", "4", "--name", "New")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create person")
	})
}

func TestPersonFromCmd(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"id":9,"name":"Nine"}`), 0o600))
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"id":"nine"}`), 0o600))

	tests := []struct {
		name    string
		args    []string
		want    *person.Person
		wantErr string
	}{
		{"flags", []string{"--id", "3", "--name", "Three"}, &person.Person{ID: 3, Name: "Three"}, ""},
		{"id only", []string{"--id", "3"}, &person.Person{ID: 3}, ""},
		{"file", []string{"--file", good}, &person.Person{ID: 9, Name: "Nine"}, ""},
		{"missing id", []string{"--name", "x"}, nil, "--id is required"},
		{"file and flags", []string{"--file", good, "--id", "1"}, nil, "cannot be combined"},
		{"bad file", []string{"--file", bad}, nil, "failed to load person"},
		{"missing file", []string{"--file", filepath.Join(dir, "nope.json")}, nil, "failed to load person"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *person.Person
			var gotErr error
			cmd := &cli.Command{
				Name: "test",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id"},
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "file"},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, gotErr = personFromCmd(c)
					return nil
				},
			}
			require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, tt.args...)))

			if tt.wantErr != "" {
				require.Error(t, gotErr)
				assert.True(t, strings.Contains(gotErr.Error(), tt.wantErr), gotErr.Error())
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServeCommandRejectsUnknownStore(t *testing.T) {
	err := run(t, "serve", "--store", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store backend")
}
