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

// Package person implements the person resource of the people service: the
// Person entity, the Store that holds it, and the HTTP handler that exposes
// list, get-by-id and create.
//
// # Store
//
// A Store maps integer ids to Person values. Two backends are provided:
//
//   - MemoryStore: a map guarded by a single sync.RWMutex
//   - MemDBStore: a hashicorp/go-memdb table with a unique id index
//
// Both are safe for concurrent use. Upsert is keyed by Person.ID: an existing
// entry is replaced, a new id is inserted. Looking up an absent id is not an
// error.
//
//	store, err := person.NewStore(person.BackendMemory, person.Seed()...)
//
// # HTTP
//
// Handler.Routes registers the resource on a chi router mounted at /person:
//
//	GET  /person/{id}  200 + entity, 404 (empty body) when absent, 400 on a non-integer id
//	GET  /person/      200 + JSON array of all entities
//	POST /person/      200 (empty body) after upsert, 400 on an undecodable body
//
// Create accepts JSON (default) or YAML bodies, chosen by Content-Type:
//
//	curl -X POST http://localhost:8080/person/ \
//	  -H "Content-Type: application/json" \
//	  -d '{"id":4,"name":"New"}'
package person
