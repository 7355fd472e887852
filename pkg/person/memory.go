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

package person

import "sync"

// MemoryStore implements Store with a map guarded by a single RWMutex.
type MemoryStore struct {
	mu     sync.RWMutex
	people map[int]Person
}

// NewMemoryStore returns a MemoryStore preloaded with items. Later items
// overwrite earlier ones with the same id.
func NewMemoryStore(items ...Person) *MemoryStore {
	s := &MemoryStore{people: make(map[int]Person, len(items))}
	for _, p := range items {
		s.people[p.ID] = p
	}
	return s
}

// List returns all people ordered by id.
func (s *MemoryStore) List() ([]Person, error) {
	s.mu.RLock()
	out := make([]Person, 0, len(s.people))
	for _, p := range s.people {
		out = append(out, p)
	}
	s.mu.RUnlock()

	sortByID(out)
	return out, nil
}

// Get looks up a person by id.
func (s *MemoryStore) Get(id int) (Person, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.people[id]
	return p, ok, nil
}

// Upsert stores p under p.ID. It never fails.
func (s *MemoryStore) Upsert(p Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.people[p.ID] = p
	return nil
}
