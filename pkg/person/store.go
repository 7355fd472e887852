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

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	cnserrors "github.com/NVIDIA/people/pkg/errors"
)

// Store exposes person persistence to the HTTP handler.
// Implementations must be safe for concurrent use.
type Store interface {
	// List returns every stored person. Callers must not rely on ordering.
	List() ([]Person, error)
	// Get returns the person stored under id. found is false when no such
	// person exists; that is not an error.
	Get(id int) (p Person, found bool, err error)
	// Upsert inserts p, or replaces the person already stored under p.ID.
	Upsert(p Person) error
}

// Backend names a Store implementation.
type Backend string

const (
	// BackendMemory selects MemoryStore.
	BackendMemory Backend = "memory"
	// BackendMemDB selects MemDBStore.
	BackendMemDB Backend = "memdb"
)

// SupportedBackends returns the names accepted by NewStore.
func SupportedBackends() []string {
	return []string{string(BackendMemory), string(BackendMemDB)}
}

// ParseBackend validates a backend name. Empty selects BackendMemory.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendMemory, nil
	case BackendMemory, BackendMemDB:
		return b, nil
	default:
		return "", cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported store backend %q", s),
			map[string]any{"supported": SupportedBackends()})
	}
}

// NewStore builds the named backend preloaded with items.
func NewStore(backend Backend, items ...Person) (Store, error) {
	switch backend {
	case BackendMemory, "":
		return NewMemoryStore(items...), nil
	case BackendMemDB:
		s, err := NewMemDBStore(items...)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported store backend %q", backend),
			map[string]any{"supported": SupportedBackends()})
	}
}

func sortByID(people []Person) {
	slices.SortFunc(people, func(a, b Person) int {
		return cmp.Compare(a.ID, b.ID)
	})
}
