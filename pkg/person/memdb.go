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
	"fmt"

	"github.com/hashicorp/go-memdb"

	cnserrors "github.com/NVIDIA/people/pkg/errors"
)

const (
	tablePerson = "person"
	indexID     = "id"
)

// Schema returns the go-memdb schema used by MemDBStore.
func Schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tablePerson: {
				Name: tablePerson,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}
}

// MemDBStore implements Store on an immutable-radix backed go-memdb table.
// Readers see consistent snapshots; writers are serialized by memdb.
type MemDBStore struct {
	db *memdb.MemDB
}

// NewMemDBStore creates the table and inserts items in a single transaction.
func NewMemDBStore(items ...Person) (*MemDBStore, error) {
	db, err := memdb.NewMemDB(Schema())
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to create person table", err)
	}

	s := &MemDBStore{db: db}
	txn := db.Txn(true)
	defer txn.Abort()
	for _, p := range items {
		if err := insert(txn, p); err != nil {
			return nil, err
		}
	}
	txn.Commit()

	return s, nil
}

// List returns all people ordered by id.
func (s *MemDBStore) List() ([]Person, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tablePerson, indexID)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to list people", err)
	}

	out := make([]Person, 0)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		p, err := asPerson(obj)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	// the id index orders by encoded bytes, not numerically
	sortByID(out)
	return out, nil
}

// Get looks up a person by id.
func (s *MemDBStore) Get(id int) (Person, bool, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(tablePerson, indexID, id)
	if err != nil {
		return Person{}, false, cnserrors.WrapWithContext(cnserrors.ErrCodeInternal,
			"failed to read person", err, map[string]any{"id": id})
	}
	if obj == nil {
		return Person{}, false, nil
	}

	p, err := asPerson(obj)
	if err != nil {
		return Person{}, false, err
	}
	return p, true, nil
}

// Upsert stores p under p.ID in its own write transaction.
func (s *MemDBStore) Upsert(p Person) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := insert(txn, p); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func insert(txn *memdb.Txn, p Person) error {
	// store a private copy so callers cannot mutate committed state
	stored := p
	if err := txn.Insert(tablePerson, &stored); err != nil {
		return cnserrors.WrapWithContext(cnserrors.ErrCodeInternal,
			"failed to store person", err, map[string]any{"id": p.ID})
	}
	return nil
}

func asPerson(obj any) (Person, error) {
	p, ok := obj.(*Person)
	if !ok {
		return Person{}, cnserrors.New(cnserrors.ErrCodeInternal,
			fmt.Sprintf("unexpected object of type %T in person table", obj))
	}
	return *p, nil
}
