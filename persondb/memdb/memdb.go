// Copyright 2019 eBay Inc.
// Primary authors: Simon Fell, Diego Ongaro,
//                  Raymond Kroeker, and Sathish Kandasamy.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package memdb is an in-memory persondb.Database. It's used for small data
// sets loaded from files and throughout unit tests.
package memdb

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/btree"
	"github.com/google/uuid"
	"github.com/retog/rdfwrapper-example/persondb"
	log "github.com/sirupsen/logrus"
)

// DB is an in-memory persondb.Database. Stored people are never modified in
// place: Update swaps in a new copy. This means records handed out by queries
// never change underneath their readers. DB is safe for concurrent use.
type DB struct {
	lock sync.RWMutex
	// byID holds idItem values and owns the records.
	byID *btree.BTree
	// byFirstName and byLastName hold attrItem values. People without the
	// attribute are absent from the index.
	byFirstName *btree.BTree
	byLastName  *btree.BTree
}

// New returns an empty DB.
func New() *DB {
	return &DB{
		byID:        btree.New(16),
		byFirstName: btree.New(16),
		byLastName:  btree.New(16),
	}
}

// idItem values are stored in the byID btree.
type idItem struct {
	person *persondb.Person
}

func (item idItem) Less(other btree.Item) bool {
	return item.person.ID < other.(idItem).person.ID
}

// attrItem values are stored in the attribute index btrees, ordered by value
// and then ID so that people sharing a value come out in ID order.
type attrItem struct {
	value string
	id    string
}

func (item attrItem) Less(other btree.Item) bool {
	o := other.(attrItem)
	if item.value != o.value {
		return item.value < o.value
	}
	return item.id < o.id
}

// Add stores a copy of p. If p.ID is empty, a random ID is assigned. It
// returns the ID of the stored person, or an error if the ID is already
// taken.
func (db *DB) Add(p persondb.Person) (string, error) {
	stored := p.Clone()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	db.lock.Lock()
	defer db.lock.Unlock()
	if db.byID.Has(idItem{stored}) {
		return "", fmt.Errorf("person with ID %q already exists", stored.ID)
	}
	db.insertLocked(stored)
	return stored.ID, nil
}

// AddAll stores copies of all the given people, stopping at the first error.
func (db *DB) AddAll(people []persondb.Person) error {
	for _, p := range people {
		if _, err := db.Add(p); err != nil {
			return err
		}
	}
	log.WithField("count", len(people)).Debug("memdb: added people")
	return nil
}

// Update replaces the person with the given ID by the result of applying fn
// to a copy of it. fn may not change the ID. Records returned by earlier
// queries are unaffected.
func (db *DB) Update(id string, fn func(p *persondb.Person)) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	old := db.getLocked(id)
	if old == nil {
		return fmt.Errorf("no person with ID %q", id)
	}
	updated := old.Clone()
	fn(updated)
	if updated.ID != id {
		return fmt.Errorf("update may not change ID %q to %q", id, updated.ID)
	}
	db.removeLocked(old)
	db.insertLocked(updated)
	return nil
}

// Remove deletes the person with the given ID. It returns true if the person
// existed.
func (db *DB) Remove(id string) bool {
	db.lock.Lock()
	defer db.lock.Unlock()
	old := db.getLocked(id)
	if old == nil {
		return false
	}
	db.removeLocked(old)
	return true
}

// Get returns the person with the given ID, or nil if there isn't one.
func (db *DB) Get(id string) *persondb.Person {
	db.lock.RLock()
	defer db.lock.RUnlock()
	return db.getLocked(id)
}

// Len returns the number of people stored.
func (db *DB) Len() int {
	db.lock.RLock()
	defer db.lock.RUnlock()
	return db.byID.Len()
}

func (db *DB) getLocked(id string) *persondb.Person {
	item := db.byID.Get(idItem{&persondb.Person{ID: id}})
	if item == nil {
		return nil
	}
	return item.(idItem).person
}

func (db *DB) insertLocked(p *persondb.Person) {
	db.byID.ReplaceOrInsert(idItem{p})
	if p.FirstName != nil {
		db.byFirstName.ReplaceOrInsert(attrItem{*p.FirstName, p.ID})
	}
	if p.LastName != nil {
		db.byLastName.ReplaceOrInsert(attrItem{*p.LastName, p.ID})
	}
}

func (db *DB) removeLocked(p *persondb.Person) {
	db.byID.Delete(idItem{p})
	if p.FirstName != nil {
		db.byFirstName.Delete(attrItem{*p.FirstName, p.ID})
	}
	if p.LastName != nil {
		db.byLastName.Delete(attrItem{*p.LastName, p.ID})
	}
}

// List implements persondb.Database. People are returned in ID order.
func (db *DB) List(ctx context.Context) persondb.Iterator {
	if err := ctx.Err(); err != nil {
		return persondb.ErrorIterator(err)
	}
	db.lock.RLock()
	defer db.lock.RUnlock()
	res := make([]persondb.Record, 0, db.byID.Len())
	db.byID.Ascend(func(item btree.Item) bool {
		res = append(res, item.(idItem).person)
		return true
	})
	return persondb.NewSliceIterator(res...)
}

// FilterByLastName implements persondb.Database.
func (db *DB) FilterByLastName(ctx context.Context, lastName string) persondb.Iterator {
	return db.filter(ctx, db.byLastName, lastName)
}

// FilterByFirstName implements persondb.Database.
func (db *DB) FilterByFirstName(ctx context.Context, firstName string) persondb.Iterator {
	return db.filter(ctx, db.byFirstName, firstName)
}

// filter returns a snapshot of the people whose entry in 'index' equals
// 'value'.
func (db *DB) filter(ctx context.Context, index *btree.BTree, value string) persondb.Iterator {
	if err := ctx.Err(); err != nil {
		return persondb.ErrorIterator(err)
	}
	db.lock.RLock()
	defer db.lock.RUnlock()
	var res []persondb.Record
	index.AscendGreaterOrEqual(attrItem{value: value}, func(item btree.Item) bool {
		entry := item.(attrItem)
		if entry.value != value {
			return false
		}
		res = append(res, db.getLocked(entry.id))
		return true
	})
	return persondb.NewSliceIterator(res...)
}
