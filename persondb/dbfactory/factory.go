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

// Package dbfactory opens person databases as described by the
// configuration. Users of this package don't need to know which
// implementation they're using.
package dbfactory

import (
	"context"
	"fmt"

	"github.com/retog/rdfwrapper-example/config"
	"github.com/retog/rdfwrapper-example/persondb"
	"github.com/retog/rdfwrapper-example/persondb/memdb"
	"github.com/retog/rdfwrapper-example/persondb/sqldb"
	log "github.com/sirupsen/logrus"
)

// Store is a person database that can also be loaded with people and closed.
type Store interface {
	persondb.Database
	// Import adds the given people to the store. Each person with an empty ID
	// is assigned one. onStored, if not nil, is called once per person
	// stored.
	Import(ctx context.Context, people []persondb.Person, onStored func()) error
	// Close releases the store's resources. The store may not be used
	// afterwards.
	Close() error
}

// A storeOpener creates stores. It takes the same arguments as Open.
type storeOpener func(context.Context, *config.Store) (Store, error)

// All of the store implementations are registered here. The map key is the
// same as config.Store.Type.
var impls = map[string]storeOpener{
	"memory": openMemory,
	"sqlite": openSQLite,
}

// Open returns a store as defined by the configuration. It returns an error if
// the configuration is invalid or if the underlying implementation cannot open
// such a store.
func Open(ctx context.Context, cfg *config.Store) (Store, error) {
	open, ok := impls[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("store type not supported: %q", cfg.Type)
	}
	store, err := open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %v store: %v", cfg.Type, err)
	}
	return store, nil
}

type memoryStore struct {
	*memdb.DB
}

func (s memoryStore) Import(ctx context.Context, people []persondb.Person, onStored func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if onStored == nil {
		return s.AddAll(people)
	}
	for _, p := range people {
		if _, err := s.Add(p); err != nil {
			return err
		}
		onStored()
	}
	return nil
}

func (memoryStore) Close() error {
	return nil
}

func openMemory(ctx context.Context, cfg *config.Store) (Store, error) {
	store := memoryStore{memdb.New()}
	if cfg.DataFile == "" {
		return store, nil
	}
	people, err := persondb.LoadFile(cfg.DataFile)
	if err != nil {
		return nil, err
	}
	if err := store.Import(ctx, people, nil); err != nil {
		return nil, fmt.Errorf("error loading people from %v: %v", cfg.DataFile, err)
	}
	log.WithFields(log.Fields{
		"dataFile": cfg.DataFile,
		"people":   len(people),
	}).Info("Loaded people into memory store")
	return store, nil
}

func openSQLite(ctx context.Context, cfg *config.Store) (Store, error) {
	return sqldb.Open(cfg.Path, sqldb.Options{BatchSize: cfg.BatchSize})
}
