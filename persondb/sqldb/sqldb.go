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

// Package sqldb is a persondb.Database backed by SQLite. The first_name and
// last_name columns are indexed; there is no index on notes.
package sqldb

import (
	"context"
	"database/sql"
	_ "embed" // for schema.sql
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/retog/rdfwrapper-example/persondb"
	"github.com/retog/rdfwrapper-example/util/errors"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

//go:embed schema.sql
var schemaSQL string

// DefaultBatchSize is the number of rows fetched per query when Options
// doesn't say otherwise.
const DefaultBatchSize = 256

// Options control how a DB is opened. The zero value is usable.
type Options struct {
	// The number of rows each query fetches at a time. If zero,
	// DefaultBatchSize is used.
	BatchSize int
}

// DB is a persondb.Database stored in a SQLite database file.
type DB struct {
	db        *sql.DB
	batchSize int
}

// Open creates or opens the SQLite database at the given path and applies the
// schema. Use ":memory:" for a private in-memory database.
func Open(path string, opts Options) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if opts.BatchSize < 0 {
		return nil, fmt.Errorf("batch size must not be negative: %d", opts.BatchSize)
	}
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db %v: %w", path, err)
	}
	// An in-memory database only exists on the connection that created it,
	// and SQLite only supports one writer anyway.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db %v: %w", path, err)
	}
	for _, stmt := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		schemaSQL,
	} {
		if _, err := sqlDB.Exec(stmt); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("initialize sqlite db %v: %w", path, err)
		}
	}
	db := &DB{db: sqlDB, batchSize: opts.BatchSize}
	if db.batchSize == 0 {
		db.batchSize = DefaultBatchSize
	}
	log.WithFields(log.Fields{
		"path":      path,
		"batchSize": db.batchSize,
	}).Debug("sqldb: opened")
	return db, nil
}

// Close closes the underlying database handle.
func (db *DB) Close() error {
	if db == nil || db.db == nil {
		return nil
	}
	return db.db.Close()
}

// Insert stores p. If p.ID is empty, a random ID is assigned. It returns the
// ID of the stored person.
func (db *DB) Insert(ctx context.Context, p persondb.Person) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := db.db.ExecContext(ctx,
		`INSERT INTO people (person_id, first_name, last_name, note) VALUES (?, ?, ?, ?)`,
		p.ID, nullable(p.FirstName), nullable(p.LastName), nullable(p.Note))
	if err != nil {
		return "", fmt.Errorf("insert person %q: %w", p.ID, err)
	}
	return p.ID, nil
}

// Import stores all the given people in a single transaction. Either all of
// them are stored or none are. If onStored is not nil, it's called after each
// person is written to the transaction.
func (db *DB) Import(ctx context.Context, people []persondb.Person, onStored func()) (err error) {
	tx, err := db.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO people (person_id, first_name, last_name, note) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare import: %w", err)
	}
	for _, p := range people {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		_, err = stmt.ExecContext(ctx, p.ID, nullable(p.FirstName), nullable(p.LastName), nullable(p.Note))
		if err != nil {
			_ = stmt.Close()
			return fmt.Errorf("import person %q: %w", p.ID, err)
		}
		if onStored != nil {
			onStored()
		}
	}
	err = errors.Any(stmt.Close(), tx.Commit())
	if err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	log.WithField("count", len(people)).Info("sqldb: imported people")
	return nil
}

// List implements persondb.Database.
func (db *DB) List(ctx context.Context) persondb.Iterator {
	return db.query(ctx, "", nil)
}

// FilterByLastName implements persondb.Database.
func (db *DB) FilterByLastName(ctx context.Context, lastName string) persondb.Iterator {
	return db.query(ctx, "last_name = ?", lastName)
}

// FilterByFirstName implements persondb.Database.
func (db *DB) FilterByFirstName(ctx context.Context, firstName string) persondb.Iterator {
	return db.query(ctx, "first_name = ?", firstName)
}

func (db *DB) query(ctx context.Context, cond string, arg interface{}) persondb.Iterator {
	query := "SELECT seq, person_id, first_name, last_name, note FROM people WHERE seq > ?"
	if cond != "" {
		query += " AND " + cond
	}
	query += " ORDER BY seq LIMIT ?"
	return &iterator{
		ctx:   ctx,
		db:    db,
		query: query,
		arg:   arg,
		cond:  cond != "",
	}
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return persondb.String(s.String)
}
