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

package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/retog/rdfwrapper-example/persondb"
	"github.com/retog/rdfwrapper-example/util/errors"
)

// iterator pages through a query by seq. Each page is read completely and its
// rows closed before any record is handed out, so no cursor is left open
// between calls to Next and the iterator can be dropped at any time.
type iterator struct {
	ctx   context.Context
	db    *DB
	query string
	arg   interface{}
	// If true, arg is bound after the seq parameter.
	cond bool

	// The last seq fetched so far.
	lastSeq int64
	page    []*persondb.Person
	pos     int
	// Set once a short page has been read.
	done bool
	cur  *persondb.Person
	err  error
}

func (it *iterator) Next() bool {
	it.cur = nil
	if it.err != nil {
		return false
	}
	if it.pos >= len(it.page) {
		if it.done {
			return false
		}
		if err := it.fetch(); err != nil {
			it.err = err
			return false
		}
		if len(it.page) == 0 {
			return false
		}
	}
	it.cur = it.page[it.pos]
	it.pos++
	return true
}

func (it *iterator) Record() persondb.Record {
	if it.cur == nil {
		return nil
	}
	return it.cur
}

func (it *iterator) Err() error {
	return it.err
}

// fetch reads the next page of results.
func (it *iterator) fetch() (err error) {
	if err := it.ctx.Err(); err != nil {
		return err
	}
	args := []interface{}{it.lastSeq}
	if it.cond {
		args = append(args, it.arg)
	}
	args = append(args, it.db.batchSize)
	rows, err := it.db.db.QueryContext(it.ctx, it.query, args...)
	if err != nil {
		return fmt.Errorf("query people: %w", err)
	}
	defer func() {
		err = errors.Any(err, rows.Close())
	}()
	it.page = it.page[:0]
	it.pos = 0
	for rows.Next() {
		var seq int64
		var p persondb.Person
		var first, last, note sql.NullString
		if err := rows.Scan(&seq, &p.ID, &first, &last, &note); err != nil {
			return fmt.Errorf("scan person: %w", err)
		}
		p.FirstName = fromNullable(first)
		p.LastName = fromNullable(last)
		p.Note = fromNullable(note)
		it.page = append(it.page, &p)
		it.lastSeq = seq
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read people: %w", err)
	}
	if len(it.page) < it.db.batchSize {
		it.done = true
	}
	return nil
}
