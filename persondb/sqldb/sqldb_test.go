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
	"path/filepath"
	"testing"

	"github.com/retog/rdfwrapper-example/persondb"
	"github.com/retog/rdfwrapper-example/util/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(t *testing.T, it persondb.Iterator) []string {
	var res []string
	for it.Next() {
		res = append(res, cmp.GetKey(it.Record()))
	}
	require.NoError(t, it.Err())
	return res
}

func openTestDB(t *testing.T, batchSize int) *DB {
	db, err := Open(filepath.Join(t.TempDir(), "people.db"), Options{BatchSize: batchSize})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })
	err = db.Import(context.Background(), []persondb.Person{
		{ID: "alice", FirstName: persondb.String("Alice"), LastName: persondb.String("Affentranger")},
		{ID: "bob", FirstName: persondb.String("Bob"), LastName: persondb.String("Basinga"),
			Note: persondb.String("Today I met Alice.")},
		{ID: "bob2", FirstName: persondb.String("Bob"), LastName: persondb.String("Builder")},
		{ID: "anon", Note: persondb.String("")},
	}, nil)
	require.NoError(t, err)
	return db
}

func Test_Open(t *testing.T) {
	_, err := Open(" ", Options{})
	assert.EqualError(t, err, "sqlite path is required")
	_, err = Open(":memory:", Options{BatchSize: -1})
	assert.EqualError(t, err, "batch size must not be negative: -1")
	db, err := Open(":memory:", Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBatchSize, db.batchSize)
	assert.NoError(t, db.Close())
}

func Test_Queries(t *testing.T) {
	// A batch size of 1 forces every record onto its own page.
	for _, batchSize := range []int{1, 2, 0} {
		db := openTestDB(t, batchSize)
		ctx := context.Background()
		assert.Equal(t, []string{"person/alice", "person/bob", "person/bob2", "person/anon"},
			ids(t, db.List(ctx)), "batchSize %d", batchSize)
		assert.Equal(t, []string{"person/bob", "person/bob2"},
			ids(t, db.FilterByFirstName(ctx, "Bob")), "batchSize %d", batchSize)
		assert.Equal(t, []string{"person/alice"},
			ids(t, db.FilterByLastName(ctx, "Affentranger")), "batchSize %d", batchSize)
		assert.Empty(t, ids(t, db.FilterByLastName(ctx, "affentranger")))
		assert.Empty(t, ids(t, db.FilterByFirstName(ctx, "")))
	}
}

func Test_Attributes(t *testing.T) {
	db := openTestDB(t, 0)
	it := db.FilterByFirstName(context.Background(), "Bob")
	require.True(t, it.Next())
	rec := it.Record()
	assert.Equal(t, &persondb.Person{
		ID:        "bob",
		FirstName: persondb.String("Bob"),
		LastName:  persondb.String("Basinga"),
		Note:      persondb.String("Today I met Alice."),
	}, rec)

	it = db.List(context.Background())
	var anon persondb.Record
	for it.Next() {
		if cmp.GetKey(it.Record()) == "person/anon" {
			anon = it.Record()
		}
	}
	require.NotNil(t, anon)
	note, ok := anon.Attribute(persondb.Note)
	assert.True(t, ok, "empty notes are stored as present")
	assert.Equal(t, "", note)
	_, ok = anon.Attribute(persondb.FirstName)
	assert.False(t, ok)
}

func Test_Insert(t *testing.T) {
	db := openTestDB(t, 0)
	ctx := context.Background()
	id, err := db.Insert(ctx, persondb.Person{FirstName: persondb.String("Eve")})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, []string{"person/" + id}, ids(t, db.FilterByFirstName(ctx, "Eve")))

	_, err = db.Insert(ctx, persondb.Person{ID: "alice"})
	assert.Error(t, err, "IDs are unique")
}

func Test_ImportIsAtomic(t *testing.T) {
	db := openTestDB(t, 0)
	ctx := context.Background()
	err := db.Import(ctx, []persondb.Person{
		{ID: "carol", FirstName: persondb.String("Carol")},
		{ID: "bob"},
	}, nil)
	assert.Error(t, err)
	assert.Empty(t, ids(t, db.FilterByFirstName(ctx, "Carol")))
}

func Test_ImportProgress(t *testing.T) {
	db := openTestDB(t, 0)
	ctx := context.Background()
	stored := 0
	err := db.Import(ctx, []persondb.Person{
		{ID: "carol", FirstName: persondb.String("Carol")},
		{FirstName: persondb.String("Dave")},
	}, func() { stored++ })
	require.NoError(t, err)
	assert.Equal(t, 2, stored)
	assert.Len(t, ids(t, db.List(ctx)), 6)

	stored = 0
	err = db.Import(ctx, []persondb.Person{{ID: "erin"}, {ID: "alice"}}, func() { stored++ })
	assert.Error(t, err)
	assert.Equal(t, 1, stored, "only people written before the failure are reported")
}

func Test_AbandonedIterator(t *testing.T) {
	db := openTestDB(t, 1)
	ctx := context.Background()
	it := db.List(ctx)
	require.True(t, it.Next())
	// With a single connection, this would block if the first iterator
	// still held open rows.
	assert.Len(t, ids(t, db.List(ctx)), 4)
	_, err := db.Insert(ctx, persondb.Person{ID: "dave"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"person/bob", "person/bob2", "person/anon", "person/dave"}, ids(t, it))
}

func Test_CanceledContext(t *testing.T) {
	db := openTestDB(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	it := db.List(ctx)
	assert.False(t, it.Next())
	assert.Equal(t, context.Canceled, it.Err())
	assert.Nil(t, it.Record())
	_, err := db.Insert(ctx, persondb.Person{})
	assert.Equal(t, context.Canceled, err)
}

func Test_ClosedDB(t *testing.T) {
	db, err := Open(":memory:", Options{})
	require.NoError(t, err)
	require.NoError(t, db.Close())
	it := db.List(context.Background())
	assert.False(t, it.Next())
	assert.Error(t, it.Err())
}
