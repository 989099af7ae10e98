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

package memdb

import (
	"context"
	"testing"

	"github.com/retog/rdfwrapper-example/persondb"
	"github.com/retog/rdfwrapper-example/util/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ids drains the iterator and returns the record keys it produced.
func ids(t *testing.T, it persondb.Iterator) []string {
	var res []string
	for it.Next() {
		res = append(res, cmp.GetKey(it.Record()))
	}
	require.NoError(t, it.Err())
	return res
}

func newTestDB(t *testing.T) *DB {
	db := New()
	require.NoError(t, db.AddAll([]persondb.Person{
		{ID: "bob", FirstName: persondb.String("Bob"), LastName: persondb.String("Basinga"),
			Note: persondb.String("Today I met Alice.")},
		{ID: "alice", FirstName: persondb.String("Alice"), LastName: persondb.String("Affentranger")},
		{ID: "bob2", FirstName: persondb.String("Bob"), LastName: persondb.String("Builder")},
		{ID: "anon", Note: persondb.String("no name")},
	}))
	return db
}

func Test_Queries(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	assert.Equal(t, 4, db.Len())
	assert.Equal(t, []string{"person/alice", "person/anon", "person/bob", "person/bob2"},
		ids(t, db.List(ctx)))
	assert.Equal(t, []string{"person/bob", "person/bob2"},
		ids(t, db.FilterByFirstName(ctx, "Bob")))
	assert.Equal(t, []string{"person/bob2"},
		ids(t, db.FilterByLastName(ctx, "Builder")))
	assert.Empty(t, ids(t, db.FilterByFirstName(ctx, "bob")), "matching is case sensitive")
	assert.Empty(t, ids(t, db.FilterByFirstName(ctx, "Bo")))
	assert.Empty(t, ids(t, db.FilterByLastName(ctx, "")))
}

func Test_Add(t *testing.T) {
	db := New()
	id, err := db.Add(persondb.Person{FirstName: persondb.String("Eve")})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, "Eve", *db.Get(id).FirstName)

	_, err = db.Add(persondb.Person{ID: id})
	assert.EqualError(t, err, `person with ID "`+id+`" already exists`)

	p := persondb.Person{ID: "mallory", FirstName: persondb.String("Mallory")}
	_, err = db.Add(p)
	require.NoError(t, err)
	*p.FirstName = "changed"
	assert.Equal(t, "Mallory", *db.Get("mallory").FirstName, "Add should store a copy")
}

func Test_Update(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	before := db.Get("bob")
	err := db.Update("bob", func(p *persondb.Person) {
		p.FirstName = persondb.String("Robert")
		p.Note = nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Bob", *before.FirstName, "earlier records must not change")
	assert.Equal(t, []string{"person/bob2"}, ids(t, db.FilterByFirstName(ctx, "Bob")))
	assert.Equal(t, []string{"person/bob"}, ids(t, db.FilterByFirstName(ctx, "Robert")))
	_, hasNote := db.Get("bob").Attribute(persondb.Note)
	assert.False(t, hasNote)

	assert.EqualError(t, db.Update("nobody", func(*persondb.Person) {}), `no person with ID "nobody"`)
	err = db.Update("bob", func(p *persondb.Person) { p.ID = "robert" })
	assert.EqualError(t, err, `update may not change ID "bob" to "robert"`)
	assert.NotNil(t, db.Get("bob"))
}

func Test_Remove(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	assert.True(t, db.Remove("bob"))
	assert.False(t, db.Remove("bob"))
	assert.Nil(t, db.Get("bob"))
	assert.Equal(t, []string{"person/bob2"}, ids(t, db.FilterByFirstName(ctx, "Bob")))
	assert.Empty(t, ids(t, db.FilterByLastName(ctx, "Basinga")))
	assert.Equal(t, 3, db.Len())
}

func Test_CanceledContext(t *testing.T) {
	db := newTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, it := range []persondb.Iterator{
		db.List(ctx),
		db.FilterByFirstName(ctx, "Bob"),
		db.FilterByLastName(ctx, "Basinga"),
	} {
		assert.False(t, it.Next())
		assert.Equal(t, context.Canceled, it.Err())
	}
}

func Test_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	it := db.List(ctx)
	require.True(t, it.Next())
	assert.True(t, db.Remove("bob"))
	// The removal happened after the query, so bob is still listed.
	assert.Equal(t, []string{"person/anon", "person/bob", "person/bob2"}, ids(t, it))
}
