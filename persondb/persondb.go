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

// Package persondb defines the record store that graph views are built over.
// A store holds person records, each with up to three optional string
// attributes, and answers three queries: list everything, and exact-match
// lookups by first name or by last name.
//
// Implementations live in the memdb and sqldb subpackages.
package persondb

import (
	"context"
	"fmt"

	"github.com/retog/rdfwrapper-example/util/cmp"
)

// Attribute identifies one of the named attributes of a Record.
type Attribute int

// The attributes a Record may carry.
const (
	FirstName Attribute = iota + 1
	LastName
	Note
)

// Attributes lists every Attribute in the order in which they're expanded.
var Attributes = []Attribute{FirstName, LastName, Note}

func (a Attribute) String() string {
	switch a {
	case FirstName:
		return "firstName"
	case LastName:
		return "lastName"
	case Note:
		return "note"
	}
	return fmt.Sprintf("Attribute(%d)", int(a))
}

// Record is a single person held by a Database. The Key serialization of a
// Record is its identity within the Database: two records are the same person
// if and only if their keys are equal. A Database must not return two
// different people with the same key.
type Record interface {
	cmp.Key
	// Attribute returns the current value of the attribute and true, or
	// false if the record doesn't have the attribute.
	Attribute(Attribute) (string, bool)
}

// Iterator is a cursor over the results of a Database query. Callers loop
// with Next and read Record until Next returns false, then check Err. An
// Iterator may be abandoned at any point; it holds no resources that need
// releasing.
type Iterator interface {
	// Next advances to the next record. It returns false when there are no
	// more records or the query failed.
	Next() bool
	// Record returns the record Next advanced to.
	Record() Record
	// Err returns the error that stopped the iteration, if any.
	Err() error
}

// Database is the set of queries a record store supports. Every query returns
// a finite sequence that contains each record at most once. Matching is
// exact: no case folding or normalization is applied.
type Database interface {
	List(ctx context.Context) Iterator
	FilterByLastName(ctx context.Context, lastName string) Iterator
	FilterByFirstName(ctx context.Context, firstName string) Iterator
}
