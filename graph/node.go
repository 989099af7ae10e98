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

package graph

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/retog/rdfwrapper-example/persondb"
	"github.com/retog/rdfwrapper-example/rdf"
	"github.com/retog/rdfwrapper-example/util/cmp"
)

// PersonNode is the subject of every triple a Graph produces. It wraps the
// record the triple is about. Two PersonNodes are equal exactly when their
// records are equal (have the same key), regardless of which query or which
// Graph produced them.
//
// PersonNodes hold a record reference, so compare them with Equal or
// rdf.Equal, not ==. Use Hash or cmp.GetKey when a map key is needed.
type PersonNode struct {
	record persondb.Record
	// The record's key, computed once.
	recordKey string
}

// NewPersonNode returns the subject handle for the given record. A nil record
// gives the zero PersonNode, which is equal to nothing.
func NewPersonNode(record persondb.Record) PersonNode {
	if record == nil {
		return PersonNode{}
	}
	return PersonNode{
		record:    record,
		recordKey: cmp.GetKey(record),
	}
}

// Record returns the wrapped record.
func (n PersonNode) Record() persondb.Record {
	return n.record
}

// Key implements cmp.Key.
func (n PersonNode) Key(b *strings.Builder) {
	b.WriteString("personNode:")
	b.WriteString(n.recordKey)
}

// Hash returns a hash of the wrapped record's key. Equal nodes have equal
// hashes.
func (n PersonNode) Hash() uint64 {
	return xxhash.Sum64String(n.recordKey)
}

// String returns the node as an N-Triples blank node. The label is derived
// from Hash so that it's stable for a record and safe to print.
func (n PersonNode) String() string {
	return fmt.Sprintf("_:person%016x", n.Hash())
}

// Equal implements rdf.Equaler.
func (n PersonNode) Equal(other rdf.Term) bool {
	o, ok := other.(PersonNode)
	return ok && n.record != nil && o.record != nil && n.recordKey == o.recordKey
}
