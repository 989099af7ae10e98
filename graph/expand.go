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
	"github.com/retog/rdfwrapper-example/persondb"
	"github.com/retog/rdfwrapper-example/rdf"
)

// expander turns a sequence of records into the sequence of their triples:
// one per present attribute, in persondb.Attributes order. It holds at most
// one record at a time and reads each attribute only when that attribute's
// triple is requested, so it reflects the record's values at that moment.
type expander struct {
	records persondb.Iterator
	// The record being expanded, or nil when the next record is needed.
	record persondb.Record
	node   PersonNode
	// Index into persondb.Attributes of the next attribute to read.
	attr int
}

func newExpander(records persondb.Iterator) *expander {
	return &expander{records: records}
}

// next returns the next triple and true, or false once the records are
// exhausted (or their query failed; see err).
func (e *expander) next() (rdf.Triple, bool) {
	for {
		if e.record == nil {
			if !e.records.Next() {
				return rdf.Triple{}, false
			}
			e.record = e.records.Record()
			e.node = NewPersonNode(e.record)
			e.attr = 0
			metrics.recordsExpanded.Inc()
		}
		for e.attr < len(persondb.Attributes) {
			a := persondb.Attributes[e.attr]
			e.attr++
			if v, ok := e.record.Attribute(a); ok {
				return rdf.Triple{
					Subject:   e.node,
					Predicate: predicateOf[a],
					Object:    rdf.PlainString(v),
				}, true
			}
		}
		e.record = nil
	}
}

// err returns the error that ended the underlying record query, if any.
func (e *expander) err() error {
	return e.records.Err()
}
