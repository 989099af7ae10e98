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

// The predicates a Graph produces. These identifiers are part of the wire
// format of any serialized triples and must not change.
const (
	FirstName rdf.IRI = "http://example.org/ontology/firstName"
	LastName  rdf.IRI = "http://example.org/ontology/lastName"
	Diary     rdf.IRI = "http://example.org/ontology/diary"
)

// predicateOf maps each record attribute to its predicate.
var predicateOf = map[persondb.Attribute]rdf.IRI{
	persondb.FirstName: FirstName,
	persondb.LastName:  LastName,
	persondb.Note:      Diary,
}

// isSupportedPredicate returns true if p is one of the predicates a Graph
// produces.
func isSupportedPredicate(p rdf.Term) bool {
	iri, ok := p.(rdf.IRI)
	if !ok {
		return false
	}
	switch iri {
	case FirstName, LastName, Diary:
		return true
	}
	return false
}
