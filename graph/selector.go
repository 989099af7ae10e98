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
	"context"

	"github.com/retog/rdfwrapper-example/persondb"
	"github.com/retog/rdfwrapper-example/rdf"
)

// accessPath names the database query used to find candidate records.
type accessPath string

const (
	// The pattern was rejected up front; no query was issued.
	pathRejected accessPath = "rejected"

	// The bound subject already names the one candidate record.
	pathSubject accessPath = "subject"

	pathLastName  accessPath = "last_name"
	pathFirstName accessPath = "first_name"

	// Every record is a candidate.
	pathScan accessPath = "scan"
)

// choosePath decides which query finds the candidate records for a pattern
// that rejects() let through. The first matching rule wins: a bound subject,
// then an indexed attribute value, then a full scan. Notes aren't indexed, so
// patterns on note values scan.
func choosePath(p rdf.Pattern) accessPath {
	if p.Subject != nil {
		return pathSubject
	}
	if p.Object != nil {
		switch p.Predicate {
		case LastName:
			return pathLastName
		case FirstName:
			return pathFirstName
		}
	}
	return pathScan
}

// selectRecords issues the query chosen for the pattern and returns its
// records. The residual filter still checks every resulting triple against
// the full pattern.
func selectRecords(ctx context.Context, db persondb.Database, path accessPath, p rdf.Pattern) persondb.Iterator {
	switch path {
	case pathSubject:
		return persondb.NewSliceIterator(p.Subject.(PersonNode).record)
	case pathLastName:
		return db.FilterByLastName(ctx, p.Object.(rdf.Literal).Lexical)
	case pathFirstName:
		return db.FilterByFirstName(ctx, p.Object.(rdf.Literal).Lexical)
	case pathScan:
		return db.List(ctx)
	}
	return persondb.NewSliceIterator()
}
