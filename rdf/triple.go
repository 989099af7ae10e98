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

package rdf

import (
	"strings"
)

// Triple is a single subject-predicate-object statement.
type Triple struct {
	Subject   Term
	Predicate IRI
	Object    Term
}

// Key implements cmp.Key.
func (t Triple) Key(b *strings.Builder) {
	t.Subject.Key(b)
	b.WriteByte(' ')
	t.Predicate.Key(b)
	b.WriteByte(' ')
	t.Object.Key(b)
}

// String returns the triple as an N-Triples statement, without the trailing
// newline.
func (t Triple) String() string {
	return t.Subject.String() + " " + t.Predicate.String() + " " + t.Object.String() + " ."
}

// Equal returns true if each component of t equals the same component of
// other.
func (t Triple) Equal(other Triple) bool {
	return t.Predicate == other.Predicate &&
		Equal(t.Subject, other.Subject) &&
		Equal(t.Object, other.Object)
}

// Pattern is a Triple in which any component may be left unbound (nil).
type Pattern struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Matches returns true if every bound component of p equals the same
// component of t.
func (p Pattern) Matches(t Triple) bool {
	if p.Subject != nil && !Equal(p.Subject, t.Subject) {
		return false
	}
	if p.Predicate != nil && !Equal(p.Predicate, t.Predicate) {
		return false
	}
	if p.Object != nil && !Equal(p.Object, t.Object) {
		return false
	}
	return true
}

// String returns the pattern with unbound components shown as '?'.
func (p Pattern) String() string {
	term := func(t Term) string {
		if t == nil {
			return "?"
		}
		return t.String()
	}
	return term(p.Subject) + " " + term(p.Predicate) + " " + term(p.Object)
}
