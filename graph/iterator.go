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
	"errors"

	"github.com/retog/rdfwrapper-example/rdf"
)

// ErrExhausted is returned by Iterator.Next when there is no next triple.
var ErrExhausted = errors.New("graph: iterator exhausted")

// Iterator is a forward-only cursor over the triples matching a pattern. It
// looks ahead by exactly one matching triple so that HasNext can answer
// without consuming anything.
//
// If the database query behind the iterator fails, the iterator ends early:
// HasNext returns false and Err reports the failure. Every triple returned
// before that point was valid.
//
// An Iterator is not safe for concurrent use. It can be dropped at any time
// without cleanup.
type Iterator struct {
	source *expander
	// Unbound components are nil.
	pattern rdf.Pattern
	// Valid only if hasNext is set.
	next    rdf.Triple
	hasNext bool
	err     error
}

// newIterator returns an Iterator that yields the triples of source that match
// pattern. It seeks the first match immediately.
func newIterator(source *expander, pattern rdf.Pattern) *Iterator {
	it := &Iterator{
		source:  source,
		pattern: pattern,
	}
	it.seek()
	return it
}

// emptyIterator returns an Iterator with no triples.
func emptyIterator() *Iterator {
	return &Iterator{}
}

// seek advances the source to the next matching triple, discarding the rest.
func (it *Iterator) seek() {
	it.hasNext = false
	it.next = rdf.Triple{}
	if it.source == nil {
		return
	}
	for {
		candidate, ok := it.source.next()
		if !ok {
			it.err = it.source.err()
			it.source = nil
			return
		}
		if it.pattern.Matches(candidate) {
			it.next = candidate
			it.hasNext = true
			return
		}
	}
}

// HasNext returns true if Next will return a triple. Calling it repeatedly
// has no further effect.
func (it *Iterator) HasNext() bool {
	return it.hasNext
}

// Next returns the next matching triple and advances past it. It returns
// ErrExhausted if HasNext is false.
func (it *Iterator) Next() (rdf.Triple, error) {
	if !it.hasNext {
		return rdf.Triple{}, ErrExhausted
	}
	res := it.next
	it.seek()
	metrics.triplesProduced.Inc()
	return res, nil
}

// Err returns the database error that ended the iteration early, or nil.
func (it *Iterator) Err() error {
	return it.err
}

// Collect reads all the remaining triples from it. It returns the triples read
// and the iterator's error, if any.
func Collect(it *Iterator) ([]rdf.Triple, error) {
	var res []rdf.Triple
	for it.HasNext() {
		t, err := it.Next()
		if err != nil {
			return res, err
		}
		res = append(res, t)
	}
	return res, it.Err()
}
