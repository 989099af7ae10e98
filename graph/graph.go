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

// Package graph presents a person database as a read-only set of RDF-style
// triples. Each person record becomes a subject node with one triple per
// attribute it has: first name, last name, and diary note.
//
// Nothing is materialized. Filter picks the cheapest database query that
// can find the candidate records for a pattern, expands those records into
// triples on demand, and drops the triples that don't match.
package graph

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/retog/rdfwrapper-example/persondb"
	"github.com/retog/rdfwrapper-example/rdf"
	log "github.com/sirupsen/logrus"
)

// Graph is a lazy triple view over a persondb.Database. It holds no state of
// its own beyond the database, so it is safe for concurrent use whenever the
// database is.
type Graph struct {
	db persondb.Database
}

// New returns a Graph backed by db.
func New(db persondb.Database) *Graph {
	return &Graph{db: db}
}

// Filter returns an iterator over the triples that match the given pattern.
// A nil component is a wildcard. The returned iterator's traversal order
// follows the database's record order, then the attribute order firstName,
// lastName, diary.
//
// Patterns that can't match anything (an unknown predicate, a subject that
// isn't a PersonNode, or an object that isn't a plain string literal) return
// an empty iterator without touching the database.
func (g *Graph) Filter(ctx context.Context, subject, predicate, object rdf.Term) *Iterator {
	return g.FilterPattern(ctx, rdf.Pattern{
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
	})
}

// FilterPattern is like Filter but takes the pattern as a single value.
func (g *Graph) FilterPattern(ctx context.Context, pattern rdf.Pattern) *Iterator {
	path := pathRejected
	if !rejects(pattern) {
		path = choosePath(pattern)
	}
	metrics.filterCalls.WithLabelValues(string(path)).Inc()
	if log.IsLevelEnabled(log.DebugLevel) {
		log.WithFields(log.Fields{
			"pattern":    pattern.String(),
			"accessPath": path,
		}).Debug("Filtering graph")
	}
	if path == pathRejected {
		return emptyIterator()
	}
	records := selectRecords(ctx, g.db, path, pattern)
	return newIterator(newExpander(records), pattern)
}

// All returns an iterator over every triple in the graph.
func (g *Graph) All(ctx context.Context) *Iterator {
	return g.FilterPattern(ctx, rdf.Pattern{})
}

// Size returns the number of triples in the graph. It walks the whole
// database on every call; the result is never cached, so it always reflects
// the database's current contents.
func (g *Graph) Size(ctx context.Context) (int, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "graph size")
	defer span.Finish()
	start := time.Now()
	it := g.All(ctx)
	n := 0
	for it.HasNext() {
		if _, err := it.Next(); err != nil {
			return 0, err
		}
		n++
	}
	if err := it.Err(); err != nil {
		span.SetTag("error", true)
		return 0, err
	}
	metrics.sizeSeconds.Observe(time.Since(start).Seconds())
	span.SetTag("triples", n)
	return n, nil
}

// Contains returns true if the graph holds the given triple.
func (g *Graph) Contains(ctx context.Context, t rdf.Triple) (bool, error) {
	it := g.FilterPattern(ctx, rdf.Pattern{
		Subject:   t.Subject,
		Predicate: t.Predicate,
		Object:    t.Object,
	})
	return it.HasNext(), it.Err()
}
