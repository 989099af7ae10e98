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

package main

import (
	"bufio"
	"context"
	"io"

	"github.com/cheggaaa/pb"
	"github.com/retog/rdfwrapper-example/api"
	"github.com/retog/rdfwrapper-example/config"
	"github.com/retog/rdfwrapper-example/graph"
	"github.com/retog/rdfwrapper-example/persondb"
	"github.com/retog/rdfwrapper-example/persondb/dbfactory"
	"github.com/retog/rdfwrapper-example/query/parser"
	"github.com/retog/rdfwrapper-example/rdf"
	"github.com/retog/rdfwrapper-example/util/errors"
	"github.com/retog/rdfwrapper-example/util/table"
)

// filter prints the triples matching options.Pattern, either as a table or as
// N-Triples.
func filter(ctx context.Context, out io.Writer, g *graph.Graph, options *options) error {
	pattern := rdf.Pattern{}
	if options.Pattern != "" {
		var err error
		pattern, err = parser.ParsePattern(options.Pattern)
		if err != nil {
			return err
		}
	}
	it := g.FilterPattern(ctx, pattern)
	if options.NTriples {
		w := bufio.NewWriter(out)
		for n := 0; it.HasNext() && (options.Limit < 0 || n < options.Limit); n++ {
			t, err := it.Next()
			if err != nil {
				return err
			}
			w.WriteString(t.String())
			w.WriteByte('\n')
		}
		return errors.Any(it.Err(), w.Flush())
	}
	t := [][]string{
		{"Subject", "Predicate", "Object"},
	}
	for it.HasNext() && (options.Limit < 0 || len(t)-1 < options.Limit) {
		triple, err := it.Next()
		if err != nil {
			return err
		}
		t = append(t, []string{
			triple.Subject.String(),
			triple.Predicate.String(),
			triple.Object.String(),
		})
	}
	if err := it.Err(); err != nil {
		return err
	}
	return errors.Any(
		table.PrettyPrint(out, t, table.HeaderRow|table.SkipEmpty),
		printf(out, "%d triples\n", len(t)-1),
	)
}

// size prints the number of triples in the graph.
func size(ctx context.Context, out io.Writer, g *graph.Graph) error {
	n, err := g.Size(ctx)
	if err != nil {
		return err
	}
	return printf(out, "%d triples\n", n)
}

// serve serves the graph over HTTP until ctx is canceled.
func serve(ctx context.Context, cfg *config.PersonGraph, g *graph.Graph) error {
	return api.New(cfg.API, g).Run(ctx)
}

// importPeople adds the people in the given YAML file to the store. It draws a
// progress bar on progress while the import runs.
func importPeople(ctx context.Context, out, progress io.Writer, store dbfactory.Store, filename string) error {
	people, err := persondb.LoadFile(filename)
	if err != nil {
		return err
	}
	bar := pb.New(len(people)).Prefix("Importing ")
	bar.Output = progress
	bar.SetMaxWidth(100)
	bar.ShowCounters = true
	bar.ShowPercent = true
	bar.Start()
	err = store.Import(ctx, people, func() { bar.Increment() })
	bar.Finish()
	if err != nil {
		return err
	}
	return printf(out, "Imported %d people from %v\n", len(people), filename)
}

// printf writes to out using the English number formatting of fmtr.
func printf(out io.Writer, format string, args ...interface{}) error {
	_, err := fmtr.Fprintf(out, format, args...)
	return err
}
