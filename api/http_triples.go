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

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/retog/rdfwrapper-example/query/parser"
	"github.com/retog/rdfwrapper-example/rdf"
	"github.com/retog/rdfwrapper-example/util/web"
)

// tripleResult is the JSON form of a triple.
type tripleResult struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// triples serves the triples matching the 'pattern' query parameter, which
// defaults to matching everything. With 'format=json' they're returned as a
// JSON array; otherwise they're returned as N-Triples. 'limit', if given,
// caps the number of triples returned.
func (s *Server) triples(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	span, ctx := opentracing.StartSpanFromContext(r.Context(), "triples")
	defer span.Finish()

	query := r.URL.Query()
	pattern := rdf.Pattern{}
	if in := query.Get("pattern"); in != "" {
		var err error
		pattern, err = parser.ParsePattern(in)
		if err != nil {
			web.Write(w, web.Errorf(http.StatusBadRequest, "%v", err))
			return
		}
	}
	limit := -1
	if in := query.Get("limit"); in != "" {
		n, err := strconv.Atoi(in)
		if err != nil || n < 0 {
			web.Write(w, web.Errorf(http.StatusBadRequest,
				"limit must be a non-negative integer, got %q", in))
			return
		}
		limit = n
	}
	format := query.Get("format")
	if format != "" && format != "json" && format != "nt" {
		web.Write(w, web.Errorf(http.StatusBadRequest,
			`format must be "nt" or "json", got %q`, format))
		return
	}
	span.SetTag("pattern", pattern.String())

	var results []rdf.Triple
	it := s.graph.FilterPattern(ctx, pattern)
	for it.HasNext() && (limit < 0 || len(results) < limit) {
		t, err := it.Next()
		if err != nil {
			web.Write(w, err)
			return
		}
		results = append(results, t)
	}
	if err := it.Err(); err != nil {
		span.SetTag("error", true)
		web.Write(w, err)
		return
	}
	span.SetTag("triples", len(results))

	if format == "json" {
		res := make([]tripleResult, len(results))
		for i, t := range results {
			res[i] = tripleResult{
				Subject:   t.Subject.String(),
				Predicate: t.Predicate.String(),
				Object:    t.Object.String(),
			}
		}
		web.Write(w, res)
		return
	}
	var b strings.Builder
	for _, t := range results {
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	web.Write(w, b.String())
}

// sizeResult is the JSON response of the size endpoint.
type sizeResult struct {
	Size int `json:"size"`
}

// size serves the number of triples in the graph.
func (s *Server) size(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	n, err := s.graph.Size(r.Context())
	if err != nil {
		web.Write(w, err)
		return
	}
	web.Write(w, sizeResult{Size: n})
}
