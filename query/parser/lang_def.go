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

package parser

import (
	"strings"

	"github.com/retog/rdfwrapper-example/rdf"
	p "github.com/vektah/goparsify"
)

var (
	// pattern is the parser function called by ParsePattern. It extracts
	// three terms and an optional trailing '.'.
	pattern p.Parser
	// term is the parser function called by ParseTerm. It extracts a
	// wildcard, IRI, literal or blank node.
	term p.Parser
)

func init() {
	// Whitespace is handled explicitly; see parser.parse.

	// unbroken character sequence used by variables
	name := p.Chars("A-Za-z0-9_", 1)
	// blank node labels also allow '-'
	label := p.Chars("A-Za-z0-9_\\-", 1)
	langTag := p.Chars("A-Za-z0-9\\-", 1)
	// character sequence separating the terms of a pattern
	termSep := p.Chars(" \t\r\n", 1)
	optionalWS := p.Chars(" \t\r\n", 0)

	// ? || ?s
	wildcard := p.Seq("?", p.Maybe(name)).Map(toVariable)
	// <http://example.org/x>
	iri := iriRef()
	// _:b0
	blankNode := p.Seq("_:", p.Cut(), label).Map(toBlankNode)
	// @en
	lang := p.Seq("@", p.Cut(), langTag).Map(toLanguage)
	// ^^<http://www.w3.org/2001/XMLSchema#int>
	datatype := p.Seq("^^", p.Cut(), iri).Map(child(2))
	// "Bob" || "Bob"@en || "42"^^<http://www.w3.org/2001/XMLSchema#int>
	literal := p.Seq(p.StringLit(`"`), p.Maybe(p.Any(lang, datatype))).Map(toLiteral)

	term = p.Any(wildcard, iri, blankNode, literal)
	pattern = p.Seq(term, termSep, term, termSep, term, p.Maybe(p.Seq(optionalWS, "."))).Map(toPattern)
}

// iriRef parses an IRI in angle brackets. The IRI may not be empty or contain
// whitespace, control characters, or any of <"{}|^`\.
func iriRef() p.Parser {
	return p.NewParser("IRI", func(ps *p.State, node *p.Result) {
		ps.WS(ps)
		in := ps.Get()
		if len(in) == 0 || in[0] != '<' {
			ps.ErrorHere("<")
			return
		}
		for i := 1; i < len(in); i++ {
			c := in[i]
			if c == '>' {
				if i == 1 {
					ps.Advance(1)
					ps.ErrorHere("IRI")
					return
				}
				node.Token = in[1:i]
				node.Result = rdf.IRI(node.Token)
				ps.Advance(i + 1)
				return
			}
			if c <= ' ' || strings.IndexByte("<\"{}|^`\\", c) >= 0 {
				ps.Advance(i)
				ps.ErrorHere(">")
				return
			}
		}
		ps.Advance(len(in))
		ps.ErrorHere(">")
	})
}
