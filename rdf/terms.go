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

// Package rdf defines the terms and triples exposed by graph views: IRIs,
// literals, blank nodes, and patterns over them.
//
// Terms are compared with Equal rather than ==. Some terms (such as subject
// handles produced by a view) carry references whose Go identity differs even
// when they denote the same resource.
package rdf

import (
	"strconv"
	"strings"

	"github.com/retog/rdfwrapper-example/util/cmp"
)

// XSDString is the datatype of plain string literals.
const XSDString IRI = "http://www.w3.org/2001/XMLSchema#string"

// RDFLangString is the datatype of language-tagged string literals.
const RDFLangString IRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"

// Term is a value that can appear in a Triple. Its Key serialization is its
// identity; String renders it in N-Triples syntax.
type Term interface {
	cmp.Key
	String() string
}

// An Equaler is a Term that defines its own equality. Equal consults it before
// falling back to comparing keys.
type Equaler interface {
	Term
	Equal(other Term) bool
}

// IRI is an absolute resource identifier.
type IRI string

// Key implements cmp.Key.
func (iri IRI) Key(b *strings.Builder) {
	b.WriteString("iri:<")
	b.WriteString(string(iri))
	b.WriteByte('>')
}

func (iri IRI) String() string {
	return "<" + string(iri) + ">"
}

// Literal is a lexical value tagged with a datatype and, for language-tagged
// strings, a language.
type Literal struct {
	Lexical  string
	Datatype IRI
	Language string
}

// PlainString returns an xsd:string literal holding s.
func PlainString(s string) Literal {
	return Literal{Lexical: s, Datatype: XSDString}
}

// Key implements cmp.Key.
func (l Literal) Key(b *strings.Builder) {
	b.WriteString("literal:")
	b.WriteString(strconv.Quote(l.Lexical))
	b.WriteString("^^<")
	b.WriteString(string(l.Datatype))
	b.WriteByte('>')
	if l.Language != "" {
		b.WriteByte('@')
		b.WriteString(l.Language)
	}
}

// String returns the literal in N-Triples syntax. The xsd:string datatype is
// implied and left off.
func (l Literal) String() string {
	s := quote(l.Lexical)
	switch {
	case l.Language != "":
		return s + "@" + l.Language
	case l.Datatype == XSDString || l.Datatype == "":
		return s
	default:
		return s + "^^" + l.Datatype.String()
	}
}

// BlankNode is a node without a global identifier.
type BlankNode struct {
	Label string
}

// Key implements cmp.Key.
func (n BlankNode) Key(b *strings.Builder) {
	b.WriteString("bnode:")
	b.WriteString(n.Label)
}

func (n BlankNode) String() string {
	return "_:" + n.Label
}

// Equal returns true if a and b denote the same term. A nil term is only
// equal to another nil term.
func Equal(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch ta := a.(type) {
	case IRI:
		tb, ok := b.(IRI)
		return ok && ta == tb
	case Literal:
		tb, ok := b.(Literal)
		return ok && ta == tb
	case Equaler:
		return ta.Equal(b)
	}
	if tb, ok := b.(Equaler); ok {
		return tb.Equal(a)
	}
	return cmp.GetKey(a) == cmp.GetKey(b)
}

// quote escapes s for use as an N-Triples string.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
