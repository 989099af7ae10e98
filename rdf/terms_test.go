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
	"testing"

	"github.com/retog/rdfwrapper-example/util/cmp"
	"github.com/stretchr/testify/assert"
)

var termStringerTests = []struct {
	term           Term
	expectedString string
	expectedKey    string
}{
	{IRI("http://example.org/a"), "<http://example.org/a>", "iri:<http://example.org/a>"},
	{PlainString("Bob"), `"Bob"`, `literal:"Bob"^^<http://www.w3.org/2001/XMLSchema#string>`},
	{PlainString("say \"hi\"\n"), `"say \"hi\"\n"`, `literal:"say \"hi\"\n"^^<http://www.w3.org/2001/XMLSchema#string>`},
	{Literal{Lexical: "Bob", Datatype: RDFLangString, Language: "en"}, `"Bob"@en`,
		`literal:"Bob"^^<http://www.w3.org/1999/02/22-rdf-syntax-ns#langString>@en`},
	{Literal{Lexical: "42", Datatype: "http://www.w3.org/2001/XMLSchema#int"},
		`"42"^^<http://www.w3.org/2001/XMLSchema#int>`,
		`literal:"42"^^<http://www.w3.org/2001/XMLSchema#int>`},
	{BlankNode{Label: "b1"}, "_:b1", "bnode:b1"},
}

func Test_Term_String(t *testing.T) {
	for _, c := range termStringerTests {
		assert.Equal(t, c.expectedString, c.term.String())
	}
}

func Test_Term_Key(t *testing.T) {
	for _, c := range termStringerTests {
		assert.Equal(t, c.expectedKey, cmp.GetKey(c.term), "String: %v", c.term.String())
	}
}

// alwaysEqual is an Equaler that claims to equal any BlankNode.
type alwaysEqual struct{}

func (alwaysEqual) Key(b *strings.Builder) { b.WriteString("always") }
func (alwaysEqual) String() string         { return "_:always" }
func (alwaysEqual) Equal(other Term) bool {
	_, ok := other.(BlankNode)
	return ok
}

func Test_Equal(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Term
		equal bool
	}{
		{"nil/nil", nil, nil, true},
		{"nil/iri", nil, IRI("x"), false},
		{"iri/nil", IRI("x"), nil, false},
		{"iri/iri", IRI("x"), IRI("x"), true},
		{"iri/other iri", IRI("x"), IRI("y"), false},
		{"literal/literal", PlainString("Bob"), PlainString("Bob"), true},
		{"literal/other value", PlainString("Bob"), PlainString("Alice"), false},
		{"literal/other datatype", PlainString("Bob"), Literal{Lexical: "Bob", Datatype: "urn:other"}, false},
		{"literal/language", PlainString("Bob"), Literal{Lexical: "Bob", Datatype: XSDString, Language: "en"}, false},
		{"literal/iri", PlainString("x"), IRI("x"), false},
		{"bnode/bnode", BlankNode{"a"}, BlankNode{"a"}, true},
		{"bnode/other bnode", BlankNode{"a"}, BlankNode{"b"}, false},
		{"equaler first", alwaysEqual{}, BlankNode{"a"}, true},
		{"equaler second", BlankNode{"a"}, alwaysEqual{}, true},
		{"equaler/iri", alwaysEqual{}, IRI("a"), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.equal, Equal(test.a, test.b))
		})
	}
}

func Test_Triple(t *testing.T) {
	assert := assert.New(t)
	tr := Triple{
		Subject:   BlankNode{"bob"},
		Predicate: "http://example.org/ontology/firstName",
		Object:    PlainString("Bob"),
	}
	assert.Equal(`_:bob <http://example.org/ontology/firstName> "Bob" .`, tr.String())
	assert.Equal(`bnode:bob iri:<http://example.org/ontology/firstName> literal:"Bob"^^<http://www.w3.org/2001/XMLSchema#string>`,
		cmp.GetKey(tr))
	other := tr
	assert.True(tr.Equal(other))
	other.Object = PlainString("Robert")
	assert.False(tr.Equal(other))
}

func Test_Pattern(t *testing.T) {
	tr := Triple{
		Subject:   BlankNode{"bob"},
		Predicate: "urn:p",
		Object:    PlainString("Bob"),
	}
	tests := []struct {
		pattern Pattern
		str     string
		matches bool
	}{
		{Pattern{}, "? ? ?", true},
		{Pattern{Subject: BlankNode{"bob"}}, "_:bob ? ?", true},
		{Pattern{Subject: BlankNode{"alice"}}, "_:alice ? ?", false},
		{Pattern{Predicate: IRI("urn:p")}, "? <urn:p> ?", true},
		{Pattern{Predicate: IRI("urn:q")}, "? <urn:q> ?", false},
		{Pattern{Predicate: PlainString("urn:p")}, `? "urn:p" ?`, false},
		{Pattern{Object: PlainString("Bob")}, `? ? "Bob"`, true},
		{Pattern{Object: Literal{Lexical: "Bob", Datatype: "urn:t"}}, `? ? "Bob"^^<urn:t>`, false},
		{Pattern{BlankNode{"bob"}, IRI("urn:p"), PlainString("Bob")}, `_:bob <urn:p> "Bob"`, true},
	}
	for _, test := range tests {
		t.Run(test.str, func(t *testing.T) {
			assert.Equal(t, test.str, test.pattern.String())
			assert.Equal(t, test.matches, test.pattern.Matches(tr))
		})
	}
}
