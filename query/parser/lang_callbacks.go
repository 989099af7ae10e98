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
	"github.com/retog/rdfwrapper-example/rdf"
	"github.com/vektah/goparsify"
)

// variable is the result of parsing a wildcard. It matches anything, so it
// becomes a nil term.
type variable struct {
	name string
}

// language is the result of parsing a language tag.
type language string

func toVariable(n *goparsify.Result) {
	n.Result = variable{name: n.Child[1].Token}
}

func toBlankNode(n *goparsify.Result) {
	n.Result = rdf.BlankNode{Label: n.Child[2].Token}
}

func toLanguage(n *goparsify.Result) {
	n.Result = language(n.Child[2].Token)
}

func toLiteral(n *goparsify.Result) {
	res := rdf.PlainString(n.Child[0].Token)
	switch suffix := n.Child[1].Result.(type) {
	case language:
		res.Datatype = rdf.RDFLangString
		res.Language = string(suffix)
	case rdf.IRI:
		res.Datatype = suffix
	}
	n.Result = res
}

func toPattern(n *goparsify.Result) {
	n.Result = rdf.Pattern{
		Subject:   termOf(n.Child[0].Result),
		Predicate: termOf(n.Child[2].Result),
		Object:    termOf(n.Child[4].Result),
	}
}

// termOf converts a parsed term to an rdf.Term; wildcards become nil.
func termOf(result interface{}) rdf.Term {
	t, ok := result.(rdf.Term)
	if !ok {
		return nil
	}
	return t
}

// child is a helper to generate a goparsify Map function that will grab a child
// Result and put it into the parent Result.
func child(idx int) func(*goparsify.Result) {
	return func(n *goparsify.Result) {
		n.Result = n.Child[idx].Result
	}
}
