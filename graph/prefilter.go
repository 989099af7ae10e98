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
	"github.com/retog/rdfwrapper-example/rdf"
)

// rejects returns true if no triple in any Graph can match the pattern. It
// looks only at the pattern, never at the database.
func rejects(p rdf.Pattern) bool {
	if p.Predicate != nil && !isSupportedPredicate(p.Predicate) {
		return true
	}
	if p.Subject != nil {
		node, ok := p.Subject.(PersonNode)
		if !ok || node.record == nil {
			return true
		}
	}
	if p.Object != nil {
		lit, ok := p.Object.(rdf.Literal)
		if !ok || lit.Datatype != rdf.XSDString || lit.Language != "" {
			return true
		}
	}
	return false
}
