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

// Package parser reads triple patterns and terms written in an
// N-Triples-like syntax. A pattern is three whitespace separated terms with
// an optional trailing '.':
//
//	?s <http://example.org/ontology/lastName> "Basinga" .
//
// A term is one of:
//
//	?  ?name                 wildcard; matches anything
//	<http://example.org/x>   IRI
//	"text"                   string literal (xsd:string)
//	"text"@en                language tagged string literal
//	"42"^^<datatype-iri>     typed literal
//	_:label                  blank node
package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/retog/rdfwrapper-example/rdf"
	"github.com/retog/rdfwrapper-example/util/cmp"
	"github.com/sirupsen/logrus"
	"github.com/vektah/goparsify"
)

// MustParsePattern parses a pattern and panics if an error occurs. This is
// primarily meant for writing unit tests.
func MustParsePattern(in string) rdf.Pattern {
	pattern, err := ParsePattern(in)
	if err != nil {
		panic(fmt.Sprintf("unable to parse pattern: '%s': %v", strings.Replace(in, "\n", "\\n", -1), err))
	}
	return pattern
}

// ParsePattern parses a subject, predicate, object pattern. Wildcards become
// nil components of the returned pattern.
func ParsePattern(in string) (rdf.Pattern, error) {
	p := &parser{in: in}
	return p.parsePattern()
}

// ParseTerm parses a single term. It returns a nil term for a wildcard.
func ParseTerm(in string) (rdf.Term, error) {
	p := &parser{in: in}
	return p.parseTerm()
}

// parser implementation
type parser struct {
	in string
}

// parse reads the input with the given goparsify parser. If it's unable to
// fully parse the input a ParseError will be returned that includes the
// position of where it parsed to, and what the problem is.
func (p *parser) parse(typ string, parser goparsify.Parser) (*goparsify.Result, error) {
	// see lang_def.go for the grammar
	state := goparsify.NewState(p.in)
	state.WS = goparsify.NoWhitespace
	// consume head whitespace
	goparsify.UnicodeWhitespace(state)

	result := &goparsify.Result{}
	parser(state, result)
	if state.Errored() {
		line, col := coordinates(p.in, state.Error.Pos())
		exp := strings.TrimPrefix(fmt.Sprintf("%q", expectedText(&state.Error)), `"`)
		exp = strings.TrimSuffix(exp, `"`)
		return nil, &ParseError{
			ParseType: typ,
			Input:     p.in,
			Offset:    state.Error.Pos(),
			Line:      line,
			Column:    col,
			Details:   "expected " + exp,
		}
	}
	// consume tail whitespace and check for unparsed text
	state.WS = goparsify.UnicodeWhitespace
	state.WS(state)
	unparsed := state.Get()
	if unparsed != "" {
		line, col := coordinates(p.in, state.Pos)
		return nil, &ParseError{
			ParseType: typ,
			Input:     p.in,
			Offset:    state.Pos,
			Line:      line,
			Column:    col,
			Details:   fmt.Sprintf("unparsed text: '%s'", strings.TrimRightFunc(unparsed, unicode.IsSpace)),
		}
	}
	return result, nil
}

// ParseError captures more detailed information about a parsing error, and
// where it occurred.
type ParseError struct {
	// pattern or term.
	ParseType string
	// The input string to the parser which resulted in this error.
	Input string
	// Offset is the byte offset into 'Input' at which the error occurred.
	Offset int
	// Line is the line number in 'Input' at which the error occurred.
	Line int
	// Column is the column (in runes) into the indicated Line that the error
	// occurred. Line & Column represent the same point in 'Input' as 'Offset'.
	Column int
	// The specific parser error that occurred.
	Details string
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("unable to parse %s: line %d column %d: %s",
		p.ParseType, p.Line, p.Column, p.Details)
}

// coordinates returns the line & column of the supplied offset in the string
// 'input'. Offset is in bytes, the returned column value is in runes.
func coordinates(input string, atOffset int) (line, col int) {
	// Trailing whitespace isn't an expected place for an error.
	input = strings.TrimRightFunc(input, unicode.IsSpace)
	atOffset = cmp.MinInt(atOffset, len(input))

	lines := strings.Split(input, "\n")
	current := 0
	line = 1
	for _, l := range lines {
		if current+len(l) >= atOffset {
			col = utf8.RuneCountInString(l[:atOffset-current]) + 1
			return line, col
		}
		line++
		current += len(l) + 1 // the \n
	}
	panic(fmt.Sprintf("shouldn't get here. Input was '%s' atOffset: %d", input, atOffset))
}

// expectedText extracts from the supplied goparsify Error the expected text
// i.e. the error from an unmatched parser. This relies on the format of the
// error message generated by goparsify.
func expectedText(e *goparsify.Error) string {
	msg := e.Error()
	expectedIdx := strings.Index(msg, "expected")
	if expectedIdx == -1 {
		logrus.WithField("err", msg).
			Warn("Got goparsify error with missing 'expected' string")
		return msg
	}
	return msg[expectedIdx+len("expected")+1:]
}

func (p *parser) parsePattern() (rdf.Pattern, error) {
	result, err := p.parse("pattern", pattern)
	if err != nil {
		return rdf.Pattern{}, err
	}
	res, ok := result.Result.(rdf.Pattern)
	if !ok {
		return rdf.Pattern{}, fmt.Errorf("invalid result type: %T", result.Result)
	}
	return res, nil
}

func (p *parser) parseTerm() (rdf.Term, error) {
	result, err := p.parse("term", term)
	if err != nil {
		return nil, err
	}
	switch res := result.Result.(type) {
	case variable:
		return nil, nil
	case rdf.Term:
		return res, nil
	}
	return nil, fmt.Errorf("invalid result type: %T", result.Result)
}
