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

// Package table formats rows of text into a table for human consumption.
package table

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/retog/rdfwrapper-example/util/cmp"
	"golang.org/x/text/unicode/norm"
)

// Options control how the table is generated. They may be combined with '|'.
type Options int

const (
	// HeaderRow separates the first row from the rest with a divider.
	HeaderRow Options = 1 << iota
	// FooterRow separates the last row from the rest with a divider.
	FooterRow
	// SkipEmpty generates nothing if the table has no rows besides its header
	// and footer rows.
	SkipEmpty
	// RightJustify pads cells on the left rather than the right.
	RightJustify
)

func (o Options) has(flag Options) bool {
	return o&flag != 0
}

// PrettyPrint writes 't' as a table to the supplied Writer. Cells may span
// several lines; use \n as a line break. Rows with fewer cells than the widest
// row are padded with empty cells. It returns the first error encountered
// while writing.
func PrettyPrint(dest io.Writer, t [][]string, opts Options) error {
	chrome := 0
	if opts.has(HeaderRow) {
		chrome++
	}
	if opts.has(FooterRow) {
		chrome++
	}
	if len(t) == 0 || (opts.has(SkipEmpty) && len(t) <= chrome) {
		return nil
	}
	numCols := 0
	for _, row := range t {
		numCols = cmp.MaxInt(numCols, len(row))
	}
	rows := make([][][]string, len(t))
	widths := make([]int, numCols)
	for ridx, row := range t {
		rows[ridx] = make([][]string, numCols)
		for cidx := range rows[ridx] {
			text := ""
			if cidx < len(row) {
				text = row[cidx]
			}
			lines := strings.Split(text, "\n")
			for _, l := range lines {
				widths[cidx] = cmp.MaxInt(widths[cidx], charsWide(l))
			}
			rows[ridx][cidx] = lines
		}
	}

	w := bufio.NewWriterSize(dest, 256)
	for ridx, row := range rows {
		height := 0
		for _, lines := range row {
			height = cmp.MaxInt(height, len(lines))
		}
		for lidx := 0; lidx < height; lidx++ {
			for cidx, lines := range row {
				l := ""
				if lidx < len(lines) {
					l = lines[lidx]
				}
				w.WriteByte(' ')
				w.WriteString(pad(l, widths[cidx], opts.has(RightJustify)))
				w.WriteString(" |")
			}
			w.WriteByte('\n')
		}
		if (opts.has(HeaderRow) && ridx == 0) || (opts.has(FooterRow) && ridx == len(rows)-2) {
			for _, width := range widths {
				w.WriteByte(' ')
				w.WriteString(strings.Repeat("-", width))
				w.WriteString(" |")
			}
			w.WriteByte('\n')
		}
	}
	return w.Flush()
}

// pad returns s padded with spaces to the given width.
func pad(s string, width int, right bool) string {
	n := width - charsWide(s)
	if n <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// charsWide estimates how wide a string will be on a typical terminal or web
// browser. Combining characters are folded into their base character first.
func charsWide(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}
