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

package persondb

// NewSliceIterator returns an Iterator over the given records.
func NewSliceIterator(records ...Record) Iterator {
	return &sliceIterator{records: records, pos: -1}
}

type sliceIterator struct {
	records []Record
	pos     int
}

func (it *sliceIterator) Next() bool {
	if it.pos+1 >= len(it.records) {
		it.pos = len(it.records)
		return false
	}
	it.pos++
	return true
}

func (it *sliceIterator) Record() Record {
	if it.pos < 0 || it.pos >= len(it.records) {
		return nil
	}
	return it.records[it.pos]
}

func (it *sliceIterator) Err() error {
	return nil
}

// ErrorIterator returns an Iterator that yields no records and reports err.
func ErrorIterator(err error) Iterator {
	return errIterator{err: err}
}

type errIterator struct {
	err error
}

func (errIterator) Next() bool     { return false }
func (errIterator) Record() Record { return nil }
func (it errIterator) Err() error  { return it.err }
