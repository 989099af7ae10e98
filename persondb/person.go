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

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Person is a Record held by value. A nil attribute field means the person
// doesn't have that attribute; an empty string is a present, empty value.
type Person struct {
	ID        string  `yaml:"id" json:"id"`
	FirstName *string `yaml:"firstName,omitempty" json:"firstName,omitempty"`
	LastName  *string `yaml:"lastName,omitempty" json:"lastName,omitempty"`
	Note      *string `yaml:"note,omitempty" json:"note,omitempty"`
}

// String returns a pointer to s, for filling in Person attributes.
func String(s string) *string {
	return &s
}

// Key implements cmp.Key. People are identified by their ID. A Person without
// an ID is only the same person as itself.
func (p *Person) Key(b *strings.Builder) {
	if p.ID == "" {
		fmt.Fprintf(b, "person@%p", p)
		return
	}
	b.WriteString("person/")
	b.WriteString(p.ID)
}

// Attribute implements Record.
func (p *Person) Attribute(a Attribute) (string, bool) {
	var v *string
	switch a {
	case FirstName:
		v = p.FirstName
	case LastName:
		v = p.LastName
	case Note:
		v = p.Note
	}
	if v == nil {
		return "", false
	}
	return *v, true
}

// Clone returns a deep copy of p.
func (p *Person) Clone() *Person {
	c := Person{ID: p.ID}
	if p.FirstName != nil {
		c.FirstName = String(*p.FirstName)
	}
	if p.LastName != nil {
		c.LastName = String(*p.LastName)
	}
	if p.Note != nil {
		c.Note = String(*p.Note)
	}
	return &c
}

func (p *Person) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "{id:%s", p.ID)
	for _, a := range Attributes {
		if v, ok := p.Attribute(a); ok {
			fmt.Fprintf(&b, " %v:%q", a, v)
		}
	}
	b.WriteByte('}')
	return b.String()
}

// peopleFile is the document layout read by LoadFile.
type peopleFile struct {
	People []Person `yaml:"people"`
}

// LoadFile reads people from a YAML file of the form:
//
//	people:
//	  - id: bob
//	    firstName: Bob
//	    lastName: Basinga
//	    note: Today I met Alice.
//
// Upon success it returns the people in file order. Otherwise, it returns an
// error, which already includes the filename.
func LoadFile(filename string) ([]Person, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	people, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error decoding people in %v: %v", filename, err)
	}
	return people, nil
}

// Decode reads people from YAML, as described in LoadFile. Unknown fields are
// rejected.
func Decode(r io.Reader) ([]Person, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc peopleFile
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	return doc.People, nil
}
