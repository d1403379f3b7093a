// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package codegen

import (
	"fmt"
	"strings"
	"unicode"
)

// recordTypeName is the exported Go type name for a Category's top-level
// record, e.g. Category "021" becomes "Cat021Record".
func recordTypeName(categoryID string) string {
	return fmt.Sprintf("Cat%sRecord", categoryID)
}

// itemTypeName is the exported Go type name for a Data Item's structure: the
// item ID used verbatim, with any non-identifier characters stripped, e.g.
// Item "161" becomes "Item161", Item "SP" becomes "ItemSP".
func itemTypeName(itemID string) string {
	return "Item" + stripNonIdentifierChars(itemID)
}

// stripNonIdentifierChars removes every rune that cannot appear in a Go
// identifier, preserving the case and order of the rest.
func stripNonIdentifierChars(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// partFieldName/partTypeName are the exported Go field name and nested type
// name for one Part of an Extended structure (spec §4.3.1: "<Item>PartK").
func partFieldName(index uint) string {
	return fmt.Sprintf("Part%d", index)
}

func partTypeName(ownerTypeName string, index uint) string {
	return ownerTypeName + partFieldName(index)
}

// enumTypeName is the exported Go type name for a declared Enum field.
func enumTypeName(ownerTypeName, fieldName string) string {
	return ownerTypeName + exportedName(fieldName)
}

// exportedName turns a schema field name (snake_case or kebab-case) into an
// exported Go identifier, e.g. "track_number" becomes "TrackNumber".
func exportedName(name string) string {
	c := toCamelCase(name)
	if c == "" {
		return c
	}
	return strings.ToUpper(c[:1]) + c[1:]
}

// enumValueConstName is the exported Go constant name for one Enum variant.
func enumValueConstName(enumType, valueName string) string {
	return enumType + exportedName(valueName)
}

// Capitalise each word.
func toPascalCase(name string) string {
	return camelify(name, true)
}

// Capitalise each word, except first.
func toCamelCase(name string) string {
	var word string
	//
	for i, w := range splitWords(name) {
		if i == 0 {
			word = camelify(w, false)
		} else {
			word = fmt.Sprintf("%s%s", word, camelify(w, true))
		}
	}
	//
	return word
}

// Make all letters lowercase, and optionally capitalise the first letter.
func camelify(name string, first bool) string {
	letters := strings.Split(name, "")
	for i := range letters {
		if first && i == 0 {
			letters[i] = strings.ToUpper(letters[i])
		} else {
			letters[i] = strings.ToLower(letters[i])
		}
	}
	//
	return strings.Join(letters, "")
}

func splitWords(name string) []string {
	var words []string
	//
	for _, w1 := range strings.Split(name, "_") {
		for _, w2 := range strings.Split(w1, "-") {
			words = append(words, splitCaseChange(w2)...)
		}
	}
	//
	return words
}

func splitCaseChange(word string) []string {
	var (
		runes       = []rune(word)
		words       []string
		last   bool = true
		start  int
	)
	//
	for i, r := range runes {
		ith := unicode.IsUpper(r)
		if !last && ith {
			words = append(words, string(runes[start:i]))
			start = i
		}
		last = ith
	}
	words = append(words, string(runes[start:]))
	//
	return words
}

// indentBuilder is a strings.Builder wrapper that tracks nesting depth so
// emitted Go source is indented with tabs the way gofmt would leave it.
type indentBuilder struct {
	indent  uint
	builder *strings.Builder
}

func newIndentBuilder() indentBuilder {
	return indentBuilder{0, &strings.Builder{}}
}

func (p indentBuilder) Indent() indentBuilder {
	return indentBuilder{p.indent + 1, p.builder}
}

func (p indentBuilder) WriteString(raw string) {
	p.builder.WriteString(raw)
}

func (p indentBuilder) WriteIndentedString(pieces ...string) {
	p.WriteIndent()
	//
	for _, s := range pieces {
		p.builder.WriteString(s)
	}
}

func (p indentBuilder) WriteIndent() {
	for i := uint(0); i < p.indent; i++ {
		p.builder.WriteString("\t")
	}
}

func (p indentBuilder) String() string {
	return p.builder.String()
}
