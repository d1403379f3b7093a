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
package schema

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes a stable checksum over the normalized structure of
// this Category: its items, their FRNs, and every element's name/bitwidth.
// Two schemas with identical wire-level structure (even if sourced from
// differently-formatted XML) hash to the same value, so a build pipeline
// can use this to skip regenerating an unchanged Category.
func (c *Category) Fingerprint() uint64 {
	var b strings.Builder
	//
	fmt.Fprintf(&b, "cat:%s\n", c.ID)
	//
	for _, item := range c.Items {
		fmt.Fprintf(&b, "item:%d:%s\n", item.FRN, item.ID)
		writeStructureFingerprint(&b, item.Structure)
	}
	//
	return xxhash.Sum64String(b.String())
}

func writeStructureFingerprint(b *strings.Builder, s Structure) {
	switch v := s.(type) {
	case Fixed:
		fmt.Fprintf(b, "fixed:%d\n", v.Bytes)
		writeElementsFingerprint(b, v.Elements)
	case Extended:
		fmt.Fprintf(b, "extended:%d:%d\n", v.PartBytes, len(v.Parts))
		for _, part := range v.Parts {
			fmt.Fprintf(b, "part:%d\n", part.Index)
			writeElementsFingerprint(b, part.Elements)
		}
	case Repetitive:
		fmt.Fprintf(b, "repetitive:%d:%d\n", v.Bytes, v.CounterBits)
		writeElementsFingerprint(b, v.Elements)
	case Explicit:
		fmt.Fprintf(b, "explicit:%d\n", v.Bytes)
		writeElementsFingerprint(b, v.Elements)
	case Compound:
		fmt.Fprintf(b, "compound:%d\n", len(v.Subfields))
		for _, sub := range v.Subfields {
			fmt.Fprintf(b, "sub:%d:%s\n", sub.Index, sub.ID)
			writeStructureFingerprint(b, sub.Structure)
		}
	}
}

func writeElementsFingerprint(b *strings.Builder, elements []Element) {
	for _, el := range elements {
		writeElementFingerprint(b, el)
	}
}

func writeElementFingerprint(b *strings.Builder, el Element) {
	switch v := el.(type) {
	case Field:
		fmt.Fprintf(b, "field:%s:%d\n", v.Name, v.Bits)
	case Spare:
		fmt.Fprintf(b, "spare:%d\n", v.Bits)
	case Enum:
		fmt.Fprintf(b, "enum:%s:%d\n", v.Name, v.Bits)
		for _, ev := range v.Values {
			fmt.Fprintf(b, "enumval:%s:%d\n", ev.Name, ev.Value)
		}
	case EPB:
		fmt.Fprintf(b, "epb:\n")
		writeElementFingerprint(b, v.Inner)
	}
}
