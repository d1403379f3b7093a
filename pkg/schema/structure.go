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

// Fixed is a fixed-length Data Item: a whole number of bytes holding an
// ordered list of Elements whose bit widths sum to exactly Bytes*8.
type Fixed struct {
	Bytes    uint
	Elements []Element
}

// Kind implements Structure.
func (Fixed) Kind() StructureKind { return KindFixed }
func (Fixed) isSubStructure()     {}

// Part is one FX-chained part of an Extended structure. Its Elements sum to
// PartBytes*8-1 bits; the final bit of each part is the implicit FX flag,
// never listed among Elements.
type Part struct {
	Index    uint
	Elements []Element
}

// Extended is an FX-chained sequence of fixed-size Parts. At least one Part
// must exist; Part indices form a dense 0..K-1 range.
type Extended struct {
	PartBytes uint
	Parts     []Part
}

// Kind implements Structure.
func (Extended) Kind() StructureKind { return KindExtended }
func (Extended) isSubStructure()     {}

// Repetitive is a counted sequence of fixed-size repetitions. The wire
// count prefixes the repetitions, width CounterBits (8 or 16).
type Repetitive struct {
	Bytes       uint
	CounterBits uint
	Elements    []Element
}

// Kind implements Structure.
func (Repetitive) Kind() StructureKind { return KindRepetitive }
func (Repetitive) isSubStructure()     {}

// Explicit is a variable-length structure whose wire payload is prefixed by
// an 8-bit total-length byte (inclusive of the length byte itself).
type Explicit struct {
	Bytes    uint
	Elements []Element
}

// Kind implements Structure.
func (Explicit) Kind() StructureKind { return KindExplicit }
func (Explicit) isSubStructure()     {}

// Subfield is one member of a Compound's ordered subfield list. Its
// Structure is always Fixed, Extended, Repetitive, or Explicit — never
// Compound (Compound items do not nest, spec §3/§9).
type Subfield struct {
	Index     uint
	ID        string
	Structure SubStructure
}

// Compound is an FSPEC-gated ordered list of Subfields, each independently
// present or absent. pkg/loader rejects a Compound with more than 7
// subfields, so a Compound's FSPEC always fits a single octet; Compounds
// whose FSPEC chains into further octets are not accepted.
type Compound struct {
	Subfields []Subfield
}

// Kind implements Structure.
func (Compound) Kind() StructureKind { return KindCompound }
