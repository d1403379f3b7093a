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

// Package loader reads the XML schema grammar of spec §6.1 into the raw
// document tree below, then walks it into a validated pkg/schema IR,
// performing every structural invariant in spec §3. It is the sole
// authority on schema validity: pkg/codegen assumes a well-formed IR and
// performs no further checks.
package loader

import "encoding/xml"

// rawCategory mirrors <category id="NNN"> ... </category>.
type rawCategory struct {
	XMLName xml.Name   `xml:"category"`
	ID      string     `xml:"id,attr"`
	Items   []rawItem  `xml:"item"`
}

// rawItem mirrors <item id="..." frn="..."> containing exactly one of
// <fixed>, <extended>, <repetitive>, <explicit>, <compound>.
type rawItem struct {
	ID         string         `xml:"id,attr"`
	FRN        uint           `xml:"frn,attr"`
	Fixed      *rawFixed      `xml:"fixed"`
	Extended   *rawExtended   `xml:"extended"`
	Repetitive *rawRepetitive `xml:"repetitive"`
	Explicit   *rawExplicit   `xml:"explicit"`
	Compound   *rawCompound   `xml:"compound"`
}

// rawFixed mirrors <fixed bytes="N"> containing ordered <field>/<spare>/
// <enum>/<epb> children. ",any" preserves document order across the mixed
// child tag names, which a same-tag-per-field struct mapping cannot do.
type rawFixed struct {
	Bytes    uint         `xml:"bytes,attr"`
	Elements []rawElement `xml:",any"`
}

// rawPart mirrors one <part index="K"> child of <extended>.
type rawPart struct {
	Index    uint         `xml:"index,attr"`
	Elements []rawElement `xml:",any"`
}

// rawExtended mirrors <extended part_bytes="N"> containing ordered <part>
// children.
type rawExtended struct {
	PartBytes uint      `xml:"part_bytes,attr"`
	Parts     []rawPart `xml:"part"`
}

// rawRepetitive mirrors <repetitive bytes="N" counter_bits="8|16">.
type rawRepetitive struct {
	Bytes       uint         `xml:"bytes,attr"`
	CounterBits uint         `xml:"counter_bits,attr"`
	Elements    []rawElement `xml:",any"`
}

// rawExplicit mirrors <explicit bytes="N">.
type rawExplicit struct {
	Bytes    uint         `xml:"bytes,attr"`
	Elements []rawElement `xml:",any"`
}

// rawCompound mirrors <compound> containing ordered <subfield> children,
// each wrapping exactly one Fixed/Extended/Repetitive/Explicit structure.
type rawCompound struct {
	Subfields []rawSubfield `xml:"subfield"`
}

// rawSubfield mirrors one <subfield> child of <compound>.
type rawSubfield struct {
	ID         string         `xml:"id,attr"`
	Fixed      *rawFixed      `xml:"fixed"`
	Extended   *rawExtended   `xml:"extended"`
	Repetitive *rawRepetitive `xml:"repetitive"`
	Explicit   *rawExplicit   `xml:"explicit"`
}

// rawElement mirrors one <field>, <spare>, <enum>, or <epb> child. XMLName
// discriminates which kind this is; Inner carries an <epb>'s single
// <field>/<enum> child.
type rawElement struct {
	XMLName xml.Name
	Name    string         `xml:"name,attr"`
	Bits    uint           `xml:"bits,attr"`
	Values  []rawEnumValue `xml:"value"`
	Inner   []rawElement   `xml:",any"`
}

// rawEnumValue mirrors one <value name="..." numeric="..."/> child of an
// <enum>.
type rawEnumValue struct {
	Name    string `xml:"name,attr"`
	Numeric int64  `xml:"numeric,attr"`
}
