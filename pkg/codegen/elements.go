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

import "github.com/asterix-schema/astcodec/pkg/schema"

// fieldPlan is the codegen-level description of one schema.Element within
// an elements block (a Fixed/Extended-Part/Repetitive/Explicit's Elements
// slice), carrying the derived Go names and types the struct/decode/encode
// emitters share.
type fieldPlan struct {
	// Spare is true for elements that occupy wire bits but never appear as
	// a struct field.
	Spare bool
	// EPB is true when this element was declared inside an <epb>; the
	// struct field becomes a pointer signalling presence.
	EPB bool
	// FieldName is the exported Go struct field name; empty for Spare.
	FieldName string
	// Bits is the payload width, excluding the EPB presence bit itself.
	Bits uint
	// Enum is non-nil when the payload is an enumerated field.
	Enum *schema.Enum
	// EnumTypeName is the generated Go type name for Enum, when Enum != nil.
	EnumTypeName string
}

// payloadGoType returns the unqualified Go type of this field's payload
// (ignoring the EPB pointer wrapper).
func (p fieldPlan) payloadGoType() string {
	if p.Enum != nil {
		return p.EnumTypeName
	}
	return goIntType(p.Bits)
}

// goType returns the full Go type of the struct field, including the
// pointer wrapper an EPB-gated field carries.
func (p fieldPlan) goType() string {
	if p.EPB {
		return "*" + p.payloadGoType()
	}
	return p.payloadGoType()
}

// planElements walks a schema elements block in wire order, computing the
// codegen plan for every element. ownerType names the enclosing Go type,
// used to build collision-free enum type names.
func planElements(elements []schema.Element, ownerType string) []fieldPlan {
	plans := make([]fieldPlan, 0, len(elements))
	for _, el := range elements {
		plans = append(plans, planElement(el, ownerType, false))
	}
	return plans
}

func planElement(el schema.Element, ownerType string, insideEPB bool) fieldPlan {
	switch v := el.(type) {
	case schema.Spare:
		return fieldPlan{Spare: true, Bits: v.Bits}
	case schema.Field:
		return fieldPlan{FieldName: exportedName(v.Name), Bits: v.Bits, EPB: insideEPB}
	case schema.Enum:
		enum := v
		return fieldPlan{
			FieldName:    exportedName(v.Name),
			Bits:         v.Bits,
			Enum:         &enum,
			EnumTypeName: enumTypeName(ownerType, v.Name),
			EPB:          insideEPB,
		}
	case schema.EPB:
		inner := planElement(v.Inner, ownerType, true)
		return inner
	default:
		return fieldPlan{Spare: true}
	}
}
