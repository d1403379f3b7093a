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

	"github.com/asterix-schema/astcodec/pkg/schema"
)

// emitFieldStruct writes `type typeName struct { ... }` for a flat elements
// block, and any enum types its fields reference.
func emitFieldStruct(b indentBuilder, typeName string, plans []fieldPlan) {
	for _, p := range plans {
		if p.Enum != nil {
			emitEnum(b, p.EnumTypeName, p)
		}
	}
	//
	b.WriteIndentedString(fmt.Sprintf("type %s struct {\n", typeName))
	inner := b.Indent()
	for _, p := range plans {
		if p.Spare {
			continue
		}
		inner.WriteIndentedString(fmt.Sprintf("%s %s\n", p.FieldName, p.goType()))
	}
	b.WriteIndentedString("}\n\n")
}

// emitStructureComponent emits every Go declaration needed to represent and
// codec a schema.Structure under typeName (struct type(s), enum types, and
// Decode<typeName>/Encode<typeName> functions), and returns the Go type an
// enclosing struct should use to reference it.
func emitStructureComponent(b indentBuilder, typeName string, st schema.Structure) string {
	switch v := st.(type) {
	case schema.Fixed:
		plans := planElements(v.Elements, typeName)
		emitFieldStruct(b, typeName, plans)
		emitFlatDecode(b, typeName, plans)
		emitFlatEncode(b, typeName, plans)
		return typeName
	case schema.Explicit:
		plans := planElements(v.Elements, typeName)
		emitFieldStruct(b, typeName, plans)
		emitExplicitDecode(b, typeName, plans, v.Bytes)
		emitExplicitEncode(b, typeName, plans, v.Bytes)
		return typeName
	case schema.Extended:
		emitExtendedComponent(b, typeName, v)
		return typeName
	case schema.Repetitive:
		entryType := typeName + "Entry"
		plans := planElements(v.Elements, entryType)
		emitFieldStruct(b, entryType, plans)
		emitFlatDecode(b, entryType, plans)
		emitFlatEncode(b, entryType, plans)
		emitRepetitiveComponent(b, typeName, entryType, v.CounterBits)
		return "[]" + entryType
	case schema.Compound:
		emitCompoundComponent(b, typeName, v)
		return typeName
	default:
		return typeName
	}
}

// emitExtendedComponent emits one nested <Item>PartK struct per declared
// Part (spec §4.3.1), then the item's own struct: Part0 is a plain,
// always-present field; Part1.. are pointers, since the FX chain may stop
// at any point, and absent trailing Parts must contribute nothing to the
// wire (spec §4.3.6).
func emitExtendedComponent(b indentBuilder, typeName string, ext schema.Extended) {
	partTypes := make([]string, len(ext.Parts))
	for i, part := range ext.Parts {
		pt := partTypeName(typeName, part.Index)
		partTypes[i] = pt
		plans := planElements(part.Elements, pt)
		emitFieldStruct(b, pt, plans)
	}
	//
	b.WriteIndentedString(fmt.Sprintf("type %s struct {\n", typeName))
	inner := b.Indent()
	inner.WriteIndentedString(fmt.Sprintf("%s %s\n", partFieldName(0), partTypes[0]))
	for i := 1; i < len(partTypes); i++ {
		inner.WriteIndentedString(fmt.Sprintf("%s *%s\n", partFieldName(uint(i)), partTypes[i]))
	}
	b.WriteIndentedString("}\n\n")
	//
	emitExtendedDecode(b, typeName, ext, partTypes)
	emitExtendedEncode(b, typeName, ext, partTypes)
}

func emitRepetitiveComponent(b indentBuilder, typeName, entryType string, counterBits uint) {
	emitRepetitiveDecode(b, typeName, entryType, counterBits)
	emitRepetitiveEncode(b, typeName, entryType, counterBits)
}

// subfieldMeta is the per-subfield information emitCompoundDecode/Encode
// need to read/write one FSPEC-gated pointer field.
type subfieldMeta struct {
	FieldName string
	GoType    string
	// TypeName is the name passed to emitStructureComponent for this
	// subfield, and thus the suffix of its Decode<TypeName>/Encode<TypeName>
	// functions.
	TypeName string
	Index    uint
}

func emitCompoundComponent(b indentBuilder, typeName string, comp schema.Compound) {
	subs := make([]subfieldMeta, 0, len(comp.Subfields))
	//
	for _, sub := range comp.Subfields {
		suffix := fmt.Sprintf("Sub%d", sub.Index+1)
		subTypeName := typeName + suffix
		goType := emitStructureComponent(b, subTypeName, sub.Structure)
		subs = append(subs, subfieldMeta{
			FieldName: suffix,
			GoType:    goType,
			TypeName:  subTypeName,
			Index:     sub.Index,
		})
	}
	//
	b.WriteIndentedString(fmt.Sprintf("type %s struct {\n", typeName))
	inner := b.Indent()
	for _, s := range subs {
		inner.WriteIndentedString(fmt.Sprintf("%s %s\n", s.FieldName, optionalGoType(s.GoType)))
	}
	b.WriteIndentedString("}\n\n")
	//
	emitCompoundDecode(b, typeName, subs)
	emitCompoundEncode(b, typeName, subs)
}

// optionalGoType wraps goType in a pointer to represent FSPEC-gated
// presence, unless goType is already a slice (Repetitive), whose nil value
// already means absent.
func optionalGoType(goType string) string {
	if len(goType) > 0 && goType[0] == '[' {
		return goType
	}
	return "*" + goType
}

// isSliceGoType reports whether goType denotes a slice (a Repetitive
// structure's generated type), which is checked for presence via != nil
// rather than dereferenced.
func isSliceGoType(goType string) bool {
	return len(goType) > 0 && goType[0] == '['
}
