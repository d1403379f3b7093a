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

// emitFlatDecode/emitFlatEncode cover Fixed structures (and a Repetitive's
// per-entry element block): the whole type is one elements block, read or
// written start to finish with no surrounding framing.

func emitFlatDecode(b indentBuilder, typeName string, plans []fieldPlan) {
	b.WriteIndentedString(fmt.Sprintf("// Decode%s reads one %s from r.\n", typeName, typeName))
	b.WriteIndentedString(fmt.Sprintf("func Decode%s(r *wire.BitReader) (%s, error) {\n", typeName, typeName))
	inner := b.Indent()
	inner.WriteIndentedString(fmt.Sprintf("var out %s\n", typeName))
	writeDecodeElements(inner, plans, "out")
	inner.WriteIndentedString("return out, nil\n")
	b.WriteIndentedString("}\n\n")
}

func emitFlatEncode(b indentBuilder, typeName string, plans []fieldPlan) {
	b.WriteIndentedString(fmt.Sprintf("// Encode%s writes in to w.\n", typeName))
	b.WriteIndentedString(fmt.Sprintf("func Encode%s(w *wire.BitWriter, in %s) error {\n", typeName, typeName))
	inner := b.Indent()
	writeEncodeElements(inner, plans, "in")
	inner.WriteIndentedString("return nil\n")
	b.WriteIndentedString("}\n\n")
}

func emitExtendedDecode(b indentBuilder, typeName string, ext schema.Extended, partTypes []string) {
	b.WriteIndentedString(fmt.Sprintf("// Decode%s reads one %s, following its FX chain until an\n", typeName, typeName))
	b.WriteIndentedString("// extension bit of 0 or the declared part count is exhausted. Parts the\n")
	b.WriteIndentedString("// chain never reaches are left absent.\n")
	b.WriteIndentedString(fmt.Sprintf("func Decode%s(r *wire.BitReader) (%s, error) {\n", typeName, typeName))
	inner := b.Indent()
	inner.WriteIndentedString(fmt.Sprintf("var out %s\n", typeName))
	//
	for i, part := range ext.Parts {
		plans := planElements(part.Elements, partTypes[i])
		fieldName := partFieldName(part.Index)
		varName := fmt.Sprintf("part%d", i)
		//
		inner.WriteIndentedString(fmt.Sprintf("// part %d\n", i))
		inner.WriteIndentedString(fmt.Sprintf("var %s %s\n", varName, partTypes[i]))
		writeDecodeElements(inner, plans, varName)
		if i == 0 {
			inner.WriteIndentedString(fmt.Sprintf("out.%s = %s\n", fieldName, varName))
		} else {
			inner.WriteIndentedString(fmt.Sprintf("out.%s = &%s\n", fieldName, varName))
		}
		//
		last := i == len(ext.Parts)-1
		inner.WriteIndentedString("if fx, err := r.ReadBits(1); err != nil {\n")
		inner.Indent().WriteIndentedString(fmt.Sprintf("return out, fmt.Errorf(\"part %d fx: %%w\", err)\n", i))
		if last {
			inner.WriteIndentedString("} else if fx == 1 {\n")
			inner.Indent().WriteIndentedString("return out, fmt.Errorf(\"%w: extension beyond declared parts\", wire.ErrInvalidData)\n")
			inner.WriteIndentedString("}\n")
		} else {
			inner.WriteIndentedString("} else if fx == 0 {\n")
			inner.Indent().WriteIndentedString("return out, nil\n")
			inner.WriteIndentedString("}\n")
		}
	}
	inner.WriteIndentedString("return out, nil\n")
	b.WriteIndentedString("}\n\n")
}

func emitExtendedEncode(b indentBuilder, typeName string, ext schema.Extended, partTypes []string) {
	b.WriteIndentedString(fmt.Sprintf("// Encode%s writes in, stopping at the first absent Part: for the\n", typeName))
	b.WriteIndentedString("// last present Part, FX=0; for every earlier present Part, FX=1.\n")
	b.WriteIndentedString(fmt.Sprintf("func Encode%s(w *wire.BitWriter, in %s) error {\n", typeName, typeName))
	inner := b.Indent()
	//
	for i, part := range ext.Parts {
		plans := planElements(part.Elements, partTypes[i])
		fieldName := partFieldName(part.Index)
		last := i == len(ext.Parts)-1
		//
		var receiver string
		if i == 0 {
			receiver = "in." + fieldName
		} else {
			inner.WriteIndentedString(fmt.Sprintf("if in.%s == nil {\n", fieldName))
			inner.Indent().WriteIndentedString("return nil\n")
			inner.WriteIndentedString("}\n")
			receiver = "in." + fieldName
		}
		//
		inner.WriteIndentedString(fmt.Sprintf("// part %d\n", i))
		writeEncodeElements(inner, plans, receiver)
		//
		if last {
			inner.WriteIndentedString("if err := w.WriteBits(0, 1); err != nil {\n")
			inner.Indent().WriteIndentedString(fmt.Sprintf("return fmt.Errorf(\"part %d fx: %%w\", err)\n", i))
			inner.WriteIndentedString("}\n")
		} else {
			nextField := partFieldName(ext.Parts[i+1].Index)
			inner.WriteIndentedString(fmt.Sprintf("fx%d := uint64(0)\n", i))
			inner.WriteIndentedString(fmt.Sprintf("if in.%s != nil {\n", nextField))
			inner.Indent().WriteIndentedString(fmt.Sprintf("fx%d = 1\n", i))
			inner.WriteIndentedString("}\n")
			inner.WriteIndentedString(fmt.Sprintf("if err := w.WriteBits(fx%d, 1); err != nil {\n", i))
			inner.Indent().WriteIndentedString(fmt.Sprintf("return fmt.Errorf(\"part %d fx: %%w\", err)\n", i))
			inner.WriteIndentedString("}\n")
		}
	}
	inner.WriteIndentedString("return nil\n")
	b.WriteIndentedString("}\n\n")
}

func emitRepetitiveDecode(b indentBuilder, typeName, entryType string, counterBits uint) {
	b.WriteIndentedString(fmt.Sprintf("// Decode%s reads a %d-bit repetition count followed by that many %s values.\n", typeName, counterBits, entryType))
	b.WriteIndentedString(fmt.Sprintf("func Decode%s(r *wire.BitReader) ([]%s, error) {\n", typeName, entryType))
	inner := b.Indent()
	inner.WriteIndentedString(fmt.Sprintf("count, err := r.ReadBits(%d)\n", counterBits))
	inner.WriteIndentedString("if err != nil {\n")
	inner.Indent().WriteIndentedString("return nil, fmt.Errorf(\"repetition count: %w\", err)\n")
	inner.WriteIndentedString("}\n")
	inner.WriteIndentedString(fmt.Sprintf("out := make([]%s, 0, count)\n", entryType))
	inner.WriteIndentedString("for i := uint64(0); i < count; i++ {\n")
	loop := inner.Indent()
	loop.WriteIndentedString(fmt.Sprintf("entry, err := Decode%s(r)\n", entryType))
	loop.WriteIndentedString("if err != nil {\n")
	loop.Indent().WriteIndentedString("return out, fmt.Errorf(\"entry %d: %w\", i, err)\n")
	loop.WriteIndentedString("}\n")
	loop.WriteIndentedString("out = append(out, entry)\n")
	inner.WriteIndentedString("}\n")
	inner.WriteIndentedString("return out, nil\n")
	b.WriteIndentedString("}\n\n")
}

func emitRepetitiveEncode(b indentBuilder, typeName, entryType string, counterBits uint) {
	b.WriteIndentedString(fmt.Sprintf("// Encode%s writes the repetition count followed by each entry.\n", typeName))
	b.WriteIndentedString(fmt.Sprintf("func Encode%s(w *wire.BitWriter, in []%s) error {\n", typeName, entryType))
	inner := b.Indent()
	inner.WriteIndentedString(fmt.Sprintf("if uint64(len(in)) > %d {\n", maxRepresentableByBits(counterBits)))
	inner.Indent().WriteIndentedString("return fmt.Errorf(\"%w: too many repetitions\", wire.ErrInvalidData)\n")
	inner.WriteIndentedString("}\n")
	inner.WriteIndentedString(fmt.Sprintf("if err := w.WriteBits(uint64(len(in)), %d); err != nil {\n", counterBits))
	inner.Indent().WriteIndentedString("return fmt.Errorf(\"repetition count: %w\", err)\n")
	inner.WriteIndentedString("}\n")
	inner.WriteIndentedString("for i := range in {\n")
	loop := inner.Indent()
	loop.WriteIndentedString(fmt.Sprintf("if err := Encode%s(w, in[i]); err != nil {\n", entryType))
	loop.Indent().WriteIndentedString("return fmt.Errorf(\"entry %d: %w\", i, err)\n")
	loop.WriteIndentedString("}\n")
	inner.WriteIndentedString("}\n")
	inner.WriteIndentedString("return nil\n")
	b.WriteIndentedString("}\n\n")
}

func emitExplicitDecode(b indentBuilder, typeName string, plans []fieldPlan, declaredBytes uint) {
	b.WriteIndentedString(fmt.Sprintf("// Decode%s reads an 8-bit total length (inclusive of itself), the\n", typeName))
	b.WriteIndentedString("// declared fields, then discards any surplus bytes the length implies.\n")
	b.WriteIndentedString(fmt.Sprintf("func Decode%s(r *wire.BitReader) (%s, error) {\n", typeName, typeName))
	inner := b.Indent()
	inner.WriteIndentedString(fmt.Sprintf("var out %s\n", typeName))
	inner.WriteIndentedString("length, err := r.ReadBits(8)\n")
	inner.WriteIndentedString("if err != nil {\n")
	inner.Indent().WriteIndentedString("return out, fmt.Errorf(\"length: %w\", err)\n")
	inner.WriteIndentedString("}\n")
	inner.WriteIndentedString(fmt.Sprintf("if length < %d {\n", declaredBytes+1))
	inner.Indent().WriteIndentedString("return out, fmt.Errorf(\"%w: explicit length shorter than declared fields\", wire.ErrInvalidData)\n")
	inner.WriteIndentedString("}\n")
	writeDecodeElements(inner, plans, "out")
	inner.WriteIndentedString(fmt.Sprintf("for i := uint64(0); i < length-%d; i++ {\n", declaredBytes+1))
	loop := inner.Indent()
	loop.WriteIndentedString("if _, err := r.ReadBits(8); err != nil {\n")
	loop.Indent().WriteIndentedString("return out, fmt.Errorf(\"surplus byte %d: %w\", i, err)\n")
	loop.WriteIndentedString("}\n")
	inner.WriteIndentedString("}\n")
	inner.WriteIndentedString("return out, nil\n")
	b.WriteIndentedString("}\n\n")
}

func emitExplicitEncode(b indentBuilder, typeName string, plans []fieldPlan, declaredBytes uint) {
	b.WriteIndentedString(fmt.Sprintf("// Encode%s writes the declared fields preceded by their total length.\n", typeName))
	b.WriteIndentedString(fmt.Sprintf("func Encode%s(w *wire.BitWriter, in %s) error {\n", typeName, typeName))
	inner := b.Indent()
	inner.WriteIndentedString(fmt.Sprintf("if err := w.WriteBits(%d, 8); err != nil {\n", declaredBytes+1))
	inner.Indent().WriteIndentedString("return fmt.Errorf(\"length: %w\", err)\n")
	inner.WriteIndentedString("}\n")
	writeEncodeElements(inner, plans, "in")
	inner.WriteIndentedString("return nil\n")
	b.WriteIndentedString("}\n\n")
}

func maxRepresentableByBits(bits uint) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}
