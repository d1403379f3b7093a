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

import "fmt"

// emitCompoundDecode and emitCompoundEncode emit a Compound Data Item's
// codec. The top-level Category record shares the same FSPEC-gated,
// pointer-field shape but has its own emitters in recordgen.go.

func emitCompoundDecode(b indentBuilder, typeName string, subs []subfieldMeta) {
	b.WriteIndentedString(fmt.Sprintf("// Decode%s reads the FSPEC followed by each present subfield.\n", typeName))
	b.WriteIndentedString(fmt.Sprintf("func Decode%s(r *wire.BitReader) (%s, error) {\n", typeName, typeName))
	inner := b.Indent()
	inner.WriteIndentedString(fmt.Sprintf("var out %s\n", typeName))
	inner.WriteIndentedString("fspec, err := wire.ReadFspec(r)\n")
	inner.WriteIndentedString("if err != nil {\n")
	inner.Indent().WriteIndentedString("return out, fmt.Errorf(\"fspec: %w\", err)\n")
	inner.WriteIndentedString("}\n")
	//
	for _, s := range subs {
		octet, bit := fspecPosition(s.Index)
		inner.WriteIndentedString(fmt.Sprintf("if fspec.IsSet(%d, %d) {\n", octet, bit))
		body := inner.Indent()
		body.WriteIndentedString(fmt.Sprintf("v, err := Decode%s(r)\n", s.TypeName))
		body.WriteIndentedString("if err != nil {\n")
		body.Indent().WriteIndentedString(fmt.Sprintf("return out, fmt.Errorf(\"%s: %%w\", err)\n", s.FieldName))
		body.WriteIndentedString("}\n")
		if isSliceGoType(s.GoType) {
			body.WriteIndentedString(fmt.Sprintf("out.%s = v\n", s.FieldName))
		} else {
			body.WriteIndentedString(fmt.Sprintf("out.%s = &v\n", s.FieldName))
		}
		inner.WriteIndentedString("}\n")
	}
	inner.WriteIndentedString("return out, nil\n")
	b.WriteIndentedString("}\n\n")
}

func emitCompoundEncode(b indentBuilder, typeName string, subs []subfieldMeta) {
	b.WriteIndentedString(fmt.Sprintf("// Encode%s writes the FSPEC followed by each present subfield.\n", typeName))
	b.WriteIndentedString(fmt.Sprintf("func Encode%s(w *wire.BitWriter, in %s) error {\n", typeName, typeName))
	inner := b.Indent()
	inner.WriteIndentedString("fspec := wire.NewFspec()\n")
	for _, s := range subs {
		octet, bit := fspecPosition(s.Index)
		inner.WriteIndentedString(fmt.Sprintf("if in.%s != nil {\n", s.FieldName))
		inner.Indent().WriteIndentedString(fmt.Sprintf("fspec.Set(%d, %d)\n", octet, bit))
		inner.WriteIndentedString("}\n")
	}
	inner.WriteIndentedString("if err := fspec.Write(w); err != nil {\n")
	inner.Indent().WriteIndentedString("return fmt.Errorf(\"fspec: %w\", err)\n")
	inner.WriteIndentedString("}\n")
	//
	for _, s := range subs {
		inner.WriteIndentedString(fmt.Sprintf("if in.%s != nil {\n", s.FieldName))
		body := inner.Indent()
		encodeFn := "Encode" + s.TypeName
		if isSliceGoType(s.GoType) {
			body.WriteIndentedString(fmt.Sprintf("if err := %s(w, in.%s); err != nil {\n", encodeFn, s.FieldName))
		} else {
			body.WriteIndentedString(fmt.Sprintf("if err := %s(w, *in.%s); err != nil {\n", encodeFn, s.FieldName))
		}
		body.Indent().WriteIndentedString(fmt.Sprintf("return fmt.Errorf(\"%s: %%w\", err)\n", s.FieldName))
		body.WriteIndentedString("}\n")
		inner.WriteIndentedString("}\n")
	}
	inner.WriteIndentedString("return nil\n")
	b.WriteIndentedString("}\n\n")
}

// fspecPosition maps a 0-based dense entry index to its FSPEC (octet, bit)
// position, per spec §3: octet = index/7, bit = (index%7)+1.
func fspecPosition(index uint) (uint, uint) {
	return index / 7, (index % 7) + 1
}
