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

// emitRecord emits the Category's root record type and its
// Decode<Record>/Encode<Record> functions, which read/write exactly
// `FSPEC || item_1 || … || item_k` (spec §6.2) — no outer framing.
func emitRecord(b indentBuilder, cat *schema.Category) string {
	typeName := recordTypeName(cat.ID)
	idConst := typeName + "CategoryID"
	//
	b.WriteIndentedString(fmt.Sprintf("// %s is category %s's category byte value.\n", idConst, cat.ID))
	b.WriteIndentedString(fmt.Sprintf("const %s = %d\n\n", idConst, cat.NumericID))
	//
	items := make([]subfieldMeta, 0, len(cat.Items))
	for _, item := range cat.Items {
		itemType := itemTypeName(item.ID)
		goType := emitStructureComponent(b, itemType, item.Structure)
		items = append(items, subfieldMeta{
			FieldName: itemType,
			GoType:    goType,
			TypeName:  itemType,
			Index:     item.FRN - 1,
		})
	}
	//
	b.WriteIndentedString(fmt.Sprintf("// %s is the decoded form of one category %s record.\n", typeName, cat.ID))
	b.WriteIndentedString(fmt.Sprintf("type %s struct {\n", typeName))
	inner := b.Indent()
	for _, it := range items {
		inner.WriteIndentedString(fmt.Sprintf("%s %s\n", it.FieldName, optionalGoType(it.GoType)))
	}
	b.WriteIndentedString("}\n\n")
	//
	emitRecordDecode(b, typeName, items)
	emitRecordEncode(b, typeName, items)
	//
	return typeName
}

func emitRecordDecode(b indentBuilder, typeName string, items []subfieldMeta) {
	b.WriteIndentedString(fmt.Sprintf("// Decode%s reads one %s from r: an FSPEC, then each present\n", typeName, typeName))
	b.WriteIndentedString("// Data Item in FRN order.\n")
	b.WriteIndentedString(fmt.Sprintf("func Decode%s(r io.Reader) (%s, error) {\n", typeName, typeName))
	inner := b.Indent()
	inner.WriteIndentedString("var out " + typeName + "\n")
	inner.WriteIndentedString("br := wire.NewBitReader(r)\n")
	inner.WriteIndentedString("fspec, err := wire.ReadFspec(br)\n")
	inner.WriteIndentedString("if err != nil {\n")
	inner.Indent().WriteIndentedString("return out, fmt.Errorf(\"fspec: %w\", err)\n")
	inner.WriteIndentedString("}\n")
	//
	for _, it := range items {
		octet, bit := fspecPosition(it.Index)
		inner.WriteIndentedString(fmt.Sprintf("if fspec.IsSet(%d, %d) {\n", octet, bit))
		body := inner.Indent()
		body.WriteIndentedString(fmt.Sprintf("v, err := Decode%s(br)\n", it.TypeName))
		body.WriteIndentedString("if err != nil {\n")
		body.Indent().WriteIndentedString(fmt.Sprintf("return out, fmt.Errorf(\"%s: %%w\", err)\n", it.FieldName))
		body.WriteIndentedString("}\n")
		if isSliceGoType(it.GoType) {
			body.WriteIndentedString(fmt.Sprintf("out.%s = v\n", it.FieldName))
		} else {
			body.WriteIndentedString(fmt.Sprintf("out.%s = &v\n", it.FieldName))
		}
		inner.WriteIndentedString("}\n")
	}
	inner.WriteIndentedString("return out, nil\n")
	b.WriteIndentedString("}\n\n")
}

func emitRecordEncode(b indentBuilder, typeName string, items []subfieldMeta) {
	b.WriteIndentedString(fmt.Sprintf("// Encode%s writes in to w as an FSPEC followed by each present\n", typeName))
	b.WriteIndentedString("// Data Item in FRN order.\n")
	b.WriteIndentedString(fmt.Sprintf("func Encode%s(w io.Writer, in %s) error {\n", typeName, typeName))
	inner := b.Indent()
	inner.WriteIndentedString("bw := wire.NewBitWriter(w)\n")
	inner.WriteIndentedString("fspec := wire.NewFspec()\n")
	for _, it := range items {
		octet, bit := fspecPosition(it.Index)
		inner.WriteIndentedString(fmt.Sprintf("if in.%s != nil {\n", it.FieldName))
		inner.Indent().WriteIndentedString(fmt.Sprintf("fspec.Set(%d, %d)\n", octet, bit))
		inner.WriteIndentedString("}\n")
	}
	inner.WriteIndentedString("if err := fspec.Write(bw); err != nil {\n")
	inner.Indent().WriteIndentedString("return fmt.Errorf(\"fspec: %w\", err)\n")
	inner.WriteIndentedString("}\n")
	for _, it := range items {
		inner.WriteIndentedString(fmt.Sprintf("if in.%s != nil {\n", it.FieldName))
		body := inner.Indent()
		encodeFn := "Encode" + it.TypeName
		if isSliceGoType(it.GoType) {
			body.WriteIndentedString(fmt.Sprintf("if err := %s(bw, in.%s); err != nil {\n", encodeFn, it.FieldName))
		} else {
			body.WriteIndentedString(fmt.Sprintf("if err := %s(bw, *in.%s); err != nil {\n", encodeFn, it.FieldName))
		}
		body.Indent().WriteIndentedString(fmt.Sprintf("return fmt.Errorf(\"%s: %%w\", err)\n", it.FieldName))
		body.WriteIndentedString("}\n")
		inner.WriteIndentedString("}\n")
	}
	inner.WriteIndentedString("if err := bw.Flush(); err != nil {\n")
	inner.Indent().WriteIndentedString("return fmt.Errorf(\"flush: %w\", err)\n")
	inner.WriteIndentedString("}\n")
	inner.WriteIndentedString("return nil\n")
	b.WriteIndentedString("}\n\n")
}
