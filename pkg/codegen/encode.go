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

// writeEncodeElements emits statements that write each planned field of an
// elements block to w, in wire order, mirroring writeDecodeElements. An
// absent EPB field writes its presence bit as 0 followed by a zeroed
// payload, keeping the structure byte-for-bit-count symmetric with decode.
func writeEncodeElements(b indentBuilder, plans []fieldPlan, in string) {
	for _, p := range plans {
		switch {
		case p.Spare:
			b.WriteIndentedString(fmt.Sprintf("if err := w.WriteBits(0, %d); err != nil {\n", p.Bits))
			b.Indent().WriteIndentedString("return fmt.Errorf(\"spare: %w\", err)\n")
			b.WriteIndentedString("}\n")
		case p.EPB:
			writeEncodeEPBField(b, p, in)
		default:
			writeEncodePlainField(b, p, in)
		}
	}
}

func writeEncodePlainField(b indentBuilder, p fieldPlan, in string) {
	b.WriteIndentedString(fmt.Sprintf("if err := w.WriteBits(uint64(%s.%s), %d); err != nil {\n", in, p.FieldName, p.Bits))
	b.Indent().WriteIndentedString(fmt.Sprintf("return fmt.Errorf(\"%s: %%w\", err)\n", p.FieldName))
	b.WriteIndentedString("}\n")
}

func writeEncodeEPBField(b indentBuilder, p fieldPlan, in string) {
	b.WriteIndentedString(fmt.Sprintf("if %s.%s != nil {\n", in, p.FieldName))
	inner := b.Indent()
	inner.WriteIndentedString("if err := w.WriteBits(1, 1); err != nil {\n")
	inner.Indent().WriteIndentedString(fmt.Sprintf("return fmt.Errorf(\"%s presence bit: %%w\", err)\n", p.FieldName))
	inner.WriteIndentedString("}\n")
	inner.WriteIndentedString(fmt.Sprintf("if err := w.WriteBits(uint64(*%s.%s), %d); err != nil {\n", in, p.FieldName, p.Bits))
	inner.Indent().WriteIndentedString(fmt.Sprintf("return fmt.Errorf(\"%s: %%w\", err)\n", p.FieldName))
	inner.WriteIndentedString("}\n")
	b.WriteIndentedString("} else {\n")
	inner = b.Indent()
	inner.WriteIndentedString("if err := w.WriteBits(0, 1); err != nil {\n")
	inner.Indent().WriteIndentedString(fmt.Sprintf("return fmt.Errorf(\"%s presence bit: %%w\", err)\n", p.FieldName))
	inner.WriteIndentedString("}\n")
	inner.WriteIndentedString(fmt.Sprintf("if err := w.WriteBits(0, %d); err != nil {\n", p.Bits))
	inner.Indent().WriteIndentedString(fmt.Sprintf("return fmt.Errorf(\"%s: %%w\", err)\n", p.FieldName))
	inner.WriteIndentedString("}\n")
	b.WriteIndentedString("}\n")
}
