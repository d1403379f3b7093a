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

// writeDecodeElements emits statements that read each planned field of an
// elements block from r into out, in wire order. Spare elements are read
// and discarded; an absent (presence bit 0) EPB field is still read off the
// wire as zeros, per spec, so the cursor stays in sync.
func writeDecodeElements(b indentBuilder, plans []fieldPlan, out string) {
	for _, p := range plans {
		switch {
		case p.Spare:
			b.WriteIndentedString(fmt.Sprintf("if _, err := r.ReadBits(%d); err != nil {\n", p.Bits))
			b.Indent().WriteIndentedString("return out, fmt.Errorf(\"spare: %w\", err)\n")
			b.WriteIndentedString("}\n")
		case p.EPB:
			writeDecodeEPBField(b, p, out)
		default:
			writeDecodePlainField(b, p, out)
		}
	}
}

func writeDecodePlainField(b indentBuilder, p fieldPlan, out string) {
	b.WriteIndentedString(fmt.Sprintf("if v, err := r.ReadBits(%d); err != nil {\n", p.Bits))
	b.Indent().WriteIndentedString(fmt.Sprintf("return out, fmt.Errorf(\"%s: %%w\", err)\n", p.FieldName))
	b.WriteIndentedString("} else {\n")
	b.Indent().WriteIndentedString(fmt.Sprintf("%s.%s = %s(v)\n", out, p.FieldName, p.payloadGoType()))
	b.WriteIndentedString("}\n")
}

func writeDecodeEPBField(b indentBuilder, p fieldPlan, out string) {
	b.WriteIndentedString(fmt.Sprintf("if present, err := r.ReadBits(1); err != nil {\n"))
	b.Indent().WriteIndentedString(fmt.Sprintf("return out, fmt.Errorf(\"%s presence bit: %%w\", err)\n", p.FieldName))
	b.WriteIndentedString(fmt.Sprintf("} else if v, err := r.ReadBits(%d); err != nil {\n", p.Bits))
	b.Indent().WriteIndentedString(fmt.Sprintf("return out, fmt.Errorf(\"%s: %%w\", err)\n", p.FieldName))
	b.WriteIndentedString("} else if present == 1 {\n")
	inner := b.Indent()
	inner.WriteIndentedString(fmt.Sprintf("value := %s(v)\n", p.payloadGoType()))
	inner.WriteIndentedString(fmt.Sprintf("%s.%s = &value\n", out, p.FieldName))
	b.WriteIndentedString("}\n")
}
