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

// emitEnum writes the named type, its declared variants, an implicit
// Unknown zero-value-safe variant, and a String method. Unknown carries
// whatever raw numeric value decode encountered that wasn't declared,
// preserving it for re-encoding (property P7).
func emitEnum(b indentBuilder, typeName string, plan fieldPlan) {
	underlying := goIntType(plan.Bits)
	unknownConst := typeName + "Unknown"
	//
	b.WriteIndentedString(fmt.Sprintf("// %s is an enumerated field with %d declared variant(s) plus Unknown.\n", typeName, len(plan.Enum.Values)))
	b.WriteIndentedString(fmt.Sprintf("type %s %s\n\n", typeName, underlying))
	//
	b.WriteIndentedString("const (\n")
	inner := b.Indent()
	inner.WriteIndentedString(fmt.Sprintf("%s %s = 0\n", unknownConst, typeName))
	for _, v := range plan.Enum.Values {
		constName := enumValueConstName(typeName, v.Name)
		if constName == unknownConst {
			continue
		}
		inner.WriteIndentedString(fmt.Sprintf("%s %s = %d\n", constName, typeName, v.Value))
	}
	b.WriteIndentedString(")\n\n")
	//
	b.WriteIndentedString(fmt.Sprintf("// String implements fmt.Stringer for %s.\n", typeName))
	b.WriteIndentedString(fmt.Sprintf("func (v %s) String() string {\n", typeName))
	inner = b.Indent()
	inner.WriteIndentedString("switch v {\n")
	for _, v := range plan.Enum.Values {
		constName := enumValueConstName(typeName, v.Name)
		inner.WriteIndentedString(fmt.Sprintf("case %s:\n", constName))
		inner.Indent().WriteIndentedString(fmt.Sprintf("return %q\n", v.Name))
	}
	inner.WriteIndentedString("default:\n")
	inner.Indent().WriteIndentedString(fmt.Sprintf("return fmt.Sprintf(\"%s(%%d)\", uint64(v))\n", typeName))
	inner.WriteIndentedString("}\n")
	b.WriteIndentedString("}\n\n")
}
