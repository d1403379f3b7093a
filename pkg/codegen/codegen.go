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

// Package codegen walks a validated pkg/schema.Category and emits a
// self-contained Go source file implementing its wire codec: one struct and
// Decode/Encode function pair per Data Item structure, built atop pkg/wire,
// plus the Category's root record type.
package codegen

import (
	"fmt"

	"github.com/asterix-schema/astcodec/pkg/schema"
)

const fileHeader = `// Copyright Consensys Software Inc.
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

// Code generated by astcodec. DO NOT EDIT.
`

// Generate renders cat's full codec as Go source text in package pkgName.
func Generate(cat *schema.Category, pkgName string) (string, error) {
	if pkgName == "" {
		return "", fmt.Errorf("%w: package name must not be empty", schema.NewSchemaError("generate", "empty package name"))
	}
	//
	b := newIndentBuilder()
	b.WriteString(fileHeader)
	b.WriteString(fmt.Sprintf("package %s\n\n", pkgName))
	b.WriteString("import (\n")
	b.WriteString("\t\"fmt\"\n")
	b.WriteString("\t\"io\"\n\n")
	b.WriteString("\t\"github.com/asterix-schema/astcodec/pkg/wire\"\n")
	b.WriteString(")\n\n")
	//
	emitRecord(b, cat)
	//
	return b.String(), nil
}
