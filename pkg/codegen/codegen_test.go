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
	"strings"
	"testing"

	"github.com/asterix-schema/astcodec/pkg/loader"
	"github.com/asterix-schema/astcodec/pkg/util/assert"
)

func Test_Generate_ValidCategory_ProducesBalancedSource(t *testing.T) {
	cat, err := loader.Load("../../testdata/schemas/valid_category.xml")
	assert.Equal(t, nil, err, "unexpected loader error: %v", err)
	//
	src, err := Generate(cat, "astcat021")
	assert.Equal(t, nil, err, "unexpected generate error: %v", err)
	//
	assert.True(t, strings.Contains(src, "package astcat021"), "missing package clause")
	assert.True(t, strings.Contains(src, "Code generated by astcodec. DO NOT EDIT."), "missing generated-code marker")
	//
	opens := strings.Count(src, "{")
	closes := strings.Count(src, "}")
	assert.Equal(t, opens, closes, "unbalanced braces: %d opens, %d closes", opens, closes)
	//
	decodeCount := strings.Count(src, "func Decode")
	encodeCount := strings.Count(src, "func Encode")
	assert.Equal(t, decodeCount, encodeCount, "Decode/Encode function counts differ")
	//
	// Record type and each structure-kind item type must be present.
	for _, want := range []string{
		"type Cat021Record struct",
		"func DecodeCat021Record(r io.Reader) (Cat021Record, error)",
		"func EncodeCat021Record(w io.Writer, in Cat021Record) error",
		"type Item010 struct",
		"type Item040 struct",
		"type Item161 struct",
		"type Item170 struct",
		"type Item130Entry struct",
		"type ItemRE struct",
		"type ItemSP struct",
		"type ItemSPSub1 struct",
		"type ItemSPSub2Entry struct",
	} {
		assert.True(t, strings.Contains(src, want), "expected generated source to contain %q", want)
	}
}

func Test_Generate_RejectsEmptyPackageName(t *testing.T) {
	cat, err := loader.Load("../../testdata/schemas/valid_category.xml")
	assert.Equal(t, nil, err, "unexpected loader error: %v", err)
	//
	_, err = Generate(cat, "")
	assert.True(t, err != nil, "expected an error for an empty package name")
}

func Test_Generate_EnumProducesUnknownVariant(t *testing.T) {
	cat, err := loader.Load("../../testdata/schemas/valid_category.xml")
	assert.Equal(t, nil, err, "unexpected loader error: %v", err)
	//
	src, err := Generate(cat, "astcat021")
	assert.Equal(t, nil, err, "unexpected generate error: %v", err)
	assert.True(t, strings.Contains(src, "Unknown"), "expected an Unknown enum variant")
}
