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
package loader

import (
	"testing"

	"github.com/asterix-schema/astcodec/pkg/schema"
	"github.com/asterix-schema/astcodec/pkg/util/assert"
)

func Test_Load_ValidCategory(t *testing.T) {
	cat, err := Load("../../testdata/schemas/valid_category.xml")
	assert.Equal(t, nil, err, "unexpected error: %v", err)
	assert.Equal(t, "021", cat.ID, "category id")
	assert.Equal(t, uint8(21), cat.NumericID, "category numeric id")
	assert.Equal(t, 7, len(cat.Items), "item count")
	//
	// Items must come back sorted by FRN ascending.
	for i := 1; i < len(cat.Items); i++ {
		assert.True(t, cat.Items[i-1].FRN < cat.Items[i].FRN, "items not FRN-sorted at index %d", i)
	}
}

func Test_Load_ValidCategory_FixedItem(t *testing.T) {
	cat, err := Load("../../testdata/schemas/valid_category.xml")
	assert.Equal(t, nil, err, "unexpected error: %v", err)
	//
	item := cat.Items[0]
	assert.Equal(t, "010", item.ID, "item id")
	fixed, ok := item.Structure.(schema.Fixed)
	assert.True(t, ok, "expected Fixed structure")
	assert.Equal(t, uint(2), fixed.Bytes, "fixed bytes")
	assert.Equal(t, 2, len(fixed.Elements), "element count")
}

func Test_Load_ValidCategory_ExtendedItem(t *testing.T) {
	cat, err := Load("../../testdata/schemas/valid_category.xml")
	assert.Equal(t, nil, err, "unexpected error: %v", err)
	//
	item := cat.Items[1]
	ext, ok := item.Structure.(schema.Extended)
	assert.True(t, ok, "expected Extended structure")
	assert.Equal(t, 2, len(ext.Parts), "part count")
	assert.Equal(t, uint(0), ext.Parts[0].Index, "first part index")
	assert.Equal(t, uint(1), ext.Parts[1].Index, "second part index")
}

func Test_Load_ValidCategory_EPBAndEnum(t *testing.T) {
	cat, err := Load("../../testdata/schemas/valid_category.xml")
	assert.Equal(t, nil, err, "unexpected error: %v", err)
	//
	item := cat.Items[3]
	fixed, ok := item.Structure.(schema.Fixed)
	assert.True(t, ok, "expected Fixed structure")
	//
	en, ok := fixed.Elements[0].(schema.Enum)
	assert.True(t, ok, "expected Enum element")
	assert.Equal(t, 2, len(en.Values), "enum value count")
	//
	epb, ok := fixed.Elements[1].(schema.EPB)
	assert.True(t, ok, "expected EPB element")
	assert.Equal(t, uint(2), epb.ElementBits(), "epb width is 1 + inner width")
}

func Test_Load_ValidCategory_CompoundItem(t *testing.T) {
	cat, err := Load("../../testdata/schemas/valid_category.xml")
	assert.Equal(t, nil, err, "unexpected error: %v", err)
	//
	item := cat.Items[6]
	assert.Equal(t, "SP", item.ID, "item id")
	compound, ok := item.Structure.(schema.Compound)
	assert.True(t, ok, "expected Compound structure")
	assert.Equal(t, 2, len(compound.Subfields), "subfield count")
	assert.Equal(t, "001", compound.Subfields[0].ID, "first subfield id")
	assert.Equal(t, uint(0), compound.Subfields[0].Index, "first subfield index")
}

func Test_Load_RejectsBitSumMismatch(t *testing.T) {
	_, err := Load("../../testdata/schemas/invalid_bitsum.xml")
	assert.True(t, err != nil, "expected a schema error")
	_, ok := asSchemaError(err)
	assert.True(t, ok, "expected a *schema.SchemaError, got %v", err)
}

func Test_Load_RejectsDuplicateFRN(t *testing.T) {
	_, err := Load("../../testdata/schemas/invalid_duplicate_frn.xml")
	assert.True(t, err != nil, "expected a schema error")
	_, ok := asSchemaError(err)
	assert.True(t, ok, "expected a *schema.SchemaError, got %v", err)
}

func Test_Load_RejectsBadCounterBits(t *testing.T) {
	_, err := Load("../../testdata/schemas/invalid_counter_bits.xml")
	assert.True(t, err != nil, "expected a schema error")
	_, ok := asSchemaError(err)
	assert.True(t, ok, "expected a *schema.SchemaError, got %v", err)
}

func Test_Load_RejectsDuplicateFieldName(t *testing.T) {
	_, err := Load("../../testdata/schemas/invalid_duplicate_name.xml")
	assert.True(t, err != nil, "expected a schema error")
	_, ok := asSchemaError(err)
	assert.True(t, ok, "expected a *schema.SchemaError, got %v", err)
}

func Test_Load_MissingFile(t *testing.T) {
	_, err := Load("../../testdata/schemas/does_not_exist.xml")
	assert.True(t, err != nil, "expected an error")
}

func asSchemaError(err error) (*schema.SchemaError, bool) {
	se, ok := err.(*schema.SchemaError)
	return se, ok
}
