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
	"encoding/xml"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/asterix-schema/astcodec/pkg/schema"
)

// Load reads and validates an ASTERIX Category schema XML document at path,
// returning its IR on success or a *schema.SchemaError describing the first
// violated invariant.
func Load(path string) (*schema.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", path, err)
	}
	//
	var raw rawCategory
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", path, err)
	}
	//
	return buildCategory(&raw)
}

func buildCategory(raw *rawCategory) (*schema.Category, error) {
	numericID, err := strconv.ParseUint(raw.ID, 10, 8)
	if err != nil {
		return nil, schema.NewSchemaError("category", "id %q is not a valid numeric category id", raw.ID)
	}
	//
	items := make([]*schema.Item, 0, len(raw.Items))
	seenFRN := make(map[uint]string)
	//
	for i := range raw.Items {
		rawItem := &raw.Items[i]
		path := fmt.Sprintf("Item %s", rawItem.ID)
		//
		structure, err := buildItemStructure(rawItem, path)
		if err != nil {
			return nil, err
		}
		//
		if existing, ok := seenFRN[rawItem.FRN]; ok {
			return nil, schema.NewSchemaError(path, "FRN %d duplicates item %s", rawItem.FRN, existing)
		}
		seenFRN[rawItem.FRN] = rawItem.ID
		//
		items = append(items, &schema.Item{
			ID:        rawItem.ID,
			FRN:       rawItem.FRN,
			Structure: structure,
		})
	}
	//
	sort.Slice(items, func(i, j int) bool { return items[i].FRN < items[j].FRN })
	//
	return &schema.Category{
		ID:        raw.ID,
		NumericID: uint8(numericID),
		Items:     items,
	}, nil
}

// buildItemStructure builds the single populated structure variant of a
// rawItem, erroring if zero or more than one is present.
func buildItemStructure(raw *rawItem, path string) (schema.Structure, error) {
	count := 0
	var structure schema.Structure
	var err error
	//
	if raw.Fixed != nil {
		count++
		structure, err = buildFixed(raw.Fixed, path)
	}
	if raw.Extended != nil {
		count++
		structure, err = buildExtended(raw.Extended, path)
	}
	if raw.Repetitive != nil {
		count++
		structure, err = buildRepetitive(raw.Repetitive, path)
	}
	if raw.Explicit != nil {
		count++
		structure, err = buildExplicit(raw.Explicit, path)
	}
	if raw.Compound != nil {
		count++
		structure, err = buildCompound(raw.Compound, path)
	}
	//
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, schema.NewSchemaError(path, "declares no structure")
	}
	if count > 1 {
		return nil, schema.NewSchemaError(path, "declares more than one structure")
	}
	return structure, nil
}

// buildSubStructure is buildItemStructure restricted to the Compound-eligible
// kinds, used when building a <subfield>.
func buildSubStructure(raw *rawSubfield, path string) (schema.SubStructure, error) {
	count := 0
	var structure schema.SubStructure
	var err error
	//
	if raw.Fixed != nil {
		count++
		var f schema.Fixed
		f, err = buildFixed(raw.Fixed, path)
		structure = f
	}
	if raw.Extended != nil {
		count++
		var e schema.Extended
		e, err = buildExtended(raw.Extended, path)
		structure = e
	}
	if raw.Repetitive != nil {
		count++
		var r schema.Repetitive
		r, err = buildRepetitive(raw.Repetitive, path)
		structure = r
	}
	if raw.Explicit != nil {
		count++
		var x schema.Explicit
		x, err = buildExplicit(raw.Explicit, path)
		structure = x
	}
	//
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, schema.NewSchemaError(path, "declares no structure")
	}
	if count > 1 {
		return nil, schema.NewSchemaError(path, "declares more than one structure")
	}
	return structure, nil
}

func buildFixed(raw *rawFixed, path string) (schema.Fixed, error) {
	elements, err := buildElements(raw.Elements, path)
	if err != nil {
		return schema.Fixed{}, err
	}
	//
	if err := checkBitSum(path, elements, raw.Bytes*8); err != nil {
		return schema.Fixed{}, err
	}
	//
	return schema.Fixed{Bytes: raw.Bytes, Elements: elements}, nil
}

func buildExtended(raw *rawExtended, path string) (schema.Extended, error) {
	if len(raw.Parts) == 0 {
		return schema.Extended{}, schema.NewSchemaError(path, "extended structure declares no parts")
	}
	//
	sorted := make([]rawPart, len(raw.Parts))
	copy(sorted, raw.Parts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })
	//
	parts := make([]schema.Part, 0, len(sorted))
	for k, rp := range sorted {
		if rp.Index != uint(k) {
			return schema.Extended{}, schema.NewSchemaError(path, "part indices must form a dense 0..%d range", len(sorted)-1)
		}
		//
		partPath := fmt.Sprintf("%s Part %d", path, rp.Index)
		elements, err := buildElements(rp.Elements, partPath)
		if err != nil {
			return schema.Extended{}, err
		}
		//
		if raw.PartBytes == 0 {
			return schema.Extended{}, schema.NewSchemaError(partPath, "part_bytes must be at least 1")
		}
		if err := checkBitSum(partPath, elements, raw.PartBytes*8-1); err != nil {
			return schema.Extended{}, err
		}
		//
		parts = append(parts, schema.Part{Index: rp.Index, Elements: elements})
	}
	//
	return schema.Extended{PartBytes: raw.PartBytes, Parts: parts}, nil
}

func buildRepetitive(raw *rawRepetitive, path string) (schema.Repetitive, error) {
	if raw.CounterBits != 8 && raw.CounterBits != 16 {
		return schema.Repetitive{}, schema.NewSchemaError(path, "counter_bits must be 8 or 16, got %d", raw.CounterBits)
	}
	//
	elements, err := buildElements(raw.Elements, path)
	if err != nil {
		return schema.Repetitive{}, err
	}
	//
	if err := checkBitSum(path, elements, raw.Bytes*8); err != nil {
		return schema.Repetitive{}, err
	}
	//
	return schema.Repetitive{Bytes: raw.Bytes, CounterBits: raw.CounterBits, Elements: elements}, nil
}

func buildExplicit(raw *rawExplicit, path string) (schema.Explicit, error) {
	elements, err := buildElements(raw.Elements, path)
	if err != nil {
		return schema.Explicit{}, err
	}
	//
	if err := checkBitSum(path, elements, raw.Bytes*8); err != nil {
		return schema.Explicit{}, err
	}
	//
	return schema.Explicit{Bytes: raw.Bytes, Elements: elements}, nil
}

func buildCompound(raw *rawCompound, path string) (schema.Compound, error) {
	if len(raw.Subfields) == 0 {
		return schema.Compound{}, schema.NewSchemaError(path, "compound structure declares no subfields")
	}
	if len(raw.Subfields) > 7 {
		return schema.Compound{}, schema.NewSchemaError(path, "compound structure declares more than 7 subfields in its first FSPEC byte group")
	}
	//
	seenID := make(map[string]bool)
	subfields := make([]schema.Subfield, 0, len(raw.Subfields))
	//
	for i, rs := range raw.Subfields {
		subPath := fmt.Sprintf("%s Subfield %s", path, rs.ID)
		if seenID[rs.ID] {
			return schema.Compound{}, schema.NewSchemaError(subPath, "duplicate subfield id")
		}
		seenID[rs.ID] = true
		//
		structure, err := buildSubStructure(&rs, subPath)
		if err != nil {
			return schema.Compound{}, err
		}
		//
		subfields = append(subfields, schema.Subfield{
			Index:     uint(i),
			ID:        rs.ID,
			Structure: structure,
		})
	}
	//
	return schema.Compound{Subfields: subfields}, nil
}

// checkBitSum verifies that elements' total encoded width equals want bits.
func checkBitSum(path string, elements []schema.Element, want uint) error {
	var total uint
	for _, el := range elements {
		total += el.ElementBits()
	}
	if total != want {
		return schema.NewSchemaError(path, "elements sum to %d bits, expected %d", total, want)
	}
	return nil
}
