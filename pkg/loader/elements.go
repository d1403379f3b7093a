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
	"github.com/asterix-schema/astcodec/pkg/schema"
)

// buildElements builds every rawElement in order and checks that all Field/
// Enum names (including those nested inside an EPB) are unique within the
// enclosing structure.
func buildElements(raws []rawElement, path string) ([]schema.Element, error) {
	elements := make([]schema.Element, 0, len(raws))
	seenNames := make(map[string]bool)
	//
	for _, raw := range raws {
		el, err := buildElement(raw, path)
		if err != nil {
			return nil, err
		}
		//
		if name, named := namedElement(el); named {
			if seenNames[name] {
				return nil, schema.NewSchemaError(path, "duplicate field name %q", name)
			}
			seenNames[name] = true
		}
		//
		elements = append(elements, el)
	}
	//
	return elements, nil
}

func buildElement(raw rawElement, path string) (schema.Element, error) {
	switch raw.XMLName.Local {
	case "field":
		if raw.Bits == 0 {
			return nil, schema.NewSchemaError(path, "field %q declares 0 bits", raw.Name)
		}
		return schema.Field{Name: raw.Name, Bits: raw.Bits}, nil
	case "spare":
		if raw.Bits == 0 {
			return nil, schema.NewSchemaError(path, "spare declares 0 bits")
		}
		return schema.Spare{Bits: raw.Bits}, nil
	case "enum":
		return buildEnum(raw, path)
	case "epb":
		return buildEPB(raw, path)
	default:
		return nil, schema.NewSchemaError(path, "unrecognized element %q", raw.XMLName.Local)
	}
}

func buildEnum(raw rawElement, path string) (schema.Enum, error) {
	if raw.Bits == 0 || raw.Bits > 8 {
		return schema.Enum{}, schema.NewSchemaError(path, "enum %q declares invalid bit width %d", raw.Name, raw.Bits)
	}
	if len(raw.Values) == 0 {
		return schema.Enum{}, schema.NewSchemaError(path, "enum %q declares no values", raw.Name)
	}
	//
	ceiling := maxRepresentable(raw.Bits)
	//
	seenValue := make(map[uint64]bool)
	seenName := make(map[string]bool)
	values := make([]schema.EnumValue, 0, len(raw.Values))
	//
	for _, rv := range raw.Values {
		if rv.Numeric < 0 || uint64(rv.Numeric) > ceiling {
			return schema.Enum{}, schema.NewSchemaError(path, "enum %q value %q=%d is not representable in %d bits", raw.Name, rv.Name, rv.Numeric, raw.Bits)
		}
		//
		v := uint64(rv.Numeric)
		if seenValue[v] {
			return schema.Enum{}, schema.NewSchemaError(path, "enum %q declares duplicate numeric value %d", raw.Name, v)
		}
		seenValue[v] = true
		//
		if seenName[rv.Name] {
			return schema.Enum{}, schema.NewSchemaError(path, "enum %q declares duplicate value name %q", raw.Name, rv.Name)
		}
		seenName[rv.Name] = true
		//
		values = append(values, schema.EnumValue{Name: rv.Name, Value: v})
	}
	//
	return schema.Enum{Name: raw.Name, Bits: raw.Bits, Values: values}, nil
}

func buildEPB(raw rawElement, path string) (schema.EPB, error) {
	if len(raw.Inner) != 1 {
		return schema.EPB{}, schema.NewSchemaError(path, "epb must wrap exactly one field or enum, found %d", len(raw.Inner))
	}
	//
	inner, err := buildElement(raw.Inner[0], path)
	if err != nil {
		return schema.EPB{}, err
	}
	//
	switch inner.(type) {
	case schema.Field, schema.Enum:
		return schema.EPB{Inner: inner}, nil
	default:
		return schema.EPB{}, schema.NewSchemaError(path, "epb may only wrap a field or enum")
	}
}

// namedElement returns the dedup-relevant name of el and whether it
// participates in name-uniqueness checking. Spare elements are unnamed; an
// EPB contributes its inner element's name, since codegen promotes it to the
// enclosing struct.
func namedElement(el schema.Element) (string, bool) {
	switch v := el.(type) {
	case schema.Field:
		return v.Name, true
	case schema.Enum:
		return v.Name, true
	case schema.EPB:
		return namedElement(v.Inner)
	default:
		return "", false
	}
}

// maxRepresentable returns the largest unsigned value representable in bits
// bits (bits in 1..64).
func maxRepresentable(bits uint) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}
