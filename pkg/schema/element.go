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
package schema

// Element is one wire-level field within a Fixed/Extended Part/Repetitive/
// Explicit structure: a Field, a Spare, an Enum, or an EPB-wrapped inner
// element.
type Element interface {
	// ElementBits returns this element's total encoded bit width.
	ElementBits() uint
}

// Field is a named, unenumerated unsigned bit field.
type Field struct {
	Name string
	Bits uint
}

// ElementBits implements Element.
func (f Field) ElementBits() uint { return f.Bits }

// Spare is an unnamed filler element: encoded as zeros, discarded on
// decode, and never an error regardless of its contents.
type Spare struct {
	Bits uint
}

// ElementBits implements Element.
func (s Spare) ElementBits() uint { return s.Bits }

// EnumValue is one declared (name, numeric) pair of an Enum.
type EnumValue struct {
	Name  string
	Value uint64
}

// Enum is a named field whose wire value maps to a declared set of named
// variants, plus an implicit catch-all Unknown variant for forward
// compatibility with numeric values not in Values.
type Enum struct {
	Name   string
	Bits   uint
	Values []EnumValue
}

// ElementBits implements Element.
func (e Enum) ElementBits() uint { return e.Bits }

// EPB (Element Populated Bit) wraps a Field or Enum with a 1-bit presence
// flag: when the flag is 0, the inner payload is transmitted as zeros and
// decodes as absent.
type EPB struct {
	Inner Element
}

// ElementBits implements Element; the encoded width is 1 (presence bit)
// plus the inner element's width.
func (e EPB) ElementBits() uint { return 1 + e.Inner.ElementBits() }
