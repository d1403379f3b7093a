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
package wire

import "github.com/bits-and-blooms/bitset"

// MaxFspecOctets bounds the length of an FSPEC octet chain read from the
// wire. A chain longer than this is treated as corrupt data rather than
// read indefinitely.
const MaxFspecOctets = 16

// Fspec is a variable-length presence bitmap: a chain of octets whose
// low-order bit (bit 0) is the FX (extension) bit. Octet k (0-indexed)
// covers 1-indexed entries 7k+1 .. 7k+7; within an octet, bits 7..1
// (MSB-first) indicate presence of the 1st..7th entry for that octet.
type Fspec struct {
	present *bitset.BitSet
	// highest is the largest absolute entry index set so far, or -1 if
	// none is set yet. Tracked separately since bitset.BitSet has no
	// direct "highest set bit" query.
	highest int
}

// NewFspec constructs an empty FSPEC.
func NewFspec() *Fspec {
	return &Fspec{present: bitset.New(56), highest: -1}
}

func fspecIndex(octet, bit uint) uint {
	return octet*7 + (bit - 1)
}

// Set marks the entry at the given 0-indexed octet and 1-indexed bit
// (counted from the octet's MSB, excluding the FX bit) as present.
func (f *Fspec) Set(octet, bit uint) {
	idx := fspecIndex(octet, bit)
	f.present.Set(idx)
	//
	if int(idx) > f.highest {
		f.highest = int(idx)
	}
}

// IsSet reports whether the entry at the given octet/bit is present.
func (f *Fspec) IsSet(octet, bit uint) bool {
	return f.present.Test(fspecIndex(octet, bit))
}

// Write emits the minimal octet chain covering every set entry: trailing
// all-absent octets are never emitted. An FSPEC with nothing set still
// emits a single all-zero octet, since an ASTERIX record's FSPEC always
// occupies at least one byte.
func (f *Fspec) Write(w *BitWriter) error {
	octets := uint(1)
	if f.highest >= 0 {
		octets = uint(f.highest)/7 + 1
	}
	//
	for k := uint(0); k < octets; k++ {
		var octet uint64
		//
		for bit := uint(1); bit <= 7; bit++ {
			if f.IsSet(k, bit) {
				octet |= 1 << (8 - bit)
			}
		}
		//
		if k+1 < octets {
			octet |= 1 // FX=1: another octet follows
		}
		//
		if err := w.WriteBits(octet, 8); err != nil {
			return err
		}
	}
	//
	return nil
}

// ReadFspec reads an FSPEC octet chain from r, stopping at the first octet
// with FX=0. Returns ErrInvalidData if the chain exceeds MaxFspecOctets.
func ReadFspec(r *BitReader) (*Fspec, error) {
	f := NewFspec()
	//
	for k := uint(0); ; k++ {
		if k >= MaxFspecOctets {
			return nil, invalidDataError("FSPEC chain exceeds %d octets", MaxFspecOctets)
		}
		//
		octet, err := r.ReadBits(8)
		if err != nil {
			return nil, err
		}
		//
		for bit := uint(1); bit <= 7; bit++ {
			if octet&(1<<(8-bit)) != 0 {
				f.Set(k, bit)
			}
		}
		//
		if octet&1 == 0 {
			break
		}
	}
	//
	return f, nil
}
