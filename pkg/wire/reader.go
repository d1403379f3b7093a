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

import "io"

// BitReader reads arbitrary bit-widths from an underlying byte stream,
// most-significant-bit first within each byte. For example, given the byte
// sequence [0x9f, 0x05]:
//
// | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || 8 | 9 | A | B | C | D | E | F |
// +===+===+===+===+===+===+===+===++===+===+===+===+===+===+===+===+
// | 1 | 0 | 0 | 1 | 1 | 1 | 1 | 1 || 0 | 0 | 0 | 0 | 0 | 1 | 0 | 1 |
//
// reading 7 bits returns 0b1001111 (bit 0 consumed first, as the MSB).
// Crossing a byte boundary mid-field is permitted and common; the reader
// has no ability to unread.
type BitReader struct {
	source io.Reader
	// buf holds the most recently loaded byte.
	buf byte
	// bitsLeft is the number of unread bits remaining in buf, 0..8.
	bitsLeft uint
	// scratch is a reusable 1-byte buffer for reading from source.
	scratch [1]byte
}

// NewBitReader constructs a BitReader over the given byte source.
func NewBitReader(source io.Reader) *BitReader {
	return &BitReader{source: source}
}

// ReadBits reads the n (0..=64) most-significant-bit-first bits from the
// stream and returns them right-aligned in a uint64; bits beyond n are zero.
// ReadBits(0) returns 0 without consuming any input. Returns a wrapped
// ErrIo if the underlying stream ends prematurely or otherwise fails.
func (r *BitReader) ReadBits(n uint) (uint64, error) {
	var result uint64
	//
	for n > 0 {
		if r.bitsLeft == 0 {
			if _, err := io.ReadFull(r.source, r.scratch[:]); err != nil {
				return 0, ioError("reading next byte", err)
			}
			//
			r.buf = r.scratch[0]
			r.bitsLeft = 8
		}
		//
		take := n
		if take > r.bitsLeft {
			take = r.bitsLeft
		}
		//
		shift := r.bitsLeft - take
		bits := (r.buf >> shift) & byte(maskLow(take))
		result = (result << take) | uint64(bits)
		r.bitsLeft -= take
		n -= take
	}
	//
	return result, nil
}
