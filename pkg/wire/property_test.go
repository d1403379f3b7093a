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

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// P6: write_bits(v, n) followed by flush then read_bits(n) returns
// v & ((1<<n)-1).
func Test_Property_WriteThenReadRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.UintRange(1, 64).Draw(t, "width")
		value := rapid.Uint64().Draw(t, "value")
		//
		var buf bytes.Buffer
		w := NewBitWriter(&buf)
		require.NoError(t, w.WriteBits(value, width))
		require.NoError(t, w.Flush())
		//
		r := NewBitReader(&buf)
		got, err := r.ReadBits(width)
		require.NoError(t, err)
		require.Equal(t, value&maskLow(width), got)
	})
}

// P5: an FSPEC with its highest-indexed bit at (octet k, bit b) encodes to
// exactly k+1 octets.
func Test_Property_FspecHighestBitDeterminesLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		octet := rapid.UintRange(0, 20).Draw(t, "octet")
		bit := rapid.UintRange(1, 7).Draw(t, "bit")
		//
		f := NewFspec()
		f.Set(octet, bit)
		//
		var buf bytes.Buffer
		w := NewBitWriter(&buf)
		require.NoError(t, f.Write(w))
		require.NoError(t, w.Flush())
		//
		require.Equal(t, int(octet)+1, buf.Len())
	})
}

// Sequences of several field-sized writes followed by a single flush must
// read back in the same order and widths they were written.
func Test_Property_MultiFieldRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "n")
		widths := make([]uint, n)
		values := make([]uint64, n)
		//
		var buf bytes.Buffer
		w := NewBitWriter(&buf)
		//
		for i := 0; i < n; i++ {
			width := rapid.UintRange(1, 32).Draw(t, "width")
			value := rapid.Uint64().Draw(t, "value")
			widths[i] = width
			values[i] = value & maskLow(width)
			require.NoError(t, w.WriteBits(value, width))
		}
		//
		require.NoError(t, w.Flush())
		//
		r := NewBitReader(&buf)
		for i := 0; i < n; i++ {
			got, err := r.ReadBits(widths[i])
			require.NoError(t, err)
			require.Equal(t, values[i], got)
		}
	})
}
