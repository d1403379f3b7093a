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

// Same rationale as scenario_test.go: these properties are checked against
// the hand-ported decode/encode pairs defined there, since a generated
// Decode<Record>/Encode<Record> cannot be compiled and invoked in-process.

import (
	"bytes"
	"testing"

	"github.com/asterix-schema/astcodec/pkg/wire"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// P1: decode(encode(x)) == x, for an Extended item with a dynamic FX chain
// (the structure the header-framing and Part-representation bugs broke).
func Test_Property_P1_ExtendedDecodeOfEncodeIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		item := s3Item{
			Part0: s3Part0{
				A: uint8(rapid.UintRange(0, 7).Draw(t, "a")),
				B: uint8(rapid.UintRange(0, 15).Draw(t, "b")),
			},
		}
		if rapid.Bool().Draw(t, "hasPart1") {
			item.Part1 = &s3Part1{C: uint8(rapid.UintRange(0, 127).Draw(t, "c"))}
		}
		//
		var buf bytes.Buffer
		bw := wire.NewBitWriter(&buf)
		require.NoError(t, encodeS3Item(bw, item))
		require.NoError(t, bw.Flush())
		//
		br := wire.NewBitReader(bytes.NewReader(buf.Bytes()))
		got, err := decodeS3Item(br)
		require.NoError(t, err)
		require.Equal(t, item, got)
	})
}

// P2: encode(decode(bytes)) == bytes, for the same Extended item, confirming
// the wire form is a canonical round trip and not merely semantically
// equivalent.
func Test_Property_P2_ExtendedEncodeOfDecodeIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := uint64(rapid.UintRange(0, 7).Draw(t, "a"))
		b := uint64(rapid.UintRange(0, 15).Draw(t, "b"))
		hasPart1 := rapid.Bool().Draw(t, "hasPart1")
		//
		var buf bytes.Buffer
		bw := wire.NewBitWriter(&buf)
		require.NoError(t, bw.WriteBits(a, 3))
		require.NoError(t, bw.WriteBits(b, 4))
		if hasPart1 {
			c := uint64(rapid.UintRange(0, 127).Draw(t, "c"))
			require.NoError(t, bw.WriteBits(1, 1))
			require.NoError(t, bw.WriteBits(c, 7))
			require.NoError(t, bw.WriteBits(0, 1))
		} else {
			require.NoError(t, bw.WriteBits(0, 1))
		}
		require.NoError(t, bw.Flush())
		original := append([]byte(nil), buf.Bytes()...)
		//
		br := wire.NewBitReader(bytes.NewReader(original))
		item, err := decodeS3Item(br)
		require.NoError(t, err)
		//
		var out bytes.Buffer
		ow := wire.NewBitWriter(&out)
		require.NoError(t, encodeS3Item(ow, item))
		require.NoError(t, ow.Flush())
		require.Equal(t, original, out.Bytes())
	})
}

// P1/P2 for a Repetitive item, exercising the counter-prefixed entry list
// rather than an FX chain.
func Test_Property_P1P2_RepetitiveRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(t, "n")
		entries := make([]s4Entry, n)
		for i := range entries {
			entries[i] = s4Entry{Measure: uint16(rapid.UintRange(0, 0xFFFF).Draw(t, "measure"))}
		}
		//
		var buf bytes.Buffer
		bw := wire.NewBitWriter(&buf)
		require.NoError(t, encodeS4Item(bw, entries))
		require.NoError(t, bw.Flush())
		//
		br := wire.NewBitReader(bytes.NewReader(buf.Bytes()))
		got, err := decodeS4Item(br)
		require.NoError(t, err)
		require.Equal(t, entries, got)
		//
		var out bytes.Buffer
		ow := wire.NewBitWriter(&out)
		require.NoError(t, encodeS4Item(ow, got))
		require.NoError(t, ow.Flush())
		require.Equal(t, buf.Bytes(), out.Bytes())
	})
}

// P7: an unrecognized enum discriminant (a bit pattern outside the schema's
// declared variants) survives decode/encode unchanged rather than being
// coerced to a known value or rejected.
func Test_Property_P7_UnknownEnumDiscriminantSurvives(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		// s2Typ is a 3-bit field with only 0-2 declared as named variants;
		// 3-7 are valid wire values with no corresponding constant.
		raw := rapid.UintRange(0, 7).Draw(t, "typ")
		item := s2Item{
			Typ: s2Typ(raw),
			Sim: uint8(rapid.UintRange(0, 1).Draw(t, "sim")),
			Rdp: uint8(rapid.UintRange(0, 1).Draw(t, "rdp")),
			Spi: uint8(rapid.UintRange(0, 1).Draw(t, "spi")),
			Rab: uint8(rapid.UintRange(0, 1).Draw(t, "rab")),
		}
		//
		var buf bytes.Buffer
		bw := wire.NewBitWriter(&buf)
		require.NoError(t, encodeS2Item(bw, item))
		require.NoError(t, bw.Flush())
		//
		br := wire.NewBitReader(bytes.NewReader(buf.Bytes()))
		got, err := decodeS2Item(br)
		require.NoError(t, err)
		require.Equal(t, item, got)
		require.Equal(t, s2Typ(raw), got.Typ)
	})
}
