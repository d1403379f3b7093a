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
	"errors"
	"testing"

	"github.com/asterix-schema/astcodec/pkg/util/assert"
)

func checkRead(t *testing.T, data []byte, widths []uint, expected []uint64) {
	r := NewBitReader(bytes.NewReader(data))
	//
	for i, w := range widths {
		got, err := r.ReadBits(w)
		assert.Equal(t, nil, err)
		assert.Equal(t, expected[i], got)
	}
}

func Test_BitReader_Aligned_00(t *testing.T) {
	checkRead(t, []byte{0x9f}, []uint{8}, []uint64{0x9f})
}

func Test_BitReader_Aligned_01(t *testing.T) {
	checkRead(t, []byte{0x9f, 0x05}, []uint{8, 8}, []uint64{0x9f, 0x05})
}

func Test_BitReader_Partial_00(t *testing.T) {
	// 0x9f = 1001 1111; reading 7 bits takes 1001111 = 0x4f
	checkRead(t, []byte{0x9f}, []uint{7}, []uint64{0x4f})
}

func Test_BitReader_Partial_01(t *testing.T) {
	// 0x9f,0x05 = 1001 1111 0000 0101; reading 4 then 12 bits.
	checkRead(t, []byte{0x9f, 0x05}, []uint{4, 12}, []uint64{0x9, 0xf05})
}

func Test_BitReader_CrossesByteBoundary(t *testing.T) {
	// 13 bits straddling the byte boundary, then the remaining 3.
	checkRead(t, []byte{0x9f, 0x05}, []uint{13, 3}, []uint64{0x13e0, 0x05})
}

func Test_BitReader_ZeroWidth(t *testing.T) {
	checkRead(t, []byte{0xff}, []uint{0, 8}, []uint64{0, 0xff})
}

func Test_BitReader_Width64(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	checkRead(t, data, []uint{64}, []uint64{0x0102030405060708})
}

func Test_BitReader_Eof(t *testing.T) {
	r := NewBitReader(bytes.NewReader(nil))
	_, err := r.ReadBits(8)
	//
	assert.True(t, errors.Is(err, ErrIo), "expected ErrIo, got %v", err)
}

func Test_BitReader_EofMidField(t *testing.T) {
	r := NewBitReader(bytes.NewReader([]byte{0xff}))
	_, err := r.ReadBits(16)
	//
	assert.True(t, errors.Is(err, ErrIo), "expected ErrIo, got %v", err)
}
