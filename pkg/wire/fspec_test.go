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

func Test_Fspec_SingleBit(t *testing.T) {
	f := NewFspec()
	f.Set(0, 1)
	//
	var buf bytes.Buffer
	w := NewBitWriter(&buf)
	assert.Equal(t, nil, f.Write(w))
	assert.Equal(t, nil, w.Flush())
	assert.Equal(t, []byte{0x80}, buf.Bytes())
}

func Test_Fspec_Empty(t *testing.T) {
	f := NewFspec()
	//
	var buf bytes.Buffer
	w := NewBitWriter(&buf)
	assert.Equal(t, nil, f.Write(w))
	assert.Equal(t, nil, w.Flush())
	assert.Equal(t, []byte{0x00}, buf.Bytes())
}

// P5: FSPEC with the highest-indexed bit at position (octet k, bit b)
// encodes to exactly k+1 octets.
func Test_Fspec_SecondOctet(t *testing.T) {
	f := NewFspec()
	f.Set(1, 3)
	//
	var buf bytes.Buffer
	w := NewBitWriter(&buf)
	assert.Equal(t, nil, f.Write(w))
	assert.Equal(t, nil, w.Flush())
	//
	got := buf.Bytes()
	assert.Equal(t, 2, len(got))
	// First octet: nothing set, FX=1.
	assert.Equal(t, byte(0x01), got[0])
	// Second octet: 3rd entry set (bit position 5), FX=0.
	assert.Equal(t, byte(0x20), got[1])
}

func Test_Fspec_RoundTrip(t *testing.T) {
	f := NewFspec()
	f.Set(0, 1)
	f.Set(0, 7)
	f.Set(2, 4)
	//
	var buf bytes.Buffer
	w := NewBitWriter(&buf)
	assert.Equal(t, nil, f.Write(w))
	assert.Equal(t, nil, w.Flush())
	//
	r := NewBitReader(&buf)
	got, err := ReadFspec(r)
	assert.Equal(t, nil, err)
	assert.True(t, got.IsSet(0, 1))
	assert.True(t, got.IsSet(0, 7))
	assert.True(t, got.IsSet(2, 4))
	assert.True(t, !got.IsSet(1, 1))
	assert.True(t, !got.IsSet(2, 5))
}

func Test_Fspec_ExceedsCap(t *testing.T) {
	data := make([]byte, MaxFspecOctets+1)
	for i := range data {
		data[i] = 0x01 // FX=1 on every octet, never terminates
	}
	//
	r := NewBitReader(bytes.NewReader(data))
	_, err := ReadFspec(r)
	//
	assert.True(t, errors.Is(err, ErrInvalidData), "expected ErrInvalidData, got %v", err)
}
