/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSEncodeBlockLength(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	ec := rsEncodeBlock(data, 10)
	assert.Len(t, ec, 10)
}

func TestRSEncodeBlockAllZerosIsAllZeros(t *testing.T) {
	data := make([]byte, 8)
	ec := rsEncodeBlock(data, 17)
	for _, b := range ec {
		assert.Equal(t, byte(0), b)
	}
}

func TestSplitEncodeInterleaveSingleBlock(t *testing.T) {
	geo := blockGeometry{g1Size: 4, g1Count: 1}
	data := []byte{0x10, 0x20, 0x30, 0x40}
	eccLen := 10

	got := splitEncodeInterleave(data, geo, eccLen)
	require.Len(t, got, len(data)+eccLen)
	assert.Equal(t, data, got[:len(data)])
	assert.Equal(t, rsEncodeBlock(data, eccLen), got[len(data):])
}

func TestSplitEncodeInterleaveTwoEqualBlocks(t *testing.T) {
	geo := blockGeometry{g1Size: 2, g1Count: 2}
	data := []byte{0x01, 0x02, 0x03, 0x04}
	eccLen := 6

	got := splitEncodeInterleave(data, geo, eccLen)

	// data interleaved byte-by-byte across the two blocks
	assert.Equal(t, []byte{0x01, 0x03, 0x02, 0x04}, got[:4])

	ec1 := rsEncodeBlock([]byte{0x01, 0x02}, eccLen)
	ec2 := rsEncodeBlock([]byte{0x03, 0x04}, eccLen)
	for i := 0; i < eccLen; i++ {
		assert.Equal(t, ec1[i], got[4+i*2])
		assert.Equal(t, ec2[i], got[4+i*2+1])
	}
}

func TestSplitEncodeInterleaveTwoGroups(t *testing.T) {
	// Group 1: one 2-byte block. Group 2: one 3-byte block (short blocks
	// run out first during the data interleave pass, per spec.md §4.4).
	geo := blockGeometry{g1Size: 2, g1Count: 1, g2Size: 3, g2Count: 1}
	data := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE}
	eccLen := 7

	got := splitEncodeInterleave(data, geo, eccLen)

	assert.Equal(t, []byte{0xAA, 0xCC, 0xBB, 0xDD, 0xEE}, got[:5])
	require.Len(t, got, 5+2*eccLen)
}

func TestSplitEncodeInterleavePanicsOnGeometryMismatch(t *testing.T) {
	geo := blockGeometry{g1Size: 4, g1Count: 1}
	data := []byte{0x01, 0x02, 0x03} // too short for geo
	assert.Panics(t, func() { splitEncodeInterleave(data, geo, 10) })
}
