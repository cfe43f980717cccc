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
)

func TestByteModeCharCountBits(t *testing.T) {
	assert.Equal(t, 8, byteModeCharCountBits(1))
	assert.Equal(t, 8, byteModeCharCountBits(9))
	assert.Equal(t, 16, byteModeCharCountBits(10))
	assert.Equal(t, 16, byteModeCharCountBits(40))
}

func TestSegmentBitLengthMatchesBuiltBuffer(t *testing.T) {
	data := []byte("HELLO WORLD")
	for _, v := range []Version{1, 9, 10, 40} {
		bb := headerAndPayloadBits(data, v)
		assert.Equal(t, segmentBitLength(data, v), bb.len())
	}
}

func TestHeaderAndPayloadBitsStartsWithECIAndByteMode(t *testing.T) {
	bb := headerAndPayloadBits([]byte("A"), 1)

	// ECI mode indicator (4 bits) + marker bit (1) + ECI designator 26 (7
	// bits) + byte mode indicator (4 bits).
	want := &bitBuffer{}
	want.appendBits(modeIndicatorECI, 4)
	want.appendBits(0, 1)
	want.appendBits(eciDesignatorUTF8, 7)
	want.appendBits(modeIndicatorByte, 4)

	assert.Equal(t, want.bits, bb.bits[:len(want.bits)])
}

func TestHeaderAndPayloadBitsEmptyData(t *testing.T) {
	bb := headerAndPayloadBits(nil, 1)
	assert.Equal(t, segmentBitLength(nil, 1), bb.len())
}
