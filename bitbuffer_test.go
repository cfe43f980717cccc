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

func TestAppendBitsMSBFirst(t *testing.T) {
	bb := &bitBuffer{}
	bb.appendBits(0b101, 3)
	assert.Equal(t, []bool{true, false, true}, bb.bits)
	assert.Equal(t, 3, bb.len())
}

func TestAppendBitsAccumulates(t *testing.T) {
	bb := &bitBuffer{}
	bb.appendBits(0xA, 4)
	bb.appendBits(0x5, 4)
	assert.Equal(t, 8, bb.len())
	assert.Equal(t, []byte{0xA5}, bb.packBytes())
}

func TestAppendBitsZeroLength(t *testing.T) {
	bb := &bitBuffer{}
	bb.appendBits(0xFF, 0)
	assert.Equal(t, 0, bb.len())
}

func TestPackBytesPanicsOnPartialByte(t *testing.T) {
	bb := &bitBuffer{}
	bb.appendBits(0b1, 1)
	assert.Panics(t, func() { bb.packBytes() })
}

func TestPackBytesMultipleBytes(t *testing.T) {
	bb := &bitBuffer{}
	bb.appendBits(0x12, 8)
	bb.appendBits(0x34, 8)
	bb.appendBits(0x56, 8)
	assert.Equal(t, []byte{0x12, 0x34, 0x56}, bb.packBytes())
}
