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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAutoVersionHelloWorld(t *testing.T) {
	res, err := Encode(AutoVersion, Low, "HELLO WORLD")
	require.NoError(t, err)
	assert.Equal(t, Version(1), res.Version)
	assert.Equal(t, 21, res.Matrix.Size)
}

func TestEncodeVersion2HelloWorld(t *testing.T) {
	res, err := Encode(Version(2), Medium, "HELLO WORLD")
	require.NoError(t, err)
	assert.Equal(t, Version(2), res.Version)
	assert.Equal(t, 25, res.Matrix.Size)
}

func TestEncodeVersion7HasVersionInformation(t *testing.T) {
	res, err := Encode(Version(7), Quartile, "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, Version(7), res.Version)
	assert.Equal(t, 45, res.Matrix.Size)
	bits := versionInfoBits(7)
	assert.Equal(t, bits, 0b000111110010010100)

	m := res.Matrix
	for i := 0; i < 18; i++ {
		bit := (bits>>uint(i))&1 == 1
		a, b := m.Size-11+i%3, i/3
		assert.Equal(t, bit, m.At(a, b).Dark, "top-right copy bit %d", i)
		assert.Equal(t, bit, m.At(b, a).Dark, "bottom-left copy bit %d", i)
	}
}

func TestEncodeCapacityExceeded(t *testing.T) {
	_, err := Encode(Version(1), High, strings.Repeat("A", 19))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
}

func TestEncodeVersion40RoundTripSize(t *testing.T) {
	res, err := Encode(Version(40), Low, strings.Repeat("a", 2000))
	require.NoError(t, err)
	assert.Equal(t, Version(40), res.Version)
	assert.Equal(t, 177, res.Matrix.Size)
}

func TestEncodeEmptyStringSelectsVersion1(t *testing.T) {
	res, err := Encode(AutoVersion, Low, "")
	require.NoError(t, err)
	assert.Equal(t, Version(1), res.Version)
	assert.Equal(t, 21, res.Matrix.Size)
}

func TestEncodeInvalidVersion(t *testing.T) {
	_, err := Encode(Version(41), Low, "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestEncodeInvalidECLevel(t *testing.T) {
	_, err := Encode(Version(1), ECLevel(9), "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestEveryCellIsSet(t *testing.T) {
	res, err := Encode(Version(5), Medium, "every cell must be set exactly once")
	require.NoError(t, err)
	m := res.Matrix
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			assert.True(t, m.isSet(x, y), "cell (%d,%d) was never written", x, y)
		}
	}
}

func TestTotalCodewordsPlaced(t *testing.T) {
	v, ec := Version(5), Quartile
	res, err := Encode(v, ec, "total codeword count invariant")
	require.NoError(t, err)

	geo := blockGeometries[ec][int(v)-1]
	eccLen := ecCodewordsPerBlock[ec][int(v)-1]
	totalBlocks := geo.g1Count + geo.g2Count
	wantDataCodewords := geo.g1Size*geo.g1Count + geo.g2Size*geo.g2Count
	wantTotal := wantDataCodewords + eccLen*totalBlocks

	// Count codeword modules placed in the matrix (every raw data module is
	// a codeword module exactly when it is not a function pattern cell).
	count := 0
	for y := 0; y < res.Matrix.Size; y++ {
		for x := 0; x < res.Matrix.Size; x++ {
			if res.Matrix.At(x, y).IsCodeword {
				count++
			}
		}
	}
	assert.Equal(t, wantTotal*8, count-remainderBits(v))
}

// remainderBits returns the number of unused trailing bit positions in the
// raw data region for version v (0 to 7), matching numRawDataModules's
// inclusion of remainder bits beyond whole codewords.
func remainderBits(v Version) int {
	return numRawDataModules[int(v)-1] % 8
}

func TestMaskIsInvolutionOnCodewordCells(t *testing.T) {
	res, err := Encode(Version(3), Low, "involution check")
	require.NoError(t, err)
	m := res.Matrix

	before := make([]bool, 0, m.Size*m.Size)
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			before = append(before, m.At(x, y).Dark)
		}
	}

	m.applyMask(res.Mask)
	m.applyMask(res.Mask)

	i := 0
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			assert.Equal(t, before[i], m.At(x, y).Dark)
			i++
		}
	}
}

func TestChosenMaskMinimizesPenalty(t *testing.T) {
	res, err := Encode(Version(4), Medium, "pick the best mask please")
	require.NoError(t, err)
	m := res.Matrix

	// The matrix already carries the chosen mask; score it, then try every
	// other mask on a fresh encode and confirm none scores lower.
	chosenScore := m.penaltyScore()

	for i := 0; i < 8; i++ {
		if i == res.Mask {
			continue
		}
		alt, err := Encode(Version(4), Medium, "pick the best mask please", WithMask(i))
		require.NoError(t, err)
		altScore := alt.Matrix.penaltyScore()
		assert.LessOrEqualf(t, chosenScore, altScore, "mask %d scored lower than chosen mask %d", i, res.Mask)
	}
}

func TestBoostECLOptIn(t *testing.T) {
	data := "short"
	base, err := Encode(Version(5), Low, data)
	require.NoError(t, err)
	assert.Equal(t, Low, base.ECLevel)

	boosted, err := Encode(Version(5), Low, data, WithBoostECL(true))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, int(boosted.ECLevel), int(Low))
}
