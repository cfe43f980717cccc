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
 *
 * Alignment pattern position table ported from the literal table in
 * (pack repo) Fameless4ellL/qrcode's utils.PatternPositionTable rather than
 * re-derived from the teacher's version-dependent step formula.
 */

package qrcode

// blockGeometry describes the two groups of Reed-Solomon blocks a symbol's
// data codewords are split into (spec.md §3's "Block geometry").
type blockGeometry struct {
	g1Size, g1Count int
	g2Size, g2Count int
}

// alignmentPatternPositions[v-1] lists the alignment-pattern center
// coordinates (shared by both axes) for QR version v. Version 1 has none.
var alignmentPatternPositions = [40][]int{
	{},
	{6, 18},
	{6, 22},
	{6, 26},
	{6, 30},
	{6, 34},
	{6, 22, 38},
	{6, 24, 42},
	{6, 26, 46},
	{6, 28, 50},
	{6, 30, 54},
	{6, 32, 58},
	{6, 34, 62},
	{6, 26, 46, 66},
	{6, 26, 48, 70},
	{6, 26, 50, 74},
	{6, 30, 54, 78},
	{6, 30, 56, 82},
	{6, 30, 58, 86},
	{6, 34, 62, 90},
	{6, 28, 50, 72, 94},
	{6, 26, 50, 74, 98},
	{6, 30, 54, 78, 102},
	{6, 28, 54, 80, 106},
	{6, 32, 58, 84, 110},
	{6, 30, 58, 86, 114},
	{6, 34, 62, 90, 118},
	{6, 26, 50, 74, 98, 122},
	{6, 30, 54, 78, 102, 126},
	{6, 26, 52, 78, 104, 130},
	{6, 30, 56, 82, 108, 134},
	{6, 34, 60, 86, 112, 138},
	{6, 30, 58, 86, 114, 142},
	{6, 34, 62, 90, 118, 146},
	{6, 30, 54, 78, 102, 126, 150},
	{6, 24, 50, 76, 102, 128, 154},
	{6, 28, 54, 80, 106, 132, 158},
	{6, 32, 58, 84, 110, 136, 162},
	{6, 26, 54, 82, 110, 138, 166},
	{6, 30, 58, 86, 114, 142, 170},
}

// ecCodewordsPerBlock[ecLevel][v-1] is the number of EC codewords carried by
// every block of a given version and error-correction level.
var ecCodewordsPerBlock = [4][40]int{
	Low: {
		7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28,
		28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30,
		30, 30, 30,
	},
	Medium: {
		10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26,
		26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28,
		28, 28, 28, 28,
	},
	Quartile: {
		13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28,
		26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30,
		30, 30, 30, 30,
	},
	High: {
		17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28,
		26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30,
		30, 30, 30, 30,
	},
}

// ecBlockCount[ecLevel][v-1] is the total number of blocks (group 1 + group
// 2) a symbol of a given version and error-correction level is split into.
var ecBlockCount = [4][40]int{
	Low: {
		1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10,
		12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25,
	},
	Medium: {
		1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17,
		18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49,
	},
	Quartile: {
		1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23,
		23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65,
		68,
	},
	High: {
		1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25,
		34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77,
		81,
	},
}

// numRawDataModules[v-1] is the number of bits a symbol of version v can
// carry in its data region (after subtracting every function pattern and,
// for v>=7, the version information blocks). This includes remainder bits.
var numRawDataModules [40]int

// blockGeometries[ecLevel][v-1] is the (g1Size, g1Count, g2Size, g2Count)
// tuple for a given version and error-correction level, per spec.md §3.
var blockGeometries [4][40]blockGeometry

// dataCapacityBits[ecLevel][v-1] is DATA_CAPACITIES from spec.md §6: the
// number of data bits (excluding EC codewords) a symbol can carry.
var dataCapacityBits [4][40]int

func init() {
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := len(alignmentPatternPositions[v-1])
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		if result < 208 || result > 29648 {
			panic("numRawDataModules miscalculated")
		}
		numRawDataModules[v-1] = result
	}

	for e := Low; e <= High; e++ {
		for v := 1; v <= 40; v++ {
			rawCodewords := numRawDataModules[v-1] / 8
			numBlocks := ecBlockCount[e][v-1]
			eccLen := ecCodewordsPerBlock[e][v-1]

			shortBlockLen := rawCodewords / numBlocks
			numShortBlocks := numBlocks - rawCodewords%numBlocks

			g1Size := shortBlockLen - eccLen
			g1Count := numShortBlocks
			g2Count := numBlocks - numShortBlocks
			g2Size := 0
			if g2Count > 0 {
				g2Size = g1Size + 1
			}

			blockGeometries[e][v-1] = blockGeometry{
				g1Size: g1Size, g1Count: g1Count,
				g2Size: g2Size, g2Count: g2Count,
			}
			dataCapacityBits[e][v-1] = (g1Size*g1Count + g2Size*g2Count) * 8
		}
	}
}
