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

// rsEncodeBlock returns the e EC codewords for a k-codeword data block, per
// spec.md §4.4: form data * x^e, reduce it modulo the degree-e generator,
// and the e-length remainder is the EC codeword block.
func rsEncodeBlock(data []byte, e int) []byte {
	gen := generatorPoly(e)

	dividend := make([]int, len(data)+e)
	for i, b := range data {
		dividend[i] = int(b)
	}

	remainder := polyMod(dividend, gen)

	ec := make([]byte, e)
	for i, c := range remainder {
		ec[i] = byte(c)
	}
	return ec
}

// splitEncodeInterleave splits data into the blocks described by geo, RS
// encodes each block independently with eccLen EC codewords, and
// interleaves first the data blocks and then the EC blocks, per spec.md
// §4.4. The returned slice is the exact codeword stream placed into the
// matrix by drawCodewords.
func splitEncodeInterleave(data []byte, geo blockGeometry, eccLen int) []byte {
	totalBlocks := geo.g1Count + geo.g2Count
	dataBlocks := make([][]byte, totalBlocks)
	ecBlocks := make([][]byte, totalBlocks)

	offset := 0
	idx := 0
	for i := 0; i < geo.g1Count; i++ {
		dataBlocks[idx] = data[offset : offset+geo.g1Size]
		offset += geo.g1Size
		idx++
	}
	for i := 0; i < geo.g2Count; i++ {
		dataBlocks[idx] = data[offset : offset+geo.g2Size]
		offset += geo.g2Size
		idx++
	}
	if offset != len(data) {
		panic("block geometry does not cover the data codeword stream")
	}

	for i, block := range dataBlocks {
		ecBlocks[i] = rsEncodeBlock(block, eccLen)
	}

	maxDataLen := geo.g1Size
	if geo.g2Count > 0 {
		maxDataLen = geo.g2Size
	}

	result := make([]byte, 0, len(data)+totalBlocks*eccLen)
	for i := 0; i < maxDataLen; i++ {
		for _, block := range dataBlocks {
			if i < len(block) {
				result = append(result, block[i])
			}
		}
	}
	for i := 0; i < eccLen; i++ {
		for _, block := range ecBlocks {
			result = append(result, block[i])
		}
	}

	return result
}
