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
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 */

package qrcode

// GF(256) arithmetic under the QR code's primitive polynomial
// x^8 + x^4 + x^3 + x^2 + 1 (0x11D).

const gfPrimitive = 0x11D

var (
	gfExp [512]int
	gfLog [256]int
)

func init() {
	val := 1
	for i := 0; i < 255; i++ {
		gfExp[i] = val
		gfLog[val] = i
		val <<= 1
		if val&0x100 != 0 {
			val ^= gfPrimitive
		}
	}
	// Extend past 255 by repetition so multiplications never need a modulo.
	for i := 255; i < 512; i++ {
		gfExp[i] = gfExp[i-255]
	}
}

// gfMul returns the product of a and b in GF(256), or 0 if either is 0.
func gfMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[gfLog[a]+gfLog[b]]
}

// polyMul returns the convolution of p and q under GF(256) addition (XOR)
// and multiplication. The result has length len(p)+len(q)-1.
func polyMul(p, q []int) []int {
	result := make([]int, len(p)+len(q)-1)
	for i, pc := range p {
		if pc == 0 {
			continue
		}
		for j, qc := range q {
			result[i+j] ^= gfMul(pc, qc)
		}
	}
	return result
}

// polyMod performs synthetic (polynomial) division of dividend by a monic
// divisor over GF(256) and returns the remainder, of length len(divisor)-1.
// dividend is not mutated.
func polyMod(dividend, divisor []int) []int {
	remainder := append([]int(nil), dividend...)
	for len(remainder) >= len(divisor) {
		factor := remainder[0]
		if factor != 0 {
			for i, dc := range divisor {
				remainder[i] ^= gfMul(dc, factor)
			}
		}
		remainder = remainder[1:]
	}
	return remainder
}
