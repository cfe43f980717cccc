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

import "sync"

// maxGeneratorDegree is the highest generator degree precomputed. Every EC
// codeword count in ecCodewordsPerBlock (at most 30) lies within it.
const maxGeneratorDegree = 68

var (
	generatorPolys     [maxGeneratorDegree + 1][]int
	generatorPolysOnce sync.Once
)

// initGeneratorPolys computes G_d(x) = product_{i=0..d-1} (x + alpha^i) for
// every degree d in [0, maxGeneratorDegree], iteratively from G_0 = [1].
// Each polynomial is monic and stored highest-degree-coefficient first.
func initGeneratorPolys() {
	generatorPolys[0] = []int{1}
	for d := 1; d <= maxGeneratorDegree; d++ {
		generatorPolys[d] = polyMul(generatorPolys[d-1], []int{1, gfExp[d-1]})
	}
}

// generatorPoly returns the precomputed degree-d Reed-Solomon generator
// polynomial, computing the full table on first use.
func generatorPoly(degree int) []int {
	generatorPolysOnce.Do(initGeneratorPolys)
	if degree < 0 || degree > maxGeneratorDegree {
		panic("generator polynomial degree out of range")
	}
	return generatorPolys[degree]
}
