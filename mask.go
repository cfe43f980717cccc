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

import "math"

const (
	penaltyN1 = 3  // per run reaching 5 modules; each further module adds 1
	penaltyN2 = 3  // per 2x2 same-color block
	penaltyN3 = 40 // per finder-like pattern
	penaltyN4 = 10 // per 5% of dark/light imbalance
)

// maskPredicate reports whether mask i inverts the codeword module at
// (x, y), per the eight rules in spec.md §4.6.
func maskPredicate(i, x, y int) bool {
	switch i {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("illegal mask index")
	}
}

// applyMask XORs mask i into every codeword module's Dark bit. Masks are
// involutions on codeword cells, so applying the same mask twice restores
// the original value (spec.md §8 invariant 5).
func (m *Matrix) applyMask(i int) {
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			cell := &m.rows[y][x]
			if cell.IsCodeword && maskPredicate(i, x, y) {
				cell.Dark = !cell.Dark
			}
		}
	}
}

// finderPenaltyAddHistory pushes currentRunLength to the front of the
// run-length history, dropping the oldest entry. The very first run is
// widened by Size, modeling the light quiet zone beyond the matrix edge.
func (m *Matrix) finderPenaltyAddHistory(currentRunLength int, history *[7]int) {
	if history[0] == 0 {
		currentRunLength += m.Size
	}
	copy(history[1:], history[0:])
	history[0] = currentRunLength
}

// finderPenaltyCountPatterns matches the 1:1:3:1:1 finder-like run-length
// signature (and its reverse) against the current history window.
func (m *Matrix) finderPenaltyCountPatterns(history *[7]int) int {
	n := history[1]
	if n > m.Size*3 {
		panic("run history exceeds matrix bounds")
	}
	core := n > 0 && history[2] == n && history[3] == n*3 && history[4] == n && history[5] == n
	return bToInt(core && history[0] >= n*4 && history[6] >= n) +
		bToInt(core && history[6] >= n*4 && history[0] >= n)
}

// finderPenaltyTerminateAndCount closes out the final run of a row/column
// scan and scores any finder-like pattern it completes.
func (m *Matrix) finderPenaltyTerminateAndCount(runDark bool, runLength int, history *[7]int) int {
	if runDark {
		m.finderPenaltyAddHistory(runLength, history)
		runLength = 0
	}
	runLength += m.Size
	m.finderPenaltyAddHistory(runLength, history)
	return m.finderPenaltyCountPatterns(history)
}

// penaltyScore computes the four-part penalty of spec.md §4.6 for the
// matrix's current (masked) state.
func (m *Matrix) penaltyScore() int {
	result := 0

	// Adjacent same-color runs and finder-like patterns, scanned per row.
	for y := 0; y < m.Size; y++ {
		runDark := false
		runLen := 0
		var history [7]int
		for x := 0; x < m.Size; x++ {
			dark := m.rows[y][x].Dark
			if dark == runDark {
				runLen++
				if runLen == 5 {
					result += penaltyN1
				} else if runLen > 5 {
					result++
				}
			} else {
				m.finderPenaltyAddHistory(runLen, &history)
				if !runDark {
					result += m.finderPenaltyCountPatterns(&history) * penaltyN3
				}
				runDark = dark
				runLen = 1
			}
		}
		result += m.finderPenaltyTerminateAndCount(runDark, runLen, &history) * penaltyN3
	}

	// Adjacent same-color runs and finder-like patterns, scanned per column.
	for x := 0; x < m.Size; x++ {
		runDark := false
		runLen := 0
		var history [7]int
		for y := 0; y < m.Size; y++ {
			dark := m.rows[y][x].Dark
			if dark == runDark {
				runLen++
				if runLen == 5 {
					result += penaltyN1
				} else if runLen > 5 {
					result++
				}
			} else {
				m.finderPenaltyAddHistory(runLen, &history)
				if !runDark {
					result += m.finderPenaltyCountPatterns(&history) * penaltyN3
				}
				runDark = dark
				runLen = 1
			}
		}
		result += m.finderPenaltyTerminateAndCount(runDark, runLen, &history) * penaltyN3
	}

	// 2x2 blocks of a single color (overlapping blocks all count).
	for y := 0; y < m.Size-1; y++ {
		for x := 0; x < m.Size-1; x++ {
			c := m.rows[y][x].Dark
			if c == m.rows[y][x+1].Dark && c == m.rows[y+1][x].Dark && c == m.rows[y+1][x+1].Dark {
				result += penaltyN2
			}
		}
	}

	// Balance of dark vs. light modules.
	dark := 0
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			if m.rows[y][x].Dark {
				dark++
			}
		}
	}
	total := m.Size * m.Size // Size is always odd, so dark/total never lands exactly on 1/2.
	k := (absInt(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

// chooseMask applies, scores and reverts each of the eight masks in turn
// and returns the index with the lowest penalty (ties keep the lowest
// index, since later masks only replace the champion on a strictly lower
// score).
func (q *symbol) chooseMask() int {
	m := q.matrix
	best := -1
	bestScore := math.MaxInt32
	for i := 0; i < 8; i++ {
		m.applyMask(i)
		q.drawFormatBits(i)
		score := m.penaltyScore()
		if score < bestScore {
			best = i
			bestScore = score
		}
		m.applyMask(i) // masks are involutions on codeword cells: undo it
	}
	return best
}
