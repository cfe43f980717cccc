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

// Module is one cell of a QR code symbol (spec.md §3). Dark/light modules
// that belong to the data region are also data codeword carriers and are
// subject to masking; modules in a functional region (finders, separators,
// timing, alignment, format, version, the dark module) never are.
type Module struct {
	Dark       bool
	IsCodeword bool
}

// Matrix is the square grid of Modules that makes up a finished (or
// in-progress) QR code symbol. Coordinates are (x, y), origin top-left, x
// increasing right and y increasing down.
type Matrix struct {
	Size int
	rows [][]Module

	// occupied tracks which cells have been written during construction.
	// A Module's zero value (light, non-codeword) is indistinguishable
	// from "unset", so the placement and timing-pattern steps need this
	// separate bookkeeping to know which cells are still free.
	occupied [][]bool
}

func newMatrix(size int) *Matrix {
	rows := make([][]Module, size)
	occupied := make([][]bool, size)
	for i := range rows {
		rows[i] = make([]Module, size)
		occupied[i] = make([]bool, size)
	}
	return &Matrix{Size: size, rows: rows, occupied: occupied}
}

// At returns the module at (x, y).
func (m *Matrix) At(x, y int) Module {
	return m.rows[y][x]
}

// isSet reports whether (x, y) has already been written.
func (m *Matrix) isSet(x, y int) bool {
	return m.occupied[y][x]
}

// setFunction writes a functional (non-codeword) module.
func (m *Matrix) setFunction(x, y int, dark bool) {
	m.rows[y][x] = Module{Dark: dark, IsCodeword: false}
	m.occupied[y][x] = true
}

// setCodeword writes a data/EC-codeword module.
func (m *Matrix) setCodeword(x, y int, dark bool) {
	m.rows[y][x] = Module{Dark: dark, IsCodeword: true}
	m.occupied[y][x] = true
}

func bToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// drawFinderPattern draws a 7x7 finder pattern plus its 1-module separator
// border, with the pattern's top-left corner at (x, y) (spec.md §4.5 step
// 2-3). Coordinates that fall outside the matrix (the separator can spill
// past the edge for the three finder corners) are silently skipped.
func (m *Matrix) drawFinderPattern(x, y int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= m.Size || yy < 0 || yy >= m.Size {
				continue
			}
			if dx < 0 || dx > 6 || dy < 0 || dy > 6 {
				m.setFunction(xx, yy, false) // separator
				continue
			}
			dist := maxInt(absInt(dx-3), absInt(dy-3))
			m.setFunction(xx, yy, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (x, y)
// (spec.md §4.5 step 4).
func (m *Matrix) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			dist := maxInt(absInt(dx), absInt(dy))
			m.setFunction(x+dx, y+dy, dist != 1)
		}
	}
}

// drawTimingPatterns fills row 6 and column 6 with alternating dark/light
// modules (dark at even indices), skipping any cell already set by a finder
// or alignment pattern (spec.md §4.5 step 6).
func (m *Matrix) drawTimingPatterns() {
	for i := 0; i < m.Size; i++ {
		if !m.isSet(i, 6) {
			m.setFunction(i, 6, i%2 == 0)
		}
		if !m.isSet(6, i) {
			m.setFunction(6, i, i%2 == 0)
		}
	}
}

// drawFunctionPatterns draws every functional region, including version
// information for versions >= 7. Format information is reserved (zeroed)
// here and stamped later once the mask is known (spec.md §4.5 steps 2-7).
func (q *symbol) drawFunctionPatterns() {
	m := q.matrix

	m.drawFinderPattern(0, 0)
	m.drawFinderPattern(m.Size-7, 0)
	m.drawFinderPattern(0, m.Size-7)

	positions := alignmentPatternPositions[int(q.version)-1]
	n := len(positions)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue // collides with a finder pattern
			}
			m.drawAlignmentPattern(positions[i], positions[j])
		}
	}

	if q.version >= 7 {
		q.drawVersionInformation()
	}

	m.drawTimingPatterns()

	q.reserveFormatInformation()

	m.setFunction(8, m.Size-8, true) // dark module, always set
}

// reserveFormatInformation zero-fills the fifteen-bit format strip on both
// axes so the codeword walker treats these cells as already occupied
// (spec.md §4.5 step 7). The real bits are stamped later by drawFormatBits.
func (q *symbol) reserveFormatInformation() {
	m := q.matrix
	for i := 0; i <= 8; i++ {
		if i != 6 {
			m.setFunction(8, i, false)
			m.setFunction(i, 8, false)
		}
	}
	for i := 0; i < 8; i++ {
		m.setFunction(m.Size-1-i, 8, false)
		m.setFunction(8, m.Size-1-i, false)
	}
}

// drawCodewords places the interleaved codeword stream onto the matrix
// using the Nayuki-style zig-zag scan (spec.md §4.5 step 8). Any cells left
// unset once the stream is exhausted (remainder bits) become codeword
// modules with value false.
func (q *symbol) drawCodewords(data []byte) {
	m := q.matrix
	bitIndex := 0
	totalBits := len(data) * 8

	for right := m.Size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5 // column 6 is always the timing column, regardless of version
		}
		for vert := 0; vert < m.Size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				if x == 6 {
					panic("drawCodewords: zig-zag walk reached the timing column")
				}
				upward := (right+1)&2 == 0

				var y int
				if upward {
					y = m.Size - 1 - vert
				} else {
					y = vert
				}

				if !m.isSet(x, y) {
					bit := false
					if bitIndex < totalBits {
						bit = (data[bitIndex>>3]>>(7-uint(bitIndex&7)))&1 == 1
						bitIndex++
					}
					m.setCodeword(x, y, bit)
				}
			}
		}
	}

	if bitIndex != totalBits {
		panic("drawCodewords: did not consume the entire codeword stream")
	}
}
