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

// ECLevel is the error-correction level of a QR code symbol.
type ECLevel int8

// The four QR error-correction levels, with their approximate recovery
// rates. The numeric values also index the static per-level tables.
const (
	Low      ECLevel = iota // ~7% recovery
	Medium                  // ~15% recovery
	Quartile                // ~25% recovery
	High                    // ~30% recovery
)

// L, M, Q, H are the conventional one-letter aliases used by callers.
const (
	L = Low
	M = Medium
	Q = Quartile
	H = High
)

func (e ECLevel) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}

func (e ECLevel) valid() bool {
	return e >= Low && e <= High
}

// formatBits returns the 2-bit EC-level field used inside the 15-bit format
// information string (spec.md §4.7): L=01, M=00, Q=11, H=10.
func (e ECLevel) formatBits() int {
	switch e {
	case Low:
		return 0b01
	case Medium:
		return 0b00
	case Quartile:
		return 0b11
	case High:
		return 0b10
	default:
		panic("invalid error correction level")
	}
}
