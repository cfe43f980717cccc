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

// Version is a QR code version number, in [1, 40]. AutoVersion (0) tells
// Encode to pick the smallest version that fits the message.
type Version int

const (
	AutoVersion = Version(0)
	MinVersion  = Version(1)
	MaxVersion  = Version(40)
)

// Size returns the side length of the square symbol for this version.
func (v Version) Size() int {
	return 21 + 4*(int(v)-1)
}

func (v Version) valid() bool {
	return v >= MinVersion && v <= MaxVersion
}

// versionInformation[v-7] is VERSION_INFORMATION[0..33] from spec.md §6: the
// 18-bit BCH-protected version string for versions 7..40. Computed once,
// using the same BCH remainder technique as the 15-bit format strings
// (generator 0x1F25), per spec.md §4.7.
var (
	versionInformation     [34]int
	versionInformationOnce sync.Once
)

func initVersionInformation() {
	for v := 7; v <= 40; v++ {
		rem := v
		for i := 0; i < 12; i++ {
			rem = rem<<1 ^ (rem>>11)*0x1F25
		}
		bits := v<<12 | rem
		if bits>>18 != 0 {
			panic("version information overflowed 18 bits")
		}
		versionInformation[v-7] = bits
	}
}

// versionInfoBits returns the 18-bit version information string for v,
// which must be >= 7.
func versionInfoBits(v Version) int {
	versionInformationOnce.Do(initVersionInformation)
	return versionInformation[int(v)-7]
}
