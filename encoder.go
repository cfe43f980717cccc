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
	"fmt"
)

// ErrCapacityExceeded is returned, optionally wrapped with extra context via
// fmt.Errorf's %w, when the requested message cannot fit in the requested
// (or any, for Auto) version at the requested error-correction level.
var ErrCapacityExceeded = errors.New(
	"message exceeds data capacity. Increase version, decrease error correction level or shorten message")

// ErrInvalidInput marks a programmer error: a version or error-correction
// level outside their valid ranges.
var ErrInvalidInput = errors.New("invalid input")

// symbol carries the in-progress state of one Encode call. It is never
// reused across calls (spec.md §5: pure, single-threaded, no state survives
// a call).
type symbol struct {
	version Version
	ecLevel ECLevel
	matrix  *Matrix
}

// Result is the output of Encode: the finished matrix plus the version and
// mask that were actually used (spec.md §6 calls these out as
// "implementation-visible" because tests need them).
type Result struct {
	Matrix  *Matrix
	Version Version
	ECLevel ECLevel
	Mask    int
}

type encodeOptions struct {
	mask       int // -1 means automatic selection
	boostECL   bool
	minVersion Version
	maxVersion Version
}

// Option configures an Encode call beyond its required (version, ecLevel,
// data) arguments.
type Option func(*encodeOptions)

// WithMask pins the mask pattern instead of selecting the lowest-penalty
// one automatically.
func WithMask(mask int) Option {
	return func(o *encodeOptions) { o.mask = mask }
}

// WithBoostECL raises the error-correction level above the one requested
// when the chosen version has spare capacity at a higher level. Off by
// default, so the core Encode entry point matches spec.md's literal
// semantics: the requested ecLevel is never silently changed.
func WithBoostECL(boost bool) Option {
	return func(o *encodeOptions) { o.boostECL = boost }
}

// WithMinVersion restricts automatic version selection to versions >= v.
func WithMinVersion(v Version) Option {
	return func(o *encodeOptions) { o.minVersion = v }
}

// WithMaxVersion restricts automatic version selection to versions <= v.
func WithMaxVersion(v Version) Option {
	return func(o *encodeOptions) { o.maxVersion = v }
}

// Encode builds the QR code module matrix for data at the given version
// (or AutoVersion to pick the smallest version that fits) and
// error-correction level, per spec.md's full encoding pipeline.
func Encode(version Version, ecLevel ECLevel, data string, opts ...Option) (*Result, error) {
	if version != AutoVersion && !version.valid() {
		return nil, fmt.Errorf("%w: version %d out of range [0, 40]", ErrInvalidInput, version)
	}
	if !ecLevel.valid() {
		return nil, fmt.Errorf("%w: error correction level %d out of range", ErrInvalidInput, ecLevel)
	}

	o := encodeOptions{mask: -1, minVersion: MinVersion, maxVersion: MaxVersion}
	for _, opt := range opts {
		opt(&o)
	}
	if o.minVersion < MinVersion || o.maxVersion > MaxVersion || o.maxVersion < o.minVersion {
		return nil, fmt.Errorf("%w: invalid min/max version range", ErrInvalidInput)
	}
	if o.mask < -1 || o.mask > 7 {
		return nil, fmt.Errorf("%w: mask %d out of range [0, 7]", ErrInvalidInput, o.mask)
	}

	payload := []byte(data)

	v, err := resolveVersion(version, ecLevel, payload, o)
	if err != nil {
		return nil, err
	}

	if o.boostECL {
		ecLevel = boostECLevel(ecLevel, v, payload)
	}

	codewords := buildDataCodewords(payload, v, ecLevel)

	m := newMatrix(v.Size())
	s := &symbol{version: v, ecLevel: ecLevel, matrix: m}

	s.drawFunctionPatterns()

	geo := blockGeometries[ecLevel][int(v)-1]
	eccLen := ecCodewordsPerBlock[ecLevel][int(v)-1]
	allCodewords := splitEncodeInterleave(codewords, geo, eccLen)
	s.drawCodewords(allCodewords)

	mask := o.mask
	if mask == -1 {
		mask = s.chooseMask()
	}
	m.applyMask(mask)
	s.drawFormatBits(mask)

	return &Result{Matrix: m, Version: v, ECLevel: ecLevel, Mask: mask}, nil
}

// resolveVersion picks the smallest version in [o.minVersion, o.maxVersion]
// whose capacity at ecLevel fits the header+payload bit length, or the
// caller's explicit version if one was given (spec.md §4.3).
func resolveVersion(version Version, ecLevel ECLevel, payload []byte, o encodeOptions) (Version, error) {
	if version != AutoVersion {
		capacity := dataCapacityBits[ecLevel][int(version)-1]
		if segmentBitLength(payload, version) > capacity {
			return 0, fmt.Errorf("%w", ErrCapacityExceeded)
		}
		return version, nil
	}

	for v := o.minVersion; v <= o.maxVersion; v++ {
		capacity := dataCapacityBits[ecLevel][int(v)-1]
		if segmentBitLength(payload, v) <= capacity {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w", ErrCapacityExceeded)
}

// boostECLevel raises ecLevel as far as High while data still fits version
// v's capacity, per the teacher's EncodeSegments (opt-in via
// WithBoostECL).
func boostECLevel(ecLevel ECLevel, v Version, payload []byte) ECLevel {
	bits := segmentBitLength(payload, v)
	for candidate := ecLevel + 1; candidate <= High; candidate++ {
		if bits > dataCapacityBits[candidate][int(v)-1] {
			break
		}
		ecLevel = candidate
	}
	return ecLevel
}

// buildDataCodewords assembles the header+payload bitstream, appends the
// terminator and padding, and packs the result into 8-bit codewords
// (spec.md §4.3).
func buildDataCodewords(payload []byte, v Version, ecLevel ECLevel) []byte {
	capacity := dataCapacityBits[ecLevel][int(v)-1]

	bb := headerAndPayloadBits(payload, v)
	if bb.len() > capacity {
		panic("buildDataCodewords: payload exceeds capacity after version resolution")
	}

	term := 4
	if capacity-bb.len() < term {
		term = capacity - bb.len()
	}
	bb.appendBits(0, term)

	if rem := bb.len() % 8; rem != 0 {
		bb.appendBits(0, 8-rem)
	}

	padBytes := [2]int{0xEC, 0x11}
	padIdx := 0
	for bb.len() < capacity {
		bb.appendBits(padBytes[padIdx], 8)
		padIdx = 1 - padIdx
	}

	return bb.packBytes()
}
