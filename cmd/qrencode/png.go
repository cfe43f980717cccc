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

package main

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/basalt-labs/qrencode"
)

// writePNG rasterizes m at scale pixels per module with a border-module
// quiet zone and encodes it as a PNG to w.
func writePNG(w io.Writer, m *qrcode.Matrix, border, scale int) error {
	if scale < 1 {
		scale = 1
	}
	if border < 0 {
		border = 0
	}

	dim := (m.Size + 2*border) * scale
	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{
		color.White,
		color.Black,
	})
	for i := range img.Pix {
		img.Pix[i] = 0 // index 0: white
	}

	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			if !m.At(x, y).Dark {
				continue
			}
			startX := (x + border) * scale
			startY := (y + border) * scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetColorIndex(startX+dx, startY+dy, 1) // index 1: black
				}
			}
		}
	}

	return png.Encode(w, img)
}
