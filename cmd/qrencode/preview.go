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
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/basalt-labs/qrencode"
)

// printPreview writes a block-art rendering of m (two columns per module,
// no quiet zone) to stdout. When stdout is a real terminal narrower than
// that rendering, it first prints a warning to stderr; the rendering is
// printed either way.
func printPreview(m *qrcode.Matrix) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil && width < m.Size*2 {
			fmt.Fprintf(os.Stderr, "warning: terminal width %d is too narrow for a %dx%d symbol; output will wrap\n",
				width, m.Size, m.Size)
		}
	}
	fmt.Print(m.String())
}
