// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// narrow measures ambiguous East Asian characters as one column, independent of the locale.
var narrow = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false

	return c
}()

// displayWidth returns the rendered width of line, advancing tabs to the next multiple of tabWidth.
func displayWidth(line string, tabWidth int) int {
	tabWidth = max(tabWidth, 1)

	width := 0

	for i, segment := range strings.Split(line, "\t") {
		if i > 0 {
			width += tabWidth - width%tabWidth
		}

		width += narrow.StringWidth(segment)
	}

	return width
}
