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

import "testing"

func TestDisplayWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line     string
		tabWidth int
		want     int
	}{
		{"", 8, 0},
		{"func f()", 8, 8},
		{"\tab", 8, 10},
		{"a\tb", 8, 9},
		{"\t\tx", 4, 9},
		{"日本", 8, 4},
		{"\t", 0, 1},
	}

	for _, tt := range tests {
		if got := displayWidth(tt.line, tt.tabWidth); got != tt.want {
			t.Errorf("displayWidth(%q, %d) = %d, want %d", tt.line, tt.tabWidth, got, tt.want)
		}
	}
}
