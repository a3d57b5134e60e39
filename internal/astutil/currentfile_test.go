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

package astutil_test

import (
	"strings"
	"testing"

	. "fillmore-labs.com/layoutguard/internal/astutil"
	"fillmore-labs.com/layoutguard/internal/testsource"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"//nolint:layoutguard", true},
		{"// nolint:layoutguard", true},
		{"//nolint:errcheck,LayoutGuard", true},
		{"//nolint:all", true},
		{"//nolint:errcheck", false},
		{"//nolint", false},
		{"/* nolint:layoutguard */", false},
		{"// comment", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(tt.text); got != tt.want {
			t.Errorf("CommentHasNoLint(%q) = %t, want %t", tt.text, got, tt.want)
		}
	}
}

func TestNoLintComment(t *testing.T) {
	t.Parallel()

	const src = `package test

func f() {
	a := 1 //nolint:layoutguard
	b := 2 // other
	_, _ = a, b
}
`

	_, file := testsource.Parse(t, src)

	current := NewCurrentFile(file)
	if !current.Valid() || current.Generated() || current.NoLintFile() {
		t.Fatalf("Unexpected file state")
	}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"suppressed line", "a := 1", true},
		{"other comment", "b := 2", false},
		{"no comment", "_, _ = a, b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			offset := strings.Index(src, tt.text)
			if got := current.NoLintComment(offset); got != tt.want {
				t.Errorf("Got %t, want %t", got, tt.want)
			}
		})
	}
}

func TestNoLintFile(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by hand. DO NOT EDIT.

//nolint:layoutguard
package test
`

	_, file := testsource.Parse(t, src)

	current := NewCurrentFile(file)
	if !current.Generated() || !current.NoLintFile() {
		t.Errorf("Got generated=%t nolint=%t, want both", current.Generated(), current.NoLintFile())
	}

	if NewCurrentFile(nil).Valid() {
		t.Error("Expected invalid file without syntax tree")
	}
}
