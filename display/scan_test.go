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

package display_test

import (
	"testing"

	. "fillmore-labs.com/layoutguard/display"
)

func TestScanGo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"simple", "(a int, b string)", "(a int, b string)"},
		{"composite types", "(m map[string][]int, p *T, ch <-chan int)", "(m map[string][]int, p *T, ch <-chan int)"},
		{"variadic", "(format string, args ...any)", "(format string, args ...any)"},
		{"function types", "(f func(int) (bool, error))", "(f func(int) (bool, error))"},
		{"generics", "(s S[K, V], k K)", "(s S[K, V], k K)"},
		{"multi line", "(\n\ta int,\n\tb string,\n)", "(a int, b string,)"},
		{"missing spaces", "(a int,b string)", "(a int, b string)"},
		{"comments dropped", "(a int /* first */, b string // second\n)", "(a int, b string)"},
		{"struct", "(a int, b struct {\n\tX int\n\tY int\n})", "(a int, b struct {X int; Y int})"},
		{"interface", "(a int, b interface {\n\tM()\n\tN()\n})", "(a int, b interface {M(); N()})"},
		{"explicit semicolons", "(b struct{ X int; Y int })", "(b struct{X int; Y int})"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ScanGo(tt.src)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if got.String() != tt.want {
				t.Errorf("Got %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestScanGoKinds(t *testing.T) {
	t.Parallel()

	got, err := ScanGo("(n int, s string) error")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !got[0].Is(PunctOpenParen) || got[1].Kind != PartText || !got[2].IsSpace() || !got[4].Is(PunctComma) {
		t.Errorf("Unexpected part kinds in %+v", got)
	}

	if last := got[len(got)-1]; last.Kind != PartText || last.Text != "error" {
		t.Errorf("Got last part %+v, want error", last)
	}
}

func TestScanGoError(t *testing.T) {
	t.Parallel()

	if _, err := ScanGo("(s string, r rune) = 'ab"); err == nil {
		t.Error("Expected scanning error")
	}
}

func TestScanGoFormatParameters(t *testing.T) {
	t.Parallel()

	parts, err := ScanGo("func(ctx context.Context, m map[string]int, f func(a, b int))")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := FormatParameters(method, parts, "\t")

	const want = "func(\n\tctx context.Context,\n\tm map[string]int,\n\tf func(a, b int))"
	if got.String() != want {
		t.Errorf("Got %q, want %q", got.String(), want)
	}
}
