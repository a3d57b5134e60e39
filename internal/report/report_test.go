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

package report_test

import (
	"context"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/layoutguard/internal/astutil"
	"fillmore-labs.com/layoutguard/internal/layout"
	. "fillmore-labs.com/layoutguard/internal/report"
	"fillmore-labs.com/layoutguard/internal/testsource"
	"fillmore-labs.com/layoutguard/syntax"
)

func TestProcessDiagnostics(t *testing.T) {
	t.Parallel()

	const src = "package test\n\nvar x = 1 \nvar y = 2 //nolint:layoutguard\nvar z = 3\n"

	_, file := testsource.Parse(t, src)

	spanOf := func(text string) syntax.Span {
		start := strings.Index(src, text)

		return syntax.Span{Start: start, End: start + len(text)}
	}

	space := syntax.Span{Start: strings.Index(src, " \n"), End: strings.Index(src, " \n") + 1}

	findings := []layout.Finding{
		{Rule: layout.Chain, Span: spanOf("var x = 1"), Message: "overlapping", Edits: []layout.Edit{{Span: spanOf("1 "), NewText: "1"}}},
		{Rule: layout.Whitespace, Span: space, Message: "Trailing whitespace", Edits: []layout.Edit{{Span: space}}},
		{Rule: layout.Whitespace, Span: spanOf("2"), Message: "suppressed"},
		{Rule: layout.Params, Span: spanOf("3"), Message: "adjacent", Edits: []layout.Edit{{Span: spanOf("var z"), NewText: "var w"}}},
	}

	var diagnostics []analysis.Diagnostic

	p := &analysis.Pass{Report: func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) }}

	ProcessDiagnostics(context.Background(), p, astutil.NewCurrentFile(file), findings)

	tests := []struct {
		message string
		fixed   bool
	}{
		{"overlapping (lg:chn)", true},
		{"Trailing whitespace (lg:ws)", false},
		{"adjacent (lg:prm)", true},
	}

	if len(diagnostics) != len(tests) {
		t.Fatalf("Got %d diagnostics, want %d", len(diagnostics), len(tests))
	}

	for i, tt := range tests {
		d := diagnostics[i]

		if d.Message != tt.message {
			t.Errorf("Got message %q, want %q", d.Message, tt.message)
		}

		if fixed := len(d.SuggestedFixes) > 0; fixed != tt.fixed {
			t.Errorf("Got fix %t for %q, want %t", fixed, d.Message, tt.fixed)
		}
	}

	if pos, _ := file.Range(spanOf("var x = 1")); diagnostics[0].Pos != pos {
		t.Errorf("Got position %d, want %d", diagnostics[0].Pos, pos)
	}
}
