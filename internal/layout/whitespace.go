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
	"context"
	"runtime/trace"
	"strings"

	"fillmore-labs.com/layoutguard/syntax"
	"fillmore-labs.com/layoutguard/trivia"
)

// Whitespace reports whitespace trivia directly followed by an end of line, and blanks
// ending a line inside a comment.
func (c Checker) Whitespace(ctx context.Context) []Finding {
	defer trace.StartRegion(ctx, "Whitespace").End()

	var findings []Finding

	for token := c.File.Tree().FirstToken(); !token.IsNone(); token = token.Next() {
		findings = appendTrailingWhitespace(findings, token.LeadingTrivia())
		findings = appendTrailingWhitespace(findings, token.TrailingTrivia())
	}

	return findings
}

func appendTrailingWhitespace(findings []Finding, list syntax.TriviaList) []Finding {
	for i, t := range list {
		switch t.Kind() {
		case syntax.TriviaWhitespace:
			if i+1 < len(list) && trivia.IsOptionalWhitespaceThenEndOfLine(list[i:i+2]) {
				findings = appendFinding(findings, t.Span())
			}

		case syntax.TriviaLineComment, syntax.TriviaBlockComment, syntax.TriviaDocComment, syntax.TriviaDirective:
			findings = appendCommentWhitespace(findings, t)
		}
	}

	return findings
}

// appendCommentWhitespace reports blanks at the end of every line of a comment.
func appendCommentWhitespace(findings []Finding, comment syntax.Trivia) []Finding {
	start := comment.Span().Start

	for line := range strings.Lines(comment.Text()) {
		content := strings.TrimRight(line, "\r\n")

		if n := len(strings.TrimRight(content, " \t")); n < len(content) {
			findings = appendFinding(findings, syntax.Span{Start: start + n, End: start + len(content)})
		}

		start += len(line)
	}

	return findings
}

func appendFinding(findings []Finding, span syntax.Span) []Finding {
	return append(findings, Finding{
		Rule:    Whitespace,
		Span:    span,
		Message: "Trailing whitespace",
		Edits:   []Edit{{Span: span}},
	})
}
