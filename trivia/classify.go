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

package trivia

import "fillmore-labs.com/layoutguard/syntax"

// IsWhitespaceOnly reports whether every element of list is whitespace.
func IsWhitespaceOnly(list syntax.TriviaList) bool {
	for _, t := range list {
		if !t.IsWhitespace() {
			return false
		}
	}

	return true
}

// IsEmptyOrWhitespace reports whether every element of list is whitespace or an end of line.
func IsEmptyOrWhitespace(list syntax.TriviaList) bool {
	for _, t := range list {
		if !t.IsWhitespace() && !t.IsEndOfLine() {
			return false
		}
	}

	return true
}

// IsEmptyOrSingleWhitespace reports whether list is empty or a single whitespace item.
func IsEmptyOrSingleWhitespace(list syntax.TriviaList) bool {
	switch len(list) {
	case 0:
		return true

	case 1:
		return list[0].IsWhitespace()

	default:
		return false
	}
}

// IsOptionalWhitespaceThenEndOfLine reports whether list is exactly one of
// [], [end of line], [whitespace] or [whitespace, end of line].
func IsOptionalWhitespaceThenEndOfLine(list syntax.TriviaList) bool {
	if len(list) > 0 && list[0].IsWhitespace() {
		list = list[1:]
	}

	switch len(list) {
	case 0:
		return true

	case 1:
		return list[0].IsEndOfLine()

	default:
		return false
	}
}

// IsOptionalWhitespaceThenOptionalCommentThenEndOfLine reports whether list consists of optional
// whitespace, an optional line comment and a mandatory end of line, in that order.
func IsOptionalWhitespaceThenOptionalCommentThenEndOfLine(list syntax.TriviaList) bool {
	if len(list) > 0 && list[0].IsWhitespace() {
		list = list[1:]
	}

	if len(list) > 0 && list[0].Kind() == syntax.TriviaLineComment {
		list = list[1:]
	}

	return len(list) == 1 && list[0].IsEndOfLine()
}

// StartsWithOptionalWhitespaceThenEndOfLine reports whether list starts with an end of line,
// optionally preceded by whitespace. Whatever follows is ignored.
func StartsWithOptionalWhitespaceThenEndOfLine(list syntax.TriviaList) bool {
	if len(list) > 0 && list[0].IsWhitespace() {
		list = list[1:]
	}

	return len(list) > 0 && list[0].IsEndOfLine()
}

// IsExteriorTriviaEmptyOrWhitespace reports whether the leading and trailing trivia of node
// consist of whitespace and line breaks only.
func IsExteriorTriviaEmptyOrWhitespace(node syntax.Node) bool {
	return IsEmptyOrWhitespace(node.LeadingTrivia()) && IsEmptyOrWhitespace(node.TrailingTrivia())
}

// IsTokenExteriorTriviaEmptyOrWhitespace reports whether the leading and trailing trivia of token
// consist of whitespace and line breaks only.
func IsTokenExteriorTriviaEmptyOrWhitespace(token syntax.Token) bool {
	return IsEmptyOrWhitespace(token.LeadingTrivia()) && IsEmptyOrWhitespace(token.TrailingTrivia())
}

// IsTokenPrecededWithNewLineAndNotFollowedWithNewLine reports whether the operator token of
// left op right starts a line and is followed by a single blank on the same line.
func IsTokenPrecededWithNewLineAndNotFollowedWithNewLine(left syntax.Node, op syntax.Token, right syntax.Node) bool {
	return endsLine(left.TrailingTrivia()) &&
		IsEmptyOrWhitespace(op.LeadingTrivia()) &&
		isSingleWhitespace(op.TrailingTrivia()) &&
		len(right.LeadingTrivia()) == 0
}

// IsTokenFollowedWithNewLineAndNotPrecededWithNewLine reports whether the operator token of
// left op right ends a line and is preceded by a single blank on the same line.
func IsTokenFollowedWithNewLineAndNotPrecededWithNewLine(left syntax.Node, op syntax.Token, right syntax.Node) bool {
	return isSingleWhitespace(left.TrailingTrivia()) &&
		len(op.LeadingTrivia()) == 0 &&
		endsLine(op.TrailingTrivia()) &&
		IsEmptyOrWhitespace(right.LeadingTrivia())
}

// endsLine is [IsOptionalWhitespaceThenEndOfLine] with a mandatory end of line.
func endsLine(list syntax.TriviaList) bool {
	return len(list) > 0 && list[len(list)-1].IsEndOfLine() && IsOptionalWhitespaceThenEndOfLine(list)
}

func isSingleWhitespace(list syntax.TriviaList) bool {
	return len(list) == 1 && list[0].IsWhitespace()
}
