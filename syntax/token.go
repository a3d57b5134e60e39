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

package syntax

import "strconv"

// Token is a handle to a token of a [Tree].
//
// The zero value is the "none" token.
type Token struct {
	tree *Tree
	id   tokenID
}

func (t Token) data() *tokenData { return &t.tree.tokens[t.id] }

// IsNone reports whether t is the "none" token.
func (t Token) IsNone() bool { return t.tree == nil || t.id == 0 }

// Tree returns the tree containing the token.
func (t Token) Tree() *Tree { return t.tree }

// Kind returns the host defined kind of the token.
func (t Token) Kind() TokenKind {
	if t.IsNone() {
		return 0
	}

	return t.data().kind
}

// Span returns the range of the token text, excluding trivia.
func (t Token) Span() Span {
	if t.IsNone() {
		return Span{}
	}

	return t.data().span
}

// FullSpan returns the range of the token including its leading and trailing trivia.
func (t Token) FullSpan() Span {
	if t.IsNone() {
		return Span{}
	}

	return t.data().full
}

// Text returns the token text.
func (t Token) Text() string {
	if t.IsNone() {
		return ""
	}

	s := t.data().span

	return t.tree.text[s.Start:s.End]
}

// LeadingTrivia returns the trivia preceding the token.
func (t Token) LeadingTrivia() TriviaList {
	if t.IsNone() {
		return nil
	}

	return t.tree.triviaIn(t.data().leading)
}

// TrailingTrivia returns the trivia following the token up to and including the end of line.
func (t Token) TrailingTrivia() TriviaList {
	if t.IsNone() {
		return nil
	}

	return t.tree.triviaIn(t.data().trailing)
}

// Next returns the following token in tree order, or the "none" token after the last one.
func (t Token) Next() Token {
	if t.IsNone() || int(t.id) >= len(t.tree.tokens)-1 {
		return Token{}
	}

	return Token{t.tree, t.id + 1}
}

// Previous returns the preceding token in tree order, or the "none" token before the first one.
func (t Token) Previous() Token {
	if t.IsNone() || t.id <= 1 {
		return Token{}
	}

	return Token{t.tree, t.id - 1}
}

// Parent returns the node owning the token.
func (t Token) Parent() Node {
	if t.IsNone() {
		return Node{}
	}

	return Node{t.tree, t.data().parent}
}

func (t Token) String() string {
	if t.IsNone() {
		return "<none>"
	}

	return strconv.Quote(t.Text()) + t.Span().String()
}

func (t *Tree) triviaIn(r triviaRange) TriviaList {
	if r.start == r.end {
		return nil
	}

	return TriviaList(t.trivia[r.start:r.end:r.end])
}
