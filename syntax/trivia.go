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

//go:generate go tool stringer -type=TriviaKind -trimprefix=Trivia

// TriviaKind classifies a trivia item.
type TriviaKind uint8

const (
	// TriviaNone is the kind of the "none" sentinel trivia.
	TriviaNone TriviaKind = iota

	// TriviaWhitespace is a run of blanks and tabs.
	TriviaWhitespace

	// TriviaEndOfLine is a single line break ("\n", "\r\n" or "\r").
	TriviaEndOfLine

	// TriviaLineComment is a comment running to the end of the line, excluding the line break.
	TriviaLineComment

	// TriviaBlockComment is a delimited comment, possibly spanning several lines.
	TriviaBlockComment

	// TriviaDocComment is a documentation comment. It owns a structure node of kind [DocumentationComment].
	TriviaDocComment

	// TriviaDirective is any other trivia, like compiler directives.
	TriviaDirective
)

// Trivia is a classified piece of source text between tokens.
//
// The zero value is the "none" sentinel.
type Trivia struct {
	tree      *Tree
	text      string
	span      Span
	token     tokenID
	structure nodeID
	kind      TriviaKind
	leading   bool
}

// NewTrivia creates a detached trivia item not owned by any token.
// The span of detached trivia starts at 0 and has the length of text.
func NewTrivia(kind TriviaKind, text string) Trivia {
	return Trivia{text: text, span: Span{0, len(text)}, kind: kind}
}

// Kind returns the classification of the trivia.
func (t Trivia) Kind() TriviaKind { return t.kind }

// Span returns the source range of the trivia.
func (t Trivia) Span() Span { return t.span }

// Text returns the source text of the trivia.
func (t Trivia) Text() string { return t.text }

// Len returns the length of the trivia in bytes.
func (t Trivia) Len() int { return t.span.Len() }

// IsNone reports whether t is the "none" sentinel.
func (t Trivia) IsNone() bool { return t.kind == TriviaNone }

// IsWhitespace reports whether t is whitespace.
func (t Trivia) IsWhitespace() bool { return t.kind == TriviaWhitespace }

// IsEndOfLine reports whether t is a line break.
func (t Trivia) IsEndOfLine() bool { return t.kind == TriviaEndOfLine }

// IsLeading reports whether t belongs to the leading trivia of its token.
func (t Trivia) IsLeading() bool { return t.leading }

// Token returns the token owning this trivia, or the "none" token for detached trivia.
func (t Trivia) Token() Token {
	if t.tree == nil || t.token == 0 {
		return Token{}
	}

	return Token{t.tree, t.token}
}

// Structure returns the documentation comment node of a [TriviaDocComment] item.
func (t Trivia) Structure() Node {
	if t.tree == nil || t.structure == 0 {
		return Node{}
	}

	return Node{t.tree, t.structure}
}

func (t Trivia) String() string {
	return t.kind.String() + t.span.String()
}

// TriviaList is an ordered sequence of trivia in source order.
type TriviaList []Trivia

// Span returns the range covered by the list, an empty span for an empty list.
func (l TriviaList) Span() Span {
	if len(l) == 0 {
		return Span{}
	}

	return Span{l[0].span.Start, l[len(l)-1].span.End}
}

// Last returns the last trivia of the list, or the "none" trivia.
func (l TriviaList) Last() Trivia {
	if len(l) == 0 {
		return Trivia{}
	}

	return l[len(l)-1]
}

// Kinds returns the kinds of all trivia in l.
func (l TriviaList) Kinds() []TriviaKind {
	kinds := make([]TriviaKind, len(l))
	for i, t := range l {
		kinds[i] = t.kind
	}

	return kinds
}
