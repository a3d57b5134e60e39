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

import (
	"context"
	"sort"
)

type (
	tokenID int32
	nodeID  int32
)

// TokenKind is a host defined token classification.
type TokenKind int32

// EndOfFile is the kind of the zero-width token closing every tree.
const EndOfFile TokenKind = -1

// NodeKind is a host defined node classification.
type NodeKind string

// DocumentationComment is the kind of structure nodes owned by [TriviaDocComment] trivia.
const DocumentationComment NodeKind = "DocumentationComment"

type triviaRange struct{ start, end int32 }

type tokenData struct {
	span              Span
	full              Span
	leading, trailing triviaRange
	parent            nodeID
	kind              TokenKind
}

type nodeData struct {
	kind        NodeKind
	children    []NodeOrToken
	parent      nodeID
	first, last tokenID
	pos         int
	trivia      int32 // 1-based index of the owning trivia for structure nodes
}

// Tree is an immutable syntax tree over a source text.
type Tree struct {
	text   string
	tokens []tokenData // index 0 is unused
	nodes  []nodeData  // index 0 is unused
	trivia []Trivia
	lines  []int // start offsets of all lines
}

// Text returns the source text of the tree.
func (t *Tree) Text() string { return t.text }

// Root returns the root node.
func (t *Tree) Root() Node { return Node{t, 1} }

// TokenCount returns the number of tokens, including the end of file token.
func (t *Tree) TokenCount() int { return len(t.tokens) - 1 }

// FirstToken returns the first token of the tree.
func (t *Tree) FirstToken() Token { return Token{t, 1} }

// LastToken returns the end of file token.
func (t *Tree) LastToken() Token { return Token{t, tokenID(len(t.tokens) - 1)} }

// FindToken returns the token whose full span contains offset.
// An offset at the end of the text yields the end of file token,
// offsets outside the text yield the "none" token.
func (t *Tree) FindToken(offset int) Token {
	if offset < 0 || offset > len(t.text) {
		return Token{}
	}

	n := len(t.tokens) - 1
	// first token starting after offset
	i := sort.Search(n, func(i int) bool { return t.tokens[i+1].full.Start > offset })
	if i == 0 {
		return Token{}
	}

	return Token{t, tokenID(i)}
}

// LinePosition is a zero-based line and byte column.
type LinePosition struct {
	Line, Character int
}

// LinePosition returns the line and column of offset.
// Cancellation of ctx is checked before the lookup.
func (t *Tree) LinePosition(ctx context.Context, offset int) (LinePosition, error) {
	if err := ctx.Err(); err != nil {
		return LinePosition{}, err
	}

	if offset < 0 || offset > len(t.text) {
		return LinePosition{}, ErrOutOfRange
	}

	line := sort.SearchInts(t.lines, offset+1) - 1

	return LinePosition{Line: line, Character: offset - t.lines[line]}, nil
}

// LineStart returns the offset of the start of the line containing offset.
func (t *Tree) LineStart(ctx context.Context, offset int) (int, error) {
	pos, err := t.LinePosition(ctx, offset)
	if err != nil {
		return 0, err
	}

	return offset - pos.Character, nil
}

// LineCount returns the number of lines in the text.
func (t *Tree) LineCount() int { return len(t.lines) }

func computeLines(text string) []int {
	lines := []int{0}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}

			lines = append(lines, i+1)

		case '\n':
			lines = append(lines, i+1)
		}
	}

	return lines
}
