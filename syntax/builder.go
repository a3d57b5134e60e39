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
	"errors"
	"fmt"

	"fortio.org/safecast"
)

var (
	// ErrNotContiguous is returned when tokens and trivia do not tile the source text.
	ErrNotContiguous = errors.New("elements are not contiguous")

	// ErrOutOfRange is returned for offsets outside the source text.
	ErrOutOfRange = errors.New("offset out of range")

	// ErrUnbalanced is returned for unmatched node starts and finishes.
	ErrUnbalanced = errors.New("unbalanced node structure")

	// ErrInvalidTrivia is returned for trivia of kind [TriviaNone].
	ErrInvalidTrivia = errors.New("invalid trivia kind")
)

// Builder constructs a [Tree] from a sequence of node, token and trivia events in source order.
//
// Errors are sticky: after the first error all further calls are ignored and [Builder.Build]
// reports that error.
type Builder struct {
	tree    *Tree
	stack   []nodeID
	err     error
	pos     int
	pending int32
	last    tokenID
}

// NewBuilder returns a [Builder] for text with an open root node of the given kind.
func NewBuilder(text string, root NodeKind) *Builder {
	t := &Tree{
		text:   text,
		tokens: make([]tokenData, 1, len(text)/4+2),
		nodes:  make([]nodeData, 1, len(text)/8+2),
	}

	b := &Builder{tree: t}

	// Token and trivia handles are 32 bit, every one of them except the end of file token covers text.
	if _, err := safecast.Conv[int32](len(text) + 1); err != nil {
		b.err = fmt.Errorf("text of length %d: %w", len(text), ErrOutOfRange)
	}

	t.nodes = append(t.nodes, nodeData{kind: root})
	b.stack = append(b.stack, 1)

	return b
}

// StartNode opens a child node of the innermost open node.
func (b *Builder) StartNode(kind NodeKind) {
	if b.err != nil {
		return
	}

	t := b.tree
	id := nodeID(len(t.nodes))
	parent := b.stack[len(b.stack)-1]

	t.nodes = append(t.nodes, nodeData{kind: kind, parent: parent, pos: b.pos})
	t.nodes[parent].children = append(t.nodes[parent].children, NodeElement(Node{t, id}))
	b.stack = append(b.stack, id)
}

// FinishNode closes the innermost open node. The root node is closed by [Builder.Build].
func (b *Builder) FinishNode() {
	if b.err != nil {
		return
	}

	if len(b.stack) <= 1 {
		b.err = fmt.Errorf("finish at offset %d: %w", b.pos, ErrUnbalanced)

		return
	}

	b.stack = b.stack[:len(b.stack)-1]
}

// Trivia appends a trivia item covering text[start:end].
func (b *Builder) Trivia(kind TriviaKind, start, end int) {
	if !b.advance(start, end) {
		return
	}

	if kind == TriviaNone {
		b.err = fmt.Errorf("trivia at offset %d: %w", start, ErrInvalidTrivia)

		return
	}

	t := b.tree
	tr := Trivia{text: t.text[start:end], span: Span{start, end}, kind: kind}

	if kind == TriviaDocComment {
		tr.structure = nodeID(len(t.nodes))
		t.nodes = append(t.nodes, nodeData{kind: DocumentationComment, pos: start, trivia: int32(len(t.trivia) + 1)})
	}

	t.trivia = append(t.trivia, tr)
}

// Token appends a token covering text[start:end] to the innermost open node.
func (b *Builder) Token(kind TokenKind, start, end int) {
	if !b.advance(start, end) {
		return
	}

	b.addToken(kind, start, end)
}

// Build closes the root node, appends the end of file token and returns the finished tree.
func (b *Builder) Build() (*Tree, error) {
	if b.err != nil {
		return nil, b.err
	}

	t := b.tree
	if b.pos != len(t.text) {
		return nil, fmt.Errorf("text ends at %d, covered up to %d: %w", len(t.text), b.pos, ErrNotContiguous)
	}

	if len(b.stack) != 1 {
		return nil, fmt.Errorf("%d open nodes at end of text: %w", len(b.stack)-1, ErrUnbalanced)
	}

	b.addToken(EndOfFile, b.pos, b.pos)

	for i := range t.trivia {
		t.trivia[i].tree = t
	}

	for i := 1; i < len(t.tokens); i++ {
		d := &t.tokens[i]
		d.full = d.span

		if d.leading.start != d.leading.end {
			d.full.Start = t.trivia[d.leading.start].span.Start
		}

		if d.trailing.start != d.trailing.end {
			d.full.End = t.trivia[d.trailing.end-1].span.End
		}
	}

	t.lines = computeLines(t.text)

	b.tree, b.err = nil, errors.New("builder already used")

	return t, nil
}

// advance checks that text[start:end] directly follows the previous element.
func (b *Builder) advance(start, end int) bool {
	if b.err != nil {
		return false
	}

	switch {
	case start != b.pos:
		b.err = fmt.Errorf("element at offset %d, expected %d: %w", start, b.pos, ErrNotContiguous)

		return false

	case end < start || end > len(b.tree.text):
		b.err = fmt.Errorf("element %d..%d in text of length %d: %w", start, end, len(b.tree.text), ErrOutOfRange)

		return false
	}

	b.pos = end

	return true
}

func (b *Builder) addToken(kind TokenKind, start, end int) {
	t := b.tree
	id := tokenID(len(t.tokens))
	parent := b.stack[len(b.stack)-1]

	t.tokens = append(t.tokens, tokenData{kind: kind, span: Span{start, end}, parent: parent})
	b.attachPending(id)

	t.nodes[parent].children = append(t.nodes[parent].children, TokenElement(Token{t, id}))

	for _, n := range b.stack {
		d := &t.nodes[n]
		if d.first == 0 {
			d.first = id
		}

		d.last = id
	}

	b.last = id
}

// attachPending distributes the trivia seen since the previous token: up to and including
// the first end of line it trails the previous token, the rest leads the new one.
func (b *Builder) attachPending(next tokenID) {
	t := b.tree
	end := int32(len(t.trivia))

	if b.last != 0 {
		split := end

		for i := b.pending; i < end; i++ {
			if t.trivia[i].kind == TriviaEndOfLine {
				split = i + 1

				break
			}
		}

		for i := b.pending; i < split; i++ {
			t.trivia[i].token = b.last
		}

		t.tokens[b.last].trailing = triviaRange{b.pending, split}
		b.pending = split
	}

	for i := b.pending; i < end; i++ {
		t.trivia[i].token = next
		t.trivia[i].leading = true
	}

	t.tokens[next].leading = triviaRange{b.pending, end}
	b.pending = end
}
