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

import "iter"

// Node is a handle to a node of a [Tree].
//
// The zero value is not a valid node.
type Node struct {
	tree *Tree
	id   nodeID
}

func (n Node) data() *nodeData { return &n.tree.nodes[n.id] }

// Valid reports whether n refers to a node.
func (n Node) Valid() bool { return n.tree != nil && n.id != 0 }

// Tree returns the tree containing the node, nil for the zero node.
func (n Node) Tree() *Tree { return n.tree }

// Kind returns the host defined kind of the node.
func (n Node) Kind() NodeKind {
	if !n.Valid() {
		return ""
	}

	return n.data().kind
}

// IsStructuredTrivia reports whether n is the structure of a documentation comment.
func (n Node) IsStructuredTrivia() bool {
	return n.Valid() && n.data().trivia != 0
}

// Parent returns the parent node. The root and structured trivia have no parent.
func (n Node) Parent() Node {
	if !n.Valid() {
		return Node{}
	}

	if p := n.data().parent; p != 0 {
		return Node{n.tree, p}
	}

	return Node{}
}

// Ascend returns the parent node, ascending out of structured trivia
// to the node owning the token that carries the trivia.
func (n Node) Ascend() Node {
	if tr, ok := n.ParentTrivia(); ok {
		return tr.Token().Parent()
	}

	return n.Parent()
}

// ParentTrivia returns the trivia carrying a structure node.
func (n Node) ParentTrivia() (Trivia, bool) {
	if !n.IsStructuredTrivia() {
		return Trivia{}, false
	}

	return n.tree.trivia[n.data().trivia-1], true
}

// ParentTriviaList returns the trivia list of the token containing a structure node.
// The result reports whether that list is the token's leading trivia.
func (n Node) ParentTriviaList() (list TriviaList, leading, ok bool) {
	tr, ok := n.ParentTrivia()
	if !ok {
		return nil, false, false
	}

	tok := tr.Token()
	if tr.IsLeading() {
		return tok.LeadingTrivia(), true, true
	}

	return tok.TrailingTrivia(), false, true
}

// Span returns the range of the node, excluding leading and trailing trivia.
func (n Node) Span() Span {
	if !n.Valid() {
		return Span{}
	}

	d := n.data()
	if d.trivia != 0 {
		return n.tree.trivia[d.trivia-1].span
	}

	if d.first == 0 {
		return Span{d.pos, d.pos}
	}

	return Span{n.tree.tokens[d.first].span.Start, n.tree.tokens[d.last].span.End}
}

// FullSpan returns the range of the node including leading and trailing trivia.
func (n Node) FullSpan() Span {
	if !n.Valid() {
		return Span{}
	}

	d := n.data()
	if d.trivia != 0 {
		return n.tree.trivia[d.trivia-1].span
	}

	if d.first == 0 {
		return Span{d.pos, d.pos}
	}

	return Span{n.tree.tokens[d.first].full.Start, n.tree.tokens[d.last].full.End}
}

// FirstToken returns the first token of the node, or the "none" token.
func (n Node) FirstToken() Token {
	if !n.Valid() || n.data().first == 0 {
		return Token{}
	}

	return Token{n.tree, n.data().first}
}

// LastToken returns the last token of the node, or the "none" token.
func (n Node) LastToken() Token {
	if !n.Valid() || n.data().last == 0 {
		return Token{}
	}

	return Token{n.tree, n.data().last}
}

// LeadingTrivia returns the leading trivia of the first token.
func (n Node) LeadingTrivia() TriviaList { return n.FirstToken().LeadingTrivia() }

// TrailingTrivia returns the trailing trivia of the last token.
func (n Node) TrailingTrivia() TriviaList { return n.LastToken().TrailingTrivia() }

// Children yields the child nodes and tokens of n in source order.
func (n Node) Children() iter.Seq[NodeOrToken] {
	return func(yield func(NodeOrToken) bool) {
		if !n.Valid() {
			return
		}

		for _, c := range n.data().children {
			if !yield(c) {
				return
			}
		}
	}
}

// Descendants yields the nodes below n in preorder, excluding n and structured trivia.
func (n Node) Descendants() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		n.descend(yield)
	}
}

func (n Node) descend(yield func(Node) bool) bool {
	for c := range n.Children() {
		if !c.IsNode() {
			continue
		}

		if !yield(c.node) || !c.node.descend(yield) {
			return false
		}
	}

	return true
}

// FindToken returns the token of n whose full span contains offset.
// The end offset of the root node yields the end of file token.
// Offsets outside the full span of n yield the "none" token.
func (n Node) FindToken(offset int) Token {
	if !n.Valid() || n.IsStructuredTrivia() {
		return Token{}
	}

	if full := n.FullSpan(); !full.Contains(offset) && (n.id != 1 || offset != full.End) {
		return Token{}
	}

	return n.tree.FindToken(offset)
}

// Contains reports whether other is n or one of its descendants.
func (n Node) Contains(other Node) bool {
	for ; other.Valid(); other = other.Ascend() {
		if other == n {
			return true
		}
	}

	return false
}

func (n Node) String() string {
	if !n.Valid() {
		return "<invalid>"
	}

	return string(n.Kind()) + n.Span().String()
}

// NodeOrToken holds either a [Node] or a [Token].
//
// The zero value holds neither.
type NodeOrToken struct {
	node  Node
	token Token
}

// NodeElement wraps a node.
func NodeElement(n Node) NodeOrToken { return NodeOrToken{node: n} }

// TokenElement wraps a token.
func TokenElement(t Token) NodeOrToken { return NodeOrToken{token: t} }

// IsNode reports whether e holds a node.
func (e NodeOrToken) IsNode() bool { return e.node.Valid() }

// IsToken reports whether e holds a token.
func (e NodeOrToken) IsToken() bool { return !e.token.IsNone() }

// Node returns the node held by e.
func (e NodeOrToken) Node() Node { return e.node }

// Token returns the token held by e.
func (e NodeOrToken) Token() Token { return e.token }

// Span returns the span of the held element.
func (e NodeOrToken) Span() Span {
	if e.IsNode() {
		return e.node.Span()
	}

	return e.token.Span()
}
