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

package syntax_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/layoutguard/syntax"
)

const (
	kindIdent TokenKind = iota + 1
	kindAssign
	kindNumber
)

// buildAssignment builds a tree for "x = 1 // one\n  y = 2\n".
func buildAssignment(t *testing.T) *Tree {
	t.Helper()

	const text = "x = 1 // one\n  y = 2\n"

	b := NewBuilder(text, "File")

	b.StartNode("Stmt")
	b.Token(kindIdent, 0, 1)
	b.Trivia(TriviaWhitespace, 1, 2)
	b.Token(kindAssign, 2, 3)
	b.Trivia(TriviaWhitespace, 3, 4)
	b.Token(kindNumber, 4, 5)
	b.FinishNode()
	b.Trivia(TriviaWhitespace, 5, 6)
	b.Trivia(TriviaLineComment, 6, 12)
	b.Trivia(TriviaEndOfLine, 12, 13)
	b.Trivia(TriviaWhitespace, 13, 15)
	b.StartNode("Stmt")
	b.Token(kindIdent, 15, 16)
	b.Trivia(TriviaWhitespace, 16, 17)
	b.Token(kindAssign, 17, 18)
	b.Trivia(TriviaWhitespace, 18, 19)
	b.Token(kindNumber, 19, 20)
	b.FinishNode()
	b.Trivia(TriviaEndOfLine, 20, 21)

	tree, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	return tree
}

func TestBuilderTriviaDistribution(t *testing.T) {
	t.Parallel()

	tree := buildAssignment(t)

	tests := []struct {
		name              string
		token             int
		text              string
		leading, trailing []TriviaKind
	}{
		{"first", 0, "x", nil, []TriviaKind{TriviaWhitespace}},
		{"number", 2, "1", nil, []TriviaKind{TriviaWhitespace, TriviaLineComment, TriviaEndOfLine}},
		{"second line", 3, "y", []TriviaKind{TriviaWhitespace}, []TriviaKind{TriviaWhitespace}},
		{"last", 5, "2", nil, []TriviaKind{TriviaEndOfLine}},
		{"eof", 6, "", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tok := tree.FirstToken()
			for range tt.token {
				tok = tok.Next()
			}

			if got := tok.Text(); got != tt.text {
				t.Errorf("Got token %q, want %q", got, tt.text)
			}

			if diff := cmp.Diff(tt.leading, nilIfEmpty(tok.LeadingTrivia().Kinds())); diff != "" {
				t.Errorf("Leading trivia mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.trailing, nilIfEmpty(tok.TrailingTrivia().Kinds())); diff != "" {
				t.Errorf("Trailing trivia mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func nilIfEmpty(k []TriviaKind) []TriviaKind {
	if len(k) == 0 {
		return nil
	}

	return k
}

func TestTokenNavigation(t *testing.T) {
	t.Parallel()

	tree := buildAssignment(t)

	if got, want := tree.TokenCount(), 7; got != want {
		t.Fatalf("Got %d tokens, want %d", got, want)
	}

	if prev := tree.FirstToken().Previous(); !prev.IsNone() {
		t.Errorf("Got previous %v of first token, want none", prev)
	}

	last := tree.LastToken()
	if last.Kind() != EndOfFile {
		t.Errorf("Got last token kind %d, want end of file", last.Kind())
	}

	if next := last.Next(); !next.IsNone() {
		t.Errorf("Got next %v of last token, want none", next)
	}

	var count int
	for tok := last; !tok.IsNone(); tok = tok.Previous() {
		count++
	}

	if count != tree.TokenCount() {
		t.Errorf("Got %d tokens walking backwards, want %d", count, tree.TokenCount())
	}
}

func TestNodeSpans(t *testing.T) {
	t.Parallel()

	tree := buildAssignment(t)
	root := tree.Root()

	if got, want := root.FullSpan(), (Span{Start: 0, End: 21}); got != want {
		t.Errorf("Got root full span %v, want %v", got, want)
	}

	var stmts []Node
	for c := range root.Children() {
		if c.IsNode() {
			stmts = append(stmts, c.Node())
		}
	}

	if len(stmts) != 2 {
		t.Fatalf("Got %d statements, want 2", len(stmts))
	}

	second := stmts[1]
	if got, want := second.Span(), (Span{Start: 15, End: 20}); got != want {
		t.Errorf("Got span %v, want %v", got, want)
	}

	if got, want := second.FullSpan(), (Span{Start: 13, End: 21}); got != want {
		t.Errorf("Got full span %v, want %v", got, want)
	}

	if got := second.Parent(); got != root {
		t.Errorf("Got parent %v, want root", got)
	}

	if tok := second.FindToken(14); tok.Text() != "y" {
		t.Errorf("Got token %v at offset 14, want y", tok)
	}

	if tok := second.FindToken(3); !tok.IsNone() {
		t.Errorf("Got token %v outside of node, want none", tok)
	}

	if tok := root.FindToken(21); tok.Kind() != EndOfFile {
		t.Errorf("Got token %v at end of text, want end of file", tok)
	}
}

func TestLinePosition(t *testing.T) {
	t.Parallel()

	tree := buildAssignment(t)
	ctx := context.Background()

	pos, err := tree.LinePosition(ctx, 15)
	if err != nil {
		t.Fatalf("LinePosition failed: %v", err)
	}

	if want := (LinePosition{Line: 1, Character: 2}); pos != want {
		t.Errorf("Got %+v, want %+v", pos, want)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	if _, err := tree.LinePosition(canceled, 15); !errors.Is(err, context.Canceled) {
		t.Errorf("Got error %v, want %v", err, context.Canceled)
	}

	if _, err := tree.LinePosition(ctx, 99); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Got error %v, want %v", err, ErrOutOfRange)
	}
}

func TestDocumentationCommentStructure(t *testing.T) {
	t.Parallel()

	const text = "\t// doc\n\tf"

	b := NewBuilder(text, "File")
	b.Trivia(TriviaWhitespace, 0, 1)
	b.Trivia(TriviaDocComment, 1, 7)
	b.Trivia(TriviaEndOfLine, 7, 8)
	b.Trivia(TriviaWhitespace, 8, 9)
	b.Token(kindIdent, 9, 10)

	tree, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	doc := tree.FirstToken().LeadingTrivia()[1]

	structure := doc.Structure()
	if structure.Kind() != DocumentationComment {
		t.Fatalf("Got structure %v, want documentation comment", structure)
	}

	if structure.Parent().Valid() {
		t.Errorf("Got parent %v of structured trivia, want none", structure.Parent())
	}

	if got := structure.Ascend(); got != tree.Root() {
		t.Errorf("Got ascend %v, want root", got)
	}

	list, leading, ok := structure.ParentTriviaList()
	if !ok || !leading || len(list) != 4 {
		t.Errorf("Got parent trivia list %v (leading=%t, ok=%t), want 4 leading trivia", list, leading, ok)
	}
}

func TestBuilderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(b *Builder)
		want  error
	}{
		{
			name:  "gap",
			build: func(b *Builder) { b.Token(kindIdent, 1, 2) },
			want:  ErrNotContiguous,
		},
		{
			name:  "uncovered",
			build: func(b *Builder) { b.Token(kindIdent, 0, 1) },
			want:  ErrNotContiguous,
		},
		{
			name:  "out of range",
			build: func(b *Builder) { b.Token(kindIdent, 0, 9) },
			want:  ErrOutOfRange,
		},
		{
			name:  "unbalanced finish",
			build: func(b *Builder) { b.FinishNode() },
			want:  ErrUnbalanced,
		},
		{
			name: "unbalanced start",
			build: func(b *Builder) {
				b.StartNode("Stmt")
				b.Token(kindIdent, 0, 3)
			},
			want: ErrUnbalanced,
		},
		{
			name:  "none trivia",
			build: func(b *Builder) { b.Trivia(TriviaNone, 0, 3) },
			want:  ErrInvalidTrivia,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := NewBuilder("abc", "File")
			tt.build(b)

			if _, err := b.Build(); !errors.Is(err, tt.want) {
				t.Errorf("Got error %v, want %v", err, tt.want)
			}
		})
	}
}
