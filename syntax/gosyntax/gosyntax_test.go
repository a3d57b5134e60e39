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

package gosyntax_test

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/layoutguard/internal/testsource"
	"fillmore-labs.com/layoutguard/syntax"
	. "fillmore-labs.com/layoutguard/syntax/gosyntax"
)

const src = `// Package p is a test.
package p

//go:noinline

// F adds.
func F(a int, /* b */ b int) int { // sum
	return a + b
}
`

func TestParseTokens(t *testing.T) {
	t.Parallel()

	_, file := testsource.Parse(t, src)
	tree := file.Tree()

	if tree.Text() != src {
		t.Fatalf("Got tree text %q, want source", tree.Text())
	}

	var (
		texts []string
		pos   int
	)

	for tok := tree.FirstToken(); !tok.IsNone(); tok = tok.Next() {
		if full := tok.FullSpan(); full.Start != pos {
			t.Errorf("Token %v starts at %d, want %d", tok, full.Start, pos)
		}

		pos = tok.FullSpan().End

		if tok.Kind() != syntax.EndOfFile {
			texts = append(texts, tok.Text())
		}
	}

	if pos != len(src) {
		t.Errorf("Tokens cover %d bytes, want %d", pos, len(src))
	}

	want := []string{
		"package", "p", "func", "F", "(", "a", "int", ",", "b", "int", ")", "int", "{",
		"return", "a", "+", "b", "}",
	}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Errorf("Tokens mismatch (-want +got):\n%s", diff)
	}

	if got := Kind(tree.FirstToken()); got != token.PACKAGE {
		t.Errorf("Got first token %s, want %s", got, token.PACKAGE)
	}

	if got := Kind(tree.LastToken()); got != token.EOF {
		t.Errorf("Got last token %s, want %s", got, token.EOF)
	}
}

func TestParseTrivia(t *testing.T) {
	t.Parallel()

	_, file := testsource.Parse(t, src)

	const (
		ws  = syntax.TriviaWhitespace
		eol = syntax.TriviaEndOfLine
	)

	tests := []struct {
		name    string
		token   string
		nth     int
		leading bool
		want    []syntax.TriviaKind
	}{
		{"package doc", "package", 0, true, []syntax.TriviaKind{syntax.TriviaDocComment, eol}},
		{"package name", "p", 0, false, []syntax.TriviaKind{eol}},
		{"directive and doc", "func", 0, true, []syntax.TriviaKind{eol, syntax.TriviaDirective, eol, eol, syntax.TriviaDocComment, eol}},
		{"block comment", ",", 0, false, []syntax.TriviaKind{ws, syntax.TriviaBlockComment, ws}},
		{"line comment", "{", 0, false, []syntax.TriviaKind{ws, syntax.TriviaLineComment, eol}},
		{"indentation", "return", 0, true, []syntax.TriviaKind{ws}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tok := findToken(t, file.Tree(), tt.token, tt.nth)

			list := tok.TrailingTrivia()
			if tt.leading {
				list = tok.LeadingTrivia()
			}

			if diff := cmp.Diff(tt.want, list.Kinds()); diff != "" {
				t.Errorf("Trivia mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseNodes(t *testing.T) {
	t.Parallel()

	_, file := testsource.Parse(t, src)

	var (
		fn  *ast.FuncDecl
		bin *ast.BinaryExpr
	)

	ast.Inspect(file.AST(), func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncDecl:
			fn = n
		case *ast.BinaryExpr:
			bin = n
		}

		return true
	})

	node := file.Node(fn)
	if node.Kind() != "FuncDecl" {
		t.Fatalf("Got node %v, want FuncDecl", node)
	}

	if got, want := node.Span(), (syntax.Span{Start: file.Offset(fn.Pos()), End: file.Offset(fn.End())}); got != want {
		t.Errorf("Got span %v, want %v", got, want)
	}

	if got := file.Node(file.AST()); got != file.Tree().Root() {
		t.Errorf("Got file node %v, want root", got)
	}

	expr := file.Node(bin)
	if got := expr.Parent().Kind(); got != "ReturnStmt" {
		t.Errorf("Got parent %s of binary expression, want ReturnStmt", got)
	}

	if !node.Contains(expr) {
		t.Errorf("Expected %v to contain %v", node, expr)
	}

	if got := file.Token(bin.OpPos); got.Text() != "+" {
		t.Errorf("Got token %v at operator position, want +", got)
	}

	doc := node.FirstToken().LeadingTrivia()[4]

	structure := doc.Structure()
	if structure.Kind() != syntax.DocumentationComment {
		t.Fatalf("Got structure %v of doc comment, want documentation comment", structure)
	}

	if got := structure.Ascend(); !node.Contains(got) {
		t.Errorf("Got ascend %v, want node inside function declaration", got)
	}
}

func TestParseCarriageReturns(t *testing.T) {
	t.Parallel()

	const src = "package p\r\n\r\n// c\r\nvar x = `a\r\nb`\r\n"

	_, file := testsource.Parse(t, src)

	v := findToken(t, file.Tree(), "var", 0)

	leading := v.LeadingTrivia()
	if len(leading) != 3 {
		t.Fatalf("Got leading trivia %v, want 3 items", leading)
	}

	if got := leading[1].Text(); got != "// c" {
		t.Errorf("Got comment %q, want %q", got, "// c")
	}

	if got := leading[2].Text(); got != "\r\n" {
		t.Errorf("Got end of line %q, want %q", got, "\r\n")
	}

	raw := v.Next().Next().Next()
	if got, want := raw.Text(), "`a\r\nb`"; got != want {
		t.Errorf("Got raw string %q, want %q", got, want)
	}
}

func TestParseMismatch(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "p.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if _, err := Parse(fset, f, []byte(src[:len(src)-1])); !errors.Is(err, ErrFileMismatch) {
		t.Errorf("Got error %v, want %v", err, ErrFileMismatch)
	}
}

func findToken(tb testing.TB, tree *syntax.Tree, text string, nth int) syntax.Token {
	tb.Helper()

	for tok := tree.FirstToken(); !tok.IsNone(); tok = tok.Next() {
		if tok.Text() != text {
			continue
		}

		if nth == 0 {
			return tok
		}

		nth--
	}

	tb.Fatalf("Token %q not found", text)

	return syntax.Token{}
}
