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

// Package gosyntax builds a [syntax.Tree] from Go source.
//
// Tokens come from [go/scanner] with automatically inserted semicolons dropped, trivia from the
// comments and the gaps between tokens, and nodes from the [ast.File] nested by source range.
// Comments of documentation comment groups become [syntax.TriviaDocComment], compiler directives
// [syntax.TriviaDirective].
package gosyntax

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/ast"
	"go/scanner"
	"go/token"
	"slices"
	"strings"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/layoutguard/syntax"
)

// ErrFileMismatch is returned when the source does not belong to the parsed file.
var ErrFileMismatch = errors.New("source does not match file")

// File is a Go source file together with its [syntax.Tree].
type File struct {
	tree   *syntax.Tree
	file   *ast.File
	handle *token.File
	nodes  map[ast.Node]syntax.Node
}

// Parse builds the syntax tree of file, which must have been parsed from src with
// comments included. fset is only read.
func Parse(fset *token.FileSet, file *ast.File, src []byte) (*File, error) {
	handle := fset.File(file.FileStart)
	if handle == nil {
		return nil, fmt.Errorf("file %s without position information: %w", file.Name.Name, ErrFileMismatch)
	}

	if handle.Size() != len(src) {
		return nil, fmt.Errorf("file %s has size %d, source %d: %w", handle.Name(), handle.Size(), len(src), ErrFileMismatch)
	}

	root := inspector.New([]*ast.File{file}).Root()

	elements, err := scan(handle.Name(), src, docComments(root, handle))
	if err != nil {
		return nil, err
	}

	nodes := spans(root, handle)

	b := syntax.NewBuilder(string(src), "File")

	type open struct{ end, index int }

	var (
		stack   []open
		next    int
		started []int
	)

	for _, e := range elements {
		if !e.token {
			b.Trivia(e.trivia, e.start, e.end)

			continue
		}

		for len(stack) > 0 && stack[len(stack)-1].end <= e.start {
			stack = stack[:len(stack)-1]
			b.FinishNode()
		}

		for ; next < len(nodes) && nodes[next].start <= e.start; next++ {
			n := nodes[next]
			if n.end <= e.start || len(stack) > 0 && n.end > stack[len(stack)-1].end {
				continue // no tokens left or not properly nested
			}

			stack = append(stack, open{n.end, next})
			started = append(started, next)
			b.StartNode(n.kind)
		}

		b.Token(syntax.TokenKind(e.kind), e.start, e.end)
	}

	for range stack {
		b.FinishNode()
	}

	tree, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("building tree of %s: %w", handle.Name(), err)
	}

	f := &File{
		tree:   tree,
		file:   file,
		handle: handle,
		nodes:  make(map[ast.Node]syntax.Node, len(started)+1),
	}

	f.nodes[file] = tree.Root()

	// Nodes were started in preorder, which is the order of a preorder walk over the tree.
	i := 0
	for n := range tree.Root().Descendants() {
		if i >= len(started) {
			break
		}

		f.nodes[nodes[started[i]].node] = n
		i++
	}

	return f, nil
}

// Tree returns the syntax tree of the file.
func (f *File) Tree() *syntax.Tree { return f.tree }

// AST returns the parsed file.
func (f *File) AST() *ast.File { return f.file }

// Node returns the tree node corresponding to n, or the zero node when n has no tokens.
func (f *File) Node(n ast.Node) syntax.Node { return f.nodes[n] }

// Token returns the token whose full span contains pos.
func (f *File) Token(pos token.Pos) syntax.Token {
	offset := f.Offset(pos)
	if offset < 0 {
		return syntax.Token{}
	}

	return f.tree.FindToken(offset)
}

// Pos converts a byte offset into a position of the file set the file was parsed with.
func (f *File) Pos(offset int) token.Pos {
	if offset < 0 || offset > f.handle.Size() {
		return token.NoPos
	}

	return token.Pos(f.handle.Base() + offset)
}

// Offset converts a position into a byte offset, -1 for positions outside the file.
func (f *File) Offset(pos token.Pos) int {
	offset := int(pos) - f.handle.Base()
	if !pos.IsValid() || offset < 0 || offset > f.handle.Size() {
		return -1
	}

	return offset
}

// Range returns the positions of a span.
func (f *File) Range(s syntax.Span) (pos, end token.Pos) {
	return f.Pos(s.Start), f.Pos(s.End)
}

// Kind returns the Go token of t.
func Kind(t syntax.Token) token.Token {
	if t.Kind() == syntax.EndOfFile {
		return token.EOF
	}

	return token.Token(t.Kind())
}

type element struct {
	start, end int
	kind       token.Token
	trivia     syntax.TriviaKind
	token      bool
}

// scan splits src into tokens and trivia.
func scan(filename string, src []byte, docs map[int]bool) ([]element, error) {
	var (
		s    scanner.Scanner
		errs scanner.ErrorList
	)

	file := token.NewFileSet().AddFile(filename, -1, len(src))
	s.Init(file, src, errs.Add, scanner.ScanComments)

	elements := make([]element, 0, len(src)/3)
	pos := 0

	for {
		p, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		start := file.Offset(p)
		end := tokenEnd(src, start, tok, lit)

		elements = gap(elements, src, pos, start)
		pos = end

		if tok != token.COMMENT {
			elements = append(elements, element{start: start, end: end, kind: tok, token: true})

			continue
		}

		elements = append(elements, element{start: start, end: end, trivia: commentKind(src[start:end], docs[start])})
	}

	if err := errs.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", filename, err)
	}

	return gap(elements, src, pos, len(src)), nil
}

// tokenEnd computes the end offset from the source, since the scanner strips carriage returns
// from comments and raw strings.
func tokenEnd(src []byte, start int, tok token.Token, lit string) int {
	switch {
	case tok == token.COMMENT && bytes.HasPrefix(src[start:], []byte("//")):
		end := bytes.IndexByte(src[start:], '\n')
		if end < 0 {
			return len(src)
		}

		end += start
		if src[end-1] == '\r' {
			end--
		}

		return end

	case tok == token.COMMENT:
		if end := bytes.Index(src[start+2:], []byte("*/")); end >= 0 {
			return start + 2 + end + 2
		}

		return len(src)

	case tok == token.STRING && src[start] == '`':
		if end := bytes.IndexByte(src[start+1:], '`'); end >= 0 {
			return start + 1 + end + 1
		}

		return len(src)

	case lit != "":
		return start + len(lit)

	default:
		return start + len(tok.String())
	}
}

// gap appends the whitespace and line breaks of src[start:end].
func gap(elements []element, src []byte, start, end int) []element {
	for i := start; i < end; {
		j := i

		switch src[i] {
		case '\r':
			j++
			if j < end && src[j] == '\n' {
				j++
			}

			elements = append(elements, element{start: i, end: j, trivia: syntax.TriviaEndOfLine})

		case '\n':
			j++
			elements = append(elements, element{start: i, end: j, trivia: syntax.TriviaEndOfLine})

		default:
			for j < end && src[j] != '\r' && src[j] != '\n' {
				j++
			}

			elements = append(elements, element{start: i, end: j, trivia: syntax.TriviaWhitespace})
		}

		i = j
	}

	return elements
}

func commentKind(text []byte, doc bool) syntax.TriviaKind {
	switch {
	case bytes.HasPrefix(text, []byte("//go:")),
		bytes.HasPrefix(text, []byte("//line ")),
		bytes.HasPrefix(text, []byte("/*line ")):
		return syntax.TriviaDirective

	case doc:
		return syntax.TriviaDocComment

	case bytes.HasPrefix(text, []byte("/*")):
		return syntax.TriviaBlockComment

	default:
		return syntax.TriviaLineComment
	}
}

// docComments returns the offsets of all comments in documentation comment groups.
func docComments(root inspector.Cursor, handle *token.File) map[int]bool {
	docs := make(map[int]bool)

	for c := range root.Preorder((*ast.CommentGroup)(nil)) {
		switch e, _ := c.ParentEdge(); e {
		case edge.File_Doc, edge.GenDecl_Doc, edge.FuncDecl_Doc, edge.Field_Doc,
			edge.ImportSpec_Doc, edge.TypeSpec_Doc, edge.ValueSpec_Doc:
			for _, comment := range c.Node().(*ast.CommentGroup).List {
				docs[int(comment.Slash)-handle.Base()] = true
			}
		}
	}

	return docs
}

type nodeSpan struct {
	node       ast.Node
	kind       syntax.NodeKind
	start, end int
}

// spans lists all nodes below the file with a non-empty range, ordered by start offset with
// enclosing nodes first. Ties keep the preorder of the syntax tree.
func spans(root inspector.Cursor, handle *token.File) []nodeSpan {
	var nodes []nodeSpan

	for c := range root.Preorder() {
		n := c.Node()
		switch n.(type) {
		case *ast.File, *ast.CommentGroup, *ast.Comment:
			continue
		}

		if !n.Pos().IsValid() || n.End() <= n.Pos() {
			continue
		}

		start, end := int(n.Pos())-handle.Base(), int(n.End())-handle.Base()
		if start < 0 || end > handle.Size() {
			continue
		}

		kind := strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
		nodes = append(nodes, nodeSpan{node: n, kind: syntax.NodeKind(kind), start: start, end: end})
	}

	// [ast.FuncDecl] visits its name before the function type that encloses it
	slices.SortStableFunc(nodes, func(a, b nodeSpan) int {
		if c := cmp.Compare(a.start, b.start); c != 0 {
			return c
		}

		return cmp.Compare(b.end, a.end)
	})

	return nodes
}
