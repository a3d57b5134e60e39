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

// Package testsource provides utilities for parsing Go source code into syntax trees in tests.
//
// It handles the boilerplate of parsing a file with comments and building the
// [gosyntax.File] the trivia and layout packages operate on.
package testsource

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/layoutguard/syntax/gosyntax"
)

const (
	testpkg  = "test"
	filename = "test.go"
)

// Parse parses a complete Go source file, including comments, and builds its syntax tree.
func Parse(tb testing.TB, src string) (*token.FileSet, *gosyntax.File) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	file, err := gosyntax.Parse(fset, f, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to build syntax tree of %q: %v", src, err)
	}

	return fset, file
}

// ParseFunc parses a Go source code fragment into a syntax tree.
// The provided source `src` is automatically wrapped in a function body `func _() { ... }`
// within a package `test`. This allows testing statement-level code fragments without
// manually constructing the surrounding package and function scaffolding.
//
// Returns:
//   - *gosyntax.File: The syntax tree of the source file.
//   - *ast.FuncDecl: The function declaration wrapping the source code.
//   - inspector.Cursor: A cursor positioned at the wrapper function's Body field.
func ParseFunc(tb testing.TB, src string) (file *gosyntax.File, fn *ast.FuncDecl, body inspector.Cursor) {
	tb.Helper()

	_, file = Parse(tb, wrapSource(src))

	fn, body = firstFuncDecl(file.AST())
	if fn == nil {
		tb.Fatal("Can't find function")
	}

	return file, fn, body
}

func wrapSource(src string) string {
	const (
		header     = "package " + testpkg + "\n\nfunc _() {\n"
		suffix     = "\n}\n"
		wrapperLen = len(header) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return srcFile.String()
}

func firstFuncDecl(f *ast.File) (fn *ast.FuncDecl, body inspector.Cursor) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		fn, body = c.Node().(*ast.FuncDecl), c.ChildAt(edge.FuncDecl_Body, -1)

		return fn, body
	}

	return nil, root
}
