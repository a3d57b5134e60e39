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

package astutil

import (
	"go/ast"
	"regexp"
	"strings"

	"fillmore-labs.com/layoutguard/syntax"
	"fillmore-labs.com/layoutguard/syntax/gosyntax"
)

// layoutguard is the name of the linter.
const layoutguard = "layoutguard"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *gosyntax.File
	generated bool
	nolint    bool
}

// NewCurrentFile creates a new [CurrentFile] from a syntax tree.
func NewCurrentFile(file *gosyntax.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	f := file.AST()

	nolint := f.Doc != nil && CommentHasNoLint(f.Doc.List[len(f.Doc.List)-1].Text)

	return CurrentFile{file: file, generated: ast.IsGenerated(f), nolint: nolint}
}

// Valid returns true if the [CurrentFile] holds a syntax tree.
func (c CurrentFile) Valid() bool {
	return c.file != nil
}

// File returns the syntax tree of the file.
func (c CurrentFile) File() *gosyntax.File {
	return c.file
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLintFile reports whether the package doc comment of the file suppresses the linter.
func (c CurrentFile) NoLintFile() bool {
	return c.nolint
}

// NoLintComment checks if the line containing offset ends with a //nolint:layoutguard comment.
func (c CurrentFile) NoLintComment(offset int) bool {
	if c.file == nil {
		return false
	}

	for token := c.file.Tree().FindToken(offset); !token.IsNone(); token = token.Next() {
		for _, list := range [...]syntax.TriviaList{token.LeadingTrivia(), token.TrailingTrivia()} {
			for _, t := range list {
				if t.Span().End <= offset {
					continue
				}

				switch t.Kind() {
				case syntax.TriviaLineComment, syntax.TriviaDocComment:
					if CommentHasNoLint(t.Text()) {
						return true
					}

				case syntax.TriviaEndOfLine:
					return false
				}
			}
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment text contains a `//nolint:layoutguard` directive.
func CommentHasNoLint(text string) bool {
	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == layoutguard || l == "all" {
			return true
		}
	}

	return false
}
