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

package trivia

import (
	"errors"
	"fmt"

	"fillmore-labs.com/layoutguard/syntax"
)

// ErrInvalidArgument is returned for arguments holding neither a node nor a token.
var ErrInvalidArgument = errors.New("invalid argument")

// NewLine returns a detached end of line trivia "\n".
func NewLine() syntax.Trivia { return syntax.NewTrivia(syntax.TriviaEndOfLine, "\n") }

// EmptyWhitespace returns a detached whitespace trivia of length zero.
func EmptyWhitespace() syntax.Trivia { return syntax.NewTrivia(syntax.TriviaWhitespace, "") }

// FindEndOfLine returns the end of line trivia nearest to token.
//
// The leading and then trailing trivia of token and every following token are searched first,
// then those of the preceding tokens, walking backwards. When the tree contains no line break
// the result is the "none" trivia.
func FindEndOfLine(token syntax.Token) syntax.Trivia {
	for t := token; !t.IsNone(); t = t.Next() {
		if eol, ok := endOfLine(t); ok {
			return eol
		}
	}

	for t := token.Previous(); !t.IsNone(); t = t.Previous() {
		if eol, ok := endOfLine(t); ok {
			return eol
		}
	}

	return syntax.Trivia{}
}

func endOfLine(t syntax.Token) (syntax.Trivia, bool) {
	for _, tr := range t.LeadingTrivia() {
		if tr.IsEndOfLine() {
			return tr, true
		}
	}

	for _, tr := range t.TrailingTrivia() {
		if tr.IsEndOfLine() {
			return tr, true
		}
	}

	return syntax.Trivia{}, false
}

// FindNodeEndOfLine is [FindEndOfLine] starting at the first token of node.
func FindNodeEndOfLine(node syntax.Node) syntax.Trivia {
	return FindEndOfLine(node.FirstToken())
}

// FindEndOfLineOf is [FindEndOfLine] for either a node or a token.
func FindEndOfLineOf(e syntax.NodeOrToken) (syntax.Trivia, error) {
	switch {
	case e.IsNode():
		return FindNodeEndOfLine(e.Node()), nil

	case e.IsToken():
		return FindEndOfLine(e.Token()), nil

	default:
		return syntax.Trivia{}, fmt.Errorf("find end of line: neither node nor token: %w", ErrInvalidArgument)
	}
}

// GetEndOfLine is [FindEndOfLine], substituting [NewLine] when no line break is found.
func GetEndOfLine(token syntax.Token) syntax.Trivia {
	if eol := FindEndOfLine(token); eol.IsEndOfLine() {
		return eol
	}

	return NewLine()
}

// GetNodeEndOfLine is [GetEndOfLine] starting at the first token of node.
func GetNodeEndOfLine(node syntax.Node) syntax.Trivia {
	return GetEndOfLine(node.FirstToken())
}

// GetEndOfLineOf is [GetEndOfLine] for either a node or a token.
func GetEndOfLineOf(e syntax.NodeOrToken) (syntax.Trivia, error) {
	switch {
	case e.IsNode():
		return GetNodeEndOfLine(e.Node()), nil

	case e.IsToken():
		return GetEndOfLine(e.Token()), nil

	default:
		return syntax.Trivia{}, fmt.Errorf("get end of line: neither node nor token: %w", ErrInvalidArgument)
	}
}
