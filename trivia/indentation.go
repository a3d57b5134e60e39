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
	"context"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/layoutguard/syntax"
)

// IndentationAnalysis is the indentation of a line and of the nearest preceding line
// indented differently.
//
// Both indentations are whitespace trivia, possibly [EmptyWhitespace], never "none".
type IndentationAnalysis struct {
	// Node is the innermost node containing both lines.
	Node syntax.Node

	// Indentation is the indentation of the analyzed line.
	Indentation syntax.Trivia

	// PreviousIndentation is the indentation of the enclosing line.
	PreviousIndentation syntax.Trivia
}

// IndentSize returns the length of the indentation in bytes.
func (a IndentationAnalysis) IndentSize() int { return a.Indentation.Len() }

// PreviousIndentSize returns the length of the previous indentation in bytes.
func (a IndentationAnalysis) PreviousIndentSize() int { return a.PreviousIndentation.Len() }

// Deeper reports whether the analyzed line is indented further than the enclosing line.
func (a IndentationAnalysis) Deeper() bool { return a.IndentSize() > a.PreviousIndentSize() }

// SingleIndentation returns one level of indentation: the difference to the enclosing line
// when the analyzed line is indented deeper, fallback otherwise.
func (a IndentationAnalysis) SingleIndentation(fallback string) string {
	if !a.Deeper() {
		return fallback
	}

	return a.Indentation.Text()[a.PreviousIndentSize():]
}

// IncreasedIndentation returns the indentation one level deeper than the analyzed line.
func (a IndentationAnalysis) IncreasedIndentation(fallback string) string {
	return a.Indentation.Text() + a.SingleIndentation(fallback)
}

// LogValue implements [slog.LogValuer].
func (a IndentationAnalysis) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("node", a.Node.String()),
		slog.Int("indent", a.IndentSize()),
		slog.Int("previous", a.PreviousIndentSize()),
	)
}

// AnalyzeIndentation determines the indentation of the line containing node and walks
// backwards line by line until a line with an indentation of different length is found.
//
// Cancellation of ctx is checked on every line lookup.
func AnalyzeIndentation(ctx context.Context, node syntax.Node) (IndentationAnalysis, error) {
	tree := node.Tree()
	if tree == nil {
		return IndentationAnalysis{Node: node, Indentation: EmptyWhitespace(), PreviousIndentation: EmptyWhitespace()}, nil
	}

	defer trace.StartRegion(ctx, "AnalyzeIndentation").End()

	offset, err := tree.LineStart(ctx, node.Span().Start)
	if err != nil {
		return IndentationAnalysis{}, err
	}

	indentation := determineIndentation(node, offset)

	for offset > 0 {
		offset--

		for node.Valid() && !node.FullSpan().Contains(offset) {
			node = node.Ascend()
		}

		if !node.Valid() {
			break
		}

		token := node.FindToken(offset)
		if token.IsNone() {
			break
		}

		lineStart, err := tree.LineStart(ctx, token.Span().Start)
		if err != nil {
			return IndentationAnalysis{}, err
		}

		previous := determineIndentation(node, lineStart)
		if previous.Len() != indentation.Len() {
			return IndentationAnalysis{Node: node, Indentation: indentation, PreviousIndentation: previous}, nil
		}

		// every offset between lineStart and offset resolves to the same line
		if lineStart < offset {
			offset = lineStart
		}
	}

	return IndentationAnalysis{Node: node, Indentation: indentation, PreviousIndentation: EmptyWhitespace()}, nil
}

// DetermineIndentation returns the indentation of the line containing node.
func DetermineIndentation(ctx context.Context, node syntax.Node) (syntax.Trivia, error) {
	tree := node.Tree()
	if tree == nil {
		return EmptyWhitespace(), nil
	}

	lineStart, err := tree.LineStart(ctx, node.Span().Start)
	if err != nil {
		return syntax.Trivia{}, err
	}

	return determineIndentation(node, lineStart), nil
}

// determineIndentation returns the whitespace trivia starting at lineStart, narrowing node to
// the innermost ancestor containing lineStart first.
func determineIndentation(node syntax.Node, lineStart int) syntax.Trivia {
	for node.Valid() && !node.FullSpan().Contains(lineStart) {
		node = node.Ascend()
	}

	if !node.Valid() {
		return EmptyWhitespace()
	}

	if node.Kind() == syntax.DocumentationComment {
		if list, leading, ok := node.ParentTriviaList(); ok && leading {
			if last := list.Last(); last.IsWhitespace() {
				return last
			}
		}

		return EmptyWhitespace()
	}

	leading := node.FindToken(lineStart).LeadingTrivia()
	if len(leading) > 0 && leading.Span().Contains(lineStart) {
		if last := leading.Last(); last.IsWhitespace() {
			return last
		}
	}

	return EmptyWhitespace()
}
