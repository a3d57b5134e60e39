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

package layout

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/layoutguard/syntax"
	"fillmore-labs.com/layoutguard/trivia"
)

// link is one operator of a chain with its operands.
type link struct {
	left, right syntax.Node
	op          syntax.Token
}

// wrapped reports whether a line break follows the operator.
func (l link) wrapped() bool {
	return slices.Contains(l.op.TrailingTrivia().Kinds(), syntax.TriviaEndOfLine)
}

// Chain reports chains of the same && or || operator below root where some operators end
// their line and others do not, at the first operator not ending its line.
//
// The fix breaks the line after every operator, indenting like the first wrapped operand.
func (c Checker) Chain(ctx context.Context, root inspector.Cursor) ([]Finding, error) {
	defer trace.StartRegion(ctx, "Chain").End()

	var findings []Finding

	for cur := range root.Preorder((*ast.BinaryExpr)(nil)) {
		expr := cur.Node().(*ast.BinaryExpr)
		if expr.Op != token.LAND && expr.Op != token.LOR {
			continue
		}

		// only the outermost expression of a chain
		if parent, ok := cur.Parent().Node().(*ast.BinaryExpr); ok && parent.Op == expr.Op {
			continue
		}

		links, ok := c.links(expr)
		if !ok {
			continue
		}

		wrapped := 0
		for _, l := range links {
			if l.wrapped() {
				wrapped++
			}
		}

		if wrapped == 0 || wrapped == len(links) {
			continue
		}

		unwrapped := links[slices.IndexFunc(links, func(l link) bool { return !l.wrapped() })]

		finding := Finding{
			Rule:    Chain,
			Span:    unwrapped.op.Span(),
			Message: fmt.Sprintf("Line break expected after %s like in the rest of the chain", expr.Op),
		}

		edits, err := c.breakChain(ctx, links)
		if err != nil {
			return nil, err
		}

		finding.Edits = edits

		findings = append(findings, finding)
	}

	return findings, nil
}

// links returns the operators of the chain rooted at expr in source order.
func (c Checker) links(expr *ast.BinaryExpr) ([]link, bool) {
	var links []link

	for x, ok := expr, true; ok && x.Op == expr.Op; x, ok = x.X.(*ast.BinaryExpr) {
		l := link{left: c.File.Node(x.X), right: c.File.Node(x.Y), op: c.File.Token(x.OpPos)}
		if !l.left.Valid() || !l.right.Valid() || l.op.IsNone() {
			return nil, false
		}

		links = append(links, l)
	}

	slices.Reverse(links)

	return links, true
}

// breakChain returns the edits wrapping every unwrapped operator of links, or nil when comments
// or irregular spacing are in the way.
func (c Checker) breakChain(ctx context.Context, links []link) ([]Edit, error) {
	first := slices.IndexFunc(links, link.wrapped)

	for _, l := range links {
		if l.wrapped() {
			if !trivia.IsTokenFollowedWithNewLineAndNotPrecededWithNewLine(l.left, l.op, l.right) {
				return nil, nil
			}

			continue
		}

		if !trivia.IsWhitespaceOnly(l.op.TrailingTrivia()) || len(l.right.LeadingTrivia()) > 0 {
			return nil, nil
		}
	}

	indentation, err := trivia.DetermineIndentation(ctx, links[first].right)
	if err != nil {
		return nil, err
	}

	newText := trivia.GetEndOfLine(links[first].op).Text() + indentation.Text()

	var edits []Edit

	for _, l := range links {
		if l.wrapped() {
			continue
		}

		edits = append(edits, Edit{
			Span:    syntax.Span{Start: l.op.Span().End, End: l.right.Span().Start},
			NewText: newText,
		})
	}

	return edits, nil
}
