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
	"runtime/trace"
	"strings"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/layoutguard/display"
	"fillmore-labs.com/layoutguard/syntax"
	"fillmore-labs.com/layoutguard/trivia"
)

// signature is the symbol Go parameter lists are formatted as.
var signature = &display.Symbol{Kind: display.SymbolMethod}

// Params reports parameter lists of function declarations and literals below root that span
// several lines without putting every parameter on its own line. With [Checker.MaxWidth] set,
// single line lists on lines wider than the limit are reported, too.
//
// Lists with a single parameter are skipped. Findings are reported at the closing parenthesis.
// Lists containing comments are reported without a fix.
func (c Checker) Params(ctx context.Context, root inspector.Cursor) ([]Finding, error) {
	defer trace.StartRegion(ctx, "Params").End()

	var findings []Finding

	for cur := range root.Preorder((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		var typ *ast.FuncType

		switch n := cur.Node().(type) {
		case *ast.FuncDecl:
			typ = n.Type

		case *ast.FuncLit:
			typ = n.Type
		}

		finding, ok, err := c.params(ctx, cur.Node(), typ.Params)
		if err != nil {
			return nil, err
		}

		if ok {
			findings = append(findings, finding)
		}
	}

	return findings, nil
}

func (c Checker) params(ctx context.Context, fn ast.Node, list *ast.FieldList) (Finding, bool, error) {
	// a single parameter is never reflowed, even when its type spans lines
	if list == nil || len(list.List) == 0 || len(list.List) == 1 && len(list.List[0].Names) <= 1 {
		return Finding{}, false, nil
	}

	open, closing := c.File.Token(list.Opening), c.File.Token(list.Closing)
	if open.IsNone() || closing.IsNone() {
		return Finding{}, false, nil
	}

	openLine, err := c.line(ctx, open.Span().Start)
	if err != nil {
		return Finding{}, false, err
	}

	closeLine, err := c.line(ctx, closing.Span().Start)
	if err != nil {
		return Finding{}, false, err
	}

	var (
		message  string
		separate bool
		width    int
	)

	switch {
	case openLine != closeLine:
		separate, err = c.onePerLine(ctx, openLine, list)
		if err != nil || separate {
			return Finding{}, false, err
		}

		message = "Parameters should be on separate lines"

	case c.MaxWidth > 0:
		width, err = c.lineWidth(ctx, open.Span().Start)
		if err != nil || width <= c.MaxWidth {
			return Finding{}, false, err
		}

		message = fmt.Sprintf("Line is %d columns wide, exceeding %d", width, c.MaxWidth)

	default:
		return Finding{}, false, nil
	}

	finding := Finding{Rule: Params, Span: closing.Span(), Message: message}

	if hasComments(open, closing) {
		return finding, true, nil
	}

	span := syntax.Span{Start: open.Span().Start, End: closing.Span().End}

	text, err := c.reflow(ctx, fn, open, span)
	if err != nil {
		return Finding{}, false, err
	}

	finding.Edits = []Edit{{Span: span, NewText: text}}

	return finding, true, nil
}

// onePerLine reports whether every field of list starts on its own line after openLine.
func (c Checker) onePerLine(ctx context.Context, openLine int, list *ast.FieldList) (bool, error) {
	line := openLine

	for _, field := range list.List {
		l, err := c.line(ctx, c.File.Offset(field.Pos()))
		if err != nil {
			return false, err
		}

		if l <= line {
			return false, nil
		}

		line = l
	}

	return true, nil
}

func (c Checker) line(ctx context.Context, offset int) (int, error) {
	pos, err := c.File.Tree().LinePosition(ctx, offset)
	if err != nil {
		return 0, err
	}

	return pos.Line, nil
}

// lineWidth returns the rendered width of the line containing offset.
func (c Checker) lineWidth(ctx context.Context, offset int) (int, error) {
	text := c.File.Tree().Text()

	start, err := c.File.Tree().LineStart(ctx, offset)
	if err != nil {
		return 0, err
	}

	line := text[start:]
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}

	return displayWidth(line, c.TabWidth), nil
}

// hasComments reports whether any trivia between open and closing is neither whitespace nor a line break.
func hasComments(open, closing syntax.Token) bool {
	if !trivia.IsEmptyOrWhitespace(open.TrailingTrivia()) {
		return true
	}

	for token := open.Next(); !token.IsNone() && token != closing; token = token.Next() {
		if !trivia.IsTokenExteriorTriviaEmptyOrWhitespace(token) {
			return true
		}
	}

	return !trivia.IsEmptyOrWhitespace(closing.LeadingTrivia())
}

// reflow renders the parameter list in span with one parameter per line, indented one level
// deeper than the line holding fn.
func (c Checker) reflow(ctx context.Context, fn ast.Node, open syntax.Token, span syntax.Span) (string, error) {
	parts, err := display.ScanGo(c.File.Tree().Text()[span.Start:span.End])
	if err != nil {
		return "", err
	}

	// a trailing comma is only valid before a line break
	if n := len(parts); n > 1 && parts[n-2].Is(display.PunctComma) {
		parts = append(parts[:n-2], parts[n-1])
	}

	analysis, err := trivia.AnalyzeIndentation(ctx, c.File.Node(fn))
	if err != nil {
		return "", err
	}

	parts = display.FormatParameters(signature, parts, analysis.IncreasedIndentation("\t"))

	var d display.Depth
	for _, p := range parts {
		d.Step(p)
	}

	if !d.Zero() || !d.Balanced() {
		return "", fmt.Errorf("parameter list %q: %w", parts, ErrUnbalanced)
	}

	eol := trivia.GetEndOfLine(open).Text()

	var b strings.Builder

	for _, p := range parts {
		if p.Kind == display.PartLineBreak {
			b.WriteString(eol)

			continue
		}

		b.WriteString(p.Text)
	}

	return b.String(), nil
}
