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

package display

import (
	"fmt"
	"go/scanner"
	"go/token"
)

// ScanGo splits Go source text into display parts.
//
// Comments are dropped. Whitespace between tokens, and the position after a comma, become a
// single space part, except directly after opening and before closing brackets or commas.
// Line breaks separating fields or methods inside braces become semicolons.
func ScanGo(src string) (Parts, error) {
	var (
		s    scanner.Scanner
		errs scanner.ErrorList
	)

	file := token.NewFileSet().AddFile("", -1, len(src))
	s.Init(file, []byte(src), errs.Add, 0)

	var (
		parts     Parts
		depth     Depth
		end       int
		gap, semi bool
	)

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		if tok == token.SEMICOLON && lit == "\n" {
			gap, semi = true, depth.Braces > 0

			continue
		}

		offset := file.Offset(pos)
		p := goPart(tok, lit)

		if semi && !p.Is(PunctCloseBrace) {
			parts = append(parts, Punctuation(";"))
		}

		if len(parts) > 0 {
			prev := parts[len(parts)-1]
			if (gap || offset > end || prev.Is(PunctComma)) && !opens(prev) && !closes(p) && !p.Is(PunctComma) {
				parts = append(parts, Space())
			}
		}

		parts = append(parts, p)
		depth.Step(p)
		end, gap, semi = offset+len(p.Text), false, false
	}

	if err := errs.Err(); err != nil {
		return nil, fmt.Errorf("scanning display parts: %w", err)
	}

	return parts, nil
}

func goPart(tok token.Token, lit string) Part {
	switch {
	case tok.IsKeyword():
		return Keyword(tok.String())

	case tok == token.IDENT:
		return NewPart(PartText, lit, nil)

	case tok == token.INT, tok == token.FLOAT, tok == token.IMAG:
		return NewPart(PartNumericLiteral, lit, nil)

	case tok == token.CHAR, tok == token.STRING:
		return NewPart(PartStringLiteral, lit, nil)
	}

	switch tok {
	case token.LPAREN, token.RPAREN, token.LBRACK, token.RBRACK, token.LBRACE, token.RBRACE,
		token.COMMA, token.PERIOD, token.COLON, token.SEMICOLON, token.ASSIGN:
		return Punctuation(tok.String())

	default:
		return NewPart(PartOperator, tok.String(), nil)
	}
}

func opens(p Part) bool {
	return p.Is(PunctOpenParen) || p.Is(PunctOpenBracket) || p.Is(PunctOpenBrace)
}

func closes(p Part) bool {
	return p.Is(PunctCloseParen) || p.Is(PunctCloseBracket) || p.Is(PunctCloseBrace)
}
