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

import "slices"

// FindParameterListStart returns the index of the punctuation opening the parameter list of
// sym: the first outermost parenthesis for methods and named types, the first outermost bracket
// for properties (indexers). The result is -1 when there is none.
func FindParameterListStart(sym *Symbol, parts Parts) int {
	var d Depth

	for i, p := range parts {
		d.Step(p)

		switch {
		case p.Is(PunctOpenParen) && sym.Kind.opensParen():
			if d.Parens == 1 && d.Braces == 0 && d.Brackets == 0 && d.Angles == 0 {
				return i
			}

		case p.Is(PunctOpenBracket) && sym.Kind.opensBracket():
			if d.Parens == 0 && d.Braces == 0 && d.Brackets == 1 && d.Angles == 0 {
				return i
			}
		}
	}

	return -1
}

// closesParameterList reports whether p, already scanned into d, closes the parameter list of sym.
func closesParameterList(sym *Symbol, p Part, d Depth) bool {
	switch {
	case p.Is(PunctCloseParen):
		return d.Zero() && sym.Kind.opensParen()

	case p.Is(PunctCloseBracket):
		return d.Zero() && sym.Kind.opensBracket()

	default:
		return false
	}
}

// FormatParameters puts every parameter of the parameter list of sym on its own line.
//
// A line break and indent are inserted after the opening punctuation, and the space following
// every top-level comma is replaced by a line break and indent. The closing punctuation stays
// on the line of the last parameter.
func FormatParameters(sym *Symbol, parts Parts, indent string) Parts {
	start := FindParameterListStart(sym, parts)
	if start < 0 {
		return slices.Clone(parts)
	}

	result := make(Parts, 0, len(parts)+8)
	result = append(result, parts[:start+1]...)
	result = append(result, LineBreak(), Indentation(indent))

	var d Depth
	d.Step(parts[start])

	for i := start + 1; i < len(parts); i++ {
		p := parts[i]
		result = append(result, p)
		d.Step(p)

		switch {
		case p.Is(PunctComma):
			if d.TopLevelComma() && i+1 < len(parts) && parts[i+1].IsSpace() {
				result = append(result, LineBreak(), Indentation(indent))
				i++ // replaces the space
			}

		case closesParameterList(sym, p, d):
			return append(result, parts[i+1:]...)
		}
	}

	return result
}

// ReplaceDefaultExpressionWithDefaultLiteral shortens every "= default(T)" in the parameter
// list of sym to "= default".
//
// An expression is only replaced when its closing parenthesis is found; otherwise the parts
// are returned unchanged.
func ReplaceDefaultExpressionWithDefaultLiteral(sym *Symbol, parts Parts) Parts {
	i := FindParameterListStart(sym, parts)
	if i < 0 {
		return slices.Clone(parts)
	}

	var (
		d      Depth
		result Parts
		prev   int
	)

scan:
	for ; i < len(parts); i++ {
		p := parts[i]
		d.Step(p)

		switch {
		case p.Is(PunctCloseParen) || p.Is(PunctCloseBracket):
			if d.Zero() {
				break scan
			}

		case p.Is(PunctEquals):
			// "=", " ", "default", "("
			open := i + 3
			if open >= len(parts) ||
				!parts[i+1].IsSpace() ||
				!parts[i+2].IsKeyword("default") ||
				!parts[open].Is(PunctOpenParen) {
				continue
			}

			end := findClosingParen(parts, open+1)
			if end < 0 {
				continue
			}

			result = append(result, parts[prev:open]...)
			i, prev = end, end+1
		}
	}

	if result == nil {
		return slices.Clone(parts)
	}

	return append(result, parts[prev:]...)
}

// findClosingParen returns the index of the parenthesis closing an already opened one, or -1.
func findClosingParen(parts Parts, start int) int {
	depth := 1

	for j := start; j < len(parts); j++ {
		switch {
		case parts[j].Is(PunctOpenParen):
			depth++

		case parts[j].Is(PunctCloseParen):
			depth--
			if depth == 0 {
				return j
			}
		}
	}

	return -1
}
