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

import "strings"

//go:generate go tool stringer -type=PartKind -trimprefix=Part
//go:generate go tool stringer -type=Punct -trimprefix=Punct

// PartKind classifies a display part.
type PartKind uint8

const (
	PartKeyword PartKind = iota
	PartPunctuation
	PartOperator
	PartSpace
	PartLineBreak
	PartIndentation
	PartText
	PartNamespaceName
	PartClassName
	PartInterfaceName
	PartStructName
	PartEnumName
	PartTypeParameterName
	PartMethodName
	PartPropertyName
	PartParameterName
	PartFieldName
	PartEnumMemberName
	PartNumericLiteral
	PartStringLiteral
)

// IsTypeName reports whether k is the name of a named type.
func (k PartKind) IsTypeName() bool {
	switch k {
	case PartClassName, PartInterfaceName, PartStructName, PartEnumName:
		return true

	default:
		return false
	}
}

// Punct classifies punctuation parts once at creation, so scans switch on the class instead of the text.
type Punct uint8

const (
	PunctNone Punct = iota
	PunctOpenParen
	PunctCloseParen
	PunctOpenBracket
	PunctCloseBracket
	PunctOpenBrace
	PunctCloseBrace
	PunctLess
	PunctGreater
	PunctComma
	PunctEquals
	PunctColon
	PunctDot
	PunctBar
	PunctOther
)

var puncts = map[string]Punct{
	"(": PunctOpenParen,
	")": PunctCloseParen,
	"[": PunctOpenBracket,
	"]": PunctCloseBracket,
	"{": PunctOpenBrace,
	"}": PunctCloseBrace,
	"<": PunctLess,
	">": PunctGreater,
	",": PunctComma,
	"=": PunctEquals,
	":": PunctColon,
	".": PunctDot,
	"|": PunctBar,
}

func classify(text string) Punct {
	if p, ok := puncts[text]; ok {
		return p
	}

	return PunctOther
}

// Part is a classified segment of a display part sequence.
type Part struct {
	// Symbol optionally refers to the symbol the part was rendered from.
	Symbol *Symbol

	// Text is the literal text of the part.
	Text string

	// Kind classifies the part.
	Kind PartKind

	// Punct classifies punctuation parts, [PunctNone] for all others.
	Punct Punct
}

// NewPart creates a part. Punctuation is classified by its text.
func NewPart(kind PartKind, text string, symbol *Symbol) Part {
	p := Part{Symbol: symbol, Text: text, Kind: kind}
	if kind == PartPunctuation {
		p.Punct = classify(text)
	}

	return p
}

// Keyword creates a keyword part.
func Keyword(text string) Part { return Part{Text: text, Kind: PartKeyword} }

// Punctuation creates a punctuation part.
func Punctuation(text string) Part { return NewPart(PartPunctuation, text, nil) }

// Space creates a single blank.
func Space() Part { return Part{Text: " ", Kind: PartSpace} }

// LineBreak creates a line break.
func LineBreak() Part { return Part{Text: "\n", Kind: PartLineBreak} }

// Indentation creates an indentation part.
func Indentation(chars string) Part { return Part{Text: chars, Kind: PartIndentation} }

// IsKeyword reports whether p is the keyword text.
func (p Part) IsKeyword(text string) bool { return p.Kind == PartKeyword && p.Text == text }

// Is reports whether p is punctuation of class c.
func (p Part) Is(c Punct) bool { return p.Kind == PartPunctuation && p.Punct == c }

// IsSpace reports whether p is a space part.
func (p Part) IsSpace() bool { return p.Kind == PartSpace }

// Parts is a display part sequence.
type Parts []Part

// String concatenates the text of all parts.
func (ps Parts) String() string {
	var b strings.Builder
	for _, p := range ps {
		b.WriteString(p.Text)
	}

	return b.String()
}
