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
	"errors"

	"fillmore-labs.com/layoutguard/syntax"
	"fillmore-labs.com/layoutguard/syntax/gosyntax"
)

// ErrUnbalanced is returned when a reformatted part sequence does not nest properly.
var ErrUnbalanced = errors.New("unbalanced brackets")

// Rule identifies a layout rule.
type Rule uint8

const (
	// Whitespace reports whitespace before line ends, in code and comments.
	Whitespace Rule = iota

	// Params reports badly wrapped parameter lists.
	Params

	// Chain reports inconsistently wrapped logical operator chains.
	Chain
)

// Code returns the short code of the rule used in diagnostics.
func (r Rule) Code() string {
	switch r {
	case Whitespace:
		return "ws"

	case Params:
		return "prm"

	case Chain:
		return "chn"

	default:
		return "unknown"
	}
}

// Edit replaces a span of the source text.
type Edit struct {
	Span    syntax.Span
	NewText string
}

// Finding is a layout violation, with the edits fixing it if any.
type Finding struct {
	Message string
	Edits   []Edit

	// Span is the reported range.
	Span syntax.Span
	Rule Rule
}

// Checker runs the layout rules on a single file.
type Checker struct {
	File *gosyntax.File

	// MaxWidth is the maximum rendered width of lines holding a single line parameter list.
	// Zero disables the check.
	MaxWidth int

	// TabWidth is the rendered width of a tab.
	TabWidth int
}
