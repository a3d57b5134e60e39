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

// Depth is the state of a left-to-right scan over a display part sequence, counting
// unclosed parentheses, braces, brackets and angle brackets.
type Depth struct {
	Parens, Braces, Brackets, Angles int

	underflow bool
}

// Step updates the counters for p. Parts other than bracket punctuation are ignored.
func (d *Depth) Step(p Part) {
	if p.Kind != PartPunctuation {
		return
	}

	switch p.Punct {
	case PunctOpenParen:
		d.Parens++

	case PunctCloseParen:
		d.Parens = d.dec(d.Parens)

	case PunctOpenBrace:
		d.Braces++

	case PunctCloseBrace:
		d.Braces = d.dec(d.Braces)

	case PunctOpenBracket:
		d.Brackets++

	case PunctCloseBracket:
		d.Brackets = d.dec(d.Brackets)

	case PunctLess:
		d.Angles++

	case PunctGreater:
		d.Angles = d.dec(d.Angles)
	}
}

func (d *Depth) dec(n int) int {
	if n <= 0 {
		d.underflow = true
	}

	return n - 1
}

// Zero reports whether all counters are zero.
func (d Depth) Zero() bool {
	return d.Parens == 0 && d.Braces == 0 && d.Brackets == 0 && d.Angles == 0
}

// TopLevelComma reports whether a comma scanned now separates the entries of the outermost
// parameter list: exactly one of the parenthesis and bracket counters is one, all others are zero.
func (d Depth) TopLevelComma() bool {
	return d.Angles == 0 && d.Braces == 0 &&
		(d.Parens == 1 && d.Brackets == 0 || d.Parens == 0 && d.Brackets == 1)
}

// Balanced reports whether no counter dropped below zero during the scan.
func (d Depth) Balanced() bool { return !d.underflow }
