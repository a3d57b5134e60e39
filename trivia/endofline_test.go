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

package trivia_test

import (
	"errors"
	"testing"

	"fillmore-labs.com/layoutguard/internal/testsource"
	"fillmore-labs.com/layoutguard/syntax"
	. "fillmore-labs.com/layoutguard/trivia"
)

func TestFindEndOfLineEveryToken(t *testing.T) {
	t.Parallel()

	_, file := testsource.Parse(t, "package p\n\nvar x = 1 // one\n")
	tree := file.Tree()

	for tok := tree.FirstToken(); !tok.IsNone(); tok = tok.Next() {
		eol := FindEndOfLine(tok)
		if !eol.IsEndOfLine() {
			t.Errorf("Got %v for token %v, want end of line", eol, tok)

			continue
		}

		if !reachable(tok, eol.Token()) {
			t.Errorf("Owner %v of %v not reachable from %v", eol.Token(), eol, tok)
		}
	}
}

func reachable(from, to syntax.Token) bool {
	for t := from; !t.IsNone(); t = t.Next() {
		if t == to {
			return true
		}
	}

	for t := from; !t.IsNone(); t = t.Previous() {
		if t == to {
			return true
		}
	}

	return false
}

func TestFindEndOfLineBackward(t *testing.T) {
	t.Parallel()

	_, file := testsource.Parse(t, "package p\nvar x = 1")
	tree := file.Tree()

	last := tree.LastToken().Previous()
	if last.Text() != "1" {
		t.Fatalf("Got token %v, want 1", last)
	}

	eol := FindEndOfLine(last)
	if !eol.IsEndOfLine() {
		t.Fatalf("Got %v, want end of line", eol)
	}

	if owner := eol.Token(); owner.Text() != "p" {
		t.Errorf("Got owner %v, want p", owner)
	}
}

func TestFindEndOfLineSingleLine(t *testing.T) {
	t.Parallel()

	_, file := testsource.Parse(t, "package p")
	tree := file.Tree()

	for tok := tree.FirstToken(); !tok.IsNone(); tok = tok.Next() {
		if eol := FindEndOfLine(tok); !eol.IsNone() {
			t.Errorf("Got %v for token %v, want none", eol, tok)
		}

		eol := GetEndOfLine(tok)
		if !eol.IsEndOfLine() || eol.Text() != "\n" {
			t.Errorf("Got %v for token %v, want synthesized line break", eol, tok)
		}

		if owner := eol.Token(); !owner.IsNone() {
			t.Errorf("Got owner %v of synthesized line break, want none", owner)
		}
	}
}

func TestEndOfLineOf(t *testing.T) {
	t.Parallel()

	_, file := testsource.Parse(t, "package p\r\n")
	tree := file.Tree()

	tests := []struct {
		name    string
		element syntax.NodeOrToken
		want    string
		err     error
	}{
		{"node", syntax.NodeElement(tree.Root()), "\r\n", nil},
		{"token", syntax.TokenElement(tree.LastToken()), "\r\n", nil},
		{"neither", syntax.NodeOrToken{}, "", ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			found, err := FindEndOfLineOf(tt.element)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Got error %v, want %v", err, tt.err)
			}

			if found.Text() != tt.want {
				t.Errorf("Got %q, want %q", found.Text(), tt.want)
			}

			got, err := GetEndOfLineOf(tt.element)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Got error %v, want %v", err, tt.err)
			}

			if err == nil && got.Text() != tt.want {
				t.Errorf("Got %q, want %q", got.Text(), tt.want)
			}
		})
	}
}
