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

package report

import (
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/layoutguard/internal/astutil"
	"fillmore-labs.com/layoutguard/internal/layout"
	"fillmore-labs.com/layoutguard/syntax"
)

// fixSet tracks the spans of the edits of already suggested fixes.
type fixSet []syntax.Span

// add records the spans of edits and returns true, unless one of them overlaps a recorded span.
// Adjacent spans and insertions at the border of a span do not overlap.
func (s *fixSet) add(edits []layout.Edit) bool {
	for _, e := range edits {
		for _, other := range *s {
			if e.Span.Start < other.End && other.Start < e.Span.End ||
				e.Span.Empty() && other.Start < e.Span.Start && e.Span.Start < other.End {
				return false
			}
		}
	}

	for _, e := range edits {
		*s = append(*s, e.Span)
	}

	return true
}

// textEdits converts edits of the syntax tree of currentFile into [analysis.TextEdit] values.
func textEdits(currentFile astutil.CurrentFile, edits []layout.Edit) []analysis.TextEdit {
	result := make([]analysis.TextEdit, 0, len(edits))

	for _, e := range edits {
		pos, end := currentFile.File().Range(e.Span)
		result = append(result, analysis.TextEdit{Pos: pos, End: end, NewText: []byte(e.NewText)})
	}

	return result
}
