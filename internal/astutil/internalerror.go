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

package astutil

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/layoutguard/syntax"
	"fillmore-labs.com/layoutguard/syntax/gosyntax"
)

// InternalError reports an internal error diagnostic.
// These errors indicate bugs in the analyzer logic rather than issues in the user's code.
func InternalError(p *analysis.Pass, rng analysis.Range, format string, args ...any) {
	msg := []byte("Internal Error: ")
	msg = fmt.Appendf(msg, format, args...)

	p.Report(analysis.Diagnostic{Pos: rng.Pos(), End: rng.End(), Message: string(msg)})
}

// SpanRange is the [analysis.Range] of a span of a syntax tree.
type SpanRange struct {
	pos, end token.Pos
}

// NewSpanRange converts span of file into an [analysis.Range].
func NewSpanRange(file *gosyntax.File, span syntax.Span) SpanRange {
	pos, end := file.Range(span)

	return SpanRange{pos: pos, end: end}
}

// Pos implements [analysis.Range].
func (r SpanRange) Pos() token.Pos { return r.pos }

// End implements [analysis.Range].
func (r SpanRange) End() token.Pos { return r.end }
