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
	"cmp"
	"context"
	"fmt"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/layoutguard/internal/astutil"
	"fillmore-labs.com/layoutguard/internal/layout"
)

// ProcessDiagnostics emits the findings of the layout rules for a file as diagnostics.
//
// Findings on lines carrying a //nolint:layoutguard comment are dropped. Every remaining finding
// is reported; its edits become a suggested fix unless the file is generated or the edits
// overlap those of a previously reported finding.
func ProcessDiagnostics(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, findings []layout.Finding) {
	defer trace.StartRegion(ctx, "Report").End()

	slices.SortStableFunc(findings, func(a, b layout.Finding) int { return cmp.Compare(a.Span.Start, b.Span.Start) })

	var fixes fixSet

	for _, f := range findings {
		if currentFile.NoLintComment(f.Span.Start) {
			continue
		}

		rng := astutil.NewSpanRange(currentFile.File(), f.Span)

		diagnostic := analysis.Diagnostic{
			Pos:     rng.Pos(),
			End:     rng.End(),
			Message: fmt.Sprintf("%s (lg:%s)", f.Message, f.Rule.Code()),
		}

		if len(f.Edits) > 0 && !currentFile.Generated() && fixes.add(f.Edits) {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
				Message:   f.Message,
				TextEdits: textEdits(currentFile, f.Edits),
			}}
		}

		p.Report(diagnostic)
	}
}
