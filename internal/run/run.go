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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"os"
	"runtime"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/layoutguard/internal/astutil"
	"fillmore-labs.com/layoutguard/internal/config"
	"fillmore-labs.com/layoutguard/internal/layout"
	"fillmore-labs.com/layoutguard/internal/report"
	"fillmore-labs.com/layoutguard/syntax/gosyntax"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the layoutguard analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("layoutguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if r.Analyzers.Empty() {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "LayoutGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())
	trace.Log(ctx, "options", r.LogValue().String())

	results := r.checkFiles(ctx, p, in.Root())

	// Report sequentially, diagnostics are not safe for concurrent use
	for _, res := range results {
		switch {
		case res.err == nil:
			report.ProcessDiagnostics(ctx, p, res.currentFile, res.findings)

		case errors.Is(res.err, gosyntax.ErrFileMismatch):
			// cgo processed files do not match their source

		default:
			astutil.InternalError(p, res.file, "Layout check of %s failed: %v", res.file.Name.Name, res.err)
		}
	}

	return nil, nil
}

// fileResult holds the outcome of checking a single file.
type fileResult struct {
	file        *ast.File
	currentFile astutil.CurrentFile
	findings    []layout.Finding
	err         error
}

// checkFiles runs the layout rules on all files of the package concurrently.
// Skipped files are omitted from the result, which keeps the order of the package files.
func (r *Options) checkFiles(ctx context.Context, p *analysis.Pass, root inspector.Cursor) []fileResult {
	var files []inspector.Cursor

	for f := range root.Children() {
		file := f.Node().(*ast.File)

		// Skip generated files
		if ast.IsGenerated(file) && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		files = append(files, f)
	}

	results := make([]fileResult, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, f := range files {
		g.Go(func() error {
			results[i] = r.checkFile(ctx, p, f)

			return nil
		})
	}

	_ = g.Wait() // never fails

	return slices.DeleteFunc(results, func(res fileResult) bool { return res.file == nil })
}

// checkFile builds the syntax tree of a file and runs the enabled rules.
// Files with a file level nolint comment return an empty result.
func (r *Options) checkFile(ctx context.Context, p *analysis.Pass, f inspector.Cursor) fileResult {
	file := f.Node().(*ast.File)

	currentFile, err := r.currentFile(p, file)
	if err != nil {
		return fileResult{file: file, err: fmt.Errorf("no syntax tree: %w", err)}
	}

	// Skip files with nolint comment
	if currentFile.NoLintFile() {
		return fileResult{}
	}

	checker := layout.Checker{File: currentFile.File(), MaxWidth: r.MaxWidth, TabWidth: r.TabWidth}

	findings, err := r.check(ctx, checker, f)

	return fileResult{file: file, currentFile: currentFile, findings: findings, err: err}
}

// currentFile reads the source of file and builds its syntax tree.
func (r *Options) currentFile(p *analysis.Pass, file *ast.File) (astutil.CurrentFile, error) {
	handle := p.Fset.File(file.FileStart)
	if handle == nil {
		return astutil.CurrentFile{}, fmt.Errorf("no position information: %w", gosyntax.ErrFileMismatch)
	}

	readFile := p.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	src, err := readFile(handle.Name())
	if err != nil {
		return astutil.CurrentFile{}, err
	}

	tree, err := gosyntax.Parse(p.Fset, file, src)
	if err != nil {
		return astutil.CurrentFile{}, err
	}

	return astutil.NewCurrentFile(tree), nil
}

// check runs the enabled layout rules on a file.
func (r *Options) check(ctx context.Context, checker layout.Checker, root inspector.Cursor) ([]layout.Finding, error) {
	var findings []layout.Finding

	if r.Analyzers.Enabled(config.WhitespaceAnalyzer) {
		findings = append(findings, checker.Whitespace(ctx)...)
	}

	if r.Analyzers.Enabled(config.ParamsAnalyzer) {
		params, err := checker.Params(ctx, root)
		if err != nil {
			return nil, err
		}

		findings = append(findings, params...)
	}

	if r.Analyzers.Enabled(config.ChainAnalyzer) {
		chains, err := checker.Chain(ctx, root)
		if err != nil {
			return nil, err
		}

		findings = append(findings, chains...)
	}

	return findings, nil
}
